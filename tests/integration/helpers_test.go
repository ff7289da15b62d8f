package integration

import (
	"bytes"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/require"
)

// multipartWriter writes data as the "file" field and returns the content type.
func multipartWriter(t *testing.T, buf *bytes.Buffer, data []byte) string {
	t.Helper()
	w := multipart.NewWriter(buf)
	part, err := w.CreateFormFile("file", "suggestions.csv")
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return w.FormDataContentType()
}
