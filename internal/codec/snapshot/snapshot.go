// Package snapshot externalises a working copy as a seed dataset, so an
// edited catalogue can be promoted to the next bundled version.
package snapshot

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/MrSnakeDoc/curator/internal/domain"
)

// Filename is the suggested name of an exported snapshot. It matches the
// embedded seed so the file can replace it as is.
const Filename = "catalog.yaml"

// ErrEmptyCatalog refuses to export a catalogue without collections or resources.
var ErrEmptyCatalog = errors.New("cannot export an empty catalog")

const header = "# Exported catalogue. Replace the bundled seed with this file to publish it.\n\n"

// Export renders wc in the seed format, stamped with a version taken from
// now (Unix milliseconds) so that it supersedes every cached copy.
func Export(wc domain.WorkingCopy, now time.Time) ([]byte, int64, error) {
	if wc.IsEmpty() {
		return nil, 0, ErrEmptyCatalog
	}

	out := wc.Clone()
	out.Version = now.UnixMilli()
	if out.Taglines == nil {
		out.Taglines = []string{}
	}

	var buf bytes.Buffer
	buf.WriteString(header)

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return nil, 0, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, 0, fmt.Errorf("failed to encode snapshot: %w", err)
	}

	return buf.Bytes(), out.Version, nil
}
