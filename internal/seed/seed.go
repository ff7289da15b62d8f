// Package seed loads the versioned catalogue dataset a working copy starts
// from. A default dataset is embedded in the binary; a file on disk may
// replace it (CURATOR_SEED_FILE).
package seed

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/MrSnakeDoc/curator/internal/domain"
)

//go:embed catalog.yaml
var embedded []byte

// ErrInvalidSeed wraps every structural problem found in a dataset.
var ErrInvalidSeed = errors.New("invalid seed dataset")

// Loader reads a dataset from a file, or the embedded one when the path is empty.
type Loader struct {
	filePath string
}

// NewLoader creates a loader. An empty filePath selects the embedded dataset.
func NewLoader(filePath string) *Loader {
	return &Loader{
		filePath: filePath,
	}
}

// Source describes where the dataset comes from, for logs.
func (l *Loader) Source() string {
	if l.filePath == "" {
		return "embedded"
	}
	return l.filePath
}

// Load reads and validates the dataset.
func (l *Loader) Load() (domain.WorkingCopy, error) {
	if l.filePath == "" {
		return Parse(embedded)
	}
	return Load(l.filePath)
}

// Load reads and validates the dataset at path.
func Load(path string) (domain.WorkingCopy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.WorkingCopy{}, fmt.Errorf("failed to read seed file: %w", err)
	}
	return Parse(data)
}

// Default returns the embedded dataset. It panics if the bundled file is
// broken, which only a bad build can cause.
func Default() domain.WorkingCopy {
	wc, err := Parse(embedded)
	if err != nil {
		panic(fmt.Sprintf("embedded seed: %v", err))
	}
	return wc
}

// Parse decodes a YAML dataset. Unknown keys are rejected.
func Parse(data []byte) (domain.WorkingCopy, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var wc domain.WorkingCopy
	if err := dec.Decode(&wc); err != nil {
		return domain.WorkingCopy{}, fmt.Errorf("failed to parse seed yaml: %w", err)
	}

	normalize(&wc)
	if err := validate(wc); err != nil {
		return domain.WorkingCopy{}, err
	}
	return wc, nil
}
