package catalog

import (
	"fmt"

	"github.com/MrSnakeDoc/curator/internal/domain"
)

// AddTaglineWord appends a sanitized word.
func (e *Editor) AddTaglineWord(wc domain.WorkingCopy, word string) (domain.WorkingCopy, error) {
	clean := domain.Sanitize(word)
	if clean == "" {
		return wc, ErrEmptyLabel
	}

	out := wc.Clone()
	out.Taglines = append(out.Taglines, clean)
	return out, nil
}

// RemoveTaglineWord drops the word at index, refusing to empty the list.
func (e *Editor) RemoveTaglineWord(wc domain.WorkingCopy, index int) (domain.WorkingCopy, error) {
	if index < 0 || index >= len(wc.Taglines) {
		return wc, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	if len(wc.Taglines) <= 1 {
		return wc, ErrLastTagline
	}

	out := wc.Clone()
	out.Taglines = append(out.Taglines[:index], out.Taglines[index+1:]...)
	return out, nil
}
