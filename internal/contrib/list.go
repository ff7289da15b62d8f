package contrib

import (
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/MrSnakeDoc/curator/internal/codec/csvcodec"
	"github.com/MrSnakeDoc/curator/internal/domain"
)

// AnonymousContributor replaces the name of contributors who declined credit.
const AnonymousContributor = "Anonymous"

var (
	ErrNoSuggestions   = errors.New("no suggestions to export")
	ErrIndexOutOfRange = errors.New("suggestion index out of range")
)

// List holds the suggestions of the running session. Nothing is persisted.
type List struct {
	mu    sync.Mutex
	items []Suggestion
}

// NewList creates an empty list.
func NewList() *List {
	return &List{}
}

// Add appends s.
func (l *List) Add(s Suggestion) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = append(l.items, s)
	return len(l.items)
}

// Remove drops the suggestion at index.
func (l *List) Remove(index int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if index < 0 || index >= len(l.items) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	l.items = append(l.items[:index], l.items[index+1:]...)
	return nil
}

// Items returns a copy of the pending suggestions.
func (l *List) Items() []Suggestion {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Suggestion{}, l.items...)
}

// Len returns the number of pending suggestions.
func (l *List) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.items)
}

// Export renders the pending suggestions as CSV and empties the list.
// It also returns a download filename stamped with now.
func (l *List) Export(now time.Time) ([]byte, string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.items) == 0 {
		return nil, "", ErrNoSuggestions
	}

	data := Encode(l.items)
	l.items = nil
	return data, "curator_suggestions_" + strconv.FormatInt(now.UnixMilli(), 10) + ".csv", nil
}

// Encode renders suggestions in the bulk-import column order.
func Encode(items []Suggestion) []byte {
	rows := make([][]string, 0, len(items))
	for _, s := range items {
		rows = append(rows, []string{
			s.Title,
			s.Description,
			s.URL,
			s.Credit(),
			s.Category,
			domain.SubCategoryAll,
		})
	}
	return csvcodec.Encode(rows)
}
