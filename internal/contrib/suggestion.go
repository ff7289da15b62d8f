// Package contrib collects visitor suggestions for the session and exports
// them in the bulk-import CSV format, ready to be mailed to an editor.
package contrib

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MrSnakeDoc/curator/internal/domain"
)

// ErrInvalidSuggestion wraps every validation failure of NewSuggestion.
var ErrInvalidSuggestion = errors.New("invalid suggestion")

// Draft is the raw form input of a suggestion.
type Draft struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Contributor string `json:"contributor"`
	Category    string `json:"category"`
	WantsCredit bool   `json:"wantsCredit"`
}

// Suggestion is a validated, sanitized contribution.
type Suggestion struct {
	Title       string `json:"title" validate:"required"`
	URL         string `json:"url" validate:"required,weblink"`
	Description string `json:"description"`
	Contributor string `json:"contributor"`
	Category    string `json:"category" validate:"required"`
	WantsCredit bool   `json:"wantsCredit"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("weblink", func(fl validator.FieldLevel) bool {
		return domain.IsValidLink(fl.Field().String())
	})
	return v
}

// NewSuggestion sanitizes free text and validates d. A missing category
// defaults to the general collection.
func NewSuggestion(d Draft) (Suggestion, error) {
	s := Suggestion{
		Title:       domain.Sanitize(d.Title),
		URL:         strings.TrimSpace(d.URL),
		Description: domain.Sanitize(d.Description),
		Contributor: domain.Sanitize(d.Contributor),
		Category:    strings.TrimSpace(d.Category),
		WantsCredit: d.WantsCredit,
	}
	if s.Category == "" {
		s.Category = domain.DefaultCollectionID
	}

	if err := validate.Struct(s); err != nil {
		return Suggestion{}, formatValidationError(err)
	}
	return s, nil
}

// Credit is the contributor name written to the export.
func (s Suggestion) Credit() string {
	if s.WantsCredit && s.Contributor != "" {
		return s.Contributor
	}
	return AnonymousContributor
}

func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidSuggestion, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, formatFieldError(e))
	}
	return fmt.Errorf("%w: %s", ErrInvalidSuggestion, strings.Join(msgs, "; "))
}

func formatFieldError(e validator.FieldError) string {
	field := strings.ToLower(e.Field())

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "weblink":
		return fmt.Sprintf("%s must be a valid http(s) link", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
