package adapters

import (
	"html"

	"github.com/microcosm-cc/bluemonday"

	"github.com/spendtrack/backend/internal/application/adapter"
)

// htmlSanitizer strips every tag from free text.
type htmlSanitizer struct {
	policy *bluemonday.Policy
}

// NewTextSanitizer creates a sanitizer that keeps text content only.
func NewTextSanitizer() adapter.TextSanitizer {
	return &htmlSanitizer{
		policy: bluemonday.StrictPolicy(),
	}
}

// Sanitize removes markup. Entities escaped by the policy are decoded again
// so that "Tom & Jerry" is stored as typed.
func (s *htmlSanitizer) Sanitize(text string) string {
	return html.UnescapeString(s.policy.Sanitize(text))
}
