package adapter

// TextSanitizer strips markup from user supplied free text.
type TextSanitizer interface {
	Sanitize(s string) string
}
