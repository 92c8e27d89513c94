// Package uid provides small generators for string identifiers.
package uid

// StringID generates string identifiers.
type StringID interface {
	// Generate returns a new identifier.
	Generate() string
}
