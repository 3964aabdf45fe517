package spar

// ErrorType categorizes registry and parser failures. The categories drive
// exit-code mapping for the fatal package-level surface (see exit.go).
type ErrorType string

const (
	// ErrorTypeCapacityExceeded is returned when declaring a flag past the
	// registry's fixed capacity (MaxFlags).
	ErrorTypeCapacityExceeded ErrorType = "capacity_exceeded"

	// ErrorTypeParseFailure is returned when a consumed value token cannot
	// be converted to the matched flag's kind.
	ErrorTypeParseFailure ErrorType = "parse_failure"

	// ErrorTypeStarvedValue is returned when a non-boolean flag matches the
	// last token and no value token follows.
	ErrorTypeStarvedValue ErrorType = "starved_value"

	// ErrorTypeInternal covers conditions that indicate a bug in this
	// package rather than bad input.
	ErrorTypeInternal ErrorType = "internal_error"
)

// ParseError is the error type produced by declaration and parsing.
type ParseError struct {
	Type    ErrorType
	Message string
	Flag    string // matched flag name, when known
	Token   string // offending token, when known
}

func (e *ParseError) Error() string {
	return e.Message
}

// NewParseError creates a ParseError with the given type and message.
func NewParseError(typ ErrorType, message string) *ParseError {
	return &ParseError{Type: typ, Message: message}
}
