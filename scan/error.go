package scan

import (
	"fmt"
	"strings"
)

// UnexpectedCharacterError is reported for a character
// that cannot start any token
type UnexpectedCharacterError struct {
	Line int
	Char rune
}

func (e *UnexpectedCharacterError) Error() string {
	return fmt.Sprintf("[line %d] Error: Unexpected character '%c'.", e.Line, e.Char)
}

// UnterminatedStringError is reported when the input ends inside a
// string literal. Line is the line on which the literal started.
type UnterminatedStringError struct {
	Line int
}

func (e *UnterminatedStringError) Error() string {
	return fmt.Sprintf("[line %d] Error: Unterminated string.", e.Line)
}

// Errors holds every lexical error found in a source text, in order
type Errors []error

func (e Errors) Error() string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "\n")
}

func (e Errors) Unwrap() []error {
	return e
}
