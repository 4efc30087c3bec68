package parse

import (
	"fmt"
	"strings"
)

// SyntaxError describes the first token that did not fit the grammar
type SyntaxError struct {
	Line int
	// Lexeme is the text of the offending token. It is empty when AtEnd is true.
	Lexeme  string
	AtEnd   bool
	Message string
}

func (e *SyntaxError) Error() string {
	where := " at '" + e.Lexeme + "'"
	if e.AtEnd {
		where = " at end"
	}
	return fmt.Sprintf("[line %d] Error%s: %s", e.Line, where, e.Message)
}

// Errors holds every syntax error reported by Parser.ParseAll
type Errors []*SyntaxError

func (e Errors) Error() string {
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "\n")
}

func (e Errors) Unwrap() []error {
	errs := make([]error, len(e))
	for i, err := range e {
		errs[i] = err
	}
	return errs
}
