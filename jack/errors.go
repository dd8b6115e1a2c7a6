package jack

import (
	"fmt"
	"strings"
)

// ErrorKind classifies a CompileError per the taxonomy of lexical, syntax
// and semantic failures.
type ErrorKind string

const (
	LexicalError  ErrorKind = "Lexical"
	SyntaxError   ErrorKind = "Syntax"
	SemanticError ErrorKind = "Semantic"
)

// CompileError is the one error type the compiler ever returns. It carries
// enough positional context to render a fixed diagnostic block, pointing at
// the token that actually offends even when it was consumed one lookahead
// earlier.
type CompileError struct {
	Kind    ErrorKind
	Class   string
	Pos     Position
	Message string
}

func (e *CompileError) Error() string {
	caret := strings.Repeat(" ", max(e.Pos.Col-1, 0)) + "^"
	return fmt.Sprintf(
		"Error found:\n"+
			"  Class '%s', line %d\n"+
			"    %s\n"+
			"    %s\n"+
			"%sError: %s\n",
		e.Class, e.Pos.Line, e.Pos.LineText, caret, e.Kind, e.Message,
	)
}

func newError(kind ErrorKind, class string, pos Position, format string, args ...any) *CompileError {
	return &CompileError{Kind: kind, Class: class, Pos: pos, Message: fmt.Sprintf(format, args...)}
}
