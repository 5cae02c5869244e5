package asm

import "fmt"

// ParseError reports a single Redcode source line that failed to parse,
// naming the line number and the offending fragment the way the teacher's
// lexer embeds source position in its token errors.
type ParseError struct {
	Line    int
	Text    string
	Message string
}

func (e *ParseError) Error() string {
	if e.Line <= 0 {
		return e.Message
	}
	return fmt.Sprintf("line %d: %s (%q)", e.Line, e.Message, e.Text)
}

func parseErrorf(line int, text, format string, args ...any) error {
	return &ParseError{Line: line, Text: text, Message: fmt.Sprintf(format, args...)}
}
