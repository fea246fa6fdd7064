package prefix

import (
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Message prefixes used by Interpret and Run.
const (
	ParsePrefix = "Error parsing expression"
	EvalPrefix  = "Error evaluating expression"
)

// Interpret parses and evaluates one expression. Lexing and parsing errors
// are wrapped with ParsePrefix and evaluation errors with EvalPrefix, and the
// text after the prefix starts with a capital letter, e.g.
// "Error evaluating expression: Division by zero". The original error
// remains reachable through errors.As and errors.Cause.
func (ctx *Context) Interpret(src string, opts ...ParseOption) (Expr, error) {
	e, err := Parse(src, opts...)
	if err != nil {
		return nil, errors.Wrap(sentence{err}, ParsePrefix)
	}
	r, err := ctx.Eval(e)
	if err != nil {
		return nil, errors.Wrap(sentence{err}, EvalPrefix)
	}
	return r, nil
}

// Run interprets one expression and renders its value. If interpretation
// fails, the result is instead the error message, e.g.
// "Error parsing expression: Unexpected end of input".
func (ctx *Context) Run(src string, opts ...ParseOption) string {
	r, err := ctx.Interpret(src, opts...)
	if err != nil {
		return err.Error()
	}
	return r.String()
}

// Run interprets one expression with the default context and renders its
// value or error message.
func Run(src string) string {
	return defaultContext.Run(src)
}

// sentence displays an error with its first letter capitalized.
type sentence struct {
	err error
}

func (s sentence) Error() string {
	msg := s.err.Error()
	r, n := utf8.DecodeRuneInString(msg)
	if n == 0 {
		return msg
	}
	return string(unicode.ToUpper(r)) + msg[n:]
}

func (s sentence) Unwrap() error { return s.err }
func (s sentence) Cause() error  { return s.err }
