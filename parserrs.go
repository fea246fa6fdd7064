package prefix

import "strconv"

// EndError is an error indicating that the input ended where an expression
// was expected. It implements InputError.
type EndError struct {
	// Col is the position of the end of the input.
	Col int
}

func (err *EndError) Error() string {
	return "unexpected end of input"
}

func (err *EndError) Pos() int {
	return err.Col
}

// ExpressionError is an error indicating a token which cannot begin an
// expression where one was expected. It implements InputError.
type ExpressionError struct {
	// Got is the offending token.
	Got Token
}

func (err *ExpressionError) Error() string {
	return "expected expression, got " + describe(err.Got)
}

func (err *ExpressionError) Pos() int {
	return err.Got.Pos
}

// ExpectedError is an error indicating that the parser required a specific
// keyword, operator, bracket, comma, or arrow but found something else. It
// implements InputError.
type ExpectedError struct {
	// Want is the kind of token the parser required.
	Want TokenKind
	// Got is the token found instead. It may be an EOF token.
	Got Token
	// Where describes the place in the grammar where Want was required,
	// e.g. "after function parameter".
	Where string
}

func (err *ExpectedError) Error() string {
	msg := "expected " + quotekind(err.Want)
	if err.Where != "" {
		msg += " " + err.Where
	}
	return msg + ", got " + describe(err.Got)
}

func (err *ExpectedError) Pos() int {
	return err.Got.Pos
}

// ParamError is an error indicating a function whose parameter is not a
// variable name, e.g. "func 1 => 1". It implements InputError.
type ParamError struct {
	// Got is the token in the parameter position.
	Got Token
}

func (err *ParamError) Error() string {
	return "expected variable name as function parameter, got " + describe(err.Got)
}

func (err *ParamError) Pos() int {
	return err.Got.Pos
}

// TrailingError is an error indicating tokens following a complete
// expression. It implements InputError. Parsing with AllowTrailing ignores
// trailing tokens instead.
type TrailingError struct {
	// Got is the first token after the expression.
	Got Token
}

func (err *TrailingError) Error() string {
	return "unexpected " + describe(err.Got) + " after end of expression"
}

func (err *TrailingError) Pos() int {
	return err.Got.Pos
}

// quotekind describes a token kind, quoting literal symbols and keywords.
func quotekind(k TokenKind) string {
	switch k {
	case TokenEOF, TokenInt, TokenVar, TokenBool, TokenBinary, TokenUnary:
		return k.text()
	default:
		return "'" + k.text() + "'"
	}
}

// describe describes a token for an error message.
func describe(tok Token) string {
	switch tok.Kind {
	case TokenEOF:
		return "end of input"
	case TokenInt:
		return "integer " + strconv.FormatInt(tok.Int, 10)
	case TokenVar:
		return "variable " + tok.Name
	case TokenBool:
		return "boolean " + Bool(tok.Bool).String()
	case TokenBinary:
		return "operator '" + tok.Binary.String() + "'"
	case TokenUnary:
		return "operator '" + tok.Unary.String() + "'"
	default:
		return "'" + tok.Kind.text() + "'"
	}
}

// InputError is an error with position information. Every error resulting from
// invalid input text implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*EndError)(nil)
	_ InputError = (*ExpressionError)(nil)
	_ InputError = (*ExpectedError)(nil)
	_ InputError = (*ParamError)(nil)
	_ InputError = (*TrailingError)(nil)
	_ InputError = (*CharError)(nil)
	_ InputError = (*IntegerError)(nil)
)
