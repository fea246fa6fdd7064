package prefix

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLex(t *testing.T) {
	cases := []struct {
		src    string
		tokens []Token
	}{
		// spaces
		{"", []Token{{Kind: TokenEOF, Pos: 1}}},
		{" \t \t", []Token{{Kind: TokenEOF, Pos: 5}}},
		// integers
		{"0", []Token{{Kind: TokenInt, Int: 0, Pos: 1}, {Kind: TokenEOF, Pos: 2}}},
		{"9876543210", []Token{{Kind: TokenInt, Int: 9876543210, Pos: 1}, {Kind: TokenEOF, Pos: 11}}},
		{"9223372036854775807", []Token{{Kind: TokenInt, Int: 9223372036854775807, Pos: 1}, {Kind: TokenEOF, Pos: 20}}},
		{"1 0", []Token{{Kind: TokenInt, Int: 1, Pos: 1}, {Kind: TokenInt, Int: 0, Pos: 3}, {Kind: TokenEOF, Pos: 4}}},
		{"007", []Token{{Kind: TokenInt, Int: 7, Pos: 1}, {Kind: TokenEOF, Pos: 4}}},
		// identifiers and keywords
		{"x", []Token{{Kind: TokenVar, Name: "x", Pos: 1}, {Kind: TokenEOF, Pos: 2}}},
		{"abc", []Token{{Kind: TokenVar, Name: "abc", Pos: 1}, {Kind: TokenEOF, Pos: 4}}},
		{"if", []Token{{Kind: TokenIf, Pos: 1}, {Kind: TokenEOF, Pos: 3}}},
		{"then", []Token{{Kind: TokenThen, Pos: 1}, {Kind: TokenEOF, Pos: 5}}},
		{"else", []Token{{Kind: TokenElse, Pos: 1}, {Kind: TokenEOF, Pos: 5}}},
		{"func", []Token{{Kind: TokenFunc, Pos: 1}, {Kind: TokenEOF, Pos: 5}}},
		{"apply", []Token{{Kind: TokenApply, Pos: 1}, {Kind: TokenEOF, Pos: 6}}},
		{"iff", []Token{{Kind: TokenVar, Name: "iff", Pos: 1}, {Kind: TokenEOF, Pos: 4}}},
		{"funcx", []Token{{Kind: TokenVar, Name: "funcx", Pos: 1}, {Kind: TokenEOF, Pos: 6}}},
		{"x1", []Token{{Kind: TokenVar, Name: "x", Pos: 1}, {Kind: TokenInt, Int: 1, Pos: 2}, {Kind: TokenEOF, Pos: 3}}},
		{"1x", []Token{{Kind: TokenInt, Int: 1, Pos: 1}, {Kind: TokenVar, Name: "x", Pos: 2}, {Kind: TokenEOF, Pos: 3}}},
		// booleans
		{"T", []Token{{Kind: TokenBool, Bool: true, Pos: 1}, {Kind: TokenEOF, Pos: 2}}},
		{"F", []Token{{Kind: TokenBool, Bool: false, Pos: 1}, {Kind: TokenEOF, Pos: 2}}},
		{"TF", []Token{{Kind: TokenBool, Bool: true, Pos: 1}, {Kind: TokenBool, Bool: false, Pos: 2}, {Kind: TokenEOF, Pos: 3}}},
		{"Tx", []Token{{Kind: TokenBool, Bool: true, Pos: 1}, {Kind: TokenVar, Name: "x", Pos: 2}, {Kind: TokenEOF, Pos: 3}}},
		// operators
		{"+", []Token{{Kind: TokenBinary, Binary: Add, Pos: 1}, {Kind: TokenEOF, Pos: 2}}},
		{"-", []Token{{Kind: TokenBinary, Binary: Subtract, Pos: 1}, {Kind: TokenEOF, Pos: 2}}},
		{"*", []Token{{Kind: TokenBinary, Binary: Multiply, Pos: 1}, {Kind: TokenEOF, Pos: 2}}},
		{"/", []Token{{Kind: TokenBinary, Binary: Divide, Pos: 1}, {Kind: TokenEOF, Pos: 2}}},
		{"<", []Token{{Kind: TokenBinary, Binary: LessThan, Pos: 1}, {Kind: TokenEOF, Pos: 2}}},
		{"=", []Token{{Kind: TokenBinary, Binary: Equals, Pos: 1}, {Kind: TokenEOF, Pos: 2}}},
		{"&", []Token{{Kind: TokenBinary, Binary: And, Pos: 1}, {Kind: TokenEOF, Pos: 2}}},
		{"|", []Token{{Kind: TokenBinary, Binary: Or, Pos: 1}, {Kind: TokenEOF, Pos: 2}}},
		{"!", []Token{{Kind: TokenUnary, Unary: Not, Pos: 1}, {Kind: TokenEOF, Pos: 2}}},
		{"=>", []Token{{Kind: TokenArrow, Pos: 1}, {Kind: TokenEOF, Pos: 3}}},
		{"==>", []Token{{Kind: TokenBinary, Binary: Equals, Pos: 1}, {Kind: TokenArrow, Pos: 2}, {Kind: TokenEOF, Pos: 4}}},
		{"!!", []Token{{Kind: TokenUnary, Unary: Not, Pos: 1}, {Kind: TokenUnary, Unary: Not, Pos: 2}, {Kind: TokenEOF, Pos: 3}}},
		// brackets
		{"(,)", []Token{{Kind: TokenOpen, Pos: 1}, {Kind: TokenComma, Pos: 2}, {Kind: TokenClose, Pos: 3}, {Kind: TokenEOF, Pos: 4}}},
		// everything
		{
			"apply(func x => +(x, 1), 2)",
			[]Token{
				{Kind: TokenApply, Pos: 1},
				{Kind: TokenOpen, Pos: 6},
				{Kind: TokenFunc, Pos: 7},
				{Kind: TokenVar, Name: "x", Pos: 12},
				{Kind: TokenArrow, Pos: 14},
				{Kind: TokenBinary, Binary: Add, Pos: 17},
				{Kind: TokenOpen, Pos: 18},
				{Kind: TokenVar, Name: "x", Pos: 19},
				{Kind: TokenComma, Pos: 20},
				{Kind: TokenInt, Int: 1, Pos: 22},
				{Kind: TokenClose, Pos: 23},
				{Kind: TokenComma, Pos: 24},
				{Kind: TokenInt, Int: 2, Pos: 26},
				{Kind: TokenClose, Pos: 27},
				{Kind: TokenEOF, Pos: 28},
			},
		},
	}
	for _, c := range cases {
		got, err := Lex(c.src)
		if err != nil {
			t.Errorf("lexing %q: unexpected error %v", c.src, err)
			continue
		}
		if diff := cmp.Diff(c.tokens, got); diff != "" {
			t.Errorf("lexing %q: wrong tokens (-want +got):\n%s", c.src, diff)
		}
	}
}

func TestLexErrors(t *testing.T) {
	cases := []struct {
		src string
		col int
		ch  rune
	}{
		{"$", 1, '$'},
		{"x$", 2, '$'},
		{"$x", 1, '$'},
		{"A", 1, 'A'},
		{"TRUE", 2, 'R'},
		{"x_y", 2, '_'},
		{"1\n2", 2, '\n'},
		{"\r", 1, '\r'},
		{"= >", 3, '>'},
		{"π", 1, 'π'},
		{"+(1, 2) ;", 9, ';'},
	}
	for _, c := range cases {
		toks, err := Lex(c.src)
		if err == nil {
			t.Errorf("lexing %q: no error, got %v", c.src, toks)
			continue
		}
		if toks != nil {
			t.Errorf("lexing %q: tokens with error: %v", c.src, toks)
		}
		var ce *CharError
		if !errors.As(err, &ce) {
			t.Errorf("lexing %q: %#v is not *CharError", c.src, err)
			continue
		}
		if ce.Col != c.col || ce.Char != c.ch {
			t.Errorf("lexing %q: wrong error: want %q at %d, got %q at %d", c.src, c.ch, c.col, ce.Char, ce.Col)
		}
	}
}

func TestLexOverflow(t *testing.T) {
	cases := []struct {
		src  string
		col  int
		text string
	}{
		{"9223372036854775808", 1, "9223372036854775808"},
		{"+(1, 99999999999999999999)", 6, "99999999999999999999"},
	}
	for _, c := range cases {
		_, err := Lex(c.src)
		var ie *IntegerError
		if !errors.As(err, &ie) {
			t.Errorf("lexing %q: %#v is not *IntegerError", c.src, err)
			continue
		}
		if ie.Col != c.col || ie.Text != c.text {
			t.Errorf("lexing %q: wrong error: want %s at %d, got %s at %d", c.src, c.text, c.col, ie.Text, ie.Col)
		}
		if ie.Pos() != c.col {
			t.Errorf("lexing %q: Pos() is %d, want %d", c.src, ie.Pos(), c.col)
		}
	}
}

func TestTokenString(t *testing.T) {
	cases := []struct {
		tok  Token
		want string
	}{
		{Token{Kind: TokenInt, Int: 12, Pos: 3}, "Int:12@3"},
		{Token{Kind: TokenVar, Name: "x", Pos: 1}, "Var:x@1"},
		{Token{Kind: TokenBool, Bool: true, Pos: 2}, "Bool:T@2"},
		{Token{Kind: TokenBinary, Binary: LessThan, Pos: 4}, "Binary:<@4"},
		{Token{Kind: TokenUnary, Unary: Not, Pos: 5}, "Unary:!@5"},
		{Token{Kind: TokenArrow, Pos: 6}, "Arrow:=>@6"},
		{Token{Kind: TokenEOF, Pos: 7}, "EOF:end of input@7"},
	}
	for _, c := range cases {
		if got := c.tok.String(); got != c.want {
			t.Errorf("wrong token string: want %q, got %q", c.want, got)
		}
	}
}
