package prefix

import (
	"errors"
	"io"
	"strconv"
	"strings"
)

// Token is a lexical token. Only the field selected by Kind is meaningful,
// except for Pos, which every token has.
type Token struct {
	Kind TokenKind
	// Int is the value of a TokenInt.
	Int int64
	// Name is the name of a TokenVar.
	Name string
	// Bool is the value of a TokenBool.
	Bool bool
	// Binary is the operator of a TokenBinary.
	Binary BinaryOp
	// Unary is the operator of a TokenUnary.
	Unary UnaryOp
	// Pos is the 1-based column of the first rune of the token.
	Pos int
}

func (t Token) String() string {
	var s string
	switch t.Kind {
	case TokenInt:
		s = strconv.FormatInt(t.Int, 10)
	case TokenVar:
		s = t.Name
	case TokenBool:
		s = Bool(t.Bool).String()
	case TokenBinary:
		s = t.Binary.String()
	case TokenUnary:
		s = t.Unary.String()
	default:
		s = t.Kind.text()
	}
	return t.Kind.String() + ":" + s + "@" + strconv.Itoa(t.Pos)
}

// TokenKind is the kind of a token.
type TokenKind int8

const (
	tokenNone TokenKind = iota
	// TokenEOF marks the end of the input. Lex always ends its result with
	// exactly one TokenEOF.
	TokenEOF
	TokenOpen  // (
	TokenClose // )
	TokenComma // ,
	TokenInt   // decimal integer
	TokenVar   // lowercase identifier that is not a keyword
	TokenBool  // T or F
	TokenIf
	TokenThen
	TokenElse
	TokenFunc
	TokenApply
	TokenBinary // + - * / < = & |
	TokenUnary  // !
	TokenArrow  // =>
)

var tokenkinds = [...]struct{ name, text string }{
	tokenNone:   {"None", ""},
	TokenEOF:    {"EOF", "end of input"},
	TokenOpen:   {"Open", "("},
	TokenClose:  {"Close", ")"},
	TokenComma:  {"Comma", ","},
	TokenInt:    {"Int", "integer"},
	TokenVar:    {"Var", "variable name"},
	TokenBool:   {"Bool", "boolean"},
	TokenIf:     {"If", "if"},
	TokenThen:   {"Then", "then"},
	TokenElse:   {"Else", "else"},
	TokenFunc:   {"Func", "func"},
	TokenApply:  {"Apply", "apply"},
	TokenBinary: {"Binary", "binary operator"},
	TokenUnary:  {"Unary", "unary operator"},
	TokenArrow:  {"Arrow", "=>"},
}

func (k TokenKind) String() string {
	if k < 0 || int(k) >= len(tokenkinds) {
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
	return tokenkinds[k].name
}

// text describes the token kind for error messages.
func (k TokenKind) text() string {
	if k < 0 || int(k) >= len(tokenkinds) {
		return k.String()
	}
	return tokenkinds[k].text
}

var keywords = map[string]TokenKind{
	"if":    TokenIf,
	"then":  TokenThen,
	"else":  TokenElse,
	"func":  TokenFunc,
	"apply": TokenApply,
}

type lexer struct {
	src  io.RuneScanner
	buf  strings.Builder
	rune int
	eof  bool
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{src: src}
}

// Lex scans an entire input into tokens. The result always ends with a
// TokenEOF token unless there is an error, in which case the result is nil.
func Lex(src string) ([]Token, error) {
	scan := lex(strings.NewReader(src))
	var toks []Token
	for {
		tok, err := scan.next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Kind == TokenEOF {
			return toks, nil
		}
	}
}

// readRune reads a rune from the src and updates the lexer's position info.
// At the end of the input, the result is 0 and io.EOF.
func (l *lexer) readRune() (rune, error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.rune--
}

// peek reports the next rune without consuming it. ok is false at the end
// of the input.
func (l *lexer) peek() (r rune, ok bool, err error) {
	r, err = l.readRune()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, false, nil
		}
		return 0, false, err
	}
	l.unreadRune()
	return r, true, nil
}

// next scans the next token from the input. After the EOF token has been
// returned once, the result is an empty token with io.EOF.
func (l *lexer) next() (Token, error) {
	if l.eof {
		return Token{}, io.EOF
	}
	defer l.buf.Reset()
	for {
		r, err := l.readRune()
		tok := Token{Pos: l.rune}
		if err != nil {
			if errors.Is(err, io.EOF) {
				l.eof = true
				tok.Kind = TokenEOF
				tok.Pos = l.rune + 1
				return tok, nil
			}
			return tok, err
		}
		switch {
		case r == ' ', r == '\t':
			continue
		case '0' <= r && r <= '9':
			l.unreadRune()
			if err := l.scanRun(isDigit); err != nil {
				return tok, err
			}
			text := l.buf.String()
			n, err := strconv.ParseInt(text, 10, 64)
			if err != nil {
				// Only digits reach ParseInt, so the error is a range error.
				return tok, &IntegerError{Col: tok.Pos, Text: text}
			}
			tok.Kind = TokenInt
			tok.Int = n
			return tok, nil
		case 'a' <= r && r <= 'z':
			l.unreadRune()
			if err := l.scanRun(isLower); err != nil {
				return tok, err
			}
			text := l.buf.String()
			if k, ok := keywords[text]; ok {
				tok.Kind = k
				return tok, nil
			}
			tok.Kind = TokenVar
			tok.Name = text
			return tok, nil
		case r == 'T', r == 'F':
			tok.Kind = TokenBool
			tok.Bool = r == 'T'
			return tok, nil
		case r == '=':
			c, ok, err := l.peek()
			if err != nil {
				return tok, err
			}
			if ok && c == '>' {
				l.readRune()
				tok.Kind = TokenArrow
				return tok, nil
			}
			tok.Kind = TokenBinary
			tok.Binary = Equals
			return tok, nil
		case r == '!':
			tok.Kind = TokenUnary
			tok.Unary = Not
			return tok, nil
		case r == '(':
			tok.Kind = TokenOpen
			return tok, nil
		case r == ')':
			tok.Kind = TokenClose
			return tok, nil
		case r == ',':
			tok.Kind = TokenComma
			return tok, nil
		default:
			if k := strings.IndexRune(binoprunes, r); k >= 0 {
				tok.Kind = TokenBinary
				tok.Binary = BinaryOp(k)
				return tok, nil
			}
			return tok, &CharError{Col: tok.Pos, Char: r}
		}
	}
}

// binoprunes holds the single-rune binary operators, indexed by BinaryOp.
// = is handled separately because of =>.
const binoprunes = "+-*/<=&|"

// scanRun writes runes accepted by ok to the lexer's buffer until the first
// rune that is not accepted or the end of input.
func (l *lexer) scanRun(ok func(rune) bool) error {
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if !ok(r) {
			l.unreadRune()
			return nil
		}
		l.buf.WriteRune(r)
	}
}

func isDigit(r rune) bool { return '0' <= r && r <= '9' }
func isLower(r rune) bool { return 'a' <= r && r <= 'z' }

// CharError is an error indicating a rune which cannot begin any token. It
// implements InputError.
type CharError struct {
	// Col is the position of the rune.
	Col int
	// Char is the unexpected rune.
	Char rune
}

func (err *CharError) Error() string {
	return "unexpected character " + strconv.QuoteRune(err.Char)
}

func (err *CharError) Pos() int {
	return err.Col
}

// IntegerError is an error indicating an integer literal that does not fit
// in 64 bits. It implements InputError.
type IntegerError struct {
	// Col is the position of the first digit of the literal.
	Col int
	// Text is the literal.
	Text string
}

func (err *IntegerError) Error() string {
	return "integer literal " + err.Text + " overflows int64"
}

func (err *IntegerError) Pos() int {
	return err.Col
}
