package prefix

// Expr   = int | name | bool
//        | UnOp Expr
//        | BinOp '(' Expr ',' Expr ')'
//        | 'func' name '=>' Expr
//        | 'apply' '(' Expr ',' Expr ')'
//        | 'if' Expr 'then' Expr 'else' Expr
// UnOp   = '!'
// BinOp  = '+' | '-' | '*' | '/' | '<' | '=' | '&' | '|'
//
// Every production is decided by its first token, so the parser never
// backtracks and needs no precedence rules.

// Parse lexes and parses an expression. The given options are applied in
// order. Errors from lexing are returned unchanged.
func Parse(src string, opts ...ParseOption) (Expr, error) {
	toks, err := Lex(src)
	if err != nil {
		return nil, err
	}
	return ParseTokens(toks, opts...)
}

// ParseTokens parses an expression from a token sequence, such as one
// returned by Lex. toks is not modified. The sequence need not end with a
// TokenEOF; parsing stops at the first TokenEOF or the end of toks,
// whichever is first.
func ParseTokens(toks []Token, opts ...ParseOption) (Expr, error) {
	var p parsectx
	for _, opt := range opts {
		p = opt.parseOption(p)
	}
	scan := parser{toks: toks}
	e, err := scan.expr()
	if err != nil {
		return nil, err
	}
	if !p.trailing {
		if tok := scan.peek(); tok.Kind != TokenEOF {
			return nil, &TrailingError{Got: tok}
		}
	}
	return e, nil
}

// parser is a cursor over a token sequence.
type parser struct {
	toks []Token
	pos  int
}

// peek returns the token under the cursor without moving it.
func (p *parser) peek() Token {
	if p.pos < len(p.toks) {
		return p.toks[p.pos]
	}
	// Token sequences not produced by Lex may lack the EOF token.
	tok := Token{Kind: TokenEOF, Pos: 1}
	if n := len(p.toks); n > 0 {
		tok.Pos = p.toks[n-1].Pos + 1
	}
	return tok
}

// skip moves the cursor past the current token. The cursor never moves past
// an EOF token.
func (p *parser) skip() {
	if p.pos < len(p.toks) && p.toks[p.pos].Kind != TokenEOF {
		p.pos++
	}
}

// expect consumes a token of kind k or returns an error describing where
// the token was required.
func (p *parser) expect(k TokenKind, where string) (Token, error) {
	tok := p.peek()
	if tok.Kind != k {
		return tok, &ExpectedError{Want: k, Got: tok, Where: where}
	}
	p.skip()
	return tok, nil
}

// expr parses a single expression.
func (p *parser) expr() (Expr, error) {
	tok := p.peek()
	switch tok.Kind {
	case TokenEOF:
		return nil, &EndError{Col: tok.Pos}
	case TokenInt:
		p.skip()
		return Int(tok.Int), nil
	case TokenVar:
		p.skip()
		return Var(tok.Name), nil
	case TokenBool:
		p.skip()
		return Bool(tok.Bool), nil
	case TokenUnary:
		p.skip()
		child, err := p.expr()
		if err != nil {
			return nil, err
		}
		return &Unary{Op: tok.Unary, Child: child}, nil
	case TokenBinary:
		return p.binary()
	case TokenFunc:
		return p.fn()
	case TokenApply:
		return p.apply()
	case TokenIf:
		return p.cond()
	default:
		return nil, &ExpressionError{Got: tok}
	}
}

// pair parses '(' Expr ',' Expr ')'. The strings describe the grammar
// positions of the open bracket and of the two operands.
func (p *parser) pair(open, left, right string) (Expr, Expr, error) {
	if _, err := p.expect(TokenOpen, open); err != nil {
		return nil, nil, err
	}
	l, err := p.expr()
	if err != nil {
		return nil, nil, err
	}
	if _, err := p.expect(TokenComma, left); err != nil {
		return nil, nil, err
	}
	r, err := p.expr()
	if err != nil {
		return nil, nil, err
	}
	if _, err := p.expect(TokenClose, right); err != nil {
		return nil, nil, err
	}
	return l, r, nil
}

// binary parses BinOp '(' Expr ',' Expr ')'.
func (p *parser) binary() (Expr, error) {
	op, err := p.expect(TokenBinary, "")
	if err != nil {
		return nil, err
	}
	l, r, err := p.pair(
		"after binary operator",
		"after left operand of binary expression",
		"after right operand of binary expression",
	)
	if err != nil {
		return nil, err
	}
	return &Binary{Op: op.Binary, Left: l, Right: r}, nil
}

// fn parses 'func' name '=>' Expr.
func (p *parser) fn() (Expr, error) {
	if _, err := p.expect(TokenFunc, ""); err != nil {
		return nil, err
	}
	param := p.peek()
	if param.Kind != TokenVar {
		return nil, &ParamError{Got: param}
	}
	p.skip()
	if _, err := p.expect(TokenArrow, "after function parameter"); err != nil {
		return nil, err
	}
	body, err := p.expr()
	if err != nil {
		return nil, err
	}
	return &Func{Param: param.Name, Body: body}, nil
}

// apply parses 'apply' '(' Expr ',' Expr ')'.
func (p *parser) apply() (Expr, error) {
	if _, err := p.expect(TokenApply, ""); err != nil {
		return nil, err
	}
	f, a, err := p.pair(
		"after apply",
		"after function expression",
		"after argument expression",
	)
	if err != nil {
		return nil, err
	}
	return &Apply{Fn: f, Arg: a}, nil
}

// cond parses 'if' Expr 'then' Expr 'else' Expr.
func (p *parser) cond() (Expr, error) {
	if _, err := p.expect(TokenIf, ""); err != nil {
		return nil, err
	}
	c, err := p.expr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenThen, "after condition"); err != nil {
		return nil, err
	}
	t, err := p.expr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenElse, "after then branch"); err != nil {
		return nil, err
	}
	e, err := p.expr()
	if err != nil {
		return nil, err
	}
	return &If{Cond: c, Then: t, Else: e}, nil
}
