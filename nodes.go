package prefix

import (
	"strconv"
	"strings"
)

// Expr is a node in the syntax tree of an expression. The concrete types are
// Int, Var, Bool, *Binary, *Unary, *Func, *If, and *Apply; no other package
// can add variants.
//
// Trees are immutable once built. Functions in this package which produce
// new trees may share unchanged subtrees with their inputs.
type Expr interface {
	// String renders the expression in its display form, e.g. "1 + 2". The
	// display form is not necessarily valid input; see Source.
	String() string

	fmt(b *strings.Builder)
	src(b *strings.Builder)
}

// Int is an integer literal.
type Int int64

// Var is a variable reference. A Var which is not substituted by a function
// application is a free variable and evaluates to itself.
type Var string

// Bool is a boolean literal, written T or F.
type Bool bool

// Binary is a binary operation, written op(Left, Right).
type Binary struct {
	Op    BinaryOp
	Left  Expr
	Right Expr
}

// Unary is a unary operation, written op Child.
type Unary struct {
	Op    UnaryOp
	Child Expr
}

// Func is a function of one parameter, written func Param => Body. It
// captures nothing; its value is exactly its definition.
type Func struct {
	Param string
	Body  Expr
}

// If is a conditional, written if Cond then Then else Else.
type If struct {
	Cond Expr
	Then Expr
	Else Expr
}

// Apply is a function application, written apply(Fn, Arg).
type Apply struct {
	Fn  Expr
	Arg Expr
}

// BinaryOp is a binary operator.
type BinaryOp int8

const (
	Add BinaryOp = iota
	Subtract
	Multiply
	Divide
	LessThan
	Equals
	And
	Or
)

var binopsyms = [...]string{"+", "-", "*", "/", "<", "=", "&", "|"}
var binopnames = [...]string{"Add", "Subtract", "Multiply", "Divide", "LessThan", "Equals", "And", "Or"}

// String returns the operator's symbol.
func (op BinaryOp) String() string {
	if op < 0 || int(op) >= len(binopsyms) {
		return "BinaryOp(" + strconv.Itoa(int(op)) + ")"
	}
	return binopsyms[op]
}

// Name returns the operator's name, e.g. "Add" for +.
func (op BinaryOp) Name() string {
	if op < 0 || int(op) >= len(binopnames) {
		return "BinaryOp(" + strconv.Itoa(int(op)) + ")"
	}
	return binopnames[op]
}

// UnaryOp is a unary operator.
type UnaryOp int8

const (
	Not UnaryOp = iota
)

// String returns the operator's symbol.
func (op UnaryOp) String() string {
	if op != Not {
		return "UnaryOp(" + strconv.Itoa(int(op)) + ")"
	}
	return "!"
}

// Name returns the operator's name, "Not".
func (op UnaryOp) Name() string {
	if op != Not {
		return "UnaryOp(" + strconv.Itoa(int(op)) + ")"
	}
	return "Not"
}

func (n Int) String() string     { return render(n) }
func (n Var) String() string     { return render(n) }
func (n Bool) String() string    { return render(n) }
func (n *Binary) String() string { return render(n) }
func (n *Unary) String() string  { return render(n) }
func (n *Func) String() string   { return render(n) }
func (n *If) String() string     { return render(n) }
func (n *Apply) String() string  { return render(n) }

func render(e Expr) string {
	var b strings.Builder
	e.fmt(&b)
	return b.String()
}

func (n Int) fmt(b *strings.Builder) {
	b.WriteString(strconv.FormatInt(int64(n), 10))
}

func (n Var) fmt(b *strings.Builder) {
	b.WriteString(string(n))
}

func (n Bool) fmt(b *strings.Builder) {
	if n {
		b.WriteByte('T')
	} else {
		b.WriteByte('F')
	}
}

func (n *Binary) fmt(b *strings.Builder) {
	n.Left.fmt(b)
	b.WriteByte(' ')
	b.WriteString(n.Op.String())
	b.WriteByte(' ')
	n.Right.fmt(b)
}

func (n *Unary) fmt(b *strings.Builder) {
	b.WriteString(n.Op.String())
	n.Child.fmt(b)
}

func (n *Func) fmt(b *strings.Builder) {
	b.WriteString("func ")
	b.WriteString(n.Param)
	b.WriteString(" => ")
	n.Body.fmt(b)
}

func (n *If) fmt(b *strings.Builder) {
	b.WriteString("if ")
	n.Cond.fmt(b)
	b.WriteString(" then ")
	n.Then.fmt(b)
	b.WriteString(" else ")
	n.Else.fmt(b)
}

func (n *Apply) fmt(b *strings.Builder) {
	n.Fn.fmt(b)
	b.WriteString(" (")
	n.Arg.fmt(b)
	b.WriteByte(')')
}

// Source renders an expression in the prefix syntax accepted by Parse. For
// any tree produced by the parser, parsing the result gives an equal tree.
// Negative integers, which only arise from evaluation, are written as
// subtractions from zero.
func Source(e Expr) string {
	var b strings.Builder
	e.src(&b)
	return b.String()
}

func (n Int) src(b *strings.Builder) {
	if n >= 0 {
		n.fmt(b)
		return
	}
	// uint64 conversion so that the most negative value has a magnitude.
	b.WriteString("-(0, ")
	b.WriteString(strconv.FormatUint(-uint64(n), 10))
	b.WriteByte(')')
}

func (n Var) src(b *strings.Builder)  { n.fmt(b) }
func (n Bool) src(b *strings.Builder) { n.fmt(b) }

func (n *Binary) src(b *strings.Builder) {
	b.WriteString(n.Op.String())
	b.WriteByte('(')
	n.Left.src(b)
	b.WriteString(", ")
	n.Right.src(b)
	b.WriteByte(')')
}

func (n *Unary) src(b *strings.Builder) {
	b.WriteString(n.Op.String())
	n.Child.src(b)
}

func (n *Func) src(b *strings.Builder) {
	b.WriteString("func ")
	b.WriteString(n.Param)
	b.WriteString(" => ")
	n.Body.src(b)
}

func (n *If) src(b *strings.Builder) {
	b.WriteString("if ")
	n.Cond.src(b)
	b.WriteString(" then ")
	n.Then.src(b)
	b.WriteString(" else ")
	n.Else.src(b)
}

func (n *Apply) src(b *strings.Builder) {
	b.WriteString("apply(")
	n.Fn.src(b)
	b.WriteString(", ")
	n.Arg.src(b)
	b.WriteByte(')')
}
