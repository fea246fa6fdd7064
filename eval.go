package prefix

import (
	"context"
	"log/slog"
	"strconv"
)

// DefaultMaxDepth is the evaluation nesting limit of a context created
// without MaxDepth.
const DefaultMaxDepth = 1 << 14

// Context holds settings for evaluating expressions. A Context is not
// modified by evaluation, so it is safe to use one Context concurrently.
type Context struct {
	legacy bool
	depth  int
	log    *slog.Logger
}

// ContextOption is an option used when creating a context.
type ContextOption interface {
	ctxOption()
}

type (
	legacyopt bool
	depthopt  int
	logopt    struct{ l *slog.Logger }
)

func (legacyopt) ctxOption() {}
func (depthopt) ctxOption()  {}
func (logopt) ctxOption()    {}

// LegacySubstitution makes function application substitute arguments only
// through unary and binary operations. Parameters used inside conditionals,
// applications, or nested functions are left as free variables.
func LegacySubstitution() ContextOption {
	return legacyopt(true)
}

// MaxDepth sets the limit on how deeply evaluation may nest before failing
// with a *DepthError. Values less than 1 select DefaultMaxDepth.
func MaxDepth(n int) ContextOption {
	return depthopt(n)
}

// Logger sets a logger to receive debug records of function applications.
// A nil logger disables logging, which is the default.
func Logger(l *slog.Logger) ContextOption {
	return logopt{l}
}

// NewContext creates a new evaluation context. Options are applied in order,
// so later options override earlier ones.
func NewContext(opts ...ContextOption) *Context {
	ctx := Context{depth: DefaultMaxDepth}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case legacyopt:
			ctx.legacy = bool(opt)
		case depthopt:
			ctx.depth = int(opt)
			if ctx.depth < 1 {
				ctx.depth = DefaultMaxDepth
			}
		case logopt:
			ctx.log = opt.l
		default:
			panic("prefix: unknown option type")
		}
	}
	return &ctx
}

var defaultContext = NewContext()

// Legacy reports whether the context uses legacy substitution.
func (ctx *Context) Legacy() bool {
	return ctx.legacy
}

// MaxDepth returns the context's evaluation nesting limit.
func (ctx *Context) MaxDepth() int {
	return ctx.depth
}

// Eval reduces an expression to a value: an Int, Bool, *Func, or free Var.
// Evaluation is strict and proceeds left to right. The first error stops
// evaluation.
func (ctx *Context) Eval(e Expr) (Expr, error) {
	return ctx.eval(e, 0)
}

// Eval evaluates an expression with the default context.
func Eval(e Expr) (Expr, error) {
	return defaultContext.Eval(e)
}

// EvalString is a shortcut to parse and evaluate a string expression with
// the default context.
func EvalString(src string, opts ...ParseOption) (Expr, error) {
	e, err := Parse(src, opts...)
	if err != nil {
		return nil, err
	}
	return defaultContext.Eval(e)
}

func (ctx *Context) eval(e Expr, depth int) (Expr, error) {
	if depth >= ctx.depth {
		return nil, &DepthError{Limit: ctx.depth}
	}
	depth++
	switch e := e.(type) {
	case Int, Bool, Var, *Func:
		return e, nil
	case *Unary:
		c, err := ctx.eval(e.Child, depth)
		if err != nil {
			return nil, err
		}
		b, ok := c.(Bool)
		if !ok {
			return nil, &TypeError{Op: e.Op.Name(), Left: c}
		}
		return !b, nil
	case *Binary:
		l, err := ctx.eval(e.Left, depth)
		if err != nil {
			return nil, err
		}
		r, err := ctx.eval(e.Right, depth)
		if err != nil {
			return nil, err
		}
		return binop(e.Op, l, r)
	case *If:
		c, err := ctx.eval(e.Cond, depth)
		if err != nil {
			return nil, err
		}
		b, ok := c.(Bool)
		if !ok {
			return nil, &TypeError{Op: "If", Left: c}
		}
		if b {
			return ctx.eval(e.Then, depth)
		}
		return ctx.eval(e.Else, depth)
	case *Apply:
		f, err := ctx.eval(e.Fn, depth)
		if err != nil {
			return nil, err
		}
		a, err := ctx.eval(e.Arg, depth)
		if err != nil {
			return nil, err
		}
		fn, ok := f.(*Func)
		if !ok {
			return nil, &ApplyError{Got: f}
		}
		body := ctx.substitute(fn, a)
		if ctx.log != nil {
			ctx.log.LogAttrs(context.Background(), slog.LevelDebug, "apply",
				slog.String("func", fn.String()),
				slog.String("arg", a.String()),
				slog.String("body", body.String()),
				slog.Int("depth", depth),
			)
		}
		return ctx.eval(body, depth)
	case nil:
		panic("prefix: eval of nil expression")
	default:
		panic("prefix: invalid expression type " + strconv.Quote(typename(e)))
	}
}

// binop applies a binary operator to evaluated operands.
func binop(op BinaryOp, l, r Expr) (Expr, error) {
	switch op {
	case And, Or:
		a, ok := l.(Bool)
		b, ok2 := r.(Bool)
		if !ok || !ok2 {
			return nil, &TypeError{Op: op.Name(), Left: l, Right: r}
		}
		if op == And {
			return a && b, nil
		}
		return a || b, nil
	}
	a, ok := l.(Int)
	b, ok2 := r.(Int)
	if !ok || !ok2 {
		return nil, &TypeError{Op: op.Name(), Left: l, Right: r}
	}
	switch op {
	case Add:
		return a + b, nil
	case Subtract:
		return a - b, nil
	case Multiply:
		return a * b, nil
	case Divide:
		if b == 0 {
			return nil, &DivideError{Left: a}
		}
		return a / b, nil
	case LessThan:
		return Bool(a < b), nil
	case Equals:
		return Bool(a == b), nil
	default:
		panic("prefix: invalid binary operator " + op.String())
	}
}

// typename names the dynamic type of an expression for panic messages.
func typename(e Expr) string {
	switch e.(type) {
	case Int:
		return "Int"
	case Var:
		return "Var"
	case Bool:
		return "Bool"
	case *Binary:
		return "*Binary"
	case *Unary:
		return "*Unary"
	case *Func:
		return "*Func"
	case *If:
		return "*If"
	case *Apply:
		return "*Apply"
	default:
		return "unknown"
	}
}

// TypeError is an error indicating an operand of the wrong type, e.g. an
// integer where a boolean is required.
type TypeError struct {
	// Op names the operation: an operator name such as "Add" or "Not", or
	// "If" for a conditional.
	Op string
	// Left is the evaluated operand, or the left operand of a binary
	// operator, or the condition of a conditional.
	Left Expr
	// Right is the evaluated right operand of a binary operator. It is nil
	// for other operations.
	Right Expr
}

func (err *TypeError) Error() string {
	switch err.Op {
	case "If":
		return "invalid condition for 'If' expression"
	case "Not":
		return "invalid operand for 'Not' operator"
	default:
		return "invalid operands for '" + err.Op + "' operator"
	}
}

// ApplyError is an error indicating an application of something other than
// a function.
type ApplyError struct {
	// Got is the evaluated value in function position.
	Got Expr
}

func (err *ApplyError) Error() string {
	return "invalid function expression in apply: " + err.Got.String() + " is not a function"
}

// DivideError is an error indicating integer division by zero.
type DivideError struct {
	// Left is the dividend.
	Left Int
}

func (err *DivideError) Error() string {
	return "division by zero"
}

// DepthError is an error indicating that evaluation nested past the
// context's limit. It usually results from an application that reduces to
// itself.
type DepthError struct {
	// Limit is the context's nesting limit.
	Limit int
}

func (err *DepthError) Error() string {
	return "evaluation exceeded maximum depth " + strconv.Itoa(err.Limit)
}
