package prefix

import (
	"math"
	"testing"
)

func TestRender(t *testing.T) {
	cases := []struct {
		name string
		e    Expr
		want string
	}{
		{"int", Int(10), "10"},
		{"neg", Int(-3), "-3"},
		{"min", Int(math.MinInt64), "-9223372036854775808"},
		{"var", Var("abc"), "abc"},
		{"true", Bool(true), "T"},
		{"false", Bool(false), "F"},
		{"add", bin(Add, Int(3), Int(4)), "3 + 4"},
		{"ops", bin(Or, bin(LessThan, Int(1), Int(2)), bin(Equals, Var("a"), Var("b"))), "1 < 2 | a = b"},
		{"not", not(Bool(true)), "!T"},
		{"notnot", not(not(Var("x"))), "!!x"},
		{"func", fn("x", bin(Multiply, Var("x"), Int(2))), "func x => x * 2"},
		{"apply", app(Var("f"), Int(10)), "f (10)"},
		{"apply-nested", app(app(Var("f"), Int(1)), bin(Add, Int(2), Int(3))), "f (1) (2 + 3)"},
		{"if", cond(Var("c"), Int(1), Int(2)), "if c then 1 else 2"},
		{"if-infix", cond(Bool(true), bin(Add, Int(1), Int(2)), Int(3)), "if T then 1 + 2 else 3"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.e.String(); got != c.want {
				t.Errorf("want %q, got %q", c.want, got)
			}
		})
	}
}

func TestSource(t *testing.T) {
	cases := []struct {
		name string
		e    Expr
		want string
	}{
		{"neg", Int(-3), "-(0, 3)"},
		{"min", Int(math.MinInt64), "-(0, 9223372036854775808)"},
		{"apply", app(Var("f"), Int(10)), "apply(f, 10)"},
		{"if-infix", cond(Bool(true), bin(Add, Int(1), Int(2)), Int(3)), "if T then +(1, 2) else 3"},
		{"not", not(bin(And, Bool(true), Bool(false))), "!&(T, F)"},
		{"func", fn("x", app(Var("x"), Var("x"))), "func x => apply(x, x)"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Source(c.e); got != c.want {
				t.Errorf("want %q, got %q", c.want, got)
			}
		})
	}
	// Negative values written as subtractions evaluate back to themselves.
	r, err := EvalString(Source(Int(-12)))
	if err != nil {
		t.Fatal(err)
	}
	if r != Expr(Int(-12)) {
		t.Errorf("-12 became %v", r)
	}
}

func TestOpNames(t *testing.T) {
	ops := []struct {
		op   BinaryOp
		sym  string
		name string
	}{
		{Add, "+", "Add"},
		{Subtract, "-", "Subtract"},
		{Multiply, "*", "Multiply"},
		{Divide, "/", "Divide"},
		{LessThan, "<", "LessThan"},
		{Equals, "=", "Equals"},
		{And, "&", "And"},
		{Or, "|", "Or"},
		{BinaryOp(8), "BinaryOp(8)", "BinaryOp(8)"},
		{BinaryOp(-1), "BinaryOp(-1)", "BinaryOp(-1)"},
	}
	for _, c := range ops {
		if c.op.String() != c.sym || c.op.Name() != c.name {
			t.Errorf("wrong op: want %s %s, got %s %s", c.sym, c.name, c.op.String(), c.op.Name())
		}
	}
	if Not.String() != "!" || Not.Name() != "Not" {
		t.Errorf("wrong op: want ! Not, got %s %s", Not.String(), Not.Name())
	}
	if UnaryOp(1).String() != "UnaryOp(1)" {
		t.Errorf("wrong op: got %s", UnaryOp(1).String())
	}
}
