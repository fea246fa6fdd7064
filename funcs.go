package prefix

// substitute returns the body of fn with arg in place of its parameter,
// following the context's substitution rule.
func (ctx *Context) substitute(fn *Func, arg Expr) Expr {
	if ctx.legacy {
		return substLegacy(fn.Body, fn.Param, arg)
	}
	return Substitute(fn.Body, fn.Param, arg)
}

// Substitute replaces each free occurrence of the variable param in e with
// arg. It descends into every kind of expression, stopping only at functions
// which rebind param. When a function's parameter is free in arg and the
// function's body refers to param, the parameter is renamed first, so that
// substitution never captures variables of arg.
func Substitute(e Expr, param string, arg Expr) Expr {
	free := make(map[string]bool)
	freevars(arg, nil, free)
	return subst(e, param, arg, free)
}

func subst(e Expr, param string, arg Expr, free map[string]bool) Expr {
	switch e := e.(type) {
	case Int, Bool:
		return e
	case Var:
		if string(e) == param {
			return arg
		}
		return e
	case *Unary:
		return &Unary{Op: e.Op, Child: subst(e.Child, param, arg, free)}
	case *Binary:
		return &Binary{
			Op:    e.Op,
			Left:  subst(e.Left, param, arg, free),
			Right: subst(e.Right, param, arg, free),
		}
	case *If:
		return &If{
			Cond: subst(e.Cond, param, arg, free),
			Then: subst(e.Then, param, arg, free),
			Else: subst(e.Else, param, arg, free),
		}
	case *Apply:
		return &Apply{
			Fn:  subst(e.Fn, param, arg, free),
			Arg: subst(e.Arg, param, arg, free),
		}
	case *Func:
		if e.Param == param {
			// Shadowed.
			return e
		}
		if !free[e.Param] || !occurs(e.Body, param) {
			return &Func{Param: e.Param, Body: subst(e.Body, param, arg, free)}
		}
		x := fresh(e.Param, param, free, e.Body)
		body := Substitute(e.Body, e.Param, Var(x))
		return &Func{Param: x, Body: subst(body, param, arg, free)}
	default:
		panic("prefix: invalid expression type " + typename(e))
	}
}

// substLegacy substitutes arg for param through unary and binary operations
// only. Conditionals, applications, and functions are returned unchanged.
func substLegacy(e Expr, param string, arg Expr) Expr {
	switch e := e.(type) {
	case Var:
		if string(e) == param {
			return arg
		}
		return e
	case *Unary:
		return &Unary{Op: e.Op, Child: substLegacy(e.Child, param, arg)}
	case *Binary:
		return &Binary{
			Op:    e.Op,
			Left:  substLegacy(e.Left, param, arg),
			Right: substLegacy(e.Right, param, arg),
		}
	default:
		return e
	}
}

// fresh chooses a new name for the parameter base. The result is a valid
// variable name which is not a keyword, not avoid, not free in arg, and
// not free in body.
func fresh(base, avoid string, free map[string]bool, body Expr) string {
	used := make(map[string]bool)
	freevars(body, nil, used)
	for i := 0; ; i++ {
		x := base + suffix(i)
		if x == avoid || free[x] || used[x] {
			continue
		}
		if _, kw := keywords[x]; kw {
			continue
		}
		return x
	}
}

// suffix maps 0, 1, ..., 25, 26, ... to a, b, ..., z, aa, ....
func suffix(i int) string {
	var b []byte
	for {
		b = append(b, byte('a'+i%26))
		i = i/26 - 1
		if i < 0 {
			break
		}
	}
	for l, r := 0, len(b)-1; l < r; l, r = l+1, r-1 {
		b[l], b[r] = b[r], b[l]
	}
	return string(b)
}

// freevars adds the free variables of e to set. bound holds the parameters
// of enclosing functions.
func freevars(e Expr, bound []string, set map[string]bool) {
	switch e := e.(type) {
	case Int, Bool:
	case Var:
		for _, b := range bound {
			if b == string(e) {
				return
			}
		}
		set[string(e)] = true
	case *Unary:
		freevars(e.Child, bound, set)
	case *Binary:
		freevars(e.Left, bound, set)
		freevars(e.Right, bound, set)
	case *If:
		freevars(e.Cond, bound, set)
		freevars(e.Then, bound, set)
		freevars(e.Else, bound, set)
	case *Apply:
		freevars(e.Fn, bound, set)
		freevars(e.Arg, bound, set)
	case *Func:
		freevars(e.Body, append(bound[:len(bound):len(bound)], e.Param), set)
	default:
		panic("prefix: invalid expression type " + typename(e))
	}
}

// occurs reports whether name is free in e.
func occurs(e Expr, name string) bool {
	set := make(map[string]bool)
	freevars(e, nil, set)
	return set[name]
}

// Vars returns the sorted names of the free variables of an expression.
func Vars(e Expr) []string {
	set := make(map[string]bool)
	freevars(e, nil, set)
	if len(set) == 0 {
		return nil
	}
	names := make([]string, 0, len(set))
	for k := range set {
		names = append(names, k)
	}
	sortstrs(names)
	return names
}

// sortstrs sorts a string slice without using package sort because that has
// reflection and allocation problems.
func sortstrs(names []string) {
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j] < names[j-1]; j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
}
