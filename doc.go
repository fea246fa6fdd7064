// Package prefix implements a small expression language written in prefix
// notation.
//
// Every operator comes before its operands, and binary operations are fully
// bracketed: "+(1, *(2, 3))" is 7. There are integers, booleans written T and
// F, the operators + - * / < = & | and !, conditionals written
// "if c then t else e", and functions of one parameter written
// "func x => body" and called with "apply(f, arg)".
//
// Evaluation has no environment. Applying a function substitutes the
// evaluated argument into the function's body, and a variable which is never
// substituted evaluates to itself. Substitution reaches every part of the
// body except functions which rebind the parameter, and it renames
// parameters as needed to avoid capturing free variables of the argument.
// NewContext accepts LegacySubstitution for the older rule, which substitutes
// only through operators. Evaluation nests at most MaxDepth levels, so
// self-application fails with a *DepthError instead of running forever.
package prefix
