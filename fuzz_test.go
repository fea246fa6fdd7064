package prefix_test

import (
	"testing"

	"github.com/zephyrtronium/prefix"
)

func FuzzParse(f *testing.F) {
	f.Add("x")
	f.Add("+(1, 2)")
	f.Add("func x => if T then x else 0")
	f.Add("apply(f, ==>")
	f.Fuzz(func(t *testing.T, s string) {
		e, err := prefix.Parse(s)
		if err != nil {
			return
		}
		src := prefix.Source(e)
		r, err := prefix.Parse(src)
		if err != nil {
			t.Fatalf("source form %q of %q does not parse: %v", src, s, err)
		}
		if got := prefix.Source(r); got != src {
			t.Errorf("source form %q of %q changed to %q", src, s, got)
		}
		// The display form is not prefix syntax, but it uses only tokens
		// of the language.
		if _, err := prefix.Lex(e.String()); err != nil {
			t.Errorf("display form %q of %q does not lex: %v", e.String(), s, err)
		}
	})
}

func FuzzEval(f *testing.F) {
	f.Add("x")
	f.Add("/(1, 0)")
	f.Add("apply(func x => apply(x, x), func x => apply(x, x))")
	f.Add("apply(func y => func x => +(x, y), x)")
	ctx := prefix.NewContext(prefix.MaxDepth(256))
	legacy := prefix.NewContext(prefix.LegacySubstitution(), prefix.MaxDepth(256))
	f.Fuzz(func(t *testing.T, s string) {
		ctx.Run(s)
		legacy.Run(s, prefix.AllowTrailing())
	})
}
