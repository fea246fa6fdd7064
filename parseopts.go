package prefix

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

type trailopt bool

// parsectx holds general data for parsing.
type parsectx struct {
	// trailing indicates that tokens after a complete expression are ignored
	// rather than reported as errors.
	trailing bool
}

// AllowTrailing tells the parser to stop after the first complete expression
// and ignore any tokens that follow it, e.g. "1 2" parses as 1. By default,
// trailing tokens are a *TrailingError.
func AllowTrailing() ParseOption {
	return trailopt(true)
}

func (o trailopt) parseOption(p parsectx) parsectx {
	p.trailing = bool(o)
	return p
}
