package setfold

// Config collects the options that drive key derivation and the set
// operators. It is resolved once, before evaluation starts, and is
// never written afterwards.
type Config struct {
	// Column selections for the left and the right operand of an
	// operation. Empty means: compare whole lines.
	ColumnsLHS []int
	ColumnsRHS []int
	// Columns of the right operand that "and" appends to matching
	// lines. Empty disables merging.
	MergeColumns []int
	// Remove all whitespace from keys and upper-case them.
	Normalize bool
	// Terminate projected keys with a trailing column delimiter.
	TrailingDelim bool
	// Trace evaluation steps to the diagnostic log.
	Debug bool
}

// LHSKeyer returns the Keyer that loads left operands.
func (c Config) LHSKeyer() Keyer {
	return Keyer{Columns: c.ColumnsLHS, Normalize: c.Normalize, TrailingDelim: c.TrailingDelim}
}

// RHSKeyer returns the Keyer that loads right operands.
func (c Config) RHSKeyer() Keyer {
	return Keyer{Columns: c.ColumnsRHS, Normalize: c.Normalize, TrailingDelim: c.TrailingDelim}
}
