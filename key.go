package setfold

import (
	"strings"
	"unicode"
)

// Delim separates columns within a line.
const Delim = '|'

// A Keyer derives the comparison key of a raw input line. The zero
// value keys each line by its whitespace-trimmed text.
type Keyer struct {
	// Columns to build the key from, in order. Empty selects the
	// whole line. Indices are zero based, indices past the last
	// column of a line are skipped.
	Columns []int
	// Normalize removes all whitespace from the key and upper-cases
	// it. Applied when the raw line is taken in, idempotent when
	// reapplied.
	Normalize bool
	// TrailingDelim terminates a projected key with Delim.
	TrailingDelim bool
}

// Key derives the comparison key for the raw line. The key never
// contains the line terminator.
func (k Keyer) Key(raw string) string {
	s := k.trim(raw)
	if len(k.Columns) == 0 {
		return s
	}
	fields := strings.Split(s, string(Delim))
	if len(fields) < 2 {
		return s
	}
	return k.join(fields, k.TrailingDelim)
}

// Project applies only the column selection of k to the raw line and
// terminates the result with Delim. It backs the column merge of
// Intersect. Lines without a column delimiter project to their
// trimmed text.
func (k Keyer) Project(raw string) string {
	s := k.trim(raw)
	fields := strings.Split(s, string(Delim))
	if len(fields) < 2 {
		return s
	}
	return k.join(fields, true)
}

func (k Keyer) join(fields []string, trailing bool) string {
	var sb strings.Builder
	n := 0
	for _, c := range k.Columns {
		if c < 0 || c >= len(fields) {
			continue
		}
		if n > 0 {
			sb.WriteByte(Delim)
		}
		sb.WriteString(fields[c])
		n++
	}
	if trailing {
		sb.WriteByte(Delim)
	}
	return sb.String()
}

// trim strips surrounding whitespace and, with Normalize set, all
// inner whitespace before upper-casing.
func (k Keyer) trim(s string) string {
	s = strings.TrimSpace(s)
	if !k.Normalize {
		return s
	}
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	return strings.ToUpper(s)
}
