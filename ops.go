package setfold

import "strings"

// Op is one of the three set operators of an expression.
type Op int

const (
	OpNone Op = iota
	// OpOr keeps every key of both operands, the right operand's
	// line wins on a key collision.
	OpOr
	// OpAnd keeps the keys present in both operands with the left
	// operand's lines, optionally merging right columns.
	OpAnd
	// OpNot keeps the keys of the left operand that the right
	// operand does not have.
	OpNot
)

func (o Op) String() string {
	switch o {
	case OpOr:
		return "or"
	case OpAnd:
		return "and"
	case OpNot:
		return "not"
	}
	return "none"
}

// ParseOp recognizes an operator keyword, ignoring case. ok is false
// for any other token.
func ParseOp(token string) (op Op, ok bool) {
	switch strings.ToLower(token) {
	case "or":
		return OpOr, true
	case "and":
		return OpAnd, true
	case "not":
		return OpNot, true
	}
	return OpNone, false
}

// Union returns a fresh line set with every key of lhs and rhs. For
// keys in both sets the rhs line wins. Neither input is changed.
func Union(lhs, rhs *LineSet) *LineSet {
	res := NewLineSet(lhs.Name())
	for _, key := range lhs.keys {
		res.Put(key, lhs.recs[key])
	}
	for _, key := range rhs.keys {
		res.Put(key, rhs.recs[key])
	}
	return res
}

// Intersect returns a fresh line set with the keys present in both
// lhs and rhs. Without merge columns the lhs line is kept verbatim.
// With merge columns the matching rhs line is projected onto them and
// appended, delimiter-separated and delimiter-terminated, to the lhs
// line before its terminator:
//
//	lhs "11111|CD|5" merged with rhs "11111|CD|24" on column {2}
//	gives "11111|CD|5|24|"
//
// Neither input is changed.
func Intersect(lhs, rhs *LineSet, merge []int) *LineSet {
	res := NewLineSet(lhs.Name())
	mk := Keyer{Columns: merge}
	for _, key := range lhs.keys {
		rraw, ok := rhs.recs[key]
		if !ok {
			continue
		}
		raw := lhs.recs[key]
		if len(merge) > 0 {
			text, sep := chompLineSep(raw)
			raw = text + string(Delim) + mk.Project(rraw) + sep
		}
		res.Put(key, raw)
	}
	return res
}

// Difference returns a fresh line set with the keys of lhs that are
// absent from rhs, keeping the lhs lines. Neither input is changed.
func Difference(lhs, rhs *LineSet) *LineSet {
	res := NewLineSet(lhs.Name())
	for _, key := range lhs.keys {
		if _, ok := rhs.recs[key]; !ok {
			res.Put(key, lhs.recs[key])
		}
	}
	return res
}
