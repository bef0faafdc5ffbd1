/*
Package setfold computes set-algebraic combinations of the line
contents of text files. The files to combine and the operations to
apply are given as a single expression of whitespace separated tokens
where filenames alternate with the operator keywords "and", "or" and
"not" (case does not matter):

	left.txt and right.txt
	a.txt or b.txt not c.txt

Each file is loaded into a line set, i.e. a mapping from a comparison
key to the original line. By default the key is the whole line with
surrounding whitespace removed. When a line occurs more than once in
one file the last occurrence wins.

The operators work on the keys of two line sets:

  - "or" keeps every key of both sets. When a key is in both sets the
    right operand's line is kept.
  - "and" keeps the keys that are in both sets with the left operand's
    lines.
  - "not" keeps the keys of the left set that are not in the right set.

Expressions are reduced strictly left to right. There is no operator
precedence and there are no parentheses, so

	a.txt and b.txt or c.txt

is the "and" of a.txt and b.txt, "or"-ed with c.txt, never the other
way around. This matches the behaviour of classic line-set tools and
keeps an expression a flat fold over its tokens.

# Column keys

Lines that carry '|'-separated columns can be compared on a selection
of columns instead of the whole line. A Keyer with Columns {0, 1}
reduces the line

	12345|DVD|3

to the key "12345|DVD". Column indices are zero based, indices beyond
the last column are skipped and a line without any '|' is keyed by its
trimmed text as if no columns were configured. With Normalize set all
whitespace is removed from the key and it is upper-cased, which makes
comparisons immune to spacing and case differences.

An "and" operation can additionally merge columns of the matching
right line into the emitted left line, see Intersect.

# Results

The resulting line set holds the original lines including their line
terminators. Emission via LineSet.WriteTo sorts the keys so that the
output is deterministic regardless of how the set was built.
*/
package setfold
