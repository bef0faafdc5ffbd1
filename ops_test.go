package setfold

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadT(t *testing.T, text string, k Keyer) *LineSet {
	t.Helper()
	ls, err := Load(t.Name(), strings.NewReader(text), k)
	require.NoError(t, err)
	return ls
}

func sortedKeys(ls *LineSet) []string {
	keys := ls.Keys()
	sort.Strings(keys)
	return keys
}

func TestUnion(t *testing.T) {
	a := loadT(t, "x\ny\n", Keyer{})
	b := loadT(t, "y\nz\n", Keyer{})
	t.Run("contains every key of both", func(t *testing.T) {
		res := Union(a, b)
		assert.Equal(t, []string{"x", "y", "z"}, sortedKeys(res))
		assert.LessOrEqual(t, res.Len(), a.Len()+b.Len())
	})
	t.Run("rhs wins on a collision", func(t *testing.T) {
		a := loadT(t, "k|left\n", Keyer{Columns: []int{0}})
		b := loadT(t, "k|right\n", Keyer{Columns: []int{0}})
		raw, _ := Union(a, b).Get("k")
		assert.Equal(t, "k|right\n", raw)
	})
	t.Run("commutative key set", func(t *testing.T) {
		assert.Equal(t, sortedKeys(Union(a, b)), sortedKeys(Union(b, a)))
	})
	t.Run("idempotent", func(t *testing.T) {
		res := Union(a, a)
		assert.Equal(t, a.Keys(), res.Keys())
	})
	t.Run("does not touch its inputs", func(t *testing.T) {
		Union(a, b)
		assert.Equal(t, []string{"x", "y"}, a.Keys())
		assert.Equal(t, []string{"y", "z"}, b.Keys())
	})
}

func TestIntersect(t *testing.T) {
	a := loadT(t, "x\ny\n", Keyer{})
	b := loadT(t, "y\nz\n", Keyer{})
	t.Run("only keys in both", func(t *testing.T) {
		res := Intersect(a, b, nil)
		assert.Equal(t, []string{"y"}, res.Keys())
		assert.LessOrEqual(t, res.Len(), min(a.Len(), b.Len()))
	})
	t.Run("keeps the lhs line without merge columns", func(t *testing.T) {
		a := loadT(t, "k|left\n", Keyer{Columns: []int{0}})
		b := loadT(t, "k|right\n", Keyer{Columns: []int{0}})
		raw, _ := Intersect(a, b, nil).Get("k")
		assert.Equal(t, "k|left\n", raw)
	})
	t.Run("intersect with itself is identity", func(t *testing.T) {
		res := Intersect(a, a, nil)
		assert.Equal(t, a.Keys(), res.Keys())
		for _, key := range a.Keys() {
			want, _ := a.Get(key)
			have, _ := res.Get(key)
			assert.Equal(t, want, have)
		}
	})
	t.Run("merges right columns", func(t *testing.T) {
		k := Keyer{Columns: []int{0, 1}}
		m1 := loadT(t, "12345|DVD|3\n11111|CD|5\n", k)
		m2 := loadT(t, "11111|CD|24\n", k)
		res := Intersect(m1, m2, []int{2})
		require.Equal(t, 1, res.Len())
		raw, ok := res.Get("11111|CD")
		assert.True(t, ok)
		assert.Equal(t, "11111|CD|5|24|\n", raw)
	})
	t.Run("merge keeps the lhs terminator", func(t *testing.T) {
		k := Keyer{Columns: []int{0}}
		m1 := loadT(t, "k|5\r\n", k)
		m2 := loadT(t, "k|24\n", k)
		raw, _ := Intersect(m1, m2, []int{1}).Get("k")
		assert.Equal(t, "k|5|24|\r\n", raw)
	})
}

func TestDifference(t *testing.T) {
	a := loadT(t, "x\ny\n", Keyer{})
	b := loadT(t, "y\nz\n", Keyer{})
	t.Run("keys of lhs absent from rhs", func(t *testing.T) {
		res := Difference(a, b)
		assert.Equal(t, []string{"x"}, res.Keys())
		for _, key := range res.Keys() {
			_, ok := b.Get(key)
			assert.False(t, ok, "result and rhs share key %q", key)
		}
	})
	t.Run("difference with itself is empty", func(t *testing.T) {
		assert.Zero(t, Difference(a, a).Len())
	})
	t.Run("empty rhs yields lhs unchanged", func(t *testing.T) {
		res := Difference(a, NewLineSet("empty"))
		assert.Equal(t, a.Keys(), res.Keys())
	})
}

func TestParseOp(t *testing.T) {
	for token, want := range map[string]Op{
		"and": OpAnd, "AND": OpAnd, "Or": OpOr, "not": OpNot, "NOT": OpNot,
	} {
		op, ok := ParseOp(token)
		assert.True(t, ok, "token %q", token)
		assert.Equal(t, want, op, "token %q", token)
	}
	for _, token := range []string{"", "xor", "and.txt", "nand"} {
		_, ok := ParseOp(token)
		assert.False(t, ok, "token %q", token)
	}
}
