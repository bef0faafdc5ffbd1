package setfold

import (
	"bufio"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("keys in line order", func(t *testing.T) {
		ls, err := Load("test", strings.NewReader("x\ny\n"), Keyer{})
		require.NoError(t, err)
		assert.Equal(t, []string{"x", "y"}, ls.Keys())
		raw, ok := ls.Get("x")
		assert.True(t, ok)
		assert.Equal(t, "x\n", raw)
	})
	t.Run("last line wins on a duplicate key", func(t *testing.T) {
		k := Keyer{Columns: []int{0}}
		ls, err := Load("test", strings.NewReader("k|1\nother|1\nk|2\n"), k)
		require.NoError(t, err)
		assert.Equal(t, 2, ls.Len())
		assert.Equal(t, []string{"k", "other"}, ls.Keys(), "overwrite keeps the position")
		raw, _ := ls.Get("k")
		assert.Equal(t, "k|2\n", raw)
	})
	t.Run("keeps CRLF terminators", func(t *testing.T) {
		ls, err := Load("test", strings.NewReader("a\r\nb\r\n"), Keyer{})
		require.NoError(t, err)
		raw, _ := ls.Get("a")
		assert.Equal(t, "a\r\n", raw)
	})
	t.Run("last line without terminator", func(t *testing.T) {
		ls, err := Load("test", strings.NewReader("a\nb"), Keyer{})
		require.NoError(t, err)
		raw, _ := ls.Get("b")
		assert.Equal(t, "b", raw)
	})
}

func TestLineSet_WriteTo(t *testing.T) {
	t.Run("sorted key order", func(t *testing.T) {
		ls, err := Load("test", strings.NewReader("c\na\nb\n"), Keyer{})
		require.NoError(t, err)
		var sb strings.Builder
		_, err = ls.WriteTo(&sb)
		require.NoError(t, err)
		assert.Equal(t, "a\nb\nc\n", sb.String())
	})
	t.Run("restores a missing final terminator", func(t *testing.T) {
		ls, err := Load("test", strings.NewReader("b\na"), Keyer{})
		require.NoError(t, err)
		var sb strings.Builder
		_, err = ls.WriteTo(&sb)
		require.NoError(t, err)
		assert.Equal(t, "a\nb\n", sb.String())
	})
}

func TestLineSepScanner_crnl(t *testing.T) {
	t.Run("between lines", func(t *testing.T) {
		rd := strings.NewReader("line1\r\nline2")
		scn := bufio.NewScanner(rd)
		var sep lineSepScanner
		scn.Split(sep.ScanLines)
		line := 0
		for scn.Scan() {
			line++
			switch line {
			case 1:
				assert.Equal(t, "line1", scn.Text())
				assert.Equal(t, "\r\n", string(sep))
			case 2:
				assert.Equal(t, "line2", scn.Text())
				assert.Equal(t, "", string(sep))
			}
		}
		assert.Equal(t, 2, line)
	})
	t.Run("last line", func(t *testing.T) {
		rd := strings.NewReader("line1\r\n")
		scn := bufio.NewScanner(rd)
		var sep lineSepScanner
		scn.Split(sep.ScanLines)
		require.True(t, scn.Scan())
		assert.Equal(t, "line1", scn.Text())
		assert.Equal(t, "\r\n", string(sep))
		assert.False(t, scn.Scan())
	})
}

func TestChompLineSep(t *testing.T) {
	for raw, want := range map[string][2]string{
		"a|b\n":   {"a|b", "\n"},
		"a|b\r\n": {"a|b", "\r\n"},
		"a|b":     {"a|b", ""},
		"":        {"", ""},
	} {
		text, sep := chompLineSep(raw)
		assert.Equal(t, want[0], text, "raw %q", raw)
		assert.Equal(t, want[1], sep, "raw %q", raw)
	}
}
