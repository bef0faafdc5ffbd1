package setfold

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"sort"
)

// LineSet maps comparison keys to the original lines of one operand.
// The stored lines keep their original terminators. Keys remember
// their insertion order; a key loaded twice keeps its position and
// only the stored line is replaced.
type LineSet struct {
	name string
	keys []string
	recs map[string]string
}

// NewLineSet returns an empty line set named name.
func NewLineSet(name string) *LineSet {
	return &LineSet{name: name, recs: make(map[string]string)}
}

// Load reads all lines from r into a new line set, deriving each
// line's key with k. Later lines with an already known key replace
// the stored line (last line wins within one operand).
func Load(name string, r io.Reader, k Keyer) (*LineSet, error) {
	ls := NewLineSet(name)
	var sep lineSepScanner
	scn := bufio.NewScanner(r)
	scn.Split(sep.ScanLines)
	for scn.Scan() {
		raw := scn.Text() + string(sep)
		ls.Put(k.Key(raw), raw)
	}
	if err := scn.Err(); err != nil {
		return nil, FileError{Name: name, Err: err}
	}
	return ls, nil
}

// LoadFile opens file and loads it with Load.
func LoadFile(file string, k Keyer) (*LineSet, error) {
	r, err := os.Open(file)
	if err != nil {
		return nil, FileError{Name: file, Err: err}
	}
	defer r.Close()
	return Load(file, r, k)
}

// Name returns the operand name the set was loaded from.
func (ls *LineSet) Name() string { return ls.name }

// Len returns the number of keys in the set.
func (ls *LineSet) Len() int { return len(ls.keys) }

// Get returns the line stored for key and whether key is in the set.
func (ls *LineSet) Get(key string) (string, bool) {
	raw, ok := ls.recs[key]
	return raw, ok
}

// Put stores raw under key, replacing the line of an already known
// key without moving it.
func (ls *LineSet) Put(key, raw string) {
	if _, ok := ls.recs[key]; !ok {
		ls.keys = append(ls.keys, key)
	}
	ls.recs[key] = raw
}

// Keys returns the keys in insertion order.
func (ls *LineSet) Keys() []string {
	res := make([]string, len(ls.keys))
	copy(res, ls.keys)
	return res
}

// WriteTo emits the stored lines in sorted key order. Lines that were
// loaded without a terminator, i.e. the last line of a file, get one
// so that values never run into each other.
func (ls *LineSet) WriteTo(w io.Writer) (n int64, err error) {
	keys := ls.Keys()
	sort.Strings(keys)
	for _, key := range keys {
		raw := ls.recs[key]
		if !hasLineSep(raw) {
			raw += "\n"
		}
		m, err := io.WriteString(w, raw)
		n += int64(m)
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

func hasLineSep(s string) bool {
	return len(s) > 0 && s[len(s)-1] == '\n'
}

// chompLineSep splits a raw line into its text and its terminator.
func chompLineSep(raw string) (text, sep string) {
	if i := len(raw); i > 0 && raw[i-1] == '\n' {
		if i > 1 && raw[i-2] == '\r' {
			return raw[:i-2], raw[i-2:]
		}
		return raw[:i-1], raw[i-1:]
	}
	return raw, ""
}

// lineSepScanner is a bufio.SplitFunc that remembers each line's
// separator so lines can be stored verbatim, terminator included.
type lineSepScanner []byte

func (lsc *lineSepScanner) ScanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	// modificated version of bufio.Scan
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		res, cr := dropCR(data[0:i])
		*lsc = data[i-cr : i+1]
		return i + 1, res, nil
	}
	if atEOF {
		res, cr := dropCR(data)
		*lsc = data[len(data)-cr:]
		return len(data), res, nil
	}
	return 0, nil, nil
}

func dropCR(data []byte) ([]byte, int) {
	// modificated version of bufio.dropCR
	if len(data) > 0 && data[len(data)-1] == '\r' {
		return data[0 : len(data)-1], 1
	}
	return data, 0
}
