package setfold

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"git.fractalqb.de/fractalqb/icontainer/islist"
)

// Eval folds an expression's token stream over its line sets, one
// operator application at a time and strictly left to right. A zero
// value with a Config is valid for use and can be reused for more
// than one expression. It must not be used concurrently.
type Eval struct {
	Config
	// Open resolves a filename token to its line source. Defaults to
	// os.Open.
	Open func(name string) (io.ReadCloser, error)
	// Log receives warnings and, with Config.Debug, the evaluation
	// trace. A nil Log drops them.
	Log *log.Logger

	steps       []Step
	warnedEmpty bool
}

// Step records one operator application for diagnostics.
type Step struct {
	N                int
	Op               Op
	File             string
	LHS, RHS, Result int
}

type evalState int

const (
	expectFirstOperand evalState = iota
	expectOperatorOrDone
	expectSecondOperand
)

// Expr splits line on whitespace and evaluates the tokens.
func (ev *Eval) Expr(line string) (*LineSet, error) {
	return ev.Tokens(strings.Fields(line))
}

// Tokens evaluates an expression given as its token sequence. The
// result is the line set of the last operator application, or the
// loaded set itself for a degenerate single-filename expression.
func (ev *Eval) Tokens(tokens []string) (*LineSet, error) {
	ev.steps = nil
	ev.warnedEmpty = false
	queue := islist.New()
	for _, tok := range tokens {
		queue.PushBack(islist.E(tok))
	}
	var acc *LineSet
	pending := OpNone
	state := expectFirstOperand
	for pos := 1; queue.Len() > 0; pos++ {
		tok := queue.Front().(*islist.Element).Value.(string)
		queue.Drop(1)
		if op, ok := ParseOp(tok); ok {
			if state != expectOperatorOrDone {
				return nil, SyntaxError{Pos: pos, Token: tok,
					msg: "operator where a filename is expected",
				}
			}
			pending = op
			state = expectSecondOperand
			continue
		}
		switch state {
		case expectFirstOperand:
			ls, err := ev.load(pos, tok, ev.LHSKeyer())
			if err != nil {
				return nil, err
			}
			acc = ls
			state = expectOperatorOrDone
		case expectSecondOperand:
			rhs, err := ev.load(pos, tok, ev.RHSKeyer())
			if err != nil {
				return nil, err
			}
			res, err := ev.apply(pending, acc, rhs)
			if err != nil {
				return nil, err
			}
			acc = res
			pending = OpNone
			state = expectOperatorOrDone
		default:
			return nil, SyntaxError{Pos: pos, Token: tok,
				msg: "filename where an operator or end of expression is expected",
			}
		}
	}
	switch state {
	case expectFirstOperand:
		return nil, SyntaxError{Pos: 0, msg: "empty expression"}
	case expectSecondOperand:
		return nil, ErrIncompleteExpr
	}
	return acc, nil
}

// Steps returns the operator applications of the last evaluation in
// order.
func (ev *Eval) Steps() []Step { return ev.steps }

func (ev *Eval) load(pos int, name string, k Keyer) (*LineSet, error) {
	open := ev.Open
	if open == nil {
		open = func(name string) (io.ReadCloser, error) { return os.Open(name) }
	}
	r, err := open(name)
	if err != nil {
		return nil, FileError{Name: name, Err: err}
	}
	defer r.Close()
	ls, err := Load(name, r, k)
	if err != nil {
		return nil, err
	}
	if ev.Debug {
		ev.logf("token %d: loaded %d keys from %s", pos, ls.Len(), name)
	}
	return ls, nil
}

func (ev *Eval) apply(op Op, lhs, rhs *LineSet) (*LineSet, error) {
	if (lhs.Len() == 0 || rhs.Len() == 0) && !ev.warnedEmpty {
		ev.warnedEmpty = true
		ev.logf("warning: '%s' with an empty operand (%s: %d keys, %s: %d keys)",
			op, lhs.Name(), lhs.Len(), rhs.Name(), rhs.Len())
	}
	var res *LineSet
	switch op {
	case OpOr:
		res = Union(lhs, rhs)
	case OpAnd:
		res = Intersect(lhs, rhs, ev.MergeColumns)
	case OpNot:
		res = Difference(lhs, rhs)
	default:
		// unreachable as long as ParseOp gates the operator tokens
		return nil, fmt.Errorf("internal: unknown operator %d", op)
	}
	ev.steps = append(ev.steps, Step{
		N: len(ev.steps) + 1, Op: op, File: rhs.Name(),
		LHS: lhs.Len(), RHS: rhs.Len(), Result: res.Len(),
	})
	if ev.Debug {
		ev.logf("step %d: %d keys %s %d keys from %s gives %d keys",
			len(ev.steps), lhs.Len(), op, rhs.Len(), rhs.Name(), res.Len())
	}
	return res, nil
}

func (ev *Eval) logf(format string, args ...any) {
	if ev.Log != nil {
		ev.Log.Printf(format, args...)
	}
}
