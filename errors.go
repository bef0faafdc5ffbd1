package setfold

import (
	"errors"
	"fmt"
)

// ErrIncompleteExpr reports an expression that ends right after an
// operator keyword.
var ErrIncompleteExpr = errors.New("incomplete expression: operator without right operand")

// SyntaxError reports a malformed expression. Pos is the 1-based
// position of the offending token within the expression.
type SyntaxError struct {
	Pos   int
	Token string
	msg   string
}

func (e SyntaxError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("token %d: %s", e.Pos, e.msg)
	}
	return fmt.Sprintf("token %d '%s': %s", e.Pos, e.Token, e.msg)
}

// FileError reports an operand file that cannot be read.
type FileError struct {
	Name string
	Err  error
}

func (e FileError) Error() string {
	return fmt.Sprintf("operand %s: %s", e.Name, e.Err)
}

func (e FileError) Unwrap() error { return e.Err }
