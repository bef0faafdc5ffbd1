// A command line tool for set algebra over the lines of text files.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/setfold/setfold"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

// Exit codes per error kind so that scripts can tell a malformed
// expression from an unreadable operand. The historic tool always
// exited 0, even on errors.
const (
	exitOK     = 0
	exitErr    = 1
	exitSyntax = 2
)

var rootCmd = cobra.Command{
	Use:   "setfold",
	Short: "Combine the line sets of text files with and/or/not expressions",
	Long: `setfold loads each named text file into a set of lines and reduces
an expression like

   left.txt and right.txt or extra.txt

strictly left to right: 'or' unions two sets, 'and' intersects them
and 'not' subtracts the right from the left. Lines can be compared on
selected '|'-separated columns instead of whole lines, and 'and' can
merge columns of the matching right line into the output.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the setfold version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "setfold "+version)
		},
	})
}

func main() {
	os.Exit(run())
}

func run() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "setfold: %s\n", err)
		return exitCode(err)
	}
	return exitOK
}

func exitCode(err error) int {
	var syn setfold.SyntaxError
	if errors.As(err, &syn) || errors.Is(err, setfold.ErrIncompleteExpr) {
		return exitSyntax
	}
	return exitErr
}
