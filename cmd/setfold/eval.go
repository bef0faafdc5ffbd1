package main

import (
	"bufio"
	"io"
	"log"
	"strings"

	"github.com/setfold/setfold"
	"github.com/spf13/cobra"
)

func init() {
	evalCmd.RunE = evalExpr
	rootCmd.AddCommand(&evalCmd)
}

var evalCmd = cobra.Command{
	Use:   "eval [token ...]",
	Short: "Evaluate a line-set expression",
	Long: `Evaluate an expression of filenames alternating with the operator
keywords and/or/not. The expression is taken from the arguments or,
without arguments, read as a single line from standard input. The
resulting lines are written to standard output in sorted key order.`,
	Example: `  setfold eval a.txt and b.txt
  echo 'a.txt or b.txt not c.txt' | setfold eval
  setfold -1 0,1 -2 0,1 -m 2 eval master.psv and update.psv`,
}

func evalExpr(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd.Root().PersistentFlags())
	if err != nil {
		return err
	}
	var tokens []string
	if len(args) > 0 {
		tokens = args
	} else {
		if tokens, err = readExprTokens(cmd.InOrStdin()); err != nil {
			return err
		}
	}
	ev := setfold.Eval{
		Config: cfg,
		Log:    log.New(cmd.ErrOrStderr(), "setfold: ", 0),
	}
	res, err := ev.Tokens(tokens)
	if err != nil {
		return err
	}
	if cfg.Debug {
		renderSteps(cmd.ErrOrStderr(), ev.Steps())
	}
	_, err = res.WriteTo(cmd.OutOrStdout())
	return err
}

// readExprTokens reads one expression line from r and splits it into
// its tokens.
func readExprTokens(r io.Reader) ([]string, error) {
	scn := bufio.NewScanner(r)
	if !scn.Scan() {
		return nil, scn.Err()
	}
	return strings.Fields(scn.Text()), nil
}
