package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/setfold/setfold"
	"github.com/spf13/cobra"
)

func init() {
	keysCmd.RunE = keysRun
	keysCmd.Flags().BoolVarP(&keysCmd.rhs, "rhs", "r", false,
		"Derive keys with the right-operand column selection")
	rootCmd.AddCommand(&keysCmd.Command)
}

var keysCmd = struct {
	cobra.Command
	rhs bool
}{
	Command: cobra.Command{
		Use:   "keys [file ...]",
		Short: "Show the comparison key derived for each input line",
		Long: `Print key<TAB>line for every line of the given files, or of standard
input when no file is named. Helps to check a column selection before
using it in an expression.`,
	},
}

func keysRun(cmd *cobra.Command, files []string) error {
	cfg, err := loadConfig(cmd.Root().PersistentFlags())
	if err != nil {
		return err
	}
	k := cfg.LHSKeyer()
	if keysCmd.rhs {
		k = cfg.RHSKeyer()
	}
	if len(files) == 0 {
		return printKeys(cmd.OutOrStdout(), cmd.InOrStdin(), k)
	}
	for _, f := range files {
		if err := printKeysFile(cmd.OutOrStdout(), f, k); err != nil {
			return err
		}
	}
	return nil
}

func printKeysFile(w io.Writer, file string, k setfold.Keyer) error {
	r, err := os.Open(file)
	if err != nil {
		return setfold.FileError{Name: file, Err: err}
	}
	defer r.Close()
	return printKeys(w, r, k)
}

func printKeys(w io.Writer, r io.Reader, k setfold.Keyer) error {
	scn := bufio.NewScanner(r)
	for scn.Scan() {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", k.Key(scn.Text()), scn.Text()); err != nil {
			return err
		}
	}
	return scn.Err()
}
