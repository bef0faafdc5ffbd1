package main

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/setfold/setfold"
)

// renderSteps writes one row per operator application of the last
// evaluation.
func renderSteps(w io.Writer, steps []setfold.Step) {
	if len(steps) == 0 {
		return
	}
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Op", "Right Operand", "LHS", "RHS", "Result"})
	for _, s := range steps {
		t.AppendRow(table.Row{s.N, s.Op.String(), s.File, s.LHS, s.RHS, s.Result})
	}
	t.Render()
}
