// Package render writes simplex results as plain text tables.
package render

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"gonum.org/v1/gonum/mat"

	"q.log/tableau/simplex"
)

// Tableau writes t as a table with x1..xn, s1..sm and RHS columns. Values
// are rounded to three decimals.
func Tableau(w io.Writer, t *mat.Dense, numVars, numConstraints int) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	for i := range numVars {
		fmt.Fprintf(tw, "x%d\t", i+1)
	}
	for i := range numConstraints {
		fmt.Fprintf(tw, "s%d\t", i+1)
	}
	fmt.Fprint(tw, "RHS\t\n")

	rows, _ := t.Dims()
	for r := range rows {
		for _, v := range t.RawRowView(r) {
			fmt.Fprintf(tw, "%s\t", formatCell(v))
		}
		fmt.Fprint(tw, "\n")
	}
	return tw.Flush()
}

// formatCell drops trailing zeros the way a number rounded to 3 decimals
// prints, and never prints -0.
func formatCell(v float64) string {
	s := strconv.FormatFloat(v, 'f', 3, 64)
	f, _ := strconv.ParseFloat(s, 64)
	if f == 0 {
		return "0"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Steps writes every iteration of a successful result.
func Steps(w io.Writer, res *simplex.Result) error {
	if res.Status != simplex.Success {
		_, err := fmt.Fprintf(w, "%v\n", res.Status)
		return err
	}
	for i, step := range res.Steps {
		if _, err := fmt.Fprintf(w, "Iteration %d\n", i); err != nil {
			return err
		}
		if err := Tableau(w, step, res.NumVars, res.NumConstraints); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// Solution writes the optimal value and the variable values with two decimals.
func Solution(w io.Writer, value float64, x []float64) error {
	if _, err := fmt.Fprintf(w, "Optimal Value: %.2f\n", value); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "Variable Values"); err != nil {
		return err
	}
	for i, v := range x {
		if _, err := fmt.Fprintf(w, "x%d = %.2f\n", i+1, v); err != nil {
			return err
		}
	}
	return nil
}
