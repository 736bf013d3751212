package simplex

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// basisTolerance is used only when reading the basis back. Pivot selection
// compares exactly.
const basisTolerance = 1e-6

// ExtractSolution reads the structural variable values off a tableau.
//
// Column j is basic when, over the constraint rows, exactly one entry is 1
// and every other entry is 0 (within basisTolerance), and its reduced cost in
// the objective row is 0. A basic variable takes the RHS of the row holding
// its 1, every other variable is 0.
//
// The reduced cost check matters with a single constraint row, where any
// column whose entry is 1 has the unit pattern without being in the basis.
func ExtractSolution(t *mat.Dense, numVars, numConstraints int) []float64 {
	solution := make([]float64, numVars)
	rows, cols := t.Dims()
	rhs := cols - 1

	for j := range numVars {
		if rows > numConstraints && math.Abs(t.At(numConstraints, j)) >= basisTolerance {
			continue
		}
		ones, zeros, row := 0, 0, -1
		for i := range numConstraints {
			v := t.At(i, j)
			switch {
			case math.Abs(v-1) < basisTolerance:
				ones++
				row = i
			case math.Abs(v) < basisTolerance:
				zeros++
			}
		}
		if ones == 1 && zeros == numConstraints-1 {
			solution[j] = t.At(row, rhs)
		}
	}

	return solution
}
