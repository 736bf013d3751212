package simplex

import (
	"gonum.org/v1/gonum/mat"
)

type Status int

const (
	Success Status = iota
	Unbounded
	MaxIterationsExceeded
)

func (s Status) String() string {
	switch s {
	case Success:
		return "Success"
	case Unbounded:
		return "Unbounded"
	case MaxIterationsExceeded:
		return "MaxIterationsExceeded"
	}
	return "Unknown"
}

// Result is the outcome of Solve. OptimalValue and Steps are only set when
// Status is Success.
type Result struct {
	Status       Status
	OptimalValue float64

	//Steps holds one snapshot per iteration, Steps[0] being the initial tableau
	Steps []*mat.Dense

	NumVars        int
	NumConstraints int

	//Iterations is the number of pivots performed, also on failure
	Iterations int
}

// Err maps a failed status to its sentinel error and returns nil on success.
func (r *Result) Err() error {
	switch r.Status {
	case Success:
		return nil
	case Unbounded:
		return ErrUnbounded
	case MaxIterationsExceeded:
		return ErrMaxIterations
	}
	return nil
}

// Final returns the last tableau, or nil when the solve failed.
func (r *Result) Final() *mat.Dense {
	if len(r.Steps) == 0 {
		return nil
	}
	return r.Steps[len(r.Steps)-1]
}

// Solution extracts the values of the structural variables from the final
// tableau. It returns nil when the solve failed.
func (r *Result) Solution() []float64 {
	final := r.Final()
	if final == nil {
		return nil
	}
	return ExtractSolution(final, r.NumVars, r.NumConstraints)
}

// Solve runs the tableau simplex method on
//
//	min c·x  s.t.  Ax <= b, x >= 0
//
// which is the maximization of -c·x, so callers maximizing p·x pass c = -p
// and read the maximum straight from OptimalValue. The origin must be
// feasible (b >= 0); no phase one is performed.
//
// Shape and value problems are returned as errors. Unboundedness and the
// iteration cap are reported through Result.Status.
func Solve(c []float64, A [][]float64, b []float64, opts ...Option) (*Result, error) {
	o := newOptions(opts)

	tableau, err := NewTableau(c, A, b)
	if err != nil {
		return nil, err
	}
	n, m := len(c), len(A)

	steps := []*mat.Dense{mat.DenseCopyOf(tableau)}
	iter := 0
	for {
		entering, ok := enteringColumn(tableau)
		if !ok {
			break
		}

		leaving, ok := leavingRow(tableau, entering)
		if !ok {
			o.logger.Info("simplex terminated", "status", Unbounded, "iterations", iter, "entering", entering)
			return &Result{Status: Unbounded, NumVars: n, NumConstraints: m, Iterations: iter}, nil
		}

		if o.maxIter > 0 && iter >= o.maxIter {
			o.logger.Warn("simplex terminated", "status", MaxIterationsExceeded, "iterations", iter)
			return &Result{Status: MaxIterationsExceeded, NumVars: n, NumConstraints: m, Iterations: iter}, nil
		}

		iter++
		o.logger.Debug("pivot",
			"iteration", iter,
			"entering", entering,
			"leaving", leaving,
			"value", tableau.At(leaving, entering),
		)
		pivot(tableau, leaving, entering)
		steps = append(steps, mat.DenseCopyOf(tableau))
	}

	_, cols := tableau.Dims()
	value := tableau.At(m, cols-1)
	o.logger.Info("simplex terminated", "status", Success, "iterations", iter, "value", value)

	return &Result{
		Status:         Success,
		OptimalValue:   value,
		Steps:          steps,
		NumVars:        n,
		NumConstraints: m,
		Iterations:     iter,
	}, nil
}
