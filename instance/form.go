package instance

import (
	"fmt"
	"strconv"
	"strings"

	"q.log/tableau/model"
)

// Form holds a problem as raw field values, the way an input form submits
// them. Objective has one field per variable, Constraints one slice per row
// and RHS one field per row.
type Form struct {
	NumVars        int
	NumConstraints int

	Objective   []string
	Constraints [][]string
	RHS         []string
}

// Model parses the form. Empty or missing fields count as 0; text that is not
// a number is rejected with ErrInvalidInput.
func (f *Form) Model() (*model.Model, error) {
	if f.NumVars <= 0 || f.NumConstraints <= 0 {
		return nil, fmt.Errorf("%w: %d variables, %d constraints", ErrInvalidInput, f.NumVars, f.NumConstraints)
	}

	c, err := parseFields(f.Objective, f.NumVars, "objective")
	if err != nil {
		return nil, err
	}

	if len(f.Constraints) > f.NumConstraints {
		return nil, fmt.Errorf("%w: %d constraint rows, want at most %d", ErrInvalidInput, len(f.Constraints), f.NumConstraints)
	}
	A := make([][]float64, f.NumConstraints)
	for i := range f.NumConstraints {
		var fields []string
		if i < len(f.Constraints) {
			fields = f.Constraints[i]
		}
		A[i], err = parseFields(fields, f.NumVars, fmt.Sprintf("con%d", i))
		if err != nil {
			return nil, err
		}
	}

	b, err := parseFields(f.RHS, f.NumConstraints, "rhs")
	if err != nil {
		return nil, err
	}

	return model.FromSlices(c, A, b)
}

func parseFields(fields []string, n int, name string) ([]float64, error) {
	if len(fields) > n {
		return nil, fmt.Errorf("%w: %s has %d fields, want at most %d", ErrInvalidInput, name, len(fields), n)
	}
	out := make([]float64, n)
	for i, s := range fields {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s[%d] = %q", ErrInvalidInput, name, i, s)
		}
		out[i] = v
	}
	return out, nil
}
