package instance

import (
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"

	"q.log/tableau/model"
)

// problemSchema closes the accepted shape of a problem file.
const problemSchema = `
objective: [...number]
constraints: [...{
	coefficients: [...number]
	rhs:          number
}]
`

type cueProblem struct {
	Objective   []float64 `json:"objective"`
	Constraints []struct {
		Coefficients []float64 `json:"coefficients"`
		RHS          float64   `json:"rhs"`
	} `json:"constraints"`
}

// ReadCUE loads a problem written in CUE, for example
//
//	objective: [3, 5]
//	constraints: [
//		{coefficients: [1, 0], rhs: 4},
//		{coefficients: [0, 2], rhs: 12},
//		{coefficients: [3, 2], rhs: 18},
//	]
//
// The objective is maximized.
func ReadCUE(filename string) (*model.Model, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return ParseCUE(filename, content)
}

func ParseCUE(filename string, content []byte) (*model.Model, error) {
	ctx := cuecontext.New()
	schema := ctx.CompileString("close({" + problemSchema + "})")
	if err := schema.Err(); err != nil {
		return nil, err
	}

	value := ctx.CompileBytes(content, cue.Filename(filename))
	if err := value.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidInput, filename, err)
	}
	value = schema.Unify(value)
	if err := value.Validate(cue.Concrete(true)); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidInput, filename, err)
	}

	var p cueProblem
	if err := value.Decode(&p); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidInput, filename, err)
	}

	A := make([][]float64, len(p.Constraints))
	b := make([]float64, len(p.Constraints))
	for i, con := range p.Constraints {
		A[i] = con.Coefficients
		b[i] = con.RHS
	}
	return model.FromSlices(p.Objective, A, b)
}
