package instance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"q.log/tableau/instance"
)

func TestFormModel(t *testing.T) {
	f := &instance.Form{
		NumVars:        2,
		NumConstraints: 3,
		Objective:      []string{"3", " 5 "},
		Constraints: [][]string{
			{"1", ""},
			{"", "2"},
			{"3", "2"},
		},
		RHS: []string{"4", "12", "18"},
	}

	m, err := f.Model()
	require.NoError(t, err)
	c, A, b := m.Problem()
	assert.Equal(t, []float64{-3, -5}, c)
	assert.Equal(t, [][]float64{{1, 0}, {0, 2}, {3, 2}}, A)
	assert.Equal(t, []float64{4, 12, 18}, b)
}

func TestFormModelMissingFieldsAreZero(t *testing.T) {
	f := &instance.Form{
		NumVars:        2,
		NumConstraints: 2,
		Objective:      []string{"1"},
		Constraints:    [][]string{{"1", "1"}},
	}

	m, err := f.Model()
	require.NoError(t, err)
	c, A, b := m.Problem()
	assert.Equal(t, []float64{-1, 0}, c)
	assert.Equal(t, [][]float64{{1, 1}, {0, 0}}, A)
	assert.Equal(t, []float64{0, 0}, b)
}

func TestFormModelInvalid(t *testing.T) {
	for name, f := range map[string]*instance.Form{
		"no vars":        {NumVars: 0, NumConstraints: 1},
		"not a number":   {NumVars: 1, NumConstraints: 1, Objective: []string{"x"}},
		"too many":       {NumVars: 1, NumConstraints: 1, RHS: []string{"1", "2"}},
		"bad constraint": {NumVars: 1, NumConstraints: 1, Constraints: [][]string{{"1e"}}},
		"too many rows": {
			NumVars: 1, NumConstraints: 1,
			Constraints: [][]string{{"1"}, {"1"}},
			RHS:         []string{"10"},
		},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := f.Model()
			assert.ErrorIs(t, err, instance.ErrInvalidInput)
		})
	}
}
