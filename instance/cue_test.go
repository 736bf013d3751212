package instance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"q.log/tableau/instance"
	"q.log/tableau/model"
)

func TestReadCUE(t *testing.T) {
	m, err := instance.ReadCUE("testdata/textbook.cue")
	require.NoError(t, err)

	c, A, b := m.Problem()
	assert.Equal(t, []float64{-3, -5}, c)
	assert.Equal(t, [][]float64{{1, 0}, {0, 2}, {3, 2}}, A)
	assert.Equal(t, []float64{4, 12, 18}, b)
	assert.False(t, m.Minimize)
}

func TestParseCUEInvalid(t *testing.T) {
	for name, src := range map[string]string{
		"syntax":        `objective: [1,`,
		"unknown field": "objective: [1]\nconstraints: [{coefficients: [1], rhs: 1}]\nsense: \"max\"\n",
		"string value":  "objective: [\"a\"]\nconstraints: [{coefficients: [1], rhs: 1}]\n",
		"missing rhs":   "objective: [1]\nconstraints: [{coefficients: [1]}]\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := instance.ParseCUE(name+".cue", []byte(src))
			assert.ErrorIs(t, err, instance.ErrInvalidInput)
		})
	}
}

func TestParseCUEShapeMismatch(t *testing.T) {
	src := "objective: [1, 2]\nconstraints: [{coefficients: [1], rhs: 1}]\n"
	_, err := instance.ParseCUE("short.cue", []byte(src))
	assert.ErrorIs(t, err, model.ErrShapeMismatch)
}
