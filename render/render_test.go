package render_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"q.log/tableau/render"
	"q.log/tableau/simplex"
)

func TestTableau(t *testing.T) {
	var buf bytes.Buffer
	tab := mat.NewDense(2, 4, []float64{
		1, 0.33333, 1, 4,
		-3, -1e-12, 0, 2.5,
	})
	require.NoError(t, render.Tableau(&buf, tab, 2, 1))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"x1", "x2", "s1", "RHS"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"1", "0.333", "1", "4"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"-3", "0", "0", "2.5"}, strings.Fields(lines[2]))
}

func TestResult(t *testing.T) {
	res, err := simplex.Solve(
		[]float64{-3, -5},
		[][]float64{{1, 0}, {0, 2}, {3, 2}},
		[]float64{4, 12, 18},
	)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.Steps(&buf, res))
	require.NoError(t, render.Solution(&buf, res.OptimalValue, res.Solution()))

	out := buf.String()
	for i := range res.Steps {
		assert.Contains(t, out, "Iteration "+string(rune('0'+i))+"\n")
	}
	assert.Contains(t, out, "Optimal Value: 36.00\n")
	assert.Contains(t, out, "x1 = 2.00\nx2 = 6.00\n")
}

func TestResultFailure(t *testing.T) {
	res, err := simplex.Solve([]float64{-1}, [][]float64{{-1}}, []float64{1})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.Steps(&buf, res))
	assert.Equal(t, "Unbounded\n", buf.String())
}

type failingWriter struct{ after int }

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.after == 0 {
		return 0, errors.New("write failed")
	}
	w.after--
	return len(p), nil
}

func TestWriteErrors(t *testing.T) {
	res, err := simplex.Solve([]float64{1}, [][]float64{{1}}, []float64{1})
	require.NoError(t, err)
	require.Len(t, res.Steps, 1)

	for after := range 3 {
		assert.Error(t, render.Steps(&failingWriter{after: after}, res), "after %d writes", after)
	}
	// optimal value succeeds, "Variable Values" fails
	assert.Error(t, render.Solution(&failingWriter{after: 1}, 0, []float64{0}))
}
