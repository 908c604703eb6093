package ml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func separable(n int) ([][]float64, []int) {
	X := make([][]float64, n)
	y := make([]int, n)
	for i := range X {
		X[i] = []float64{float64(i)}
		if i >= n/2 {
			y[i] = 1
		}
	}
	return X, y
}

func TestFitForestSeparable(t *testing.T) {
	X, y := separable(40)
	f, err := FitForest(X, y, 2, DefaultForestOptions())
	require.NoError(t, err)

	assert.Equal(t, 2, f.NumClasses())
	assert.GreaterOrEqual(t, f.Accuracy(X, y), 0.9)
	assert.Equal(t, 0, f.Predict([]float64{0}))
	assert.Equal(t, 1, f.Predict([]float64{39}))

	p := f.PredictProba([]float64{5})
	require.Len(t, p, 2)
	assert.InDelta(t, 1.0, p[0]+p[1], 1e-9)
}

func TestFitForestDeterministic(t *testing.T) {
	X, y := separable(30)
	a, err := FitForest(X, y, 2, DefaultForestOptions())
	require.NoError(t, err)
	b, err := FitForest(X, y, 2, DefaultForestOptions())
	require.NoError(t, err)

	for _, x := range []float64{0, 7.5, 14.5, 15, 29} {
		assert.Equal(t, a.PredictProba([]float64{x}), b.PredictProba([]float64{x}))
	}
}

func TestFitForestRejectsBadInput(t *testing.T) {
	tests := []struct {
		name     string
		X        [][]float64
		y        []int
		nClasses int
	}{
		{"Empty", nil, nil, 2},
		{"Length mismatch", [][]float64{{1}, {2}}, []int{0}, 2},
		{"Ragged", [][]float64{{1}, {2, 3}}, []int{0, 1}, 2},
		{"Label out of range", [][]float64{{1}, {2}}, []int{0, 2}, 2},
		{"No classes", [][]float64{{1}}, []int{0}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FitForest(tt.X, tt.y, tt.nClasses, DefaultForestOptions())
			assert.Error(t, err)
		})
	}
}

func TestGini(t *testing.T) {
	assert.Equal(t, 0.0, gini([]float64{4, 0}, 4))
	assert.InDelta(t, 0.5, gini([]float64{2, 2}, 4), 1e-12)
	assert.Equal(t, 0.0, gini([]float64{0, 0}, 0))
}
