package batch

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromNonFinite(t *testing.T) {
	assert.Nil(t, FromNonFinite([]float64{1, 2, 3}))

	m := FromNonFinite([]float64{1, math.NaN(), math.Inf(1), -4})
	require.NotNil(t, m)
	assert.Equal(t, Mask{false, true, true, false}, m)
	assert.True(t, m.Any())
	assert.False(t, Mask{false, false}.Any())
}

func TestMaskUnion(t *testing.T) {
	a := Mask{true, false, false}
	b := Mask{false, false, true}

	assert.Equal(t, Mask{true, false, true}, a.Union(b))
	assert.Equal(t, a, a.Union(nil))
	assert.Equal(t, b, Mask(nil).Union(b))
	assert.Nil(t, Mask(nil).Union(nil))
}

func TestConform(t *testing.T) {
	t.Run("Broadcast", func(t *testing.T) {
		out, err := Conform(3, []float64{1, 2, 3}, []float64{7})
		require.NoError(t, err)
		assert.Equal(t, []float64{1, 2, 3}, out[0])
		assert.Equal(t, []float64{7, 7, 7}, out[1])
	})

	t.Run("LengthMismatch", func(t *testing.T) {
		_, err := Conform(3, []float64{1, 2})
		assert.Error(t, err)
	})
}

func TestFillRestore(t *testing.T) {
	data := []float64{1, math.NaN(), 3}
	m := FromNonFinite(data)

	filled := Fill(data, m, 20)
	assert.Equal(t, []float64{1, 20, 3}, filled)
	// original untouched
	assert.True(t, math.IsNaN(data[1]))

	filled[1] = 42 // pretend a kernel wrote something here
	Restore(filled, m)
	assert.Equal(t, 1.0, filled[0])
	assert.True(t, math.IsNaN(filled[1]))
	assert.Equal(t, 3.0, filled[2])
}

func TestClampNonNegative(t *testing.T) {
	in := []float64{-0.5, 0, 2}
	out := ClampNonNegative(in)
	assert.Equal(t, []float64{0, 0, 2}, out)
	assert.Equal(t, []float64{-0.5, 0, 2}, in)
}
