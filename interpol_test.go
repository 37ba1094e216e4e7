package meph

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// two atoms sampled at 0, 10, 20 and 30 K.
func twoAtomSet() DisplacementSet {
	var s []Sample
	for b := 0; b < 4; b++ {
		for i := 0; i < 2; i++ {
			v := float64(10*b + i)
			s = append(s, Sample{v, v + 100, v + 200})
		}
	}
	return NewDisplacementSet(0, "td.yaml", s)
}

func TestInterpolateBucket(t *testing.T) {
	traj, err := Interpolate(twoAtomSet(), []float64{0, 10, 15, 29.9}, 2, Bucket)
	require.NoError(t, err)
	require.Equal(t, 2, traj.Len())
	assert.Equal(t, []float64{0, 10, 10, 20}, traj.X[0])
	assert.Equal(t, []float64{1, 11, 11, 21}, traj.X[1])
	assert.Equal(t, []float64{201, 211, 211, 221}, traj.Z[1])
}

func TestInterpolateLinear(t *testing.T) {
	set := twoAtomSet()
	temps := []float64{0, 10, 20, 30}
	b, err := Interpolate(set, temps, 2, Bucket)
	require.NoError(t, err)
	l, err := Interpolate(set, temps, 2, Linear)
	require.NoError(t, err)
	assert.Equal(t, b, l)

	l, err = Interpolate(set, []float64{5, 12.5, 27}, 2, Linear)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{5, 12.5, 27}, l.X[0], 1e-12)
	assert.InDeltaSlice(t, []float64{106, 113.5, 128}, l.Y[1], 1e-12)
}

func TestInterpolateOutOfRange(t *testing.T) {
	_, err := Interpolate(twoAtomSet(), []float64{40}, 2, Bucket)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAlignment))
	assert.Contains(t, err.Error(), "td.yaml")

	//bucket 30 K exists, but there is nothing above it.
	_, err = Interpolate(twoAtomSet(), []float64{35}, 2, Linear)
	assert.True(t, errors.Is(err, ErrAlignment))

	_, err = Interpolate(twoAtomSet(), []float64{0}, 3, Bucket)
	assert.True(t, errors.Is(err, ErrAlignment))
}

func TestParseStrategy(t *testing.T) {
	s, err := ParseStrategy("")
	require.NoError(t, err)
	assert.Equal(t, Bucket, s)
	s, err = ParseStrategy("linear")
	require.NoError(t, err)
	assert.Equal(t, Linear, s)
	_, err = ParseStrategy("cubic")
	assert.Error(t, err)
}
