package meph

import (
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSort(t *testing.T) {
	//two files, two atoms, one block.
	got, err := Sort([][]float64{{1, 2}, {3, 4}}, 2)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 3}, {2, 4}}, got)

	//one file, one atom, two blocks.
	got, err = Sort([][]float64{{5, 6}}, 1)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{5}, {6}}, got)

	//two files, one atom per block, two blocks each.
	got, err = Sort([][]float64{{0, 1}, {10, 11}}, 1)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 10}, {1, 11}}, got)
}

func TestSortPreservesValues(t *testing.T) {
	files := [][]float64{
		{1, 2, 3, 4, 5, 6},
		{7, 8, 9, 10, 11, 12},
		{13, 14, 15, 16, 17, 18},
	}
	natom := 3
	got, err := Sort(files, natom)
	require.NoError(t, err)
	require.Len(t, got, len(files[0]))
	var in, out []float64
	for _, f := range files {
		in = append(in, f...)
	}
	for i, s := range got {
		require.Len(t, s, len(files))
		out = append(out, s...)
		//entry i comes from position i in every file.
		for f := range files {
			assert.Equal(t, files[f][i], s[f])
		}
	}
	sort.Float64s(in)
	sort.Float64s(out)
	assert.Equal(t, in, out)
}

func TestSortErrors(t *testing.T) {
	_, err := Sort([][]float64{{1, 2, 3}}, 2)
	assert.True(t, errors.Is(err, ErrAlignment))
	_, err = Sort([][]float64{{1, 2}}, 0)
	assert.True(t, errors.Is(err, ErrAlignment))
	_, err = Sort([][]float64{{1, 2}, {1}}, 1)
	assert.True(t, errors.Is(err, ErrFormat))
	_, err = Sort(nil, 1)
	assert.True(t, errors.Is(err, ErrFormat))
}

func TestSortSetsAndAxes(t *testing.T) {
	sets := []DisplacementSet{
		NewDisplacementSet(2, "c", []Sample{{5, 50, 500}, {6, 60, 600}}),
		NewDisplacementSet(-1, "a", []Sample{{1, 10, 100}, {2, 20, 200}}),
		NewDisplacementSet(0, "b", []Sample{{3, 30, 300}, {4, 40, 400}}),
	}
	SortSets(sets)
	assert.Equal(t, "a", sets[0].Source)
	assert.Equal(t, "b", sets[1].Source)
	assert.Equal(t, "c", sets[2].Source)

	sorted, err := SortAxes(sets, 2)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 3, 5}, {2, 4, 6}}, sorted[0])
	assert.Equal(t, [][]float64{{10, 30, 50}, {20, 40, 60}}, sorted[1])
	assert.Equal(t, [][]float64{{100, 300, 500}, {200, 400, 600}}, sorted[2])

	sets[1] = NewDisplacementSet(0, "short", []Sample{{3, 30, 300}})
	_, err = SortAxes(sets, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFormat))
	assert.Contains(t, err.Error(), "short")
}

func TestSortSingleFile(t *testing.T) {
	got, err := Sort([][]float64{{0.0, 0.1, 1.0, 1.1}}, 2)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0.0}, {0.1}, {1.0}, {1.1}}, got)
}
