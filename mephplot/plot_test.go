package mephplot

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	meph "github.com/trimeph/gomeph"
	"gonum.org/v1/plot/vg"
)

func TestColors(t *testing.T) {
	seen := map[[3]uint8]bool{}
	for i := 0; i < 5; i++ {
		c := colors(i, 5)
		assert.Equal(t, uint8(255), c.A)
		k := [3]uint8{c.R, c.G, c.B}
		assert.False(t, seen[k], "color %d repeated", i)
		seen[k] = true
	}
	r, g, b := iHVS2RGB(0, 1, 1)
	assert.Equal(t, [3]uint8{255, 0, 0}, [3]uint8{r, g, b})
	r, g, b = iHVS2RGB(240, 1, 1)
	assert.Equal(t, [3]uint8{0, 0, 255}, [3]uint8{r, g, b})
}

func TestPlotsMismatch(t *testing.T) {
	_, err := FactorPlot("f", []float64{0, 10}, []float64{1}, nil, DefaultStyle(0, 1))
	assert.Error(t, err)
	_, err = MSDPlot("msd", []float64{0, 10}, []float64{1, 2}, []float64{1, 2}, []float64{1}, DefaultStyle(0, 1))
	assert.Error(t, err)
}

func TestSaveAll(t *testing.T) {
	R := meph.NewRunState(log.New(io.Discard, "", 0))
	_, err := SaveAll(R, t.TempDir(), "svg")
	assert.Error(t, err)

	require.NoError(t, R.Process(&meph.Input{
		Metadata:      []string{"../test/fe_phonopy.yaml"},
		Displacements: []string{"../test/fe_thermal_displacements.yaml"},
		WorkDir:       t.TempDir(),
	}))
	R.Experimental = []meph.XY{{X: 5, Y: 0.93}, {X: 15, Y: 0.92}}
	dir := t.TempDir()
	names, err := SaveAll(R, dir, ".SVG")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "factor_Fe1.svg"), filepath.Join(dir, "msd_Fe1.svg")}, names)
	for _, n := range names {
		info, err := os.Stat(n)
		require.NoError(t, err)
		assert.NotZero(t, info.Size())
	}
}

func TestMSDPlotGlyphs(t *testing.T) {
	st := DefaultStyle(0, 1)
	st.Glyph = getShape(0)
	p, err := MSDPlot("msd", []float64{0, 10}, []float64{1, 2}, []float64{1, 2}, []float64{1, 3}, st)
	require.NoError(t, err)
	require.NoError(t, p.Save(vg.Inch*3, vg.Inch*3, filepath.Join(t.TempDir(), "msd.png")))
	assert.NotEqual(t, getShape(0), getShape(1))
	assert.Equal(t, getShape(0), getShape(len(shapes)))
}
