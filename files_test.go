package meph

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestParseAtomInfo(t *testing.T) {
	b, err := os.ReadFile("test/fesn_phonopy.yaml")
	require.NoError(t, err)
	atoms := ParseAtomInfo(string(b))
	require.Equal(t, 3, atoms.Len())
	symbols := []string{"Fe", "Sn", "Xx"}
	masses := []float64{55.845, 118.71, 10}
	for i, at := range atoms {
		assert.Equal(t, i+1, at.Index)
		assert.Equal(t, symbols[i], at.Symbol)
		assert.Equal(t, masses[i], at.Mass)
	}

	//a second call doesn't see the atoms of the first one.
	again := ParseAtomInfo(string(b))
	assert.Equal(t, 3, again.Len())
	again[0].Symbol = "Co"
	assert.Equal(t, "Fe", atoms[0].Symbol)
}

func TestParseAtomInfoNoMarkers(t *testing.T) {
	for _, content := range []string{
		"",
		"points:\n  - symbol: Fe # 1\n    coordinates: [ 0, 0, 0 ]\n    mass: 55.845\nreciprocal_lattice:\n",
		"primitive_cell:\n  - symbol: Fe # 1\n    coordinates: [ 0, 0, 0 ]\n    mass: 55.845\n",
	} {
		atoms := ParseAtomInfo(content)
		assert.NotNil(t, atoms)
		assert.Zero(t, atoms.Len())
	}
}

func TestMapRecoilEnergies(t *testing.T) {
	atoms, err := ReadAtomInfo("test/fesn_phonopy.yaml")
	require.NoError(t, err)
	var logs bytes.Buffer
	MapRecoilEnergies(atoms, newTestLogger(&logs))
	assert.Equal(t, 1.95883310e-03, atoms[0].Er)
	assert.Equal(t, 2.57423e-3, atoms[1].Er)
	assert.Zero(t, atoms[2].Er)
	assert.Contains(t, logs.String(), `"Xx"`)

	for sym, er := range map[string]float64{"Fe": 1.95883310e-03, "I": 3.218e-03, "Sn": 2.57423e-3, "Sb": 6.122e-03, "Ir": 1.9094e-02} {
		got, ok := RecoilEnergy(sym)
		assert.True(t, ok, sym)
		assert.Equal(t, er, got, sym)
	}
	got, ok := RecoilEnergy("Cu")
	assert.False(t, ok)
	assert.Zero(t, got)
}

func TestCleanDisplacements(t *testing.T) {
	in := `thermal_displacements:
- temperature:   0.000000
  displacements:
  - [ 0.0025000000000, 0.0026000000000, 0.0027000000000 ] # 1
  -   [1e-3,2E-3 ,  3.5e-3]
- temperature:  10.000000
  displacements:
  - [ 0.1, 0.2, 0.3, 0.01, 0.02, 0.03 ]
    - [ 4, 5, 6 ]
`
	s, err := CleanDisplacements(strings.NewReader(in), "in.yaml")
	require.NoError(t, err)
	assert.Equal(t, []Sample{
		{0.0025, 0.0026, 0.0027},
		{1e-3, 2e-3, 3.5e-3},
		{0.1, 0.2, 0.3},
		{4, 5, 6},
	}, s)

	_, err = CleanDisplacements(strings.NewReader("  - [ 0.1, 0.2 ]\n"), "short.yaml")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFormat))
	assert.Contains(t, err.Error(), "short.yaml")

	_, err = CleanDisplacements(strings.NewReader("  - [ 0.1, abc, 0.3 ]\n"), "bad.yaml")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFormat))
	assert.Contains(t, err.Error(), "line 1")
}

func TestSamplesRoundTrip(t *testing.T) {
	samples := []Sample{{0.1, 0.2, 0.3}, {1.0 / 3, 2e-12, 123456.789}}
	p := filepath.Join(t.TempDir(), "cleaned.txt")
	var b bytes.Buffer
	require.NoError(t, WriteSamples(&b, samples))
	require.NoError(t, os.WriteFile(p, b.Bytes(), 0o644))
	got, err := ReadSamples(p)
	require.NoError(t, err)
	assert.Equal(t, samples, got)
}

func TestCleanedNameAndSortKey(t *testing.T) {
	assert.Equal(t, "cleaned.txt", CleanedName("thermal_displacements.yaml", false))
	assert.Equal(t, "cleaned_3.txt", CleanedName("/data/thermal_displacements.yaml-3", true))
	assert.Equal(t, "cleaned_-2.txt", CleanedName("thermal_displacements.yaml--2.zst", true))
	assert.Equal(t, "cleaned_td.txt", CleanedName("td.yaml", true))
	//only the text up to a second "yaml-" counts.
	assert.Equal(t, "cleaned_4.txt", CleanedName("td.yaml-4yaml-old", true))

	assert.Equal(t, 3, SortKey("cleaned_3.txt"))
	assert.Equal(t, -2, SortKey("/tmp/cleaned_-2.txt"))
	assert.Equal(t, 0, SortKey("cleaned_td.txt"))
	assert.Equal(t, 0, SortKey("cleaned.txt"))
}

func TestReadVolumeFiles(t *testing.T) {
	dir := t.TempDir()
	ev := writeFile(t, dir, "e-v.dat", "# cell volume   energy of cell other than phonon\n  60.0  -10.1\n\n  61.0  -10.2\n  62.5  -10.0\n")
	v, err := ReadVolumeEnergy(ev)
	require.NoError(t, err)
	assert.Equal(t, []float64{60, 61, 62.5}, v)

	empty := writeFile(t, dir, "empty.dat", "# nothing\n")
	_, err = ReadVolumeEnergy(empty)
	assert.True(t, errors.Is(err, ErrFormat))

	vt1 := writeFile(t, dir, "volume-temperature.dat", "0.0 60.1\n10.0 60.2\n")
	vt2 := writeFile(t, dir, "volume-temperature-2.dat", "20.0 60.4\n")
	points, err := ReadVolumeTemperature(vt1, vt2)
	require.NoError(t, err)
	assert.Equal(t, []VTPoint{{0, 60.1}, {10, 60.2}, {20, 60.4}}, points)

	bad := writeFile(t, dir, "bad.dat", "0.0 60.1\n10.0\n")
	_, err = ReadVolumeTemperature(bad)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFormat))
	assert.Contains(t, err.Error(), "line 2")

	_, err = ReadVolumeTemperature(filepath.Join(dir, "missing.dat"))
	assert.True(t, errors.Is(err, ErrFormat))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestReadSingleTemperatures(t *testing.T) {
	temps, err := ReadSingleTemperatures("test/fe_thermal_displacements.yaml")
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 10, 20}, temps)
}

func TestCompressedSources(t *testing.T) {
	raw, err := os.ReadFile("test/fe_thermal_displacements.yaml")
	require.NoError(t, err)
	dir := t.TempDir()

	var zb bytes.Buffer
	enc, err := zstd.NewWriter(&zb)
	require.NoError(t, err)
	_, err = enc.Write(raw)
	require.NoError(t, err)
	require.NoError(t, enc.Close())
	zpath := writeFile(t, dir, "thermal_displacements.yaml-1.zst", zb.String())

	var gb bytes.Buffer
	gw := gzip.NewWriter(&gb)
	_, err = gw.Write(raw)
	require.NoError(t, err)
	require.NoError(t, gw.Close())
	gpath := writeFile(t, dir, "thermal_displacements.yaml-2.gz", gb.String())

	plain, err := CleanFile("test/fe_thermal_displacements.yaml")
	require.NoError(t, err)
	require.Len(t, plain, 3)
	for _, p := range []string{zpath, gpath} {
		s, err := CleanFile(p)
		require.NoError(t, err, p)
		assert.Equal(t, plain, s, p)
	}
	assert.Equal(t, "cleaned_1.txt", CleanedName(zpath, true))

	broken := writeFile(t, dir, "broken.gz", "this is not gzip")
	_, err = CleanFile(broken)
	assert.True(t, errors.Is(err, ErrFormat))
}

func TestReadExperimental(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "exp_a.dat", "# T f\n0 0.92\n100 0.85\n")
	b := writeFile(t, dir, "exp_b.dat", "\n300 0.71 0.02\n")
	xy, err := ReadExperimental(a, b)
	require.NoError(t, err)
	assert.Equal(t, []XY{{0, 0.92}, {100, 0.85}, {300, 0.71}}, xy)

	bad := writeFile(t, dir, "exp_bad.dat", "10\n")
	_, err = ReadExperimental(bad)
	assert.ErrorIs(t, err, ErrFormat)
}
