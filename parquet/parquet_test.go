package parquet

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	meph "github.com/trimeph/gomeph"
)

func TestRowStructTags(t *testing.T) {
	schema := parquet.SchemaOf(new(Row))
	require.NotNil(t, schema)
	for _, colName := range []string{"run_id", "atom_index", "symbol", "temperature", "msd_x", "msd_y", "msd_z", "factor"} {
		_, ok := schema.Lookup(colName)
		assert.True(t, ok, "Column %s should exist in schema", colName)
	}
}

func TestRowsMismatch(t *testing.T) {
	atoms := meph.Atoms{{Symbol: "Fe", Index: 1}}
	traj := meph.NewTrajectories(1)
	_, err := Rows("r", []float64{0}, atoms, traj, [][]float64{{1}})
	assert.Error(t, err)
}

func TestWriteRunRows(t *testing.T) {
	R := meph.NewRunState(log.New(io.Discard, "", 0))
	require.NoError(t, R.Process(&meph.Input{
		Metadata:      []string{"../test/fe_phonopy.yaml"},
		Displacements: []string{"../test/fe_thermal_displacements.yaml"},
		WorkDir:       t.TempDir(),
	}))
	data, err := Rows("run-1", R.Temperatures(), R.Atoms, R.MSD, R.Factors)
	require.NoError(t, err)
	require.Len(t, data, 3)

	out := filepath.Join(t.TempDir(), "results.parquet")
	require.NoError(t, WriteRows(data, out))

	file, err := os.Open(out)
	require.NoError(t, err)
	defer file.Close()
	reader := parquet.NewGenericReader[Row](file)
	defer reader.Close()

	readData := make([]Row, reader.NumRows())
	n, err := reader.Read(readData)
	if err != nil && err != io.EOF {
		require.NoError(t, err)
	}
	require.Equal(t, len(data), n)
	assert.Equal(t, data, readData)
	assert.Equal(t, "Fe", readData[0].Symbol)
	assert.Equal(t, int32(1), readData[0].AtomIndex)
	assert.Equal(t, 10.0, readData[1].Temperature)
	assert.Equal(t, R.Factors[0][2], readData[2].Factor)
}
