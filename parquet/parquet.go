// Package parquet exports the per-atom results of a run to Parquet files
// using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"
	meph "github.com/trimeph/gomeph"
)

// Row is one temperature sample for one atom of a run.
type Row struct {
	// RunID identifies the run the row belongs to
	RunID string `parquet:"run_id,snappy,dict"`

	// AtomIndex is the 1-based index of the atom in the primitive cell
	AtomIndex int32 `parquet:"atom_index,snappy"`

	// Symbol is the element symbol of the atom
	Symbol string `parquet:"symbol,snappy,dict"`

	// Temperature in K
	Temperature float64 `parquet:"temperature,snappy"`

	// MSDX, MSDY and MSDZ are the mean square displacement components, in Å²
	MSDX float64 `parquet:"msd_x,snappy"`
	MSDY float64 `parquet:"msd_y,snappy"`
	MSDZ float64 `parquet:"msd_z,snappy"`

	// Factor is the Mössbauer factor
	Factor float64 `parquet:"factor,snappy"`
}

// Rows flattens the results of a run into rows, atom by atom, in temperature order.
func Rows(runID string, temps []float64, atoms meph.Atoms, traj *meph.Trajectories, factors [][]float64) ([]Row, error) {
	if traj.Len() != atoms.Len() || len(factors) != atoms.Len() {
		return nil, fmt.Errorf("%d atoms but %d trajectories and %d factor series", atoms.Len(), traj.Len(), len(factors))
	}
	ret := make([]Row, 0, len(temps)*atoms.Len())
	for i, at := range atoms {
		x, y, z := traj.Atom(i)
		f := factors[i]
		if len(x) != len(temps) || len(y) != len(temps) || len(z) != len(temps) || len(f) != len(temps) {
			return nil, fmt.Errorf("atom %s: %d temperatures but %d samples", at.Label(), len(temps), len(x))
		}
		for n, T := range temps {
			ret = append(ret, Row{
				RunID:       runID,
				AtomIndex:   int32(at.Index),
				Symbol:      at.Symbol,
				Temperature: T,
				MSDX:        x[n],
				MSDY:        y[n],
				MSDZ:        z[n],
				Factor:      f[n],
			})
		}
	}
	return ret, nil
}

// WriteRows writes the rows to a Parquet file at outputPath.
func WriteRows(data []Row, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[Row](file)
	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close parquet writer: %w", err)
	}
	return nil
}
