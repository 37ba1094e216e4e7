/*
 * results.go, part of gomeph.
 *
 * Copyright 2024 The gomeph Authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package meph

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// WriteResults writes, for the atom with index atom, one tab-separated
// "T MSD_x MSD_y MSD_z f" row per temperature, each value with 10 decimals.
func WriteResults(w io.Writer, temps []float64, traj *Trajectories, factors [][]float64, atom int) error {
	if traj == nil || atom < 0 || atom >= traj.Len() || atom >= len(factors) {
		return newError(AlignmentError, "", fmt.Sprintf("no results for atom %d", atom), "WriteResults")
	}
	x, y, z := traj.Atom(atom)
	f := factors[atom]
	n := len(temps)
	if len(x) != n || len(y) != n || len(z) != n || len(f) != n {
		return newError(AlignmentError, "", fmt.Sprintf("%d temperatures, but %d, %d, %d MSD samples and %d factors", n, len(x), len(y), len(z), len(f)), "WriteResults")
	}
	bw := bufio.NewWriter(w)
	for i := range temps {
		if _, err := fmt.Fprintf(bw, "%0.10f\t%0.10f\t%0.10f\t%0.10f\t%0.10f\n", temps[i], x[i], y[i], z[i], f[i]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// SaveResults writes the results of one atom to the file path (see WriteResults).
func SaveResults(path string, temps []float64, traj *Trajectories, factors [][]float64, atom int) error {
	fout, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteResults(fout, temps, traj, factors, atom); err != nil {
		fout.Close()
		return errDecorate(err, "SaveResults")
	}
	return fout.Close()
}
