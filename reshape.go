/*
 * reshape.go, part of gomeph.
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
	"fmt"
	"sort"
)

// DisplacementSet holds the samples of one displacement file, split by axis.
// Key is the volume index of the file (see SortKey), and travels with the data
// so the order never depends on the order in which files were given.
type DisplacementSet struct {
	Key     int
	Source  string //the displacement file the samples were read from
	Cleaned string //the cleaned intermediate file, if any
	X, Y, Z []float64
}

// NewDisplacementSet splits the samples by axis.
func NewDisplacementSet(key int, source string, samples []Sample) DisplacementSet {
	d := DisplacementSet{Key: key, Source: source}
	d.X = make([]float64, len(samples))
	d.Y = make([]float64, len(samples))
	d.Z = make([]float64, len(samples))
	for i, s := range samples {
		d.X[i] = s[0]
		d.Y[i] = s[1]
		d.Z[i] = s[2]
	}
	return d
}

// Axis returns the series for axis 0 (x), 1 (y) or 2 (z).
func (D *DisplacementSet) Axis(a int) []float64 {
	switch a {
	case 0:
		return D.X
	case 1:
		return D.Y
	case 2:
		return D.Z
	}
	panic(fmt.Sprintf("DisplacementSet.Axis: axis %d out of range", a))
}

// Len returns the number of samples in the set.
func (D *DisplacementSet) Len() int {
	return len(D.X)
}

// SortSets orders the sets by key, keeping the given order for equal keys.
func SortSets(sets []DisplacementSet) {
	sort.SliceStable(sets, func(i, j int) bool { return sets[i].Key < sets[j].Key })
}

// Sort reshapes the series of one axis, one per file (volume), into one series per
// (block, atom) pair, where each new series runs across files. For every block offset
// o = 0, natom, 2*natom... in the first file and every atom p, the series
// [file[i][o+p] for each file i] is appended, so the result is ordered block-major.
// All files must have the same length, which must be a multiple of natom.
func Sort(series [][]float64, natom int) ([][]float64, error) {
	if natom <= 0 {
		return nil, newError(AlignmentError, "", fmt.Sprintf("%d atoms given, at least one needed", natom), "Sort")
	}
	if len(series) == 0 {
		return nil, newError(FormatError, "", "no displacement series given", "Sort")
	}
	n := len(series[0])
	for i, s := range series {
		if len(s) != n {
			return nil, newError(FormatError, "", fmt.Sprintf("series %d has %d samples, but series 0 has %d. All files must have the same layout", i, len(s), n), "Sort")
		}
	}
	if n%natom != 0 {
		return nil, newError(AlignmentError, "", fmt.Sprintf("%d samples per file is not a multiple of %d atoms", n, natom), "Sort")
	}
	ret := make([][]float64, 0, n)
	for o := 0; o < n; o += natom {
		for p := 0; p < natom; p++ {
			s := make([]float64, len(series))
			for i := range series {
				s[i] = series[i][o+p]
			}
			ret = append(ret, s)
		}
	}
	return ret, nil
}

// SortAxes applies Sort to the x, y and z series of the sets.
func SortAxes(sets []DisplacementSet, natom int) ([3][][]float64, error) {
	var ret [3][][]float64
	for i := range sets {
		if sets[i].Len() != sets[0].Len() {
			return ret, newError(FormatError, sets[i].Source, fmt.Sprintf("%d samples, but %s has %d. All displacement files must have the same layout", sets[i].Len(), sets[0].Source, sets[0].Len()), "SortAxes")
		}
		if natom > 0 && sets[i].Len()%natom != 0 {
			return ret, newError(AlignmentError, sets[i].Source, fmt.Sprintf("%d samples is not a multiple of %d atoms", sets[i].Len(), natom), "SortAxes")
		}
	}
	for a := 0; a < 3; a++ {
		series := make([][]float64, len(sets))
		for i := range sets {
			series[i] = sets[i].Axis(a)
		}
		sorted, err := Sort(series, natom)
		if err != nil {
			return ret, errDecorate(err, "SortAxes")
		}
		ret[a] = sorted
	}
	return ret, nil
}
