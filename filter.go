/*
 * filter.go, part of gomeph.
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

import "fmt"

// CountBelowReference returns the number of leading entries of evVol that are
// strictly smaller than ref. Counting stops at the first entry >= ref, so only
// a contiguous prefix of invalid volumes is ever detected.
func CountBelowReference(evVol []float64, ref float64) int {
	for i, v := range evVol {
		if v >= ref {
			return i
		}
	}
	return len(evVol)
}

// RemoveInvalid drops the first n entries of both the energy-volume list and the
// (key-ordered) displacement sets. The inputs are not modified.
func RemoveInvalid(evVol []float64, sets []DisplacementSet, n int) ([]float64, []DisplacementSet, error) {
	if n < 0 || n > len(evVol) || n > len(sets) {
		return nil, nil, newError(AlignmentError, "", fmt.Sprintf("can't remove %d entries from %d volumes and %d displacement files", n, len(evVol), len(sets)), "RemoveInvalid")
	}
	v := append([]float64(nil), evVol[n:]...)
	s := append([]DisplacementSet(nil), sets[n:]...)
	return v, s, nil
}
