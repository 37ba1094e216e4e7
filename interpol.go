/*
 * interpol.go, part of gomeph.
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
	"math"

	"gonum.org/v1/gonum/interp"
)

// Strategy selects how single volume displacements are obtained at each temperature.
// The two strategies agree only at exact multiples of the 10 K sampling step.
type Strategy string

const (
	//Bucket takes the sample of the 10 K bucket containing the temperature, with no interpolation.
	Bucket Strategy = "bucket"
	//Linear interpolates linearly between the two 10 K buckets bracketing the temperature.
	Linear Strategy = "linear"
)

// ParseStrategy returns the Strategy named s. The empty string gives Bucket.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case "", Bucket:
		return Bucket, nil
	case Linear:
		return Linear, nil
	}
	return "", fmt.Errorf("unknown interpolation strategy %q, use %q or %q", s, Bucket, Linear)
}

// bucket returns the index of the first sample of the bucket containing T.
// Temperatures are truncated, not floored, which only differs for negative T.
func bucket(T float64, natom int) int {
	return int(math.Trunc(T/defaultStep)) * natom
}

// Interpolate obtains the displacements of each atom at the temperatures temps, from
// the samples of a single volume calculation, which are assumed to be given every 10 K
// (atom-major within each temperature block).
func Interpolate(set DisplacementSet, temps []float64, natom int, s Strategy) (*Trajectories, error) {
	if natom <= 0 {
		return nil, newError(AlignmentError, set.Source, fmt.Sprintf("%d atoms given, at least one needed", natom), "Interpolate")
	}
	if set.Len()%natom != 0 {
		return nil, newError(AlignmentError, set.Source, fmt.Sprintf("%d samples is not a multiple of %d atoms", set.Len(), natom), "Interpolate")
	}
	var f func(series []float64, T float64, i int) (float64, error)
	switch s {
	case Bucket, "":
		f = func(series []float64, T float64, i int) (float64, error) {
			return bucketLookup(series, T, i, natom)
		}
	case Linear:
		f = func(series []float64, T float64, i int) (float64, error) {
			return linearInterpolation(series, T, i, natom)
		}
	default:
		return nil, newError(FormatError, "", fmt.Sprintf("unknown interpolation strategy %q", s), "Interpolate")
	}
	ret := NewTrajectories(natom)
	for i := 0; i < natom; i++ {
		var axes [3][]float64
		for a := 0; a < 3; a++ {
			series := set.Axis(a)
			axes[a] = make([]float64, len(temps))
			for n, T := range temps {
				v, err := f(series, T, i)
				if err != nil {
					err.(*PipelineError).filename = set.Source
					return nil, errDecorate(err, "Interpolate")
				}
				axes[a][n] = v
			}
		}
		ret.appendAtom(axes[0], axes[1], axes[2])
	}
	return ret, nil
}

func bucketLookup(series []float64, T float64, i, natom int) (float64, error) {
	t0 := bucket(T, natom) + i
	if t0 < 0 || t0 >= len(series) {
		return 0, newError(AlignmentError, "", fmt.Sprintf("no sample for %g K (index %d of %d). The file must hold a block every 10 K from 0 K", T, t0, len(series)), "bucketLookup")
	}
	return series[t0], nil
}

func linearInterpolation(series []float64, T float64, i, natom int) (float64, error) {
	t0 := bucket(T, natom) + i
	t1 := t0 + natom
	lower := math.Trunc(T/defaultStep) * defaultStep
	if lower == T {
		//exactly on a bucket, nothing to interpolate, and the last bucket has no upper neighbour.
		return bucketLookup(series, T, i, natom)
	}
	if t0 < 0 || t1 >= len(series) {
		return 0, newError(AlignmentError, "", fmt.Sprintf("no samples bracketing %g K (indexes %d, %d of %d)", T, t0, t1, len(series)), "linearInterpolation")
	}
	var pl interp.PiecewiseLinear
	if err := pl.Fit([]float64{lower, lower + defaultStep}, []float64{series[t0], series[t1]}); err != nil {
		return 0, Errorf(NumericError, "", "interpolating at %g K: %w", T, err)
	}
	return pl.Predict(T), nil
}
