/*
 * fit.go, part of gomeph.
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
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Quadratic is a least squares fit value = a*v² + b*v + c. Internally the polynomial
// is kept in terms of t = (v-shift)/scale, which keeps the normal equations well
// conditioned for volumes in the hundreds of Å³.
type Quadratic struct {
	shift, scale float64
	p            [3]float64
	//RMS deviation of the fitted values from the data.
	Residual float64
}

// Eval evaluates the polynomial at v.
func (Q Quadratic) Eval(v float64) float64 {
	t := (v - Q.shift) / Q.scale
	return (Q.p[0]*t+Q.p[1])*t + Q.p[2]
}

// Coefficients returns [a, b, c] such that the fit is a*v² + b*v + c.
func (Q Quadratic) Coefficients() [3]float64 {
	s2 := Q.scale * Q.scale
	m := Q.shift
	a := Q.p[0] / s2
	b := Q.p[1]/Q.scale - 2*Q.p[0]*m/s2
	c := Q.p[0]*m*m/s2 - Q.p[1]*m/Q.scale + Q.p[2]
	return [3]float64{a, b, c}
}

func distinct(x []float64) int {
	s := make([]float64, len(x))
	copy(s, x)
	sort.Float64s(s)
	n := 0
	for i, v := range s {
		if i == 0 || v != s[i-1] {
			n++
		}
	}
	return n
}

// FitQuadratic fits a degree 2 polynomial to the points (x, y) by ordinary least squares.
// At least 3 distinct x values are needed.
func FitQuadratic(x, y []float64) (Quadratic, error) {
	var Q Quadratic
	if len(x) != len(y) {
		return Q, newError(AlignmentError, "", fmt.Sprintf("%d volumes but %d values", len(x), len(y)), "FitQuadratic")
	}
	if d := distinct(x); d < 3 {
		return Q, newError(NumericError, "", fmt.Sprintf("a quadratic fit needs at least 3 distinct volumes, %d given", d), "FitQuadratic")
	}
	if floats.HasNaN(x) || floats.HasNaN(y) {
		return Q, newError(NumericError, "", "NaN in fit data", "FitQuadratic")
	}
	n := len(x)
	Q.shift = stat.Mean(x, nil)
	Q.scale = math.Max(math.Abs(floats.Max(x)-Q.shift), math.Abs(floats.Min(x)-Q.shift))
	A := mat.NewDense(n, 3, nil)
	for i, v := range x {
		t := (v - Q.shift) / Q.scale
		A.Set(i, 0, t*t)
		A.Set(i, 1, t)
		A.Set(i, 2, 1)
	}
	b := mat.NewVecDense(n, append([]float64(nil), y...))
	var beta mat.VecDense
	if err := beta.SolveVec(A, b); err != nil {
		return Q, Errorf(NumericError, "", "least squares: %w", err)
	}
	for i := range Q.p {
		Q.p[i] = beta.AtVec(i)
	}
	pred := make([]float64, n)
	for i, v := range x {
		pred[i] = Q.Eval(v)
	}
	Q.Residual = floats.Distance(pred, y, 2) / math.Sqrt(float64(n))
	return Q, nil
}

// Fitting fits one quadratic against volumes for each reshaped series (one per (block, atom)
// entry, see Sort) of each axis.
func Fitting(sorted [3][][]float64, volumes []float64) ([3][]Quadratic, error) {
	var ret [3][]Quadratic
	for a := 0; a < 3; a++ {
		ret[a] = make([]Quadratic, len(sorted[a]))
		for i, series := range sorted[a] {
			q, err := FitQuadratic(volumes, series)
			if err != nil {
				err.(Error).Decorate(fmt.Sprintf("Fitting: axis %d, entry %d", a, i))
				return ret, err
			}
			ret[a][i] = q
		}
	}
	return ret, nil
}

// WorstResiduals returns the largest RMS residual among the fits of each axis.
func WorstResiduals(fits [3][]Quadratic) [3]float64 {
	var ret [3]float64
	for a := range fits {
		for _, q := range fits[a] {
			ret[a] = math.Max(ret[a], q.Residual)
		}
	}
	return ret
}

// Imputing evaluates the fits along the volume-temperature curve. For atom i and each
// position o = 0, natom, 2*natom... up to len(volumes)*natom, the fit for entry o+i is
// evaluated at volumes[o/natom]. Each (block, atom) entry has its own local quadratic, so
// the displacement doesn't need to be monotonic in the volume across temperature blocks.
func Imputing(fits [3][]Quadratic, volumes []float64, natom int) (*Trajectories, error) {
	if natom <= 0 {
		return nil, newError(AlignmentError, "", fmt.Sprintf("%d atoms given, at least one needed", natom), "Imputing")
	}
	need := len(volumes) * natom
	for a := 0; a < 3; a++ {
		if len(fits[a]) < need {
			return nil, newError(AlignmentError, "", fmt.Sprintf("%d temperatures and %d atoms need %d fitted entries per axis, but there are %d. Each displacement file must contain one block per temperature", len(volumes), natom, need, len(fits[a])), "Imputing")
		}
	}
	ret := NewTrajectories(natom)
	for i := 0; i < natom; i++ {
		var axes [3][]float64
		for a := 0; a < 3; a++ {
			series := make([]float64, 0, len(volumes))
			for o := 0; o < need; o += natom {
				series = append(series, fits[a][o+i].Eval(volumes[o/natom]))
			}
			axes[a] = series
		}
		ret.appendAtom(axes[0], axes[1], axes[2])
	}
	return ret, nil
}
