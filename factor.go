/*
 * factor.go, part of gomeph.
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
)

// Prefactor returns d1 = Eg²/(cħ)², in m⁻², for an atom of the given mass (amu) and
// recoil energy constant er (eV), where Eg² = 2·m·c²·Er.
func Prefactor(mass, er float64) float64 {
	eg2 := 2 * (mass * AtomicMass) * SpeedOfLight * SpeedOfLight * (er * ElementaryCharge)
	return eg2 / (SpeedOfLight * Hbar * SpeedOfLight * Hbar)
}

// Factor returns the Mössbauer (Lamb-Mössbauer) factor for the MSD components x, y, z,
// in Å², and the prefactor d1 (see Prefactor). The beam is taken along z, so z
// weights half and x, y a quarter each.
func Factor(x, y, z, d1 float64) float64 {
	msd := 0.5*z + 0.25*x + 0.25*y
	return math.Exp(-0.5 * msd * d1 * angstrom2)
}

// FactorSeries computes the factor for every atom and sample of traj. atoms must be
// in the same order as traj. If clampUnity is true, factors that are exactly 1
// (no displacement, or no recoil energy for the element) are replaced by 0.
func FactorSeries(traj *Trajectories, atoms Atoms, clampUnity bool) ([][]float64, error) {
	if traj == nil {
		return nil, newError(AlignmentError, "", "no trajectories", "FactorSeries")
	}
	if traj.Len() != atoms.Len() {
		return nil, newError(AlignmentError, "", fmt.Sprintf("%d trajectories for %d atoms", traj.Len(), atoms.Len()), "FactorSeries")
	}
	ret := make([][]float64, traj.Len())
	for i, at := range atoms {
		x, y, z := traj.Atom(i)
		if len(y) != len(x) || len(z) != len(x) {
			return nil, newError(AlignmentError, "", fmt.Sprintf("atom %s has %d, %d and %d x, y and z samples", at.Label(), len(x), len(y), len(z)), "FactorSeries")
		}
		d1 := Prefactor(at.Mass, at.Er)
		f := make([]float64, len(x))
		for n := range x {
			f[n] = Factor(x[n], y[n], z[n], d1)
			if clampUnity && f[n] == 1.0 {
				f[n] = 0
			}
		}
		ret[i] = f
	}
	return ret, nil
}
