/*
 * atom.go, part of gomeph.
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
	"log"
	"math"
)

// Atom contains the information for one atom of the primitive cell.
type Atom struct {
	Symbol string
	Index  int     //1-based, as given in the metadata file.
	Mass   float64 //amu
	Er     float64 //recoil energy constant in eV, 0 if unknown.
}

// Label returns the symbol followed by the index, i.e. "Fe1".
func (A *Atom) Label() string {
	return fmt.Sprintf("%s%d", A.Symbol, A.Index)
}

// Atoms is the ordered list of atoms in the primitive cell.
type Atoms []*Atom

func (A Atoms) Len() int {
	return len(A)
}

// MapRecoilEnergies sets the recoil energy constant of each atom from the
// element table. Elements absent from the table get 0, which is logged but is
// not an error. Masses far from the standard atomic mass of the element
// (more than 5%) are also logged, as they usually mean an isotope was set on purpose,
// or a mistake in the metadata file.
func MapRecoilEnergies(atoms Atoms, logger *log.Logger) {
	if logger == nil {
		logger = log.Default()
	}
	for _, at := range atoms {
		er, ok := RecoilEnergy(at.Symbol)
		if !ok {
			err := newError(LookupError, "", fmt.Sprintf("no recoil energy for element %q, 0 will be used", at.Symbol), "MapRecoilEnergies")
			logger.Print(err.Error())
		}
		at.Er = er
		if m, ok := StandardMass(at.Symbol); ok && math.Abs(at.Mass-m) > 0.05*m {
			logger.Printf("MapRecoilEnergies: mass of %s (%g) differs from the standard mass %g", at.Label(), at.Mass, m)
		}
	}
}
