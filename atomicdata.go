/*
 * atomicdata.go, part of gomeph.
 *
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
 *
 */

package meph

//Recoil energies, in eV, of the Mössbauer transitions of each element.
//Only the common Mössbauer isotopes are present.
var symbolRecoil = map[string]float64{
	"Fe": 1.95883310e-03, //57Fe, 14.4 keV
	"I":  3.218e-03,      //129I
	"Sn": 2.57423e-3,     //119Sn
	"Sb": 6.122e-03,      //121Sb
	"Ir": 1.9094e-02,     //193Ir
}

//A map for assigning standard atomic masses (amu) to elements.
//Note that just common Mössbauer elements and their usual partners are present
var symbolMass = map[string]float64{
	"H":  1.008,
	"C":  12.01,
	"N":  14.01,
	"O":  16.00,
	"F":  18.998,
	"Na": 22.99,
	"Mg": 24.30,
	"Al": 26.98,
	"Si": 28.08,
	"P":  30.97,
	"S":  32.06,
	"Cl": 35.45,
	"K":  39.1,
	"Ca": 40.08,
	"Ti": 47.87,
	"Cr": 51.996,
	"Mn": 54.94,
	"Fe": 55.845,
	"Co": 58.93,
	"Ni": 58.69,
	"Cu": 63.55,
	"Zn": 65.38,
	"Ga": 69.72,
	"Ge": 72.63,
	"As": 74.92,
	"Se": 78.96,
	"Br": 79.904,
	"Sr": 87.62,
	"Pd": 106.42,
	"Ag": 107.87,
	"In": 114.82,
	"Sn": 118.71,
	"Sb": 121.76,
	"Te": 127.60,
	"I":  126.90,
	"Ba": 137.33,
	"La": 138.91,
	"Eu": 151.96,
	"Ir": 192.22,
	"Pt": 195.08,
	"Au": 196.97,
}

// RecoilEnergy returns the recoil energy constant, in eV, for the element
// symbol, and whether the symbol is present in the table. Unknown elements get 0.
func RecoilEnergy(symbol string) (float64, bool) {
	er, ok := symbolRecoil[symbol]
	return er, ok
}

// StandardMass returns the standard atomic mass of the element, in amu,
// and whether it is tabulated.
func StandardMass(symbol string) (float64, bool) {
	m, ok := symbolMass[symbol]
	return m, ok
}
