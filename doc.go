/*
 * doc.go, part of gomeph.
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

/*
Package meph is the main package of the goMeph library. It turns the thermal
displacement output of phonon calculations into temperature resolved
mean-square displacements (MSD) for each atom of the primitive cell, and into
the Mössbauer (recoil-free) fraction derived from them.

	**goMeph Capabilities**

	Reads atom symbols and masses from the primitive_cell block of a
	phonopy-style metadata file.

	Reads thermal displacement blocks ("- [ dx, dy, dz ]" list items), single
	temperature lists, volume-temperature and energy-volume tables. Files
	compressed with zstd (.zst) or gzip (.gz) are read transparently.

	Reshapes per-volume displacement files into per-atom series, fits one
	quadratic per (temperature block, atom, axis) against the cell volume and
	evaluates it along the quasi-harmonic volume-temperature curve.

	For single volume calculations, looks up (or linearly interpolates) the
	displacements sampled every 10 K at the requested temperatures.

	Discards the leading volumes that lie below the reference volume, which
	would correspond to an extrapolation to negative temperatures.

	Computes the Mössbauer factor f(T) = exp(-k²<u²>) for each atom, from the
	MSD components, the atomic mass and the recoil energy of the isotope.

	Writes tab separated result files. Figures are produced by the mephplot
	subpackage, columnar exports by the parquet subpackage and a results
	archive is kept by the store subpackage.

A whole run is driven by a RunState, which owns every intermediate result and
the temporary files written while cleaning the displacement blocks. A RunState
is reset at the start of each run and is not safe for concurrent use.
*/
package meph
