/*
 * run.go, part of gomeph.
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
	"errors"
	"fmt"
	"log"
)

// Mode is the kind of calculation a run processes.
type Mode string

const (
	//No run has been processed yet.
	NoMode Mode = ""
	//One displacement file for a single volume, sampled every 10 K.
	SingleVolume Mode = "single"
	//One displacement file per volume, plus volume-temperature and energy-volume files.
	QuasiHarmonic Mode = "qha"
)

// Input contains the files and options for one run.
type Input struct {
	Metadata          []string //phonopy-style files with the primitive cell
	Displacements     []string //thermal displacement files, one per volume
	VolumeTemperature []string //'temperature volume' files (QHA)
	VolumeEnergy      []string //'volume energy' files (QHA), only the first one is used
	Experimental      []string //'temperature f' reference data, optional
	WorkDir           string   //where the cleaned intermediate files go, "." if empty
	Strategy          Strategy //for single volume runs
	SkipFilter        bool     //don't drop volumes smaller than the first volume-temperature one
}

// RunState holds everything produced while processing one run. It is not
// safe for concurrent use.
type RunState struct {
	logger *log.Logger
	mode   Mode
	temps  []float64
	ws     *workspace

	Atoms        Atoms
	EVVolumes    []float64 //energy-volume volumes, after filtering
	Points       []VTPoint
	Sets         []DisplacementSet //key ordered, after filtering
	Removed      int               //leading volumes dropped by the validity filter
	Sorted       [3][][]float64
	Fits         [3][]Quadratic
	MSD          *Trajectories
	Factors      [][]float64
	Experimental []XY
}

// NewRunState returns an empty RunState that logs to logger (log.Default() if nil).
func NewRunState(logger *log.Logger) *RunState {
	if logger == nil {
		logger = log.Default()
	}
	return &RunState{logger: logger}
}

// Reset clears all the results of a previous run.
func (R *RunState) Reset() {
	logger := R.logger
	*R = RunState{logger: logger}
}

// Mode returns the kind of the last processed run.
func (R *RunState) Mode() Mode { return R.mode }

// Temperatures returns the temperatures at which the MSD and factors are given.
func (R *RunState) Temperatures() []float64 { return R.temps }

// Cleanup removes the intermediate files of the run.
func (R *RunState) Cleanup() error {
	if R.ws == nil {
		return nil
	}
	return R.ws.clean()
}

// Process resets the state and runs the whole pipeline on the input. The mode is
// quasi-harmonic if any volume-temperature or energy-volume file is given, single
// volume otherwise. Intermediate files are always removed before returning, even
// if the run fails.
func (R *RunState) Process(in *Input) (err error) {
	R.Reset()
	R.ws = newWorkspace(in.WorkDir)
	defer func() {
		if cerr := R.Cleanup(); cerr != nil {
			R.logger.Printf("Process: removing cleaned files: %v", cerr)
			err = errors.Join(err, cerr)
		}
	}()
	R.Atoms, err = ReadAtomInfo(in.Metadata...)
	if err != nil {
		return errDecorate(err, "Process")
	}
	if R.Atoms.Len() == 0 {
		return newError(FormatError, first(in.Metadata), "no atoms found between 'primitive_cell:' and 'reciprocal_lattice:'", "Process")
	}
	MapRecoilEnergies(R.Atoms, R.logger)
	if len(in.Experimental) > 0 {
		R.Experimental, err = ReadExperimental(in.Experimental...)
		if err != nil {
			return errDecorate(err, "Process")
		}
	}
	if len(in.Displacements) == 0 {
		return newError(FormatError, "", "no displacement files given", "Process")
	}
	if len(in.VolumeTemperature) > 0 || len(in.VolumeEnergy) > 0 {
		R.mode = QuasiHarmonic
		err = R.quasiHarmonic(in)
	} else {
		R.mode = SingleVolume
		err = R.singleVolume(in)
	}
	return errDecorate(err, "Process")
}

func first(s []string) string {
	if len(s) == 0 {
		return ""
	}
	return s[0]
}

// load cleans a displacement file, writes the cleaned samples to the workspace and
// reads them back.
func (R *RunState) load(source string, multi bool) (DisplacementSet, error) {
	samples, err := CleanFile(source)
	if err != nil {
		return DisplacementSet{}, errDecorate(err, "load")
	}
	if len(samples) == 0 {
		return DisplacementSet{}, newError(FormatError, source, "no '- [ dx, dy, dz ]' items found", "load")
	}
	name := CleanedName(source, multi)
	for _, f := range R.ws.Files() {
		if f == R.ws.path(name) {
			return DisplacementSet{}, newError(FormatError, source, fmt.Sprintf("cleaned name %s is already used by another displacement file", name), "load")
		}
	}
	cleaned, err := R.ws.write(name, samples)
	if err != nil {
		return DisplacementSet{}, errDecorate(err, "load")
	}
	samples, err = ReadSamples(cleaned)
	if err != nil {
		return DisplacementSet{}, errDecorate(err, "load")
	}
	set := NewDisplacementSet(SortKey(name), source, samples)
	set.Cleaned = cleaned
	return set, nil
}

func (R *RunState) singleVolume(in *Input) error {
	if len(in.Displacements) != 1 {
		return newError(AlignmentError, "", fmt.Sprintf("%d displacement files given. A single volume run takes exactly one, give volume-temperature and energy-volume files for a quasi-harmonic run", len(in.Displacements)), "singleVolume")
	}
	natom := R.Atoms.Len()
	temps, err := ReadSingleTemperatures(in.Displacements...)
	if err != nil {
		return errDecorate(err, "singleVolume")
	}
	if len(temps) == 0 {
		return newError(FormatError, in.Displacements[0], "no 'temperature: <T>' entries found", "singleVolume")
	}
	R.temps = temps
	set, err := R.load(in.Displacements[0], false)
	if err != nil {
		return errDecorate(err, "singleVolume")
	}
	R.Sets = []DisplacementSet{set}
	s := in.Strategy
	if s == "" {
		s = Bucket
	}
	R.logger.Printf("singleVolume: %d atoms, %d temperatures, %s strategy", natom, len(temps), s)
	R.MSD, err = Interpolate(set, temps, natom, s)
	if err != nil {
		return errDecorate(err, "singleVolume")
	}
	R.Factors, err = FactorSeries(R.MSD, R.Atoms, true)
	return errDecorate(err, "singleVolume")
}

func (R *RunState) quasiHarmonic(in *Input) error {
	if len(in.VolumeTemperature) == 0 || len(in.VolumeEnergy) == 0 {
		return newError(FormatError, "", "a quasi-harmonic run needs both volume-temperature and energy-volume files", "quasiHarmonic")
	}
	natom := R.Atoms.Len()
	if len(in.VolumeEnergy) > 1 {
		R.logger.Printf("quasiHarmonic: %d energy-volume files given, only %s will be used", len(in.VolumeEnergy), in.VolumeEnergy[0])
	}
	evVol, err := ReadVolumeEnergy(in.VolumeEnergy[0])
	if err != nil {
		return errDecorate(err, "quasiHarmonic")
	}
	R.Points, err = ReadVolumeTemperature(in.VolumeTemperature...)
	if err != nil {
		return errDecorate(err, "quasiHarmonic")
	}
	if len(R.Points) == 0 {
		return newError(FormatError, first(in.VolumeTemperature), "no 'temperature volume' rows", "quasiHarmonic")
	}
	temps := make([]float64, len(R.Points))
	volumes := make([]float64, len(R.Points))
	for i, p := range R.Points {
		temps[i] = p.Temperature
		volumes[i] = p.Volume
	}
	R.temps = temps
	multi := len(in.Displacements) > 1
	sets := make([]DisplacementSet, 0, len(in.Displacements))
	for _, d := range in.Displacements {
		set, err := R.load(d, multi)
		if err != nil {
			return errDecorate(err, "quasiHarmonic")
		}
		sets = append(sets, set)
	}
	SortSets(sets)
	if !in.SkipFilter {
		R.Removed = CountBelowReference(evVol, volumes[0])
		if R.Removed > 0 {
			R.logger.Printf("quasiHarmonic: dropping %d volumes smaller than %g, the volume at %g K", R.Removed, volumes[0], temps[0])
		}
		evVol, sets, err = RemoveInvalid(evVol, sets, R.Removed)
		if err != nil {
			return errDecorate(err, "quasiHarmonic")
		}
	}
	R.EVVolumes = evVol
	R.Sets = sets
	if len(evVol) != len(sets) {
		return newError(AlignmentError, in.VolumeEnergy[0], fmt.Sprintf("%d volumes but %d displacement files. There must be one displacement file per volume", len(evVol), len(sets)), "quasiHarmonic")
	}
	R.Sorted, err = SortAxes(sets, natom)
	if err != nil {
		return errDecorate(err, "quasiHarmonic")
	}
	R.Fits, err = Fitting(R.Sorted, evVol)
	if err != nil {
		return errDecorate(err, "quasiHarmonic")
	}
	R.logger.Printf("quasiHarmonic: %d atoms, %d volumes, %d fits per axis, %d temperatures", natom, len(evVol), len(R.Fits[0]), len(temps))
	worst := WorstResiduals(R.Fits)
	R.logger.Printf("quasiHarmonic: largest fit residuals x %.3g, y %.3g, z %.3g", worst[0], worst[1], worst[2])
	R.MSD, err = Imputing(R.Fits, volumes, natom)
	if err != nil {
		return errDecorate(err, "quasiHarmonic")
	}
	R.Factors, err = FactorSeries(R.MSD, R.Atoms, false)
	return errDecorate(err, "quasiHarmonic")
}
