/*
 * files.go, part of gomeph.
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

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// Sample contains the dx, dy and dz displacement-squared components for one atom at one condition.
type Sample [3]float64

// VTPoint is one row of a volume-temperature file.
type VTPoint struct {
	Temperature float64
	Volume      float64
}

// XY is a point of an experimental reference curve (temperature, f).
type XY struct {
	X, Y float64
}

const (
	primitiveMarker  = "primitive_cell:"
	reciprocalMarker = "reciprocal_lattice:"
)

var (
	atomInfoRe    = regexp.MustCompile(`(?s)symbol: (\w+) # (\d+)\s+coordinates: .*?\n\s+mass: ([\d.]+)`)
	temperatureRe = regexp.MustCompile(`temperature:\s+([\d.]+)`)
	//a YAML flow list item, "- [ a, b, c ]", optionally followed by a comment.
	displacementRe = regexp.MustCompile(`^\s*-\s*\[([^\]]*)\]\s*(?:#.*)?$`)
	sortKeyRe      = regexp.MustCompile(`cleaned_(-?\d+)`)
)

// ParseAtomInfo reads the atoms of the primitive cell from the content of a metadata file.
// Only the text between the "primitive_cell:" and "reciprocal_lattice:" markers is considered.
// If either marker is missing, an empty (non-nil) slice is returned, which callers must
// take as "no atom data found".
func ParseAtomInfo(content string) Atoms {
	ret := make(Atoms, 0, 4)
	start := strings.Index(content, primitiveMarker)
	end := strings.Index(content, reciprocalMarker)
	if start < 0 || end < start {
		return ret
	}
	segment := content[start:end]
	for _, m := range atomInfoRe.FindAllStringSubmatch(segment, -1) {
		//the regexp only lets digits through, so these can't fail short of an overflow.
		index, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		mass, err := strconv.ParseFloat(m[3], 64)
		if err != nil {
			continue
		}
		ret = append(ret, &Atom{Symbol: m[1], Index: index, Mass: mass})
	}
	return ret
}

// ReadAtomInfo reads the atoms from each of the given metadata files, in order.
func ReadAtomInfo(paths ...string) (Atoms, error) {
	ret := make(Atoms, 0, 4)
	for _, p := range paths {
		b, err := readAll(p)
		if err != nil {
			return nil, errDecorate(err, "ReadAtomInfo")
		}
		ret = append(ret, ParseAtomInfo(string(b))...)
	}
	return ret, nil
}

// scanColumns returns the first ncols numeric columns of each data row of a whitespace-separated
// file. Blank lines and lines starting with '#' are skipped.
func scanColumns(fname string, ncols int) ([][]float64, error) {
	src, err := openSource(fname)
	if err != nil {
		return nil, err
	}
	defer src.Close()
	var ret [][]float64
	scanner := bufio.NewScanner(src)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	var nline int
	for scanner.Scan() {
		nline++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < ncols {
			return nil, Errorf(FormatError, fname, "line %d: %d columns expected, found %d", nline, ncols, len(fields))
		}
		row := make([]float64, ncols)
		for i := range row {
			row[i], err = strconv.ParseFloat(fields[i], 64)
			if err != nil {
				return nil, Errorf(FormatError, fname, "line %d, column %d: %w", nline, i+1, err)
			}
		}
		ret = append(ret, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, Errorf(FormatError, fname, "reading: %w", err)
	}
	return ret, nil
}

// ReadVolumeEnergy reads the volumes (first column) of an energy-volume file.
// The file must contain at least one row.
func ReadVolumeEnergy(fname string) ([]float64, error) {
	rows, err := scanColumns(fname, 1)
	if err != nil {
		return nil, errDecorate(err, "ReadVolumeEnergy")
	}
	if len(rows) == 0 {
		return nil, newError(FormatError, fname, "no volume-energy rows, expected 'volume energy' columns", "ReadVolumeEnergy")
	}
	ret := make([]float64, len(rows))
	for i, r := range rows {
		ret[i] = r[0]
	}
	return ret, nil
}

// ReadVolumeTemperature reads 'temperature volume' rows from each file and concatenates them in order.
func ReadVolumeTemperature(paths ...string) ([]VTPoint, error) {
	var ret []VTPoint
	for _, p := range paths {
		rows, err := scanColumns(p, 2)
		if err != nil {
			return nil, errDecorate(err, "ReadVolumeTemperature")
		}
		for _, r := range rows {
			ret = append(ret, VTPoint{Temperature: r[0], Volume: r[1]})
		}
	}
	return ret, nil
}

// ReadExperimental reads two-column (temperature, f) experimental data from each file, in order.
func ReadExperimental(paths ...string) ([]XY, error) {
	var ret []XY
	for _, p := range paths {
		rows, err := scanColumns(p, 2)
		if err != nil {
			return nil, errDecorate(err, "ReadExperimental")
		}
		for _, r := range rows {
			ret = append(ret, XY{X: r[0], Y: r[1]})
		}
	}
	return ret, nil
}

// ReadSingleTemperatures collects the values of every "temperature: <float>" token in the
// files, in file order. Used for single volume calculations.
func ReadSingleTemperatures(paths ...string) ([]float64, error) {
	var ret []float64
	for _, p := range paths {
		src, err := openSource(p)
		if err != nil {
			return nil, errDecorate(err, "ReadSingleTemperatures")
		}
		scanner := bufio.NewScanner(src)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			m := temperatureRe.FindStringSubmatch(scanner.Text())
			if m == nil {
				continue
			}
			t, err := strconv.ParseFloat(m[1], 64)
			if err != nil {
				src.Close()
				return nil, Errorf(FormatError, p, "bad temperature %q: %w", m[1], err)
			}
			ret = append(ret, t)
		}
		err = scanner.Err()
		src.Close()
		if err != nil {
			return nil, Errorf(FormatError, p, "reading: %w", err)
		}
	}
	return ret, nil
}

// CleanDisplacements extracts the displacement samples from a thermal displacement block.
// Every list item of the form "- [ dx, dy, dz ]" qualifies, whatever its indentation or
// number formatting. Items with more than 3 components (i.e. full displacement matrices)
// contribute their first 3 (the diagonal). name is used only for error messages.
func CleanDisplacements(r io.Reader, name string) ([]Sample, error) {
	var ret []Sample
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	var nline int
	for scanner.Scan() {
		nline++
		m := displacementRe.FindStringSubmatch(scanner.Text())
		if m == nil {
			continue
		}
		fields := strings.Split(m[1], ",")
		if len(fields) < 3 {
			return nil, Errorf(FormatError, name, "line %d: 3 comma-separated components expected in '- [ dx, dy, dz ]', found %d", nline, len(fields))
		}
		var s Sample
		for i := 0; i < 3; i++ {
			v, err := strconv.ParseFloat(strings.TrimSpace(fields[i]), 64)
			if err != nil {
				return nil, Errorf(FormatError, name, "line %d, component %d: %w", nline, i+1, err)
			}
			s[i] = v
		}
		ret = append(ret, s)
	}
	if err := scanner.Err(); err != nil {
		return nil, Errorf(FormatError, name, "reading: %w", err)
	}
	return ret, nil
}

// CleanFile reads the displacement samples of a (possibly compressed) displacement file.
func CleanFile(fname string) ([]Sample, error) {
	src, err := openSource(fname)
	if err != nil {
		return nil, errDecorate(err, "CleanFile")
	}
	defer src.Close()
	s, err := CleanDisplacements(src, fname)
	return s, errDecorate(err, "CleanFile")
}

// WriteSamples writes the samples as "dx,dy,dz" lines, without losing precision.
func WriteSamples(w io.Writer, samples []Sample) error {
	bw := bufio.NewWriter(w)
	for _, s := range samples {
		_, err := fmt.Fprintf(bw, "%s,%s,%s\n",
			strconv.FormatFloat(s[0], 'g', -1, 64),
			strconv.FormatFloat(s[1], 'g', -1, 64),
			strconv.FormatFloat(s[2], 'g', -1, 64))
		if err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadSamples reads the "dx,dy,dz" lines written by WriteSamples.
func ReadSamples(fname string) ([]Sample, error) {
	src, err := openSource(fname)
	if err != nil {
		return nil, errDecorate(err, "ReadSamples")
	}
	defer src.Close()
	var ret []Sample
	scanner := bufio.NewScanner(src)
	var nline int
	for scanner.Scan() {
		nline++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		p := strings.Split(line, ",")
		if len(p) != 3 {
			return nil, Errorf(FormatError, fname, "line %d: 'dx,dy,dz' expected", nline)
		}
		var s Sample
		for i := range s {
			s[i], err = strconv.ParseFloat(strings.TrimSpace(p[i]), 64)
			if err != nil {
				return nil, Errorf(FormatError, fname, "line %d: %w", nline, err)
			}
		}
		ret = append(ret, s)
	}
	if err := scanner.Err(); err != nil {
		return nil, Errorf(FormatError, fname, "reading: %w", err)
	}
	return ret, nil
}

// CleanedName returns the name of the cleaned file for the displacement file source.
// It is "cleaned.txt" if there is only one displacement file, and "cleaned_<suffix>.txt" otherwise,
// where suffix is the text between the first "yaml-" in the file name and the next one, if any
// (or the name without extension, if there is no "yaml-").
func CleanedName(source string, multi bool) string {
	if !multi {
		return "cleaned.txt"
	}
	base := filepath.Base(trimCompression(source))
	var suffix string
	if i := strings.Index(base, "yaml-"); i >= 0 {
		suffix = base[i+len("yaml-"):]
		if j := strings.Index(suffix, "yaml-"); j >= 0 {
			suffix = suffix[:j]
		}
	} else {
		suffix = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return "cleaned_" + suffix + ".txt"
}

// SortKey extracts the signed integer in a "cleaned_<int>" name, 0 if there is none.
func SortKey(name string) int {
	m := sortKeyRe.FindStringSubmatch(name)
	if m == nil {
		return 0
	}
	k, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return k
}
