/*
 * plot.go, part of gomeph.
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

// Package mephplot renders the Mössbauer factor and MSD curves of a run to image files.
package mephplot

import (
	"fmt"
	"image/color"
	"path/filepath"
	"strings"

	meph "github.com/trimeph/gomeph"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Style sets how a curve is drawn. A nil Glyph means no point markers.
type Style struct {
	Color  color.Color
	Width  vg.Length
	Dashes []vg.Length
	Glyph  draw.GlyphDrawer
}

// DefaultStyle returns a solid line with the color for the key-th of steps curves.
func DefaultStyle(key, steps int) Style {
	return Style{Color: colors(key, steps), Width: vg.Points(1.5)}
}

// Dashed returns a copy of S with a dashed line.
func (S Style) Dashed() Style {
	S.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}
	return S
}

func (S Style) lineStyle() draw.LineStyle {
	ls := plotter.DefaultLineStyle
	if S.Color != nil {
		ls.Color = S.Color
	}
	if S.Width > 0 {
		ls.Width = S.Width
	}
	ls.Dashes = S.Dashes
	return ls
}

func xys(x, y []float64) (plotter.XYs, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("%d temperatures but %d values", len(x), len(y))
	}
	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i].X = x[i]
		pts[i].Y = y[i]
	}
	return pts, nil
}

func basicPlot(title, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "Temperature (K)"
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	p.Legend.Top = true
	return p
}

func addLine(p *plot.Plot, name string, x, y []float64, st Style) error {
	pts, err := xys(x, y)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if st.Glyph != nil {
		l, s, err := plotter.NewLinePoints(pts)
		if err != nil {
			return err
		}
		l.LineStyle = st.lineStyle()
		s.GlyphStyle.Shape = st.Glyph
		s.GlyphStyle.Color = l.LineStyle.Color
		p.Add(l, s)
		p.Legend.Add(name, l, s)
		return nil
	}
	l, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	l.LineStyle = st.lineStyle()
	p.Add(l)
	p.Legend.Add(name, l)
	return nil
}

// FactorPlot plots the factor f against the temperatures. Experimental points, if any,
// are drawn as blue crosses.
func FactorPlot(title string, temps, f []float64, exp []meph.XY, st Style) (*plot.Plot, error) {
	p := basicPlot(title, "Mössbauer factor")
	if err := addLine(p, "f(T)", temps, f, st); err != nil {
		return nil, err
	}
	if len(exp) > 0 {
		pts := make(plotter.XYs, len(exp))
		for i, v := range exp {
			pts[i].X = v.X
			pts[i].Y = v.Y
		}
		s, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, err
		}
		s.GlyphStyle.Shape = draw.PlusGlyph{}
		s.GlyphStyle.Color = color.RGBA{B: 255, A: 255}
		s.GlyphStyle.Radius = vg.Points(4)
		p.Add(s)
		p.Legend.Add("experimental", s)
	}
	return p, nil
}

// MSDPlot plots the x, y and z MSD components against the temperatures, each
// with its own color and the width and dashes of st. If st has a glyph, each
// component gets a different one.
func MSDPlot(title string, temps, x, y, z []float64, st Style) (*plot.Plot, error) {
	p := basicPlot(title, "MSD (Å²)")
	for a, series := range [][]float64{x, y, z} {
		s := st
		s.Color = colors(a, 3)
		if st.Glyph != nil {
			s.Glyph = getShape(a)
		}
		name := "MSD of " + string(rune('X'+a))
		if err := addLine(p, name, temps, series, s); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// SaveAll writes a factor figure and an MSD figure for each atom of the run to dir,
// as factor_<Symbol><Index>.<format> and msd_<Symbol><Index>.<format>. format is
// any extension gonum/plot supports (png, svg, pdf, eps, jpg, tif). It returns the
// names of the files written.
func SaveAll(R *meph.RunState, dir, format string) ([]string, error) {
	if R.MSD == nil || len(R.Factors) != R.Atoms.Len() {
		return nil, fmt.Errorf("SaveAll: the run has no results")
	}
	format = strings.TrimPrefix(strings.ToLower(format), ".")
	if format == "" {
		format = "png"
	}
	temps := R.Temperatures()
	var ret []string
	for i, at := range R.Atoms {
		st := DefaultStyle(i, R.Atoms.Len())
		fp, err := FactorPlot(fmt.Sprintf("Mössbauer factor of %s", at.Label()), temps, R.Factors[i], R.Experimental, st)
		if err != nil {
			return ret, fmt.Errorf("SaveAll: %s: %w", at.Label(), err)
		}
		name := filepath.Join(dir, fmt.Sprintf("factor_%s.%s", at.Label(), format))
		if err := fp.Save(5*vg.Inch, 4*vg.Inch, name); err != nil {
			return ret, fmt.Errorf("SaveAll: %w", err)
		}
		ret = append(ret, name)
		x, y, z := R.MSD.Atom(i)
		mp, err := MSDPlot(fmt.Sprintf("MSD of %s", at.Label()), temps, x, y, z, st.Dashed())
		if err != nil {
			return ret, fmt.Errorf("SaveAll: %s: %w", at.Label(), err)
		}
		name = filepath.Join(dir, fmt.Sprintf("msd_%s.%s", at.Label(), format))
		if err := mp.Save(5*vg.Inch, 4*vg.Inch, name); err != nil {
			return ret, fmt.Errorf("SaveAll: %w", err)
		}
		ret = append(ret, name)
	}
	return ret, nil
}
