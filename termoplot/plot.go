/*
 * plot.go, part of goTermod.
 *
 * Copyright 2021 Raul Mera <rmera{at}usachDOTcl>
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
 * goTermod is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

//Package termoplot draws the curves of the thermodynamic functions and
//rates given by the goTermod models, using gonum/plot.
package termoplot

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	chem "github.com/rmera/gotermod"
)

//Series is one named curve.
type Series struct {
	Name string
	X, Y []float64
}

//Properties returns the enthalpy, entropy and Gibbs energy of t, against
//the temperatures T (K), as three series. T must have the same length as
//the property arrays of t.
func Properties(t chem.Thermo, T []float64, name string) ([]Series, error) {
	props := []struct {
		label string
		vals  []float64
	}{
		{"H", t.Enthalpy()},
		{"S", t.Entropy()},
		{"G", t.Gibbs()},
	}
	ret := make([]Series, 0, len(props))
	for _, p := range props {
		if len(p.vals) != len(T) {
			return nil, fmt.Errorf("termoplot: %d temperatures for %d values of %s", len(T), len(p.vals), p.label)
		}
		ret = append(ret, Series{Name: p.label + " " + name, X: T, Y: p.vals})
	}
	return ret, nil
}

//RateCurve returns the forward rate of R against the extent, for n extents
//evenly spread between 0 and the maximum extent of R, at the first
//temperature of the reaction. n must be at least 2.
func RateCurve(R *chem.Reaction, v chem.Variable, phase chem.Phase, par float64, n int) (Series, error) {
	top := R.MaxExtent()
	if n < 2 || math.IsInf(top, 1) || top <= 0 {
		return Series{}, fmt.Errorf("termoplot: can't sample %d extents up to %g", n, top)
	}
	s := Series{Name: "v", X: make([]float64, n), Y: make([]float64, n)}
	for i := range s.X {
		x := top * float64(i) / float64(n-1)
		s.X[i] = x
		s.Y[i] = R.Rate(x, chem.Forward, v, phase, par)[0]
	}
	return s, nil
}

//Plot draws the series as lines, each with its own color, and saves the
//plot to filename. The format is given by the extension (png, svg, pdf...).
//The size is in cm.
func Plot(series []Series, title, xlabel, ylabel string, width, height float64, filename string) error {
	if len(series) == 0 {
		return fmt.Errorf("termoplot: nothing to plot")
	}
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	for i, s := range series {
		if len(s.X) != len(s.Y) {
			return fmt.Errorf("termoplot: series %s has %d x values and %d y values", s.Name, len(s.X), len(s.Y))
		}
		pts := make(plotter.XYs, len(s.X))
		for j := range s.X {
			pts[j].X = s.X[j]
			pts[j].Y = s.Y[j]
		}
		l, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("termoplot: series %s: %w", s.Name, err)
		}
		l.LineStyle.Color = colors(i, len(series))
		l.LineStyle.Width = vg.Points(1.5)
		p.Add(l)
		p.Legend.Add(s.Name, l)
	}
	p.Legend.Top = true
	return p.Save(vg.Length(width)*vg.Centimeter, vg.Length(height)*vg.Centimeter, filename)
}

//hsv2rgb takes hue (0-360), v and s (0-1), and returns the color.
func hsv2rgb(h, v, s float64) color.RGBA {
	full := 255 * v
	if s == 0 {
		return color.RGBA{R: uint8(full), G: uint8(full), B: uint8(full), A: 255}
	}
	h = h / 60
	i := math.Floor(h)
	f := h - i
	p := 1 - s
	q := 1 - s*f
	t := 1 - s*(1-f)
	var r, g, b float64
	switch int(i) {
	case 0:
		r, g, b = 1, t, p
	case 1:
		r, g, b = q, 1, p
	case 2:
		r, g, b = p, 1, t
	case 3:
		r, g, b = p, q, 1
	case 4:
		r, g, b = t, p, 1
	default:
		r, g, b = 1, p, q
	}
	return color.RGBA{R: uint8(r * full), G: uint8(g * full), B: uint8(b * full), A: 255}
}

//colors returns the color for the key-th of steps curves, going around the
//hue circle and skipping the yellows, which are hard to see on white.
func colors(key, steps int) color.RGBA {
	norm := 260.0 / float64(steps)
	h := float64(key)*norm + 20
	if h < 55 {
		h -= 20
	} else {
		h += 20
	}
	return hsv2rgb(h, 0.9, 1)
}
