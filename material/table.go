// SPDX-License-Identifier: MIT
// Package: paraxial/material
//
// table.go: interpolated index tables.

package material

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/paraxial/numeric"
)

var (
	// ErrEmptyTable indicates a Table built without points.
	ErrEmptyTable = errors.New("material: empty index table")

	// ErrBadPoint indicates a non-finite or non-positive table entry, or a
	// duplicated wavelength.
	ErrBadPoint = errors.New("material: bad table point")
)

// Point is one measured (wavelength, index) pair.
type Point struct {
	Wavelength float64
	Index      float64
}

// Table is a medium given by measured indices. Between points the index is
// interpolated linearly; outside the table the end segments are extended.
type Table struct {
	name   string
	points []Point
}

// NewTable sorts and validates pts.
//
// Errors: ErrEmptyTable, ErrBadPoint.
func NewTable(name string, pts ...Point) (*Table, error) {
	if len(pts) == 0 {
		return nil, ErrEmptyTable
	}
	sorted := append([]Point(nil), pts...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Wavelength < sorted[j].Wavelength })
	for i, p := range sorted {
		if !(p.Wavelength > 0) || !(p.Index > 0) || numeric.IsInf(p.Wavelength) || numeric.IsInf(p.Index) {
			return nil, fmt.Errorf("%w: %+v", ErrBadPoint, p)
		}
		if i > 0 && sorted[i-1].Wavelength == p.Wavelength {
			return nil, fmt.Errorf("%w: duplicate wavelength %g", ErrBadPoint, p.Wavelength)
		}
	}

	return &Table{name: name, points: sorted}, nil
}

// Index interpolates the table at wavelength (µm).
func (t *Table) Index(wavelength float64) float64 {
	pts := t.points
	if len(pts) == 1 {
		return pts[0].Index
	}
	k := sort.Search(len(pts), func(i int) bool { return pts[i].Wavelength >= wavelength })
	if k < len(pts) && pts[k].Wavelength == wavelength {
		return pts[k].Index
	}
	switch {
	case k == 0:
		k = 1
	case k == len(pts):
		k = len(pts) - 1
	}
	a, b := pts[k-1], pts[k]
	frac := (wavelength - a.Wavelength) / (b.Wavelength - a.Wavelength)

	return a.Index + frac*(b.Index-a.Index)
}

// String implements fmt.Stringer.
func (t *Table) String() string { return t.name }
