// SPDX-License-Identifier: MIT
// Package: paraxial/firstorder
//
// cardinal.go: focal lengths, focal, principal and nodal points.

package firstorder

// FrontFocalLength returns f1, the signed distance from the front principal
// plane to the front focal point.
func (a *Analyzer) FrontFocalLength() (float64, error) {
	c, err := a.cardinal()
	return c.f1, err
}

// BackFocalLength returns f2, the signed distance from the back principal
// plane to the back focal point.
func (a *Analyzer) BackFocalLength() (float64, error) {
	c, err := a.cardinal()
	return c.f2, err
}

// F1 returns the front focal point relative to surface 1.
func (a *Analyzer) F1() (float64, error) {
	c, err := a.cardinal()
	return c.f1Point, err
}

// F2 returns the back focal point relative to the image surface.
func (a *Analyzer) F2() (float64, error) {
	c, err := a.cardinal()
	return c.f2Point, err
}

// P1 returns the front principal plane relative to surface 1.
func (a *Analyzer) P1() (float64, error) {
	c, err := a.cardinal()
	return c.f1Point - c.f1, err
}

// P2 returns the back principal plane relative to the image surface.
func (a *Analyzer) P2() (float64, error) {
	c, err := a.cardinal()
	return c.f2Point - c.f2, err
}

// P1Anti returns the front anti-principal plane relative to surface 1.
func (a *Analyzer) P1Anti() (float64, error) {
	c, err := a.cardinal()
	return c.f1Point + c.f1, err
}

// P2Anti returns the back anti-principal plane relative to the image surface.
func (a *Analyzer) P2Anti() (float64, error) {
	c, err := a.cardinal()
	return c.f2Point + c.f2, err
}

// N1 returns the front nodal point relative to surface 1. It coincides with
// P1 when object and image space share an index.
func (a *Analyzer) N1() (float64, error) {
	c, err := a.cardinal()
	return c.f1Point + c.f2, err
}

// N2 returns the back nodal point relative to the image surface.
func (a *Analyzer) N2() (float64, error) {
	c, err := a.cardinal()
	return c.f2Point + c.f1, err
}

// N1Anti returns the front anti-nodal point relative to surface 1.
func (a *Analyzer) N1Anti() (float64, error) {
	c, err := a.cardinal()
	return c.f1Point - c.f2, err
}

// N2Anti returns the back anti-nodal point relative to the image surface.
func (a *Analyzer) N2Anti() (float64, error) {
	c, err := a.cardinal()
	return c.f2Point - c.f1, err
}

// cardinals holds the two focal lengths and focal points every other
// cardinal point is derived from.
type cardinals struct {
	f1, f2           float64
	f1Point, f2Point float64
}

func (a *Analyzer) cardinal() (cardinals, error) {
	m, err := a.focal()
	if err != nil {
		return cardinals{}, err
	}
	n, n2 := a.indices()

	return cardinals{
		f1:      n / m.C,
		f2:      -n2 / m.C,
		f1Point: n * m.D / m.C,
		f2Point: -n2 * m.A / m.C,
	}, nil
}
