// SPDX-License-Identifier: MIT

package firstorder_test

import (
	"fmt"

	"github.com/katalvlaran/paraxial/firstorder"
	"github.com/katalvlaran/paraxial/optic"
	"github.com/katalvlaran/paraxial/samples"
)

// ExampleAnalyzer_Summary prints the headline numbers of the Cooke triplet.
func ExampleAnalyzer_Summary() {
	sys, _ := samples.CookeTriplet()
	a, _ := firstorder.New(sys)
	s, _ := a.Summary()

	fmt.Printf("f2=%.3f EPL=%.3f XPL=%.3f FNO=%.2f\n", s.BackFocalLength, s.EPL, s.XPL, s.FNO)
	// Output: f2=50.000 EPL=11.512 XPL=-50.961 FNO=5.00
}

// ExampleAnalyzer_EPD resolves the pupil from a stop size instead of a
// fixed diameter.
func ExampleAnalyzer_EPD() {
	sys, _ := samples.CookeTriplet(optic.WithAperture(optic.FloatByStopSize, 7.6))
	a, _ := firstorder.New(sys)
	epd, _ := a.EPD()

	fmt.Printf("EPD=%.4f\n", epd)
	// Output: EPD=9.9978
}

// ExampleAnalyzer_FNO shows the error returned for a telescope.
func ExampleAnalyzer_FNO() {
	sys, _ := samples.AfocalKeplerian()
	a, _ := firstorder.New(sys)
	_, err := a.FNO()

	fmt.Println(err != nil)
	// Output: true
}
