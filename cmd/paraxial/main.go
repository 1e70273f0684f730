// SPDX-License-Identifier: MIT

// Command paraxial prints the first-order properties of a bundled sample
// prescription.
//
//	paraxial -sample cooke_triplet
//	paraxial -sample singlet_rear_stop -wavelength 0.65 -object-distance 500
//	paraxial -sample edmund_49_847 -lang de | column -t
//
// Output is an aligned table on a terminal and tab-separated lines
// otherwise. Queries that fail (e.g. focal points of a telescope) are
// reported in place instead of aborting the listing.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/katalvlaran/paraxial/firstorder"
	"github.com/katalvlaran/paraxial/optic"
	"github.com/katalvlaran/paraxial/samples"
	"golang.org/x/term"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("paraxial: ")

	tty := term.IsTerminal(int(os.Stdout.Fd()))
	if err := run(os.Args[1:], os.Stdout, tty); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		log.Fatal(err)
	}
}

// options are the parsed command-line settings.
type options struct {
	sample   string
	wl       float64
	distance float64
	lang     string
	list     bool
}

func parse(args []string, out io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("paraxial", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.StringVar(&o.sample, "sample", "cooke_triplet", "sample prescription name (see -list)")
	fs.Float64Var(&o.wl, "wavelength", 0, "wavelength in µm (0: the sample's primary wavelength)")
	fs.Float64Var(&o.distance, "object-distance", 0, "object distance before surface 1, or inf (0: keep the sample's)")
	fs.StringVar(&o.lang, "lang", "en", "BCP 47 language tag used to format numbers")
	fs.BoolVar(&o.list, "list", false, "list sample names and exit")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: paraxial [options]\n\nOptions:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	if o.wl < 0 || math.IsNaN(o.wl) || math.IsInf(o.wl, 0) {
		return options{}, fmt.Errorf("bad wavelength %v", o.wl)
	}
	if o.distance < 0 || math.IsNaN(o.distance) {
		return options{}, fmt.Errorf("bad object distance %v", o.distance)
	}

	return o, nil
}

func run(args []string, out io.Writer, tty bool) error {
	o, err := parse(args, out)
	if err != nil {
		return err
	}
	if o.list {
		for _, name := range samples.Names() {
			fmt.Fprintln(out, name)
		}
		return nil
	}

	tag, err := language.Parse(o.lang)
	if err != nil {
		return fmt.Errorf("bad -lang: %w", err)
	}
	p := message.NewPrinter(tag)

	ctor, err := samples.Lookup(o.sample)
	if err != nil {
		return err
	}
	var sysOpts []optic.Option
	if o.distance != 0 {
		sysOpts = append(sysOpts, optic.WithObjectPosition(-o.distance))
	}
	sys, err := ctor(sysOpts...)
	if err != nil {
		return err
	}
	var aOpts []firstorder.Option
	if o.wl != 0 {
		aOpts = append(aOpts, firstorder.WithWavelength(o.wl))
	}
	a, err := firstorder.New(sys, aOpts...)
	if err != nil {
		return err
	}

	return report(out, tty, p, o.sample, a)
}

// query is one line of the report.
type query struct {
	name string
	fn   func() (float64, error)
}

func queries(a *firstorder.Analyzer) []query {
	return []query{
		{"f1", a.FrontFocalLength},
		{"f2", a.BackFocalLength},
		{"F1", a.F1},
		{"F2", a.F2},
		{"P1", a.P1},
		{"P2", a.P2},
		{"P1anti", a.P1Anti},
		{"P2anti", a.P2Anti},
		{"N1", a.N1},
		{"N2", a.N2},
		{"N1anti", a.N1Anti},
		{"N2anti", a.N2Anti},
		{"EPL", a.EPL},
		{"EPD", a.EPD},
		{"XPL", a.XPL},
		{"XPD", a.XPD},
		{"FNO", a.FNO},
		{"WFNO", a.WorkingFNO},
		{"invariant", a.Invariant},
	}
}

func report(out io.Writer, tty bool, p *message.Printer, name string, a *firstorder.Analyzer) error {
	w := out
	var tw *tabwriter.Writer
	if tty {
		tw = tabwriter.NewWriter(out, 0, 4, 2, ' ', tabwriter.AlignRight)
		w = tw
	}

	sys := a.System()
	object := "infinity"
	if !sys.ObjectAtInfinity() {
		object = formatFloat(-sys.Z(0))
	}
	fmt.Fprintf(w, "# %s\t\n", name)
	fmt.Fprintf(w, "# wavelength\t%s\n", formatFloat(a.Wavelength()))
	fmt.Fprintf(w, "# object distance\t%s\n", object)
	fmt.Fprintf(w, "# aperture\t%s %s\n", sys.Aperture().Type, formatFloat(sys.Aperture().Value))
	if m, err := a.SystemMatrix(); err == nil {
		fmt.Fprintf(w, "# matrix\t%s\n", m)
		fmt.Fprintf(w, "# power\t%s\n", formatFloat(m.Power()))
	}

	for _, q := range queries(a) {
		v, err := q.fn()
		if err != nil {
			fmt.Fprintf(w, "%s\t%s\n", q.name, errorText(err))
			continue
		}
		fmt.Fprintf(w, "%s\t%s\n", q.name, p.Sprintf("%.9f", v))
	}

	if tw != nil {
		return tw.Flush()
	}

	return nil
}

// formatFloat prints header values the way they were given on the command
// line, independent of -lang.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// errorText shortens well-known failures to one word.
func errorText(err error) string {
	switch {
	case errors.Is(err, firstorder.ErrAfocal):
		return "afocal"
	case errors.Is(err, optic.ErrNoStop):
		return "no stop"
	case errors.Is(err, firstorder.ErrImageAtInfinity):
		return "image at infinity"
	default:
		return "error: " + err.Error()
	}
}
