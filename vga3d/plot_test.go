//go:build plot

package vga3d

import (
	"math"
	"path/filepath"
	"testing"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// orbit returns the e1e2 shadow of v stepped through n applications of r.
func orbit(v Vector[float64], r Rotor[float64], n int) plotter.XYs {
	xys := make(plotter.XYs, n)
	for i := range xys {
		xys[i].X, xys[i].Y = v.e1, v.e2
		v = v.Rotate(r)
	}
	return xys
}

func TestPlotOrbits(t *testing.T) {
	p := plot.New()
	p.Title.Text = "rotor orbits, e1e2 shadow"
	p.X.Min, p.X.Max = -2, 2
	p.Y.Min, p.Y.Max = -2, 2
	p.Add(plotter.NewGrid())

	planes := map[string]Bivector[float64]{
		"e12":     NewBivector(1., 0, 0),
		"e12+e23": NewBivector(1., 0, 1),
		"e31":     NewBivector(0., 1, 0),
	}
	i := 0
	for lbl, plane := range planes {
		r, ok := TryNewRotor(math.Pi/64, plane)
		if !ok {
			t.Fatalf("%s: no rotor", lbl)
		}
		xys := orbit(NewVector(1.5, 0.5, 0.5), r, 129)
		ln, err := plotter.NewLine(xys)
		if err != nil {
			t.Fatal(err)
		}
		ln.LineStyle.Width = vg.Points(1)
		ln.LineStyle.Color = plotutil.Color(i)
		i++
		p.Add(ln)
		p.Legend.Add(lbl, ln)

		// a full turn returns to the start
		first, last := xys[0], xys[len(xys)-1]
		if math.Abs(first.X-last.X) > 1e-9 || math.Abs(first.Y-last.Y) > 1e-9 {
			t.Errorf("%s: orbit did not close: %v %v", lbl, first, last)
		}
	}

	name := filepath.Join(t.TempDir(), "orbits.png")
	if err := p.Save(4*vg.Inch, 4*vg.Inch, name); err != nil {
		t.Fatal(err)
	}
	t.Logf("wrote %s", name)
}
