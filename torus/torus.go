// Package torus samples a torus into a cloud of surface points and normals
// and rasterizes it to lines of text, shading each cell by how directly its
// surface faces the light.
package torus

import (
	"math"
	"strings"

	"dasa.cc/vga/vga3d"
)

// Luminance orders the shading characters from darkest to brightest.
const Luminance = ".,-~:;=!*#$@"

type Config struct {
	// Minor is the tube radius and Major the distance from the center of the
	// torus to the center of the tube.
	Minor, Major float64

	// TubeSteps samples around the tube, RingSteps around the ring.
	TubeSteps, RingSteps int

	// Distance from the viewer to the center of the torus.
	Distance float64

	// Light points from the surface toward the light; need not be unit.
	Light vga3d.Vector[float64]
}

// DefaultConfig is applied field by field to zero values given to New.
var DefaultConfig = Config{
	Minor:     1,
	Major:     2,
	TubeSteps: 64,
	RingSteps: 200,
	Distance:  5,
	Light:     vga3d.NewVector(0., 1, -1),
}

func (c Config) withDefaults() Config {
	if c.Minor <= 0 {
		c.Minor = DefaultConfig.Minor
	}
	if c.Major <= 0 {
		c.Major = DefaultConfig.Major
	}
	if c.TubeSteps <= 0 {
		c.TubeSteps = DefaultConfig.TubeSteps
	}
	if c.RingSteps <= 0 {
		c.RingSteps = DefaultConfig.RingSteps
	}
	if c.Distance <= 0 {
		c.Distance = DefaultConfig.Distance
	}
	if _, ok := c.Light.TryNormalize(); !ok {
		c.Light = DefaultConfig.Light
	}
	return c
}

// Cloud is a sampled torus centered on the origin with its axis along e2.
// Render does not modify the cloud.
type Cloud struct {
	cfg     Config
	light   vga3d.Vector[float64]
	points  []vga3d.Vector[float64]
	normals []vga3d.Vector[float64]
}

// New sweeps a circle of cfg.Minor radius around the tube in the e12 plane,
// then sweeps that circle around the e2 axis, turning in the e31 plane.
func New(cfg Config) *Cloud {
	cfg = cfg.withDefaults()
	light, _ := cfg.Light.TryNormalize()

	c := &Cloud{
		cfg:     cfg,
		light:   light,
		points:  make([]vga3d.Vector[float64], 0, cfg.TubeSteps*cfg.RingSteps),
		normals: make([]vga3d.Vector[float64], 0, cfg.TubeSteps*cfg.RingSteps),
	}

	e1 := vga3d.NewVector(1., 0, 0)
	center := e1.Scale(cfg.Major)
	tube := vga3d.NewBivector(1., 0, 0)
	ring := vga3d.NewBivector(0., 1, 0)

	for i := 0; i < cfg.TubeSteps; i++ {
		// rotors take half the swept angle
		theta := math.Pi * float64(i) / float64(cfg.TubeSteps)
		rt, _ := vga3d.TryNewRotor(theta, tube)
		n := e1.Rotate(rt)
		p := center.AddVector(n.Scale(cfg.Minor))
		for j := 0; j < cfg.RingSteps; j++ {
			phi := math.Pi * float64(j) / float64(cfg.RingSteps)
			rr, _ := vga3d.TryNewRotor(phi, ring)
			c.points = append(c.points, p.Rotate(rr))
			c.normals = append(c.normals, n.Rotate(rr))
		}
	}
	return c
}

func (c *Cloud) Config() Config { return c.cfg }

func (c *Cloud) Len() int { return len(c.points) }

// Point returns the i'th surface point and its outward unit normal.
func (c *Cloud) Point(i int) (p, n vga3d.Vector[float64]) {
	return c.points[i], c.normals[i]
}

// Render rotates the cloud by r and returns h lines of w cells. Points are
// perspective projected with the viewer looking down e3 and the nearest
// point drawn per cell. Cells facing away from the light are left blank.
func (c *Cloud) Render(r vga3d.Rotor[float64], w, h int) []string {
	if w <= 0 || h <= 0 {
		return nil
	}

	points := vga3d.RotateAll(append([]vga3d.Vector[float64](nil), c.points...), r)
	normals := vga3d.RotateAll(append([]vga3d.Vector[float64](nil), c.normals...), r)

	// scale so the torus fills about three quarters of the width; cells are
	// roughly twice as tall as they are wide.
	k := float64(w) * c.cfg.Distance * 3 / (8 * (c.cfg.Minor + c.cfg.Major))

	cells := make([]byte, w*h)
	for i := range cells {
		cells[i] = ' '
	}
	zbuf := make([]float64, w*h)

	for i, p := range points {
		z := p.E3() + c.cfg.Distance
		if z <= 0 {
			continue
		}
		ooz := 1 / z
		x := int(float64(w)/2 + k*ooz*p.E1())
		y := int(float64(h)/2 - k*ooz*p.E2()/2)
		if x < 0 || x >= w || y < 0 || y >= h {
			continue
		}

		lum := normals[i].InnerVector(c.light)
		if lum <= 0 {
			continue
		}
		if idx := x + w*y; ooz > zbuf[idx] {
			zbuf[idx] = ooz
			cells[idx] = shade(lum)
		}
	}

	lines := make([]string, h)
	for y := range lines {
		lines[y] = string(cells[y*w : (y+1)*w])
	}
	return lines
}

// shade maps lum in (0, 1] onto Luminance.
func shade(lum float64) byte {
	i := int(lum * float64(len(Luminance)))
	if i >= len(Luminance) {
		i = len(Luminance) - 1
	}
	return Luminance[i]
}

// Frame joins rendered lines for printing.
func Frame(lines []string) string {
	return strings.Join(lines, "\n")
}
