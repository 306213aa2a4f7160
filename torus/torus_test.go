package torus

import (
	"math"
	"strings"
	"testing"

	"dasa.cc/vga/vga3d"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	c := New(Config{})
	cfg := c.Config()
	require.Equal(t, cfg.TubeSteps*cfg.RingSteps, c.Len())

	for i := 0; i < c.Len(); i++ {
		p, n := c.Point(i)

		// (sqrt(x² + z²) - major)² + y² = minor²
		d := math.Hypot(p.E1(), p.E3()) - cfg.Major
		if !assert.InDelta(t, cfg.Minor*cfg.Minor, d*d+p.E2()*p.E2(), 1e-9, "point %d: %v", i, p) {
			break
		}
		assert.InDelta(t, 1, n.Norm(), 1e-9)

		// the normal points away from the center of the tube
		ring := vga3d.NewVector(p.E1(), 0, p.E3())
		u, ok := ring.TryNormalize()
		require.True(t, ok)
		want := p.SubVector(u.Scale(cfg.Major)).Scale(1 / cfg.Minor)
		assert.InDelta(t, 0, want.SubVector(n).Norm(), 1e-9)
	}
}

func TestDefaults(t *testing.T) {
	cfg := New(Config{Minor: 0.5, TubeSteps: 8}).Config()
	assert.Equal(t, 0.5, cfg.Minor)
	assert.Equal(t, DefaultConfig.Major, cfg.Major)
	assert.Equal(t, 8, cfg.TubeSteps)
	assert.Equal(t, DefaultConfig.RingSteps, cfg.RingSteps)
	assert.Equal(t, DefaultConfig.Light, cfg.Light)
}

func TestRender(t *testing.T) {
	c := New(Config{})
	r, ok := vga3d.TryNewRotor(math.Pi/8, vga3d.NewBivector(0., 0, 1))
	require.True(t, ok)

	p0, n0 := c.Point(0)
	lines := c.Render(r, 80, 24)
	require.Len(t, lines, 24)
	for _, ln := range lines {
		assert.Len(t, ln, 80)
		assert.Empty(t, strings.Trim(ln, Luminance+" "))
	}
	assert.NotEmpty(t, strings.TrimSpace(Frame(lines)))

	// rendering leaves the cloud as it was
	p1, n1 := c.Point(0)
	assert.Equal(t, p0, p1)
	assert.Equal(t, n0, n1)

	assert.Nil(t, c.Render(r, 0, 24))
	assert.Nil(t, c.Render(r, 80, -1))
}

func TestRenderSymmetric(t *testing.T) {
	// seen face on, the torus is symmetric left to right
	c := New(Config{})
	r, _ := vga3d.TryNewRotor(math.Pi/4, vga3d.NewBivector(0., 0, 1))
	lines := c.Render(r, 41, 21)
	blank := func(b byte) bool { return b == ' ' }
	mismatches := 0
	for _, ln := range lines {
		for x := 0; x < len(ln)/2; x++ {
			if blank(ln[x]) != blank(ln[len(ln)-1-x]) {
				mismatches++
			}
		}
	}
	assert.Less(t, mismatches, 20, "\n%s", Frame(lines))
}

func TestShade(t *testing.T) {
	assert.Equal(t, byte('.'), shade(1e-9))
	assert.Equal(t, byte('='), shade(0.5))
	assert.Equal(t, byte('@'), shade(1))
}
