// Command torus spins a shaded ASCII torus in the terminal. Every frame
// composes a small rotor onto the current orientation.
//
//	torus -width 100 -height 30 -fps 24
//
// With -frames, that many frames are printed to stdout one after another and
// the command exits without taking over the terminal.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"dasa.cc/vga/torus"
	"dasa.cc/vga/vga3d"
)

var (
	flagWidth   = flag.Int("width", 80, "frame width in cells.")
	flagHeight  = flag.Int("height", 24, "frame height in cells.")
	flagFPS     = flag.Int("fps", 30, "frames per second when interactive.")
	flagFrames  = flag.Int("frames", 0, "print this many frames and exit; zero runs interactively.")
	flagVerbose = flag.Bool("v", false, "log setup details to stderr.")
)

// spin is the rotor applied each frame, a turn in e12 followed by a turn in
// e23 so the torus tumbles about a moving axis.
func spin() vga3d.Rotor[float64] {
	a, _ := vga3d.TryNewRotor(0.02, vga3d.NewBivector(1., 0, 0))
	b, _ := vga3d.TryNewRotor(0.035, vga3d.NewBivector(0., 0, 1))
	return a.MulRotor(b)
}

func printFrames(w io.Writer, c *torus.Cloud, step vga3d.Rotor[float64], width, height, n int) error {
	r := vga3d.IdentityRotor[float64]()
	for i := 0; i < n; i++ {
		if _, err := fmt.Fprintf(w, "%s\n\n", torus.Frame(c.Render(r, width, height))); err != nil {
			return fmt.Errorf("write frame %d: %w", i, err)
		}
		r = r.MulRotor(step)
	}
	return nil
}

func main() {
	flag.Parse()
	log.SetFlags(0)

	if *flagWidth <= 0 || *flagHeight <= 0 || *flagFPS <= 0 {
		log.Fatal("torus: -width, -height and -fps must be positive")
	}

	cloud := torus.New(torus.Config{})
	if *flagVerbose {
		cfg := cloud.Config()
		log.Printf("torus: %d points, radii %v/%v, %dx%d at %d fps",
			cloud.Len(), cfg.Minor, cfg.Major, *flagWidth, *flagHeight, *flagFPS)
	}

	if *flagFrames > 0 {
		if err := printFrames(os.Stdout, cloud, spin(), *flagWidth, *flagHeight, *flagFrames); err != nil {
			log.Fatal(fmt.Errorf("torus: %w", err))
		}
		return
	}

	m := newModel(cloud, spin(), *flagWidth, *flagHeight, time.Second/time.Duration(*flagFPS))
	if err := run(m); err != nil {
		log.Fatal(err)
	}
}
