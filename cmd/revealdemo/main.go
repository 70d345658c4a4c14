// Command revealdemo renders the pixel reveal sequence of an image to
// PNG frames, one file per clarity step.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/gogpu/pixelreveal"
)

var (
	demoWidth   int
	demoHeight  int
	demoOut     string
	demoLevels  []float64
	demoVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "revealdemo <image>",
	Short: "Render the pixel reveal sequence to PNG frames",
	Long: `revealdemo loads an image, sizes a surface, and walks the clarity
sequence the way a scroll-triggered reveal would: one frame at the
initial clear render, then one frame per step from full pixelation back
to full clarity.

Examples:
  revealdemo photo.jpg
  revealdemo photo.png --width 1280 --height 720 --out frames
  revealdemo photo.webp --levels 0.05,0.1,0.25,1.0`,
	Args: cobra.ExactArgs(1),
	RunE: runDemo,
}

func init() {
	rootCmd.Flags().IntVar(&demoWidth, "width", 800, "surface width in pixels")
	rootCmd.Flags().IntVar(&demoHeight, "height", 450, "surface height in pixels")
	rootCmd.Flags().StringVarP(&demoOut, "out", "o", "frames", "output directory")
	rootCmd.Flags().Float64SliceVar(&demoLevels, "levels", nil, "clarity sequence (strictly increasing, ending at 1.0)")
	rootCmd.Flags().BoolVarP(&demoVerbose, "verbose", "v", false, "enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runDemo(cmd *cobra.Command, args []string) error {
	if demoVerbose {
		pixelreveal.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	host := &demoHost{w: demoWidth, h: demoHeight}
	trigger := &captureTrigger{}
	sched := &queueScheduler{}

	opts := []pixelreveal.Option{
		pixelreveal.WithScheduler(sched),
		pixelreveal.WithLoader(pixelreveal.FileLoader{}),
	}
	if len(demoLevels) > 0 {
		opts = append(opts, pixelreveal.WithClarityLevels(demoLevels...))
	}

	ctl, err := pixelreveal.New(host, trigger, args[0], opts...)
	if err != nil {
		return err
	}

	ctl.Start(cmd.Context())
	if err := waitReady(ctl); err != nil {
		return err
	}

	if err := os.MkdirAll(demoOut, 0o755); err != nil {
		return err
	}

	// The initial paint after load is the fully clear image.
	if err := saveFrame(ctl, "initial"); err != nil {
		return err
	}

	// Simulate the surface crossing the top viewport edge, then drain
	// the step timers one by one, saving a frame per clarity step.
	trigger.fire(pixelreveal.EdgeTop)
	if err := saveFrame(ctl, fmt.Sprintf("step_%02d", ctl.ClarityIndex())); err != nil {
		return err
	}
	for sched.runNext() {
		if err := saveFrame(ctl, fmt.Sprintf("step_%02d", ctl.ClarityIndex())); err != nil {
			return err
		}
	}

	fmt.Printf("wrote %d frames to %s (%dx%d)\n",
		len(ctl.ClarityLevels())+1, demoOut, demoWidth, demoHeight)
	return nil
}

func waitReady(ctl *pixelreveal.Controller) error {
	deadline := time.Now().Add(10 * time.Second)
	for {
		switch ctl.State() {
		case pixelreveal.StateReady:
			return nil
		case pixelreveal.StateFailed:
			return fmt.Errorf("image load failed")
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("timed out waiting for image load")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func saveFrame(ctl *pixelreveal.Controller, name string) error {
	return ctl.Surface().SavePNG(filepath.Join(demoOut, name+".png"))
}

// demoHost is a fixed-size stand-in for the document environment.
type demoHost struct {
	w, h int
}

func (h *demoHost) ContentBox() (int, int) { return h.w, h.h }

func (h *demoHost) HideSource() {}

func (h *demoHost) Reveal() {}

func (h *demoHost) Overlay() pixelreveal.Overlay { return nil }

func (h *demoHost) OnResize(func()) {}

// captureTrigger records registrations so the demo can replay viewport
// crossings on demand.
type captureTrigger struct {
	regs []pixelreveal.Registration
}

func (t *captureTrigger) Register(r pixelreveal.Registration) {
	t.regs = append(t.regs, r)
}

func (t *captureTrigger) fire(edge pixelreveal.Edge) {
	for _, r := range t.regs {
		if r.Start == edge && r.OnEnter != nil {
			r.OnEnter()
		}
	}
}

// queueScheduler collects timers and runs them on demand, letting the
// demo walk the sequence deterministically instead of in real time.
type queueScheduler struct {
	mu      sync.Mutex
	pending []*queueTimer
}

type queueTimer struct {
	mu      sync.Mutex
	fn      func()
	stopped bool
}

func (t *queueTimer) Stop() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return false
	}
	t.stopped = true
	return true
}

func (s *queueScheduler) AfterFunc(_ time.Duration, fn func()) pixelreveal.Timer {
	t := &queueTimer{fn: fn}
	s.mu.Lock()
	s.pending = append(s.pending, t)
	s.mu.Unlock()
	return t
}

// runNext runs the oldest pending timer and reports whether one ran.
func (s *queueScheduler) runNext() bool {
	for {
		s.mu.Lock()
		if len(s.pending) == 0 {
			s.mu.Unlock()
			return false
		}
		t := s.pending[0]
		s.pending = s.pending[1:]
		s.mu.Unlock()

		t.mu.Lock()
		stopped := t.stopped
		t.mu.Unlock()
		if stopped {
			continue
		}

		t.fn()
		return true
	}
}
