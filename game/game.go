// Package game runs the backdrop: it owns the particle field, the drawing
// surface and the frame loop.
package game

import (
	"errors"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/pthm-cable/drift/components"
	"github.com/pthm-cable/drift/renderer"
	"github.com/pthm-cable/drift/systems"
	"github.com/pthm-cable/drift/telemetry"
)

// Link line defaults.
const (
	DefaultLineWidth = 0.5
	DefaultLinkColor = "#00ff88"
)

// ErrAlreadyMounted is returned by Mount on a mounted backdrop.
var ErrAlreadyMounted = errors.New("backdrop already mounted")

// Options configures a backdrop.
type Options struct {
	Seed      int64
	Field     systems.FieldParams
	Links     systems.LinkParams
	UseGrid   bool
	LineWidth float64
	LinkColor colorful.Color

	// Particles, when set, replaces the random field at mount. The slice is
	// copied so a remount starts from the same state.
	Particles []components.Particle

	// Telemetry, all optional
	Perf     *telemetry.PerfCollector
	Stats    *telemetry.Collector
	OnWindow func(telemetry.WindowStats, telemetry.PerfStats)
}

// DefaultOptions returns the stock backdrop configuration.
func DefaultOptions() Options {
	return Options{
		Field:     systems.DefaultFieldParams(),
		Links:     systems.DefaultLinkParams(),
		LineWidth: DefaultLineWidth,
		LinkColor: components.MustHex(DefaultLinkColor),
	}
}

// Backdrop is the particle network renderer.
// It is Unmounted until Mount succeeds and again after Unmount.
// All methods must be called from the host's loop goroutine.
type Backdrop struct {
	opts Options

	canvas   renderer.Canvas
	viewport renderer.Viewport
	sched    Scheduler

	field   *systems.Field
	linker  *systems.Linker
	surface components.Surface

	mounted bool
	pending Handle
	detach  func()
	tickFn  func()

	links     []systems.Link // reused between ticks
	ticks     uint64
	lastLinks int
	linkPaint components.Paint
}

// New creates an unmounted backdrop.
func New(opts Options) *Backdrop {
	b := &Backdrop{
		opts:      opts,
		linkPaint: components.Paint{Color: opts.LinkColor},
	}
	b.tickFn = b.tick
	return b
}

// Mounted reports whether the frame loop is running.
func (b *Backdrop) Mounted() bool {
	return b.mounted
}

// Ticks returns how many ticks have run since construction.
func (b *Backdrop) Ticks() uint64 {
	return b.ticks
}

// LastLinks returns the number of links drawn by the most recent tick.
func (b *Backdrop) LastLinks() int {
	return b.lastLinks
}

// Surface returns the current drawable extent.
func (b *Backdrop) Surface() components.Surface {
	return b.surface
}

// Field returns the particle field, or nil while unmounted.
func (b *Backdrop) Field() *systems.Field {
	return b.field
}

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
