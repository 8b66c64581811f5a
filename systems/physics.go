// Package systems holds the particle field simulation and the proximity link
// computation.
package systems

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/drift/components"
)

// Field defaults.
const (
	DefaultCount       = 120
	DefaultRadiusFloor = 0.1
)

// FieldParams configures particle creation.
type FieldParams struct {
	Count       int
	Velocity    Range // per axis, surface units per tick
	Radius      Range
	RadiusFloor float64 // radius never drops below this
	Opacity     Range
	Palette     Palette
}

// DefaultFieldParams returns the stock field configuration.
func DefaultFieldParams() FieldParams {
	return FieldParams{
		Count:       DefaultCount,
		Velocity:    Range{Min: -0.2, Max: 0.2},
		Radius:      Range{Min: 0.5, Max: 2.0},
		RadiusFloor: DefaultRadiusFloor,
		Opacity:     Range{Min: 0.1, Max: 0.6},
		Palette:     DefaultPalette(),
	}
}

// Validate checks the parameters for values that cannot produce a field.
func (p FieldParams) Validate() error {
	switch {
	case p.Count < 0:
		return fmt.Errorf("particle count %d is negative", p.Count)
	case !p.Velocity.Valid():
		return fmt.Errorf("velocity range %v is invalid", p.Velocity)
	case !p.Radius.Valid():
		return fmt.Errorf("radius range %v is invalid", p.Radius)
	case !(p.RadiusFloor > 0) || !finite(p.RadiusFloor):
		return fmt.Errorf("radius floor %v must be positive", p.RadiusFloor)
	case !p.Opacity.Valid() || p.Opacity.Min <= 0 || p.Opacity.Max > 1:
		return fmt.Errorf("opacity range %v must lie in (0, 1]", p.Opacity)
	}
	if err := p.Palette.Validate(); err != nil {
		return fmt.Errorf("palette: %w", err)
	}
	return nil
}

// Field is a fixed set of drifting particles. Each particle is an entity in
// an ECS world; Particles is a dense view of the world in entity creation
// order, and that order is the index links refer to.
type Field struct {
	world  *ecs.World
	mapper *ecs.Map3[components.Position, components.Velocity, components.Body]
	filter *ecs.Filter2[components.Position, components.Velocity]
	view   []components.Particle
}

// NewField seeds Count particles uniformly over the surface.
// A degenerate surface places every particle at the origin.
func NewField(p FieldParams, surface components.Surface, rng *rand.Rand) (*Field, error) {
	if rng == nil {
		return nil, errors.New("nil rng")
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	w, h := surface.W, surface.H
	if !surface.Valid() {
		w, h = 0, 0
	}

	particles := make([]components.Particle, p.Count)
	for i := range particles {
		pos := r2.Vec{X: rng.Float64() * w, Y: rng.Float64() * h}
		vel := r2.Vec{X: p.Velocity.Sample(rng), Y: p.Velocity.Sample(rng)}
		radius := max(p.Radius.Sample(rng), p.RadiusFloor)
		opacity := p.Opacity.Sample(rng)
		particles[i] = components.Particle{
			Pos:    pos,
			Vel:    vel,
			Radius: radius,
			Paint:  components.Paint{Color: p.Palette.Pick(rng), Alpha: opacity},
		}
	}
	return NewFieldFrom(particles), nil
}

// NewFieldFrom creates one entity per particle, in slice order.
// The slice is owned by the field and becomes its view.
func NewFieldFrom(particles []components.Particle) *Field {
	world := ecs.NewWorld()
	f := &Field{
		world:  world,
		mapper: ecs.NewMap3[components.Position, components.Velocity, components.Body](world),
		filter: ecs.NewFilter2[components.Position, components.Velocity](world),
		view:   particles,
	}
	for i := range particles {
		p := &particles[i]
		pos := components.Position(p.Pos)
		vel := components.Velocity(p.Vel)
		body := components.Body{Radius: p.Radius, Paint: p.Paint}
		f.mapper.NewEntity(&pos, &vel, &body)
	}
	return f
}

// Particles returns the view refreshed by the last Advance.
// Callers must not modify it.
func (f *Field) Particles() []components.Particle {
	return f.view
}

// Len returns the particle count.
func (f *Field) Len() int {
	return len(f.view)
}

// Advance moves every particle by its velocity and wraps it into the surface.
// Returns false, leaving positions untouched, when the surface is degenerate.
func (f *Field) Advance(surface components.Surface) bool {
	if !surface.Valid() {
		return false
	}
	// Entities are never removed, so the query visits them in creation order.
	query := f.filter.Query()
	i := 0
	for query.Next() {
		pos, vel := query.Get()
		next := r2.Add(r2.Vec(*pos), r2.Vec(*vel))
		next.X = Wrap(next.X, surface.W)
		next.Y = Wrap(next.Y, surface.H)
		*pos = components.Position(next)
		f.view[i].Pos = next
		i++
	}
	return true
}
