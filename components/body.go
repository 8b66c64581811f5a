package components

import "gonum.org/v1/gonum/spatial/r2"

// Particle is one drifting point of the field.
// Only Pos changes after creation.
type Particle struct {
	Pos    r2.Vec
	Vel    r2.Vec
	Radius float64
	Paint  Paint
}

// Position is the ECS position component, in surface units.
type Position r2.Vec

// Velocity is the ECS velocity component, in surface units per tick.
type Velocity r2.Vec

// Body holds the fixed drawing attributes of a particle entity.
type Body struct {
	Radius float64
	Paint  Paint
}
