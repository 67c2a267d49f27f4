// Package layout computes deterministic force-directed node positions for an
// entity graph. It is pure: the input graph is never mutated and identical
// inputs produce bit-for-bit identical positions.
package layout

import (
	"errors"
	"fmt"
)

// Layout errors.
var (
	// ErrInvalidConfig marks a configuration rejected before any
	// simulation work begins.
	ErrInvalidConfig = errors.New("invalid layout config")

	// ErrInvalidGraph marks an input graph violating the builder contract
	// (an edge referencing an absent node). This is a precondition
	// violation surfaced to the caller, not recovered.
	ErrInvalidGraph = errors.New("invalid graph input")
)

// Config holds the simulation parameters. The zero value is not usable; start
// from DefaultConfig.
type Config struct {
	// Canvas bounds. Depth of 0 selects a 2D layout.
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
	Depth  float64 `json:"depth,omitempty" yaml:"depth,omitempty"`

	// Iterations is the fixed number of simulation steps.
	Iterations int `json:"iterations" yaml:"iterations"`

	// RepulsionRadius is the cutoff distance beyond which node pairs exert
	// no repulsion.
	RepulsionRadius float64 `json:"repulsionRadius" yaml:"repulsion_radius"`

	// Repulsion scales the inverse-distance force pushing node pairs apart.
	Repulsion float64 `json:"repulsionCoefficient" yaml:"repulsion"`

	// Attraction scales the spring force pulling edge endpoints together.
	Attraction float64 `json:"attractionCoefficient" yaml:"attraction"`

	// Damping multiplies each node's velocity after integration; values
	// below 1 make the simulation settle instead of oscillating.
	Damping float64 `json:"damping" yaml:"damping"`

	// StepScale converts accumulated velocity into position displacement.
	StepScale float64 `json:"stepScale" yaml:"step_scale"`
}

// DefaultConfig returns the standard simulation parameters for a canvas of
// the given size.
func DefaultConfig(width, height float64) Config {
	return Config{
		Width:           width,
		Height:          height,
		Iterations:      50,
		RepulsionRadius: 200,
		Repulsion:       50,
		Attraction:      0.01,
		Damping:         0.8,
		StepScale:       0.1,
	}
}

// Validate checks the configuration, returning an error wrapping
// ErrInvalidConfig on the first violation.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0:
		return fmt.Errorf("%w: width must be positive (got %g)", ErrInvalidConfig, c.Width)
	case c.Height <= 0:
		return fmt.Errorf("%w: height must be positive (got %g)", ErrInvalidConfig, c.Height)
	case c.Depth < 0:
		return fmt.Errorf("%w: depth cannot be negative (got %g)", ErrInvalidConfig, c.Depth)
	case c.Iterations <= 0:
		return fmt.Errorf("%w: iterations must be positive (got %d)", ErrInvalidConfig, c.Iterations)
	case c.RepulsionRadius <= 0:
		return fmt.Errorf("%w: repulsion radius must be positive (got %g)", ErrInvalidConfig, c.RepulsionRadius)
	case c.Repulsion <= 0:
		return fmt.Errorf("%w: repulsion coefficient must be positive (got %g)", ErrInvalidConfig, c.Repulsion)
	case c.Attraction <= 0:
		return fmt.Errorf("%w: attraction coefficient must be positive (got %g)", ErrInvalidConfig, c.Attraction)
	case c.Damping <= 0 || c.Damping > 1:
		return fmt.Errorf("%w: damping must be in (0, 1] (got %g)", ErrInvalidConfig, c.Damping)
	case c.StepScale <= 0:
		return fmt.Errorf("%w: step scale must be positive (got %g)", ErrInvalidConfig, c.StepScale)
	}
	return nil
}

// is3D reports whether the layout has a depth axis.
func (c Config) is3D() bool {
	return c.Depth > 0
}
