package plan

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/printforge/slewgen/pkg/bearing"
	"github.com/printforge/slewgen/pkg/kernel"
)

// OpKind discriminates the construction operation variants.
type OpKind int

const (
	// OpRevolve sweeps a profile into a solid. The first op of a plan
	// is always a revolve; it creates the body the rest operate on.
	OpRevolve OpKind = iota
	// OpCut sweeps a profile and subtracts it from the body.
	OpCut
	// OpChamfer breaks the circular edge nearest to a point.
	OpChamfer
)

func (k OpKind) String() string {
	switch k {
	case OpRevolve:
		return "revolve"
	case OpCut:
		return "cut"
	case OpChamfer:
		return "chamfer"
	}
	return "unknown"
}

// Op is one declarative construction operation. Every op carries the
// axis of the circular feature it works on; revolve and cut add a
// profile and a sweep angle, chamfer an edge-selection point and a
// distance.
type Op struct {
	Kind     OpKind
	Profile  kernel.Profile
	Axis     kernel.Axis
	AngleDeg float64
	Near     r3.Vec
	Distance float64
}

// Races returns the construction plan for the fused race body. The
// inner and outer race are built as a single print-in-place solid:
// the clearance slot cut at the end is what lets them rotate
// independently once printed. All four rim edges (OD and bore, top
// and bottom) get the same edge break.
func Races(p bearing.Params) []Op {
	return []Op{
		{
			Kind:     OpRevolve,
			Profile:  raceBlank(p),
			Axis:     kernel.ZAxis(),
			AngleDeg: 360,
		},
		{
			Kind:     OpCut,
			Profile:  RaceCutter(p),
			Axis:     kernel.ZAxis(),
			AngleDeg: 360,
		},
		{
			Kind:     OpChamfer,
			Axis:     kernel.ZAxis(),
			Near:     r3.Vec{X: p.OuterRadius},
			Distance: p.OuterRaceChamfer,
		},
		{
			Kind:     OpChamfer,
			Axis:     kernel.ZAxis(),
			Near:     r3.Vec{X: p.OuterRadius, Z: p.Width},
			Distance: p.OuterRaceChamfer,
		},
		{
			Kind:     OpChamfer,
			Axis:     kernel.ZAxis(),
			Near:     r3.Vec{X: p.InnerRadius},
			Distance: p.OuterRaceChamfer,
		},
		{
			Kind:     OpChamfer,
			Axis:     kernel.ZAxis(),
			Near:     r3.Vec{X: p.InnerRadius, Z: p.Width},
			Distance: p.OuterRaceChamfer,
		},
		{
			Kind:     OpCut,
			Profile:  clearanceSlot(p),
			Axis:     kernel.ZAxis(),
			AngleDeg: 360,
		},
	}
}

// Roller returns the construction plan for a single roller in its
// local frame: one full revolution of the barrel profile about the
// roller axis.
func Roller(p bearing.Params) []Op {
	return []Op{
		{
			Kind:     OpRevolve,
			Profile:  RollerProfile(p),
			Axis:     kernel.ZAxis(),
			AngleDeg: 360,
		},
	}
}
