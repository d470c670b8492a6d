// Package kernel defines the abstract geometry kernel interface.
// Implementations (sdfx today) provide solid modeling behind this
// interface so the planner and placer stay testable without a real
// geometry engine.
package kernel

import (
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Profile is an ordered, closed 2D polyline defining a sketch to be
// revolved. Points live in the (radius, axial) half-plane of the
// revolution axis: X is the distance from the axis, Y runs along it.
type Profile []r2.Vec

// Axis is a revolution or rotation axis through two points.
type Axis struct {
	Start r3.Vec
	End   r3.Vec
}

// ZAxis returns the axis through the origin along +Z.
func ZAxis() Axis {
	return Axis{End: r3.Vec{Z: 1}}
}

// XAxis returns the axis through the origin along +X.
func XAxis() Axis {
	return Axis{End: r3.Vec{X: 1}}
}

// Solid is an opaque handle to a geometry kernel solid.
// Implementations wrap their internal representation.
type Solid interface {
	// BoundingBox returns the axis-aligned bounding box.
	BoundingBox() (min, max r3.Vec)
}

// Kernel is the abstract geometry kernel interface.
type Kernel interface {
	// Revolve sweeps a closed profile angleDeg degrees about an axis.
	Revolve(p Profile, axis Axis, angleDeg float64) (Solid, error)

	// Boolean operations
	Union(a, b Solid) Solid
	Difference(a, b Solid) Solid
	Intersection(a, b Solid) Solid

	// Chamfer breaks the circular edge of s nearest to the given point
	// by distance. The solid must be axisymmetric about Z.
	Chamfer(s Solid, near r3.Vec, distance float64) (Solid, error)

	// Rigid transforms
	Rotate(s Solid, axis Axis, angleDeg float64) Solid
	Translate(s Solid, v r3.Vec) Solid

	// Mesh output
	ToMesh(s Solid) (*Mesh, error)
}
