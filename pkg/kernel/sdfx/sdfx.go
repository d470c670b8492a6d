// Package sdfx implements the kernel.Kernel interface using the
// github.com/deadsy/sdfx SDF-based CAD library.
package sdfx

import (
	"fmt"
	"math"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/printforge/slewgen/pkg/kernel"
)

// Compile-time interface check.
var _ kernel.Kernel = (*Kernel)(nil)

// defaultMeshCells controls marching cubes tessellation resolution.
const defaultMeshCells = 200

// sdfxSolid wraps an sdf.SDF3 to implement kernel.Solid.
type sdfxSolid struct {
	s sdf.SDF3
}

// BoundingBox returns the axis-aligned bounding box.
func (s *sdfxSolid) BoundingBox() (min, max r3.Vec) {
	bb := s.s.BoundingBox()
	min = r3.Vec{X: bb.Min.X, Y: bb.Min.Y, Z: bb.Min.Z}
	max = r3.Vec{X: bb.Max.X, Y: bb.Max.Y, Z: bb.Max.Z}
	return min, max
}

// Kernel implements kernel.Kernel using sdfx.
type Kernel struct {
	// MeshCells overrides the marching cubes resolution when nonzero.
	MeshCells int
}

// New returns a new sdfx-backed kernel.
func New() *Kernel {
	return &Kernel{}
}

// unwrap extracts the underlying sdf.SDF3 from a kernel.Solid.
func unwrap(s kernel.Solid) sdf.SDF3 {
	return s.(*sdfxSolid).s
}

// wrap creates a kernel.Solid from an sdf.SDF3.
func wrap(s sdf.SDF3) kernel.Solid {
	return &sdfxSolid{s: s}
}

// polygon converts a profile to a 2D SDF. sdfx requires counter-
// clockwise winding for a positive interior, so the winding is
// normalized first.
func polygon(p kernel.Profile) (sdf.SDF2, error) {
	if len(p) < 3 {
		return nil, fmt.Errorf("profile needs at least 3 points, got %d", len(p))
	}
	// Shoelace signed area; negative means clockwise.
	area := 0.0
	for i := range p {
		j := (i + 1) % len(p)
		area += p[i].X*p[j].Y - p[j].X*p[i].Y
	}
	verts := make([]v2.Vec, len(p))
	if area < 0 {
		for i, pt := range p {
			verts[len(p)-1-i] = v2.Vec{X: pt.X, Y: pt.Y}
		}
	} else {
		for i, pt := range p {
			verts[i] = v2.Vec{X: pt.X, Y: pt.Y}
		}
	}
	return sdf.Polygon2D(verts)
}

// Revolve sweeps a closed profile about an axis. The profile is
// revolved about Z through the origin, then moved onto the requested
// axis with a rigid transform.
func (k *Kernel) Revolve(p kernel.Profile, axis kernel.Axis, angleDeg float64) (kernel.Solid, error) {
	s2, err := polygon(p)
	if err != nil {
		return nil, fmt.Errorf("sdfx: revolve profile: %w", err)
	}

	var s3 sdf.SDF3
	if angleDeg >= 360 {
		s3, err = sdf.Revolve3D(s2)
	} else {
		s3, err = sdf.RevolveTheta3D(s2, angleDeg*math.Pi/180)
	}
	if err != nil {
		return nil, fmt.Errorf("sdfx: revolve: %w", err)
	}

	m, err := axisTransform(axis)
	if err != nil {
		return nil, fmt.Errorf("sdfx: revolve axis: %w", err)
	}
	return wrap(sdf.Transform3D(s3, m)), nil
}

// axisTransform maps the origin Z axis onto the given axis.
func axisTransform(axis kernel.Axis) (sdf.M44, error) {
	d := r3.Sub(axis.End, axis.Start)
	n := r3.Norm(d)
	if n == 0 {
		return sdf.M44{}, fmt.Errorf("degenerate axis")
	}
	u := r3.Scale(1/n, d)

	m := sdf.Identity3d()
	z := r3.Vec{Z: 1}
	dot := r3.Dot(z, u)
	switch {
	case dot > 1-1e-12:
		// Axis already along +Z.
	case dot < -1+1e-12:
		// Antiparallel: flip about X.
		m = sdf.RotateX(math.Pi)
	default:
		rot := r3.Cross(z, u)
		angle := math.Acos(dot)
		m = sdf.Rotate3d(v3.Vec{X: rot.X, Y: rot.Y, Z: rot.Z}, angle)
	}

	if axis.Start != (r3.Vec{}) {
		m = sdf.Translate3d(v3.Vec{X: axis.Start.X, Y: axis.Start.Y, Z: axis.Start.Z}).Mul(m)
	}
	return m, nil
}

// Union returns the union of two solids.
func (k *Kernel) Union(a, b kernel.Solid) kernel.Solid {
	return wrap(sdf.Union3D(unwrap(a), unwrap(b)))
}

// Difference returns the difference a - b.
func (k *Kernel) Difference(a, b kernel.Solid) kernel.Solid {
	return wrap(sdf.Difference3D(unwrap(a), unwrap(b)))
}

// Intersection returns the intersection of two solids.
func (k *Kernel) Intersection(a, b kernel.Solid) kernel.Solid {
	return wrap(sdf.Intersect3D(unwrap(a), unwrap(b)))
}

// Chamfer breaks the circular edge of s nearest to the given point.
// An SDF kernel has no B-rep edges to fillet, so the chamfer executes
// as the subtraction of a revolved corner cutter at the selected rim.
// The solid must be axisymmetric about Z; the selector's radius picks
// between the outer rim and a bore rim, which covers every chamfer a
// race plan emits.
func (k *Kernel) Chamfer(s kernel.Solid, near r3.Vec, distance float64) (kernel.Solid, error) {
	if distance <= 0 {
		return nil, fmt.Errorf("sdfx: chamfer distance must be positive, got %v", distance)
	}

	min, max := s.BoundingBox()
	edgeR := math.Hypot(near.X, near.Y)
	rmax := math.Max(max.X, max.Y)
	if edgeR <= distance {
		return nil, fmt.Errorf("sdfx: chamfer selector (r=%.3f) is too close to the axis", edgeR)
	}

	// Corner cutter cross-section: a right triangle with legs of the
	// chamfer distance at the rim corner, padded past the adjacent
	// surfaces so the cut clears them. rs points from the material into
	// free space radially (outward on the OD, inward on a bore); zs
	// does the same axially.
	rs := 1.0
	if edgeR < rmax-distance {
		rs = -1.0 // bore rim
	}
	zs := 1.0
	z := max.Z
	if near.Z < (min.Z+max.Z)/2 {
		zs = -1.0
		z = min.Z
	}
	slop := distance
	cutter := kernel.Profile{
		{X: edgeR - rs*distance, Y: z},
		{X: edgeR, Y: z - zs*distance},
		{X: edgeR + rs*slop, Y: z - zs*distance},
		{X: edgeR + rs*slop, Y: z + zs*slop},
		{X: edgeR - rs*distance, Y: z + zs*slop},
	}

	s2, err := polygon(cutter)
	if err != nil {
		return nil, fmt.Errorf("sdfx: chamfer cutter: %w", err)
	}
	tool, err := sdf.Revolve3D(s2)
	if err != nil {
		return nil, fmt.Errorf("sdfx: chamfer revolve: %w", err)
	}
	return wrap(sdf.Difference3D(unwrap(s), tool)), nil
}

// Rotate rotates a solid about an arbitrary axis by degrees.
func (k *Kernel) Rotate(s kernel.Solid, axis kernel.Axis, angleDeg float64) kernel.Solid {
	d := r3.Sub(axis.End, axis.Start)
	u := r3.Scale(1/r3.Norm(d), d)
	rot := sdf.Rotate3d(v3.Vec{X: u.X, Y: u.Y, Z: u.Z}, angleDeg*math.Pi/180)

	m := rot
	if axis.Start != (r3.Vec{}) {
		off := v3.Vec{X: axis.Start.X, Y: axis.Start.Y, Z: axis.Start.Z}
		m = sdf.Translate3d(off).Mul(rot).Mul(sdf.Translate3d(off.Neg()))
	}
	return wrap(sdf.Transform3D(unwrap(s), m))
}

// Translate moves a solid by v.
func (k *Kernel) Translate(s kernel.Solid, v r3.Vec) kernel.Solid {
	m := sdf.Translate3d(v3.Vec{X: v.X, Y: v.Y, Z: v.Z})
	return wrap(sdf.Transform3D(unwrap(s), m))
}

// ToMesh converts a solid to a triangle mesh using marching cubes.
func (k *Kernel) ToMesh(s kernel.Solid) (*kernel.Mesh, error) {
	cells := k.MeshCells
	if cells <= 0 {
		cells = defaultMeshCells
	}

	renderer := render.NewMarchingCubesUniform(cells)
	triangles := render.ToTriangles(unwrap(s), renderer)

	numVerts := len(triangles) * 3
	vertices := make([]float32, 0, numVerts*3)
	normals := make([]float32, 0, numVerts*3)
	indices := make([]uint32, 0, numVerts)

	for i, tri := range triangles {
		n := tri.Normal()
		nx := float32(n.X)
		ny := float32(n.Y)
		nz := float32(n.Z)

		for j := 0; j < 3; j++ {
			v := tri[j]
			vertices = append(vertices, float32(v.X), float32(v.Y), float32(v.Z))
			normals = append(normals, nx, ny, nz)
			indices = append(indices, uint32(i*3+j))
		}
	}

	return &kernel.Mesh{
		Vertices: vertices,
		Normals:  normals,
		Indices:  indices,
	}, nil
}
