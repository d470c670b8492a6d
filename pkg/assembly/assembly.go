// Package assembly places constructed solids into a bearing assembly:
// one fused race body plus N rollers at alternating tilts around the
// pitch circle.
package assembly

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/printforge/slewgen/pkg/bearing"
	"github.com/printforge/slewgen/pkg/kernel"
)

// Color tags for visual differentiation only; they have no geometric
// effect. Alternating roller colors make the two tilt groups visible.
const (
	RaceColor       = "gold"
	RollerColorEven = "tan1"
	RollerColorOdd  = "tan"
)

// Transform is the rigid placement of one part: a tilt about the
// transverse X axis, a translation, then a spin about the bearing Z
// axis, applied in that order.
type Transform struct {
	TiltDeg     float64
	Translation r3.Vec
	SpinDeg     float64
}

// IsIdentity reports whether the transform leaves a part in place.
func (t Transform) IsIdentity() bool {
	return t.TiltDeg == 0 && t.SpinDeg == 0 && t.Translation == (r3.Vec{})
}

// Part is one placed, named, color-tagged solid.
type Part struct {
	Solid     kernel.Solid
	Name      string
	Color     string
	Transform Transform
}

// Assembly is the ordered part list for one bearing: the race body
// first, then NumRollers rollers.
type Assembly struct {
	Parts []Part
}

// RollerTransform returns the placement of roller i as a pure function
// of the index. Even indices tilt +45 degrees, odd indices -45, so
// adjacent rollers cross at 90 degrees and jointly resist radial,
// axial and moment loads. Rollers sit on the pitch circle at half the
// bearing width, evenly spaced by 360/NumRollers degrees.
func RollerTransform(p bearing.Params, i int) Transform {
	tilt := 45.0
	if i%2 == 1 {
		tilt = -45.0
	}
	return Transform{
		TiltDeg:     tilt,
		Translation: r3.Vec{Y: -p.PitchRadius, Z: p.Width / 2},
		SpinDeg:     float64(i) * p.RollerThetaDeg * 2,
	}
}

// RollerColor returns the color tag for roller i.
func RollerColor(i int) string {
	if i%2 == 0 {
		return RollerColorEven
	}
	return RollerColorOdd
}

// Place builds the assembly from the constructed race and roller
// solids. The race keeps the identity transform; every roller reuses
// the same solid under its own placement.
func Place(race, roller kernel.Solid, p bearing.Params) Assembly {
	parts := make([]Part, 0, p.NumRollers+1)
	parts = append(parts, Part{
		Solid: race,
		Name:  "races",
		Color: RaceColor,
	})
	for i := 0; i < p.NumRollers; i++ {
		parts = append(parts, Part{
			Solid:     roller,
			Name:      fmt.Sprintf("roller%d", i),
			Color:     RollerColor(i),
			Transform: RollerTransform(p, i),
		})
	}
	return Assembly{Parts: parts}
}

// Meshes realizes every placed part through the kernel and returns one
// named mesh per part, in assembly order.
func (a Assembly) Meshes(k kernel.Kernel) ([]*kernel.Mesh, error) {
	meshes := make([]*kernel.Mesh, 0, len(a.Parts))
	for _, part := range a.Parts {
		s := part.Solid
		t := part.Transform
		if t.TiltDeg != 0 {
			s = k.Rotate(s, kernel.XAxis(), t.TiltDeg)
		}
		if t.Translation != (r3.Vec{}) {
			s = k.Translate(s, t.Translation)
		}
		if t.SpinDeg != 0 {
			s = k.Rotate(s, kernel.ZAxis(), t.SpinDeg)
		}

		m, err := k.ToMesh(s)
		if err != nil {
			return nil, fmt.Errorf("assembly: mesh %s: %w", part.Name, err)
		}
		m.PartName = part.Name
		meshes = append(meshes, m)
	}
	return meshes, nil
}
