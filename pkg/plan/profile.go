// Package plan builds the 2D profiles and declarative construction
// plans for one bearing design. Plans are pure data; executing them
// against a geometry kernel is the construct package's job.
package plan

import (
	"math"

	"github.com/printforge/slewgen/pkg/bearing"
	"github.com/printforge/slewgen/pkg/kernel"
)

// RaceCutter returns the rhombus silhouette of a roller's contact
// track: half-diagonal (roller_diameter+roller_fit)*sqrt(2)/2,
// centered on the pitch circle at mid-width. Swept a full revolution
// and subtracted from the race blank it carves both roller tracks in
// one pass.
func RaceCutter(p bearing.Params) kernel.Profile {
	h := (p.RollerDiameter + p.RollerFit) * math.Sqrt2 / 2
	cx := p.PitchRadius
	cy := p.Width / 2
	return kernel.Profile{
		{X: cx - h, Y: cy},
		{X: cx, Y: cy + h},
		{X: cx + h, Y: cy},
		{X: cx, Y: cy - h},
	}
}

// RollerProfile returns the barrel cross-section of a single roller
// in roller-local coordinates: flat end faces tapering to the
// mid-diameter at the equator, symmetric about the rotation axis.
// Revolved 360 degrees it produces the lozenge-section roller matching
// the 45-degree tilted rolling geometry.
func RollerProfile(p bearing.Params) kernel.Profile {
	flat := (p.Width*math.Sqrt2 - p.RollerLength) / 2
	taper := (p.Width*math.Sqrt2 - p.RollerDiameter) / 2
	half := p.RollerLength / 2
	r := p.RollerDiameter / 2
	return kernel.Profile{
		{X: 0, Y: -half},
		{X: flat, Y: -half},
		{X: r, Y: -taper},
		{X: r, Y: taper},
		{X: flat, Y: half},
		{X: 0, Y: half},
	}
}

// raceBlank is the rectangular cross-section of the fused race body.
func raceBlank(p bearing.Params) kernel.Profile {
	return rect(p.InnerRadius, 0, p.OuterRadius, p.Width)
}

// clearanceSlot is the centered rectangular cut that frees the gap
// between the inner and outer race so they rotate independently once
// printed.
func clearanceSlot(p bearing.Params) kernel.Profile {
	w := (p.RollerFit+p.RollerSlide)*math.Sqrt2/2 +
		p.RollerChamferLength +
		2*p.InnerRaceChamfer
	return rect(p.PitchRadius-w/2, 0, p.PitchRadius+w/2, p.Width)
}

func rect(x0, y0, x1, y1 float64) kernel.Profile {
	return kernel.Profile{
		{X: x0, Y: y0},
		{X: x1, Y: y0},
		{X: x1, Y: y1},
		{X: x0, Y: y1},
	}
}
