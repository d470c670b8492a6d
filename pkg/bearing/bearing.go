// Package bearing resolves and validates the parameters of a
// 3D-printable cross-roller slew bearing.
//
// The six user-facing inputs (Spec) underdetermine the geometry: the
// roller diameter and pitch radius are derived so that the inner and
// outer race have equal load-bearing cross-sections at mid-width,
// where a printed bearing is weakest due to layer adhesion. Resolve
// performs that derivation and rejects specs that cannot be printed
// on an FDM machine.
package bearing

import "math"

// FDM printer constraints. Resolution thresholds derive from these;
// they describe a common 0.4 mm nozzle profile.
const (
	// LineWidth is the extrusion line width in mm.
	LineWidth = 0.4
	// LineHeight is the layer height in mm.
	LineHeight = 0.2

	// innerRaceMinThickness is the minimum printable inner race wall.
	innerRaceMinThickness = LineWidth * 3
	// outerRaceMinThickness is the minimum printable outer race wall.
	outerRaceMinThickness = LineWidth * 3
	// rollerChamferMinLength is the minimum flat a roller's chamfered
	// end needs against the print bed.
	rollerChamferMinLength = LineWidth * 3
)

// Spec is the immutable input for one design attempt. All lengths in mm.
type Spec struct {
	OuterDiameter float64
	InnerDiameter float64
	Width         float64
	// RollerFit is the clearance between the races and the rolling
	// surface of a roller.
	RollerFit float64
	// RollerSlide is the clearance between the races and the sliding
	// (end) surface of a roller.
	RollerSlide float64
	// NumRollers must be positive and even so that rollers pair up
	// into two alternating 45-degree tilted groups.
	NumRollers int
}

// Params is the fully derived parameter set for a feasible spec.
// It is produced by Resolve and consumed read-only downstream.
type Params struct {
	Spec

	OuterRadius float64
	InnerRadius float64
	// PitchRadius is the radius of the circle traced by roller centers.
	PitchRadius float64
	// RollerDiameter equalizes the load-bearing cross-section of the
	// inner and outer race at mid-width.
	RollerDiameter float64
	RollerLength   float64
	// RollerThetaDeg is the half-angle between adjacent rollers,
	// 360 / (2 * NumRollers), in degrees.
	RollerThetaDeg float64
	// RollerChamferLength is the flat contact length of a roller's
	// chamfered end, as seen from the side.
	RollerChamferLength float64
	// OuterRaceChamfer breaks the outer rim edges of the races.
	OuterRaceChamfer float64
	// InnerRaceChamfer is the edge break depth between the races.
	InnerRaceChamfer float64
}

// Resolve derives the full parameter set from a spec or reports the
// first manufacturability check the spec fails. Checks run in a fixed
// order and short-circuit, so the error always names the most
// fundamental problem with the spec.
func Resolve(spec Spec) (Params, error) {
	outerRadius := spec.OuterDiameter / 2
	innerRadius := spec.InnerDiameter / 2

	for _, c := range []struct {
		name  string
		value float64
	}{
		{"outer diameter", spec.OuterDiameter},
		{"inner diameter", spec.InnerDiameter},
		{"width", spec.Width},
		{"roller fit", spec.RollerFit},
		{"roller slide", spec.RollerSlide},
		{"number of rollers", float64(spec.NumRollers)},
	} {
		if c.value < 0 {
			return Params{}, negativeErr(c.name)
		}
	}

	if spec.NumRollers == 0 || spec.NumRollers%2 == 1 {
		return Params{}, oddRollerErr()
	}

	// The angle one roller occupies around the pitch circle.
	thetaRad := math.Pi / float64(spec.NumRollers)
	thetaDeg := 360.0 / (2.0 * float64(spec.NumRollers))

	// Closed-form roller diameter for a 45-degree contact angle: the
	// largest roller that fits tangentially at the pitch circle while
	// keeping the two race cross-sections equal at mid-width.
	cot := 1 / math.Tan(thetaRad)
	rollerDiameter := math.Sqrt2*math.Sqrt(
		(outerRadius*outerRadius+innerRadius*innerRadius)/(cot*cot+4)) - spec.RollerFit

	track := rollerDiameter + spec.RollerFit
	disc := outerRadius*outerRadius + innerRadius*innerRadius - track*track
	if disc <= 0 {
		return Params{}, pitchRadiusErr()
	}
	pitchRadius := math.Sqrt2 / 2 * math.Sqrt(disc)

	// Radial material between the bearing surfaces and the ID/OD walls.
	halfTrack := track * math.Sqrt2 / 2
	if pitchRadius-innerRadius-halfTrack < innerRaceMinThickness {
		return Params{}, innerRaceErr()
	}
	if outerRadius-pitchRadius-halfTrack < outerRaceMinThickness {
		return Params{}, outerRaceErr()
	}

	// Flat contact length of the roller's chamfered end; too short and
	// the roller cannot bridge against the race while printing.
	chamferLength := rollerDiameter*math.Sqrt2 +
		spec.RollerFit*math.Sqrt2/2 -
		spec.RollerSlide*math.Sqrt2/2 -
		spec.Width
	if chamferLength < rollerChamferMinLength {
		return Params{}, rollerChamferErr()
	}

	return Params{
		Spec:                spec,
		OuterRadius:         outerRadius,
		InnerRadius:         innerRadius,
		PitchRadius:         pitchRadius,
		RollerDiameter:      rollerDiameter,
		RollerLength:        rollerDiameter + spec.RollerFit - spec.RollerSlide,
		RollerThetaDeg:      thetaDeg,
		RollerChamferLength: chamferLength,
		OuterRaceChamfer:    LineWidth,
		InnerRaceChamfer:    LineHeight,
	}, nil
}
