package bearing

import "fmt"

// ErrorKind identifies which resolution check a spec failed.
// The set is closed; callers switch on it exhaustively.
type ErrorKind int

const (
	// ErrNegativeValue means an input was below zero.
	ErrNegativeValue ErrorKind = iota
	// ErrOddRollerCount means the roller count cannot pair up into the
	// two alternating 45-degree groups.
	ErrOddRollerCount
	// ErrPitchRadiusUnreal means the pitch radius has no real solution
	// for the given envelope and roller count.
	ErrPitchRadiusUnreal
	// ErrInnerRaceThickness means the inner race wall is below the
	// minimum printable thickness.
	ErrInnerRaceThickness
	// ErrOuterRaceThickness means the outer race wall is below the
	// minimum printable thickness.
	ErrOuterRaceThickness
	// ErrRollerChamferTooSmall means a roller's bed-contact chamfer is
	// too short to print reliably.
	ErrRollerChamferTooSmall
)

func (k ErrorKind) String() string {
	switch k {
	case ErrNegativeValue:
		return "NEGATIVE_VALUE"
	case ErrOddRollerCount:
		return "ODD_ROLLER_COUNT"
	case ErrPitchRadiusUnreal:
		return "PITCH_RADIUS_UNREAL"
	case ErrInnerRaceThickness:
		return "INNER_RACE_THICKNESS"
	case ErrOuterRaceThickness:
		return "OUTER_RACE_THICKNESS"
	case ErrRollerChamferTooSmall:
		return "ROLLER_CHAMFER_TOO_SMALL"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// ValidationError is a resolution failure. Message includes the remedy
// that would make the spec feasible.
type ValidationError struct {
	Kind    ErrorKind
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func negativeErr(field string) ValidationError {
	return ValidationError{
		Kind:    ErrNegativeValue,
		Message: fmt.Sprintf("%s can't be less than 0", field),
	}
}

func oddRollerErr() ValidationError {
	return ValidationError{
		Kind:    ErrOddRollerCount,
		Message: "the number of rollers must be a positive number divisible by 2",
	}
}

func pitchRadiusErr() ValidationError {
	return ValidationError{
		Kind: ErrPitchRadiusUnreal,
		Message: "pitch radius is not real; adjust the outer diameter, inner diameter, " +
			"roller fit or the number of rollers",
	}
}

func innerRaceErr() ValidationError {
	return ValidationError{
		Kind: ErrInnerRaceThickness,
		Message: "inner race is below minimum thickness; consider decreasing the inner diameter, " +
			"increasing the outer diameter, decreasing the roller fit or increasing the number of rollers",
	}
}

func outerRaceErr() ValidationError {
	return ValidationError{
		Kind: ErrOuterRaceThickness,
		Message: "outer race is below minimum thickness; consider increasing the outer diameter, " +
			"decreasing the inner diameter, decreasing the roller fit or increasing the number of rollers",
	}
}

func rollerChamferErr() ValidationError {
	return ValidationError{
		Kind: ErrRollerChamferTooSmall,
		Message: "roller chamfer is too small; consider increasing the roller fit, decreasing the " +
			"roller slide, decreasing the bearing width or decreasing the number of rollers",
	}
}
