package generate

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/printforge/slewgen/pkg/bearing"
	"github.com/printforge/slewgen/pkg/kernel"
)

// Envelope is a bearing spec without a roller count, the fixed frame
// a sweep varies the count inside.
type Envelope struct {
	OuterDiameter float64
	InnerDiameter float64
	Width         float64
	RollerFit     float64
	RollerSlide   float64
}

// Spec completes the envelope with a roller count.
func (e Envelope) Spec(numRollers int) bearing.Spec {
	return bearing.Spec{
		OuterDiameter: e.OuterDiameter,
		InnerDiameter: e.InnerDiameter,
		Width:         e.Width,
		RollerFit:     e.RollerFit,
		RollerSlide:   e.RollerSlide,
		NumRollers:    numRollers,
	}
}

// SweepResult reports what a sweep produced.
type SweepResult struct {
	// Files are the paths written, one per feasible roller count, in
	// increasing count order.
	Files []string
	// Terminal is the roller-chamfer validation error that ended the
	// sweep.
	Terminal error
	// StopCount is the roller count at which the sweep terminated.
	StopCount int
}

// maxRollerCount caps a sweep. An envelope whose race walls stay below
// the printable minimum at every count never reaches the roller
// chamfer bound, so the search must not run unbounded.
const maxRollerCount = 10000

// Sweep generates bearings at increasing roller counts until the
// roller chamfer falls below the printable minimum, which is the
// geometric upper bound on roller count for the envelope. Other
// validation failures are logged and skipped: low counts may be
// infeasible (race walls too thin) before the feasible band begins.
// Kernel and export failures abort the sweep, as does passing
// maxRollerCount without hitting the chamfer bound.
//
// An odd start is rounded up to the next even count, since odd counts
// can never resolve.
func Sweep(env Envelope, start, step int, outDir string, k kernel.Kernel, log *zap.Logger) (SweepResult, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if step <= 0 {
		return SweepResult{}, fmt.Errorf("sweep: step must be positive, got %d", step)
	}
	if start%2 == 1 {
		log.Debug("rounding sweep start to even roller count",
			zap.Int("start", start), zap.Int("rounded", start+1))
		start++
	}

	var result SweepResult
	var lastSkip error
	for n := start; ; n += step {
		if n > maxRollerCount {
			if lastSkip != nil {
				return result, fmt.Errorf("sweep: no roller count bound below %d: %w", maxRollerCount, lastSkip)
			}
			return result, fmt.Errorf("sweep: no roller count bound below %d", maxRollerCount)
		}

		path, err := Generate(env.Spec(n), outDir, k)
		if err == nil {
			result.Files = append(result.Files, path)
			log.Info("wrote bearing",
				zap.Int("num_rollers", n), zap.String("path", path))
			continue
		}

		var verr bearing.ValidationError
		if !errors.As(err, &verr) {
			// Kernel or export failure: fatal, propagate unmodified
			// apart from count context.
			return result, fmt.Errorf("sweep: num_rollers=%d: %w", n, err)
		}

		if verr.Kind == bearing.ErrRollerChamferTooSmall {
			log.Info("sweep reached roller count upper bound",
				zap.Int("num_rollers", n), zap.Int("written", len(result.Files)))
			result.Terminal = verr
			result.StopCount = n
			return result, nil
		}

		lastSkip = verr
		log.Info("skipping infeasible roller count",
			zap.Int("num_rollers", n), zap.String("reason", verr.Error()))
	}
}
