package generate

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/printforge/slewgen/pkg/bearing"
)

// smallEnvelope is infeasible at low counts (inner race too thin) and
// hits the roller chamfer bound within a few dozen rollers, so a sweep
// over it exercises skip, write and terminate in one run.
func smallEnvelope() Envelope {
	return Envelope{
		OuterDiameter: 100,
		InnerDiameter: 60,
		Width:         10,
		RollerFit:     0.5,
		RollerSlide:   0.7,
	}
}

func TestEnvelopeSpec(t *testing.T) {
	spec := smallEnvelope().Spec(24)
	want := bearing.Spec{
		OuterDiameter: 100,
		InnerDiameter: 60,
		Width:         10,
		RollerFit:     0.5,
		RollerSlide:   0.7,
		NumRollers:    24,
	}
	if spec != want {
		t.Errorf("Spec(24) = %+v, want %+v", spec, want)
	}
}

func TestSweepMatchesResolver(t *testing.T) {
	env := smallEnvelope()
	dir := t.TempDir()

	result, err := Sweep(env, 2, 2, dir, &stubKernel{}, nil)
	if err != nil {
		t.Fatalf("Sweep: %v", err)
	}

	// Replay the resolver to derive the expected outcome per count.
	var wantFiles []string
	wantStop := 0
	for n := 2; ; n += 2 {
		_, rerr := bearing.Resolve(env.Spec(n))
		if rerr == nil {
			wantFiles = append(wantFiles, filepath.Join(dir, Filename(env.Spec(n))))
			continue
		}
		var verr bearing.ValidationError
		if !errors.As(rerr, &verr) {
			t.Fatalf("n=%d: unexpected resolver error %v", n, rerr)
		}
		if verr.Kind == bearing.ErrRollerChamferTooSmall {
			wantStop = n
			break
		}
		if n > 1000 {
			t.Fatal("resolver never reached the roller chamfer bound")
		}
	}

	if len(wantFiles) == 0 {
		t.Fatal("test envelope has no feasible counts; pick another envelope")
	}
	if len(result.Files) != len(wantFiles) {
		t.Fatalf("Sweep wrote %d files %v, want %d %v",
			len(result.Files), result.Files, len(wantFiles), wantFiles)
	}
	for i := range wantFiles {
		if result.Files[i] != wantFiles[i] {
			t.Errorf("file %d = %q, want %q", i, result.Files[i], wantFiles[i])
		}
	}
	if result.StopCount != wantStop {
		t.Errorf("StopCount = %d, want %d", result.StopCount, wantStop)
	}

	var verr bearing.ValidationError
	if !errors.As(result.Terminal, &verr) || verr.Kind != bearing.ErrRollerChamferTooSmall {
		t.Errorf("Terminal = %v, want roller chamfer validation error", result.Terminal)
	}
}

func TestSweepRoundsOddStart(t *testing.T) {
	dir := t.TempDir()
	even, err := Sweep(smallEnvelope(), 2, 2, dir, &stubKernel{}, nil)
	if err != nil {
		t.Fatalf("Sweep(2): %v", err)
	}
	odd, err := Sweep(smallEnvelope(), 1, 2, t.TempDir(), &stubKernel{}, nil)
	if err != nil {
		t.Fatalf("Sweep(1): %v", err)
	}
	if len(odd.Files) != len(even.Files) || odd.StopCount != even.StopCount {
		t.Errorf("odd start: %d files stop %d, even start: %d files stop %d",
			len(odd.Files), odd.StopCount, len(even.Files), even.StopCount)
	}
}

func TestSweepRejectsBadStep(t *testing.T) {
	for _, step := range []int{0, -2} {
		_, err := Sweep(smallEnvelope(), 2, step, t.TempDir(), &stubKernel{}, nil)
		if err == nil {
			t.Errorf("Sweep(step=%d) = success, want error", step)
		}
	}
}

// A razor-thin radial gap keeps the inner race wall below the
// printable minimum at every roller count, so the sweep never reaches
// the roller chamfer bound and must stop at its count cap instead.
func TestSweepNeverFeasibleEnvelope(t *testing.T) {
	env := Envelope{
		OuterDiameter: 100,
		InnerDiameter: 99,
		Width:         10,
		RollerFit:     0.1,
		RollerSlide:   0.1,
	}
	result, err := Sweep(env, 2, 2, t.TempDir(), &stubKernel{}, nil)
	if err == nil {
		t.Fatal("Sweep over an infeasible envelope = success, want error")
	}
	var verr bearing.ValidationError
	if !errors.As(err, &verr) {
		t.Errorf("error = %v, want a wrapped validation error", err)
	}
	if len(result.Files) != 0 {
		t.Errorf("Sweep wrote %d files for an infeasible envelope", len(result.Files))
	}
	if result.Terminal != nil {
		t.Errorf("Terminal = %v, want nil when the cap ends the sweep", result.Terminal)
	}
}

func TestSweepKernelErrorIsFatal(t *testing.T) {
	kernelErr := errors.New("revolve failed")
	result, err := Sweep(smallEnvelope(), 2, 2, t.TempDir(), &stubKernel{revolveErr: kernelErr}, nil)
	if !errors.Is(err, kernelErr) {
		t.Fatalf("Sweep error = %v, want wrapped %v", err, kernelErr)
	}
	if len(result.Files) != 0 {
		t.Errorf("Sweep wrote %d files before kernel failure at first feasible count", len(result.Files))
	}
	if !strings.Contains(err.Error(), "num_rollers=") {
		t.Errorf("error = %q, want roller count context", err)
	}
}
