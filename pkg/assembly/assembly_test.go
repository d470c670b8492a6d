package assembly

import (
	"fmt"
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/printforge/slewgen/pkg/bearing"
	"github.com/printforge/slewgen/pkg/kernel"
)

type stubSolid struct{ name string }

func (s *stubSolid) BoundingBox() (min, max r3.Vec) {
	return r3.Vec{}, r3.Vec{X: 1, Y: 1, Z: 1}
}

// stubKernel records the rigid transforms applied before meshing.
type stubKernel struct {
	rotations    []float64
	translations []r3.Vec
	meshed       int
}

func (k *stubKernel) Revolve(p kernel.Profile, axis kernel.Axis, angleDeg float64) (kernel.Solid, error) {
	return &stubSolid{}, nil
}
func (k *stubKernel) Union(a, b kernel.Solid) kernel.Solid        { return a }
func (k *stubKernel) Difference(a, b kernel.Solid) kernel.Solid   { return a }
func (k *stubKernel) Intersection(a, b kernel.Solid) kernel.Solid { return a }
func (k *stubKernel) Chamfer(s kernel.Solid, near r3.Vec, distance float64) (kernel.Solid, error) {
	return s, nil
}

func (k *stubKernel) Rotate(s kernel.Solid, axis kernel.Axis, angleDeg float64) kernel.Solid {
	k.rotations = append(k.rotations, angleDeg)
	return s
}

func (k *stubKernel) Translate(s kernel.Solid, v r3.Vec) kernel.Solid {
	k.translations = append(k.translations, v)
	return s
}

func (k *stubKernel) ToMesh(s kernel.Solid) (*kernel.Mesh, error) {
	k.meshed++
	return &kernel.Mesh{
		Vertices: []float32{0, 0, 0, 1, 0, 0, 0, 1, 0},
		Indices:  []uint32{0, 1, 2},
	}, nil
}

func fourRollerParams(t *testing.T) bearing.Params {
	t.Helper()
	// Synthetic parameter set; placement only reads PitchRadius, Width,
	// RollerThetaDeg and NumRollers.
	return bearing.Params{
		Spec: bearing.Spec{
			Width:      10,
			NumRollers: 4,
		},
		PitchRadius:    40,
		RollerThetaDeg: 45,
	}
}

func TestPlaceStructure(t *testing.T) {
	p := fourRollerParams(t)
	race := &stubSolid{name: "race"}
	roller := &stubSolid{name: "roller"}

	a := Place(race, roller, p)
	if len(a.Parts) != 5 {
		t.Fatalf("Place produced %d parts, want 5", len(a.Parts))
	}

	head := a.Parts[0]
	if head.Name != "races" || head.Color != RaceColor {
		t.Errorf("part 0 = %q/%q, want races/%s", head.Name, head.Color, RaceColor)
	}
	if !head.Transform.IsIdentity() {
		t.Errorf("race transform = %+v, want identity", head.Transform)
	}
	if head.Solid != kernel.Solid(race) {
		t.Error("race part does not reference the race solid")
	}

	for i, part := range a.Parts[1:] {
		if want := fmt.Sprintf("roller%d", i); part.Name != want {
			t.Errorf("part %d name = %q, want %q", i+1, part.Name, want)
		}
		if part.Solid != kernel.Solid(roller) {
			t.Errorf("part %d does not share the roller solid", i+1)
		}
	}
}

func TestRollerTransformAlternatingTilt(t *testing.T) {
	p := fourRollerParams(t)
	for i := 0; i < p.NumRollers; i++ {
		tr := RollerTransform(p, i)
		want := 45.0
		if i%2 == 1 {
			want = -45.0
		}
		if tr.TiltDeg != want {
			t.Errorf("roller %d tilt = %v, want %v", i, tr.TiltDeg, want)
		}
	}
}

func TestRollerTransformSpacing(t *testing.T) {
	p := fourRollerParams(t)
	wantSpins := []float64{0, 90, 180, 270}
	for i, want := range wantSpins {
		tr := RollerTransform(p, i)
		if tr.SpinDeg != want {
			t.Errorf("roller %d spin = %v, want %v", i, tr.SpinDeg, want)
		}
		wantT := r3.Vec{Y: -p.PitchRadius, Z: p.Width / 2}
		if tr.Translation != wantT {
			t.Errorf("roller %d translation = %+v, want %+v", i, tr.Translation, wantT)
		}
	}
}

// Adjacent rollers must never occupy the same angular slot.
func TestRollerTransformDistinctSlots(t *testing.T) {
	p := fourRollerParams(t)
	seen := map[float64]int{}
	for i := 0; i < p.NumRollers; i++ {
		spin := math.Mod(RollerTransform(p, i).SpinDeg, 360)
		if prev, dup := seen[spin]; dup {
			t.Errorf("rollers %d and %d share spin %v", prev, i, spin)
		}
		seen[spin] = i
	}
}

func TestRollerColorAlternates(t *testing.T) {
	for i := 0; i < 6; i++ {
		want := RollerColorEven
		if i%2 == 1 {
			want = RollerColorOdd
		}
		if got := RollerColor(i); got != want {
			t.Errorf("RollerColor(%d) = %q, want %q", i, got, want)
		}
	}
}

func TestMeshesAppliesPlacement(t *testing.T) {
	p := fourRollerParams(t)
	k := &stubKernel{}
	a := Place(&stubSolid{}, &stubSolid{}, p)

	meshes, err := a.Meshes(k)
	if err != nil {
		t.Fatalf("Meshes: %v", err)
	}
	if len(meshes) != 5 {
		t.Fatalf("Meshes returned %d meshes, want 5", len(meshes))
	}
	if k.meshed != 5 {
		t.Errorf("kernel meshed %d solids, want 5", k.meshed)
	}

	// The race moves nowhere; every roller translates once.
	if len(k.translations) != p.NumRollers {
		t.Errorf("%d translations applied, want %d", len(k.translations), p.NumRollers)
	}
	// Each roller tilts, and every roller except index 0 (spin 0) spins.
	if len(k.rotations) != p.NumRollers+p.NumRollers-1 {
		t.Errorf("%d rotations applied, want %d", len(k.rotations), 2*p.NumRollers-1)
	}

	for i, m := range meshes {
		want := "races"
		if i > 0 {
			want = fmt.Sprintf("roller%d", i-1)
		}
		if m.PartName != want {
			t.Errorf("mesh %d name = %q, want %q", i, m.PartName, want)
		}
	}
}

func TestTransformIsIdentity(t *testing.T) {
	if !(Transform{}).IsIdentity() {
		t.Error("zero Transform not identity")
	}
	if (Transform{TiltDeg: 45}).IsIdentity() {
		t.Error("tilted Transform reported identity")
	}
	if (Transform{Translation: r3.Vec{Y: -1}}).IsIdentity() {
		t.Error("translated Transform reported identity")
	}
	if (Transform{SpinDeg: 90}).IsIdentity() {
		t.Error("spun Transform reported identity")
	}
}
