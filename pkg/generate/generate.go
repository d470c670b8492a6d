// Package generate is the programmatic entry point of slewgen: it
// drives one full design attempt (resolve, construct, place, export)
// and the roller-count sweep over an envelope.
package generate

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/printforge/slewgen/pkg/assembly"
	"github.com/printforge/slewgen/pkg/bearing"
	"github.com/printforge/slewgen/pkg/construct"
	"github.com/printforge/slewgen/pkg/kernel"
	"github.com/printforge/slewgen/pkg/plan"
	"github.com/printforge/slewgen/pkg/stl"
)

// Filename returns the deterministic export name for a spec:
// b<OD>x<ID>x<W>_<fit>x<slide>_<N>.stl. Floats use the shortest exact
// decimal form, so equal specs always map to equal names and parallel
// sweeps over distinct counts never collide.
func Filename(spec bearing.Spec) string {
	f := func(v float64) string {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return fmt.Sprintf("b%sx%sx%s_%sx%s_%d.stl",
		f(spec.OuterDiameter), f(spec.InnerDiameter), f(spec.Width),
		f(spec.RollerFit), f(spec.RollerSlide), spec.NumRollers)
}

// Generate runs one design attempt end to end and returns the written
// file path. Validation errors surface before any geometry is built;
// kernel and export failures are fatal for the attempt and propagate
// with context.
func Generate(spec bearing.Spec, outDir string, k kernel.Kernel) (string, error) {
	params, err := bearing.Resolve(spec)
	if err != nil {
		return "", err
	}

	race, err := construct.Execute(k, plan.Races(params))
	if err != nil {
		return "", fmt.Errorf("generate: races: %w", err)
	}
	roller, err := construct.Execute(k, plan.Roller(params))
	if err != nil {
		return "", fmt.Errorf("generate: roller: %w", err)
	}

	asm := assembly.Place(race, roller, params)
	meshes, err := asm.Meshes(k)
	if err != nil {
		return "", fmt.Errorf("generate: %w", err)
	}

	path := filepath.Join(outDir, Filename(spec))
	if err := stl.Save(path, meshes); err != nil {
		return "", fmt.Errorf("generate: export %s: %w", path, err)
	}
	return path, nil
}
