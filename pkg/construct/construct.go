// Package construct executes declarative construction plans against a
// geometry kernel. It is the only component that hands plans to a
// kernel; planners never touch kernel state.
package construct

import (
	"fmt"

	"github.com/printforge/slewgen/pkg/kernel"
	"github.com/printforge/slewgen/pkg/plan"
)

// Execute runs a construction plan in order and returns the resulting
// solid. The first operation must be a revolve, which creates the body
// the remaining operations modify. Kernel failures propagate unmodified
// apart from operation context; no repair is attempted.
func Execute(k kernel.Kernel, ops []plan.Op) (kernel.Solid, error) {
	if len(ops) == 0 {
		return nil, fmt.Errorf("construct: empty plan")
	}
	if ops[0].Kind != plan.OpRevolve {
		return nil, fmt.Errorf("construct: plan must start with a revolve, got %s", ops[0].Kind)
	}

	body, err := k.Revolve(ops[0].Profile, ops[0].Axis, ops[0].AngleDeg)
	if err != nil {
		return nil, fmt.Errorf("construct: op 0 (revolve): %w", err)
	}

	for i, op := range ops[1:] {
		switch op.Kind {
		case plan.OpRevolve:
			tool, err := k.Revolve(op.Profile, op.Axis, op.AngleDeg)
			if err != nil {
				return nil, fmt.Errorf("construct: op %d (revolve): %w", i+1, err)
			}
			body = k.Union(body, tool)

		case plan.OpCut:
			tool, err := k.Revolve(op.Profile, op.Axis, op.AngleDeg)
			if err != nil {
				return nil, fmt.Errorf("construct: op %d (cut): %w", i+1, err)
			}
			body = k.Difference(body, tool)

		case plan.OpChamfer:
			body, err = k.Chamfer(body, op.Near, op.Distance)
			if err != nil {
				return nil, fmt.Errorf("construct: op %d (chamfer): %w", i+1, err)
			}

		default:
			return nil, fmt.Errorf("construct: op %d: unknown kind %d", i+1, int(op.Kind))
		}
	}

	return body, nil
}
