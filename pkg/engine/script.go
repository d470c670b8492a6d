package engine

import (
	"github.com/printforge/slewgen/pkg/bearing"
	"github.com/printforge/slewgen/pkg/generate"
)

// RequestKind discriminates the generation requests a script can make.
type RequestKind int

const (
	// RequestBearing generates a single bearing from a complete spec.
	RequestBearing RequestKind = iota
	// RequestSweep runs a roller-count sweep over an envelope.
	RequestSweep
)

// Request is one generation request produced by evaluating a script.
// Spec is set for RequestBearing; Envelope, Start and Step for
// RequestSweep.
type Request struct {
	Kind     RequestKind
	Spec     bearing.Spec
	Envelope generate.Envelope
	Start    int
	Step     int
}

// Script is the ordered list of generation requests a source program
// evaluated to. Evaluation performs no I/O; executing the requests is
// the caller's job.
type Script struct {
	Requests []Request
}
