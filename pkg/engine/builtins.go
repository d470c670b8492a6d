package engine

import (
	"fmt"
	"strings"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/printforge/slewgen/pkg/generate"
)

// kwPrefix marks keyword arguments after preprocessing.
const kwPrefix = "__kw_"

// preprocessSource rewrites slewgen Lisp source before zygomys sees it:
//
//  1. Keyword conversion: :outer-diameter -> "__kw_outer-diameter",
//     a plain string literal, so keywords need no global symbols and
//     hyphens inside them never parse as subtraction.
//  2. Comment conversion: ; line comments become //, which is what
//     zygomys accepts.
//
// Both transformations respect string literal boundaries.
func preprocessSource(source string) string {
	var out strings.Builder
	out.Grow(len(source) + len(source)/4)
	b := []byte(source)
	i := 0
	for i < len(b) {
		switch {
		case b[i] == '"':
			// Copy the string literal verbatim.
			out.WriteByte(b[i])
			i++
			for i < len(b) && b[i] != '"' {
				if b[i] == '\\' && i+1 < len(b) {
					out.WriteByte(b[i])
					i++
				}
				out.WriteByte(b[i])
				i++
			}
			if i < len(b) {
				out.WriteByte(b[i])
				i++
			}

		case b[i] == ';':
			out.WriteString("//")
			for i < len(b) && b[i] == ';' {
				i++
			}
			for i < len(b) && b[i] != '\n' {
				out.WriteByte(b[i])
				i++
			}

		case b[i] == ':' && i+1 < len(b) && isLetter(b[i+1]):
			j := i + 1
			for j < len(b) && isKWChar(b[j]) {
				j++
			}
			out.WriteByte('"')
			out.WriteString(kwPrefix)
			out.Write(b[i+1 : j])
			out.WriteByte('"')
			i = j

		default:
			out.WriteByte(b[i])
			i++
		}
	}
	return out.String()
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isKWChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '-' || c == '_'
}

// parseKwArgs collects a keyword argument list into a map.
func parseKwArgs(args []zygo.Sexp) (map[string]zygo.Sexp, error) {
	kw := make(map[string]zygo.Sexp)
	i := 0
	for i < len(args) {
		str, ok := args[i].(*zygo.SexpStr)
		if !ok || !strings.HasPrefix(str.S, kwPrefix) {
			return nil, fmt.Errorf("expected keyword, got %s", args[i].SexpString(nil))
		}
		if i+1 >= len(args) {
			return nil, fmt.Errorf("keyword :%s has no value", str.S[len(kwPrefix):])
		}
		kw[str.S[len(kwPrefix):]] = args[i+1]
		i += 2
	}
	return kw, nil
}

// toFloat64 extracts a float64 from a Sexp (SexpInt or SexpFloat).
func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %s", s.SexpString(nil))
}

// toInt extracts an int from a SexpInt.
func toInt(s zygo.Sexp) (int, error) {
	if v, ok := s.(*zygo.SexpInt); ok {
		return int(v.Val), nil
	}
	return 0, fmt.Errorf("expected integer, got %s", s.SexpString(nil))
}

// floatArg reads an optional float keyword argument into dst.
func floatArg(kw map[string]zygo.Sexp, name string, dst *float64) error {
	v, ok := kw[name]
	if !ok {
		return nil
	}
	f, err := toFloat64(v)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	*dst = f
	return nil
}

// envelopeArgs reads the five shared envelope keywords.
func envelopeArgs(kw map[string]zygo.Sexp, env *generate.Envelope) error {
	for _, f := range []struct {
		name string
		dst  *float64
	}{
		{"outer-diameter", &env.OuterDiameter},
		{"inner-diameter", &env.InnerDiameter},
		{"width", &env.Width},
		{"roller-fit", &env.RollerFit},
		{"roller-slide", &env.RollerSlide},
	} {
		if err := floatArg(kw, f.name, f.dst); err != nil {
			return err
		}
	}
	return nil
}

// registerBuiltins installs the slewgen DSL builtins into a zygomys
// environment. The builtins append requests to the provided script;
// feasibility is checked later by the resolver, not at parse time.
func registerBuiltins(env *zygo.Zlisp, script *Script) {

	// (bearing :outer-diameter 403.5 :inner-diameter 234 :width 45
	//          :roller-fit 1.1 :roller-slide 1.5 :num-rollers 24)
	env.AddFunction("bearing", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		kw, err := parseKwArgs(args)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("bearing: %w", err)
		}

		var e generate.Envelope
		if err := envelopeArgs(kw, &e); err != nil {
			return zygo.SexpNull, fmt.Errorf("bearing: %w", err)
		}

		n := 0
		if v, ok := kw["num-rollers"]; ok {
			if n, err = toInt(v); err != nil {
				return zygo.SexpNull, fmt.Errorf("bearing: num-rollers: %w", err)
			}
		}

		script.Requests = append(script.Requests, Request{
			Kind: RequestBearing,
			Spec: e.Spec(n),
		})
		return zygo.SexpNull, nil
	})

	// (sweep :outer-diameter 200 :inner-diameter 150 :width 20
	//        :roller-fit 0.3 :roller-slide 0.9 :start 2 :step 2)
	env.AddFunction("sweep", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		kw, err := parseKwArgs(args)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("sweep: %w", err)
		}

		req := Request{Kind: RequestSweep, Start: 2, Step: 2}
		if err := envelopeArgs(kw, &req.Envelope); err != nil {
			return zygo.SexpNull, fmt.Errorf("sweep: %w", err)
		}
		if v, ok := kw["start"]; ok {
			if req.Start, err = toInt(v); err != nil {
				return zygo.SexpNull, fmt.Errorf("sweep: start: %w", err)
			}
		}
		if v, ok := kw["step"]; ok {
			if req.Step, err = toInt(v); err != nil {
				return zygo.SexpNull, fmt.Errorf("sweep: step: %w", err)
			}
		}

		script.Requests = append(script.Requests, req)
		return zygo.SexpNull, nil
	})
}
