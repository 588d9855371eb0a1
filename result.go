package minparse

import "fmt"

// Result holds the outcome of one [Parse] call. It always contains exactly
// one entry per declared positional name and optional key, with zero values
// (empty string, empty sequence, false, 0) for anything the user did not
// supply. A Result is created fresh per invocation and never shared across
// invocations.
type Result struct {
	// Usage is the rendered usage block.
	Usage string

	// Help is the full rendered help text: usage, preamble, options table,
	// postamble.
	Help string

	positionals map[string]any // string, or []string for the variadic tail
	optionals   map[string]any // bool, string, or int
}

// newResult pre-initializes every declared name so the matcher can write in
// place and the result has an entry for every declaration regardless of what
// the user supplied.
func newResult(spec *Spec) *Result {
	r := &Result{
		positionals: make(map[string]any, len(spec.Positionals)),
		optionals:   make(map[string]any, len(spec.Optionals)),
	}
	for _, p := range spec.Positionals {
		if p.Variadic {
			r.positionals[p.Name] = []string{}
		} else {
			r.positionals[p.Name] = ""
		}
	}
	for _, o := range spec.Optionals {
		switch o.Kind {
		case Boolean:
			r.optionals[o.Key] = false
		case String:
			r.optionals[o.Key] = ""
		case Integer:
			r.optionals[o.Key] = 0
		}
	}
	return r
}

// GetFlag retrieves the parsed value of an optional by key, with type
// inference. Example usage:
//
//	invert := minparse.GetFlag[bool](result, "invert")
//	limit := minparse.GetFlag[int](result, "limit")
//	color := minparse.GetFlag[string](result, "color")
//
// If the key was never declared, or T does not match the declared kind, it
// panics with a detailed message.
//
// Why panic? Because a missing key or mismatched type is a programming error
// in the host, not user input, and it's better to fail LOUD and EARLY than to
// silently return a zero value and cause unexpected behavior.
func GetFlag[T bool | string | int](r *Result, key string) T {
	v, ok := r.optionals[key]
	if !ok {
		panic(fmt.Sprintf("internal error: optional %q not declared in spec", key))
	}
	t, ok := v.(T)
	if !ok {
		panic(fmt.Sprintf("internal error: type mismatch for optional %q: stored %T, requested %T", key, v, *new(T)))
	}
	return t
}

// GetPositional retrieves the parsed value of a positional by name. Use
// string for plain slots and []string for the variadic tail:
//
//	pattern := minparse.GetPositional[string](result, "pattern")
//	files := minparse.GetPositional[[]string](result, "files")
//
// Like [GetFlag], it panics on an undeclared name or mismatched type.
func GetPositional[T string | []string](r *Result, name string) T {
	v, ok := r.positionals[name]
	if !ok {
		panic(fmt.Sprintf("internal error: positional %q not declared in spec", name))
	}
	t, ok := v.(T)
	if !ok {
		panic(fmt.Sprintf("internal error: type mismatch for positional %q: stored %T, requested %T", name, v, *new(T)))
	}
	return t
}
