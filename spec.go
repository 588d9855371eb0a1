package minparse

import "slices"

// Kind determines how an optional argument's value is coerced and whether the
// flag consumes a following token.
type Kind int

const (
	// Boolean flags take no value; their presence sets the result to true.
	Boolean Kind = iota
	// String flags consume exactly one following token, stored verbatim.
	String
	// Integer flags consume exactly one following token, which must be
	// composed entirely of decimal digits.
	Integer
)

func (k Kind) String() string {
	switch k {
	case Boolean:
		return "boolean"
	case String:
		return "string"
	case Integer:
		return "integer"
	default:
		return "unknown"
	}
}

// Positional declares one positional argument slot.
type Positional struct {
	// Name is the unique programmatic name of the slot. It is also the name
	// rendered in the usage line.
	Name string

	// Variadic marks the slot as absorbing an arbitrary number of trailing
	// plain values into an ordered sequence. Only the final positional may be
	// variadic.
	Variadic bool
}

// Optional declares one optional argument (flag). At least one of Short or
// Long must be set.
type Optional struct {
	// Key is the unique programmatic name used to retrieve the parsed value
	// with [GetFlag]. It never appears in rendered text.
	Key string

	// Kind selects the value type. The zero value is Boolean.
	Kind Kind

	// Short is the short flag form, a dash followed by a single character
	// (e.g. "-h"). Empty means no short form.
	Short string

	// Long is the long flag form, two dashes followed by at least one
	// character (e.g. "--help"). Empty means no long form.
	Long string

	// Help is the description shown in the options table. Flags with empty
	// help text get no table line and are summarized in the usage line
	// instead.
	Help string
}

// Spec is the declarative description of a command-line interface. It is
// constructed once by the calling application and treated as read-only during
// a parse or help-generation call; both take defensive copies internally, but
// the caller must not mutate a Spec from another goroutine mid-call.
type Spec struct {
	// Program is the name shown in the generated usage text. Empty means the
	// invocation name (the base of os.Args[0]) is used.
	Program string

	// Positionals declares the positional arguments in order.
	Positionals []Positional

	// Optionals declares the flags. Declaration order is preserved in
	// rendered text.
	Optionals []Optional

	// Preamble is free text printed between the usage line and the options
	// table. It is rewrapped to terminal width; see [GenerateHelp].
	Preamble string

	// Postamble is free text printed after the options table, rewrapped the
	// same way.
	Postamble string
}

// clone returns a defensive copy so in-progress consumption never mutates the
// caller's spec.
func (s *Spec) clone() *Spec {
	c := *s
	c.Positionals = slices.Clone(s.Positionals)
	c.Optionals = slices.Clone(s.Optionals)
	return &c
}

// lookup resolves a flag token against the declared optionals by exact string
// match on either form. Returns nil if no optional matches.
func (s *Spec) lookup(arg string) *Optional {
	for i := range s.Optionals {
		o := &s.Optionals[i]
		if (o.Short != "" && o.Short == arg) || (o.Long != "" && o.Long == arg) {
			return o
		}
	}
	return nil
}

// flagStrings returns every declared flag form in declaration order.
func (s *Spec) flagStrings() []string {
	var flags []string
	for _, o := range s.Optionals {
		if o.Short != "" {
			flags = append(flags, o.Short)
		}
		if o.Long != "" {
			flags = append(flags, o.Long)
		}
	}
	return flags
}
