package minparse

import "strings"

// validateSpec checks a spec for internal consistency and fails with a
// *ConfigurationError on the first violation found. It runs at the top of
// every parse and help-generation call so a spec error always surfaces at
// first use; it is deliberately not memoized, which also protects against
// specs mutated between calls.
func validateSpec(s *Spec) error {
	if s == nil {
		return configErrorf("spec is nil")
	}

	seenNames := make(map[string]bool, len(s.Positionals))
	for i, p := range s.Positionals {
		if p.Name == "" {
			return configErrorf("positional %d has an empty name", i)
		}
		if seenNames[p.Name] {
			return configErrorf("positional name %q is declared more than once", p.Name)
		}
		if p.Variadic && i != len(s.Positionals)-1 {
			return configErrorf("positional %q is variadic but is not the final positional", p.Name)
		}
		seenNames[p.Name] = true
	}

	seenKeys := make(map[string]bool, len(s.Optionals))
	seenFlags := make(map[string]string)
	for _, o := range s.Optionals {
		if o.Key == "" {
			return configErrorf("optional with flags %q %q has an empty key", o.Short, o.Long)
		}
		if seenKeys[o.Key] {
			return configErrorf("optional key %q is declared more than once", o.Key)
		}
		seenKeys[o.Key] = true

		switch o.Kind {
		case Boolean, String, Integer:
		default:
			return configErrorf("optional %q: kind must be Boolean, String, or Integer", o.Key)
		}

		if o.Short == "" && o.Long == "" {
			return configErrorf("optional %q: at least one of a short or long flag is required", o.Key)
		}
		if o.Short != "" && (len(o.Short) != 2 || o.Short[0] != '-' || o.Short[1] == '-') {
			return configErrorf("optional %q: short flag %q must be a dash followed by one character (e.g. -h)", o.Key, o.Short)
		}
		if o.Long != "" && (len(o.Long) < 3 || !strings.HasPrefix(o.Long, "--")) {
			return configErrorf("optional %q: long flag %q must be two dashes followed by at least one character (e.g. --help)", o.Key, o.Long)
		}

		for _, flag := range []string{o.Short, o.Long} {
			if flag == "" {
				continue
			}
			// A flag containing '=' or whitespace could never match a token
			// after tokenization.
			if strings.ContainsAny(flag, "= \t") {
				return configErrorf("optional %q: flag %q must not contain '=' or whitespace", o.Key, flag)
			}
			if prev, ok := seenFlags[flag]; ok {
				return configErrorf("optional %q: flag %q is already declared by optional %q", o.Key, flag, prev)
			}
			seenFlags[flag] = o.Key
		}
	}
	return nil
}
