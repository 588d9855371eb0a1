// Package minparse is a minimal declarative argument parsing system. A [Spec]
// describes a CLI's positional and optional arguments; [Parse] consumes an
// argument vector against it, and [GenerateHelp] renders usage and help text
// wrapped to terminal width.
//
// Before minparse can read arguments from the command line, you must tell it
// which arguments to expect:
//
//   - Positional arguments: values identified by their position (e.g. a file
//     path). The final positional may be variadic, absorbing all remaining
//     plain values.
//   - Optional arguments: values introduced by a short (-h) or long (--help)
//     flag. Boolean flags take no value; string and integer flags consume one
//     following token, given either separately (--file x) or joined
//     (--file=x). Single-character boolean flags may be stacked (-iv).
//
// A simplified grep surface looks like this:
//
//	spec := &minparse.Spec{
//		Program: "grep",
//		Positionals: []minparse.Positional{
//			{Name: "pattern"},
//			{Name: "files", Variadic: true},
//		},
//		Optionals: []minparse.Optional{
//			{Key: "help", Kind: minparse.Boolean, Short: "-h", Long: "--help", Help: "Print the help message and quit"},
//			{Key: "case", Kind: minparse.Boolean, Short: "-i", Long: "--ignore-case", Help: "Ignore case distinctions"},
//			{Key: "file", Kind: minparse.String, Long: "--file", Help: "Obtain patterns from FILE, one per line"},
//		},
//	}
//	result, err := minparse.Parse(spec, os.Args[1:], nil)
//
// Parsing surfaces two disjoint error kinds: [ConfigurationError] when the
// Spec itself is malformed (a bug in the embedding application) and
// [UserInputError] when the supplied arguments are invalid. The host program
// is expected to catch the latter, print the usage text it carries along with
// the error message, and exit non-zero. See examples/cmd/grep for a complete
// host program.
package minparse
