package minparse

import "fmt"

// ConfigurationError reports a malformed [Spec]: duplicate flags, malformed
// flag syntax, a misplaced variadic marker, and so on. It indicates a bug in
// the embedding application and is always fatal to configuration; the only
// recovery is fixing the declaration.
type ConfigurationError struct {
	msg string
}

func (e *ConfigurationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.msg
}

func configErrorf(format string, args ...any) *ConfigurationError {
	return &ConfigurationError{msg: fmt.Sprintf(format, args...)}
}

// UserInputError reports malformed command-line arguments supplied by the end
// user: an unknown flag, a missing or non-numeric value, illegal stacking,
// too many positionals, a stray "=". The host program is expected to catch
// it, print [UserInputError.Usage] followed by the error message, and exit
// with a non-zero status.
type UserInputError struct {
	msg string

	// Usage is the rendered usage block for the spec the arguments were
	// parsed against. It is populated by [Parse]; errors surfaced before
	// rendering leave it empty.
	Usage string
}

func (e *UserInputError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.msg
}

func userErrorf(format string, args ...any) *UserInputError {
	return &UserInputError{msg: fmt.Sprintf(format, args...)}
}
