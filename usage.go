package minparse

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/somedude72/minparse/pkg/textutil"
)

const (
	// usageBudget is the fixed column budget for the usage line. The usage
	// line is deliberately not wrapped to the live terminal width so that it
	// stays stable in pipes and logs.
	usageBudget = 80

	// shortColWidth is the width of the short-flag column in the options
	// table: two spaces, the two-character flag, one space.
	shortColWidth = 5

	// helpColPad is the gap between the widest long-flag rendering and the
	// help-text column.
	helpColPad = 3
)

// GenerateHelp validates spec and renders its usage block and full help text.
// opts may be nil, in which case the program name comes from the spec (or the
// invocation name) and the width from the terminal.
//
// The usage block is soft-wrapped against a fixed 80-column budget with
// continuation lines indented to the end of the "Usage: " prefix. The options
// table and the preamble/postamble are wrapped to the terminal width.
func GenerateHelp(spec *Spec, opts *Options) (usage, help string, err error) {
	if err := validateSpec(spec); err != nil {
		return "", "", err
	}
	spec = spec.clone()
	program := resolveProgram(spec, opts)
	width := resolveWidth(opts)

	usage = generateUsage(spec, program)

	var b strings.Builder
	b.WriteString(usage)
	if spec.Preamble != "" {
		b.WriteString("\n\n")
		b.WriteString(textutil.WrapParagraphs(spec.Preamble, width))
	}
	if lines := optionLines(spec, width); len(lines) > 0 {
		b.WriteString("\n\nOptions:\n")
		b.WriteString(strings.Join(lines, "\n"))
	}
	if spec.Postamble != "" {
		b.WriteString("\n\n")
		b.WriteString(textutil.WrapParagraphs(spec.Postamble, width))
	}
	return usage, b.String(), nil
}

func resolveProgram(spec *Spec, opts *Options) string {
	if opts != nil && opts.Program != "" {
		return opts.Program
	}
	if spec.Program != "" {
		return spec.Program
	}
	return filepath.Base(os.Args[0])
}

func resolveWidth(opts *Options) int {
	width := 0
	if opts != nil {
		width = opts.Width
	}
	if width <= 0 {
		width = detectWidth()
	}
	return width - safeArea
}

// generateUsage renders the usage block: program name, an [options ...]
// marker, the combined short-flag cluster for boolean flags without help
// text, long-form renderings for flags with neither help text nor a short
// form, and the bracketed positionals with the variadic slot rendered as
// "name ...".
func generateUsage(spec *Spec, program string) string {
	lines := []string{"Usage: " + program}
	if len(spec.Optionals) > 0 {
		lines[0] += " [options ...] "
	}

	var cluster strings.Builder
	for _, o := range spec.Optionals {
		if o.Help == "" && o.Short != "" && o.Kind == Boolean {
			cluster.WriteByte(o.Short[1])
		}
	}
	if cluster.Len() > 0 {
		lines[0] += "[-" + cluster.String() + "] "
	}

	indent := strings.Repeat(" ", len("Usage: "))
	appendUnit := func(unit string) {
		if len(lines[len(lines)-1])+len(unit) >= usageBudget {
			lines = append(lines, indent)
		}
		lines[len(lines)-1] += unit
	}

	for _, o := range spec.Optionals {
		if o.Help == "" && o.Short == "" && o.Long != "" {
			appendUnit("[" + longWithTail(o) + "] ")
		}
	}
	for _, p := range spec.Positionals {
		name := p.Name
		if p.Variadic {
			name += " ..."
		}
		appendUnit("[" + name + "] ")
	}

	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	return strings.Join(lines, "\n")
}

// longWithTail renders a long flag with the type-hint suffix for value-taking
// kinds.
func longWithTail(o Optional) string {
	if o.Long == "" {
		return ""
	}
	switch o.Kind {
	case String:
		return o.Long + " <str>"
	case Integer:
		return o.Long + " <int>"
	default:
		return o.Long
	}
}

// optionLines renders one table line per optional with non-empty help text,
// in three columns: short flag (or blank padding), long flag with type-hint
// tail (or blank padding), and the help text wrapped to the remaining width
// with continuation lines re-indented to the help column.
func optionLines(spec *Spec, width int) []string {
	maxLong := 0
	for _, o := range spec.Optionals {
		if l := len(longWithTail(o)); l > maxLong {
			maxLong = l
		}
	}
	helpCol := shortColWidth + maxLong + helpColPad

	var lines []string
	for _, o := range spec.Optionals {
		if o.Help == "" {
			continue
		}

		var b strings.Builder
		if o.Short != "" {
			b.WriteString("  " + o.Short + " ")
		} else {
			b.WriteString(strings.Repeat(" ", shortColWidth))
		}
		long := longWithTail(o)
		b.WriteString(long)
		b.WriteString(strings.Repeat(" ", helpCol-shortColWidth-len(long)))

		wrapped := textutil.Wrap(o.Help, width-helpCol)
		if len(wrapped) == 0 {
			wrapped = []string{""}
		}
		indent := strings.Repeat(" ", helpCol)
		b.WriteString(wrapped[0])
		for _, line := range wrapped[1:] {
			b.WriteString("\n" + indent + line)
		}
		lines = append(lines, b.String())
	}
	return lines
}
