package minparse

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateUsage(t *testing.T) {
	t.Parallel()

	t.Run("usage line layout", func(t *testing.T) {
		t.Parallel()
		spec := &Spec{
			Program: "grep",
			Positionals: []Positional{
				{Name: "pattern"},
				{Name: "files", Variadic: true},
			},
			Optionals: []Optional{
				{Key: "help", Kind: Boolean, Short: "-h", Long: "--help", Help: "Print the help message and quit"},
				{Key: "quiet", Kind: Boolean, Short: "-q"},
				{Key: "include", Kind: String, Long: "--include"},
			},
		}
		usage, _, err := GenerateHelp(spec, testOpts)
		require.NoError(t, err)

		// -q has no help text, so it joins the short cluster; --include has
		// neither help nor a short form, so it is rendered long with a type
		// hint; -h has help text and appears only in the options table.
		assert.Equal(t, "Usage: grep [options ...] [-q] [--include <str>] [pattern] [files ...]", usage)
	})
	t.Run("program name resolution", func(t *testing.T) {
		t.Parallel()
		spec := &Spec{Program: "fromspec"}

		usage, _, err := GenerateHelp(spec, testOpts)
		require.NoError(t, err)
		assert.Equal(t, "Usage: fromspec", usage)

		usage, _, err = GenerateHelp(spec, &Options{Program: "override", Width: 80})
		require.NoError(t, err)
		assert.Equal(t, "Usage: override", usage)

		// empty program falls back to the invocation name
		usage, _, err = GenerateHelp(&Spec{}, testOpts)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(usage, "Usage: "))
		assert.Greater(t, len(usage), len("Usage: "))
	})
	t.Run("boolean long form has no type hint", func(t *testing.T) {
		t.Parallel()
		spec := &Spec{
			Program:   "tool",
			Optionals: []Optional{{Key: "zebra", Kind: Boolean, Long: "--zebra"}},
		}
		usage, _, err := GenerateHelp(spec, testOpts)
		require.NoError(t, err)
		assert.Equal(t, "Usage: tool [options ...] [--zebra]", usage)
	})
	t.Run("soft wrap against the 80 column budget", func(t *testing.T) {
		t.Parallel()
		spec := &Spec{Program: "tool"}
		for i := 0; i < 8; i++ {
			spec.Optionals = append(spec.Optionals, Optional{
				Key:  fmt.Sprintf("opt%d", i),
				Kind: String,
				Long: fmt.Sprintf("--long-option-%d", i),
			})
		}
		spec.Positionals = []Positional{{Name: "input"}, {Name: "outputs", Variadic: true}}

		usage, _, err := GenerateHelp(spec, testOpts)
		require.NoError(t, err)

		lines := strings.Split(usage, "\n")
		require.Greater(t, len(lines), 1)
		indent := strings.Repeat(" ", len("Usage: "))
		for i, line := range lines {
			assert.Less(t, len(line), 80, "line %d overflows the budget", i)
			if i > 0 {
				assert.True(t, strings.HasPrefix(line, indent+"["), "continuation line %d not indented", i)
			}
		}
		assert.Contains(t, usage, "[outputs ...]")
	})
}

func TestGenerateHelp(t *testing.T) {
	t.Parallel()

	t.Run("option table columns", func(t *testing.T) {
		t.Parallel()
		spec := &Spec{
			Program: "grep",
			Optionals: []Optional{
				{Key: "help", Kind: Boolean, Short: "-h", Long: "--help", Help: "Print the help message and quit"},
				{Key: "quiet", Kind: Boolean, Short: "-q"},
				{Key: "include", Kind: String, Long: "--include", Help: "Search only files matching GLOB"},
			},
		}
		_, help, err := GenerateHelp(spec, testOpts)
		require.NoError(t, err)

		// the help column starts after the widest long rendering,
		// "--include <str>" (15), plus the short column (5) and padding (3)
		lines := strings.Split(help, "\n")
		var helpLine, includeLine string
		for _, line := range lines {
			if strings.Contains(line, "--help") {
				helpLine = line
			}
			if strings.Contains(line, "--include") {
				includeLine = line
			}
		}
		require.NotEmpty(t, helpLine)
		require.NotEmpty(t, includeLine)

		assert.True(t, strings.HasPrefix(helpLine, "  -h --help"))
		assert.Equal(t, 23, strings.Index(helpLine, "Print"))
		assert.True(t, strings.HasPrefix(includeLine, "     --include <str>"))
		assert.Equal(t, 23, strings.Index(includeLine, "Search"))

		// -q has no help text and gets no table line
		assert.NotContains(t, help, "\n  -q ")
	})
	t.Run("help text wraps and re-indents to the column", func(t *testing.T) {
		t.Parallel()
		spec := &Spec{
			Program: "tool",
			Optionals: []Optional{
				{Key: "mode", Kind: String, Short: "-o", Long: "--mode",
					Help: "one two three four five six seven eight nine ten eleven twelve"},
			},
		}
		_, help, err := GenerateHelp(spec, &Options{Width: 42})
		require.NoError(t, err)

		lines := strings.Split(help, "\n")
		var tableLines []string
		for _, line := range lines {
			if strings.HasPrefix(line, "  -o ") || strings.HasPrefix(line, strings.Repeat(" ", 20)) {
				tableLines = append(tableLines, line)
			}
		}
		require.Greater(t, len(tableLines), 1)
		// continuation lines re-indent to the same help column
		helpCol := strings.Index(tableLines[0], "one")
		require.Greater(t, helpCol, 0)
		for _, line := range tableLines[1:] {
			assert.Equal(t, strings.Repeat(" ", helpCol), line[:helpCol])
			assert.NotEqual(t, byte(' '), line[helpCol])
		}
	})
	t.Run("preamble paragraphs", func(t *testing.T) {
		t.Parallel()
		spec := &Spec{
			Program:  "tool",
			Preamble: "first paragraph\nstill the first\n\n \nsecond paragraph",
		}
		_, help, err := GenerateHelp(spec, testOpts)
		require.NoError(t, err)

		// single breaks are rewrapped away; the double break survives as
		// exactly one blank line
		assert.Contains(t, help, "first paragraph still the first\n\nsecond paragraph")
	})
	t.Run("assembly order", func(t *testing.T) {
		t.Parallel()
		spec := &Spec{
			Program:   "tool",
			Preamble:  "the preamble",
			Postamble: "the postamble",
			Optionals: []Optional{
				{Key: "verbose", Kind: Boolean, Short: "-V", Long: "--verbose", Help: "Enable verbose output"},
			},
		}
		_, help, err := GenerateHelp(spec, testOpts)
		require.NoError(t, err)

		usageAt := strings.Index(help, "Usage: tool")
		preambleAt := strings.Index(help, "the preamble")
		optionsAt := strings.Index(help, "Options:\n")
		postambleAt := strings.Index(help, "the postamble")
		require.NotEqual(t, -1, usageAt)
		require.NotEqual(t, -1, preambleAt)
		require.NotEqual(t, -1, optionsAt)
		require.NotEqual(t, -1, postambleAt)
		assert.Less(t, usageAt, preambleAt)
		assert.Less(t, preambleAt, optionsAt)
		assert.Less(t, optionsAt, postambleAt)
	})
	t.Run("no options table without help text", func(t *testing.T) {
		t.Parallel()
		spec := &Spec{
			Program:   "tool",
			Optionals: []Optional{{Key: "quiet", Kind: Boolean, Short: "-q"}},
		}
		_, help, err := GenerateHelp(spec, testOpts)
		require.NoError(t, err)
		assert.NotContains(t, help, "Options:")
	})
	t.Run("configuration error propagates", func(t *testing.T) {
		t.Parallel()
		spec := &Spec{Optionals: []Optional{{Key: "a"}}}
		_, _, err := GenerateHelp(spec, testOpts)
		require.Error(t, err)
		var configErr *ConfigurationError
		require.ErrorAs(t, err, &configErr)
	})
}
