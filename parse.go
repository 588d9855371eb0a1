package minparse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/somedude72/minparse/pkg/suggest"
)

// Options controls program-name and width resolution for parse and
// help-generation calls. A nil *Options means defaults everywhere.
type Options struct {
	// Program overrides both Spec.Program and the os.Args-derived default in
	// rendered text.
	Program string

	// Width is the terminal width in columns used to wrap help text. Zero or
	// negative means detect the width of stdout, falling back to 80.
	Width int
}

// Parse validates spec, renders its usage and help text, and parses args,
// typically os.Args[1:]. opts may be nil, in which case default values are
// used. See [Options] for more details.
//
// The returned error is either a *ConfigurationError (the spec itself is
// malformed) or a *UserInputError (the arguments are malformed). A
// UserInputError carries the rendered usage text so the host can print it
// along with the error message and exit non-zero.
//
// Each call operates on its own cursor and its own [Result]; concurrent
// parses against distinct specs are safe as long as no spec is mutated
// mid-call.
func Parse(spec *Spec, args []string, opts *Options) (*Result, error) {
	usage, help, err := GenerateHelp(spec, opts)
	if err != nil {
		return nil, err
	}

	p := &parser{
		spec:   spec.clone(),
		result: newResult(spec),
	}
	p.result.Usage = usage
	p.result.Help = help

	if err := p.run(args); err != nil {
		var userErr *UserInputError
		if errors.As(err, &userErr) {
			userErr.Usage = usage
		}
		return nil, err
	}
	return p.result, nil
}

// parser holds the state of one parse call: the defensive spec copy, the
// pre-initialized result, the index of the next unfilled positional slot, and
// the positional-only mode flipped by the "--" terminator.
type parser struct {
	spec    *Spec
	result  *Result
	nextPos int
	posOnly bool
}

func (p *parser) run(args []string) error {
	tokens, err := splitEquals(args)
	if err != nil {
		return err
	}
	cur := &cursor{tokens: tokens}

	// Each consume method handles exactly the head token (plus, for
	// value-taking flags, its value tokens), so the loop terminates when the
	// cursor is drained.
	for !cur.empty() {
		head := cur.peek(0)
		switch {
		case head == "--":
			p.posOnly = true
			cur.advance(1)
		case !p.posOnly && isRegularFlag(head):
			if err := p.consumeFlag(cur); err != nil {
				return err
			}
		case !p.posOnly && isStackedFlag(head):
			if err := p.consumeStacked(cur); err != nil {
				return err
			}
		default:
			if err := p.consumePositional(cur); err != nil {
				return err
			}
		}
	}
	return nil
}

// isStackedFlag reports whether the token is a cluster of short flags, e.g.
// "-iv": a single dash followed by at least two non-dash characters.
func isStackedFlag(tok string) bool {
	return len(tok) >= 3 && tok[0] == '-' && tok[1] != '-'
}

// isRegularFlag reports whether the token should be resolved as a single
// short or long flag. Checked before the stacked form, so the two never
// overlap.
func isRegularFlag(tok string) bool {
	return strings.HasPrefix(tok, "-") && !isStackedFlag(tok)
}

func (p *parser) consumeFlag(cur *cursor) error {
	arg := cur.peek(0)
	opt := p.spec.lookup(arg)
	if opt == nil {
		return p.unknownFlag(arg, "")
	}

	if opt.Kind == Boolean {
		p.result.optionals[opt.Key] = true
		cur.advance(1)
		return nil
	}

	// Value-taking kinds require exactly one following value token, with an
	// optional intervening "=" left behind by the tokenizer.
	var value string
	switch {
	case cur.remaining() >= 3 && cur.peek(1) == "=":
		value = cur.peek(2)
		cur.advance(3)
	case cur.remaining() >= 2 && cur.peek(1) != "=":
		value = cur.peek(1)
		cur.advance(2)
	default:
		return userErrorf("missing value for option %q", arg)
	}

	if opt.Kind == Integer {
		n, err := parseDecimal(value)
		if err != nil {
			return userErrorf("option %q requires an integer value, got %q", arg, value)
		}
		p.result.optionals[opt.Key] = n
		return nil
	}
	p.result.optionals[opt.Key] = value
	return nil
}

func (p *parser) consumeStacked(cur *cursor) error {
	arg := cur.peek(0)
	for _, c := range arg[1:] {
		short := "-" + string(c)
		opt := p.spec.lookup(short)
		if opt == nil {
			return p.unknownFlag(short, arg)
		}
		if opt.Kind != Boolean {
			return userErrorf("option %q (in %q) takes a value and cannot be stacked", short, arg)
		}
		p.result.optionals[opt.Key] = true
	}
	cur.advance(1)
	return nil
}

func (p *parser) consumePositional(cur *cursor) error {
	arg := cur.peek(0)
	if p.nextPos >= len(p.spec.Positionals) {
		return userErrorf("too many arguments: unexpected positional %q", arg)
	}

	pos := p.spec.Positionals[p.nextPos]
	if pos.Variadic {
		// The variadic tail keeps absorbing; the slot pointer never advances
		// past it.
		tail := p.result.positionals[pos.Name].([]string)
		p.result.positionals[pos.Name] = append(tail, arg)
	} else {
		p.result.positionals[pos.Name] = arg
		p.nextPos++
	}
	cur.advance(1)
	return nil
}

func (p *parser) unknownFlag(arg, within string) error {
	var in string
	if within != "" {
		in = fmt.Sprintf(" (in %q)", within)
	}
	suggestions := suggest.FindSimilar(arg, p.spec.flagStrings(), 3)
	if len(suggestions) > 0 {
		return userErrorf("unknown flag %q%s. Did you mean one of these?\n\t%s",
			arg, in, strings.Join(suggestions, "\n\t"))
	}
	return userErrorf("unknown flag %q%s", arg, in)
}

// parseDecimal coerces a value composed entirely of decimal digits. Signs,
// spaces, and non-ASCII digits are rejected.
func parseDecimal(s string) (int, error) {
	if s == "" {
		return 0, errors.New("empty value")
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("non-digit character %q", s[i])
		}
	}
	return strconv.Atoi(s)
}
