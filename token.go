package minparse

import "strings"

// splitEquals normalizes the raw argument vector so "--file=x" and
// "--file x" look identical downstream: every token containing '=' is split
// into the text before the first '=', a literal "=" token, and the text
// after. A bare "=" supplied by the user is an error.
func splitEquals(args []string) ([]string, error) {
	out := make([]string, 0, len(args))
	for _, arg := range args {
		if arg == "=" {
			return nil, userErrorf("unexpected floating '=' sign")
		}
		if before, after, ok := strings.Cut(arg, "="); ok {
			out = append(out, before, "=", after)
		} else {
			out = append(out, arg)
		}
	}
	return out, nil
}

// cursor is a single-owner view over the yet-unconsumed tokens of one parse
// call. The token slice is never reassigned; consumption only moves pos
// forward, so the cursor shrinks monotonically to empty.
type cursor struct {
	tokens []string
	pos    int
}

func (c *cursor) empty() bool {
	return c.pos >= len(c.tokens)
}

func (c *cursor) remaining() int {
	return len(c.tokens) - c.pos
}

// peek returns the token at offset n from the head without consuming it. The
// caller must have checked remaining().
func (c *cursor) peek(n int) string {
	return c.tokens[c.pos+n]
}

// advance consumes n tokens from the head.
func (c *cursor) advance(n int) {
	c.pos += n
}
