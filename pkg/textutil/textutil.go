// Package textutil provides the word-wrapping helpers used by the help
// formatter.
package textutil

import (
	"regexp"
	"strings"
)

// Wrap greedily wraps text into lines of at most width columns, breaking on
// whitespace. Words longer than width occupy a line of their own. Embedded
// line breaks count as plain word separators and never survive wrapping.
func Wrap(text string, width int) []string {
	words := strings.Fields(text)
	var (
		lines         []string
		currentLine   []string
		currentLength int
	)
	for _, word := range words {
		if currentLength+len(word)+1 > width {
			if len(currentLine) > 0 {
				lines = append(lines, strings.Join(currentLine, " "))
				currentLine = []string{word}
				currentLength = len(word)
			} else {
				lines = append(lines, word)
			}
		} else {
			currentLine = append(currentLine, word)
			if currentLength == 0 {
				currentLength = len(word)
			} else {
				currentLength += len(word) + 1
			}
		}
	}
	if len(currentLine) > 0 {
		lines = append(lines, strings.Join(currentLine, " "))
	}
	return lines
}

// paragraphBreak matches one line break followed by one or more additional
// line breaks (CR, LF, or CRLF), possibly separated by intermediate
// whitespace.
var paragraphBreak = regexp.MustCompile(`(?:\r\n?|\n)(?:[ \t\f\v]*(?:\r\n?|\n))+`)

// WrapParagraphs rewraps free text to width while preserving paragraph
// structure: any run of two or more line breaks collapses into exactly one
// paragraph break, each paragraph is wrapped independently, and the
// paragraphs are rejoined with a blank line between them. Single line breaks
// inside a paragraph are removed by the rewrap, so manual mid-sentence breaks
// never leak into the output.
func WrapParagraphs(text string, width int) string {
	text = paragraphBreak.ReplaceAllString(text, "\n\n")
	paragraphs := strings.Split(text, "\n\n")
	wrapped := make([]string, 0, len(paragraphs))
	for _, p := range paragraphs {
		wrapped = append(wrapped, strings.Join(Wrap(p, width), "\n"))
	}
	return strings.Join(wrapped, "\n\n")
}
