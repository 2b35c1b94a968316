package extractor

import (
	"errors"
	"strings"
)

// Body scan failures, kept distinct so the caller can report them apart.
var (
	ErrNoBrace    = errors.New("no opening brace after signature")
	ErrUnbalanced = errors.New("unbalanced braces before end of input")
)

// extractBody finds the first '{' at or after from, then scans forward with a
// plain depth counter until the matching '}'. Returns the offset just past
// that closing brace. Braces inside strings, template literals, regex
// literals and comments are counted as structural. That is a deliberate
// limit of this extraction model, not something to detect.
func extractBody(text string, from int) (int, error) {
	open := strings.Index(text[from:], "{")
	if open < 0 {
		return 0, ErrNoBrace
	}

	depth := 1
	pos := from + open + 1
	for pos < len(text) && depth > 0 {
		switch text[pos] {
		case '{':
			depth++
		case '}':
			depth--
		}
		pos++
	}
	if depth != 0 {
		return 0, ErrUnbalanced
	}
	return pos, nil
}
