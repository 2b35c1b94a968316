package extractor

import "regexp"

// declarationPattern matches the two top-level declaration shapes, anchored at
// the start of a line:
//
//  1. `export? async? function name(...)`, groups 1 (keyword) and 2 (name)
//  2. `export? const|let|var name = function?(...) =>`, groups 3 and 4
//
// The parameter list is matched non-greedily up to the first ')', so lists
// containing nested parentheses or ')' inside string literals can end the
// signature match early. Accepted simplification, same class of limitation as
// the brace counter in body.go.
var declarationPattern = regexp.MustCompile(
	`(?m)` +
		`^(?:export\s+)?(?:async\s+)?(function)\s+([a-zA-Z_$][\w$]*)\s*\(.*?\)\s*` +
		`|^(?:export\s+)?(const|let|var)\s+([a-zA-Z_$][\w$]*)\s*=\s*(?:function)?\s*\(.*?\)\s*=>\s*`,
)

// match is one located declaration signature.
type match struct {
	start int
	end   int
	name  string // empty when neither name group captured
}

// locate finds the earliest declaration signature at or after from. Line
// anchoring is kept relative to the full text: a hit at the search offset
// itself only counts when that offset is 0 or follows a newline, so resuming
// mid-line (as the driving loop does after every extraction) cannot produce
// spurious matches.
func locate(text string, from int) (match, bool) {
	for from <= len(text) {
		loc := declarationPattern.FindStringSubmatchIndex(text[from:])
		if loc == nil {
			return match{}, false
		}
		if loc[0] == 0 && from > 0 && text[from-1] != '\n' {
			// The slice boundary let `^` match mid-line. Step past it and
			// search again; later candidates are anchored by real newlines.
			from++
			continue
		}
		m := match{start: from + loc[0], end: from + loc[1]}
		switch {
		case loc[2] >= 0 && loc[4] >= 0:
			m.name = text[from+loc[4] : from+loc[5]]
		case loc[6] >= 0 && loc[8] >= 0:
			m.name = text[from+loc[8] : from+loc[9]]
		}
		return m, true
	}
	return match{}, false
}
