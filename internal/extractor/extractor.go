package extractor

import (
	"errors"
	"sort"
)

// Extract walks text once and returns every top-level function in source
// order, together with warnings for declarations that were skipped. The
// cursor strictly increases on every iteration (to the signature end on a
// skip, to the body end on success), so the loop terminates on any finite
// input.
func Extract(text string) ([]Function, []Warning) {
	offsets := buildLineOffsets(text)

	var functions []Function
	var warnings []Warning

	cursor := 0
	for cursor < len(text) {
		m, ok := locate(text, cursor)
		if !ok {
			break
		}

		if m.name == "" {
			warnings = append(warnings, Warning{Kind: WarnNoName, Name: "unknown", Offset: m.start})
			cursor = m.end
			continue
		}

		bodyEnd, err := extractBody(text, m.end)
		if err != nil {
			kind := WarnNoBrace
			if errors.Is(err, ErrUnbalanced) {
				kind = WarnUnbalanced
			}
			warnings = append(warnings, Warning{Kind: kind, Name: m.name, Offset: m.start})
			cursor = m.end
			continue
		}

		functions = append(functions, Function{
			Name:      m.name,
			Content:   text[m.start:bodyEnd],
			StartByte: m.start,
			EndByte:   bodyEnd,
			StartLine: lineForOffset(offsets, m.start),
			EndLine:   lineForOffset(offsets, bodyEnd-1),
		})
		cursor = bodyEnd
	}

	return functions, warnings
}

func buildLineOffsets(text string) []int {
	offsets := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			offsets = append(offsets, i+1)
		}
	}
	offsets = append(offsets, len(text)+1)
	return offsets
}

func lineForOffset(offsets []int, offset int) int {
	if offset < 0 {
		return 1
	}
	idx := sort.Search(len(offsets), func(i int) bool {
		return offsets[i] > offset
	})
	if idx == 0 {
		return 1
	}
	return idx
}
