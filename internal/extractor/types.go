package extractor

// Function is a single top-level function lifted out of a source file.
type Function struct {
	Name      string // Declared identifier
	Content   string // Full source text, declaration start through closing brace
	StartByte int    // Byte offset of the declaration start
	EndByte   int    // Byte offset just past the closing brace
	StartLine int    // Starting line number (1-indexed)
	EndLine   int    // Ending line number (1-indexed)
}

// WarningKind classifies declarations that matched a signature but had to be
// skipped without stopping the run.
type WarningKind string

const (
	WarnNoName     WarningKind = "name_extraction_failed"
	WarnNoBrace    WarningKind = "no_opening_brace"
	WarnUnbalanced WarningKind = "unbalanced_braces"
)

// Warning records one skipped declaration.
type Warning struct {
	Kind   WarningKind
	Name   string // "unknown" when the name could not be extracted
	Offset int    // byte offset of the match start
}
