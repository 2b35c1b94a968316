package splitter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"funcsplit/internal/extractor"
	"funcsplit/internal/utils"
)

// Splitter writes one output file per extracted top-level function.
type Splitter struct {
	outDir string // empty means "alongside the input"
	ext    string // output extension override; empty means the input's own
}

func New(outDir, ext string) *Splitter {
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return &Splitter{outDir: outDir, ext: ext}
}

// SplitFile reads one source file and writes each top-level function to its
// own file in the output directory. Only a failure to read the input aborts
// the run; every later problem is reported per function and skipped.
func (s *Splitter) SplitFile(path string) error {
	outDir := s.outDir
	if outDir == "" {
		outDir = filepath.Dir(path)
	}
	_, err := s.splitOne(path, outDir)
	return err
}

// SplitDir discovers every supported source file under root and splits each
// into its own subdirectory of the output directory, keyed by the source
// file's base name so same-named functions from different files cannot
// collide.
func (s *Splitter) SplitDir(root string) error {
	files, err := utils.GetAllSourceFiles(root)
	if err != nil {
		return fmt.Errorf("failed to scan %s: %w", root, err)
	}
	fmt.Printf("✓ Found %d source files\n", len(files))

	if len(files) == 0 {
		fmt.Println("⚠ No source files found to split")
		return nil
	}

	outRoot := s.outDir
	if outRoot == "" {
		outRoot = filepath.Join(root, "split")
	}

	processed := 0
	written := 0
	for _, f := range files {
		base := strings.TrimSuffix(filepath.Base(f), filepath.Ext(f))
		n, serr := s.splitOne(f, filepath.Join(outRoot, base))
		if serr != nil {
			fmt.Fprintf(os.Stderr, "✗ %v\n", serr)
			continue
		}
		processed++
		written += n
	}
	fmt.Printf("→ Processed %d files, wrote %d functions\n", processed, written)
	return nil
}

func (s *Splitter) splitOne(path, outDir string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, fmt.Errorf("input file not found at %q", path)
		}
		return 0, fmt.Errorf("failed to read input file %q: %w", path, err)
	}

	functions, warnings := extractor.Extract(string(data))
	ReportWarnings(warnings)

	if len(functions) == 0 {
		fmt.Printf("⚠ No top-level functions found in %s\n", path)
		return 0, nil
	}

	ext := s.ext
	if ext == "" {
		ext = filepath.Ext(path)
	}

	if err := ensureDir(outDir); err != nil {
		return 0, err
	}

	written := 0
	for _, fn := range functions {
		outPath := filepath.Join(outDir, fn.Name+ext)
		// Duplicate names overwrite earlier output on purpose: last one wins.
		if werr := os.WriteFile(outPath, []byte(fn.Content), 0o644); werr != nil {
			fmt.Fprintf(os.Stderr, "✗ Failed to write %s: %v\n", outPath, werr)
			continue
		}
		fmt.Printf("✓ Created %s\n", outPath)
		written++
	}
	return written, nil
}

func ensureDir(dir string) error {
	if info, err := os.Stat(dir); err == nil && info.IsDir() {
		return nil
	}
	fmt.Printf("→ Creating output directory: %s\n", dir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %q: %w", dir, err)
	}
	return nil
}

// ReportWarnings renders extraction warnings to stderr in the same per-item
// style the writer uses for file failures.
func ReportWarnings(warnings []extractor.Warning) {
	for _, w := range warnings {
		switch w.Kind {
		case extractor.WarnNoName:
			fmt.Fprintf(os.Stderr, "⚠ Could not extract function name from match at offset %d, skipping\n", w.Offset)
		case extractor.WarnNoBrace:
			fmt.Fprintf(os.Stderr, "⚠ No opening brace found for function %q near offset %d, skipping\n", w.Name, w.Offset)
		case extractor.WarnUnbalanced:
			fmt.Fprintf(os.Stderr, "⚠ Mismatched braces for function %q near offset %d, content may be incomplete, skipping\n", w.Name, w.Offset)
		}
	}
}
