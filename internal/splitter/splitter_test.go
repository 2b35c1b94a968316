package splitter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSplitFileWritesOneFilePerFunction(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := filepath.Join(dir, "all.ts")
	content := "function add(a, b) {\n  return a + b;\n}\n\n" +
		"export const mul = (a, b) => {\n  return a * b;\n};\n"
	if err := os.WriteFile(src, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	out := filepath.Join(dir, "out")
	s := New(out, "")
	if err := s.SplitFile(src); err != nil {
		t.Fatalf("SplitFile: %v", err)
	}

	add, err := os.ReadFile(filepath.Join(out, "add.ts"))
	if err != nil {
		t.Fatalf("ReadFile add.ts: %v", err)
	}
	if want := "function add(a, b) {\n  return a + b;\n}"; string(add) != want {
		t.Errorf("add.ts=%q, want %q", add, want)
	}

	mul, err := os.ReadFile(filepath.Join(out, "mul.ts"))
	if err != nil {
		t.Fatalf("ReadFile mul.ts: %v", err)
	}
	if !strings.HasPrefix(string(mul), "export const mul") || !strings.HasSuffix(string(mul), "}") {
		t.Errorf("mul.ts=%q, want span from export prefix through closing brace", mul)
	}
}

func TestSplitFileMissingInput(t *testing.T) {
	t.Parallel()

	s := New(t.TempDir(), "")
	if err := s.SplitFile(filepath.Join(t.TempDir(), "absent.ts")); err == nil {
		t.Fatal("Expected an error for a missing input file")
	}
}

func TestSplitFileNoFunctionsWritesNothing(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := filepath.Join(dir, "plain.ts")
	if err := os.WriteFile(src, []byte("const x = 5;\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	out := filepath.Join(dir, "out")
	s := New(out, "")
	if err := s.SplitFile(src); err != nil {
		t.Fatalf("SplitFile: %v", err)
	}

	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Errorf("Output directory should not be created when nothing is extracted")
	}
}

func TestSplitFileDuplicateNameLastWins(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := filepath.Join(dir, "dup.ts")
	content := "function dup() {\n  return 1;\n}\n\n" +
		"function dup() {\n  return 2;\n}\n"
	if err := os.WriteFile(src, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	out := filepath.Join(dir, "out")
	if err := New(out, "").SplitFile(src); err != nil {
		t.Fatalf("SplitFile: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(out, "dup.ts"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "return 2;") {
		t.Errorf("Expected the later declaration to win, got %q", data)
	}
}

func TestSplitFileContinuesPastWriteFailure(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := filepath.Join(dir, "all.ts")
	content := "function add(a, b) {\n  return a + b;\n}\n\n" +
		"export const mul = (a, b) => {\n  return a * b;\n};\n"
	if err := os.WriteFile(src, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	// A directory squatting on the first function's output path makes its
	// write fail; the remaining functions must still be written and the
	// run must not error.
	out := filepath.Join(dir, "out")
	if err := os.MkdirAll(filepath.Join(out, "add.ts"), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}

	if err := New(out, "").SplitFile(src); err != nil {
		t.Fatalf("SplitFile should not fail on a single bad entry: %v", err)
	}

	mul, err := os.ReadFile(filepath.Join(out, "mul.ts"))
	if err != nil {
		t.Fatalf("ReadFile mul.ts: %v", err)
	}
	if !strings.HasPrefix(string(mul), "export const mul") {
		t.Errorf("mul.ts=%q, want the extracted function", mul)
	}
}

func TestSplitFileExtensionOverride(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := filepath.Join(dir, "all.ts")
	if err := os.WriteFile(src, []byte("function add(a, b) {\n  return a + b;\n}\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	out := filepath.Join(dir, "out")
	// The leading dot is added when missing.
	if err := New(out, "txt").SplitFile(src); err != nil {
		t.Fatalf("SplitFile: %v", err)
	}
	if _, err := os.Stat(filepath.Join(out, "add.txt")); err != nil {
		t.Errorf("Expected add.txt: %v", err)
	}
}

func TestSplitFileDefaultsToInputDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := filepath.Join(dir, "all.js")
	if err := os.WriteFile(src, []byte("function solo() {\n  return 1;\n}\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if err := New("", "").SplitFile(src); err != nil {
		t.Fatalf("SplitFile: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "solo.js")); err != nil {
		t.Errorf("Expected solo.js next to the input: %v", err)
	}
}

func TestSplitDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "node_modules"), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}

	writeFile := func(rel, content string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, rel), []byte(content), 0o644); err != nil {
			t.Fatalf("WriteFile %s: %v", rel, err)
		}
	}
	writeFile("a.ts", "function alpha() {\n  return 1;\n}\n")
	writeFile("b.js", "const beta = () => {\n  return 2;\n};\n")
	writeFile(filepath.Join("node_modules", "dep.ts"), "function hidden() {\n  return 3;\n}\n")

	out := filepath.Join(dir, "out")
	if err := New(out, "").SplitDir(dir); err != nil {
		t.Fatalf("SplitDir: %v", err)
	}

	if _, err := os.Stat(filepath.Join(out, "a", "alpha.ts")); err != nil {
		t.Errorf("Expected out/a/alpha.ts: %v", err)
	}
	if _, err := os.Stat(filepath.Join(out, "b", "beta.js")); err != nil {
		t.Errorf("Expected out/b/beta.js: %v", err)
	}
	if _, err := os.Stat(filepath.Join(out, "dep")); !os.IsNotExist(err) {
		t.Errorf("node_modules content should have been skipped")
	}
}
