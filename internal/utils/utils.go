package utils

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

var excludedDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"dist":         true,
	"build":        true,
	"coverage":     true,
	".next":        true,
}

var sourceExts = map[string]bool{
	".js":  true,
	".jsx": true,
	".mjs": true,
	".cjs": true,
	".ts":  true,
	".tsx": true,
}

// IsSupportedFile reports whether path carries a JavaScript or TypeScript
// source extension.
func IsSupportedFile(path string) bool {
	return sourceExts[strings.ToLower(filepath.Ext(path))]
}

// SupportedExtensions returns all file extensions the splitter understands.
func SupportedExtensions() []string {
	return []string{".js", ".jsx", ".mjs", ".cjs", ".ts", ".tsx"}
}

// GetAllSourceFiles walks rootPath and returns every supported source file,
// skipping well-known heavy directories and anything matched by the root
// .gitignore.
func GetAllSourceFiles(rootPath string) ([]string, error) {
	var files []string
	rules := compileIgnoreRules(loadGitIgnorePatterns(rootPath))
	err := filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		// Compute path relative to root for .gitignore-style matching.
		relPath, relErr := filepath.Rel(rootPath, path)
		if relErr != nil {
			relPath = path
		}
		relPath = filepath.ToSlash(relPath)

		if d.IsDir() {
			if excludedDirs[d.Name()] && relPath != "." {
				return filepath.SkipDir
			}
			if matchesIgnoreRule(relPath, rules) {
				return filepath.SkipDir
			}
			return nil
		}

		if matchesIgnoreRule(relPath, rules) {
			return nil
		}
		if IsSupportedFile(path) {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

// ignoreRule is one compiled .gitignore line. Exactly one of dir, name and
// matcher is set.
type ignoreRule struct {
	dir      string    // directory pattern like "vendor/", stored without the slash
	name     string    // bare segment name, matched anywhere in the path
	matcher  glob.Glob // compiled glob for everything else
	baseOnly bool      // glob had no '/', so it also matches the path's base name
}

// compileIgnoreRules turns raw .gitignore lines into matchable rules. Globs
// are compiled with '/' as the separator so '*' stays within one path
// segment, which tracks gitignore semantics closely enough for skipping
// build output. A slash-free glob like "*.min.js" is additionally matched
// against the base name, so it applies at any depth the way gitignore does.
func compileIgnoreRules(patterns []string) []ignoreRule {
	var rules []ignoreRule
	for _, p := range patterns {
		p = filepath.ToSlash(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		if strings.HasSuffix(p, "/") {
			dir := strings.TrimPrefix(strings.TrimSuffix(p, "/"), "./")
			if dir != "" {
				rules = append(rules, ignoreRule{dir: dir})
			}
			continue
		}
		if !strings.Contains(p, "/") && !strings.ContainsAny(p, "*?[") {
			rules = append(rules, ignoreRule{name: p})
			continue
		}
		g, err := glob.Compile(p, '/')
		if err != nil {
			continue
		}
		rules = append(rules, ignoreRule{matcher: g, baseOnly: !strings.Contains(p, "/")})
	}
	return rules
}

func matchesIgnoreRule(relPath string, rules []ignoreRule) bool {
	relPath = strings.TrimPrefix(relPath, "./")
	if relPath == "" || relPath == "." {
		return false
	}

	for _, r := range rules {
		switch {
		case r.dir != "":
			if relPath == r.dir || strings.HasPrefix(relPath, r.dir+"/") {
				return true
			}
		case r.name != "":
			if strings.Contains("/"+relPath+"/", "/"+r.name+"/") {
				return true
			}
		case r.matcher != nil:
			if r.matcher.Match(relPath) {
				return true
			}
			if r.baseOnly && r.matcher.Match(path.Base(relPath)) {
				return true
			}
		}
	}
	return false
}

// loadGitIgnorePatterns reads the root-level .gitignore (if present) and
// returns its non-empty, non-comment lines.
func loadGitIgnorePatterns(rootPath string) []string {
	data, err := os.ReadFile(filepath.Join(rootPath, ".gitignore"))
	if err != nil {
		return nil
	}

	var patterns []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, line)
	}
	return patterns
}
