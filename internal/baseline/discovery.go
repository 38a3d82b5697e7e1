package baseline

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// compiledPattern holds both the pattern string and compiled glob.
// Exclusion patterns match either as a plain substring of the path or as
// a glob against the path or its base name, matching the behavior users
// expect from --exclude build and --exclude "*/test/*" alike.
type compiledPattern struct {
	pattern string
	glob    glob.Glob
}

// Discovery finds C++ source files under a root, honoring exclusions.
type Discovery struct {
	extensions map[string]bool
	excludes   []compiledPattern

	// counters for the scan summary
	TotalFiles    int
	ExcludedFiles int
}

// NewDiscovery creates a Discovery for the given extensions and
// exclusion patterns. Patterns that fail to compile as globs still apply
// as substring matches.
func NewDiscovery(extensions, excludePatterns []string) *Discovery {
	d := &Discovery{
		extensions: make(map[string]bool, len(extensions)),
	}
	for _, ext := range extensions {
		d.extensions[strings.ToLower(ext)] = true
	}
	for _, pattern := range excludePatterns {
		cp := compiledPattern{pattern: pattern}
		if g, err := glob.Compile(pattern, '/'); err == nil {
			cp.glob = g
		}
		d.excludes = append(d.excludes, cp)
	}
	return d
}

// Discover walks rootDir and returns the source files to extract. When
// rootDir is a regular file it is returned as-is.
func (d *Discovery) Discover(rootDir string) ([]string, error) {
	info, err := os.Stat(rootDir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{rootDir}, nil
	}

	var files []string
	err = filepath.WalkDir(rootDir, func(path string, entry os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if entry.IsDir() {
			if path != rootDir && d.Excluded(path) {
				return filepath.SkipDir
			}
			return nil
		}

		if !d.extensions[strings.ToLower(filepath.Ext(path))] {
			return nil
		}
		d.TotalFiles++

		if d.Excluded(path) {
			d.ExcludedFiles++
			return nil
		}

		files = append(files, path)
		return nil
	})
	return files, err
}

// Excluded reports whether a path matches any exclusion pattern.
func (d *Discovery) Excluded(path string) bool {
	slashed := filepath.ToSlash(path)
	base := filepath.Base(path)
	for _, cp := range d.excludes {
		if strings.Contains(slashed, cp.pattern) {
			return true
		}
		if cp.glob != nil && (cp.glob.Match(slashed) || cp.glob.Match(base)) {
			return true
		}
	}
	return false
}
