package baseline

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for Discovery:
// - Only files with configured extensions are returned
// - Substring exclusions drop files anywhere under a matching path
// - Glob exclusions match full paths and base names
// - A regular file input is returned as-is
// - Counters report totals and exclusions

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestDiscovery_ExtensionsAndExcludes(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "src", "main.cpp"), "int main() {}")
	writeFile(t, filepath.Join(root, "src", "util.h"), "")
	writeFile(t, filepath.Join(root, "src", "notes.md"), "not a source file")
	writeFile(t, filepath.Join(root, "vendor", "dep.cpp"), "int dep;")
	writeFile(t, filepath.Join(root, "src", "gen.pb.h"), "generated")

	d := NewDiscovery(
		[]string{".cpp", ".h"},
		[]string{"vendor/", "*.pb.h"},
	)

	files, err := d.Discover(root)
	require.NoError(t, err)

	rel := make([]string, 0, len(files))
	for _, f := range files {
		r, err := filepath.Rel(root, f)
		require.NoError(t, err)
		rel = append(rel, filepath.ToSlash(r))
	}

	assert.ElementsMatch(t, []string{"src/main.cpp", "src/util.h"}, rel)
	assert.Equal(t, 4, d.TotalFiles, "markdown file should not count as a source file")
	assert.Equal(t, 2, d.ExcludedFiles)
}

func TestDiscovery_SingleFile(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	path := filepath.Join(root, "one.cpp")
	writeFile(t, path, "int x;")

	d := NewDiscovery([]string{".cpp"}, nil)
	files, err := d.Discover(path)
	require.NoError(t, err)
	assert.Equal(t, []string{path}, files)
}

func TestDiscovery_Excluded(t *testing.T) {
	t.Parallel()

	d := NewDiscovery([]string{".cpp"}, []string{"third_party/", "*/test/*"})

	assert.True(t, d.Excluded("repo/third_party/lib/a.cpp"))
	assert.True(t, d.Excluded("repo/test/b.cpp"))
	assert.False(t, d.Excluded("repo/src/c.cpp"))
}
