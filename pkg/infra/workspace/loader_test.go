package workspace_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/Brhansenane/repopush/pkg/infra/workspace"
)

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	gt.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	gt.NoError(t, os.WriteFile(path, data, 0644))
}

func TestSnapshot(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "README.md"), []byte("# demo"))
	writeFile(t, filepath.Join(dir, "src", "a.ts"), []byte("x"))
	writeFile(t, filepath.Join(dir, "logo.png"), []byte{0x89, 0x50, 0x4e, 0x47, 0x00, 0x01})
	writeFile(t, filepath.Join(dir, ".git", "HEAD"), []byte("ref: refs/heads/main"))
	writeFile(t, filepath.Join(dir, "node_modules", "pkg", "index.js"), []byte("module.exports = {}"))

	files, root, err := workspace.Snapshot(dir)
	gt.NoError(t, err)
	gt.Value(t, root).NotEqual("")

	byName := map[string]bool{}
	binaries := map[string]bool{}
	for _, f := range files {
		rel, err := filepath.Rel(root, f.Path)
		gt.NoError(t, err)
		byName[rel] = true
		if f.IsBinary {
			binaries[rel] = true
		}
	}

	// VCS metadata and node_modules never enter the snapshot.
	gt.Number(t, len(files)).Equal(3)
	gt.Value(t, byName["README.md"]).Equal(true)
	gt.Value(t, byName[filepath.Join("src", "a.ts")]).Equal(true)
	gt.Value(t, byName["logo.png"]).Equal(true)

	gt.Value(t, binaries["logo.png"]).Equal(true)
	gt.Value(t, binaries["README.md"]).Equal(false)
}

func TestSnapshot_BinaryDetection(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		isBinary bool
	}{
		{"plain ascii", []byte("hello world"), false},
		{"multi-byte utf8", []byte("héllo wörld"), false},
		{"empty file", []byte{}, false},
		{"nul byte", []byte{'a', 0x00, 'b'}, true},
		{"invalid utf8", []byte{0xff, 0xfe, 0xfd}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, filepath.Join(dir, "f"), tt.data)

			files, _, err := workspace.Snapshot(dir)
			gt.NoError(t, err)
			gt.Number(t, len(files)).Equal(1)
			gt.Value(t, files[0].IsBinary).Equal(tt.isBinary)
		})
	}
}

func TestSnapshot_MissingRoot(t *testing.T) {
	_, _, err := workspace.Snapshot(filepath.Join(t.TempDir(), "does-not-exist"))
	gt.Error(t, err)
}
