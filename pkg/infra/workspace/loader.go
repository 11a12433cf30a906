package workspace

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/m-mizutani/goerr/v2"

	"github.com/Brhansenane/repopush/pkg/domain/model"
)

// Directories that never belong in a published repository.
var skipDirs = map[string]bool{
	".git":         true,
	".hg":          true,
	".svn":         true,
	"node_modules": true,
}

// sniffLen bounds how many bytes are inspected for the binary check.
const sniffLen = 8000

// Snapshot walks root and returns a read-only file snapshot in lexical walk
// order along with the resolved root. Symlinks and other irregular entries
// are skipped.
func Snapshot(root string) ([]model.WorkspaceFile, string, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, "", goerr.Wrap(err, "failed to resolve workspace root",
			goerr.V("root", root),
		)
	}

	var files []model.WorkspaceFile
	err = filepath.WalkDir(abs, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return goerr.Wrap(err, "failed to read workspace file",
				goerr.V("path", path),
			)
		}

		files = append(files, model.WorkspaceFile{
			Path:     path,
			Content:  string(data),
			IsBinary: isBinary(data),
		})
		return nil
	})
	if err != nil {
		return nil, "", goerr.Wrap(err, "failed to snapshot workspace",
			goerr.V("root", abs),
		)
	}

	return files, abs, nil
}

// isBinary reports whether data looks like binary content: a NUL byte in the
// sniff window, or invalid UTF-8 overall.
func isBinary(data []byte) bool {
	window := data
	if len(window) > sniffLen {
		window = window[:sniffLen]
	}
	if bytes.IndexByte(window, 0x00) >= 0 {
		return true
	}
	return !utf8.Valid(data)
}
