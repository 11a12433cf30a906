package usecase

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/Brhansenane/repopush/pkg/domain/model"
	"github.com/m-mizutani/ctxlog"
)

// SelectContent filters the workspace snapshot to the publishable subset in
// snapshot order. Binary files are silently excluded from both the push and
// the manifest; the publish transport carries text content only. The
// relative path strips the workspace root prefix; the size is the UTF-8 byte
// length of the content, which for Go strings is simply len().
func SelectContent(ctx context.Context, files []model.WorkspaceFile, root string) []model.SelectedFile {
	logger := ctxlog.From(ctx)

	var selected []model.SelectedFile
	skipped := 0
	unsafe := 0
	for _, f := range files {
		if f.IsBinary {
			skipped++
			continue
		}
		// Security check: prevent path traversal out of the workspace root
		rel, ok := relativePath(f.Path, root)
		if !ok {
			unsafe++
			logger.Warn("skipped file escaping workspace root", "path", f.Path)
			continue
		}
		selected = append(selected, model.SelectedFile{
			File: f,
			Entry: model.ManifestEntry{
				RelativePath: rel,
				SizeBytes:    len(f.Content),
			},
		})
	}

	logger.Debug("selected workspace content",
		"total", len(files),
		"selected", len(selected),
		"skipped_binary", skipped,
		"skipped_unsafe", unsafe,
	)

	return selected
}

// relativePath strips the workspace root prefix after cleaning both paths.
// It reports false for paths that resolve outside the root.
func relativePath(path, root string) (string, bool) {
	p := filepath.ToSlash(filepath.Clean(path))
	if root != "" {
		r := strings.TrimSuffix(filepath.ToSlash(filepath.Clean(root)), "/")
		if !strings.HasPrefix(p, r+"/") {
			return "", false
		}
		p = strings.TrimPrefix(p, r+"/")
	}
	p = strings.TrimPrefix(p, "/")
	if p == "" || p == "." || p == ".." || strings.HasPrefix(p, "../") {
		return "", false
	}
	return p, true
}
