package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/Brhansenane/repopush/pkg/domain/model"
	"github.com/Brhansenane/repopush/pkg/usecase"
)

func TestSelect_ExcludesBinaries(t *testing.T) {
	files := []model.WorkspaceFile{
		{Path: "/ws/a.txt", Content: "aaa"},
		{Path: "/ws/img/logo.png", Content: "\x89PNG", IsBinary: true},
		{Path: "/ws/b.txt", Content: "bb"},
		{Path: "/ws/data.bin", Content: "\x00\x01", IsBinary: true},
		{Path: "/ws/c.txt", Content: "c"},
	}

	selected := usecase.SelectContent(context.Background(), files, "/ws")

	// 5 total, 2 binary: exactly 3 manifest entries, in selection order.
	gt.Number(t, len(selected)).Equal(3)
	gt.Value(t, selected[0].Entry).Equal(model.ManifestEntry{RelativePath: "a.txt", SizeBytes: 3})
	gt.Value(t, selected[1].Entry).Equal(model.ManifestEntry{RelativePath: "b.txt", SizeBytes: 2})
	gt.Value(t, selected[2].Entry).Equal(model.ManifestEntry{RelativePath: "c.txt", SizeBytes: 1})
}

func TestSelect_SizeIsUTF8Bytes(t *testing.T) {
	files := []model.WorkspaceFile{
		{Path: "/ws/greeting.txt", Content: "héllo"},
	}

	selected := usecase.SelectContent(context.Background(), files, "/ws")

	gt.Number(t, len(selected)).Equal(1)
	// 5 runes, 6 bytes: the multi-byte character counts as 2.
	gt.Number(t, selected[0].Entry.SizeBytes).Equal(6)
}

func TestSelect_RelativePaths(t *testing.T) {
	tests := []struct {
		name string
		path string
		root string
		want string
	}{
		{"root with trailing slash", "/home/project/src/a.ts", "/home/project/", "src/a.ts"},
		{"root without trailing slash", "/home/project/src/a.ts", "/home/project", "src/a.ts"},
		{"already relative", "src/a.ts", "", "src/a.ts"},
		{"file at root", "/home/project/README.md", "/home/project", "README.md"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files := []model.WorkspaceFile{{Path: tt.path, Content: "x"}}
			selected := usecase.SelectContent(context.Background(), files, tt.root)
			gt.Number(t, len(selected)).Equal(1)
			gt.Value(t, selected[0].Entry.RelativePath).Equal(tt.want)
		})
	}
}

func TestSelect_RejectsTraversal(t *testing.T) {
	tests := []struct {
		name string
		path string
		root string
	}{
		{"parent escape", "/ws/../etc/passwd", "/ws"},
		{"relative escape", "../secrets.txt", ""},
		{"absolute path outside root", "/etc/passwd", "/ws"},
		{"nested escape", "/ws/a/../../etc/passwd", "/ws"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files := []model.WorkspaceFile{{Path: tt.path, Content: "x"}}
			selected := usecase.SelectContent(context.Background(), files, tt.root)
			gt.Number(t, len(selected)).Equal(0)
		})
	}
}

func TestSelect_AllBinary(t *testing.T) {
	files := []model.WorkspaceFile{
		{Path: "/ws/a.png", Content: "x", IsBinary: true},
	}
	selected := usecase.SelectContent(context.Background(), files, "/ws")
	gt.Number(t, len(selected)).Equal(0)
}
