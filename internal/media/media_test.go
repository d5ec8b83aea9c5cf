package media

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestComposeSocialText(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		description string
		want        string
	}{
		{"both", "A clip", "It is old.", "Title: A clip\n\nDescription: It is old."},
		{"title only", "A clip", "", "Title: A clip"},
		{"description only", "", "It is old.", "Description: It is old."},
		{"neither", "", "", "No title or description found."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := composeSocialText(tt.title, tt.description); got != tt.want {
				t.Errorf("composeSocialText(%q, %q) = %q, want %q", tt.title, tt.description, got, tt.want)
			}
		})
	}
}

func TestComposeSocialText_TruncatesLongDescription(t *testing.T) {
	long := strings.Repeat("x", descriptionLimit+500)
	got := composeSocialText("t", long)

	if !strings.HasSuffix(got, "...") {
		t.Errorf("expected truncated description to end with ellipsis, got %q", got[len(got)-10:])
	}
	wantLen := len("Title: t\n\nDescription: ") + descriptionLimit + len("...")
	if len(got) != wantLen {
		t.Errorf("truncated text length = %d, want %d", len(got), wantLen)
	}
}

func TestFindDownloadedFile(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"video_7.mp4.part", "video_7.ytdl", "video_12.mp4", "video_7.mp4"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	path, ok := findDownloadedFile(dir, 7)
	if !ok {
		t.Fatal("expected to find final file for id 7")
	}
	if filepath.Base(path) != "video_7.mp4" {
		t.Errorf("found %q, want video_7.mp4", path)
	}
	if !filepath.IsAbs(path) {
		t.Errorf("expected absolute path, got %q", path)
	}

	if _, ok := findDownloadedFile(dir, 99); ok {
		t.Error("expected no file for id 99")
	}
}

func TestFindDownloadedFile_OnlyPartials(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "video_3.mp4.part"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, ok := findDownloadedFile(dir, 3); ok {
		t.Error("partial file must not count as final output")
	}
}

func TestRemovePartials(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"video_5.mp4.part", "video_5.f137.mp4", "video_6.mp4"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	removePartials(dir, 5)

	files, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 || files[0].Name() != "video_6.mp4" {
		names := make([]string, 0, len(files))
		for _, f := range files {
			names = append(names, f.Name())
		}
		t.Errorf("expected only video_6.mp4 to remain, got %v", names)
	}
}
