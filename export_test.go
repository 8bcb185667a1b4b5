package drawbot

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPagePaths(t *testing.T) {
	tests := []struct {
		name string
		path string
		n    int
		want []string
	}{
		{"single page keeps name", "out/test.png", 1, []string{"out/test.png"}},
		{"two pages numbered from zero", "test.png", 2, []string{"test_0.png", "test_1.png"}},
		{"dotted directory", "a.b/test.svg", 2, []string{"a.b/test_0.svg", "a.b/test_1.svg"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pagePaths(tt.path, tt.n)
			if len(got) != len(tt.want) {
				t.Fatalf("pagePaths() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("pagePaths()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSaveImageNoPages(t *testing.T) {
	doc := NewRecordingDocument()
	if err := doc.SaveImage("x.png"); !errors.Is(err, ErrNoPages) {
		t.Errorf("SaveImage() = %v, want ErrNoPages", err)
	}
}

func TestSaveImageUnsupportedFormat(t *testing.T) {
	d, _ := newTestDrawing(t)
	if err := d.Rect(0, 0, 10, 10); err != nil {
		t.Fatalf("Rect() = %v", err)
	}
	err := d.SaveImage("out.tiff")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("SaveImage(out.tiff) = %v, want ErrUnsupportedFormat", err)
	}
}

func TestSaveImageFinalizesOpenPage(t *testing.T) {
	dir := t.TempDir()
	d, doc := newTestDrawing(t)
	if err := d.Rect(0, 0, 10, 10); err != nil {
		t.Fatalf("Rect() = %v", err)
	}
	if !doc.IsDrawing() {
		t.Fatal("expected an open page before export")
	}
	if err := d.SaveImage(filepath.Join(dir, "page.png")); err != nil {
		t.Fatalf("SaveImage() = %v", err)
	}
	if doc.IsDrawing() {
		t.Error("page still open after export")
	}
}

func TestSavePNGSinglePage(t *testing.T) {
	dir := t.TempDir()
	d, _ := newTestDrawing(t)
	if err := d.NewPage(40, 30); err != nil {
		t.Fatalf("NewPage() = %v", err)
	}
	d.SetFillRGBA(1, 0, 0, 1)
	if err := d.Rect(5, 5, 20, 10); err != nil {
		t.Fatalf("Rect() = %v", err)
	}

	out := filepath.Join(dir, "single.png")
	if err := d.SaveImage(out); err != nil {
		t.Fatalf("SaveImage() = %v", err)
	}

	info, err := os.Stat(out)
	if err != nil {
		t.Fatalf("expected %s to exist: %v", out, err)
	}
	if info.Size() == 0 {
		t.Error("written PNG is empty")
	}
}

func TestSavePNGMultiPageNaming(t *testing.T) {
	dir := t.TempDir()
	d, _ := newTestDrawing(t)
	for i := 0; i < 3; i++ {
		if err := d.NewPage(20, 20); err != nil {
			t.Fatalf("NewPage() = %v", err)
		}
		if err := d.Rect(0, 0, 10, 10); err != nil {
			t.Fatalf("Rect() = %v", err)
		}
	}

	if err := d.SaveImage(filepath.Join(dir, "anim.png")); err != nil {
		t.Fatalf("SaveImage() = %v", err)
	}

	for i := 0; i < 3; i++ {
		want := filepath.Join(dir, "anim_"+string(rune('0'+i))+".png")
		if _, err := os.Stat(want); err != nil {
			t.Errorf("expected %s to exist: %v", want, err)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "anim.png")); err == nil {
		t.Error("plain anim.png should not exist for a multipage export")
	}
}

func TestSaveImageLogsArtifacts(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	dir := t.TempDir()
	d, _ := newTestDrawing(t)
	if err := d.NewPage(20, 20); err != nil {
		t.Fatalf("NewPage() = %v", err)
	}
	if err := d.Rect(0, 0, 10, 10); err != nil {
		t.Fatalf("Rect() = %v", err)
	}

	out := filepath.Join(dir, "logged.png")
	if err := d.SaveImage(out); err != nil {
		t.Fatalf("SaveImage() = %v", err)
	}

	logs := buf.String()
	if !strings.Contains(logs, "wrote png") {
		t.Errorf("expected an info log per written artifact, got: %s", logs)
	}
	if !strings.Contains(logs, "logged.png") {
		t.Errorf("expected the artifact path in the log, got: %s", logs)
	}
}

func TestSaveSVGContainsGeometry(t *testing.T) {
	dir := t.TempDir()
	d, _ := newTestDrawing(t)
	if err := d.NewPage(100, 100); err != nil {
		t.Fatalf("NewPage() = %v", err)
	}
	d.SetFillRGBA(0, 0, 1, 1)
	if err := d.Rect(10, 10, 50, 50); err != nil {
		t.Fatalf("Rect() = %v", err)
	}

	out := filepath.Join(dir, "shape.svg")
	if err := d.SaveImage(out); err != nil {
		t.Fatalf("SaveImage() = %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("ReadFile() = %v", err)
	}
	body := string(data)
	if !strings.Contains(body, "<path") {
		t.Error("svg output has no path element")
	}
	if !strings.Contains(body, "rgb(0,0,255)") {
		t.Error("svg output is missing the fill color")
	}
}

func TestSavePDFSingleArtifact(t *testing.T) {
	dir := t.TempDir()
	d, _ := newTestDrawing(t)
	for i := 0; i < 2; i++ {
		if err := d.NewPage(50, 50); err != nil {
			t.Fatalf("NewPage() = %v", err)
		}
		if err := d.Rect(0, 0, 25, 25); err != nil {
			t.Fatalf("Rect() = %v", err)
		}
	}

	out := filepath.Join(dir, "doc.pdf")
	if err := d.SaveImage(out); err != nil {
		t.Fatalf("SaveImage() = %v", err)
	}

	if _, err := os.Stat(out); err != nil {
		t.Fatalf("expected %s to exist: %v", out, err)
	}
	if _, err := os.Stat(filepath.Join(dir, "doc_0.pdf")); err == nil {
		t.Error("pdf export must produce a single artifact")
	}
}

func TestSaveGIFSingleArtifact(t *testing.T) {
	dir := t.TempDir()
	d, _ := newTestDrawing(t)
	for i := 0; i < 2; i++ {
		if err := d.NewPage(16, 16); err != nil {
			t.Fatalf("NewPage() = %v", err)
		}
		if err := d.Rect(0, 0, 8, 8); err != nil {
			t.Fatalf("Rect() = %v", err)
		}
	}

	out := filepath.Join(dir, "anim.gif")
	if err := d.SaveImage(out); err != nil {
		t.Fatalf("SaveImage() = %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Fatalf("expected %s to exist: %v", out, err)
	}
}
