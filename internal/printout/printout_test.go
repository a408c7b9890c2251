package printout_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"todo/internal/printout"
	"todo/internal/tasklist"
)

func TestWrite_ProducesPDF(t *testing.T) {
	l := tasklist.New()
	l.Add("Buy milk")
	l.Add("Call mom")

	var buf bytes.Buffer
	err := printout.Write(&buf, l.Items(), printout.Options{Title: "MY TASK LIST", Bullet: "•"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Errorf("expected PDF header, got %q", buf.Bytes()[:min(8, buf.Len())])
	}
}

func TestWrite_EmptyList(t *testing.T) {
	var buf bytes.Buffer
	if err := printout.Write(&buf, nil, printout.Options{Title: "Empty"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("expected output for empty list")
	}
}

func TestWriteFile_AddsExtension(t *testing.T) {
	dir := t.TempDir()
	l := tasklist.New()
	l.Add("A")

	path, err := printout.WriteFile(filepath.Join(dir, "today"), l.Items(), printout.Options{Title: "T"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filepath.Ext(path) != ".pdf" {
		t.Errorf("expected .pdf extension, got %q", path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %v", err)
	}
}

func TestWriteFile_RequiresName(t *testing.T) {
	if _, err := printout.WriteFile("  ", nil, printout.Options{}); err == nil {
		t.Error("expected error for empty file name")
	}
}

func TestWrite_Cp1252TextWithBuiltinFont(t *testing.T) {
	l := tasklist.New()
	l.Add("Café • €")

	var buf bytes.Buffer
	if err := printout.Write(&buf, l.Items(), printout.Options{Title: "Cañas", Bullet: "•"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestWrite_RejectsTextOutsideBuiltinFont(t *testing.T) {
	tests := []struct {
		name  string
		title string
		task  string
	}{
		{"japanese task", "MY TASK LIST", "買い物"},
		{"symbols", "MY TASK LIST", "Call Ωmega ✓"},
		{"title", "⚠ TODO", "Buy milk"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := tasklist.New()
			l.Add(tt.task)

			var buf bytes.Buffer
			err := printout.Write(&buf, l.Items(), printout.Options{Title: tt.title})
			if !errors.Is(err, printout.ErrNeedsFont) {
				t.Fatalf("expected ErrNeedsFont, got %v", err)
			}
			if buf.Len() != 0 {
				t.Error("expected nothing written")
			}
		})
	}
}

func TestWriteFile_RemovesFileOnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "list.pdf")
	l := tasklist.New()
	l.Add("買い物")

	if _, err := printout.WriteFile(path, l.Items(), printout.Options{Title: "T"}); !errors.Is(err, printout.ErrNeedsFont) {
		t.Fatalf("expected ErrNeedsFont, got %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("expected no file after failed write")
	}
}

func TestWrite_MissingFontFile(t *testing.T) {
	var buf bytes.Buffer
	err := printout.Write(&buf, nil, printout.Options{Title: "T", Font: filepath.Join(t.TempDir(), "missing.ttf")})
	if err == nil {
		t.Fatal("expected error for missing font file")
	}
}

func TestWrite_UTF8Font(t *testing.T) {
	font := findTrueTypeFont()
	if font == "" {
		t.Skip("no TrueType font installed")
	}
	l := tasklist.New()
	l.Add("買い物")
	l.Add("Call Ωmega ✓")

	var buf bytes.Buffer
	if err := printout.Write(&buf, l.Items(), printout.Options{Title: "⚠ TODO", Bullet: "•", Font: font}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Error("expected PDF header")
	}
}

func findTrueTypeFont() string {
	candidates := []string{
		"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
		"/usr/share/fonts/dejavu/DejaVuSans.ttf",
		"/usr/share/fonts/TTF/DejaVuSans.ttf",
		"/Library/Fonts/Arial Unicode.ttf",
	}
	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c
		}
	}
	return ""
}
