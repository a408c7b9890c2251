// Package printout renders the task list as a printable PDF checklist.
package printout

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"golang.org/x/text/encoding/charmap"

	"todo/internal/tasklist"
)

// EmptyText is printed when there are no tasks.
const EmptyText = "No tasks"

// ErrNeedsFont is returned when text cannot be shown with the built-in
// cp1252 font and no UTF-8 font was configured.
var ErrNeedsFont = errors.New("text needs a unicode font (set font in config.toml)")

// Options control the page layout.
type Options struct {
	// Title is printed at the top of the page.
	Title string

	// Bullet prefixes each task line.
	Bullet string

	// Font is the path of a UTF-8 TrueType font. Empty uses the built-in
	// Arial, which only covers cp1252.
	Font string
}

const utf8Family = "tasks"

// Write renders items as an A4 checklist to w.
func Write(w io.Writer, items []tasklist.Task, opts Options) error {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = item.Text
		if opts.Bullet != "" {
			lines[i] = opts.Bullet + " " + item.Text
		}
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(opts.Title, true)
	pdf.SetAutoPageBreak(true, 15)

	family := "Arial"
	tr := func(s string) string { return s }
	if opts.Font != "" {
		pdf.AddUTF8Font(utf8Family, "", opts.Font)
		pdf.AddUTF8Font(utf8Family, "B", opts.Font)
		if err := pdf.Error(); err != nil {
			return fmt.Errorf("load font %s: %w", opts.Font, err)
		}
		family = utf8Family
	} else {
		for _, s := range append([]string{opts.Title}, lines...) {
			if err := checkCP1252(s); err != nil {
				return err
			}
		}
		// Core fonts are cp1252; the translator maps UTF-8 onto it
		tr = pdf.UnicodeTranslatorFromDescriptor("")
	}

	pdf.AddPage()
	pdf.SetFont(family, "B", 18)
	pdf.SetTextColor(0, 128, 255)
	pdf.CellFormat(0, 12, tr(opts.Title), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont(family, "", 12)
	pdf.SetTextColor(0, 0, 0)
	if len(lines) == 0 {
		pdf.CellFormat(0, 8, tr(EmptyText), "", 1, "L", false, 0, "")
	}
	for _, line := range lines {
		pdf.MultiCell(0, 8, tr(line), "0", "L", false)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}

// checkCP1252 rejects text the built-in font would print as dots.
func checkCP1252(s string) error {
	for _, r := range s {
		if _, ok := charmap.Windows1252.EncodeRune(r); !ok {
			return fmt.Errorf("%w: %q in %q", ErrNeedsFont, r, s)
		}
	}
	return nil
}

// WriteFile renders items to path, adding a .pdf extension if missing.
// Returns the path written. Nothing is left behind on error.
func WriteFile(path string, items []tasklist.Task, opts Options) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", fmt.Errorf("file name required")
	}
	if !strings.EqualFold(filepath.Ext(path), ".pdf") {
		path += ".pdf"
	}

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := Write(f, items, opts); err != nil {
		f.Close()
		os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return path, nil
}
