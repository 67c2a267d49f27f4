package importer

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ewsmith/papergraph/internal/pdf"
	"github.com/ewsmith/papergraph/internal/record"
)

// FromPDF seeds a paper record from a PDF file, extracting DOI and title
// where possible. The filename stem stands in for a missing title so the
// record is always importable by hand-editing later.
func FromPDF(path string) (record.PaperRecord, error) {
	doi, err := pdf.ExtractDOI(path)
	if err != nil {
		return record.PaperRecord{}, fmt.Errorf("reading PDF %s: %w", path, err)
	}

	title, err := pdf.ExtractTitle(path)
	if err != nil {
		return record.PaperRecord{}, fmt.Errorf("reading PDF %s: %w", path, err)
	}
	if title == "" {
		base := filepath.Base(path)
		title = strings.TrimSuffix(base, filepath.Ext(base))
	}

	r := record.PaperRecord{
		Title:  title,
		DOI:    doi,
		Source: record.ImportSource{Type: "pdf", ID: filepath.Base(path)},
	}
	r.ID = MakeID(r)
	return r, nil
}
