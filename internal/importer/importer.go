// Package importer converts external data (JSON exports, PDFs) into paper
// records.
package importer

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ewsmith/papergraph/internal/record"
)

// ParseRecords parses a JSON export of paper records. The export may be a
// JSON array or a single object. Entries that fail structural validation are
// reported individually; the rest import normally.
func ParseRecords(data []byte) ([]record.PaperRecord, []error) {
	var entries []record.PaperRecord
	if err := json.Unmarshal(data, &entries); err != nil {
		// Single-object export
		var one record.PaperRecord
		if err := json.Unmarshal(data, &one); err != nil {
			return nil, []error{fmt.Errorf("parsing records JSON: %w", err)}
		}
		entries = []record.PaperRecord{one}
	}

	var records []record.PaperRecord
	var errs []error

	for i, entry := range entries {
		r, err := normalizeEntry(entry)
		if err != nil {
			errs = append(errs, fmt.Errorf("entry %d (%s): %w", i+1, entry.Title, err))
			continue
		}
		records = append(records, r)
	}

	return records, errs
}

// normalizeEntry validates an imported entry and fills derived fields.
func normalizeEntry(entry record.PaperRecord) (record.PaperRecord, error) {
	if strings.TrimSpace(entry.Title) == "" {
		return record.PaperRecord{}, fmt.Errorf("missing required field 'title'")
	}

	if entry.ID == "" {
		entry.ID = MakeID(entry)
	}
	if entry.Source.Type == "" {
		entry.Source.Type = "json"
	}
	return entry, nil
}

// MakeID derives a stable identifier for a record: a slug of the title plus
// a short content fingerprint, so re-imports of the same record agree and
// near-identical titles stay distinct.
func MakeID(r record.PaperRecord) string {
	slug := titleSlug(r.Title)
	if slug == "" {
		slug = "record"
	}
	return slug + "-" + ShortFingerprint(r)
}

// titleSlugMaxLen caps slug length so ids stay readable.
const titleSlugMaxLen = 40

func titleSlug(title string) string {
	fields := strings.Fields(strings.ToLower(title))
	slug := strings.Join(fields, "-")
	cleaned := make([]rune, 0, len(slug))
	for _, c := range slug {
		if c == '-' || c == '_' || (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') {
			cleaned = append(cleaned, c)
		}
	}
	s := string(cleaned)
	if len(s) > titleSlugMaxLen {
		s = s[:titleSlugMaxLen]
		s = strings.TrimRight(s, "-")
	}
	return s
}
