package export

import (
	"bufio"
	"os"
	"regexp"
	"strings"

	"github.com/ewsmith/papergraph/internal/record"
)

var (
	// Matches an entry start line: @type{key,
	bibEntryStart = regexp.MustCompile(`@\w+\{([^,]+),`)
	// Matches a DOI field: doi = {value} or doi = "value"
	bibDOIField = regexp.MustCompile(`(?i)^\s*doi\s*=\s*[\{"]([^\}"]+)[\}"]`)
)

// BibTeXIndex indexes entries of an existing .bib file so exports can
// skip records that are already present.
type BibTeXIndex struct {
	keys map[string]bool
	dois map[string]bool
}

// NewBibTeXIndex creates an empty BibTeX index.
func NewBibTeXIndex() *BibTeXIndex {
	return &BibTeXIndex{
		keys: make(map[string]bool),
		dois: make(map[string]bool),
	}
}

// HasRecord reports whether the record already appears in the indexed
// file. DOI is the primary match; the record ID (used as the citation
// key) is the fallback.
func (idx *BibTeXIndex) HasRecord(r record.PaperRecord) bool {
	return idx.HasEntry(r.ID, r.DOI)
}

// HasEntry reports whether an entry with the given citation key or DOI
// is already indexed.
func (idx *BibTeXIndex) HasEntry(key, doi string) bool {
	if doi != "" && idx.dois[normalizeDOI(doi)] {
		return true
	}
	return idx.keys[key]
}

// ParseBibTeXFile builds an index from an existing .bib file. A missing
// file yields an empty index.
func ParseBibTeXFile(path string) (*BibTeXIndex, error) {
	idx := NewBibTeXIndex()

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return idx, nil
		}
		return nil, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()

		if m := bibEntryStart.FindStringSubmatch(line); len(m) > 1 {
			idx.keys[strings.TrimSpace(m[1])] = true
		}

		if m := bibDOIField.FindStringSubmatch(line); len(m) > 1 {
			if doi := normalizeDOI(m[1]); doi != "" {
				idx.dois[doi] = true
			}
		}
	}

	return idx, scanner.Err()
}

// normalizeDOI strips resolver prefixes and lowercases for comparison.
func normalizeDOI(doi string) string {
	doi = strings.TrimSpace(doi)
	doi = strings.TrimPrefix(doi, "https://doi.org/")
	doi = strings.TrimPrefix(doi, "http://doi.org/")
	doi = strings.TrimPrefix(doi, "doi.org/")
	doi = strings.TrimPrefix(doi, "DOI:")
	doi = strings.TrimPrefix(doi, "doi:")
	return strings.ToLower(doi)
}

// AppendToBibFile appends BibTeX content to a file, creating it if
// needed.
func AppendToBibFile(path, content string) error {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = file.WriteString("\n" + content)
	return err
}
