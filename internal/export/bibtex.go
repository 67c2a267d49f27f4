// Package export converts paper records to external citation formats.
package export

import (
	"fmt"
	"strings"

	"github.com/ewsmith/papergraph/internal/record"
)

// ToBibTeX converts a single record to a BibTeX entry.
func ToBibTeX(r record.PaperRecord) string {
	entryType := determineEntryType(r)
	var b strings.Builder

	b.WriteString(fmt.Sprintf("@%s{%s,\n", entryType, r.ID))

	if len(r.Authors) > 0 {
		b.WriteString(fmt.Sprintf("  author = {%s},\n", formatAuthors(r.Authors)))
	}

	b.WriteString(fmt.Sprintf("  title = {%s},\n", escapeLatex(r.Title)))

	if r.Venue != "" {
		fieldName := "journal"
		if entryType == "inproceedings" {
			fieldName = "booktitle"
		}
		b.WriteString(fmt.Sprintf("  %s = {%s},\n", fieldName, escapeLatex(r.Venue)))
	}

	if r.Year > 0 {
		b.WriteString(fmt.Sprintf("  year = {%d},\n", r.Year))
	}

	if r.DOI != "" {
		b.WriteString(fmt.Sprintf("  doi = {%s},\n", r.DOI))
	}

	if r.Abstract != "" {
		b.WriteString(fmt.Sprintf("  abstract = {%s},\n", escapeLatex(r.Abstract)))
	}

	b.WriteString("}\n")

	return b.String()
}

// ToBibTeXList converts multiple records to BibTeX format.
func ToBibTeXList(records []record.PaperRecord) string {
	var entries []string
	for _, r := range records {
		entries = append(entries, ToBibTeX(r))
	}
	return strings.Join(entries, "\n")
}

// determineEntryType returns the BibTeX entry type for a record.
func determineEntryType(r record.PaperRecord) string {
	venue := strings.ToLower(r.Venue)

	// Preprints
	if strings.Contains(venue, "arxiv") ||
		strings.Contains(venue, "biorxiv") ||
		strings.Contains(venue, "medrxiv") {
		return "article"
	}

	// Conference proceedings
	if strings.Contains(venue, "proceedings") ||
		strings.Contains(venue, "conference") ||
		strings.Contains(venue, "workshop") ||
		strings.Contains(venue, "symposium") {
		return "inproceedings"
	}

	// Default to article
	return "article"
}

// formatAuthors joins author names in BibTeX style with " and ".
func formatAuthors(authors []string) string {
	var formatted []string
	for _, a := range authors {
		a = strings.TrimSpace(a)
		if a == "" {
			continue
		}
		formatted = append(formatted, escapeLatex(a))
	}
	return strings.Join(formatted, " and ")
}

// escapeLatex escapes special LaTeX characters.
func escapeLatex(s string) string {
	// Order matters: & must be first (before other escapes that might produce &)
	replacer := strings.NewReplacer(
		"&", `\&`,
		"%", `\%`,
		"$", `\$`,
		"#", `\#`,
		"_", `\_`,
		"{", `\{`,
		"}", `\}`,
		"~", `\textasciitilde{}`,
		"^", `\textasciicircum{}`,
	)
	return replacer.Replace(s)
}
