// Package record defines the core domain type for bibliographic paper records.
package record

// PaperRecord represents a single research paper as ingested from a record
// source. Every field beyond Title is optional; absent fields contribute
// nothing to the entity graph.
type PaperRecord struct {
	// Identity
	ID  string `json:"id"`            // Internal stable identifier (from citekey)
	DOI string `json:"doi,omitempty"` // Digital Object Identifier (primary deduplication key)

	// Metadata
	Title    string `json:"title"`
	Abstract string `json:"abstract,omitempty"`
	Venue    string `json:"venue,omitempty"`
	Year     int    `json:"year,omitempty"`

	// Entity-bearing fields. These arrive in the wild as native JSON
	// arrays, JSON-encoded array strings, or bare scalars; StringList
	// normalizes all three shapes at unmarshal time.
	Authors          StringList `json:"authors,omitempty"`
	AnodeMaterials   StringList `json:"anode_materials,omitempty"`
	CathodeMaterials StringList `json:"cathode_materials,omitempty"`
	Organisms        StringList `json:"organism_types,omitempty"`
	Keywords         StringList `json:"keywords,omitempty"`
	SystemType       string     `json:"system_type,omitempty"`

	// Import Tracking
	Source ImportSource `json:"source,omitempty"`
}

// ImportSource tracks where a record was imported from.
type ImportSource struct {
	Type string `json:"type,omitempty"` // json, pdf, crossref, manual
	ID   string `json:"id,omitempty"`   // Original ID from source system
}

// Materials returns the combined anode and cathode material lists.
func (r *PaperRecord) Materials() []string {
	if len(r.AnodeMaterials) == 0 {
		return r.CathodeMaterials
	}
	if len(r.CathodeMaterials) == 0 {
		return r.AnodeMaterials
	}
	out := make([]string, 0, len(r.AnodeMaterials)+len(r.CathodeMaterials))
	out = append(out, r.AnodeMaterials...)
	out = append(out, r.CathodeMaterials...)
	return out
}
