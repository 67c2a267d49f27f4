package storage

import (
	"path/filepath"
	"testing"

	"github.com/ewsmith/papergraph/internal/record"
)

func testRecords() []record.PaperRecord {
	return []record.PaperRecord{
		{
			ID:             "doe2023-mfc",
			DOI:            "10.1000/mfc.2023",
			Title:          "Graphene anodes in sediment fuel cells",
			Year:           2023,
			Authors:        record.StringList{"Jane Doe"},
			AnodeMaterials: record.StringList{"graphene"},
			Organisms:      record.StringList{"Shewanella oneidensis"},
			SystemType:     "Sediment MFC",
			Source:         record.ImportSource{Type: "json", ID: "x1"},
		},
		{
			ID:               "roe2024-mec",
			Title:            "Cathode choices for electrolysis cells",
			Year:             2024,
			Authors:          record.StringList{"John Roe", "Jane Doe"},
			CathodeMaterials: record.StringList{"platinum mesh", "stainless steel"},
			Keywords:         record.StringList{"hydrogen", "mec"},
		},
	}
}

func TestJSONL_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.jsonl")

	for _, r := range testRecords() {
		if err := Append(path, r); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := ReadAll(path)
	if err != nil {
		t.Fatalf("read all: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("record count = %d, want 2", len(got))
	}
	if got[0].ID != "doe2023-mfc" || got[1].ID != "roe2024-mec" {
		t.Errorf("ids = %s, %s", got[0].ID, got[1].ID)
	}
	if len(got[0].Authors) != 1 || got[0].Authors[0] != "Jane Doe" {
		t.Errorf("authors = %v", got[0].Authors)
	}
}

func TestJSONL_MissingFileReturnsEmpty(t *testing.T) {
	got, err := ReadAll(filepath.Join(t.TempDir(), "absent.jsonl"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Errorf("got %v, want nil", got)
	}
}

func TestWriteAll_ReplacesContents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.jsonl")
	records := testRecords()

	if err := WriteAll(path, records); err != nil {
		t.Fatalf("write all: %v", err)
	}
	if err := WriteAll(path, records[:1]); err != nil {
		t.Fatalf("rewrite: %v", err)
	}

	got, err := ReadAll(path)
	if err != nil {
		t.Fatalf("read all: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("record count = %d, want 1 after rewrite", len(got))
	}
}

func TestDB_RebuildAndQuery(t *testing.T) {
	dir := t.TempDir()
	jsonlPath := filepath.Join(dir, "records.jsonl")
	if err := WriteAll(jsonlPath, testRecords()); err != nil {
		t.Fatalf("seeding jsonl: %v", err)
	}

	db, err := OpenDB(filepath.Join(dir, "cache.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	n, err := db.RebuildFromJSONL(jsonlPath)
	if err != nil {
		t.Fatalf("rebuild: %v", err)
	}
	if n != 2 {
		t.Errorf("rebuilt %d records, want 2", n)
	}

	count, err := db.Count()
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}

	r, err := db.GetByID("doe2023-mfc")
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if r == nil {
		t.Fatal("record not found")
	}
	if r.SystemType != "Sediment MFC" {
		t.Errorf("system type = %q", r.SystemType)
	}
	if len(r.AnodeMaterials) != 1 || r.AnodeMaterials[0] != "graphene" {
		t.Errorf("anode materials = %v", r.AnodeMaterials)
	}

	byDOI, err := db.GetByDOI("10.1000/mfc.2023")
	if err != nil {
		t.Fatalf("get by doi: %v", err)
	}
	if byDOI == nil || byDOI.ID != "doe2023-mfc" {
		t.Errorf("get by doi = %+v", byDOI)
	}

	missing, err := db.GetByID("nope")
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for missing record, got %+v", missing)
	}

	all, err := db.GetAllRecords()
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("all = %d records, want 2", len(all))
	}
	if all[0].ID > all[1].ID {
		t.Errorf("records not in id order: %s, %s", all[0].ID, all[1].ID)
	}
}
