package record

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestStringList_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want StringList
	}{
		{"native array", `["a", "b"]`, StringList{"a", "b"}},
		{"empty array", `[]`, StringList{}},
		{"json-encoded array string", `"[\"graphene\", \"carbon felt\"]"`, StringList{"graphene", "carbon felt"}},
		{"bare scalar string", `"graphene"`, StringList{"graphene"}},
		{"scalar number", `42`, StringList{"42"}},
		{"null", `null`, nil},
		{"empty string", `""`, nil},
		{"broken encoded array falls back to raw", `"[\"unclosed"`, StringList{`["unclosed`}},
		{"mixed array", `["a", 2]`, StringList{"a", "2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got StringList
			if err := json.Unmarshal([]byte(tt.in), &got); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestPaperRecord_UnmarshalMixedShapes(t *testing.T) {
	data := []byte(`{
		"title": "Electricity from mud",
		"authors": "[\"Jane Doe\", \"John Roe\"]",
		"anode_materials": ["graphene"],
		"cathode_materials": "platinum mesh",
		"keywords": ["mfc", "sediment"],
		"system_type": "Sediment MFC"
	}`)

	var r PaperRecord
	if err := json.Unmarshal(data, &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if len(r.Authors) != 2 || r.Authors[0] != "Jane Doe" {
		t.Errorf("authors = %v", r.Authors)
	}
	if len(r.AnodeMaterials) != 1 || r.AnodeMaterials[0] != "graphene" {
		t.Errorf("anode materials = %v", r.AnodeMaterials)
	}
	if len(r.CathodeMaterials) != 1 || r.CathodeMaterials[0] != "platinum mesh" {
		t.Errorf("cathode materials = %v", r.CathodeMaterials)
	}
}

func TestPaperRecord_Materials(t *testing.T) {
	r := PaperRecord{
		AnodeMaterials:   StringList{"graphene"},
		CathodeMaterials: StringList{"platinum"},
	}
	got := r.Materials()
	want := []string{"graphene", "platinum"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Materials() = %v, want %v", got, want)
	}

	r = PaperRecord{AnodeMaterials: StringList{"graphene"}}
	if got := r.Materials(); len(got) != 1 || got[0] != "graphene" {
		t.Errorf("Materials() = %v, want [graphene]", got)
	}
}
