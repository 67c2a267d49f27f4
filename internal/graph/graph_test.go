package graph

import (
	"errors"
	"testing"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercase passthrough", "graphene", "graphene"},
		{"uppercase folded", "Graphene", "graphene"},
		{"internal spaces collapse", "carbon  felt", "carbon_felt"},
		{"mixed whitespace", " Carbon\tFelt ", "carbon_felt"},
		{"already separated", "jane doe", "jane_doe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeName(tt.in); got != tt.want {
				t.Errorf("NormalizeName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNewEdge(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		target   string
		strength float64
		wantErr  error
		want     float64
	}{
		{"valid", "a", "b", 0.5, nil, 0.5},
		{"clamped above one", "a", "b", 2.5, nil, 1},
		{"exactly one", "a", "b", 1, nil, 1},
		{"zero strength rejected", "a", "b", 0, ErrInvalidStrength, 0},
		{"negative strength rejected", "a", "b", -0.1, ErrInvalidStrength, 0},
		{"empty source", "", "b", 1, ErrEmptySource, 0},
		{"empty target", "a", "", 1, ErrEmptyTarget, 0},
		{"self edge", "a", "a", 1, ErrSelfEdge, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := NewEdge(tt.source, tt.target, EdgeRelatedTo, tt.strength)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if err == nil && e.Strength != tt.want {
				t.Errorf("strength = %g, want %g", e.Strength, tt.want)
			}
		})
	}
}

func TestNodeType_SeedWeight(t *testing.T) {
	tests := []struct {
		nodeType NodeType
		want     float64
	}{
		{NodePaper, 5},
		{NodeAuthor, 2},
		{NodeMaterial, 3},
		{NodeOrganism, 3},
		{NodeConcept, 1},
		{NodeMethod, 2},
	}

	for _, tt := range tests {
		if got := tt.nodeType.SeedWeight(); got != tt.want {
			t.Errorf("%s seed weight = %g, want %g", tt.nodeType, got, tt.want)
		}
	}
}

func TestGraph_AddEdgeDropsDangling(t *testing.T) {
	g := New()
	g.Upsert(NodePaper, "Paper A")

	if g.AddEdge("paper_paper_a", "material_graphene", EdgeUsesMaterial, 1) {
		t.Error("edge to absent node was kept")
	}
	if len(g.Edges) != 0 {
		t.Errorf("edges = %d, want 0", len(g.Edges))
	}
}

func TestFilter(t *testing.T) {
	g := New()
	paper := g.Upsert(NodePaper, "Paper A")
	author := g.Upsert(NodeAuthor, "Jane Doe")
	material := g.Upsert(NodeMaterial, "graphene")
	g.AddEdge(author, paper, EdgeAuthored, 1)
	g.AddEdge(paper, material, EdgeUsesMaterial, 1)

	tests := []struct {
		name      string
		target    NodeType
		wantNodes int
		wantEdges int
	}{
		{"material view keeps papers and materials", NodeMaterial, 2, 1},
		{"author view keeps papers and authors", NodeAuthor, 2, 1},
		{"organism view keeps only papers", NodeOrganism, 1, 0},
		{"all is a no-op", "", 3, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(g, tt.target)
			if len(got.Nodes) != tt.wantNodes {
				t.Errorf("nodes = %d, want %d", len(got.Nodes), tt.wantNodes)
			}
			if len(got.Edges) != tt.wantEdges {
				t.Errorf("edges = %d, want %d", len(got.Edges), tt.wantEdges)
			}
			for _, e := range got.Edges {
				if _, ok := got.Lookup(e.Source); !ok {
					t.Errorf("dangling edge source %s after filter", e.Source)
				}
				if _, ok := got.Lookup(e.Target); !ok {
					t.Errorf("dangling edge target %s after filter", e.Target)
				}
			}
		})
	}
}

func TestParseFilter(t *testing.T) {
	tests := []struct {
		in      string
		want    NodeType
		wantErr bool
	}{
		{"all", "", false},
		{"", "", false},
		{"material", NodeMaterial, false},
		{"organism", NodeOrganism, false},
		{"author", NodeAuthor, false},
		{"paper", "", true},
		{"bogus", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFilter(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFilter(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFilter(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
