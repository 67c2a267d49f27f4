package viz

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/ewsmith/papergraph/internal/graph"
)

func testNodes() []graph.Node {
	return []graph.Node{
		{ID: "paper_paper_a", Name: "Paper A", Type: graph.NodePaper, Weight: 5, Position: &graph.Position{X: 100, Y: 200}},
		{ID: "material_graphene", Name: "graphene", Type: graph.NodeMaterial, Weight: 6, Position: &graph.Position{X: 300, Y: 120}},
	}
}

func testEdges() []graph.Edge {
	return []graph.Edge{
		{Source: "paper_paper_a", Target: "material_graphene", Type: graph.EdgeUsesMaterial, Strength: 1},
	}
}

func TestToCytoscapeJSON(t *testing.T) {
	out, err := ToCytoscapeJSON(testNodes(), testEdges())
	if err != nil {
		t.Fatalf("convert: %v", err)
	}

	var elements CytoscapeElements
	if err := json.Unmarshal([]byte(out), &elements); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if len(elements.Nodes) != 2 {
		t.Fatalf("nodes = %d, want 2", len(elements.Nodes))
	}
	if len(elements.Edges) != 1 {
		t.Fatalf("edges = %d, want 1", len(elements.Edges))
	}

	paper := elements.Nodes[0]
	if paper.Position == nil || paper.Position.X != 100 || paper.Position.Y != 200 {
		t.Errorf("paper position = %+v, want preset 100,200", paper.Position)
	}
	if paper.Data.Color == "" {
		t.Error("paper node has no color")
	}
	if paper.Data.Size <= 0 {
		t.Error("paper node has no size")
	}

	e := elements.Edges[0]
	if e.Data.Source != "paper_paper_a" || e.Data.Target != "material_graphene" {
		t.Errorf("edge = %+v", e.Data)
	}
	if e.Data.ID == "" {
		t.Error("edge has no id")
	}
}

func TestNodeColor_CoversAllTypes(t *testing.T) {
	seen := make(map[string]bool)
	for _, nt := range graph.NodeTypes {
		c := nodeColor(nt)
		if c == "" {
			t.Errorf("no color for type %s", nt)
		}
		if seen[c] {
			t.Errorf("duplicate color %s for type %s", c, nt)
		}
		seen[c] = true
	}
}

func TestGenerateHTML(t *testing.T) {
	html, err := GenerateHTML(testNodes(), testEdges(), DefaultOptions())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	for _, want := range []string{"cytoscape", "paper_paper_a", "material_graphene", `"preset"`} {
		if !strings.Contains(html, want) {
			t.Errorf("html missing %q", want)
		}
	}
}

func TestGenerateHTML_ScriptTag(t *testing.T) {
	opts := DefaultOptions()
	html, err := GenerateHTML(testNodes(), testEdges(), opts)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(html, "unpkg.com/cytoscape") {
		t.Error("online page should load Cytoscape from the CDN")
	}

	opts.Offline = true
	html, err = GenerateHTML(testNodes(), testEdges(), opts)
	if err != nil {
		t.Fatalf("generate offline: %v", err)
	}
	if strings.Contains(html, "unpkg.com/cytoscape") {
		t.Error("offline page should not reference the CDN")
	}
}

func TestGenerateHTML_Empty(t *testing.T) {
	html, err := GenerateHTML(nil, nil, DefaultOptions())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(html, "No graph data") {
		t.Error("empty state not rendered")
	}
}

func TestGenerateHTML_InvalidLayout(t *testing.T) {
	opts := DefaultOptions()
	opts.Layout = "spiral"
	if _, err := GenerateHTML(testNodes(), testEdges(), opts); err == nil {
		t.Fatal("expected error for invalid layout")
	}
}
