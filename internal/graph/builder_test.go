package graph

import (
	"testing"

	"github.com/ewsmith/papergraph/internal/record"
)

func TestBuild_ExampleScenario(t *testing.T) {
	records := []record.PaperRecord{
		{Title: "Paper A", Authors: record.StringList{"Jane Doe"}, AnodeMaterials: record.StringList{"graphene"}},
		{Title: "Paper B", Authors: record.StringList{"Jane Doe"}, AnodeMaterials: record.StringList{"graphene"}},
	}

	g := Build(records, DefaultBuildOptions())

	if got := len(g.Nodes); got != 4 {
		t.Fatalf("node count = %d, want 4", got)
	}

	wantIDs := []string{"paper_paper_a", "paper_paper_b", "author_jane_doe", "material_graphene"}
	for _, id := range wantIDs {
		if _, ok := g.Lookup(id); !ok {
			t.Errorf("missing node %s", id)
		}
	}

	graphene, _ := g.Lookup("material_graphene")
	if graphene.Weight != 6 {
		t.Errorf("graphene weight = %g, want 6 (seeded twice)", graphene.Weight)
	}

	jane, _ := g.Lookup("author_jane_doe")
	if jane.Weight != 4 {
		t.Errorf("author weight = %g, want 4 (seeded twice)", jane.Weight)
	}

	// A single material cannot co-occur with itself: no self edge.
	for _, e := range g.Edges {
		if e.Source == e.Target {
			t.Errorf("self edge on %s", e.Source)
		}
		if e.Source == "material_graphene" && e.Target == "material_graphene" {
			t.Errorf("self-referential material edge")
		}
	}
}

func TestBuild_DedupIsCaseAndWhitespaceInsensitive(t *testing.T) {
	base := []record.PaperRecord{
		{Title: "Paper A", Authors: record.StringList{"Jane Doe"}, AnodeMaterials: record.StringList{"carbon felt"}},
	}
	perturbed := []record.PaperRecord{
		{Title: "paper  A", Authors: record.StringList{"JANE   DOE"}, AnodeMaterials: record.StringList{"Carbon  Felt"}},
	}

	a := Build(base, DefaultBuildOptions())
	b := Build(perturbed, DefaultBuildOptions())

	if len(a.Nodes) != len(b.Nodes) {
		t.Fatalf("node counts differ: %d vs %d", len(a.Nodes), len(b.Nodes))
	}
	for i := range a.Nodes {
		if a.Nodes[i].ID != b.Nodes[i].ID {
			t.Errorf("node %d id = %s vs %s", i, a.Nodes[i].ID, b.Nodes[i].ID)
		}
		if a.Nodes[i].Weight != b.Nodes[i].Weight {
			t.Errorf("node %s weight = %g vs %g", a.Nodes[i].ID, a.Nodes[i].Weight, b.Nodes[i].Weight)
		}
	}
}

func TestBuild_UnspecifiedSentinelSkipped(t *testing.T) {
	records := []record.PaperRecord{
		{Title: "Paper A", AnodeMaterials: record.StringList{"not specified"}},
		{Title: "Paper B", AnodeMaterials: record.StringList{"Not Specified"}},
	}

	g := Build(records, DefaultBuildOptions())

	for _, n := range g.Nodes {
		if n.Type == NodeMaterial {
			t.Errorf("sentinel value produced material node %s", n.ID)
		}
	}
}

func TestBuild_BareRecordStillYieldsPaperNode(t *testing.T) {
	g := Build([]record.PaperRecord{{Title: "Lonely Paper"}}, DefaultBuildOptions())

	if len(g.Nodes) != 1 {
		t.Fatalf("node count = %d, want 1", len(g.Nodes))
	}
	if g.Nodes[0].Type != NodePaper {
		t.Errorf("node type = %s, want paper", g.Nodes[0].Type)
	}
	if g.Nodes[0].Weight != 5 {
		t.Errorf("paper weight = %g, want 5", g.Nodes[0].Weight)
	}
	if len(g.Edges) != 0 {
		t.Errorf("edge count = %d, want 0", len(g.Edges))
	}
}

func TestBuild_KeywordCap(t *testing.T) {
	records := []record.PaperRecord{
		{Title: "P", Keywords: record.StringList{"k1", "k2", "k3", "k4", "k5"}},
	}

	g := Build(records, DefaultBuildOptions())

	concepts := 0
	for _, n := range g.Nodes {
		if n.Type == NodeConcept {
			concepts++
		}
	}
	if concepts != 3 {
		t.Errorf("concept count = %d, want 3 (leading keywords only)", concepts)
	}
}

func TestBuild_SystemTypeBecomesMethodNode(t *testing.T) {
	records := []record.PaperRecord{
		{Title: "P", SystemType: "Microbial Fuel Cell"},
	}

	g := Build(records, DefaultBuildOptions())

	method, ok := g.Lookup("method_microbial_fuel_cell")
	if !ok {
		t.Fatal("missing method node")
	}
	if method.Weight != 2 {
		t.Errorf("method weight = %g, want 2", method.Weight)
	}

	if len(g.Edges) != 1 || g.Edges[0].Type != EdgeRelatedTo {
		t.Fatalf("edges = %+v, want single related_to edge", g.Edges)
	}
}

func TestBuild_MaterialCoOccurrence(t *testing.T) {
	// graphene + carbon_felt share two papers: above the default
	// threshold of 1, so a synthesized edge appears. graphene +
	// stainless_steel share only one: no edge.
	records := []record.PaperRecord{
		{Title: "P1", AnodeMaterials: record.StringList{"graphene", "carbon felt"}},
		{Title: "P2", AnodeMaterials: record.StringList{"graphene"}, CathodeMaterials: record.StringList{"carbon felt"}},
		{Title: "P3", AnodeMaterials: record.StringList{"graphene", "stainless steel"}},
	}

	g := Build(records, DefaultBuildOptions())

	var coEdges []Edge
	for _, e := range g.Edges {
		if e.Type == EdgeRelatedTo {
			coEdges = append(coEdges, e)
		}
	}
	if len(coEdges) != 1 {
		t.Fatalf("co-occurrence edges = %d, want 1", len(coEdges))
	}

	e := coEdges[0]
	if e.Source != "material_carbon_felt" || e.Target != "material_graphene" {
		t.Errorf("co-occurrence edge %s -> %s, want material_carbon_felt -> material_graphene", e.Source, e.Target)
	}
	if e.Strength != 0.4 {
		t.Errorf("strength = %g, want 0.4 (2 shared papers * 0.2)", e.Strength)
	}
}

func TestBuild_CoOccurrenceStrengthClamped(t *testing.T) {
	var records []record.PaperRecord
	titles := []string{"P1", "P2", "P3", "P4", "P5", "P6", "P7"}
	for _, title := range titles {
		records = append(records, record.PaperRecord{
			Title:          title,
			AnodeMaterials: record.StringList{"graphene", "carbon felt"},
		})
	}

	g := Build(records, DefaultBuildOptions())

	for _, e := range g.Edges {
		if e.Strength > 1 {
			t.Errorf("edge %s -> %s strength %g exceeds 1", e.Source, e.Target, e.Strength)
		}
	}
}

func TestBuild_NoDanglingEdges(t *testing.T) {
	records := []record.PaperRecord{
		{Title: "P1", Authors: record.StringList{"A B"}, Organisms: record.StringList{"Shewanella"}},
		{Title: "P2", Keywords: record.StringList{"electrogenesis"}, SystemType: "MEC"},
	}

	g := Build(records, DefaultBuildOptions())

	for _, e := range g.Edges {
		if _, ok := g.Lookup(e.Source); !ok {
			t.Errorf("edge source %s missing from node set", e.Source)
		}
		if _, ok := g.Lookup(e.Target); !ok {
			t.Errorf("edge target %s missing from node set", e.Target)
		}
	}
}

func TestBuild_WeightMonotonicity(t *testing.T) {
	records := []record.PaperRecord{
		{Title: "P1", Authors: record.StringList{"Jane Doe"}},
		{Title: "P2", Authors: record.StringList{"Jane Doe"}},
		{Title: "P3", Authors: record.StringList{"Jane Doe"}},
	}

	prev := 0.0
	for n := 1; n <= len(records); n++ {
		g := Build(records[:n], DefaultBuildOptions())
		jane, ok := g.Lookup("author_jane_doe")
		if !ok {
			t.Fatalf("missing author node at prefix %d", n)
		}
		if jane.Weight < prev {
			t.Errorf("weight decreased: %g -> %g at prefix %d", prev, jane.Weight, n)
		}
		prev = jane.Weight
	}
}

func TestBuild_ConfigurableThreshold(t *testing.T) {
	records := []record.PaperRecord{
		{Title: "P1", AnodeMaterials: record.StringList{"graphene", "carbon felt"}},
		{Title: "P2", AnodeMaterials: record.StringList{"graphene", "carbon felt"}},
	}

	opts := DefaultBuildOptions()
	opts.CoOccurrenceThreshold = 2

	g := Build(records, opts)
	for _, e := range g.Edges {
		if e.Type == EdgeRelatedTo {
			t.Errorf("unexpected co-occurrence edge below raised threshold: %+v", e)
		}
	}
}
