package graph

import (
	"sort"
	"strings"

	"github.com/ewsmith/papergraph/internal/record"
)

// BuildOptions controls entity extraction.
type BuildOptions struct {
	// Unspecified is the sentinel value marking an absent field in source
	// data. Matches are case-insensitive and contribute no node.
	Unspecified string

	// MaxKeywords caps how many leading keywords become concept nodes.
	MaxKeywords int

	// CoOccurrenceThreshold is the number of shared papers two materials
	// must exceed before a related_to edge is synthesized between them.
	CoOccurrenceThreshold int
}

// DefaultBuildOptions returns the standard extraction settings.
func DefaultBuildOptions() BuildOptions {
	return BuildOptions{
		Unspecified:           "not specified",
		MaxKeywords:           3,
		CoOccurrenceThreshold: 1,
	}
}

// coOccurrenceStep is the strength contributed per shared paper when
// synthesizing material-material edges, capped at 1.
const coOccurrenceStep = 0.2

// Build constructs an entity graph from a batch of paper records. It is a
// pure transformation: no I/O, no shared state, and a fresh graph on every
// call. Malformed or missing fields contribute nothing; a record with no
// extractable fields still yields its paper node.
func Build(records []record.PaperRecord, opts BuildOptions) *Graph {
	if opts.MaxKeywords == 0 {
		opts.MaxKeywords = DefaultBuildOptions().MaxKeywords
	}
	if opts.Unspecified == "" {
		opts.Unspecified = DefaultBuildOptions().Unspecified
	}

	g := New()
	b := &builder{g: g, opts: opts, seen: make(map[EdgeKey]bool), materialPapers: make(map[string]map[string]bool)}

	for _, r := range records {
		b.addRecord(r)
	}
	b.linkCoOccurringMaterials()

	return g
}

// builder accumulates per-build state: edge identity for dedup and the
// material -> papers index driving the co-occurrence pass.
type builder struct {
	g    *Graph
	opts BuildOptions
	seen map[EdgeKey]bool

	// material node id -> set of paper node ids using it
	materialPapers map[string]map[string]bool
}

func (b *builder) addRecord(r record.PaperRecord) {
	title := strings.TrimSpace(r.Title)
	if title == "" {
		title = strings.TrimSpace(r.ID)
	}
	if title == "" {
		return // nothing to anchor entities to
	}
	paperID := b.g.Upsert(NodePaper, title)

	for _, author := range r.Authors {
		if b.skip(author) {
			continue
		}
		authorID := b.g.Upsert(NodeAuthor, author)
		b.link(authorID, paperID, EdgeAuthored)
	}

	for _, material := range r.Materials() {
		if b.skip(material) {
			continue
		}
		materialID := b.g.Upsert(NodeMaterial, material)
		b.link(paperID, materialID, EdgeUsesMaterial)
		b.recordMaterialUse(materialID, paperID)
	}

	for _, organism := range r.Organisms {
		if b.skip(organism) {
			continue
		}
		organismID := b.g.Upsert(NodeOrganism, organism)
		b.link(paperID, organismID, EdgeStudiesOrganism)
	}

	for i, keyword := range r.Keywords {
		if i >= b.opts.MaxKeywords {
			break
		}
		if b.skip(keyword) {
			continue
		}
		conceptID := b.g.Upsert(NodeConcept, keyword)
		b.link(paperID, conceptID, EdgeRelatedTo)
	}

	if !b.skip(r.SystemType) {
		methodID := b.g.Upsert(NodeMethod, r.SystemType)
		b.link(paperID, methodID, EdgeRelatedTo)
	}
}

// skip reports whether a field value is empty or the "unspecified" sentinel.
func (b *builder) skip(value string) bool {
	v := strings.TrimSpace(value)
	return v == "" || strings.EqualFold(v, b.opts.Unspecified)
}

// link adds a direct record edge once per (source, target, type) identity.
func (b *builder) link(source, target string, t EdgeType) {
	key := EdgeKey{Source: source, Target: target, Type: t}
	if b.seen[key] {
		return
	}
	if b.g.AddEdge(source, target, t, 1) {
		b.seen[key] = true
	}
}

func (b *builder) recordMaterialUse(materialID, paperID string) {
	papers := b.materialPapers[materialID]
	if papers == nil {
		papers = make(map[string]bool)
		b.materialPapers[materialID] = papers
	}
	papers[paperID] = true
}

// linkCoOccurringMaterials synthesizes related_to edges between material
// pairs that co-occur in more than CoOccurrenceThreshold papers, with
// strength proportional to the co-occurrence count. This densifies the graph
// with second-order relationships not explicit in any single record.
func (b *builder) linkCoOccurringMaterials() {
	ids := make([]string, 0, len(b.materialPapers))
	for id := range b.materialPapers {
		ids = append(ids, id)
	}
	sort.Strings(ids) // stable edge order regardless of map iteration

	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			count := sharedPapers(b.materialPapers[ids[i]], b.materialPapers[ids[j]])
			if count <= b.opts.CoOccurrenceThreshold {
				continue
			}
			strength := float64(count) * coOccurrenceStep
			if strength > 1 {
				strength = 1
			}
			b.g.AddEdge(ids[i], ids[j], EdgeRelatedTo, strength)
		}
	}
}

func sharedPapers(a, b map[string]bool) int {
	if len(b) < len(a) {
		a, b = b, a
	}
	count := 0
	for paper := range a {
		if b[paper] {
			count++
		}
	}
	return count
}
