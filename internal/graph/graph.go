package graph

// Graph is the entity graph produced by the builder: a deduplicated node set
// and a typed edge set whose endpoints are guaranteed to exist in the node
// set. Nodes keep their insertion order so downstream consumers (and the
// layout engine's determinism guarantee) never depend on map iteration.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`

	index map[string]int // node id -> index into Nodes
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{index: make(map[string]int)}
}

// IsEmpty reports whether the graph has no nodes.
func (g *Graph) IsEmpty() bool {
	return len(g.Nodes) == 0
}

// Lookup returns the node with the given id, if present.
func (g *Graph) Lookup(id string) (*Node, bool) {
	i, ok := g.index[id]
	if !ok {
		return nil, false
	}
	return &g.Nodes[i], true
}

// Upsert creates a node for (t, name) or, if the normalized entity already
// exists, adds t's seed weight to it. It returns the node id. Weight is
// therefore monotonically non-decreasing over a build pass.
func (g *Graph) Upsert(t NodeType, name string) string {
	id := NodeID(t, name)
	if i, ok := g.index[id]; ok {
		g.Nodes[i].Weight += t.SeedWeight()
		return id
	}
	g.index[id] = len(g.Nodes)
	g.Nodes = append(g.Nodes, Node{
		ID:     id,
		Name:   name,
		Type:   t,
		Weight: t.SeedWeight(),
	})
	return id
}

// AddEdge validates and appends an edge. Edges referencing nodes not present
// in the graph are dropped and reported via the false return, never kept
// dangling.
func (g *Graph) AddEdge(source, target string, t EdgeType, strength float64) bool {
	e, err := NewEdge(source, target, t, strength)
	if err != nil {
		return false
	}
	if _, ok := g.index[e.Source]; !ok {
		return false
	}
	if _, ok := g.index[e.Target]; !ok {
		return false
	}
	g.Edges = append(g.Edges, e)
	return true
}

// reindex rebuilds the id index from the node slice. Used after filtering.
func (g *Graph) reindex() {
	g.index = make(map[string]int, len(g.Nodes))
	for i, n := range g.Nodes {
		g.index[n.ID] = i
	}
}
