package graph

import "fmt"

// FilterAll is the no-op filter target.
const FilterAll = "all"

// ValidFilters lists the node-type subsets a view filter accepts.
var ValidFilters = []string{FilterAll, string(NodeMaterial), string(NodeOrganism), string(NodeAuthor)}

// ParseFilter validates a filter name from user input.
func ParseFilter(s string) (NodeType, error) {
	if s == "" || s == FilterAll {
		return "", nil
	}
	t, err := ParseNodeType(s)
	if err != nil {
		return "", err
	}
	switch t {
	case NodeMaterial, NodeOrganism, NodeAuthor:
		return t, nil
	}
	return "", fmt.Errorf("filter must be one of: all, material, organism, author (got %q)", s)
}

// Filter returns a new graph restricted to paper nodes plus nodes of the
// target type, keeping only edges whose both endpoints survive. A zero
// target returns the input graph unchanged.
func Filter(g *Graph, target NodeType) *Graph {
	if target == "" {
		return g
	}

	out := New()
	keep := make(map[string]bool, len(g.Nodes))
	for _, n := range g.Nodes {
		if n.Type == NodePaper || n.Type == target {
			keep[n.ID] = true
			out.index[n.ID] = len(out.Nodes)
			out.Nodes = append(out.Nodes, n)
		}
	}

	for _, e := range g.Edges {
		if keep[e.Source] && keep[e.Target] {
			out.Edges = append(out.Edges, e)
		}
	}

	return out
}
