// Package viz renders a positioned entity graph as an interactive HTML page.
package viz

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/ewsmith/papergraph/internal/graph"
)

// CytoscapeElements represents the Cytoscape.js data format.
type CytoscapeElements struct {
	Nodes []CytoscapeNode `json:"nodes"`
	Edges []CytoscapeEdge `json:"edges"`
}

// CytoscapeNode represents a node in Cytoscape.js format, with a preset
// position when the layout engine has run.
type CytoscapeNode struct {
	Data     CytoscapeNodeData  `json:"data"`
	Position *CytoscapePosition `json:"position,omitempty"`
}

// CytoscapeNodeData contains the node data fields.
type CytoscapeNodeData struct {
	ID     string  `json:"id"`
	Label  string  `json:"label"`
	Type   string  `json:"type"`
	Weight float64 `json:"weight"`
	Color  string  `json:"color"`
	Size   float64 `json:"size"`
}

// CytoscapePosition is a 2D render position (depth is dropped for HTML).
type CytoscapePosition struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// CytoscapeEdge represents an edge in Cytoscape.js format.
type CytoscapeEdge struct {
	Data CytoscapeEdgeData `json:"data"`
}

// CytoscapeEdgeData contains the edge data fields.
type CytoscapeEdgeData struct {
	ID       string  `json:"id"`
	Source   string  `json:"source"`
	Target   string  `json:"target"`
	Type     string  `json:"type"`
	Strength float64 `json:"strength"`
}

// nodeColor maps each node type to its display color. The switch is
// exhaustive over graph.NodeTypes.
func nodeColor(t graph.NodeType) string {
	switch t {
	case graph.NodePaper:
		return "#4e79a7"
	case graph.NodeAuthor:
		return "#f28e2b"
	case graph.NodeMaterial:
		return "#59a14f"
	case graph.NodeOrganism:
		return "#e15759"
	case graph.NodeConcept:
		return "#b07aa1"
	case graph.NodeMethod:
		return "#76b7b2"
	}
	return "#bab0ac"
}

// nodeSize derives a display diameter from accumulated weight; logarithmic
// so heavy hubs don't dwarf the rest.
func nodeSize(weight float64) float64 {
	if weight < 1 {
		weight = 1
	}
	return 14 + 10*math.Log1p(weight)
}

// ToCytoscapeJSON converts nodes and edges to Cytoscape.js JSON. Nodes
// carrying positions become preset coordinates.
func ToCytoscapeJSON(nodes []graph.Node, edges []graph.Edge) (string, error) {
	elements := CytoscapeElements{
		Nodes: make([]CytoscapeNode, 0, len(nodes)),
		Edges: make([]CytoscapeEdge, 0, len(edges)),
	}

	for _, n := range nodes {
		cn := CytoscapeNode{
			Data: CytoscapeNodeData{
				ID:     n.ID,
				Label:  n.Name,
				Type:   string(n.Type),
				Weight: n.Weight,
				Color:  nodeColor(n.Type),
				Size:   nodeSize(n.Weight),
			},
		}
		if n.Position != nil {
			cn.Position = &CytoscapePosition{X: n.Position.X, Y: n.Position.Y}
		}
		elements.Nodes = append(elements.Nodes, cn)
	}

	for i, e := range edges {
		elements.Edges = append(elements.Edges, CytoscapeEdge{
			Data: CytoscapeEdgeData{
				ID:       edgeID(e, i),
				Source:   e.Source,
				Target:   e.Target,
				Type:     string(e.Type),
				Strength: e.Strength,
			},
		})
	}

	jsonBytes, err := json.Marshal(elements)
	if err != nil {
		return "", fmt.Errorf("marshaling Cytoscape elements to JSON: %w", err)
	}
	return string(jsonBytes), nil
}

// edgeID generates a unique edge ID for the current visualization session.
// IDs are based on slice position and are not stable across builds.
func edgeID(e graph.Edge, index int) string {
	return fmt.Sprintf("%s-%s-%s-%d", e.Source, e.Target, e.Type, index)
}
