// Package graph defines the entity graph built from paper records: typed,
// weighted nodes and typed, weighted edges.
package graph

import (
	"fmt"
	"strings"
)

// NodeType identifies the kind of entity a node represents.
type NodeType string

// The closed set of node types. Type-dependent behavior (seed weights,
// colors, size formulas) switches exhaustively over these.
const (
	NodePaper    NodeType = "paper"
	NodeAuthor   NodeType = "author"
	NodeMaterial NodeType = "material"
	NodeOrganism NodeType = "organism"
	NodeConcept  NodeType = "concept"
	NodeMethod   NodeType = "method"
)

// NodeTypes lists all valid node types in a stable order.
var NodeTypes = []NodeType{NodePaper, NodeAuthor, NodeMaterial, NodeOrganism, NodeConcept, NodeMethod}

// Valid reports whether t is one of the known node types.
func (t NodeType) Valid() bool {
	switch t {
	case NodePaper, NodeAuthor, NodeMaterial, NodeOrganism, NodeConcept, NodeMethod:
		return true
	}
	return false
}

// SeedWeight returns the weight contributed each time an entity of this type
// is encountered in a record.
func (t NodeType) SeedWeight() float64 {
	switch t {
	case NodePaper:
		return 5
	case NodeAuthor:
		return 2
	case NodeMaterial:
		return 3
	case NodeOrganism:
		return 3
	case NodeConcept:
		return 1
	case NodeMethod:
		return 2
	}
	return 0
}

// ParseNodeType converts a string to a NodeType.
func ParseNodeType(s string) (NodeType, error) {
	t := NodeType(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("unknown node type %q", s)
	}
	return t, nil
}

// Node represents one deduplicated entity in the graph.
type Node struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"` // First-seen display form
	Type   NodeType `json:"type"`
	Weight float64  `json:"weight"`

	// Position is populated by the layout engine and absent until then.
	Position *Position `json:"position,omitempty"`
}

// Position is a 2D or 3D coordinate. Z is zero for 2D layouts.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z,omitempty"`
}

// NormalizeName lowercases a display name and collapses internal whitespace
// runs to single underscores, so differently-cased or differently-spaced
// mentions of the same entity map to the same id.
func NormalizeName(name string) string {
	fields := strings.Fields(strings.ToLower(name))
	return strings.Join(fields, "_")
}

// NodeID derives the stable node id for a (type, name) pair.
func NodeID(t NodeType, name string) string {
	return string(t) + "_" + NormalizeName(name)
}
