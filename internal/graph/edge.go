package graph

import "errors"

// EdgeType identifies the relationship an edge encodes.
type EdgeType string

// The closed set of edge types. Authorship is the only relationship with
// meaningful direction; the layout treats all edges as undirected.
const (
	EdgeAuthored        EdgeType = "authored"
	EdgeUsesMaterial    EdgeType = "uses_material"
	EdgeStudiesOrganism EdgeType = "studies_organism"
	EdgeRelatedTo       EdgeType = "related_to"
	EdgeCites           EdgeType = "cites"
)

// Validation errors.
var (
	ErrEmptySource     = errors.New("edge source is required")
	ErrEmptyTarget     = errors.New("edge target is required")
	ErrInvalidStrength = errors.New("edge strength must be in (0, 1]")
	ErrSelfEdge        = errors.New("edge source and target cannot be the same")
)

// Edge represents a typed relationship between two nodes. Strength is the
// attraction weight used by the layout and always lies in (0, 1].
type Edge struct {
	Source   string   `json:"source"`
	Target   string   `json:"target"`
	Type     EdgeType `json:"type"`
	Strength float64  `json:"strength"`
}

// NewEdge constructs a validated edge. Strength values above 1 are clamped
// to 1; values at or below 0 are rejected.
func NewEdge(source, target string, t EdgeType, strength float64) (Edge, error) {
	if source == "" {
		return Edge{}, ErrEmptySource
	}
	if target == "" {
		return Edge{}, ErrEmptyTarget
	}
	if source == target {
		return Edge{}, ErrSelfEdge
	}
	if strength <= 0 {
		return Edge{}, ErrInvalidStrength
	}
	if strength > 1 {
		strength = 1
	}
	return Edge{Source: source, Target: target, Type: t, Strength: strength}, nil
}

// Key returns the unique identity tuple for this edge.
func (e Edge) Key() EdgeKey {
	return EdgeKey{Source: e.Source, Target: e.Target, Type: e.Type}
}

// EdgeKey represents the unique identity of an edge.
type EdgeKey struct {
	Source string
	Target string
	Type   EdgeType
}
