package layout

import (
	"context"
	"fmt"
	"math"

	"github.com/ewsmith/papergraph/internal/graph"
)

// boundsMargin keeps nodes off the exact canvas edge.
const boundsMargin = 20.0

// minSeparation guards force math against coincident points.
const minSeparation = 1e-6

// vec is the simulation-internal working value for one node. The caller's
// nodes are never aliased; final positions are copied out on return.
type vec struct {
	x, y, z float64
}

// Run computes positions for every node in g and returns a new node slice
// with Position populated. The input graph is treated as immutable. The
// context is checked between iterations, so a caller wrapping Run in a
// cancellable task gets a natural suspension point.
func Run(ctx context.Context, g *graph.Graph, cfg Config) ([]graph.Node, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Resolve edge endpoints to node indices up front. An unresolvable
	// endpoint is a contract breach in the producer, not messy data, so
	// it fails fast rather than being skipped.
	index := make(map[string]int, len(g.Nodes))
	for i, n := range g.Nodes {
		index[n.ID] = i
	}
	type spring struct {
		a, b     int
		strength float64
	}
	springs := make([]spring, 0, len(g.Edges))
	for _, e := range g.Edges {
		a, ok := index[e.Source]
		if !ok {
			return nil, fmt.Errorf("%w: edge references missing node %q", ErrInvalidGraph, e.Source)
		}
		b, ok := index[e.Target]
		if !ok {
			return nil, fmt.Errorf("%w: edge references missing node %q", ErrInvalidGraph, e.Target)
		}
		springs = append(springs, spring{a: a, b: b, strength: e.Strength})
	}

	pos := initialPositions(g.Nodes, cfg)
	vel := make([]vec, len(pos))
	forces := make([]vec, len(pos))
	grid := newGrid(cfg.RepulsionRadius)

	for iter := 0; iter < cfg.Iterations; iter++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		for i := range forces {
			forces[i] = vec{}
		}

		// Repulsion between nearby pairs. The grid restricts the check
		// to neighboring cells; cell and index iteration order is fixed
		// so float accumulation stays reproducible.
		grid.rebuild(pos)
		grid.forEachPair(pos, func(i, j int) {
			applyRepulsion(pos, forces, i, j, cfg)
		})

		// Attraction along edges, in edge order.
		for _, s := range springs {
			applyAttraction(pos, forces, s.a, s.b, s.strength, cfg)
		}

		// Integration, then bounding.
		for i := range pos {
			vel[i].x += forces[i].x
			vel[i].y += forces[i].y
			vel[i].z += forces[i].z

			pos[i].x += vel[i].x * cfg.StepScale
			pos[i].y += vel[i].y * cfg.StepScale
			pos[i].z += vel[i].z * cfg.StepScale

			vel[i].x *= cfg.Damping
			vel[i].y *= cfg.Damping
			vel[i].z *= cfg.Damping

			clamp(&pos[i], cfg)
		}
	}

	// Copy final positions into a fresh node list; velocity is internal
	// and discarded.
	out := make([]graph.Node, len(g.Nodes))
	copy(out, g.Nodes)
	for i := range out {
		p := &graph.Position{X: pos[i].x, Y: pos[i].y}
		if cfg.is3D() {
			p.Z = pos[i].z
		}
		out[i].Position = p
	}
	return out, nil
}

// initialPositions places nodes on a circle around the canvas center, radius
// grown by a weight-derived bonus, at angles evenly dividing the node count.
// Index-based placement makes the start deterministic and non-degenerate
// without any random seed.
func initialPositions(nodes []graph.Node, cfg Config) []vec {
	pos := make([]vec, len(nodes))
	if len(nodes) == 0 {
		return pos
	}

	cx, cy, cz := cfg.Width/2, cfg.Height/2, cfg.Depth/2
	base := math.Min(cfg.Width, cfg.Height) / 4
	step := 2 * math.Pi / float64(len(nodes))

	for i, n := range nodes {
		bonus := n.Weight
		if bonus < 0 {
			bonus = 0
		}
		r := base + bonus
		angle := float64(i) * step
		pos[i].x = cx + r*math.Cos(angle)
		pos[i].y = cy + r*math.Sin(angle)
		if cfg.is3D() {
			// Spread along the depth axis by index so a 3D start is
			// not degenerate in z.
			pos[i].z = cz + (float64(i)/float64(len(nodes))-0.5)*cfg.Depth/2
		}
	}
	return pos
}

// applyRepulsion pushes nodes i and j apart with force inversely proportional
// to their distance, ignoring pairs beyond the cutoff radius.
func applyRepulsion(pos, forces []vec, i, j int, cfg Config) {
	dx := pos[j].x - pos[i].x
	dy := pos[j].y - pos[i].y
	dz := pos[j].z - pos[i].z

	d := math.Sqrt(dx*dx + dy*dy + dz*dz)
	if d > cfg.RepulsionRadius {
		return
	}
	if d < minSeparation {
		// Coincident nodes get a deterministic separation axis.
		dx, dy, dz = minSeparation, 0, 0
		d = minSeparation
	}

	f := cfg.Repulsion / d
	fx := f * dx / d
	fy := f * dy / d
	fz := f * dz / d

	forces[i].x -= fx
	forces[i].y -= fy
	forces[i].z -= fz
	forces[j].x += fx
	forces[j].y += fy
	forces[j].z += fz
}

// applyAttraction pulls the endpoints of an edge together with force
// proportional to distance and edge strength.
func applyAttraction(pos, forces []vec, a, b int, strength float64, cfg Config) {
	dx := pos[b].x - pos[a].x
	dy := pos[b].y - pos[a].y
	dz := pos[b].z - pos[a].z

	d := math.Sqrt(dx*dx + dy*dy + dz*dz)
	if d < minSeparation {
		return
	}

	f := d * cfg.Attraction * strength
	fx := f * dx / d
	fy := f * dy / d
	fz := f * dz / d

	forces[a].x += fx
	forces[a].y += fy
	forces[a].z += fz
	forces[b].x -= fx
	forces[b].y -= fy
	forces[b].z -= fz
}

// clamp keeps a position within the canvas bounds minus a margin, so nodes
// never leave the usable area regardless of force magnitude.
func clamp(p *vec, cfg Config) {
	mx := margin(cfg.Width)
	my := margin(cfg.Height)
	p.x = clampAxis(p.x, mx, cfg.Width-mx)
	p.y = clampAxis(p.y, my, cfg.Height-my)
	if cfg.is3D() {
		mz := margin(cfg.Depth)
		p.z = clampAxis(p.z, mz, cfg.Depth-mz)
	} else {
		p.z = 0
	}
}

// margin shrinks for small canvases so the usable band never collapses.
func margin(extent float64) float64 {
	m := boundsMargin
	if extent < 4*boundsMargin {
		m = extent / 4
	}
	return m
}

func clampAxis(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
