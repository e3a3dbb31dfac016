package routing

import (
	"safe-route-service/internal/domain"
	"safe-route-service/internal/geo"
	"safe-route-service/internal/safety"
)

// A weighted edge between two sampled points. Safety is the index
// score of the edge midpoint, fixed at build time so searches over one
// request see a consistent weighting.
type edge struct {
	to          int
	distance    float64
	safetyScore int
}

// Graph over the sampled points of the candidate paths. Nodes are the
// union of all path samples; edges chain consecutive samples within a
// path, plus junction edges linking nodes of different paths that lie
// within the junction radius. Without junctions a single chain admits
// no alternatives; with them a search can switch between candidate
// geometries mid-route.
type Graph struct {
	nodes []domain.Point
	adj   [][]edge
	// pathOf tracks which candidate path contributed each node, so
	// junction edges only bridge different paths.
	pathOf []int
}

// BuildGraph assembles the search graph from the valid candidate
// paths. Edge safety cost comes from the index score at the edge
// midpoint.
func BuildGraph(paths [][]domain.Point, idx *safety.Index, junctionRadiusMeters float64) *Graph {
	g := &Graph{}

	for pi, path := range paths {
		prev := -1
		for _, p := range path {
			id := len(g.nodes)
			g.nodes = append(g.nodes, p)
			g.adj = append(g.adj, nil)
			g.pathOf = append(g.pathOf, pi)

			if prev >= 0 {
				g.link(prev, id, idx)
			}
			prev = id
		}
	}

	// Junction pass: bridge nearby nodes of different paths.
	for i := 0; i < len(g.nodes); i++ {
		for j := i + 1; j < len(g.nodes); j++ {
			if g.pathOf[i] == g.pathOf[j] {
				continue
			}
			if geo.Distance(g.nodes[i], g.nodes[j]) <= junctionRadiusMeters {
				g.link(i, j, idx)
			}
		}
	}

	return g
}

func (g *Graph) link(a, b int, idx *safety.Index) {
	d := geo.Distance(g.nodes[a], g.nodes[b])
	score := safety.NeutralScore
	if idx != nil {
		score = idx.ScoreForPoint(geo.Midpoint(g.nodes[a], g.nodes[b]))
	}
	g.adj[a] = append(g.adj[a], edge{to: b, distance: d, safetyScore: score})
	g.adj[b] = append(g.adj[b], edge{to: a, distance: d, safetyScore: score})
}

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// NearestNode returns the index of the node closest to p, or -1 for an
// empty graph.
func (g *Graph) NearestNode(p domain.Point) int {
	best := -1
	bestDist := 0.0
	for i, n := range g.nodes {
		d := geo.Distance(p, n)
		if best < 0 || d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

// pathPoints converts a node index sequence back to geometry.
func (g *Graph) pathPoints(nodes []int) []domain.Point {
	out := make([]domain.Point, len(nodes))
	for i, n := range nodes {
		out[i] = g.nodes[n]
	}
	return out
}
