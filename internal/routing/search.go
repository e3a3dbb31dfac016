package routing

import (
	"math"

	"safe-route-service/internal/geo"
	"safe-route-service/internal/safety"
)

// SafetyPenalty maps a 0-100 safety score to a distance multiplier in
// [1, 5]; lower safety costs more.
func SafetyPenalty(score int) float64 {
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return 1 + 4*float64(100-score)/100
}

// Result of a single graph search.
type searchResult struct {
	nodes          []int
	distanceMeters float64
	found          bool
}

// fastestPath runs Dijkstra over raw edge distance.
func (g *Graph) fastestPath(from, to int) searchResult {
	if from < 0 || to < 0 || from >= len(g.nodes) || to >= len(g.nodes) {
		return searchResult{}
	}

	dist := make([]float64, len(g.nodes))
	prev := make([]int, len(g.nodes))
	done := make([]bool, len(g.nodes))
	for i := range dist {
		dist[i] = math.Inf(1)
		prev[i] = -1
	}
	dist[from] = 0

	q := newMinQueue()
	q.push(from, 0)

	for q.Len() > 0 {
		cur := q.pop()
		if done[cur.node] {
			continue
		}
		done[cur.node] = true
		if cur.node == to {
			break
		}

		for _, e := range g.adj[cur.node] {
			next := dist[cur.node] + e.distance
			if next < dist[e.to] {
				dist[e.to] = next
				prev[e.to] = cur.node
				q.push(e.to, next)
			}
		}
	}

	if math.IsInf(dist[to], 1) {
		return searchResult{}
	}
	return searchResult{
		nodes:          reconstruct(prev, to),
		distanceMeters: dist[to],
		found:          true,
	}
}

// boundedAStar runs A* with the given edge cost function, pruning any
// node whose accumulated raw distance exceeds maxRawDistance. The
// heuristic is the remaining haversine distance scaled by the safety
// penalty at the examined node, which keeps the search biased away
// from low-score regions.
func (g *Graph) boundedAStar(
	from, to int,
	idx *safety.Index,
	edgeCost func(e edge) float64,
	maxRawDistance float64,
) searchResult {
	if from < 0 || to < 0 || from >= len(g.nodes) || to >= len(g.nodes) {
		return searchResult{}
	}

	goal := g.nodes[to]
	heuristic := func(n int) float64 {
		remaining := geo.Distance(g.nodes[n], goal)
		score := safety.NeutralScore
		if idx != nil {
			score = idx.ScoreForPoint(g.nodes[n])
		}
		return remaining * SafetyPenalty(score)
	}

	cost := make([]float64, len(g.nodes))
	raw := make([]float64, len(g.nodes))
	prev := make([]int, len(g.nodes))
	done := make([]bool, len(g.nodes))
	for i := range cost {
		cost[i] = math.Inf(1)
		raw[i] = math.Inf(1)
		prev[i] = -1
	}
	cost[from] = 0
	raw[from] = 0

	q := newMinQueue()
	q.push(from, heuristic(from))

	for q.Len() > 0 {
		cur := q.pop()
		if done[cur.node] {
			continue
		}
		done[cur.node] = true
		if cur.node == to {
			break
		}

		for _, e := range g.adj[cur.node] {
			nextRaw := raw[cur.node] + e.distance
			if nextRaw > maxRawDistance {
				continue
			}
			nextCost := cost[cur.node] + edgeCost(e)
			if nextCost < cost[e.to] {
				cost[e.to] = nextCost
				raw[e.to] = nextRaw
				prev[e.to] = cur.node
				q.push(e.to, nextCost+heuristic(e.to))
			}
		}
	}

	if math.IsInf(cost[to], 1) {
		return searchResult{}
	}
	return searchResult{
		nodes:          reconstruct(prev, to),
		distanceMeters: raw[to],
		found:          true,
	}
}

// safestPath minimizes distance x safety penalty within the detour
// budget. When nothing within the budget beats the fastest geometry
// this degrades to the fastest result; that fallback is expected
// behavior, not an error.
func (g *Graph) safestPath(from, to int, idx *safety.Index, fastest searchResult, maxExtraMeters float64) searchResult {
	bound := fastest.distanceMeters + maxExtraMeters
	res := g.boundedAStar(from, to, idx, func(e edge) float64 {
		return e.distance * SafetyPenalty(e.safetyScore)
	}, bound)
	if !res.found {
		return fastest
	}
	return res
}

// optimizedPath blends raw distance and safety-weighted distance
// equally, bounded near the midpoint of the fastest and safest totals.
func (g *Graph) optimizedPath(from, to int, idx *safety.Index, fastest, safest searchResult, bufferMeters float64) searchResult {
	bound := (fastest.distanceMeters+safest.distanceMeters)/2 + bufferMeters
	res := g.boundedAStar(from, to, idx, func(e edge) float64 {
		return 0.5*e.distance + 0.5*e.distance*SafetyPenalty(e.safetyScore)
	}, bound)
	if !res.found {
		return fastest
	}
	return res
}

func reconstruct(prev []int, to int) []int {
	var rev []int
	for n := to; n >= 0; n = prev[n] {
		rev = append(rev, n)
	}
	out := make([]int, len(rev))
	for i, n := range rev {
		out[len(rev)-1-i] = n
	}
	return out
}
