package ranker

import (
	"math"

	"github.com/codegraph-dev/engine/graph"
)

const (
	defaultDamping   = 0.85
	defaultTolerance = 1e-6
	defaultMaxIter   = 100
)

// rankPageRank adapts the teacher's file-level PageRank
// (_examples/petar-djukic-go-coder/internal/repomap/pagerank.go) to rank
// every node in the graph directly rather than rolling definitions up to
// their containing file: there is no personalization vector here (the
// teacher's was driven by a CLI flag this engine has no equivalent of), so
// teleportation and dangling-mass redistribution are both uniform over all
// n nodes, satisfying spec.md §4.7's "disconnected components must each
// receive positive mass" requirement directly.
func rankPageRank(g *graph.CodeGraph, cfg Config) *graph.RankedCodeGraph {
	damping := cfg.Damping
	if damping == 0 {
		damping = defaultDamping
	}
	tolerance := cfg.Tolerance
	if tolerance == 0 {
		tolerance = defaultTolerance
	}
	maxIter := cfg.MaxIterations
	if maxIter == 0 {
		maxIter = defaultMaxIter
	}

	ranks := map[string]float64{}
	n := len(g.Nodes)
	if n == 0 {
		return &graph.RankedCodeGraph{CodeGraph: g, Ranks: ranks}
	}

	ids := make([]string, 0, n)
	for id := range g.Nodes {
		ids = append(ids, id)
	}
	idx := make(map[string]int, n)
	for i, id := range ids {
		idx[id] = i
	}

	type outEdge struct {
		to     int
		weight float64
	}
	outEdges := make([][]outEdge, n)
	outWeight := make([]float64, n)

	for _, e := range g.Edges {
		fromIdx, okF := idx[e.FromID]
		toIdx, okT := idx[e.ToID]
		if !okF || !okT {
			continue
		}
		outEdges[fromIdx] = append(outEdges[fromIdx], outEdge{to: toIdx, weight: 1})
		outWeight[fromIdx]++
	}

	teleport := 1.0 / float64(n)
	rank := make([]float64, n)
	for i := range rank {
		rank[i] = teleport
	}

	newRank := make([]float64, n)
	for iter := 0; iter < maxIter; iter++ {
		for i := range newRank {
			newRank[i] = (1.0 - damping) * teleport
		}

		for i := 0; i < n; i++ {
			if outWeight[i] == 0 {
				// Dangling node: redistribute its mass uniformly (spec.md
				// §4.7's dangling-node handling).
				share := damping * rank[i] * teleport
				for j := range newRank {
					newRank[j] += share
				}
				continue
			}
			for _, e := range outEdges[i] {
				newRank[e.to] += damping * rank[i] * (e.weight / outWeight[i])
			}
		}

		diff := 0.0
		for i := range rank {
			diff += math.Abs(newRank[i] - rank[i])
		}
		copy(rank, newRank)
		if diff < tolerance {
			break
		}
	}

	for i, id := range ids {
		ranks[id] = rank[i]
	}
	return &graph.RankedCodeGraph{CodeGraph: g, Ranks: ranks}
}
