package ranker

import (
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"

	"github.com/codegraph-dev/engine/graph"
)

const defaultMaxCommits = 500

// rankChangeFrequency adapts the teacher's git-history walk
// (_examples/jabafett-quill/internal/utils/helpers/history.go's
// HistoryAnalyzer.AnalyzeHistory: git.PlainOpen + repo.Log +
// commitIter.ForEach + commit.Stats()) from "build a ChangePattern per
// path" down to spec.md §4.7's simpler contract: count each file path's
// distinct appearances across the last N commits, then rank = count/max.
// A VCS failure downgrades to all-zero ranks rather than failing the run
// (graph.VcsUnavailable, logged at warn).
func rankChangeFrequency(g *graph.CodeGraph, cfg Config, logger graph.Logger) *graph.RankedCodeGraph {
	ranks := make(map[string]float64, len(g.Nodes))
	for id := range g.Nodes {
		ranks[id] = 0
	}

	counts, err := countFileChanges(cfg)
	if err != nil {
		logger.Warnf("%v", &graph.VcsUnavailable{Cause: err})
		return &graph.RankedCodeGraph{CodeGraph: g, Ranks: ranks}
	}

	max := 1
	for _, c := range counts {
		if c > max {
			max = c
		}
	}

	for id, node := range g.Nodes {
		if node.Type != graph.NodeFile {
			continue
		}
		ranks[id] = float64(counts[node.FilePath]) / float64(max)
	}
	return &graph.RankedCodeGraph{CodeGraph: g, Ranks: ranks}
}

// countFileChanges walks the last N commits (N = cfg.MaxCommits, default
// 500) reachable from HEAD and counts each path's distinct appearances —
// once per commit it was touched in, not once per line changed.
func countFileChanges(cfg Config) (map[string]int, error) {
	repoPath := cfg.RepoPath
	if repoPath == "" {
		repoPath = "."
	}
	maxCommits := cfg.MaxCommits
	if maxCommits == 0 {
		maxCommits = defaultMaxCommits
	}

	repo, err := git.PlainOpen(repoPath)
	if err != nil {
		return nil, err
	}
	head, err := repo.Head()
	if err != nil {
		return nil, err
	}
	cIter, err := repo.Log(&git.LogOptions{From: head.Hash(), Order: git.LogOrderCommitterTime})
	if err != nil {
		return nil, err
	}
	defer cIter.Close()

	counts := map[string]int{}
	seen := 0
	err = cIter.ForEach(func(c *object.Commit) error {
		if seen >= maxCommits {
			return storer.ErrStop
		}
		seen++

		stats, err := c.Stats()
		if err != nil {
			return err
		}
		for _, stat := range stats {
			counts[graph.NormalizePath(stat.Name)]++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return counts, nil
}
