// Package ranker implements the Ranker (spec.md §4.7, C7): exactly one of
// two strategies — PageRank or git change-frequency — is selected at
// configure time and produces a RankedCodeGraph carrying the same node and
// edge sets as its input.
package ranker

import (
	"github.com/codegraph-dev/engine/graph"
)

// Strategy names accepted by Config.Strategy.
const (
	StrategyPageRank        = "pagerank"
	StrategyChangeFrequency = "git-changes"
)

// Config selects and tunes a ranking strategy.
type Config struct {
	Strategy string `yaml:"strategy"`

	// PageRank tuning; zero values fall back to the documented defaults.
	Damping       float64 `yaml:"damping"`
	Tolerance     float64 `yaml:"tolerance"`
	MaxIterations int     `yaml:"maxIterations"`

	// Change-frequency tuning.
	RepoPath   string `yaml:"repoPath"`   // working tree root; defaults to "."
	MaxCommits int    `yaml:"maxCommits"` // last N commits; defaults to 500
}

// Rank dispatches to the configured strategy. An unrecognized strategy name
// is a fatal configuration error (graph.InvalidConfig), surfaced before any
// ranking work begins.
func Rank(g *graph.CodeGraph, cfg Config, logger graph.Logger) (*graph.RankedCodeGraph, error) {
	if logger == nil {
		logger = graph.NopLogger{}
	}
	switch cfg.Strategy {
	case StrategyPageRank:
		return rankPageRank(g, cfg), nil
	case StrategyChangeFrequency:
		return rankChangeFrequency(g, cfg, logger), nil
	default:
		return nil, &graph.InvalidConfig{Field: "Strategy", Reason: "must be \"pagerank\" or \"git-changes\""}
	}
}
