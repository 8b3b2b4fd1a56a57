// Package engine wires the Language Registry, Parser Pool, Work Coordinator,
// Symbol Resolver, and Ranker into the single "generate" operation spec.md
// §1 describes: discovered files in, a RankedCodeGraph (or rendered bytes,
// given a Renderer) out. File discovery and rendering stay external
// collaborators (spec.md §1's Non-goals); Config only pins the shapes those
// collaborators must satisfy, the way the teacher's inspector.Factory takes
// an injected afs.Service rather than reading files itself.
package engine

import (
	"context"
	"fmt"

	"github.com/codegraph-dev/engine/coordinator"
	"github.com/codegraph-dev/engine/grammarpool"
	"github.com/codegraph-dev/engine/graph"
	"github.com/codegraph-dev/engine/ranker"
	"github.com/codegraph-dev/engine/registry"
	"github.com/codegraph-dev/engine/resolver"
)

// Config selects the engine's tunable knobs. It carries yaml struct tags the
// way inspector/info.Config and inspector/graph.Config do, so a caller that
// owns config-file loading (the CLI's job, per spec.md §1) can
// yaml.Unmarshal directly into it.
type Config struct {
	// MaxWorkers bounds the Work Coordinator's pool size (spec.md §5);
	// <= 1 analyzes files sequentially.
	MaxWorkers int `yaml:"maxWorkers"`

	Rank ranker.Config `yaml:"rank"`
}

// DefaultConfig mirrors the teacher's Default*() constructor convention
// (inspector/info.DefaultConfig, inspector/graph.DefaultConfig): a plain
// struct literal, no flag or env binding.
func DefaultConfig() Config {
	return Config{
		MaxWorkers: 1,
		Rank:       ranker.Config{Strategy: ranker.StrategyPageRank},
	}
}

// Engine is the long-lived handle a caller holds across Generate calls: it
// owns the Parser Pool's grammar/query cache (grammarpool.Pool is meant to be
// reused across files, per spec.md §4.2) and the Language Registry.
type Engine struct {
	registry *registry.Registry
	pool     *grammarpool.Pool
	logger   graph.Logger
}

// New builds an Engine around the default Language Registry. A nil logger is
// replaced with graph.NopLogger{}, the same convention every downstream
// component (coordinator, ranker) already follows.
func New(logger graph.Logger) *Engine {
	if logger == nil {
		logger = graph.NopLogger{}
	}
	return &Engine{
		registry: registry.Default(),
		pool:     grammarpool.New(),
		logger:   logger,
	}
}

// Generate runs the full C1-through-C7 pipeline over files (already produced
// by an external Discoverer, spec.md §6.1): Work Coordinator analysis,
// Symbol Resolver edge resolution, then the configured Ranker. ctx is
// checked once, before analysis starts: an already-cancelled ctx returns its
// error. It is not passed to the coordinator, the resolver, or the ranker,
// so a cancellation after that point (including during the change-frequency
// strategy's git walk) does not stop the call.
func (e *Engine) Generate(ctx context.Context, files []graph.FileInput, cfg Config) (*graph.RankedCodeGraph, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	out := coordinator.Run(files, e.registry, e.pool, cfg.MaxWorkers, e.logger)

	edges := resolver.Resolve(out.Graph, out.Relations, out.FileLanguages, out.AllFiles, out.ReadFile)
	out.Graph.Edges = edges

	ranked, err := ranker.Rank(out.Graph, cfg.Rank, e.logger)
	if err != nil {
		return nil, fmt.Errorf("ranking graph: %w", err)
	}
	return ranked, nil
}

// Render is a convenience wrapper for callers that already hold a Renderer
// (spec.md §6.2): Generate, then hand the result and options to it.
func (e *Engine) Render(ctx context.Context, files []graph.FileInput, cfg Config, renderer graph.Renderer, options graph.RenderOptions) ([]byte, error) {
	ranked, err := e.Generate(ctx, files, cfg)
	if err != nil {
		return nil, err
	}
	return renderer.Render(ranked, options)
}
