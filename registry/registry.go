// Package registry implements the engine's Language Registry (spec.md §4.1,
// C1): a static table mapping a file extension onto a LanguageConfig. Adding
// a language means adding a row here; no other component needs to change.
package registry

import (
	"path/filepath"
	"strings"

	"github.com/codegraph-dev/engine/graph"
)

// entries is the static table. Order is insertion order; Lookup is a pure
// function of the path's extension so order has no observable effect.
var entries = []graph.LanguageConfig{
	{
		Name:         "typescript",
		Extensions:   []string{".ts"},
		GrammarRef:   "typescript",
		CaptureQuery: typeScriptQuery,
		SnippetCut:   graph.CutAtBrace,
	},
	{
		Name:         "typescript",
		Extensions:   []string{".tsx"},
		GrammarRef:   "tsx",
		CaptureQuery: typeScriptQuery,
		SnippetCut:   graph.CutAtBrace,
	},
	{
		Name:         "javascript",
		Extensions:   []string{".js", ".jsx", ".mjs", ".cjs"},
		GrammarRef:   "javascript",
		CaptureQuery: javaScriptQuery,
		SnippetCut:   graph.CutAtBrace,
	},
	{
		Name:         "python",
		Extensions:   []string{".py"},
		GrammarRef:   "python",
		CaptureQuery: pythonQuery,
		SnippetCut:   graph.CutAtColonOrNewline,
	},
	{
		Name:         "go",
		Extensions:   []string{".go"},
		GrammarRef:   "go",
		CaptureQuery: goQuery,
		SnippetCut:   graph.CutAtBrace,
	},
	{
		Name:         "java",
		Extensions:   []string{".java"},
		GrammarRef:   "java",
		CaptureQuery: javaQuery,
		SnippetCut:   graph.CutAtBrace,
	},
	{
		Name:         "c",
		Extensions:   []string{".c", ".h"},
		GrammarRef:   "c",
		CaptureQuery: cQuery,
		SnippetCut:   graph.CutAtBrace,
	},
	{
		Name:         "cpp",
		Extensions:   []string{".cc", ".cpp", ".cxx", ".hpp", ".hh"},
		GrammarRef:   "cpp",
		CaptureQuery: cppQuery,
		SnippetCut:   graph.CutAtBrace,
	},
	{
		Name:         "php",
		Extensions:   []string{".php"},
		GrammarRef:   "php",
		CaptureQuery: phpQuery,
		SnippetCut:   graph.CutAtBrace,
	},
	{
		Name:         "rust",
		Extensions:   []string{".rs"},
		GrammarRef:   "rust",
		CaptureQuery: rustQuery,
		SnippetCut:   graph.CutAtBrace,
	},
	{
		Name:         "html",
		Extensions:   []string{".html", ".htm"},
		GrammarRef:   "html",
		CaptureQuery: htmlQuery,
		SnippetCut:   graph.CutAtBrace,
	},
	{
		Name:         "css",
		Extensions:   []string{".css"},
		GrammarRef:   "css",
		CaptureQuery: cssQuery,
		SnippetCut:   graph.CutAtBrace,
	},
}

// byExtension is built once at package init for O(1) Lookup.
var byExtension map[string]*graph.LanguageConfig

func init() {
	byExtension = make(map[string]*graph.LanguageConfig)
	for i := range entries {
		entry := &entries[i]
		for _, ext := range entry.Extensions {
			byExtension[ext] = entry
		}
	}
}

// Registry exposes Lookup as a value so callers can inject a trimmed or
// extended table in tests without touching the package-level default.
type Registry struct {
	byExtension map[string]*graph.LanguageConfig
}

// Default returns the built-in registry covering every language this engine
// ships a handler for.
func Default() *Registry {
	return &Registry{byExtension: byExtension}
}

// New builds a registry from an explicit set of configs, for tests or for a
// host that wants to add/override languages without forking this package.
func New(configs []graph.LanguageConfig) *Registry {
	r := &Registry{byExtension: make(map[string]*graph.LanguageConfig, len(configs))}
	for i := range configs {
		entry := &configs[i]
		for _, ext := range entry.Extensions {
			r.byExtension[ext] = entry
		}
	}
	return r
}

// Lookup is a pure function of path's extension; it returns (nil, false)
// for unsupported extensions, which the Work Coordinator treats as "file
// node only, no symbol extraction" rather than an error.
func (r *Registry) Lookup(path string) (*graph.LanguageConfig, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	cfg, ok := r.byExtension[ext]
	return cfg, ok
}
