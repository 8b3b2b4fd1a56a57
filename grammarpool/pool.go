// Package grammarpool implements the Parser Pool (spec.md §4.2, C2). Given a
// LanguageConfig it supplies a parser configured with the right grammar and
// a compiled query, caching both per language for the process lifetime, the
// way the teacher's TreeSitterInspector set up one parser+language pair per
// call (inspector/golang/inspector_tree_sitter.go) — generalized here into a
// shared, cached table so every worker reuses the same compiled query.
package grammarpool

import (
	"sync"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/c"
	"github.com/smacker/go-tree-sitter/cpp"
	"github.com/smacker/go-tree-sitter/css"
	"github.com/smacker/go-tree-sitter/golang"
	"github.com/smacker/go-tree-sitter/html"
	"github.com/smacker/go-tree-sitter/java"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/php"
	"github.com/smacker/go-tree-sitter/python"
	"github.com/smacker/go-tree-sitter/rust"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	"github.com/codegraph-dev/engine/graph"
)

// loaders maps a LanguageConfig.GrammarRef to its compiled-in Tree-sitter
// binding. GrammarLoadFailed fires for a language the Registry otherwise
// recognizes when its grammar ref has no loader here, or when its capture
// query does not compile against the grammar.
var loaders = map[string]func() *sitter.Language{
	"typescript": typescript.GetLanguage,
	"tsx":        tsx.GetLanguage,
	"javascript": javascript.GetLanguage,
	"python":     python.GetLanguage,
	"go":         golang.GetLanguage,
	"java":       java.GetLanguage,
	"c":          c.GetLanguage,
	"cpp":        cpp.GetLanguage,
	"php":        php.GetLanguage,
	"rust":       rust.GetLanguage,
	"html":       html.GetLanguage,
	"css":        css.GetLanguage,
}

// entry is a grammar plus its compiled query, cached once per language.
type entry struct {
	language *sitter.Language
	query    *sitter.Query
}

// Pool is safe for concurrent use: each worker calls Get independently and
// the first caller for a given language pays the load+compile cost, every
// later caller (on any goroutine) gets the cached result. No mutable state
// is shared beyond the cache itself, matching spec.md §5's "grammar caches
// are... synchronized behind a one-time initializer".
type Pool struct {
	mu      sync.Mutex
	loaded  map[string]*entry
	loadErr map[string]error
}

// New returns an empty pool. The zero value is not usable; always go
// through New so the internal maps are initialized.
func New() *Pool {
	return &Pool{
		loaded:  make(map[string]*entry),
		loadErr: make(map[string]error),
	}
}

// Get returns a freshly-instantiated parser for cfg plus the query compiled
// against cfg.CaptureQuery. Parsers are not goroutine-safe so a new one is
// handed out on every call; the expensive parts — the grammar binding and
// the compiled query — are cached and shared.
func (p *Pool) Get(cfg *graph.LanguageConfig) (*sitter.Parser, *sitter.Query, error) {
	e, err := p.getOrLoad(cfg)
	if err != nil {
		return nil, nil, err
	}
	parser := sitter.NewParser()
	parser.SetLanguage(e.language)
	return parser, e.query, nil
}

func (p *Pool) getOrLoad(cfg *graph.LanguageConfig) (*entry, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if e, ok := p.loaded[cfg.GrammarRef]; ok {
		return e, nil
	}
	if err, ok := p.loadErr[cfg.GrammarRef]; ok {
		return nil, err
	}

	loader, ok := loaders[cfg.GrammarRef]
	if !ok {
		err := &graph.GrammarLoadFailed{Lang: cfg.GrammarRef, Cause: errUnregisteredGrammar}
		p.loadErr[cfg.GrammarRef] = err
		return nil, err
	}

	lang := loader()
	query, err := sitter.NewQuery([]byte(cfg.CaptureQuery), lang)
	if err != nil {
		wrapped := &graph.GrammarLoadFailed{Lang: cfg.GrammarRef, Cause: err}
		p.loadErr[cfg.GrammarRef] = wrapped
		return nil, wrapped
	}

	e := &entry{language: lang, query: query}
	p.loaded[cfg.GrammarRef] = e
	return e, nil
}
