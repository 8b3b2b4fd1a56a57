// Package handlers implements the Language Handlers (spec.md §4.4, C4): the
// capability set each language plugs into the File Analyzer. A Handler is a
// record of function fields rather than an interface type, the way the
// teacher threads optional behavior through functional options
// (analyzer.Option, analyzer/graph_exporter.go's WithGraphExporter) instead
// of a class hierarchy — spec.md §9 calls this out explicitly: "a capability
// set, not a class hierarchy". A nil field means "this hook does not apply
// to this language"; Effective fills every nil field from the default
// handler.
package handlers

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/codegraph-dev/engine/graph"
)

// ReadFileFunc looks up an input file's raw content by its discovery-relative
// path, returning ok=false when the path was never part of the input set.
type ReadFileFunc func(path string) ([]byte, bool)

// FileContext carries the per-file state a Handler's hooks need: the raw
// source, the file's path, and whatever PreProcessFile chose to stash in
// State (e.g. the set of duplicate class names the TypeScript handler uses
// to suppress ambiguous method attachment).
type FileContext struct {
	Path   string
	Source []byte
	State  map[string]interface{}
}

// NewFileContext returns a ready-to-use context with an empty State map.
func NewFileContext(path string, source []byte) *FileContext {
	return &FileContext{Path: path, Source: source, State: make(map[string]interface{})}
}

// Text returns node's source text.
func (c *FileContext) Text(node *sitter.Node) string {
	if node == nil {
		return ""
	}
	return node.Content(c.Source)
}

// Handler is the per-language capability set.
type Handler struct {
	// PreProcessFile runs once per file before any definition is processed.
	// Used to compute file-local state such as "which class names repeat".
	PreProcessFile func(ctx *FileContext, root *sitter.Node)

	// ShouldSkipSymbol decides whether a captured definition should be
	// dropped entirely (e.g. a local variable inside a function body).
	ShouldSkipSymbol func(ctx *FileContext, symbolType graph.NodeType, def *sitter.Node) bool

	// GetSymbolNameNode returns the definition's display name. ok is false
	// when no name can be derived; the default reads the "symbol.name"
	// capture's text and returns ok=false when that capture is absent.
	GetSymbolNameNode func(ctx *FileContext, symbolType graph.NodeType, def *sitter.Node, nameNode *sitter.Node) (name string, ok bool)

	// ProcessComplexSymbol builds a class-member node (method, field,
	// constructor): it walks up to the enclosing class, qualifies the name
	// "<Class>.<member>", and returns ok=false when the class name is
	// ambiguous in this file (duplicate class names: spec.md §4.3 step 4).
	// nil means "this language has no complex-symbol concept" (e.g. CSS).
	ProcessComplexSymbol func(ctx *FileContext, symbolType graph.NodeType, def *sitter.Node, nameNode *sitter.Node) (qualifiedName string, ok bool)

	// ParseParameters turns a captured "symbol.parameters" subtree into an
	// ordered parameter list; parameter node shapes differ too much across
	// grammars for one generic implementation (Go groups names under a
	// trailing type, TypeScript pairs each name with its own type).
	ParseParameters func(ctx *FileContext, paramsNode *sitter.Node) []graph.Parameter

	// ResolveImport maps a raw import string onto an entry of allFiles, or
	// reports no match. Each language has its own algorithm (spec.md §4.4).
	// readFile looks up a file's content by path (used only by Go's handler,
	// to parse the nearest go.mod's module path); other languages ignore it.
	ResolveImport func(fromFile, rawImport string, allFiles []string, readFile ReadFileFunc) (string, bool)
}

// merge returns a Handler with every nil field of h replaced by base's.
func (h Handler) merge(base Handler) Handler {
	if h.PreProcessFile == nil {
		h.PreProcessFile = base.PreProcessFile
	}
	if h.ShouldSkipSymbol == nil {
		h.ShouldSkipSymbol = base.ShouldSkipSymbol
	}
	if h.GetSymbolNameNode == nil {
		h.GetSymbolNameNode = base.GetSymbolNameNode
	}
	if h.ProcessComplexSymbol == nil {
		h.ProcessComplexSymbol = base.ProcessComplexSymbol
	}
	if h.ParseParameters == nil {
		h.ParseParameters = base.ParseParameters
	}
	if h.ResolveImport == nil {
		h.ResolveImport = base.ResolveImport
	}
	return h
}

// registry maps a language name (LanguageConfig.Name) to its specific
// handler. Entries need only set the fields that differ from Default().
var registry = map[string]Handler{
	"typescript": typeScriptHandler,
	"javascript": javaScriptHandler,
	"python":     pythonHandler,
	"go":         goHandler,
	"java":       javaHandler,
	"c":          cHandler,
	"cpp":        cppHandler,
	"php":        phpHandler,
	"rust":       rustHandler,
	"html":       htmlHandler,
	"css":        cssHandler,
}

// Effective composes default ⊕ specific(lang), per spec.md §9.
func Effective(lang string) Handler {
	specific, ok := registry[lang]
	if !ok {
		return defaultHandler
	}
	return specific.merge(defaultHandler)
}
