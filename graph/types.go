// Package graph holds the engine's data model: the inputs the Work
// Coordinator consumes, the nodes and edges the File Analyzer and Symbol
// Resolver produce, and the ranked graph the Ranker hands to a renderer.
package graph

import "strings"

// NodeType enumerates the kinds of CodeNode the engine can emit.
type NodeType string

const (
	NodeFile          NodeType = "file"
	NodeClass         NodeType = "class"
	NodeInterface     NodeType = "interface"
	NodeFunction      NodeType = "function"
	NodeArrowFunction NodeType = "arrow_function"
	NodeMethod        NodeType = "method"
	NodeConstructor   NodeType = "constructor"
	NodeField         NodeType = "field"
	NodeProperty      NodeType = "property"
	NodeVariable      NodeType = "variable"
	NodeConstant      NodeType = "constant"
	NodeStatic        NodeType = "static"
	NodeType_         NodeType = "type"
	NodeEnum          NodeType = "enum"
	NodeStruct        NodeType = "struct"
	NodeUnion         NodeType = "union"
	NodeTrait         NodeType = "trait"
	NodeImpl          NodeType = "impl"
	NodeNamespace     NodeType = "namespace"
	NodeTemplate      NodeType = "template"
	NodeHTMLElement   NodeType = "html_element"
	NodeCSSRule       NodeType = "css_rule"
)

// Visibility is a symbol's declared access level.
type Visibility string

const (
	VisibilityPublic    Visibility = "public"
	VisibilityPrivate   Visibility = "private"
	VisibilityProtected Visibility = "protected"
)

// CSSIntent classifies a CSS rule's declarations; a rule may carry more than
// one.
type CSSIntent string

const (
	CSSIntentLayout     CSSIntent = "layout"
	CSSIntentTypography CSSIntent = "typography"
	CSSIntentAppearance CSSIntent = "appearance"
)

// EdgeType enumerates the kinds of CodeEdge the engine can emit.
type EdgeType string

const (
	EdgeImports    EdgeType = "imports"
	EdgeCalls      EdgeType = "calls"
	EdgeInherits   EdgeType = "inherits"
	EdgeImplements EdgeType = "implements"
	EdgeReference  EdgeType = "reference"
)

// FileInput is the unit of work handed to the engine by the (external)
// discovery collaborator. Path is POSIX-normalized (forward slashes) and the
// pair is immutable once constructed.
type FileInput struct {
	Path    string
	Content []byte
}

// NormalizePath rewrites backslashes to forward slashes, the engine's only
// path convention.
func NormalizePath(path string) string {
	if !strings.Contains(path, "\\") {
		return path
	}
	return strings.ReplaceAll(path, "\\", "/")
}

// Parameter is one entry of a CodeNode's ordered parameter list.
type Parameter struct {
	Name string
	Type string // empty when the source carries no type annotation
}

// CodeNode is a symbol or file definition, unique by Id within a CodeGraph.
//
// For a file node, Id is the file's path. For a symbol node, Id is
// "<path>#<name>"; methods and fields qualify name as "<ClassName>.<member>";
// every HTML element id carries a ":<line>" suffix to disambiguate tags of
// the same name.
type CodeNode struct {
	ID          string
	Type        NodeType
	Name        string
	FilePath    string
	StartLine   int
	EndLine     int
	CodeSnippet string

	Visibility Visibility
	IsAsync    bool
	IsStatic   bool
	IsReadonly bool
	CanThrow   bool
	ReturnType string
	Parameters []Parameter

	Language string // set on file nodes

	HTMLTag      string
	CSSSelector  string
	CSSIntents   []CSSIntent
}

// CodeEdge is a directed relationship between two existing nodes. Imports
// edges run file->file; every other edge type runs symbol->symbol.
type CodeEdge struct {
	FromID string
	ToID   string
	Type   EdgeType
}

// UnresolvedRelation is the intermediate form the File Analyzer emits during
// phase D; the Symbol Resolver turns these into CodeEdges or drops them.
type UnresolvedRelation struct {
	FromID string
	ToName string
	Type   EdgeType
}

// CodeGraph is the frozen output of the definition+relationship passes: a
// node table keyed by id, plus a deduplicated edge list.
type CodeGraph struct {
	Nodes map[string]*CodeNode
	Edges []CodeEdge
}

// NewCodeGraph returns an empty, ready-to-populate graph.
func NewCodeGraph() *CodeGraph {
	return &CodeGraph{Nodes: make(map[string]*CodeNode)}
}

// AddNode inserts a node if its id is not already present (first wins, per
// invariant 3 / 4.5.4). Returns true if the node was inserted.
func (g *CodeGraph) AddNode(node *CodeNode) bool {
	if node == nil {
		return false
	}
	if _, exists := g.Nodes[node.ID]; exists {
		return false
	}
	g.Nodes[node.ID] = node
	return true
}

// HasNode reports whether id is present in the graph.
func (g *CodeGraph) HasNode(id string) bool {
	_, ok := g.Nodes[id]
	return ok
}

// FileID returns the file-path prefix of a symbol id, or the id itself when
// it already names a file node.
func FileID(symbolOrFileID string) string {
	if idx := strings.IndexByte(symbolOrFileID, '#'); idx >= 0 {
		return symbolOrFileID[:idx]
	}
	return symbolOrFileID
}

// SymbolID builds the id of a top-level (non-member) symbol.
func SymbolID(filePath, name string) string {
	return filePath + "#" + name
}

// QualifiedSymbolID builds the id of a class member, qualifying the name
// "<Class>.<member>" exactly as spec.md requires for methods and fields.
func QualifiedSymbolID(filePath, className, member string) string {
	return filePath + "#" + className + "." + member
}

// RankedCodeGraph is a CodeGraph plus a per-node rank in [0, 1].
type RankedCodeGraph struct {
	*CodeGraph
	Ranks map[string]float64
}
