// Package fileanalyzer implements the File Analyzer (spec.md §4.3, C3): it
// runs a LanguageConfig's compiled capture query over one file's parse tree
// and turns the matches into CodeNodes and UnresolvedRelations, delegating
// every language-specific decision to the file's Handler (package handlers).
package fileanalyzer

import (
	"context"
	"sort"
	"strconv"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/codegraph-dev/engine/graph"
	"github.com/codegraph-dev/engine/handlers"
)

// Result is what Analyze contributes for one file; the Work Coordinator
// merges these into the global node table and edge list.
type Result struct {
	Nodes     []*graph.CodeNode
	Relations []graph.UnresolvedRelation
}

// nodeTypeByCapturePrefix maps a ".definition"-suffixed capture's prefix
// onto the NodeType it introduces (spec.md §4.1's capture vocabulary).
var nodeTypeByCapturePrefix = map[string]graph.NodeType{
	"function":       graph.NodeFunction,
	"arrow_function": graph.NodeArrowFunction,
	"class":          graph.NodeClass,
	"interface":      graph.NodeInterface,
	"method":         graph.NodeMethod,
	"constructor":    graph.NodeConstructor,
	"field":          graph.NodeField,
	"property":       graph.NodeProperty,
	"variable":       graph.NodeVariable,
	"constant":       graph.NodeConstant,
	"type":           graph.NodeType_,
	"enum":           graph.NodeEnum,
	"struct":         graph.NodeStruct,
	"union":          graph.NodeUnion,
	"trait":          graph.NodeTrait,
	"impl":           graph.NodeImpl,
	"namespace":      graph.NodeNamespace,
	"template":       graph.NodeTemplate,
	"html_element":   graph.NodeHTMLElement,
	"css_rule":       graph.NodeCSSRule,
}

// relationCaptureNames names the capture kinds Phase D cares about; a match
// carrying none of these contributes nothing to the relationship pass even
// if it also carried a definition.
var relationCaptureNames = []string{"import.source", "inheritance", "implementation", "call", "reference"}

// matchCaptures groups every capture of one query match by its name — tree-
// sitter naturally co-locates a definition's name/parameters/qualifiers (and,
// for several languages, its inheritance/implementation targets) in a single
// pattern match.
type matchCaptures struct {
	byName         map[string][]*sitter.Node
	defCaptureName string // "" when this match carries no ".definition" capture
}

func (m *matchCaptures) first(name string) *sitter.Node {
	if nodes := m.byName[name]; len(nodes) > 0 {
		return nodes[0]
	}
	return nil
}

func (m *matchCaptures) anchor() *sitter.Node {
	return m.first(m.defCaptureName)
}

func (m *matchCaptures) hasRelationCapture() bool {
	for _, name := range relationCaptureNames {
		if len(m.byName[name]) > 0 {
			return true
		}
	}
	return false
}

// Analyze is the File Analyzer's sole entry point: contract
// analyze(file, langConfig, parser) → {nodes, relations} (spec.md §4.3). On
// parse failure it returns an empty result and a *graph.ParseFailed — the
// caller (the Work Coordinator) still has the file node from its own pass.
func Analyze(file graph.FileInput, cfg *graph.LanguageConfig, parser *sitter.Parser, query *sitter.Query) (*Result, error) {
	tree, err := parser.ParseCtx(context.Background(), nil, file.Content)
	if err != nil || tree == nil {
		return &Result{}, &graph.ParseFailed{File: file.Path, Cause: err}
	}
	root := tree.RootNode()

	handler := handlers.Effective(cfg.Name)
	ctx := handlers.NewFileContext(file.Path, file.Content)
	if handler.PreProcessFile != nil {
		handler.PreProcessFile(ctx, root)
	}

	defMatches, relMatches := collectMatches(query, root)

	nodes, defByRange := processDefinitions(ctx, cfg, file, handler, defMatches)
	relations := processRelationships(ctx, file, defByRange, relMatches)

	return &Result{Nodes: nodes, Relations: relations}, nil
}

// collectMatches runs the query once and partitions its matches, since a
// tree-sitter query cursor is a one-shot iterator and several captures
// (inheritance/implementation nested inside a class's own definition match)
// feed both Phase C and Phase D.
func collectMatches(query *sitter.Query, root *sitter.Node) (defs []*matchCaptures, rels []*matchCaptures) {
	cursor := sitter.NewQueryCursor()
	defer cursor.Close()
	cursor.Exec(query, root)

	for {
		m, ok := cursor.NextMatch()
		if !ok {
			break
		}
		mc := &matchCaptures{byName: make(map[string][]*sitter.Node, len(m.Captures))}
		for _, c := range m.Captures {
			name := query.CaptureNameForId(c.Index)
			mc.byName[name] = append(mc.byName[name], c.Node)
			if strings.HasSuffix(name, ".definition") {
				mc.defCaptureName = name
			}
		}
		if mc.defCaptureName != "" {
			defs = append(defs, mc)
		}
		if mc.hasRelationCapture() {
			rels = append(rels, mc)
		}
	}

	// Sort by start byte so "first capture wins" is independent of the
	// order tree-sitter enumerates matches across multiple patterns
	// (spec.md §5's determinism requirement).
	sort.Slice(defs, func(i, j int) bool {
		return defs[i].anchor().StartByte() < defs[j].anchor().StartByte()
	})
	sort.Slice(rels, func(i, j int) bool {
		return firstRelationByte(rels[i]) < firstRelationByte(rels[j])
	})
	return defs, rels
}

func firstRelationByte(mc *matchCaptures) uint32 {
	best := ^uint32(0)
	for _, name := range relationCaptureNames {
		for _, n := range mc.byName[name] {
			if n.StartByte() < best {
				best = n.StartByte()
			}
		}
	}
	return best
}

// defRange keys a definition node's byte span so the Phase D enclosing-
// symbol walk can recognize "this ancestor is a definition we already
// emitted" without re-deriving that definition's name.
type defRange struct {
	start, end uint32
}

func processDefinitions(ctx *handlers.FileContext, cfg *graph.LanguageConfig, file graph.FileInput, h handlers.Handler, defs []*matchCaptures) ([]*graph.CodeNode, map[defRange]string) {
	var nodes []*graph.CodeNode
	seenIDs := make(map[string]bool)
	defByRange := make(map[defRange]string)

	for _, mc := range defs {
		defNode := mc.anchor()
		symbolType, ok := nodeTypeByCapturePrefix[strings.TrimSuffix(mc.defCaptureName, ".definition")]
		if !ok {
			continue
		}
		if h.ShouldSkipSymbol != nil && h.ShouldSkipSymbol(ctx, symbolType, defNode) {
			continue
		}

		nameNode := mc.first("symbol.name")

		var id, name string
		if h.ProcessComplexSymbol != nil {
			if qualifiedName, ok := h.ProcessComplexSymbol(ctx, symbolType, defNode, nameNode); ok {
				name = qualifiedName
				id = graph.SymbolID(file.Path, qualifiedName)
			}
		}
		if id == "" {
			switch symbolType {
			case graph.NodeMethod, graph.NodeConstructor, graph.NodeField:
				// Class members are emitted only under a "<Class>.<member>"
				// name; one the handler could not qualify (no enclosing
				// class, or a class name that repeats in this file) is dropped.
				continue
			}
			resolvedName, ok := h.GetSymbolNameNode(ctx, symbolType, defNode, nameNode)
			if !ok {
				continue
			}
			name = resolvedName
			id = graph.SymbolID(file.Path, resolvedName)
		}
		if symbolType == graph.NodeHTMLElement {
			// HTML elements disambiguate by line (spec.md §3): unlike named
			// symbols, two sibling tags of the same name are common and would
			// otherwise collide on id and fall to the first-wins guard below.
			id = id + ":" + strconv.Itoa(int(defNode.StartPoint().Row)+1)
		}
		if seenIDs[id] {
			continue
		}

		node := &graph.CodeNode{
			ID:          id,
			Type:        symbolType,
			Name:        name,
			FilePath:    file.Path,
			StartLine:   int(defNode.StartPoint().Row) + 1,
			EndLine:     int(defNode.EndPoint().Row) + 1,
			CodeSnippet: cutSnippet(ctx.Text(defNode), cfg.SnippetCut),
		}
		if h.ParseParameters != nil {
			if paramsNode := mc.first("symbol.parameters"); paramsNode != nil {
				node.Parameters = h.ParseParameters(ctx, paramsNode)
			}
		}
		if returnTypeNode := mc.first("symbol.returnType"); returnTypeNode != nil {
			// TypeScript's return_type is a type_annotation that includes
			// its leading ":"; only the type itself is kept.
			node.ReturnType = strings.TrimSpace(strings.TrimPrefix(ctx.Text(returnTypeNode), ":"))
		}
		applyQualifiers(node, mc, ctx)

		switch symbolType {
		case graph.NodeHTMLElement:
			node.HTMLTag = name
		case graph.NodeCSSRule:
			node.CSSSelector = name
			node.CSSIntents = classifyCSSIntents(ctx, defNode)
		}

		nodes = append(nodes, node)
		seenIDs[id] = true
		defByRange[defRange{defNode.StartByte(), defNode.EndByte()}] = id
	}
	return nodes, defByRange
}

func applyQualifiers(node *graph.CodeNode, mc *matchCaptures, ctx *handlers.FileContext) {
	if len(mc.byName["qualifier.async"]) > 0 {
		node.IsAsync = true
	}
	if len(mc.byName["qualifier.static"]) > 0 {
		node.IsStatic = true
	}
	if len(mc.byName["qualifier.readonly"]) > 0 {
		node.IsReadonly = true
	}
	if len(mc.byName["qualifier.throws"]) > 0 {
		node.CanThrow = true
	}
	if v := mc.first("qualifier.visibility"); v != nil {
		switch ctx.Text(v) {
		case "public":
			node.Visibility = graph.VisibilityPublic
		case "private":
			node.Visibility = graph.VisibilityPrivate
		case "protected":
			node.Visibility = graph.VisibilityProtected
		}
	}
}

func processRelationships(ctx *handlers.FileContext, file graph.FileInput, defByRange map[defRange]string, rels []*matchCaptures) []graph.UnresolvedRelation {
	var out []graph.UnresolvedRelation

	for _, mc := range rels {
		for _, n := range mc.byName["import.source"] {
			out = append(out, graph.UnresolvedRelation{
				FromID: file.Path,
				ToName: stripQuotes(ctx.Text(n)),
				Type:   graph.EdgeImports,
			})
		}

		if refs := mc.byName["reference"]; len(refs) > 0 {
			if attr := mc.first("qualifier.attrName"); attr != nil {
				attrName := ctx.Text(attr)
				for _, n := range refs {
					out = append(out, cssRelationsFromAttribute(ctx, attrName, n, file.Path, defByRange)...)
				}
			} else {
				for _, n := range refs {
					out = append(out, graph.UnresolvedRelation{
						FromID: enclosingSymbolID(n, file.Path, defByRange),
						ToName: stripGenerics(ctx.Text(n)),
						Type:   graph.EdgeReference,
					})
				}
			}
		}

		for _, n := range mc.byName["inheritance"] {
			out = append(out, graph.UnresolvedRelation{
				FromID: enclosingSymbolID(n, file.Path, defByRange),
				ToName: stripGenerics(ctx.Text(n)),
				Type:   graph.EdgeInherits,
			})
		}
		for _, n := range mc.byName["implementation"] {
			out = append(out, graph.UnresolvedRelation{
				FromID: enclosingSymbolID(n, file.Path, defByRange),
				ToName: stripGenerics(ctx.Text(n)),
				Type:   graph.EdgeImplements,
			})
		}
		for _, n := range mc.byName["call"] {
			out = append(out, graph.UnresolvedRelation{
				FromID: enclosingSymbolID(n, file.Path, defByRange),
				ToName: stripGenerics(ctx.Text(n)),
				Type:   graph.EdgeCalls,
			})
		}
	}
	return out
}

// enclosingSymbolID implements §4.3.1: walk parents from n until one matches
// a definition already emitted for this file (by byte range, the same
// definition the Phase C pass recorded), or the root is reached.
func enclosingSymbolID(n *sitter.Node, filePath string, defByRange map[defRange]string) string {
	for p := n.Parent(); p != nil; p = p.Parent() {
		if id, ok := defByRange[defRange{p.StartByte(), p.EndByte()}]; ok {
			return id
		}
	}
	return filePath
}

// cssRelationsFromAttribute expands an HTML "class" attribute's space-
// separated token list into one relation per selector, or a single relation
// for "id"; the registry's htmlQuery captures every quoted attribute value,
// and those of any other attribute are ignored here.
func cssRelationsFromAttribute(ctx *handlers.FileContext, attrName string, valueNode *sitter.Node, filePath string, defByRange map[defRange]string) []graph.UnresolvedRelation {
	text := ctx.Text(valueNode)
	fromID := enclosingSymbolID(valueNode, filePath, defByRange)

	switch attrName {
	case "class":
		var rels []graph.UnresolvedRelation
		for _, token := range strings.Fields(text) {
			rels = append(rels, graph.UnresolvedRelation{FromID: fromID, ToName: "." + token, Type: graph.EdgeReference})
		}
		return rels
	case "id":
		if text == "" {
			return nil
		}
		return []graph.UnresolvedRelation{{FromID: fromID, ToName: "#" + text, Type: graph.EdgeReference}}
	default:
		return nil
	}
}

// stripQuotes removes a single layer of matching quote characters from an
// import-source string-literal node's raw text.
func stripQuotes(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if (first == '"' || first == '\'' || first == '`') && first == last {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// stripGenerics drops a trailing "<...>" type-argument list from a
// reference/inheritance/implementation target's text (spec.md §4.3 Phase D).
func stripGenerics(s string) string {
	if idx := strings.IndexByte(s, '<'); idx >= 0 {
		return strings.TrimSpace(s[:idx])
	}
	return s
}
