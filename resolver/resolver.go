// Package resolver implements the Symbol Resolver (spec.md §4.6, C6): it
// turns the Work Coordinator's unresolved relations into edges, or discards
// them. Import relations resolve first (each language's handler.ResolveImport,
// spec.md §4.4) since the resulting file->file imports edges feed step 2 of
// the non-import resolution order; every other relation then resolves via
// the 4-step same-file -> imported-files -> css-selector -> global-heuristic
// lookup spec.md §4.6 specifies, in that fixed order.
package resolver

import (
	"sort"

	"github.com/codegraph-dev/engine/graph"
	"github.com/codegraph-dev/engine/handlers"
)

// typeLikeKinds is the node-type set the global heuristic (step 4) searches;
// methods and fields are deliberately excluded to reduce ambiguity (spec.md
// §4.6 step 4).
var typeLikeKinds = map[graph.NodeType]bool{
	graph.NodeClass:     true,
	graph.NodeFunction:  true,
	graph.NodeInterface: true,
	graph.NodeStruct:    true,
	graph.NodeType_:     true,
	graph.NodeEnum:      true,
}

// Resolve turns relations into deduplicated, self-edge-free CodeEdges.
// fileLanguages maps a file path to its detected LanguageConfig.Name (only
// files the coordinator could identify a language for appear); allFiles is
// every input path, in discovery order, the same slice each handler's
// ResolveImport already expects; readFile looks up a file's raw content
// (the Go handler uses it to parse the nearest go.mod) and may be nil.
func Resolve(g *graph.CodeGraph, relations []graph.UnresolvedRelation, fileLanguages map[string]string, allFiles []string, readFile handlers.ReadFileFunc) []graph.CodeEdge {
	imports, rest := partitionImports(relations)

	importEdges, importsByFile := resolveImports(g, imports, fileLanguages, allFiles, readFile)

	cssBySelector := indexCSSSelectors(g)
	byNameTypeLike := indexTypeLikeByName(g)

	edges := append([]graph.CodeEdge{}, importEdges...)
	for _, rel := range rest {
		fromFile := graph.FileID(rel.FromID)
		targetID, ok := resolveTarget(g, fromFile, rel.ToName, importsByFile, byNameTypeLike, cssBySelector)
		if !ok {
			continue
		}
		if targetID == rel.FromID {
			continue // self-edges are dropped
		}
		edges = append(edges, graph.CodeEdge{FromID: rel.FromID, ToID: targetID, Type: rel.Type})
	}

	return graph.DeduplicateEdges(edges)
}

func partitionImports(relations []graph.UnresolvedRelation) (imports, rest []graph.UnresolvedRelation) {
	for _, rel := range relations {
		if rel.Type == graph.EdgeImports {
			imports = append(imports, rel)
		} else {
			rest = append(rest, rel)
		}
	}
	return imports, rest
}

// resolveImports resolves each raw import string via the importing file's
// handler and returns both the edge list and a per-file ordered list of the
// files it successfully resolved to (insertion order preserved, for step 2's
// "first match wins in import-insertion order").
func resolveImports(g *graph.CodeGraph, imports []graph.UnresolvedRelation, fileLanguages map[string]string, allFiles []string, readFile handlers.ReadFileFunc) ([]graph.CodeEdge, map[string][]string) {
	var edges []graph.CodeEdge
	importsByFile := make(map[string][]string)

	for _, rel := range imports {
		fromFile := rel.FromID // import relations are already file-anchored
		lang := fileLanguages[fromFile]
		h := handlers.Effective(lang)
		if h.ResolveImport == nil {
			continue
		}
		target, ok := h.ResolveImport(fromFile, rel.ToName, allFiles, readFile)
		if !ok || !g.HasNode(target) {
			continue
		}
		edges = append(edges, graph.CodeEdge{FromID: fromFile, ToID: target, Type: graph.EdgeImports})
		importsByFile[fromFile] = append(importsByFile[fromFile], target)
	}

	return edges, importsByFile
}

func indexCSSSelectors(g *graph.CodeGraph) map[string]*graph.CodeNode {
	bySelector := make(map[string]*graph.CodeNode)
	for _, n := range sortedNodes(g) {
		if n.Type == graph.NodeCSSRule && n.CSSSelector != "" {
			if _, exists := bySelector[n.CSSSelector]; !exists {
				bySelector[n.CSSSelector] = n
			}
		}
	}
	return bySelector
}

// indexTypeLikeByName groups type-like nodes by name, sorted by id so that
// an ambiguous name's first candidate is a deterministic, id-order choice
// rather than a map-iteration artifact.
func indexTypeLikeByName(g *graph.CodeGraph) map[string][]*graph.CodeNode {
	byName := make(map[string][]*graph.CodeNode)
	for _, n := range sortedNodes(g) {
		if typeLikeKinds[n.Type] {
			byName[n.Name] = append(byName[n.Name], n)
		}
	}
	return byName
}

func sortedNodes(g *graph.CodeGraph) []*graph.CodeNode {
	nodes := make([]*graph.CodeNode, 0, len(g.Nodes))
	for _, n := range g.Nodes {
		nodes = append(nodes, n)
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID < nodes[j].ID })
	return nodes
}

// resolveTarget implements the 4-step order for a non-import relation.
func resolveTarget(g *graph.CodeGraph, fromFile, name string, importsByFile map[string][]string, byNameTypeLike map[string][]*graph.CodeNode, cssBySelector map[string]*graph.CodeNode) (string, bool) {
	// 1. Same file.
	sameFile := graph.SymbolID(fromFile, name)
	if g.HasNode(sameFile) {
		return sameFile, true
	}

	// 2. Imported files, first match in import-insertion order.
	for _, imported := range importsByFile[fromFile] {
		candidate := graph.SymbolID(imported, name)
		if g.HasNode(candidate) {
			return candidate, true
		}
	}

	// 3. CSS selector match.
	if node, ok := cssBySelector[name]; ok {
		return node.ID, true
	}

	// 4. Global heuristic, preferring type-like symbols.
	if candidates, ok := byNameTypeLike[name]; ok && len(candidates) > 0 {
		return candidates[0].ID, true
	}

	return "", false
}
