package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/codegraph-dev/engine/graph"
)

func newGraphWithNodes(nodes ...*graph.CodeNode) *graph.CodeGraph {
	g := graph.NewCodeGraph()
	for _, n := range nodes {
		g.AddNode(n)
	}
	return g
}

func TestResolve_SameFileWins(t *testing.T) {
	g := newGraphWithNodes(
		&graph.CodeNode{ID: "a.go", Type: graph.NodeFile},
		&graph.CodeNode{ID: "a.go#helper", Type: graph.NodeFunction, Name: "helper"},
		&graph.CodeNode{ID: "a.go#main", Type: graph.NodeFunction, Name: "main"},
	)
	relations := []graph.UnresolvedRelation{
		{FromID: "a.go#main", ToName: "helper", Type: graph.EdgeCalls},
	}
	edges := Resolve(g, relations, nil, []string{"a.go"}, nil)
	assert.Equal(t, []graph.CodeEdge{{FromID: "a.go#main", ToID: "a.go#helper", Type: graph.EdgeCalls}}, edges)
}

func TestResolve_ImportedFileBeforeGlobalHeuristic(t *testing.T) {
	g := newGraphWithNodes(
		&graph.CodeNode{ID: "a.py", Type: graph.NodeFile},
		&graph.CodeNode{ID: "b.py", Type: graph.NodeFile},
		&graph.CodeNode{ID: "c.py", Type: graph.NodeFile},
		&graph.CodeNode{ID: "b.py#Widget", Type: graph.NodeClass, Name: "Widget"},
		&graph.CodeNode{ID: "c.py#Widget", Type: graph.NodeClass, Name: "Widget"},
	)
	relations := []graph.UnresolvedRelation{
		{FromID: "a.py", ToName: "b", Type: graph.EdgeImports},
		{FromID: "a.py#main", ToName: "Widget", Type: graph.EdgeReference},
	}
	fileLanguages := map[string]string{"a.py": "python"}
	edges := Resolve(g, relations, fileLanguages, []string{"a.py", "b.py", "c.py"}, nil)

	var found bool
	for _, e := range edges {
		if e.Type == graph.EdgeReference {
			found = true
			assert.Equal(t, "b.py#Widget", e.ToID, "imported file b.py must win over global heuristic hit in c.py")
		}
	}
	assert.True(t, found)
}

func TestResolve_CSSSelectorMatch(t *testing.T) {
	g := newGraphWithNodes(
		&graph.CodeNode{ID: "index.html", Type: graph.NodeFile},
		&graph.CodeNode{ID: "index.html#div:1", Type: graph.NodeHTMLElement, Name: "div"},
		&graph.CodeNode{ID: "style.css#.card", Type: graph.NodeCSSRule, Name: ".card", CSSSelector: ".card"},
	)
	relations := []graph.UnresolvedRelation{
		{FromID: "index.html#div:1", ToName: ".card", Type: graph.EdgeReference},
	}
	edges := Resolve(g, relations, nil, []string{"index.html", "style.css"}, nil)
	assert.Equal(t, []graph.CodeEdge{{FromID: "index.html#div:1", ToID: "style.css#.card", Type: graph.EdgeReference}}, edges)
}

func TestResolve_GlobalHeuristicPrefersTypeLikeDeterministically(t *testing.T) {
	g := newGraphWithNodes(
		&graph.CodeNode{ID: "a.go", Type: graph.NodeFile},
		&graph.CodeNode{ID: "z.go#Base", Type: graph.NodeClass, Name: "Base"},
		&graph.CodeNode{ID: "m.go#Base", Type: graph.NodeClass, Name: "Base"},
	)
	relations := []graph.UnresolvedRelation{
		{FromID: "a.go#Widget", ToName: "Base", Type: graph.EdgeInherits},
	}
	edges := Resolve(g, relations, nil, []string{"a.go"}, nil)
	assert.Equal(t, "m.go#Base", edges[0].ToID, "ambiguous global hits resolve to the lexicographically first id")
}

func TestResolve_UnresolvableRelationIsDropped(t *testing.T) {
	g := newGraphWithNodes(&graph.CodeNode{ID: "a.go", Type: graph.NodeFile})
	relations := []graph.UnresolvedRelation{
		{FromID: "a.go#main", ToName: "nowhere", Type: graph.EdgeCalls},
	}
	edges := Resolve(g, relations, nil, []string{"a.go"}, nil)
	assert.Empty(t, edges)
}

func TestResolve_SelfEdgeDropped(t *testing.T) {
	g := newGraphWithNodes(
		&graph.CodeNode{ID: "a.go", Type: graph.NodeFile},
		&graph.CodeNode{ID: "a.go#Base", Type: graph.NodeClass, Name: "Base"},
	)
	relations := []graph.UnresolvedRelation{
		{FromID: "a.go#Base", ToName: "Base", Type: graph.EdgeInherits},
	}
	edges := Resolve(g, relations, nil, []string{"a.go"}, nil)
	assert.Empty(t, edges)
}

func TestResolve_DuplicateRelationsDeduplicated(t *testing.T) {
	g := newGraphWithNodes(
		&graph.CodeNode{ID: "a.go", Type: graph.NodeFile},
		&graph.CodeNode{ID: "a.go#helper", Type: graph.NodeFunction, Name: "helper"},
		&graph.CodeNode{ID: "a.go#main", Type: graph.NodeFunction, Name: "main"},
	)
	relations := []graph.UnresolvedRelation{
		{FromID: "a.go#main", ToName: "helper", Type: graph.EdgeCalls},
		{FromID: "a.go#main", ToName: "helper", Type: graph.EdgeCalls},
	}
	edges := Resolve(g, relations, nil, []string{"a.go"}, nil)
	assert.Len(t, edges, 1)
}
