package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeGraph_AddNode_FirstWins(t *testing.T) {
	g := NewCodeGraph()
	a := &CodeNode{ID: "src/main.ts#hello", Name: "hello", StartLine: 1}
	b := &CodeNode{ID: "src/main.ts#hello", Name: "hello", StartLine: 99}

	assert.True(t, g.AddNode(a))
	assert.False(t, g.AddNode(b))
	assert.Equal(t, 1, g.Nodes[a.ID].StartLine)
}

func TestSymbolID_and_QualifiedSymbolID(t *testing.T) {
	assert.Equal(t, "src/main.ts#hello", SymbolID("src/main.ts", "hello"))
	assert.Equal(t, "src/main.ts#Main.log", QualifiedSymbolID("src/main.ts", "Main", "log"))
}

func TestFileID(t *testing.T) {
	assert.Equal(t, "src/main.ts", FileID("src/main.ts#Main.log"))
	assert.Equal(t, "src/main.ts", FileID("src/main.ts"))
}

func TestDeduplicateEdges_Idempotent(t *testing.T) {
	edges := []CodeEdge{
		{FromID: "a", ToID: "b", Type: EdgeCalls},
		{FromID: "a", ToID: "b", Type: EdgeCalls},
		{FromID: "a", ToID: "c", Type: EdgeCalls},
	}
	once := DeduplicateEdges(edges)
	twice := DeduplicateEdges(once)
	assert.Equal(t, once, twice)
	assert.Len(t, once, 2)
}

func TestNormalizePath(t *testing.T) {
	assert.Equal(t, "src/main.ts", NormalizePath(`src\main.ts`))
	assert.Equal(t, "src/main.ts", NormalizePath("src/main.ts"))
}
