package coordinator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"

	"github.com/codegraph-dev/engine/grammarpool"
	"github.com/codegraph-dev/engine/graph"
	"github.com/codegraph-dev/engine/registry"
)

// fixtureFiles unpacks a txtar archive (one fixture string holding several
// named file sections) into the []graph.FileInput Run expects.
func fixtureFiles() []graph.FileInput {
	a := txtar.Parse([]byte(`
-- main.go --
package main

func main() {
	helper()
}
-- helper.go --
package main

func helper() {}
-- README.md --
# not a supported language
`))
	files := make([]graph.FileInput, len(a.Files))
	for i, f := range a.Files {
		files[i] = graph.FileInput{Path: f.Name, Content: f.Data}
	}
	return files
}

func TestRun_EmitsFileNodeForEveryInputRegardlessOfLanguage(t *testing.T) {
	out := Run(fixtureFiles(), registry.Default(), grammarpool.New(), 1, nil)

	assert.True(t, out.Graph.HasNode("main.go"))
	assert.True(t, out.Graph.HasNode("helper.go"))
	assert.True(t, out.Graph.HasNode("README.md"), "unsupported extensions still get a file node")

	readme := out.Graph.Nodes["README.md"]
	assert.Equal(t, graph.NodeFile, readme.Type)
	assert.Empty(t, readme.Language, "no language detected for an unsupported extension")

	main := out.Graph.Nodes["main.go"]
	assert.Equal(t, "go", main.Language)
}

func TestRun_SequentialAndPooledProduceIdenticalGraphs(t *testing.T) {
	sequential := Run(fixtureFiles(), registry.Default(), grammarpool.New(), 1, nil)
	pooled := Run(fixtureFiles(), registry.Default(), grammarpool.New(), 4, nil)

	require.Equal(t, len(sequential.Graph.Nodes), len(pooled.Graph.Nodes))
	for id, node := range sequential.Graph.Nodes {
		other, ok := pooled.Graph.Nodes[id]
		require.True(t, ok, "pooled run missing node %q", id)
		assert.Equal(t, node.Type, other.Type)
		assert.Equal(t, node.Name, other.Name)
	}
	assert.Equal(t, len(sequential.Relations), len(pooled.Relations))
}

func TestRun_FileLanguagesOnlySetForSupportedExtensions(t *testing.T) {
	out := Run(fixtureFiles(), registry.Default(), grammarpool.New(), 2, nil)

	assert.Equal(t, "go", out.FileLanguages["main.go"])
	assert.Equal(t, "go", out.FileLanguages["helper.go"])
	_, ok := out.FileLanguages["README.md"]
	assert.False(t, ok)
}

func TestRun_UnparseableLanguageIsDroppedNotFatal(t *testing.T) {
	// A GrammarRef with no loader entry triggers GrammarLoadFailed inside the
	// pool; Run must log and continue rather than panicking or erroring out.
	cfg := graph.LanguageConfig{
		Name:         "nogrammar",
		Extensions:   []string{".nogrammar"},
		GrammarRef:   "does-not-exist",
		CaptureQuery: `(ERROR) @x`,
		SnippetCut:   graph.CutAtBrace,
	}
	reg := registry.New([]graph.LanguageConfig{cfg})
	files := []graph.FileInput{{Path: "broken.nogrammar", Content: []byte("whatever")}}

	var warnings []string
	logger := recordingLogger{warnings: &warnings}

	out := Run(files, reg, grammarpool.New(), 1, logger)
	assert.True(t, out.Graph.HasNode("broken.nogrammar"))
	assert.NotEmpty(t, warnings)
}

func TestRun_ReadFileReturnsInputContent(t *testing.T) {
	out := Run(fixtureFiles(), registry.Default(), grammarpool.New(), 1, nil)

	content, ok := out.ReadFile("main.go")
	require.True(t, ok)
	assert.Contains(t, string(content), "func main()")

	_, ok = out.ReadFile("does-not-exist.go")
	assert.False(t, ok)
}

type recordingLogger struct {
	warnings *[]string
}

func (l recordingLogger) Warnf(format string, args ...interface{}) {
	*l.warnings = append(*l.warnings, format)
}
