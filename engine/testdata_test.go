package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"

	"github.com/codegraph-dev/engine/graph"
)

// unpackTxtar turns a txtar archive (one fixture string holding several
// named file sections) into the []graph.FileInput the engine's Non-goals
// require a Discoverer to have already produced.
func unpackTxtar(t *testing.T, archive string) []graph.FileInput {
	t.Helper()
	a := txtar.Parse([]byte(archive))
	require.NotEmpty(t, a.Files, "fixture must contain at least one file section")
	files := make([]graph.FileInput, len(a.Files))
	for i, f := range a.Files {
		files[i] = graph.FileInput{Path: f.Name, Content: f.Data}
	}
	return files
}
