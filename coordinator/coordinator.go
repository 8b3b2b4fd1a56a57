// Package coordinator implements the Work Coordinator (spec.md §4.5, C5): it
// turns a flat file list into file nodes plus, for every file the Language
// Registry recognizes, the File Analyzer's nodes and unresolved relations.
// The worker-pool path is grounded on the teacher's bounded-concurrency scan
// (_examples/petar-djukic-go-coder/internal/ast/scanner.go's ScanDir: a
// jobs/results channel pair drained by a fixed number of goroutines, joined
// with a sync.WaitGroup) generalized from "parse one file" to "analyze one
// file and report its nodes and relations".
package coordinator

import (
	"fmt"
	"path"
	"sync"

	"github.com/codegraph-dev/engine/fileanalyzer"
	"github.com/codegraph-dev/engine/grammarpool"
	"github.com/codegraph-dev/engine/graph"
	"github.com/codegraph-dev/engine/handlers"
	"github.com/codegraph-dev/engine/registry"
)

// Output is everything downstream phases need: the node table (file nodes
// plus every symbol definition), the still-unresolved relations the Symbol
// Resolver turns into edges, the full file list for import resolution, and
// a file-path -> language-name map so the resolver can look up the right
// handler when resolving import relations.
type Output struct {
	Graph         *graph.CodeGraph
	Relations     []graph.UnresolvedRelation
	AllFiles      []string
	FileLanguages map[string]string

	// contents holds every input file's raw bytes by path, the backing store
	// for ReadFile.
	contents map[string][]byte
}

// ReadFile looks up an input file's content by path, the handlers.ReadFileFunc
// the resolver threads into each language's ResolveImport (Go's handler uses
// it to parse the nearest go.mod).
func (o *Output) ReadFile(path string) ([]byte, bool) {
	content, ok := o.contents[path]
	return content, ok
}

var _ handlers.ReadFileFunc = (&Output{}).ReadFile

// unit is one file paired with its detected language config, if any.
type unit struct {
	file graph.FileInput
	lang *graph.LanguageConfig
}

// Run executes phases B through D of spec.md §4.5 for every file in files:
// a file node is emitted for each input regardless of language support;
// files with a detected language are analyzed sequentially when maxWorkers
// <= 1, otherwise via a bounded worker pool of that size. A single file's
// failure (parse failure or worker crash) is logged and its contribution
// dropped; every other file still completes.
func Run(files []graph.FileInput, reg *registry.Registry, pool *grammarpool.Pool, maxWorkers int, logger graph.Logger) *Output {
	if logger == nil {
		logger = graph.NopLogger{}
	}

	g := graph.NewCodeGraph()
	units := make([]unit, len(files))
	allFiles := make([]string, len(files))
	fileLanguages := make(map[string]string, len(files))
	contents := make(map[string][]byte, len(files))

	for i, f := range files {
		lang, _ := reg.Lookup(f.Path)
		units[i] = unit{file: f, lang: lang}
		allFiles[i] = f.Path
		contents[f.Path] = f.Content

		langName := ""
		if lang != nil {
			langName = lang.Name
			fileLanguages[f.Path] = langName
		}
		g.AddNode(&graph.CodeNode{
			ID:       f.Path,
			Type:     graph.NodeFile,
			Name:     path.Base(f.Path),
			FilePath: f.Path,
			Language: langName,
		})
	}

	results := make([]*fileanalyzer.Result, len(units))
	analyzeOne := func(i int) {
		u := units[i]
		if u.lang == nil {
			return
		}
		parser, query, err := pool.Get(u.lang)
		if err != nil {
			logger.Warnf("%v", err)
			return
		}
		res, err := fileanalyzer.Analyze(u.file, u.lang, parser, query)
		if err != nil {
			logger.Warnf("%v", err)
			return
		}
		results[i] = res
	}

	if maxWorkers <= 1 {
		for i := range units {
			analyzeOne(i)
		}
	} else {
		runPool(units, maxWorkers, logger, analyzeOne)
	}

	var relations []graph.UnresolvedRelation
	for i, res := range results {
		if res == nil {
			continue
		}
		for _, n := range res.Nodes {
			// First wins by id (invariant 3 / spec.md §4.5.4): later
			// insertions for an already-present id are silently ignored by
			// CodeGraph.AddNode, regardless of completion order, because
			// results are merged here in original-input order rather than
			// worker-completion order.
			g.AddNode(n)
		}
		relations = append(relations, results[i].Relations...)
	}

	return &Output{Graph: g, Relations: relations, AllFiles: allFiles, FileLanguages: fileLanguages, contents: contents}
}

// runPool fans work index 0..len(units)-1 out to a fixed number of
// goroutines draining a shared jobs channel, mirroring ScanDir's
// jobs/results/WaitGroup shape. analyzeOne writes its result directly into
// the caller's results slice by index, so no results channel is needed here;
// the WaitGroup alone tells the caller when every job has finished.
func runPool(units []unit, maxWorkers int, logger graph.Logger, analyzeOne func(i int)) {
	jobs := make(chan int, len(units))
	var wg sync.WaitGroup

	for w := 0; w < maxWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				runJob(units, i, logger, analyzeOne)
			}
		}()
	}

	for i := range units {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
}

// runJob isolates one unit of work behind a recover so a panic deep in a
// Tree-sitter binding (graph.WorkerCrashed) degrades to the same "drop this
// file, continue the rest" policy as an ordinary analysis error.
func runJob(units []unit, i int, logger graph.Logger, analyzeOne func(i int)) {
	defer func() {
		if r := recover(); r != nil {
			logger.Warnf("%v", &graph.WorkerCrashed{File: units[i].file.Path, Cause: panicError{r}})
		}
	}()
	analyzeOne(i)
}

// panicError adapts a recovered panic value to the error interface so it can
// ride inside graph.WorkerCrashed.Cause.
type panicError struct{ v interface{} }

func (p panicError) Error() string {
	if err, ok := p.v.(error); ok {
		return err.Error()
	}
	return fmt.Sprintf("panic: %v", p.v)
}
