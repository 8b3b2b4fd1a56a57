package fileanalyzer

import (
	"strings"

	"github.com/codegraph-dev/engine/graph"
)

// cutSnippet trims a definition's raw source text down to its signature,
// dropping the body, per the LanguageConfig's SnippetCut rule (graph.
// CutAtBrace/CutAtArrow/CutAtColonOrNewline — spec.md §3's three body shapes:
// brace-delimited, arrow-expression, and Python's colon-then-indent).
// CutAtBrace and CutAtArrow both check for "{" and "=>" and cut at whichever
// comes first: a single LanguageConfig's rule can't predict which shape a
// given definition takes (an expression-bodied arrow function has no brace
// at all, an arrow function returning an object literal has both), so
// invariant 5 ("never contains the body") only holds if every brace-capable
// language also watches for an arrow.
func cutSnippet(raw string, rule graph.SnippetCutRule) string {
	switch rule {
	case graph.CutAtBrace, graph.CutAtArrow:
		braceIdx := strings.IndexByte(raw, '{')
		arrowIdx := strings.Index(raw, "=>")
		switch {
		case braceIdx >= 0 && (arrowIdx < 0 || braceIdx <= arrowIdx):
			raw = raw[:braceIdx]
		case arrowIdx >= 0:
			raw = raw[:arrowIdx+2]
		}
	case graph.CutAtColonOrNewline:
		if idx := strings.IndexByte(raw, ':'); idx >= 0 {
			raw = raw[:idx+1]
		} else if idx := strings.IndexByte(raw, '\n'); idx >= 0 {
			raw = raw[:idx]
		}
	}
	return strings.TrimRight(raw, " \t\r\n")
}
