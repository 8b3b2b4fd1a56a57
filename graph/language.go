package graph

// SnippetCutRule names the rule the File Analyzer uses to trim a
// definition's raw source text down to a signature-shaped CodeSnippet that
// never includes the body (invariant 5 / spec.md §9).
type SnippetCutRule string

const (
	// CutAtBrace stops the snippet at the first "{" when one is present.
	CutAtBrace SnippetCutRule = "brace"
	// CutAtArrow stops at the first "=>" (arrow-function bodies).
	CutAtArrow SnippetCutRule = "arrow"
	// CutAtColonOrNewline is for brace-less languages (Python): stop just
	// after the first ":" when the text has one (even a type annotation's),
	// otherwise at the first newline.
	CutAtColonOrNewline SnippetCutRule = "colon-or-newline"
)

// LanguageConfig maps a set of file extensions onto a Tree-sitter grammar, a
// capture query written in Tree-sitter's s-expression query language, and
// the snippet-cut rule for that language's syntax.
type LanguageConfig struct {
	Name          string
	Extensions    []string
	GrammarRef    string // key into the grammar pool's loader table
	CaptureQuery  string
	SnippetCut    SnippetCutRule
}
