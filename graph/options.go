package graph

// RenderOptions is the contract a Renderer collaborator accepts alongside a
// RankedCodeGraph (spec.md §6.2). The renderer itself lives outside the
// engine; this struct only pins the recognized fields so the engine and its
// caller agree on a shape. Unknown fields are ignored by convention.
type RenderOptions struct {
	IncludeHeader        bool `yaml:"includeHeader"`
	IncludeOverview      bool `yaml:"includeOverview"`
	IncludeMermaidGraph  bool `yaml:"includeMermaidGraph"`
	IncludeFileList      bool `yaml:"includeFileList"`
	IncludeSymbolDetails bool `yaml:"includeSymbolDetails"`

	TopFileCount int `yaml:"topFileCount"`

	FileSectionSeparator string `yaml:"fileSectionSeparator"`
	CustomHeader         string `yaml:"customHeader"`

	SymbolDetailOptions SymbolDetailOptions `yaml:"symbolDetailOptions"`
}

// SymbolDetailOptions narrows how much detail a renderer shows per symbol.
type SymbolDetailOptions struct {
	IncludeRelations    bool `yaml:"includeRelations"`
	IncludeLineNumber   bool `yaml:"includeLineNumber"`
	IncludeCodeSnippet  bool `yaml:"includeCodeSnippet"`
	MaxRelationsToShow  int  `yaml:"maxRelationsToShow"`
}

// DefaultRenderOptions mirrors the teacher's DefaultConfig() convention
// (inspector/info.DefaultConfig): a plain constructor, no flag/env binding.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		IncludeHeader:        true,
		IncludeOverview:      true,
		IncludeMermaidGraph:  true,
		IncludeFileList:      true,
		IncludeSymbolDetails: true,
		TopFileCount:         10,
		FileSectionSeparator: "\n---\n",
		SymbolDetailOptions: SymbolDetailOptions{
			IncludeRelations:   true,
			IncludeLineNumber:  true,
			IncludeCodeSnippet: true,
			MaxRelationsToShow: 10,
		},
	}
}

// Renderer is the exposed contract: a pure function of a RankedCodeGraph and
// RenderOptions. The Markdown implementation lives outside this module
// (spec.md §1); the engine only needs the shape to hand work off.
type Renderer interface {
	Render(graph *RankedCodeGraph, options RenderOptions) ([]byte, error)
}

// Discoverer is the consumed contract: a producer of FileInput obtained from
// a (root, include, ignore, respectVcsIgnore) configuration. Its
// implementation (glob/gitignore traversal) also lives outside this module.
type Discoverer interface {
	Discover(root string, include, ignore []string, respectVcsIgnore bool) ([]FileInput, error)
}
