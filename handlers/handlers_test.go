package handlers

import (
	"context"
	"testing"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/golang"
	"github.com/smacker/go-tree-sitter/python"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codegraph-dev/engine/graph"
)

func TestEffective_UnknownLanguageIsAllDefaults(t *testing.T) {
	h := Effective("cobol")
	assert.NotNil(t, h.ShouldSkipSymbol)
	assert.NotNil(t, h.ResolveImport)
	assert.Nil(t, h.ProcessComplexSymbol)
}

func TestEffective_FillsNilFieldsFromDefault(t *testing.T) {
	h := Effective("python")
	assert.NotNil(t, h.ProcessComplexSymbol, "python overrides this hook")
	assert.NotNil(t, h.GetSymbolNameNode, "python has no override; must come from the default")
	assert.NotNil(t, h.ShouldSkipSymbol)
}

func TestSplitTopLevel_RespectsNesting(t *testing.T) {
	parts := splitTopLevel("a: Map<string, int>, b: string", ',')
	require.Len(t, parts, 2)
	assert.Equal(t, "a: Map<string, int>", parts[0])
	assert.Equal(t, " b: string", parts[1])
}

func TestSplitNameType_Variants(t *testing.T) {
	name, typ := splitNameType("count: int = 0")
	assert.Equal(t, "count", name)
	assert.Equal(t, "int", typ)

	name, typ = splitNameType("int argc")
	assert.Equal(t, "argc", name)
	assert.Equal(t, "int", typ)

	name, typ = splitNameType("*buf")
	assert.Equal(t, "buf", name)
	assert.Equal(t, "", typ)
}

// parseGo parses src with the Go grammar and returns its root node.
func parseGo(t *testing.T, src string) (*sitter.Node, []byte) {
	t.Helper()
	parser := sitter.NewParser()
	parser.SetLanguage(golang.GetLanguage())
	tree, err := parser.ParseCtx(context.Background(), nil, []byte(src))
	require.NoError(t, err)
	return tree.RootNode(), []byte(src)
}

func findFirst(root *sitter.Node, nodeType string) *sitter.Node {
	var found *sitter.Node
	walk(root, func(n *sitter.Node) {
		if found == nil && n.Type() == nodeType {
			found = n
		}
	})
	return found
}

func TestGoProcessComplexSymbol_PointerReceiver(t *testing.T) {
	src := `package p

type Foo struct{}

func (f *Foo) Bar() {}
`
	root, src2 := parseGo(t, src)
	method := findFirst(root, "method_declaration")
	require.NotNil(t, method)
	nameNode := method.ChildByFieldName("name")
	require.NotNil(t, nameNode)

	ctx := NewFileContext("foo.go", src2)
	qualified, ok := Effective("go").ProcessComplexSymbol(ctx, graph.NodeMethod, method, nameNode)
	require.True(t, ok)
	assert.Equal(t, "Foo.Bar", qualified)
}

func TestGoProcessComplexSymbol_ValueReceiver(t *testing.T) {
	src := `package p

type Foo struct{}

func (f Foo) Bar() {}
`
	root, src2 := parseGo(t, src)
	method := findFirst(root, "method_declaration")
	require.NotNil(t, method)
	nameNode := method.ChildByFieldName("name")

	ctx := NewFileContext("foo.go", src2)
	qualified, ok := Effective("go").ProcessComplexSymbol(ctx, graph.NodeMethod, method, nameNode)
	require.True(t, ok)
	assert.Equal(t, "Foo.Bar", qualified)
}

func TestGoParseParameters_GroupedNames(t *testing.T) {
	src := `package p

func Add(a, b int, label string) int { return a + b }
`
	root, src2 := parseGo(t, src)
	fn := findFirst(root, "function_declaration")
	require.NotNil(t, fn)
	paramsNode := fn.ChildByFieldName("parameters")
	require.NotNil(t, paramsNode)

	ctx := NewFileContext("foo.go", src2)
	params := Effective("go").ParseParameters(ctx, paramsNode)
	require.Len(t, params, 3)
	assert.Equal(t, graph.Parameter{Name: "a", Type: "int"}, params[0])
	assert.Equal(t, graph.Parameter{Name: "b", Type: "int"}, params[1])
	assert.Equal(t, graph.Parameter{Name: "label", Type: "string"}, params[2])
}

func TestGoResolveImport_DirectorySuffixMatch(t *testing.T) {
	allFiles := []string{
		"go.mod",
		"internal/widget/widget.go",
		"internal/widget/helper.go",
		"cmd/app/main.go",
	}
	resolved, ok := goResolveImport("cmd/app/main.go", "example.com/mod/internal/widget", allFiles, nil)
	require.True(t, ok)
	assert.Equal(t, "internal/widget/helper.go", resolved)
}

func TestGoResolveImport_ModfileExactModulePathMatch(t *testing.T) {
	allFiles := []string{
		"go.mod",
		"internal/widget/widget.go",
		"internal/widget/helper.go",
		"internal/other/helper.go",
		"cmd/app/main.go",
	}
	content := map[string][]byte{
		"go.mod": []byte("module example.com/mod\n\ngo 1.23\n"),
	}
	readFile := func(path string) ([]byte, bool) {
		c, ok := content[path]
		return c, ok
	}
	// "internal/other" also ends in a directory named "helper.go"'s parent,
	// but an exact module-path match must pick the widget package, not fall
	// through to the suffix heuristic's first lexicographic candidate.
	resolved, ok := goResolveImport("cmd/app/main.go", "example.com/mod/internal/widget", allFiles, readFile)
	require.True(t, ok)
	assert.Equal(t, "internal/widget/helper.go", resolved)
}

func TestGoResolveImport_ModfileNestedGoMod(t *testing.T) {
	allFiles := []string{
		"go.mod",
		"tools/go.mod",
		"tools/cmd/gen/main.go",
		"tools/internal/codegen/emit.go",
	}
	content := map[string][]byte{
		"go.mod":       []byte("module example.com/root\n"),
		"tools/go.mod": []byte("module example.com/tools\n"),
	}
	readFile := func(path string) ([]byte, bool) {
		c, ok := content[path]
		return c, ok
	}
	resolved, ok := goResolveImport("tools/cmd/gen/main.go", "example.com/tools/internal/codegen", allFiles, readFile)
	require.True(t, ok)
	assert.Equal(t, "tools/internal/codegen/emit.go", resolved)
}

func TestGoResolveImport_StdlibNeverResolves(t *testing.T) {
	_, ok := goResolveImport("cmd/app/main.go", "fmt", []string{"cmd/app/main.go"}, nil)
	assert.False(t, ok)
}

func parsePython(t *testing.T, src string) (*sitter.Node, []byte) {
	t.Helper()
	parser := sitter.NewParser()
	parser.SetLanguage(python.GetLanguage())
	tree, err := parser.ParseCtx(context.Background(), nil, []byte(src))
	require.NoError(t, err)
	return tree.RootNode(), []byte(src)
}

func TestPythonProcessComplexSymbol_Method(t *testing.T) {
	src := `class Widget:
    def render(self):
        pass
`
	root, src2 := parsePython(t, src)
	fn := findFirst(root, "function_definition")
	require.NotNil(t, fn)
	nameNode := fn.ChildByFieldName("name")

	ctx := NewFileContext("widget.py", src2)
	qualified, ok := Effective("python").ProcessComplexSymbol(ctx, graph.NodeFunction, fn, nameNode)
	require.True(t, ok)
	assert.Equal(t, "Widget.render", qualified)
}

func TestPythonResolveImport_RelativeAscent(t *testing.T) {
	allFiles := []string{
		"pkg/models/base.py",
		"pkg/models/user.py",
		"pkg/views.py",
	}
	resolved, ok := pythonResolveImport("pkg/models/user.py", ".base", allFiles, nil)
	require.True(t, ok)
	assert.Equal(t, "pkg/models/base.py", resolved)

	resolved, ok = pythonResolveImport("pkg/models/user.py", "..views", allFiles, nil)
	require.True(t, ok)
	assert.Equal(t, "pkg/views.py", resolved)
}

func TestPythonResolveImport_AbsoluteDotted(t *testing.T) {
	allFiles := []string{"pkg/models/base.py", "pkg/__init__.py"}
	resolved, ok := pythonResolveImport("pkg/views.py", "pkg.models.base", allFiles, nil)
	require.True(t, ok)
	assert.Equal(t, "pkg/models/base.py", resolved)
}

func TestJavaResolveImport_WildcardNeverResolves(t *testing.T) {
	_, ok := javaResolveImport("src/main/java/com/foo/Bar.java", "com.foo.*", nil, nil)
	assert.False(t, ok)
}

func TestJavaResolveImport_FilenameMirrorsPackage(t *testing.T) {
	allFiles := []string{"src/main/java/com/foo/Baz.java"}
	resolved, ok := javaResolveImport("src/main/java/com/foo/Bar.java", "com.foo.Baz", allFiles, nil)
	require.True(t, ok)
	assert.Equal(t, "src/main/java/com/foo/Baz.java", resolved)
}

func TestRustResolveImport_Crate(t *testing.T) {
	allFiles := []string{"src/lib.rs", "src/util/mod.rs", "src/util/io.rs"}
	resolved, ok := rustResolveImport("src/lib.rs", "crate::util::io", allFiles, nil)
	require.True(t, ok)
	assert.Equal(t, "src/util/io.rs", resolved)
}

func TestRustResolveImport_Super(t *testing.T) {
	allFiles := []string{"src/util/io.rs", "src/helpers.rs"}
	resolved, ok := rustResolveImport("src/util/io.rs", "super::helpers", allFiles, nil)
	require.True(t, ok)
	assert.Equal(t, "src/helpers.rs", resolved)
}

func TestPHPResolveImport_NamespaceSuffixMatch(t *testing.T) {
	allFiles := []string{"src/App/Models/User.php", "src/App/Controllers/UserController.php"}
	resolved, ok := phpResolveImport("src/App/Controllers/UserController.php", `App\Models\User`, allFiles, nil)
	require.True(t, ok)
	assert.Equal(t, "src/App/Models/User.php", resolved)
}

func TestModuleResolveImport_BareSpecifierNeverResolves(t *testing.T) {
	resolve := moduleResolveImport(tsResolveExtensions)
	_, ok := resolve("src/index.ts", "react", []string{"src/index.ts"}, nil)
	assert.False(t, ok)
}

func TestModuleResolveImport_IndexFile(t *testing.T) {
	resolve := moduleResolveImport(tsResolveExtensions)
	allFiles := []string{"src/components/index.ts", "src/index.ts"}
	resolved, ok := resolve("src/index.ts", "./components", allFiles, nil)
	require.True(t, ok)
	assert.Equal(t, "src/components/index.ts", resolved)
}
