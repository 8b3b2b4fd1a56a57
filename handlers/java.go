package handlers

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/codegraph-dev/engine/graph"
)

var javaHandler = Handler{
	PreProcessFile:       javaPreProcessFile,
	ProcessComplexSymbol: javaProcessComplexSymbol,
	ResolveImport:        javaResolveImport,
}

func javaPreProcessFile(ctx *FileContext, root *sitter.Node) {
	counts := map[string]int{}
	walk(root, func(n *sitter.Node) {
		if n.Type() != "class_declaration" {
			return
		}
		if name := n.ChildByFieldName("name"); name != nil {
			counts[ctx.Text(name)]++
		}
	})
	dup := map[string]bool{}
	for name, count := range counts {
		if count > 1 {
			dup[name] = true
		}
	}
	ctx.State["duplicateClasses"] = dup
}

// javaProcessComplexSymbol qualifies a method/constructor/field as
// "<Class>.<member>"; Java, like PHP, has no out-of-line member definitions.
func javaProcessComplexSymbol(ctx *FileContext, symbolType graph.NodeType, def *sitter.Node, nameNode *sitter.Node) (string, bool) {
	switch symbolType {
	case graph.NodeMethod, graph.NodeConstructor, graph.NodeField:
	default:
		return "", false
	}
	class := enclosingAny(def, "class_declaration", "interface_declaration")
	if class == nil {
		return "", false
	}
	classNameNode := class.ChildByFieldName("name")
	if classNameNode == nil {
		return "", false
	}
	className := ctx.Text(classNameNode)
	if dup, _ := ctx.State["duplicateClasses"].(map[string]bool); dup != nil && dup[className] {
		return "", false
	}
	member := ctx.Text(nameNode)
	if member == "" {
		return "", false
	}
	return className + "." + member, true
}

// javaResolveImport mirrors a fully-qualified import onto a path (spec.md
// §4.4: "Java resolution is filename-mirrors-package only, no classpath
// search"). Wildcard imports ("com.foo.*") name a package, not a file, and
// never resolve.
func javaResolveImport(fromFile, rawImport string, allFiles []string, _ ReadFileFunc) (string, bool) {
	if strings.HasSuffix(rawImport, ".*") {
		return "", false
	}
	set := make(map[string]bool, len(allFiles))
	for _, f := range allFiles {
		set[f] = true
	}
	candidate := strings.ReplaceAll(rawImport, ".", "/") + ".java"
	if set[candidate] {
		return candidate, true
	}
	suffix := "/" + candidate
	for _, f := range allFiles {
		if strings.HasSuffix(f, suffix) {
			return f, true
		}
	}
	return "", false
}
