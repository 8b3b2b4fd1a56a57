package handlers

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/codegraph-dev/engine/graph"
)

var phpHandler = Handler{
	PreProcessFile:       phpPreProcessFile,
	GetSymbolNameNode:    phpGetSymbolNameNode,
	ProcessComplexSymbol: phpProcessComplexSymbol,
	ResolveImport:        phpResolveImport,
}

func phpPreProcessFile(ctx *FileContext, root *sitter.Node) {
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

// phpGetSymbolNameNode names a property_declaration from its first
// property_element's variable_name, since phpQuery captures the whole
// declaration (it may list several properties) rather than a single name.
func phpGetSymbolNameNode(ctx *FileContext, symbolType graph.NodeType, def *sitter.Node, nameNode *sitter.Node) (string, bool) {
	if nameNode != nil {
		return defaultGetSymbolNameNode(ctx, symbolType, def, nameNode)
	}
	if symbolType != graph.NodeField {
		return "", false
	}
	for i := 0; i < int(def.NamedChildCount()); i++ {
		c := def.NamedChild(i)
		if c == nil || c.Type() != "property_element" {
			continue
		}
		if varNode := c.ChildByFieldName("name"); varNode != nil {
			return strings.TrimPrefix(ctx.Text(varNode), "$"), true
		}
		// property_element's first named child is the variable_name when the
		// grammar carries no explicit "name" field.
		if varNode := c.NamedChild(0); varNode != nil {
			return strings.TrimPrefix(ctx.Text(varNode), "$"), true
		}
	}
	return "", false
}

// phpProcessComplexSymbol qualifies a method_declaration or field as
// "<Class>.<member>"; PHP has no out-of-line method definitions, so the
// enclosing class is always the immediate declaration_list's parent.
func phpProcessComplexSymbol(ctx *FileContext, symbolType graph.NodeType, def *sitter.Node, nameNode *sitter.Node) (string, bool) {
	if symbolType != graph.NodeMethod && symbolType != graph.NodeField {
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
	member := ""
	if nameNode != nil {
		member = ctx.Text(nameNode)
	} else if name, ok := phpGetSymbolNameNode(ctx, symbolType, def, nil); ok {
		member = name
	}
	if member == "" {
		return "", false
	}
	return className + "." + member, true
}

func enclosingAny(n *sitter.Node, types ...string) *sitter.Node {
	for p := n.Parent(); p != nil; p = p.Parent() {
		for _, t := range types {
			if p.Type() == t {
				return p
			}
		}
	}
	return nil
}

// phpResolveImport follows PSR-4: a namespace path's segments mirror the
// directory structure beneath some source root, so the file is found by
// matching the namespace-derived relative path, then progressively shorter
// trailing parts of it, against the suffix of every candidate file.
func phpResolveImport(fromFile, rawImport string, allFiles []string, _ ReadFileFunc) (string, bool) {
	segments := strings.Split(strings.ReplaceAll(rawImport, `\`, "/"), "/")
	set := make(map[string]bool, len(allFiles))
	for _, f := range allFiles {
		set[f] = true
	}
	for start := 0; start < len(segments); start++ {
		candidate := strings.Join(segments[start:], "/") + ".php"
		if set[candidate] {
			return candidate, true
		}
		suffix := "/" + candidate
		for _, f := range allFiles {
			if strings.HasSuffix(f, suffix) {
				return f, true
			}
		}
	}
	return "", false
}
