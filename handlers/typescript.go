package handlers

import (
	"path"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/codegraph-dev/engine/graph"
)

var tsResolveExtensions = []string{".ts", ".tsx", ".js", ".jsx", ".mjs", ".cjs"}

var typeScriptHandler = Handler{
	PreProcessFile:        tsPreProcessFile,
	ShouldSkipSymbol:      tsShouldSkipSymbol,
	GetSymbolNameNode:     tsGetSymbolNameNode,
	ProcessComplexSymbol:  tsProcessComplexSymbol,
	ParseParameters:       tsParseParameters,
	ResolveImport:         moduleResolveImport(tsResolveExtensions),
}

// tsPreProcessFile records which class names occur more than once, the
// state tsProcessComplexSymbol consults to suppress ambiguous method
// attachment (spec.md §4.3 edge-case policy).
func tsPreProcessFile(ctx *FileContext, root *sitter.Node) {
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

// tsShouldSkipSymbol adds one rule on top of the default local-variable
// check: a variable_declarator whose value is an arrow_function is skipped
// because the arrow_function.definition pattern already owns that symbol.
func tsShouldSkipSymbol(ctx *FileContext, symbolType graph.NodeType, def *sitter.Node) bool {
	if defaultShouldSkipSymbol(ctx, symbolType, def) {
		return true
	}
	if symbolType == graph.NodeVariable && def.Type() == "variable_declarator" {
		if value := def.ChildByFieldName("value"); value != nil && value.Type() == "arrow_function" {
			return true
		}
	}
	return false
}

// tsGetSymbolNameNode names an anonymous default-exported function/class
// "default" (spec.md §4.3 edge-case policy), otherwise defers to the
// default's capture-text behavior.
func tsGetSymbolNameNode(ctx *FileContext, symbolType graph.NodeType, def *sitter.Node, nameNode *sitter.Node) (string, bool) {
	if nameNode == nil {
		if isDefaultExport(def) {
			return "default", true
		}
		return "", false
	}
	return defaultGetSymbolNameNode(ctx, symbolType, def, nameNode)
}

func isDefaultExport(def *sitter.Node) bool {
	p := def.Parent()
	if p == nil || p.Type() != "export_statement" {
		return false
	}
	return nodeHasChildOfType(p, "default")
}

func nodeHasChildOfType(n *sitter.Node, typ string) bool {
	for i := 0; i < int(n.ChildCount()); i++ {
		if c := n.Child(i); c != nil && c.Type() == typ {
			return true
		}
	}
	return false
}

// tsProcessComplexSymbol qualifies method_definition and public_field
// definitions as "<Class>.<member>", skipping when the enclosing class name
// repeats in this file.
func tsProcessComplexSymbol(ctx *FileContext, symbolType graph.NodeType, def *sitter.Node, nameNode *sitter.Node) (string, bool) {
	if symbolType != graph.NodeMethod && symbolType != graph.NodeField {
		return "", false
	}
	class := enclosingNamed(def, "class_declaration")
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

// enclosingNamed walks up from n's parent looking for the nearest ancestor
// of type typ.
func enclosingNamed(n *sitter.Node, typ string) *sitter.Node {
	for p := n.Parent(); p != nil; p = p.Parent() {
		if p.Type() == typ {
			return p
		}
	}
	return nil
}

// tsParseParameters handles TypeScript's "name?: Type" optionality marker
// and destructuring patterns ("{a, b}: Props") before falling back to the
// generic name/type split.
func tsParseParameters(ctx *FileContext, paramsNode *sitter.Node) []graph.Parameter {
	if paramsNode == nil {
		return nil
	}
	raw := ctx.Text(paramsNode)
	raw = strings.TrimPrefix(raw, "(")
	raw = strings.TrimSuffix(raw, ")")
	parts := splitTopLevel(raw, ',')

	var params []graph.Parameter
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if strings.HasPrefix(part, "{") || strings.HasPrefix(part, "[") {
			name, typ := splitDestructuredType(part)
			params = append(params, graph.Parameter{Name: name, Type: typ})
			continue
		}
		name, typ := splitNameType(part)
		name = strings.TrimSuffix(name, "?")
		if name == "" {
			continue
		}
		params = append(params, graph.Parameter{Name: name, Type: typ})
	}
	return params
}

func splitDestructuredType(part string) (name, typ string) {
	depth := 0
	for i := 0; i < len(part); i++ {
		switch part[i] {
		case '{', '[':
			depth++
		case '}', ']':
			depth--
		case ':':
			if depth == 0 {
				return strings.TrimSpace(part[:i]), strings.TrimSpace(part[i+1:])
			}
		}
	}
	return strings.TrimSpace(part), ""
}

// moduleResolveImport implements the Module resolver algorithm shared by
// TypeScript and JavaScript (spec.md §4.4): try the path verbatim, then each
// extension appended/substituted, then "<path>/index<ext>".
func moduleResolveImport(extensions []string) func(string, string, []string, ReadFileFunc) (string, bool) {
	return func(fromFile, rawImport string, allFiles []string, _ ReadFileFunc) (string, bool) {
		if !strings.HasPrefix(rawImport, ".") {
			return "", false // bare module specifiers (npm packages) never resolve to a file
		}
		dir := path.Dir(fromFile)
		base := path.Join(dir, rawImport)
		base = path.Clean(base)

		set := make(map[string]bool, len(allFiles))
		for _, f := range allFiles {
			set[f] = true
		}

		if set[base] {
			return base, true
		}
		for _, ext := range extensions {
			if set[base+ext] {
				return base + ext, true
			}
		}
		if stem := strings.TrimSuffix(base, path.Ext(base)); stem != base {
			for _, ext := range extensions {
				if set[stem+ext] {
					return stem + ext, true
				}
			}
		}
		for _, ext := range extensions {
			candidate := base + "/index" + ext
			if set[candidate] {
				return candidate, true
			}
		}
		return "", false
	}
}
