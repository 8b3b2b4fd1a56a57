package handlers

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/codegraph-dev/engine/graph"
)

var javaScriptHandler = Handler{
	PreProcessFile:       tsPreProcessFile, // same duplicate-class-name scan; class_declaration exists in both grammars
	ShouldSkipSymbol:     tsShouldSkipSymbol,
	GetSymbolNameNode:    tsGetSymbolNameNode,
	ProcessComplexSymbol: jsProcessComplexSymbol,
	ParseParameters:      jsParseParameters,
	ResolveImport:        moduleResolveImport(tsResolveExtensions),
}

// jsProcessComplexSymbol applies tsProcessComplexSymbol's rule to
// JavaScript's method_definition and field_definition captures (TypeScript's
// field capture is public_field_definition instead).
func jsProcessComplexSymbol(ctx *FileContext, symbolType graph.NodeType, def *sitter.Node, nameNode *sitter.Node) (string, bool) {
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

// jsParseParameters is the untyped analogue of tsParseParameters: no ":
// Type" suffixes exist, but destructuring and default values still do.
func jsParseParameters(ctx *FileContext, paramsNode *sitter.Node) []graph.Parameter {
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
		if idx := strings.Index(part, "="); idx >= 0 {
			part = strings.TrimSpace(part[:idx])
		}
		params = append(params, graph.Parameter{Name: part})
	}
	return params
}
