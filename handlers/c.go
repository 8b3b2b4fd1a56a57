package handlers

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/codegraph-dev/engine/graph"
)

var cHandler = Handler{
	ParseParameters: cParseParameters,
}

// cParseParameters walks a parameter_list's parameter_declaration children
// directly instead of text-splitting: C's declarator syntax ("int *argc[]")
// puts the name at the bottom of a nested pointer/array declarator, which a
// comma/colon text split cannot recover reliably.
func cParseParameters(ctx *FileContext, paramsNode *sitter.Node) []graph.Parameter {
	if paramsNode == nil {
		return nil
	}
	var params []graph.Parameter
	for i := 0; i < int(paramsNode.NamedChildCount()); i++ {
		decl := paramsNode.NamedChild(i)
		if decl == nil {
			continue
		}
		if decl.Type() == "variadic_parameter" {
			params = append(params, graph.Parameter{Name: "..."})
			continue
		}
		if decl.Type() != "parameter_declaration" {
			continue
		}
		typeNode := decl.ChildByFieldName("type")
		typ := ""
		if typeNode != nil {
			typ = ctx.Text(typeNode)
		}
		declarator := decl.ChildByFieldName("declarator")
		name := cDeclaratorName(ctx, declarator)
		if name == "" {
			params = append(params, graph.Parameter{Type: typ})
			continue
		}
		params = append(params, graph.Parameter{Name: name, Type: typ})
	}
	return params
}

// cDeclaratorName descends through pointer_declarator/array_declarator
// wrappers to the identifier at the core of a C declarator.
func cDeclaratorName(ctx *FileContext, n *sitter.Node) string {
	for n != nil {
		switch n.Type() {
		case "identifier", "field_identifier":
			return ctx.Text(n)
		case "pointer_declarator", "array_declarator", "function_declarator", "parenthesized_declarator":
			if inner := n.ChildByFieldName("declarator"); inner != nil {
				n = inner
				continue
			}
			return ""
		default:
			return ""
		}
	}
	return ""
}

var cppHandler = Handler{
	ProcessComplexSymbol: cppProcessComplexSymbol,
	ParseParameters:      cParseParameters,
}

// cppProcessComplexSymbol qualifies a method definition as
// "<Class>.<member>". cppQuery captures two shapes: an out-of-line
// definition ("void Foo::bar(...)"), whose function_declarator holds a
// qualified_identifier and whose class is that identifier's scope, and an
// in-class definition (a field_identifier name), whose class is the
// enclosing class_specifier or struct_specifier.
func cppProcessComplexSymbol(ctx *FileContext, symbolType graph.NodeType, def *sitter.Node, nameNode *sitter.Node) (string, bool) {
	if symbolType != graph.NodeMethod {
		return "", false
	}
	declarator := def.ChildByFieldName("declarator")
	if declarator == nil {
		return "", false
	}
	className := ""
	if inner := declarator.ChildByFieldName("declarator"); inner != nil && inner.Type() == "qualified_identifier" {
		if scope := inner.ChildByFieldName("scope"); scope != nil {
			className = ctx.Text(scope)
		}
	} else if class := enclosingAny(def, "class_specifier", "struct_specifier"); class != nil {
		className = ctx.Text(class.ChildByFieldName("name"))
	}
	member := ctx.Text(nameNode)
	if className == "" || member == "" {
		return "", false
	}
	return className + "." + member, true
}
