package handlers

import (
	"path"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/codegraph-dev/engine/graph"
)

var rustHandler = Handler{
	ProcessComplexSymbol: rustProcessComplexSymbol,
	ParseParameters:      rustParseParameters,
	ResolveImport:        rustResolveImport,
}

// rustProcessComplexSymbol qualifies a function_item declared inside an
// impl_item's body as "<Type>.<fn>"; rustQuery has no separate capture for
// associated functions, so every impl method first surfaces as a plain
// function.definition and is qualified here.
func rustProcessComplexSymbol(ctx *FileContext, symbolType graph.NodeType, def *sitter.Node, nameNode *sitter.Node) (string, bool) {
	if symbolType != graph.NodeFunction {
		return "", false
	}
	body := def.Parent()
	if body == nil || body.Type() != "declaration_list" {
		return "", false
	}
	impl := body.Parent()
	if impl == nil || impl.Type() != "impl_item" {
		return "", false
	}
	typeNode := impl.ChildByFieldName("type")
	if typeNode == nil {
		return "", false
	}
	typeName := ctx.Text(typeNode)
	member := ctx.Text(nameNode)
	if typeName == "" || member == "" {
		return "", false
	}
	return typeName + "." + member, true
}

// rustParseParameters skips the implicit "self" receiver the grammar models
// as a distinct self_parameter node (no pattern/type fields of its own).
func rustParseParameters(ctx *FileContext, paramsNode *sitter.Node) []graph.Parameter {
	if paramsNode == nil {
		return nil
	}
	var params []graph.Parameter
	for i := 0; i < int(paramsNode.NamedChildCount()); i++ {
		p := paramsNode.NamedChild(i)
		if p == nil || p.Type() != "parameter" {
			continue
		}
		name := ""
		if patternNode := p.ChildByFieldName("pattern"); patternNode != nil {
			name = ctx.Text(patternNode)
		}
		if name == "" {
			continue
		}
		typ := ""
		if typeNode := p.ChildByFieldName("type"); typeNode != nil {
			typ = ctx.Text(typeNode)
		}
		params = append(params, graph.Parameter{Name: name, Type: typ})
	}
	return params
}

// rustResolveImport walks a "::"-separated use path: "crate" anchors at the
// crate root (by convention, "src/"), "super"/"self" walk relative to the
// importing file's directory, and anything else is treated as already
// relative to that directory (a sibling module path). The trailing segment
// may name an item rather than a module, so resolution tries progressively
// shorter module prefixes until one matches a file.
func rustResolveImport(fromFile, rawImport string, allFiles []string, _ ReadFileFunc) (string, bool) {
	set := make(map[string]bool, len(allFiles))
	for _, f := range allFiles {
		set[f] = true
	}

	segments := strings.Split(rawImport, "::")
	dir := path.Dir(fromFile)
	base := dir

	if len(segments) > 0 {
		switch segments[0] {
		case "crate":
			base = "src"
			segments = segments[1:]
		case "self":
			segments = segments[1:]
		case "super":
			for len(segments) > 0 && segments[0] == "super" {
				base = path.Dir(base)
				segments = segments[1:]
			}
		}
	}

	if len(segments) == 0 {
		if set[base+".rs"] {
			return base + ".rs", true
		}
		if set[base+"/mod.rs"] {
			return base + "/mod.rs", true
		}
		return "", false
	}

	for end := len(segments); end >= 1; end-- {
		modPath := strings.Join(segments[:end], "/")
		candidate := path.Join(base, modPath) + ".rs"
		if set[candidate] {
			return candidate, true
		}
		candidate = path.Join(base, modPath, "mod.rs")
		if set[candidate] {
			return candidate, true
		}
	}
	return "", false
}
