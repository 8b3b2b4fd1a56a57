package handlers

import (
	"path"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/codegraph-dev/engine/graph"
)

var pythonHandler = Handler{
	PreProcessFile:       pythonPreProcessFile,
	ShouldSkipSymbol:     pythonShouldSkipSymbol,
	ProcessComplexSymbol: pythonProcessComplexSymbol,
	ParseParameters:      pythonParseParameters,
	ResolveImport:        pythonResolveImport,
}

func pythonPreProcessFile(ctx *FileContext, root *sitter.Node) {
	counts := map[string]int{}
	walk(root, func(n *sitter.Node) {
		if n.Type() != "class_definition" {
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

// pythonShouldSkipSymbol skips assignments that are not direct children of
// the module or a class body (i.e. local variables inside a function),
// which the Registry's "assignment" query over-matches by design.
func pythonShouldSkipSymbol(ctx *FileContext, symbolType graph.NodeType, def *sitter.Node) bool {
	if defaultShouldSkipSymbol(ctx, symbolType, def) {
		return true
	}
	if symbolType == graph.NodeFunction {
		// A method of a class whose name repeats in this file is skipped,
		// not emitted as a top-level function.
		if block := def.Parent(); block != nil && block.Type() == "block" {
			if class := block.Parent(); class != nil && class.Type() == "class_definition" {
				if name := class.ChildByFieldName("name"); name != nil {
					dup, _ := ctx.State["duplicateClasses"].(map[string]bool)
					return dup[ctx.Text(name)]
				}
			}
		}
		return false
	}
	if symbolType != graph.NodeVariable {
		return false
	}
	parent := def.Parent() // expression_statement
	if parent == nil {
		return true
	}
	grandparent := parent.Parent() // module or block
	if grandparent == nil {
		return true
	}
	switch grandparent.Type() {
	case "module", "block":
		// A class body's direct statements sit in a "block" whose parent is
		// the class_definition; a function body's block also qualifies, but
		// defaultShouldSkipSymbol already caught that case via the
		// function_definition ancestor check above.
		return false
	default:
		return true
	}
}

// pythonProcessComplexSymbol qualifies a function_definition directly nested
// in a class body as "<Class>.<method>".
func pythonProcessComplexSymbol(ctx *FileContext, symbolType graph.NodeType, def *sitter.Node, nameNode *sitter.Node) (string, bool) {
	if symbolType != graph.NodeFunction {
		return "", false
	}
	block := def.Parent()
	if block == nil || block.Type() != "block" {
		return "", false
	}
	class := block.Parent()
	if class == nil || class.Type() != "class_definition" {
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

// pythonParseParameters strips Python-specific punctuation ("*args",
// "**kwargs", default values, type annotations after ":") the generic
// splitter does not anticipate.
func pythonParseParameters(ctx *FileContext, paramsNode *sitter.Node) []graph.Parameter {
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
		if part == "" || part == "self" || part == "cls" {
			continue
		}
		name, typ := splitNameType(part)
		name = strings.TrimPrefix(name, "**")
		name = strings.TrimPrefix(name, "*")
		if name == "" {
			continue
		}
		params = append(params, graph.Parameter{Name: name, Type: typ})
	}
	return params
}

// pythonResolveImport implements dot-prefixed relative ascent and dotted
// absolute module paths (spec.md §4.4).
func pythonResolveImport(fromFile, rawImport string, allFiles []string, _ ReadFileFunc) (string, bool) {
	set := make(map[string]bool, len(allFiles))
	for _, f := range allFiles {
		set[f] = true
	}

	dotCount := 0
	i := 0
	for i < len(rawImport) && rawImport[i] == '.' {
		dotCount++
		i++
	}
	rest := rawImport[i:]

	var base string
	if dotCount > 0 {
		dir := path.Dir(fromFile)
		for n := 1; n < dotCount; n++ {
			dir = path.Dir(dir)
		}
		if rest == "" {
			base = dir
		} else {
			base = path.Join(dir, strings.ReplaceAll(rest, ".", "/"))
		}
	} else {
		base = strings.ReplaceAll(rest, ".", "/")
	}

	if set[base+".py"] {
		return base + ".py", true
	}
	if set[base+"/__init__.py"] {
		return base + "/__init__.py", true
	}
	return "", false
}
