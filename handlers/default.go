package handlers

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/codegraph-dev/engine/graph"
)

// functionLikeTypes names the node kinds the default ShouldSkipSymbol walks
// past to decide whether a definition sits inside a function body (spec.md
// §4.3 edge-case policy: "local variables inside a function body are not
// emitted as top-level symbols").
var functionLikeTypes = map[string]bool{
	"function_declaration":    true,
	"function_definition":     true,
	"method_definition":       true,
	"method_declaration":      true,
	"arrow_function":          true,
	"function_item":           true,
	"constructor_declaration": true,
}

var defaultHandler = Handler{
	ShouldSkipSymbol:  defaultShouldSkipSymbol,
	GetSymbolNameNode: defaultGetSymbolNameNode,
	ParseParameters:   defaultParseParameters,
	ResolveImport:     defaultResolveImport,
}

// defaultShouldSkipSymbol walks from def's parent to the root; any
// function-like ancestor means def is a local, not a top-level symbol.
func defaultShouldSkipSymbol(_ *FileContext, _ graph.NodeType, def *sitter.Node) bool {
	for p := def.Parent(); p != nil; p = p.Parent() {
		if functionLikeTypes[p.Type()] {
			return true
		}
	}
	return false
}

// defaultGetSymbolNameNode reads the "symbol.name" capture's text; when
// absent (anonymous definitions), languages override this hook themselves.
func defaultGetSymbolNameNode(ctx *FileContext, _ graph.NodeType, _ *sitter.Node, nameNode *sitter.Node) (string, bool) {
	if nameNode == nil {
		return "", false
	}
	name := strings.TrimSpace(ctx.Text(nameNode))
	name = strings.Trim(name, `"'`)
	return name, name != ""
}

// defaultParseParameters splits a parameter list's raw text on top-level
// commas (respecting nested parens/brackets/braces/angle-brackets) and
// guesses name/type by the first top-level ":" in each entry. Good enough
// for TypeScript/PHP/Rust-shaped "name: Type" parameters; languages whose
// parameter node shape differs (Go's trailing-type groups, Python's
// defaults) override this hook.
func defaultParseParameters(ctx *FileContext, paramsNode *sitter.Node) []graph.Parameter {
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
		name, typ := splitNameType(part)
		if name == "" {
			continue
		}
		params = append(params, graph.Parameter{Name: name, Type: typ})
	}
	return params
}

// splitTopLevel splits s on sep, ignoring occurrences nested inside
// (), [], {}, or <>.
func splitTopLevel(s string, sep byte) []string {
	var parts []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(', '[', '{', '<':
			depth++
		case ')', ']', '}', '>':
			if depth > 0 {
				depth--
			}
		default:
			if s[i] == sep && depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, s[start:])
	return parts
}

// splitNameType splits "name: Type" or "Type name" or "name = default" into
// a bare name and an optional type, stripping default-value suffixes.
func splitNameType(part string) (name, typ string) {
	if idx := strings.Index(part, "="); idx >= 0 {
		part = strings.TrimSpace(part[:idx])
	}
	if idx := strings.Index(part, ":"); idx >= 0 {
		name = strings.TrimSpace(part[:idx])
		typ = strings.TrimSpace(part[idx+1:])
		return stripModifiers(name), typ
	}
	// "Type name" (C-family) or a bare name.
	fields := strings.Fields(part)
	switch len(fields) {
	case 0:
		return "", ""
	case 1:
		return stripModifiers(fields[0]), ""
	default:
		return stripModifiers(fields[len(fields)-1]), strings.Join(fields[:len(fields)-1], " ")
	}
}

func stripModifiers(name string) string {
	name = strings.TrimPrefix(name, "*")
	name = strings.TrimPrefix(name, "&")
	name = strings.TrimPrefix(name, "...")
	name = strings.TrimPrefix(name, "$")
	return strings.TrimSpace(name)
}

// defaultResolveImport never resolves; every language-specific handler must
// supply its own algorithm (spec.md §4.4).
func defaultResolveImport(string, string, []string, ReadFileFunc) (string, bool) {
	return "", false
}
