package handlers

import (
	"path"
	"sort"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"golang.org/x/mod/modfile"

	"github.com/codegraph-dev/engine/graph"
)

var goHandler = Handler{
	ProcessComplexSymbol: goProcessComplexSymbol,
	ParseParameters:      goParseParameters,
	ResolveImport:        goResolveImport,
}

// goProcessComplexSymbol qualifies a method_declaration as "<Receiver>.<name>",
// reading the receiver type directly off the node rather than from a
// qualifier capture: a method_declaration always carries exactly one
// receiver, so there is no ambiguous-class case to guard against.
func goProcessComplexSymbol(ctx *FileContext, symbolType graph.NodeType, def *sitter.Node, nameNode *sitter.Node) (string, bool) {
	if symbolType != graph.NodeMethod {
		return "", false
	}
	receiverList := def.ChildByFieldName("receiver")
	if receiverList == nil {
		return "", false
	}
	var receiverType *sitter.Node
	for i := 0; i < int(receiverList.ChildCount()); i++ {
		c := receiverList.Child(i)
		if c != nil && c.Type() == "parameter_declaration" {
			receiverType = c.ChildByFieldName("type")
			break
		}
	}
	if receiverType == nil {
		return "", false
	}
	typeName := goBaseTypeName(ctx, receiverType)
	member := ctx.Text(nameNode)
	if typeName == "" || member == "" {
		return "", false
	}
	return typeName + "." + member, true
}

// goBaseTypeName strips a leading "*" (pointer_type) to reach the bare
// type_identifier text.
func goBaseTypeName(ctx *FileContext, n *sitter.Node) string {
	if n.Type() == "pointer_type" {
		if inner := n.Child(int(n.ChildCount()) - 1); inner != nil {
			return ctx.Text(inner)
		}
	}
	return ctx.Text(n)
}

// goParseParameters handles Go's grouped-name parameter shape ("a, b int")
// in addition to the one-name-per-entry case; the generic splitter assumes
// one name per top-level comma group, which under-counts grouped names.
func goParseParameters(ctx *FileContext, paramsNode *sitter.Node) []graph.Parameter {
	if paramsNode == nil {
		return nil
	}
	var params []graph.Parameter
	for i := 0; i < int(paramsNode.NamedChildCount()); i++ {
		decl := paramsNode.NamedChild(i)
		if decl == nil || decl.Type() != "parameter_declaration" {
			continue
		}
		typeNode := decl.ChildByFieldName("type")
		typ := ""
		if typeNode != nil {
			typ = ctx.Text(typeNode)
		}
		// "a, b int" yields named children [a, b, int]: every named child
		// before the type node is a parameter name.
		var names []*sitter.Node
		for j := 0; j < int(decl.NamedChildCount()); j++ {
			n := decl.NamedChild(j)
			if typeNode != nil && n.StartByte() == typeNode.StartByte() && n.EndByte() == typeNode.EndByte() {
				break
			}
			names = append(names, n)
		}
		if len(names) == 0 {
			params = append(params, graph.Parameter{Type: typ})
			continue
		}
		for _, n := range names {
			params = append(params, graph.Parameter{Name: ctx.Text(n), Type: typ})
		}
	}
	return params
}

// goResolveImport first tries exact module-path resolution: it walks up from
// fromFile to the nearest go.mod, parses it with golang.org/x/mod/modfile to
// learn the module's declared import path, and — when rawImport carries that
// path as a prefix — joins the remainder onto the module's directory. This
// is adapted from the teacher's inspector/repository.Detector (a general
// project-root sniffer) narrowed to Go's one case: locate go.mod, read its
// module path. When no go.mod is reachable (readFile is nil, or none of
// allFiles is a go.mod on the ancestor chain), it falls back to directory-
// suffix matching, which needs no module-path knowledge at all.
func goResolveImport(fromFile, rawImport string, allFiles []string, readFile ReadFileFunc) (string, bool) {
	if modulePath, moduleDir, ok := nearestGoModule(fromFile, allFiles, readFile); ok {
		if rel := strings.TrimPrefix(rawImport, modulePath); rel != rawImport {
			rel = strings.TrimPrefix(rel, "/")
			targetDir := path.Join(moduleDir, rel)
			if file, ok := firstFileInDir(targetDir, allFiles); ok {
				return file, true
			}
		}
	}
	return goResolveImportBySuffix(rawImport, allFiles)
}

// nearestGoModule walks up from fromFile's directory looking for a go.mod
// present in allFiles, parses it, and returns the declared module path plus
// the directory it lives in.
func nearestGoModule(fromFile string, allFiles []string, readFile ReadFileFunc) (modulePath, moduleDir string, ok bool) {
	if readFile == nil {
		return "", "", false
	}
	present := make(map[string]bool, len(allFiles))
	for _, f := range allFiles {
		present[f] = true
	}
	dir := path.Dir(fromFile)
	for {
		candidate := path.Join(dir, "go.mod")
		if present[candidate] {
			content, ok := readFile(candidate)
			if !ok {
				return "", "", false
			}
			mod, err := modfile.Parse(candidate, content, nil)
			if err != nil || mod.Module == nil {
				return "", "", false
			}
			return mod.Module.Mod.Path, dir, true
		}
		parent := path.Dir(dir)
		if parent == dir {
			return "", "", false
		}
		dir = parent
	}
}

// firstFileInDir returns the lexicographically first entry of allFiles whose
// directory is exactly dir.
func firstFileInDir(dir string, allFiles []string) (string, bool) {
	var matches []string
	for _, f := range allFiles {
		if path.Dir(f) == dir {
			matches = append(matches, f)
		}
	}
	if len(matches) == 0 {
		return "", false
	}
	sort.Strings(matches)
	return matches[0], true
}

// goResolveImportBySuffix matches an import path's longest directory suffix
// against allFiles' directories, since Go imports name packages
// (directories), not files (spec.md §4.4).
func goResolveImportBySuffix(rawImport string, allFiles []string) (string, bool) {
	segments := strings.Split(rawImport, "/")
	dirsOf := map[string][]string{}
	for _, f := range allFiles {
		dir := path.Dir(f)
		dirsOf[dir] = append(dirsOf[dir], f)
	}
	var dirs []string
	for d := range dirsOf {
		dirs = append(dirs, d)
	}
	sort.Strings(dirs)

	for start := 0; start < len(segments); start++ {
		suffix := strings.Join(segments[start:], "/")
		var matches []string
		for _, d := range dirs {
			if d == suffix || strings.HasSuffix(d, "/"+suffix) {
				matches = append(matches, d)
			}
		}
		if len(matches) == 0 {
			continue
		}
		sort.Strings(matches)
		files := append([]string(nil), dirsOf[matches[0]]...)
		sort.Strings(files)
		return files[0], true
	}
	return "", false
}
