package handlers

import sitter "github.com/smacker/go-tree-sitter"

// walk visits every node in the subtree rooted at n, depth-first, calling
// visit on each. Used by PreProcessFile hooks that need a whole-file scan
// (e.g. counting duplicate class names) independent of the capture query.
func walk(n *sitter.Node, visit func(*sitter.Node)) {
	if n == nil {
		return
	}
	visit(n)
	for i := 0; i < int(n.ChildCount()); i++ {
		walk(n.Child(i), visit)
	}
}
