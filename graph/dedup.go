package graph

// DeduplicateEdges removes duplicate (fromId, toId, type) triples, keeping
// the first occurrence's order. Idempotent: calling it again on its own
// output returns an equal slice (spec.md §8, "de-duplication is idempotent").
func DeduplicateEdges(edges []CodeEdge) []CodeEdge {
	seen := make(map[uint64]struct{}, len(edges))
	out := make([]CodeEdge, 0, len(edges))
	for _, e := range edges {
		key := EdgeKey(e)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, e)
	}
	return out
}
