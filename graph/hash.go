package graph

import "github.com/minio/highwayhash"

// hashKey is a fixed 32-byte key, same approach the teacher used for its
// document-content hash (inspector/graph/hash.go): HighwayHash needs a key,
// not a secret, so a constant is fine here.
var hashKey = []byte("0123456789ABCDEF0123456789ABCDEF")

// Hash64 returns a fast, non-cryptographic 64-bit hash of data. Used by
// EdgeKey for the resolver's edge-dedup set, where a collision-resistant
// hash is unnecessary overhead.
func Hash64(data []byte) (uint64, error) {
	h, err := highwayhash.New64(hashKey)
	if err != nil {
		return 0, err
	}
	_, err = h.Write(data)
	return h.Sum64(), err
}

// EdgeKey returns the stable 64-bit key of an edge's (fromId, toId, type)
// triple, the unit the Symbol Resolver deduplicates on (spec.md §4.6).
func EdgeKey(e CodeEdge) uint64 {
	buf := make([]byte, 0, len(e.FromID)+len(e.ToID)+len(e.Type)+2)
	buf = append(buf, e.FromID...)
	buf = append(buf, 0)
	buf = append(buf, e.ToID...)
	buf = append(buf, 0)
	buf = append(buf, e.Type...)
	key, err := Hash64(buf)
	if err != nil {
		return 0
	}
	return key
}
