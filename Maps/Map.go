package Maps

// Hashable is the key contract shared by all maps in this module.
type Hashable interface {
	// Hash must return the same value for equal keys within one process run. No seed is pinned, so values may differ between runs.
	Hash() uint
	Equal(other Hashable) bool
}

// Map is the read-write surface shared by the map flavors in this module.
type Map[K Hashable, V any] interface {
	Put(K, V)
	Get(K) (V, bool)
	HasKey(K) bool
	Remove(K)
	Size() uint
}
