package StaticMap

import "github.com/g-m-twostay/static-map/Maps"

// bucket owns one chain. Keys within a chain are pairwise distinct; put keeps it that way by overwriting in place.
type bucket[K Maps.Hashable, V any] struct {
	head *node[K, V]
	len  uint
}

// put overwrites the value in place when k is already chained, leaving the chain shape untouched. Unseen keys become the new head, so inserting them is O(1).
func (u *bucket[K, V]) put(k K, v V) {
	for cur := u.head; cur != nil; cur = cur.nx {
		if k.Equal(cur.k) {
			cur.v = v
			return
		}
	}
	u.head = &node[K, V]{k: k, v: v, nx: u.head}
	u.len++
}

func (u *bucket[K, V]) getOrPut(k K, v V) (old V, putted bool) {
	for cur := u.head; cur != nil; cur = cur.nx {
		if k.Equal(cur.k) {
			return cur.v, false
		}
	}
	u.head = &node[K, V]{k: k, v: v, nx: u.head}
	u.len++
	putted = true
	return
}

func (u *bucket[K, V]) get(k K) *node[K, V] {
	for cur := u.head; cur != nil; cur = cur.nx {
		if k.Equal(cur.k) {
			return cur
		}
	}
	return nil
}

// rmv splices the matching node's successor into its predecessor's link, or into head if it was first. Absent keys leave the chain untouched.
func (u *bucket[K, V]) rmv(k K) (v V, removed bool) {
	var prev *node[K, V]
	for cur := u.head; cur != nil; prev, cur = cur, cur.nx {
		if k.Equal(cur.k) {
			if prev == nil {
				u.head = cur.nx
			} else {
				prev.nx = cur.nx
			}
			cur.nx = nil
			u.len--
			return cur.v, true
		}
	}
	return
}
