/*
Package StaticMap implements a separately chained hashmap over a bucket array whose size is fixed at construction and never changes.

Unlike the other map flavors there is no splitting or merging: with a fixed bucket count, lookup degrades to O(n) under unlucky key distributions. This is a deliberate tradeoff for predictable memory and zero resize pauses, not something the map works around.

All operations are single-threaded and run to completion on the calling goroutine. If you need concurrent access, guard the whole map with one lock, or shard by bucket; buckets are independent.
*/
package StaticMap

import "github.com/g-m-twostay/static-map/Maps"

const bucketCount = 8

// StaticMap maps K to V across bucketCount chains. It implements Maps.Map.
type StaticMap[K Maps.Hashable, V any] struct {
	buckets [bucketCount]bucket[K, V]
}

// New StaticMap with all buckets empty.
func New[K Maps.Hashable, V any]() *StaticMap[K, V] {
	return new(StaticMap[K, V])
}

func (u *StaticMap[K, V]) rehash(k K) uint {
	return k.Hash() % bucketCount
}

// Size sums the live entries over all buckets.
func (u *StaticMap[K, V]) Size() uint {
	var sz uint
	for i := range u.buckets {
		sz += u.buckets[i].len
	}
	return sz
}

func (u *StaticMap[K, V]) Put(key K, val V) {
	u.buckets[u.rehash(key)].put(key, val)
}

func (u *StaticMap[K, V]) Get(key K) (val V, have bool) {
	if r := u.buckets[u.rehash(key)].get(key); r != nil {
		val, have = r.v, true
	}
	return
}

// GetPtr returns a pointer to the value stored under key, nil if the key is absent. The pointer stays valid until the key is removed; writes through it are visible to later Gets.
func (u *StaticMap[K, V]) GetPtr(key K) *V {
	if r := u.buckets[u.rehash(key)].get(key); r != nil {
		return &r.v
	}
	return nil
}

func (u *StaticMap[K, V]) HasKey(key K) bool {
	return u.buckets[u.rehash(key)].get(key) != nil
}

// Remove the key. Removing an absent key is a no-op, not an error.
func (u *StaticMap[K, V]) Remove(key K) {
	u.buckets[u.rehash(key)].rmv(key)
}

// GetAndRmv removes the key and returns the value it held, if any.
func (u *StaticMap[K, V]) GetAndRmv(key K) (V, bool) {
	return u.buckets[u.rehash(key)].rmv(key)
}

// GetOrPut returns the existing value for key, or stores val when the key is absent. putted reports whether val was stored.
func (u *StaticMap[K, V]) GetOrPut(key K, val V) (oldVal V, putted bool) {
	return u.buckets[u.rehash(key)].getOrPut(key, val)
}

func (u *StaticMap[K, V]) PrintAll() {
	for i := range u.buckets {
		for cur := u.buckets[i].head; cur != nil; cur = cur.nx {
			println("bucket: ", i, "; ", cur.String())
		}
	}
}
