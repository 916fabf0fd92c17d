package StaticMap

import (
	"fmt"

	"github.com/g-m-twostay/static-map/Maps"
)

// node is a link in a bucket's chain; each node exclusively owns its successor.
type node[K Maps.Hashable, V any] struct {
	k  K
	v  V
	nx *node[K, V]
}

func (u *node[K, V]) String() string {
	return fmt.Sprintf("key: %#v; val: %#v", u.k, u.v)
}
