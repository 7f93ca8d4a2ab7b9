package llrb

import (
	"encoding/json"

	"github.com/qntx/llrbmap/container"
)

// Compile-time interface assertions.
//
// Tree deliberately does not assert container.Map[K, V]: that interface's
// Put(key, value) contract is an upsert, while this package's Put is
// insert-only and reports ErrKeyExists instead of silently
// overwriting — see DESIGN.md for the recorded rationale.
var (
	_ container.Container[int]                   = (*Tree[int, int])(nil)
	_ container.ReverseIteratorWithKey[int, int] = (*Iterator[int, int])(nil)
	_ container.JSONCodec                        = (*Tree[int, int])(nil)
	_ json.Marshaler                             = (*Tree[int, int])(nil)
	_ json.Unmarshaler                           = (*Tree[int, int])(nil)
)
