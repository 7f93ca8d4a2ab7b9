package llrbset

import (
	"encoding/json"

	"github.com/qntx/llrbmap/container"
)

// Compile-time interface assertions.
var (
	_ container.Container[int]          = (*Set[int])(nil)
	_ container.EnumerableWithIndex[int] = (*Set[int])(nil)
	_ container.JSONCodec                = (*Set[int])(nil)
	_ json.Marshaler                     = (*Set[int])(nil)
	_ json.Unmarshaler                   = (*Set[int])(nil)
)
