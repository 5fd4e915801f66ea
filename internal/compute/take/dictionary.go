package take

import (
	"github.com/harshithgowdakt/colvec/internal/array"
	"github.com/harshithgowdakt/colvec/internal/types"
)

// takeDictionary gathers only the keys array; the values pool is shared
// with the input by reference, never re-materialized or deduplicated. A
// null in the gathered keys (from either the original key's validity or
// the index's validity) makes the logical row null.
func takeDictionary[K types.DictKey, O types.Offset](src *array.Dictionary[K], indices *array.Primitive[O]) (*array.Dictionary[K], error) {
	keys, err := takePrimitive(src.Keys, indices)
	if err != nil {
		return nil, err
	}
	return array.NewDictionary(keys, src.Values), nil
}
