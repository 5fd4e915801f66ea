package take

import (
	"github.com/harshithgowdakt/colvec/internal/array"
	"github.com/harshithgowdakt/colvec/internal/bitmap"
	"github.com/harshithgowdakt/colvec/internal/types"
)

// takePrimitive gathers rows of a fixed-width array. Index validity is
// checked before the index payload is read: a null slot may carry a stale
// value that must never address the source buffer.
func takePrimitive[T types.Native, O types.Offset](src *array.Primitive[T], indices *array.Primitive[O]) (*array.Primitive[T], error) {
	n := indices.Len()
	out := make([]T, n)
	var validity *bitmap.Bitmap
	if needsValidity(src, indices) {
		validity = bitmap.New(n)
	}
	for i := 0; i < n; i++ {
		indexValid := !indices.IsNull(i)
		sourceValid := false
		if indexValid {
			idx, err := asIndex(indices.Values[i])
			if err != nil {
				return nil, err
			}
			out[i] = src.Values[idx]
			sourceValid = !src.IsNull(idx)
		}
		if validity != nil && combinedValid(indexValid, sourceValid) {
			validity.Set(i)
		}
	}
	return array.NewPrimitive(src.DataType(), out, validity), nil
}
