package take

import (
	"github.com/harshithgowdakt/colvec/internal/array"
	"github.com/harshithgowdakt/colvec/internal/bitmap"
	"github.com/harshithgowdakt/colvec/internal/types"
)

// takeBoolean gathers rows of a bit-packed boolean array. Same algorithm
// as takePrimitive, reading and writing one bit at a time.
func takeBoolean[O types.Offset](src *array.Boolean, indices *array.Primitive[O]) (*array.Boolean, error) {
	n := indices.Len()
	out := bitmap.New(n)
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
			if src.BitAt(idx) {
				out.Set(i)
			}
			sourceValid = !src.IsNull(idx)
		}
		if validity != nil && combinedValid(indexValid, sourceValid) {
			validity.Set(i)
		}
	}
	return array.NewBoolean(out, validity), nil
}
