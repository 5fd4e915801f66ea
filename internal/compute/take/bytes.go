package take

import (
	"github.com/cockroachdb/errors"

	"github.com/harshithgowdakt/colvec/internal/array"
	"github.com/harshithgowdakt/colvec/internal/bitmap"
	"github.com/harshithgowdakt/colvec/internal/types"
)

// takeBytes gathers rows of a variable-length byte array. The output byte
// size is data-dependent, so two passes are required: a sizing pass
// reconstructing the offsets sequence, then a copy pass into a single
// allocation. O is the source's offset width, I the index column's integer
// width; the two vary independently.
func takeBytes[O types.Offset, I types.Offset](src *array.Bytes[O], indices *array.Primitive[I]) (*array.Bytes[O], error) {
	n := indices.Len()
	offsets := make([]O, n+1)
	var validity *bitmap.Bitmap
	if needsValidity(src, indices) {
		validity = bitmap.New(n)
	}

	// Sizing pass. Null output rows contribute zero bytes.
	var total int64
	limit := maxOffset[O]()
	for i := 0; i < n; i++ {
		indexValid := !indices.IsNull(i)
		sourceValid := false
		if indexValid {
			idx, err := asIndex(indices.Values[i])
			if err != nil {
				return nil, err
			}
			sourceValid = !src.IsNull(idx)
			if sourceValid {
				total += int64(src.ValueLen(idx))
				if total > limit {
					return nil, errors.Wrapf(ErrOffsetOverflow, "%d bytes selected", total)
				}
			}
		}
		offsets[i+1] = O(total)
		if validity != nil && combinedValid(indexValid, sourceValid) {
			validity.Set(i)
		}
	}

	// Copy pass.
	data := make([]byte, total)
	for i := 0; i < n; i++ {
		if offsets[i+1] == offsets[i] || indices.IsNull(i) {
			continue
		}
		idx, err := asIndex(indices.Values[i])
		if err != nil {
			return nil, err
		}
		copy(data[offsets[i]:offsets[i+1]], src.ValueBytes(idx))
	}

	return array.NewBytes(src.DataType(), offsets, data, validity), nil
}
