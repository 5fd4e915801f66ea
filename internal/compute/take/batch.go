package take

import (
	"github.com/harshithgowdakt/colvec/internal/array"
	"github.com/harshithgowdakt/colvec/internal/types"
)

// TakeBatch gathers every column of a batch by the same index column,
// preserving column names. This is the row-reordering primitive operators
// use after computing a permutation or selection.
func TakeBatch[O types.Offset](b *array.Batch, indices *array.Primitive[O]) (*array.Batch, error) {
	cols := make([]array.Array, len(b.Columns))
	for i, c := range b.Columns {
		out, err := Take(c, indices)
		if err != nil {
			return nil, err
		}
		cols[i] = out
	}
	names := make([]string, len(b.Names))
	copy(names, b.Names)
	return array.NewBatch(names, cols)
}
