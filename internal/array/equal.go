package array

import (
	"bytes"

	"github.com/harshithgowdakt/colvec/internal/types"
)

// Equal reports whether two arrays are logically equal: same logical type,
// length, null pattern, and equal values at every valid row. Dictionary
// arrays compare by their logical values, not their physical keys.
func Equal(a, b Array) bool {
	if a.DataType() != b.DataType() || a.Len() != b.Len() {
		return false
	}
	if da, ok := a.(interface{ ValueType() types.DataType }); ok {
		db, ok := b.(interface{ ValueType() types.DataType })
		if !ok || da.ValueType() != db.ValueType() {
			return false
		}
	}
	for i := 0; i < a.Len(); i++ {
		if a.IsNull(i) != b.IsNull(i) {
			return false
		}
		if a.IsNull(i) {
			continue
		}
		if !valueEqual(a.Value(i), b.Value(i)) {
			return false
		}
	}
	return true
}

func valueEqual(x, y types.Value) bool {
	if xb, ok := x.([]byte); ok {
		yb, ok := y.([]byte)
		return ok && bytes.Equal(xb, yb)
	}
	return x == y
}
