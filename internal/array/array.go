// Package array implements the in-memory columnar array representations:
// fixed-width primitives, bit-packed booleans, variable-length byte
// sequences, and dictionary-encoded columns. Arrays are immutable once
// constructed and are shared by reference; operations that reshape rows
// always allocate new arrays.
package array

import (
	"github.com/harshithgowdakt/colvec/internal/bitmap"
	"github.com/harshithgowdakt/colvec/internal/types"
)

// Array is an immutable columnar array of a single logical type.
type Array interface {
	DataType() types.DataType
	Len() int
	// Validity returns the validity bitmap, or nil when every row is valid.
	// A clear bit marks the row NULL.
	Validity() *bitmap.Bitmap
	IsNull(i int) bool
	NullN() int
	// Value returns the boxed value at row i, or nil when the row is null.
	Value(i int) types.Value
}

// validityFromBools builds a validity bitmap from a parallel mask, or nil
// when the mask is nil (all rows valid).
func validityFromBools(valid []bool) *bitmap.Bitmap {
	if valid == nil {
		return nil
	}
	return bitmap.FromBools(valid)
}

func isNull(validity *bitmap.Bitmap, i int) bool {
	return validity != nil && !validity.Get(i)
}

func nullCount(validity *bitmap.Bitmap, length int) int {
	if validity == nil {
		return 0
	}
	return length - validity.CountSet()
}
