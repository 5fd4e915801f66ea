package array

import (
	"github.com/harshithgowdakt/colvec/internal/bitmap"
	"github.com/harshithgowdakt/colvec/internal/types"
)

// Boolean is a bit-packed array of bool values: one bit per row, plus the
// usual validity bitmap.
type Boolean struct {
	bits     *bitmap.Bitmap
	validity *bitmap.Bitmap
}

// NewBoolean wraps packed value bits and an optional validity bitmap.
func NewBoolean(bits *bitmap.Bitmap, validity *bitmap.Bitmap) *Boolean {
	if validity != nil && validity.Len() != bits.Len() {
		panic("array: validity length does not match value count")
	}
	return &Boolean{bits: bits, validity: validity}
}

// BooleanFromValues builds a boolean array from values and a parallel valid
// mask; a nil mask means no nulls.
func BooleanFromValues(values []bool, valid []bool) *Boolean {
	return NewBoolean(bitmap.FromBools(values), validityFromBools(valid))
}

func (a *Boolean) DataType() types.DataType { return types.TypeBool }
func (a *Boolean) Len() int                 { return a.bits.Len() }
func (a *Boolean) Validity() *bitmap.Bitmap { return a.validity }
func (a *Boolean) IsNull(i int) bool        { return isNull(a.validity, i) }
func (a *Boolean) NullN() int               { return nullCount(a.validity, a.bits.Len()) }

// Bits returns the packed value bits. Bits at null rows are unspecified.
func (a *Boolean) Bits() *bitmap.Bitmap { return a.bits }

// BitAt returns the raw value bit at row i without a null check.
func (a *Boolean) BitAt(i int) bool { return a.bits.Get(i) }

func (a *Boolean) Value(i int) types.Value {
	if a.IsNull(i) {
		return nil
	}
	return a.bits.Get(i)
}
