package array

import (
	"fmt"

	"github.com/harshithgowdakt/colvec/internal/bitmap"
	"github.com/harshithgowdakt/colvec/internal/types"
)

// Primitive is a fixed-width array of native values. Several logical types
// share one native width (Date32 and Int32 are both int32-backed), so the
// logical tag travels alongside the value slice.
type Primitive[T types.Native] struct {
	dtype    types.DataType
	Values   []T
	validity *bitmap.Bitmap
}

// NewPrimitive wraps a value slice and optional validity bitmap. The
// logical type's byte width must match T.
func NewPrimitive[T types.Native](dt types.DataType, values []T, validity *bitmap.Bitmap) *Primitive[T] {
	var zero T
	if !dt.IsFixedWidth() || nativeWidth[T]() != dt.FixedSize() {
		panic(fmt.Sprintf("array: %s cannot be backed by %T values", dt.Name(), zero))
	}
	if validity != nil && validity.Len() != len(values) {
		panic("array: validity length does not match value count")
	}
	return &Primitive[T]{dtype: dt, Values: values, validity: validity}
}

// PrimitiveFromValues builds a fixed-width array from values and a parallel
// valid mask; a nil mask means no nulls.
func PrimitiveFromValues[T types.Native](dt types.DataType, values []T, valid []bool) *Primitive[T] {
	return NewPrimitive(dt, values, validityFromBools(valid))
}

func (a *Primitive[T]) DataType() types.DataType  { return a.dtype }
func (a *Primitive[T]) Len() int                  { return len(a.Values) }
func (a *Primitive[T]) Validity() *bitmap.Bitmap  { return a.validity }
func (a *Primitive[T]) IsNull(i int) bool         { return isNull(a.validity, i) }
func (a *Primitive[T]) NullN() int                { return nullCount(a.validity, len(a.Values)) }

func (a *Primitive[T]) Value(i int) types.Value {
	if a.IsNull(i) {
		return nil
	}
	return a.Values[i]
}

func nativeWidth[T types.Native]() int {
	switch any(T(0)).(type) {
	case int8, uint8:
		return 1
	case int16, uint16:
		return 2
	case int32, uint32, float32:
		return 4
	default:
		return 8
	}
}
