package array

import (
	"fmt"

	"github.com/harshithgowdakt/colvec/internal/bitmap"
	"github.com/harshithgowdakt/colvec/internal/types"
)

// Bytes is a variable-length byte array. Row i spans
// Data[Offsets[i]:Offsets[i+1]]. Offsets has length Len()+1, starts at
// zero, and is non-decreasing; a violated offsets sequence is undefined
// for downstream consumers.
type Bytes[O types.Offset] struct {
	dtype    types.DataType
	Offsets  []O
	Data     []byte
	validity *bitmap.Bitmap
}

// NewBytes wraps an offsets sequence, a flat byte buffer, and an optional
// validity bitmap. The logical type's offset width must match O: String
// and Binary use 32-bit offsets, the Large variants 64-bit.
func NewBytes[O types.Offset](dt types.DataType, offsets []O, data []byte, validity *bitmap.Bitmap) *Bytes[O] {
	if !dt.IsVarLen() || offsetWidth[O]() != varLenOffsetWidth(dt) {
		var zero O
		panic(fmt.Sprintf("array: %s cannot use %T offsets", dt.Name(), zero))
	}
	if len(offsets) == 0 {
		panic("array: offsets must have length n+1")
	}
	if validity != nil && validity.Len() != len(offsets)-1 {
		panic("array: validity length does not match value count")
	}
	return &Bytes[O]{dtype: dt, Offsets: offsets, Data: data, validity: validity}
}

// BytesFromStrings builds a variable-length array from strings and a
// parallel valid mask; a nil mask means no nulls. Null rows contribute no
// bytes regardless of their string.
func BytesFromStrings[O types.Offset](dt types.DataType, values []string, valid []bool) *Bytes[O] {
	offsets := make([]O, len(values)+1)
	var data []byte
	for i, v := range values {
		if valid == nil || valid[i] {
			data = append(data, v...)
		}
		offsets[i+1] = O(len(data))
	}
	return NewBytes(dt, offsets, data, validityFromBools(valid))
}

func (a *Bytes[O]) DataType() types.DataType { return a.dtype }
func (a *Bytes[O]) Len() int                 { return len(a.Offsets) - 1 }
func (a *Bytes[O]) Validity() *bitmap.Bitmap { return a.validity }
func (a *Bytes[O]) IsNull(i int) bool        { return isNull(a.validity, i) }
func (a *Bytes[O]) NullN() int               { return nullCount(a.validity, a.Len()) }

// ValueBytes returns the raw byte span of row i without a null check. The
// span aliases the array's buffer and must not be mutated.
func (a *Bytes[O]) ValueBytes(i int) []byte {
	return a.Data[a.Offsets[i]:a.Offsets[i+1]]
}

// ValueLen returns the byte length of row i.
func (a *Bytes[O]) ValueLen(i int) O {
	return a.Offsets[i+1] - a.Offsets[i]
}

func (a *Bytes[O]) Value(i int) types.Value {
	if a.IsNull(i) {
		return nil
	}
	if a.dtype.IsUTF8() {
		return string(a.ValueBytes(i))
	}
	return a.ValueBytes(i)
}

func offsetWidth[O types.Offset]() int {
	switch any(O(0)).(type) {
	case int32:
		return 4
	default:
		return 8
	}
}

func varLenOffsetWidth(dt types.DataType) int {
	switch dt {
	case types.TypeString, types.TypeBinary:
		return 4
	case types.TypeLargeString, types.TypeLargeBinary:
		return 8
	}
	return 0
}
