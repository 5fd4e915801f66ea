// Package take implements the gather kernel: given a source array and an
// index column, produce a new array containing the selected rows. The
// output has the source's logical type and the index column's length; a
// row is null when its index slot is null or the referenced source row is
// null. The kernel is a pure function of its inputs and never mutates
// them, so concurrent calls over shared arrays are safe.
package take

import (
	"github.com/cockroachdb/errors"

	"github.com/harshithgowdakt/colvec/internal/array"
	"github.com/harshithgowdakt/colvec/internal/types"
)

// Take gathers rows of src at the positions given by indices. The source's
// logical type selects the per-encoding algorithm; a type with no defined
// gather behavior fails with ErrUnsupportedType. O is the index column's
// integer width.
func Take[O types.Offset](src array.Array, indices *array.Primitive[O]) (array.Array, error) {
	switch dt := src.DataType(); dt {
	case types.TypeBool:
		a, ok := src.(*array.Boolean)
		if !ok {
			return nil, mismatch(src)
		}
		return takeBoolean(a, indices)
	case types.TypeInt8:
		return takeFixed[int8](src, indices)
	case types.TypeInt16:
		return takeFixed[int16](src, indices)
	case types.TypeInt32, types.TypeDate32, types.TypeTime32:
		return takeFixed[int32](src, indices)
	case types.TypeInt64, types.TypeDate64, types.TypeTime64,
		types.TypeTimestamp, types.TypeDuration:
		return takeFixed[int64](src, indices)
	case types.TypeUInt8:
		return takeFixed[uint8](src, indices)
	case types.TypeUInt16:
		return takeFixed[uint16](src, indices)
	case types.TypeUInt32:
		return takeFixed[uint32](src, indices)
	case types.TypeUInt64:
		return takeFixed[uint64](src, indices)
	case types.TypeFloat32:
		return takeFixed[float32](src, indices)
	case types.TypeFloat64:
		return takeFixed[float64](src, indices)
	case types.TypeString, types.TypeBinary:
		a, ok := src.(*array.Bytes[int32])
		if !ok {
			return nil, mismatch(src)
		}
		return takeBytes(a, indices)
	case types.TypeLargeString, types.TypeLargeBinary:
		a, ok := src.(*array.Bytes[int64])
		if !ok {
			return nil, mismatch(src)
		}
		return takeBytes(a, indices)
	case types.TypeDictionary:
		return takeDict(src, indices)
	default:
		return nil, errors.Wrapf(ErrUnsupportedType, "%s", dt.Name())
	}
}

// takeFixed downcasts to the fixed-width representation of native type T
// and gathers. The type tag agreeing with the representation is an
// internal invariant; a mismatch is a programming fault, not a data error.
func takeFixed[T types.Native, O types.Offset](src array.Array, indices *array.Primitive[O]) (array.Array, error) {
	a, ok := src.(*array.Primitive[T])
	if !ok {
		return nil, mismatch(src)
	}
	return takePrimitive(a, indices)
}

// takeDict dispatches a dictionary gather on the key width.
func takeDict[O types.Offset](src array.Array, indices *array.Primitive[O]) (array.Array, error) {
	switch d := src.(type) {
	case *array.Dictionary[int8]:
		return takeDictionary(d, indices)
	case *array.Dictionary[int16]:
		return takeDictionary(d, indices)
	case *array.Dictionary[int32]:
		return takeDictionary(d, indices)
	case *array.Dictionary[int64]:
		return takeDictionary(d, indices)
	case *array.Dictionary[uint8]:
		return takeDictionary(d, indices)
	case *array.Dictionary[uint16]:
		return takeDictionary(d, indices)
	case *array.Dictionary[uint32]:
		return takeDictionary(d, indices)
	case *array.Dictionary[uint64]:
		return takeDictionary(d, indices)
	default:
		return nil, mismatch(src)
	}
}

func mismatch(src array.Array) error {
	return errors.AssertionFailedf("take: %s array has representation %T",
		src.DataType().Name(), src)
}
