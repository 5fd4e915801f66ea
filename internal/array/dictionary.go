package array

import (
	"github.com/harshithgowdakt/colvec/internal/bitmap"
	"github.com/harshithgowdakt/colvec/internal/types"
)

// Dictionary is a dictionary-encoded array: small integer keys index into
// a shared pool of distinct values. Logical row i is Values[Keys[i]], and
// the row is null when the key slot itself is null or the referenced pool
// value is null.
type Dictionary[K types.DictKey] struct {
	Keys   *Primitive[K]
	Values Array // shared pool, never mutated
}

// NewDictionary wraps a keys array and a shared values pool. The pool is
// held by reference, not copied.
func NewDictionary[K types.DictKey](keys *Primitive[K], values Array) *Dictionary[K] {
	return &Dictionary[K]{Keys: keys, Values: values}
}

// DictionaryFromStrings dictionary-encodes a string column: unique values
// are stored once in the pool, rows hold keys into it. A nil valid mask
// means no nulls; null rows get a null key slot with a zero payload.
func DictionaryFromStrings[K types.DictKey](dt types.DataType, values []string, valid []bool) *Dictionary[K] {
	keys := make([]K, len(values))
	lookup := make(map[string]K)
	var pool []string
	for i, v := range values {
		if valid != nil && !valid[i] {
			continue
		}
		k, ok := lookup[v]
		if !ok {
			k = K(len(pool))
			pool = append(pool, v)
			lookup[v] = k
		}
		keys[i] = k
	}
	var poolArr Array
	if dt == types.TypeLargeString || dt == types.TypeLargeBinary {
		poolArr = BytesFromStrings[int64](dt, pool, nil)
	} else {
		poolArr = BytesFromStrings[int32](dt, pool, nil)
	}
	return NewDictionary(NewPrimitive(keyDataType[K](), keys, validityFromBools(valid)), poolArr)
}

func (a *Dictionary[K]) DataType() types.DataType { return types.TypeDictionary }
func (a *Dictionary[K]) Len() int                 { return a.Keys.Len() }

// KeyType returns the logical type of the keys array.
func (a *Dictionary[K]) KeyType() types.DataType { return a.Keys.DataType() }

// ValueType returns the logical type of the values pool.
func (a *Dictionary[K]) ValueType() types.DataType { return a.Values.DataType() }

// Validity returns the keys array's validity bitmap: a null key slot makes
// the logical row null regardless of the pool.
func (a *Dictionary[K]) Validity() *bitmap.Bitmap { return a.Keys.Validity() }

func (a *Dictionary[K]) IsNull(i int) bool {
	if a.Keys.IsNull(i) {
		return true
	}
	return a.Values.IsNull(int(a.Keys.Values[i]))
}

func (a *Dictionary[K]) NullN() int {
	n := 0
	for i := 0; i < a.Len(); i++ {
		if a.IsNull(i) {
			n++
		}
	}
	return n
}

func (a *Dictionary[K]) Value(i int) types.Value {
	if a.Keys.IsNull(i) {
		return nil
	}
	return a.Values.Value(int(a.Keys.Values[i]))
}

func keyDataType[K types.DictKey]() types.DataType {
	switch any(K(0)).(type) {
	case int8:
		return types.TypeInt8
	case int16:
		return types.TypeInt16
	case int32:
		return types.TypeInt32
	case int64:
		return types.TypeInt64
	case uint8:
		return types.TypeUInt8
	case uint16:
		return types.TypeUInt16
	case uint32:
		return types.TypeUInt32
	default:
		return types.TypeUInt64
	}
}
