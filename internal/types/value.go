package types

import (
	"fmt"
	"strconv"
)

// Value represents a single boxed scalar. Concrete types use native Go types:
//   Int8 -> int8, ..., Float64 -> float64, Bool -> bool,
//   String/LargeString -> string, Binary/LargeBinary -> []byte,
//   temporal types -> their backing integer type.
// A nil Value means NULL.
type Value = interface{}

// ParseValue converts a textual cell into a typed value for the given
// DataType. Temporal types accept their raw backing integer.
func ParseValue(dt DataType, s string) (Value, error) {
	switch dt {
	case TypeBool:
		v, err := strconv.ParseBool(s)
		if err != nil {
			return nil, fmt.Errorf("parse Bool %q: %w", s, err)
		}
		return v, nil
	case TypeInt8, TypeInt16, TypeInt32, TypeInt64,
		TypeDate32, TypeDate64, TypeTime32, TypeTime64, TypeTimestamp, TypeDuration:
		v, err := strconv.ParseInt(s, 10, dt.FixedSize()*8)
		if err != nil {
			return nil, fmt.Errorf("parse %s %q: %w", dt.Name(), s, err)
		}
		switch dt.FixedSize() {
		case 1:
			return int8(v), nil
		case 2:
			return int16(v), nil
		case 4:
			return int32(v), nil
		default:
			return v, nil
		}
	case TypeUInt8, TypeUInt16, TypeUInt32, TypeUInt64:
		v, err := strconv.ParseUint(s, 10, dt.FixedSize()*8)
		if err != nil {
			return nil, fmt.Errorf("parse %s %q: %w", dt.Name(), s, err)
		}
		switch dt.FixedSize() {
		case 1:
			return uint8(v), nil
		case 2:
			return uint16(v), nil
		case 4:
			return uint32(v), nil
		default:
			return v, nil
		}
	case TypeFloat32:
		v, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return nil, fmt.Errorf("parse Float32 %q: %w", s, err)
		}
		return float32(v), nil
	case TypeFloat64:
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("parse Float64 %q: %w", s, err)
		}
		return v, nil
	case TypeString, TypeLargeString:
		return s, nil
	case TypeBinary, TypeLargeBinary:
		return []byte(s), nil
	default:
		return nil, fmt.Errorf("cannot parse value of type %s", dt.Name())
	}
}

// FormatValue converts a value to its string representation.
func FormatValue(dt DataType, v Value) string {
	if v == nil {
		return "NULL"
	}
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return fmt.Sprintf("%v", v)
}
