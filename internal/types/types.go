package types

import (
	"fmt"
	"strings"
)

// DataType represents the logical type of a column.
type DataType uint8

const (
	TypeBool DataType = iota
	TypeInt8
	TypeInt16
	TypeInt32
	TypeInt64
	TypeUInt8
	TypeUInt16
	TypeUInt32
	TypeUInt64
	TypeFloat32
	TypeFloat64
	TypeDate32      // days since epoch, stored as int32
	TypeDate64      // milliseconds since epoch, stored as int64
	TypeTime32      // intra-day time, stored as int32
	TypeTime64      // intra-day time, stored as int64
	TypeTimestamp   // instant since epoch, stored as int64
	TypeDuration    // elapsed time, stored as int64
	TypeString      // UTF-8, 32-bit offsets
	TypeLargeString // UTF-8, 64-bit offsets
	TypeBinary      // raw bytes, 32-bit offsets
	TypeLargeBinary // raw bytes, 64-bit offsets
	TypeDictionary  // integer keys into a shared values pool
)

// TypeInfo holds metadata about a data type.
type TypeInfo struct {
	Type      DataType
	Name      string
	FixedSize int // bytes per value; 0 for variable-length and nested types
}

var typeInfoList = []TypeInfo{
	{TypeBool, "Bool", 1},
	{TypeInt8, "Int8", 1},
	{TypeInt16, "Int16", 2},
	{TypeInt32, "Int32", 4},
	{TypeInt64, "Int64", 8},
	{TypeUInt8, "UInt8", 1},
	{TypeUInt16, "UInt16", 2},
	{TypeUInt32, "UInt32", 4},
	{TypeUInt64, "UInt64", 8},
	{TypeFloat32, "Float32", 4},
	{TypeFloat64, "Float64", 8},
	{TypeDate32, "Date32", 4},
	{TypeDate64, "Date64", 8},
	{TypeTime32, "Time32", 4},
	{TypeTime64, "Time64", 8},
	{TypeTimestamp, "Timestamp", 8},
	{TypeDuration, "Duration", 8},
	{TypeString, "String", 0},
	{TypeLargeString, "LargeString", 0},
	{TypeBinary, "Binary", 0},
	{TypeLargeBinary, "LargeBinary", 0},
	{TypeDictionary, "Dictionary", 0},
}

// TypeInfoMap maps DataType to its TypeInfo.
var TypeInfoMap map[DataType]TypeInfo

// typeNameMap maps lowercase type name to DataType for parsing.
var typeNameMap map[string]DataType

func init() {
	TypeInfoMap = make(map[DataType]TypeInfo, len(typeInfoList))
	typeNameMap = make(map[string]DataType, len(typeInfoList))
	for _, ti := range typeInfoList {
		TypeInfoMap[ti.Type] = ti
		typeNameMap[strings.ToLower(ti.Name)] = ti.Type
	}
}

// ParseDataType converts a type name string (case-insensitive) to DataType.
func ParseDataType(name string) (DataType, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	dt, ok := typeNameMap[n]
	if !ok {
		return 0, fmt.Errorf("unknown data type: %s", name)
	}
	return dt, nil
}

// ParseColumnType parses a column type that may be wrapped in Dictionary(...).
// Returns (innerType, isDictionary, error).
func ParseColumnType(name string) (DataType, bool, error) {
	lower := strings.ToLower(strings.TrimSpace(name))
	if strings.HasPrefix(lower, "dictionary(") && strings.HasSuffix(lower, ")") {
		inner := strings.TrimSpace(name)
		inner = inner[len("dictionary(") : len(inner)-1]
		dt, err := ParseDataType(strings.TrimSpace(inner))
		if err != nil {
			return 0, false, fmt.Errorf("Dictionary inner type: %w", err)
		}
		return dt, true, nil
	}
	dt, err := ParseDataType(name)
	return dt, false, err
}

// Name returns the string name of the DataType.
func (dt DataType) Name() string {
	if ti, ok := TypeInfoMap[dt]; ok {
		return ti.Name
	}
	return "Unknown"
}

// FixedSize returns the byte size for fixed-width types, 0 otherwise.
func (dt DataType) FixedSize() int {
	if ti, ok := TypeInfoMap[dt]; ok {
		return ti.FixedSize
	}
	return 0
}

// IsFixedWidth returns true for types backed by a fixed-width value buffer.
// Bool is excluded: it is bit-packed, not byte-addressed.
func (dt DataType) IsFixedWidth() bool {
	return dt != TypeBool && dt.FixedSize() > 0
}

// IsVarLen returns true for variable-length byte types.
func (dt DataType) IsVarLen() bool {
	switch dt {
	case TypeString, TypeLargeString, TypeBinary, TypeLargeBinary:
		return true
	}
	return false
}

// IsUTF8 returns true for string types.
func (dt DataType) IsUTF8() bool {
	return dt == TypeString || dt == TypeLargeString
}

// Native is the set of Go types that back fixed-width arrays.
type Native interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Offset is the set of integer widths used for index columns and for the
// offset sequences of variable-length arrays. The two are independent: a
// 32-bit-indexed gather over a 64-bit-offset column is a valid combination.
type Offset interface {
	~int32 | ~int64
}

// DictKey is the set of integer widths usable as dictionary keys.
type DictKey interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64
}
