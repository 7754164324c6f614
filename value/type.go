package value

import (
	"fmt"
)

// ValueType is the kind tag of the notation, ie integer, string, etc
type ValueType uint8

const (
	// Enum values for Type system, DO NOT CHANGE the numbers, do not use iota
	NullType    ValueType = 0
	IntegerType ValueType = 1
	FloatType   ValueType = 2
	BooleanType ValueType = 3
	StringType  ValueType = 4
	ArrayType   ValueType = 5
	ObjectType  ValueType = 6
	UnknownType ValueType = 255
)

var (
	typeToStr = map[ValueType]string{
		NullType:    "null",
		IntegerType: "integer",
		FloatType:   "float",
		BooleanType: "boolean",
		StringType:  "string",
		ArrayType:   "array",
		ObjectType:  "object",
		UnknownType: "unknown",
	}
	scalarTypes = map[ValueType]bool{
		IntegerType: true,
		FloatType:   true,
		BooleanType: true,
		StringType:  true,
	}
	numTypes = map[ValueType]bool{
		IntegerType: true,
		FloatType:   true,
	}
)

// ValueFromString Given a type name, convert to ValueType
func ValueFromString(vt string) ValueType {
	switch vt {
	case "nil", "null":
		return NullType
	case "integer":
		return IntegerType
	case "float":
		return FloatType
	case "boolean":
		return BooleanType
	case "string":
		return StringType
	case "array":
		return ArrayType
	case "object":
		return ObjectType
	default:
		return UnknownType
	}
}

func (m ValueType) String() string {
	if s, ok := typeToStr[m]; ok {
		return s
	}
	return "invalid"
}

// IsScalar is true for the leaf kinds: integer, float, boolean and string.
func (m ValueType) IsScalar() bool {
	return scalarTypes[m]
}

func (m ValueType) IsNumeric() bool {
	return numTypes[m]
}

func (m ValueType) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *ValueType) UnmarshalText(d []byte) error {
	vt := ValueFromString(string(d))
	if vt == UnknownType {
		return fmt.Errorf("unrecognized value type %q", d)
	}
	*m = vt
	return nil
}

// Zero returns the null instance of a scalar kind, nil for kinds
// that have no scalar representation.
func (m ValueType) Zero() Value {
	switch m {
	case NullType:
		return NilValueVal
	case IntegerType:
		return SignedValue{}
	case FloatType:
		return FloatValue{}
	case BooleanType:
		return BoolValue{}
	case StringType:
		return StringValue{}
	}
	return nil
}
