// Package value defines the nullable scalar value types (boolean, integer,
// float, string) of the Kei Object Notation, with a common Value interface
// so heterogeneous scalars can be held together and recovered with Cast.
//
// Every scalar is a plain value type whose zero value is null. None of them
// are safe for concurrent mutation; sharing an instance read-only across
// goroutines is fine, mutating it needs external synchronization.
package value

import (
	u "github.com/araddon/gou"
)

var (
	NilValueVal    = NewNilValue()
	BoolValueTrue  = BoolValue{v: boolTrue}
	BoolValueFalse = BoolValue{v: boolFalse}
	BoolValueNull  = BoolValue{v: boolNull}

	// force types to implement interfaces
	_ Value = NilValue{}
	_ Value = BoolValue{}
	_ Value = SignedValue{}
	_ Value = UnsignedValue{}
	_ Value = FloatValue{}
	_ Value = StringValue{}
	_ Value = (*StringValue)(nil)
)

type (
	// Value is the capability every scalar shares. Type is valid in any
	// state, including null.
	Value interface {
		// Is this null?
		Nil() bool
		Type() ValueType
		// Native payload, nil when null.
		Value() interface{}
		// Rendering of the scalar, "null" when null.
		ToString() string
		IsZero() bool
		MarshalJSON() ([]byte, error)
	}
	// Scalar is the closed set of concrete types Cast can recover.
	Scalar interface {
		BoolValue | SignedValue | UnsignedValue | FloatValue | StringValue
		Value
	}
	// NilValue is the null literal of the notation, it has no kind
	// other than NullType.
	NilValue struct{}
)

// Cast recovers the concrete scalar T from a handle holding either T or *T.
// It fails with ErrCast when the handle holds anything else.
func Cast[T Scalar](v Value) (T, error) {
	switch x := any(v).(type) {
	case T:
		return x, nil
	case *T:
		if x != nil {
			return *x, nil
		}
	}
	var zero T
	return zero, castError(v, zero)
}

// CastRef recovers a mutable reference to T from a handle holding *T.
func CastRef[T Scalar](v Value) (*T, error) {
	if x, ok := any(v).(*T); ok && x != nil {
		return x, nil
	}
	var zero T
	return nil, castError(v, zero)
}

func castError(have Value, want Value) *Error {
	return NewError(ErrCast, "cannot cast %s to %s", KindName(have), KindName(want))
}

// KindName describes a handle, including the integer representation
// since two integer reprs do not cast into each other.
func KindName(v Value) string {
	if v == nil {
		return "<nil>"
	}
	switch iv := v.(type) {
	case SignedValue:
		return "signed integer"
	case UnsignedValue:
		return "unsigned integer"
	case *SignedValue:
		if iv == nil {
			return "<nil>"
		}
		return "signed integer"
	case *UnsignedValue:
		if iv == nil {
			return "<nil>"
		}
		return "unsigned integer"
	case *BoolValue:
		if iv == nil {
			return "<nil>"
		}
	case *FloatValue:
		if iv == nil {
			return "<nil>"
		}
	case *StringValue:
		if iv == nil {
			return "<nil>"
		}
	}
	return v.Type().String()
}

// NewValue creates a new Value from a native Go value. Signed Go integers
// become SignedValue, unsigned ones UnsignedValue, nil pointers become the
// null of their kind.
func NewValue(goVal interface{}) (Value, error) {

	switch val := goVal.(type) {
	case nil:
		return NilValueVal, nil
	case Value:
		return val, nil
	case bool:
		return NewBoolValue(val), nil
	case *bool:
		if val == nil {
			return NewBoolNil(), nil
		}
		return NewBoolValue(*val), nil
	case int:
		return NewSignedValue(val), nil
	case int8:
		return NewSignedValue(val), nil
	case int16:
		return NewSignedValue(val), nil
	case int32:
		return NewSignedValue(val), nil
	case int64:
		return NewSignedValue(val), nil
	case *int:
		if val == nil {
			return NewIntNil[int64](), nil
		}
		return NewSignedValue(*val), nil
	case *int64:
		if val == nil {
			return NewIntNil[int64](), nil
		}
		return NewSignedValue(*val), nil
	case uint:
		return NewUnsignedValue(val), nil
	case uint8:
		return NewUnsignedValue(val), nil
	case uint16:
		return NewUnsignedValue(val), nil
	case uint32:
		return NewUnsignedValue(val), nil
	case uint64:
		return NewUnsignedValue(val), nil
	case *uint:
		if val == nil {
			return NewIntNil[uint64](), nil
		}
		return NewUnsignedValue(*val), nil
	case *uint64:
		if val == nil {
			return NewIntNil[uint64](), nil
		}
		return NewUnsignedValue(*val), nil
	case float32:
		return NewFloatValue(float64(val)), nil
	case float64:
		return NewFloatValue(val), nil
	case *float32:
		if val == nil {
			return NewFloatNil(), nil
		}
		return NewFloatValue(float64(*val)), nil
	case *float64:
		if val == nil {
			return NewFloatNil(), nil
		}
		return NewFloatValue(*val), nil
	case string:
		return NewStringValue(val), nil
	case *string:
		if val == nil {
			return NewStringNil(), nil
		}
		return NewStringValue(*val), nil
	case []byte:
		if val == nil {
			return NewStringNil(), nil
		}
		return NewStringBytes(val)
	default:
		u.Warnf("unsupported scalar source %T", goVal)
		return nil, NewError(ErrCast, "cannot create a scalar from %T", goVal)
	}
}

func NewNilValue() NilValue {
	return NilValue{}
}

func (m NilValue) Nil() bool                    { return true }
func (m NilValue) Type() ValueType              { return NullType }
func (m NilValue) Value() interface{}           { return nil }
func (m NilValue) MarshalJSON() ([]byte, error) { return []byte("null"), nil }
func (m NilValue) ToString() string             { return "null" }
func (m NilValue) String() string               { return "null" }
func (m NilValue) IsZero() bool                 { return true }

// Equal reports whether two handles hold the same kind, representation
// and state.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ka, kb := KindName(a), KindName(b)
	if ka != kb {
		return false
	} else if ka == "<nil>" {
		return true
	}
	switch a.Type() {
	case NullType:
		return a.Nil() && b.Nil()
	case BooleanType:
		return equalAs[BoolValue](a, b)
	case IntegerType:
		return equalAs[SignedValue](a, b) || equalAs[UnsignedValue](a, b)
	case FloatType:
		return equalAs[FloatValue](a, b)
	case StringType:
		return equalAs[StringValue](a, b)
	}
	// containers and foreign kinds are not comparable here
	return false
}

// equalAs is false unless both handles hold a T.
func equalAs[T interface {
	Scalar
	Equal(T) bool
}](a, b Value) bool {
	av, err := Cast[T](a)
	if err != nil {
		return false
	}
	bv, err := Cast[T](b)
	if err != nil {
		return false
	}
	return av.Equal(bv)
}
