// Package pbvalue converts scalars to and from the protobuf well known
// types, google.protobuf.Value and the wrapper messages.
package pbvalue

import (

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/lytics/kon/value"
)

// ToStruct converts a scalar into a google.protobuf.Value, null of any
// kind becomes the NullValue. Integers travel as doubles, so values of
// magnitude above 2^53 fail with ErrInteger instead of losing precision.
func ToStruct(v value.Value) (*structpb.Value, error) {
	if value.KindName(v) == "<nil>" || v.Nil() {
		return structpb.NewNullValue(), nil
	}
	switch v.(type) {
	case value.BoolValue, *value.BoolValue:
		b, err := value.Cast[value.BoolValue](v)
		if err != nil {
			return nil, err
		}
		return structpb.NewBoolValue(b.Bool()), nil
	case value.SignedValue, *value.SignedValue:
		i, err := value.Cast[value.SignedValue](v)
		if err != nil {
			return nil, err
		}
		n, err := i.Val()
		if err != nil {
			return nil, err
		}
		if n > maxExact || n < -maxExact {
			return nil, value.NewError(value.ErrInteger, "%d is not exact as a double", n)
		}
		return structpb.NewNumberValue(float64(n)), nil
	case value.UnsignedValue, *value.UnsignedValue:
		i, err := value.Cast[value.UnsignedValue](v)
		if err != nil {
			return nil, err
		}
		n, err := i.Val()
		if err != nil {
			return nil, err
		}
		if n > maxExact {
			return nil, value.NewError(value.ErrInteger, "%d is not exact as a double", n)
		}
		return structpb.NewNumberValue(float64(n)), nil
	case value.FloatValue, *value.FloatValue:
		f, err := value.Cast[value.FloatValue](v)
		if err != nil {
			return nil, err
		}
		d, err := f.Float64()
		if err != nil {
			return nil, err
		}
		return structpb.NewNumberValue(d), nil
	case value.StringValue, *value.StringValue:
		s, err := value.Cast[value.StringValue](v)
		if err != nil {
			return nil, err
		}
		str, _ := s.Get()
		return structpb.NewStringValue(str), nil
	}
	return nil, value.NewError(value.ErrCast, "cannot convert %s", value.KindName(v))
}

const maxExact = 1 << 53

// FromStruct converts a google.protobuf.Value back to a scalar, numbers
// always become a FloatValue and the NullValue becomes NilValue. Lists
// and structs fail with ErrCast.
func FromStruct(pv *structpb.Value) (value.Value, error) {
	switch k := pv.GetKind().(type) {
	case nil, *structpb.Value_NullValue:
		return value.NilValueVal, nil
	case *structpb.Value_BoolValue:
		return value.NewBoolValue(k.BoolValue), nil
	case *structpb.Value_NumberValue:
		return value.NewFloatValue(k.NumberValue), nil
	case *structpb.Value_StringValue:
		return value.NewStringValue(k.StringValue), nil
	case *structpb.Value_ListValue:
		return nil, value.NewError(value.ErrCast, "list is not a scalar")
	case *structpb.Value_StructValue:
		return nil, value.NewError(value.ErrCast, "struct is not a scalar")
	}
	return nil, value.NewError(value.ErrCast, "unknown kind %T", pv.GetKind())
}

// ToWrapper converts a scalar to its wrapper message. Null returns a nil
// pointer of the matching wrapper type, so the kind survives.
func ToWrapper(v value.Value) (proto.Message, error) {
	switch v.(type) {
	case value.BoolValue, *value.BoolValue:
		b, err := value.Cast[value.BoolValue](v)
		if err != nil {
			return nil, err
		}
		if val, ok := b.Get(); ok {
			return wrapperspb.Bool(val), nil
		}
		return (*wrapperspb.BoolValue)(nil), nil
	case value.SignedValue, *value.SignedValue:
		i, err := value.Cast[value.SignedValue](v)
		if err != nil {
			return nil, err
		}
		if val, ok := i.Get(); ok {
			return wrapperspb.Int64(val), nil
		}
		return (*wrapperspb.Int64Value)(nil), nil
	case value.UnsignedValue, *value.UnsignedValue:
		i, err := value.Cast[value.UnsignedValue](v)
		if err != nil {
			return nil, err
		}
		if val, ok := i.Get(); ok {
			return wrapperspb.UInt64(val), nil
		}
		return (*wrapperspb.UInt64Value)(nil), nil
	case value.FloatValue, *value.FloatValue:
		f, err := value.Cast[value.FloatValue](v)
		if err != nil {
			return nil, err
		}
		if val, ok := f.Get(); ok {
			return wrapperspb.Double(val), nil
		}
		return (*wrapperspb.DoubleValue)(nil), nil
	case value.StringValue, *value.StringValue:
		s, err := value.Cast[value.StringValue](v)
		if err != nil {
			return nil, err
		}
		if val, ok := s.Get(); ok {
			return wrapperspb.String(val), nil
		}
		return (*wrapperspb.StringValue)(nil), nil
	}
	return nil, value.NewError(value.ErrCast, "no wrapper for %s", value.KindName(v))
}

// FromWrapper is the inverse of ToWrapper, a nil wrapper pointer is the
// null of its kind. Int32, UInt32 and Float wrappers widen.
func FromWrapper(m proto.Message) (value.Value, error) {
	switch w := m.(type) {
	case *wrapperspb.BoolValue:
		if w == nil {
			return value.NewBoolNil(), nil
		}
		return value.NewBoolValue(w.GetValue()), nil
	case *wrapperspb.Int64Value:
		if w == nil {
			return value.NewIntNil[int64](), nil
		}
		return value.NewSignedValue(w.GetValue()), nil
	case *wrapperspb.Int32Value:
		if w == nil {
			return value.NewIntNil[int64](), nil
		}
		return value.NewSignedValue(w.GetValue()), nil
	case *wrapperspb.UInt64Value:
		if w == nil {
			return value.NewIntNil[uint64](), nil
		}
		return value.NewUnsignedValue(w.GetValue()), nil
	case *wrapperspb.UInt32Value:
		if w == nil {
			return value.NewIntNil[uint64](), nil
		}
		return value.NewUnsignedValue(w.GetValue()), nil
	case *wrapperspb.DoubleValue:
		if w == nil {
			return value.NewFloatNil(), nil
		}
		return value.NewFloatValue(w.GetValue()), nil
	case *wrapperspb.FloatValue:
		if w == nil {
			return value.NewFloatNil(), nil
		}
		return value.NewFloatValue(float64(w.GetValue())), nil
	case *wrapperspb.StringValue:
		if w == nil {
			return value.NewStringNil(), nil
		}
		return value.NewStringValue(w.GetValue()), nil
	case *wrapperspb.BytesValue:
		if w == nil {
			return value.NewStringNil(), nil
		}
		// an unset bytes field is empty, not null
		return value.NewStringValue(string(w.GetValue())), nil
	case *structpb.Value:
		return FromStruct(w)
	}
	return nil, value.NewError(value.ErrCast, "unsupported message %T", m)
}
