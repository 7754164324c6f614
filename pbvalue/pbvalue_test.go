package pbvalue

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/lytics/kon/value"
)

func TestStruct(t *testing.T) {
	tests := []struct {
		in   value.Value
		want *structpb.Value
		back value.Value
	}{
		{value.BoolValueTrue, structpb.NewBoolValue(true), value.BoolValueTrue},
		{value.NewSignedValue(-3), structpb.NewNumberValue(-3), value.NewFloatValue(-3)},
		{value.NewUnsignedValue(1 << 53), structpb.NewNumberValue(1 << 53), value.NewFloatValue(1 << 53)},
		{value.NewFloatValue(0.5), structpb.NewNumberValue(0.5), value.NewFloatValue(0.5)},
		{value.NewStringValue("s"), structpb.NewStringValue("s"), value.NewStringValue("s")},
		{value.SignedValue{}, structpb.NewNullValue(), value.NilValueVal},
		{value.StringValue{}, structpb.NewNullValue(), value.NilValueVal},
		{value.NilValueVal, structpb.NewNullValue(), value.NilValueVal},
	}
	for _, tt := range tests {
		pv, err := ToStruct(tt.in)
		require.NoError(t, err, "%v", tt.in)
		assert.True(t, proto.Equal(tt.want, pv), "%v: got %v", tt.in, pv)

		// survive the wire
		by, err := proto.Marshal(pv)
		require.NoError(t, err)
		var decoded structpb.Value
		require.NoError(t, proto.Unmarshal(by, &decoded))

		back, err := FromStruct(&decoded)
		require.NoError(t, err)
		assert.True(t, value.Equal(tt.back, back), "%v: got %v", tt.in, back)
	}

	_, err := ToStruct(value.NewSignedValue(int64(math.MaxInt64)))
	assert.ErrorIs(t, err, value.ErrInteger)
	_, err = ToStruct(value.NewUnsignedValue(uint64(1<<53 + 1)))
	assert.ErrorIs(t, err, value.ErrInteger)
	var verr *value.Error
	assert.ErrorAs(t, err, &verr)

	list, err := structpb.NewList([]any{1, 2})
	require.NoError(t, err)
	_, err = FromStruct(structpb.NewListValue(list))
	assert.ErrorIs(t, err, value.ErrCast)
	_, err = FromStruct(structpb.NewStructValue(&structpb.Struct{}))
	assert.ErrorIs(t, err, value.ErrCast)

	v, err := FromStruct(nil)
	require.NoError(t, err)
	assert.True(t, v.Nil())
}

func TestWrapper(t *testing.T) {
	tests := []struct {
		in   value.Value
		want proto.Message
	}{
		{value.BoolValueFalse, wrapperspb.Bool(false)},
		{value.NewSignedValue(math.MinInt64), wrapperspb.Int64(math.MinInt64)},
		{value.NewUnsignedValue(uint64(math.MaxUint64)), wrapperspb.UInt64(math.MaxUint64)},
		{value.NewFloatValue(math.Inf(-1)), wrapperspb.Double(math.Inf(-1))},
		{value.NewStringValue(""), wrapperspb.String("")},
	}
	for _, tt := range tests {
		m, err := ToWrapper(tt.in)
		require.NoError(t, err)
		assert.True(t, proto.Equal(tt.want, m), "%v: got %v", tt.in, m)

		back, err := FromWrapper(m)
		require.NoError(t, err)
		assert.True(t, value.Equal(tt.in, back), "%v: got %v", tt.in, back)
	}

	// null keeps its kind through a typed nil
	for _, n := range []value.Value{value.BoolValue{}, value.SignedValue{}, value.UnsignedValue{}, value.FloatValue{}, value.StringValue{}} {
		m, err := ToWrapper(n)
		require.NoError(t, err)
		require.NotNil(t, m)
		assert.False(t, m.ProtoReflect().IsValid(), "%T", n)

		back, err := FromWrapper(m)
		require.NoError(t, err)
		assert.True(t, value.Equal(n, back), "%T: got %v", n, back)
	}

	sv := value.NewStringValue("ref")
	m, err := ToWrapper(&sv)
	require.NoError(t, err)
	assert.Equal(t, "ref", m.(*wrapperspb.StringValue).GetValue())

	_, err = ToWrapper(value.NilValueVal)
	assert.ErrorIs(t, err, value.ErrCast)
	_, err = FromWrapper(&structpb.ListValue{})
	assert.ErrorIs(t, err, value.ErrCast)
}

func TestWrapperWiden(t *testing.T) {
	v, err := FromWrapper(wrapperspb.Int32(-1))
	require.NoError(t, err)
	assert.True(t, value.Equal(value.NewSignedValue(-1), v))

	v, err = FromWrapper(wrapperspb.UInt32(7))
	require.NoError(t, err)
	assert.True(t, value.Equal(value.NewUnsignedValue(7), v))

	v, err = FromWrapper(wrapperspb.Float(0.5))
	require.NoError(t, err)
	assert.True(t, value.Equal(value.NewFloatValue(0.5), v))

	v, err = FromWrapper(wrapperspb.Bytes([]byte("b")))
	require.NoError(t, err)
	assert.True(t, value.Equal(value.NewStringValue("b"), v))

	v, err = FromWrapper(structpb.NewBoolValue(true))
	require.NoError(t, err)
	assert.True(t, value.Equal(value.BoolValueTrue, v))
}
