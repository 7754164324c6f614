package value

import (
	"encoding/json"
	"strconv"

	"golang.org/x/exp/constraints"
)

type boolState uint8

// boolNull is 0 so the zero BoolValue is null.
const (
	boolNull boolState = iota
	boolFalse
	boolTrue
)

// BoolValue is a tri-state boolean: true, false or null.
//
// Logic treats null as false: Not of null is true, And/Or with a null
// operand behave as if it were false and always produce true or false.
type BoolValue struct {
	v boolState
}

func NewBoolValue(v bool) BoolValue {
	if v {
		return BoolValueTrue
	}
	return BoolValueFalse
}

func NewBoolNil() BoolValue {
	return BoolValueNull
}

// NewBoolTruthy is true for any non-zero number.
func NewBoolTruthy[T constraints.Integer | constraints.Float](v T) BoolValue {
	return NewBoolValue(v != 0)
}

func (m BoolValue) Nil() bool       { return m.v == boolNull }
func (m BoolValue) Type() ValueType { return BooleanType }
func (m BoolValue) IsZero() bool    { return m.v != boolTrue }
func (m BoolValue) String() string  { return m.ToString() }
func (m BoolValue) Value() interface{} {
	if m.v == boolNull {
		return nil
	}
	return m.v == boolTrue
}
func (m BoolValue) ToString() string {
	if m.v == boolNull {
		return "null"
	}
	return strconv.FormatBool(m.v == boolTrue)
}
func (m BoolValue) MarshalJSON() ([]byte, error) {
	if m.v == boolNull {
		return []byte("null"), nil
	}
	return json.Marshal(m.v == boolTrue)
}

func (m *BoolValue) UnmarshalJSON(data []byte) error {
	var b *bool
	if err := json.Unmarshal(data, &b); err != nil {
		return err
	}
	if b == nil {
		m.v = boolNull
		return nil
	}
	m.Set(*b)
	return nil
}

// Get returns the payload, ok is false when null.
func (m BoolValue) Get() (bool, bool) {
	if m.v == boolNull {
		return false, false
	}
	return m.v == boolTrue, true
}

func (m *BoolValue) Set(v bool) { *m = NewBoolValue(v) }

// Take moves the value out, leaving m null.
func (m *BoolValue) Take() BoolValue {
	v := *m
	m.v = boolNull
	return v
}

// Bool is true only for a true value.
func (m BoolValue) Bool() bool { return m.v == boolTrue }

// Not negates, null negates to true.
func (m BoolValue) Not() bool { return m.v != boolTrue }

func (m BoolValue) And(rhs BoolValue) BoolValue { return NewBoolValue(m.Bool() && rhs.Bool()) }
func (m BoolValue) Or(rhs BoolValue) BoolValue  { return NewBoolValue(m.Bool() || rhs.Bool()) }

func (m *BoolValue) AndAssign(rhs BoolValue) { *m = m.And(rhs) }
func (m *BoolValue) OrAssign(rhs BoolValue)  { *m = m.Or(rhs) }

// Equal compares state, null only equals null.
func (m BoolValue) Equal(rhs BoolValue) bool { return m.v == rhs.v }

// ParseBool reads back the ToString rendering of a boolean.
func ParseBool(s string) (BoolValue, error) {
	switch s {
	case "null":
		return BoolValueNull, nil
	case "true":
		return BoolValueTrue, nil
	case "false":
		return BoolValueFalse, nil
	}
	return BoolValueNull, NewError(ErrBoolean, "invalid boolean %q", s)
}
