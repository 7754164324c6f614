package value

import (
	"cmp"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// FloatValue is a nullable float64. Any float64, NaN and infinities
// included, is a valid payload.
type FloatValue struct {
	v  float64
	ok bool
}

func NewFloatValue(v float64) FloatValue {
	return FloatValue{v: v, ok: true}
}

func NewFloatNil() FloatValue {
	return FloatValue{}
}

func (m FloatValue) Nil() bool       { return !m.ok }
func (m FloatValue) Type() ValueType { return FloatType }
func (m FloatValue) IsZero() bool    { return !m.ok || m.v == 0 }
func (m FloatValue) String() string  { return m.ToString() }
func (m FloatValue) Value() interface{} {
	if !m.ok {
		return nil
	}
	return m.v
}
func (m FloatValue) ToString() string {
	if !m.ok {
		return "null"
	}
	return formatFloat(m.v)
}
func (m FloatValue) MarshalJSON() ([]byte, error) {
	if !m.ok {
		return []byte("null"), nil
	}
	return marshalFloat(m.v)
}

func (m *FloatValue) UnmarshalJSON(data []byte) error {
	var f *float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	if f == nil {
		*m = FloatValue{}
		return nil
	}
	*m = NewFloatValue(*f)
	return nil
}

// formatFloat is the shortest decimal that reads back to f, with the
// non finite values spelled inf, -inf and nan.
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// JSON has no NaN or infinity, those encode as null.
func marshalFloat(f float64) ([]byte, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(f)
}

// ParseFloat reads back the ToString rendering of a float.
func ParseFloat(s string) (FloatValue, error) {
	switch s {
	case "null":
		return FloatValue{}, nil
	case "nan":
		return NewFloatValue(math.NaN()), nil
	case "inf":
		return NewFloatValue(math.Inf(1)), nil
	case "-inf":
		return NewFloatValue(math.Inf(-1)), nil
	}
	if strings.ContainsAny(s, "nN") {
		// strconv also takes "NaN", "Inf" and "infinity" spellings
		return FloatValue{}, NewError(ErrFloat, "invalid float %q", s)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return FloatValue{}, NewError(ErrFloat, "invalid float %q", s)
	}
	return NewFloatValue(f), nil
}

// Get returns the payload, ok is false when null.
func (m FloatValue) Get() (float64, bool) { return m.v, m.ok }

func (m *FloatValue) Set(v float64) { *m = NewFloatValue(v) }

// Take moves the value out, leaving m null.
func (m *FloatValue) Take() FloatValue {
	v := *m
	*m = FloatValue{}
	return v
}

func (m FloatValue) null() error {
	if !m.ok {
		return nullError(ErrFloat, FloatType)
	}
	return nil
}

func (m FloatValue) pair(rhs FloatValue) error {
	if !m.ok || !rhs.ok {
		return nullError(ErrFloat, FloatType)
	}
	return nil
}

func (m *FloatValue) assign(r FloatValue, err error) error {
	if err != nil {
		return err
	}
	*m = r
	return nil
}

func (m FloatValue) Neg() (FloatValue, error) {
	if err := m.null(); err != nil {
		return m, err
	}
	return NewFloatValue(-m.v), nil
}

func (m FloatValue) Add(rhs FloatValue) (FloatValue, error) {
	if err := m.pair(rhs); err != nil {
		return FloatValue{}, err
	}
	return NewFloatValue(m.v + rhs.v), nil
}

func (m FloatValue) Sub(rhs FloatValue) (FloatValue, error) {
	if err := m.pair(rhs); err != nil {
		return FloatValue{}, err
	}
	return NewFloatValue(m.v - rhs.v), nil
}

func (m FloatValue) Mul(rhs FloatValue) (FloatValue, error) {
	if err := m.pair(rhs); err != nil {
		return FloatValue{}, err
	}
	return NewFloatValue(m.v * rhs.v), nil
}

// Div fails on a divisor of exactly zero, of either sign.
func (m FloatValue) Div(rhs FloatValue) (FloatValue, error) {
	if err := m.pair(rhs); err != nil {
		return FloatValue{}, err
	}
	if rhs.v == 0 {
		return FloatValue{}, NewError(ErrFloat, "division by zero")
	}
	return NewFloatValue(m.v / rhs.v), nil
}

func (m *FloatValue) AddAssign(rhs FloatValue) error { return m.assign(m.Add(rhs)) }
func (m *FloatValue) SubAssign(rhs FloatValue) error { return m.assign(m.Sub(rhs)) }
func (m *FloatValue) MulAssign(rhs FloatValue) error { return m.assign(m.Mul(rhs)) }
func (m *FloatValue) DivAssign(rhs FloatValue) error { return m.assign(m.Div(rhs)) }

func (m *FloatValue) Inc() error {
	if err := m.null(); err != nil {
		return err
	}
	m.v++
	return nil
}

func (m *FloatValue) Dec() error {
	if err := m.null(); err != nil {
		return err
	}
	m.v--
	return nil
}

// Equal follows IEEE 754 for payloads, NaN never equals anything. Two
// nulls are equal.
func (m FloatValue) Equal(rhs FloatValue) bool {
	if !m.ok || !rhs.ok {
		return m.ok == rhs.ok
	}
	return m.v == rhs.v
}

// Compare is a total order: null first, then NaN, then numbers.
func (m FloatValue) Compare(rhs FloatValue) int {
	switch {
	case !m.ok && !rhs.ok:
		return 0
	case !m.ok:
		return -1
	case !rhs.ok:
		return 1
	}
	return cmp.Compare(m.v, rhs.v)
}

func (m FloatValue) Less(rhs FloatValue) bool {
	if m.ok && rhs.ok {
		return m.v < rhs.v
	}
	return m.Compare(rhs) < 0
}

func (m FloatValue) LessEqual(rhs FloatValue) bool {
	if m.ok && rhs.ok {
		return m.v <= rhs.v
	}
	return m.Compare(rhs) <= 0
}

func (m FloatValue) Greater(rhs FloatValue) bool {
	if m.ok && rhs.ok {
		return m.v > rhs.v
	}
	return m.Compare(rhs) > 0
}

func (m FloatValue) GreaterEqual(rhs FloatValue) bool {
	if m.ok && rhs.ok {
		return m.v >= rhs.v
	}
	return m.Compare(rhs) >= 0
}

func (m FloatValue) Float64() (float64, error) {
	if err := m.null(); err != nil {
		return 0, err
	}
	return m.v, nil
}

// Float32 narrows the payload, rounding to the nearest float32.
func (m FloatValue) Float32() (float32, error) {
	if err := m.null(); err != nil {
		return 0, err
	}
	return float32(m.v), nil
}
