package value

import (
	"cmp"
	"errors"
	"math"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Repr is the fixed width representation of an IntValue.
type Repr interface {
	int64 | uint64
}

// IntValue is a nullable fixed width integer.
//
// Construction and assignment from a wider or differently signed source
// go through a range check: a negative source into an unsigned value, or a
// source outside the range of R, produces null instead of an error. The
// check happens only there. Results of arithmetic wrap around like the
// underlying Go integer.
type IntValue[R Repr] struct {
	v  R
	ok bool
}

type (
	SignedValue   = IntValue[int64]
	UnsignedValue = IntValue[uint64]
)

// NewIntValue converts any Go integer into an IntValue[R], null when it
// does not fit.
func NewIntValue[R Repr, T constraints.Integer](v T) IntValue[R] {
	var m IntValue[R]
	m.v, m.ok = fitInt[R](v)
	return m
}

func NewSignedValue[T constraints.Integer](v T) SignedValue {
	return NewIntValue[int64](v)
}

func NewUnsignedValue[T constraints.Integer](v T) UnsignedValue {
	return NewIntValue[uint64](v)
}

func NewIntNil[R Repr]() IntValue[R] {
	return IntValue[R]{}
}

// AssignInt stores v into dst with the same range check as NewIntValue.
func AssignInt[R Repr, T constraints.Integer](dst *IntValue[R], v T) {
	dst.v, dst.ok = fitInt[R](v)
}

func unsignedRepr[R Repr]() bool {
	var zero R
	return zero-1 > 0
}

func fitInt[R Repr, T constraints.Integer](v T) (R, bool) {
	if v < 0 {
		if unsignedRepr[R]() {
			return 0, false
		}
		// no Go integer is narrower than int64 on the negative side
		return R(v), true
	}
	hi := uint64(math.MaxInt64)
	if unsignedRepr[R]() {
		hi = math.MaxUint64
	}
	if uint64(v) > hi {
		return 0, false
	}
	return R(v), true
}

func (m IntValue[R]) Nil() bool       { return !m.ok }
func (m IntValue[R]) Type() ValueType { return IntegerType }
func (m IntValue[R]) IsZero() bool    { return !m.ok || m.v == 0 }
func (m IntValue[R]) IsSigned() bool  { return !unsignedRepr[R]() }
func (m IntValue[R]) IsUnsigned() bool {
	return unsignedRepr[R]()
}
func (m IntValue[R]) String() string { return m.ToString() }
func (m IntValue[R]) Value() interface{} {
	if !m.ok {
		return nil
	}
	return m.v
}
func (m IntValue[R]) ToString() string {
	if !m.ok {
		return "null"
	}
	if unsignedRepr[R]() {
		return strconv.FormatUint(uint64(m.v), 10)
	}
	return strconv.FormatInt(int64(m.v), 10)
}
func (m IntValue[R]) MarshalJSON() ([]byte, error) { return []byte(m.ToString()), nil }

func (m *IntValue[R]) UnmarshalJSON(data []byte) error {
	v, err := ParseInt[R](strings.TrimSpace(string(data)))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// ParseInt reads the decimal rendering of an integer, "null" included.
// Literals out of range for R yield null, not an error.
func ParseInt[R Repr](s string) (IntValue[R], error) {
	if s == "null" {
		return IntValue[R]{}, nil
	}
	if strings.HasPrefix(s, "-") {
		i, err := strconv.ParseInt(s, 10, 64)
		if errors.Is(err, strconv.ErrRange) {
			return IntValue[R]{}, nil
		} else if err != nil {
			return IntValue[R]{}, NewError(ErrInteger, "invalid integer %q", s)
		}
		return NewIntValue[R](i), nil
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if errors.Is(err, strconv.ErrRange) {
		return IntValue[R]{}, nil
	} else if err != nil {
		return IntValue[R]{}, NewError(ErrInteger, "invalid integer %q", s)
	}
	return NewIntValue[R](n), nil
}

// Get returns the payload, ok is false when null.
func (m IntValue[R]) Get() (R, bool) { return m.v, m.ok }

// Set stores v, it always fits.
func (m *IntValue[R]) Set(v R) {
	m.v, m.ok = v, true
}

func (m *IntValue[R]) SetInt64(v int64)   { m.v, m.ok = fitInt[R](v) }
func (m *IntValue[R]) SetUint64(v uint64) { m.v, m.ok = fitInt[R](v) }

// Take moves the value out, leaving m null.
func (m *IntValue[R]) Take() IntValue[R] {
	v := *m
	*m = IntValue[R]{}
	return v
}

func (m IntValue[R]) null() error {
	if !m.ok {
		return nullError(ErrInteger, IntegerType)
	}
	return nil
}

func (m IntValue[R]) pair(rhs IntValue[R]) error {
	if !m.ok || !rhs.ok {
		return nullError(ErrInteger, IntegerType)
	}
	return nil
}

func (m *IntValue[R]) assign(r IntValue[R], err error) error {
	if err != nil {
		return err
	}
	*m = r
	return nil
}

func intOf[R Repr](v R) IntValue[R] { return IntValue[R]{v: v, ok: true} }

func (m IntValue[R]) Neg() (IntValue[R], error) {
	if err := m.null(); err != nil {
		return m, err
	}
	return intOf(-m.v), nil
}

// Complement is the bitwise not.
func (m IntValue[R]) Complement() (IntValue[R], error) {
	if err := m.null(); err != nil {
		return m, err
	}
	return intOf(^m.v), nil
}

func (m IntValue[R]) Add(rhs IntValue[R]) (IntValue[R], error) {
	if err := m.pair(rhs); err != nil {
		return IntValue[R]{}, err
	}
	return intOf(m.v + rhs.v), nil
}

func (m IntValue[R]) Sub(rhs IntValue[R]) (IntValue[R], error) {
	if err := m.pair(rhs); err != nil {
		return IntValue[R]{}, err
	}
	return intOf(m.v - rhs.v), nil
}

func (m IntValue[R]) Mul(rhs IntValue[R]) (IntValue[R], error) {
	if err := m.pair(rhs); err != nil {
		return IntValue[R]{}, err
	}
	return intOf(m.v * rhs.v), nil
}

func (m IntValue[R]) Div(rhs IntValue[R]) (IntValue[R], error) {
	if err := m.pair(rhs); err != nil {
		return IntValue[R]{}, err
	}
	if rhs.v == 0 {
		return IntValue[R]{}, NewError(ErrInteger, "division by zero")
	}
	return intOf(m.v / rhs.v), nil
}

func (m IntValue[R]) Mod(rhs IntValue[R]) (IntValue[R], error) {
	if err := m.pair(rhs); err != nil {
		return IntValue[R]{}, err
	}
	if rhs.v == 0 {
		return IntValue[R]{}, NewError(ErrInteger, "modulo by zero")
	}
	return intOf(m.v % rhs.v), nil
}

func (m IntValue[R]) And(rhs IntValue[R]) (IntValue[R], error) {
	if err := m.pair(rhs); err != nil {
		return IntValue[R]{}, err
	}
	return intOf(m.v & rhs.v), nil
}

func (m IntValue[R]) Or(rhs IntValue[R]) (IntValue[R], error) {
	if err := m.pair(rhs); err != nil {
		return IntValue[R]{}, err
	}
	return intOf(m.v | rhs.v), nil
}

func (m IntValue[R]) Xor(rhs IntValue[R]) (IntValue[R], error) {
	if err := m.pair(rhs); err != nil {
		return IntValue[R]{}, err
	}
	return intOf(m.v ^ rhs.v), nil
}

// Shl shifts left, shifting by 64 or more gives 0.
func (m IntValue[R]) Shl(n uint) (IntValue[R], error) {
	if err := m.null(); err != nil {
		return m, err
	}
	return intOf(m.v << n), nil
}

// Shr is an arithmetic shift for signed values and a logical one for
// unsigned values.
func (m IntValue[R]) Shr(n uint) (IntValue[R], error) {
	if err := m.null(); err != nil {
		return m, err
	}
	return intOf(m.v >> n), nil
}

func (m *IntValue[R]) AddAssign(rhs IntValue[R]) error { return m.assign(m.Add(rhs)) }
func (m *IntValue[R]) SubAssign(rhs IntValue[R]) error { return m.assign(m.Sub(rhs)) }
func (m *IntValue[R]) MulAssign(rhs IntValue[R]) error { return m.assign(m.Mul(rhs)) }
func (m *IntValue[R]) DivAssign(rhs IntValue[R]) error { return m.assign(m.Div(rhs)) }
func (m *IntValue[R]) ModAssign(rhs IntValue[R]) error { return m.assign(m.Mod(rhs)) }
func (m *IntValue[R]) AndAssign(rhs IntValue[R]) error { return m.assign(m.And(rhs)) }
func (m *IntValue[R]) OrAssign(rhs IntValue[R]) error  { return m.assign(m.Or(rhs)) }
func (m *IntValue[R]) XorAssign(rhs IntValue[R]) error { return m.assign(m.Xor(rhs)) }
func (m *IntValue[R]) ShlAssign(n uint) error          { return m.assign(m.Shl(n)) }
func (m *IntValue[R]) ShrAssign(n uint) error          { return m.assign(m.Shr(n)) }

// Inc adds one in place, wrapping at the maximum.
func (m *IntValue[R]) Inc() error {
	if err := m.null(); err != nil {
		return err
	}
	m.v++
	return nil
}

func (m *IntValue[R]) Dec() error {
	if err := m.null(); err != nil {
		return err
	}
	m.v--
	return nil
}

// Equal is true for two nulls or two equal payloads.
func (m IntValue[R]) Equal(rhs IntValue[R]) bool {
	return m.ok == rhs.ok && m.v == rhs.v
}

// Compare orders null before any present value.
func (m IntValue[R]) Compare(rhs IntValue[R]) int {
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

func (m IntValue[R]) Less(rhs IntValue[R]) bool         { return m.Compare(rhs) < 0 }
func (m IntValue[R]) LessEqual(rhs IntValue[R]) bool    { return m.Compare(rhs) <= 0 }
func (m IntValue[R]) Greater(rhs IntValue[R]) bool      { return m.Compare(rhs) > 0 }
func (m IntValue[R]) GreaterEqual(rhs IntValue[R]) bool { return m.Compare(rhs) >= 0 }

// Bool is false for 0 and for null.
func (m IntValue[R]) Bool() bool { return m.ok && m.v != 0 }

// Val returns the payload or an ErrNull error.
func (m IntValue[R]) Val() (R, error) {
	if err := m.null(); err != nil {
		return 0, err
	}
	return m.v, nil
}

// Int returns the payload as a Go int, failing when it is null or does
// not fit.
func (m IntValue[R]) Int() (int, error) {
	if err := m.null(); err != nil {
		return 0, err
	}
	if unsignedRepr[R]() {
		if uint64(m.v) > math.MaxInt {
			return 0, NewError(ErrInteger, "%d overflows int", uint64(m.v))
		}
		return int(m.v), nil
	}
	if i := int64(m.v); i > math.MaxInt || i < math.MinInt {
		return 0, NewError(ErrInteger, "%d overflows int", i)
	}
	return int(m.v), nil
}
