package value

import (
	"bytes"
	"encoding/json"
	"iter"
)

// StringValue is a nullable byte string that owns its buffer.
//
// Constructors and Clone copy the source bytes. The buffer is never
// written in place, SetAt and Transform store a fresh copy, so a plain
// assignment or a Cast result is independent of its source. Take moves it.
type StringValue struct {
	v  []byte
	ok bool
}

func NewStringValue(v string) StringValue {
	return StringValue{v: []byte(v), ok: true}
}

// NewStringBytes copies b, a nil b is rejected.
func NewStringBytes(b []byte) (StringValue, error) {
	if b == nil {
		return StringValue{}, NewError(ErrString, "string source is nil")
	}
	return StringValue{v: bytes.Clone(b), ok: true}, nil
}

func NewStringNil() StringValue {
	return StringValue{}
}

func (m StringValue) Nil() bool       { return !m.ok }
func (m StringValue) Type() ValueType { return StringType }
func (m StringValue) IsZero() bool    { return len(m.v) == 0 }
func (m StringValue) String() string  { return m.ToString() }
func (m StringValue) Value() interface{} {
	if !m.ok {
		return nil
	}
	return string(m.v)
}
func (m StringValue) ToString() string {
	if !m.ok {
		return "null"
	}
	return string(m.v)
}
func (m StringValue) MarshalJSON() ([]byte, error) {
	if !m.ok {
		return []byte("null"), nil
	}
	return json.Marshal(string(m.v))
}

func (m *StringValue) UnmarshalJSON(data []byte) error {
	var s *string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == nil {
		*m = StringValue{}
		return nil
	}
	*m = NewStringValue(*s)
	return nil
}

func (m StringValue) null() error {
	if !m.ok {
		return nullError(ErrString, StringType)
	}
	return nil
}

// Get returns a copy of the payload, ok is false when null.
func (m StringValue) Get() (string, bool) { return string(m.v), m.ok }

// Bytes returns a copy of the buffer.
func (m StringValue) Bytes() ([]byte, error) {
	if err := m.null(); err != nil {
		return nil, err
	}
	return bytes.Clone(m.v), nil
}

func (m *StringValue) Set(v string) { *m = NewStringValue(v) }

func (m *StringValue) SetBytes(b []byte) error {
	v, err := NewStringBytes(b)
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Clone duplicates the buffer, null clones to null.
func (m StringValue) Clone() StringValue {
	if !m.ok {
		return StringValue{}
	}
	return StringValue{v: bytes.Clone(m.v), ok: true}
}

// Take moves the buffer out, leaving m null.
func (m *StringValue) Take() StringValue {
	v := *m
	*m = StringValue{}
	return v
}

func (m StringValue) Len() (int, error) {
	if err := m.null(); err != nil {
		return 0, err
	}
	return len(m.v), nil
}

func (m StringValue) checkIndex(i int) error {
	if err := m.null(); err != nil {
		return err
	}
	if i < 0 || i >= len(m.v) {
		return NewError(ErrString, "index %d out of range [0,%d)", i, len(m.v))
	}
	return nil
}

// At is the bounds checked byte at i.
func (m StringValue) At(i int) (byte, error) {
	if err := m.checkIndex(i); err != nil {
		return 0, err
	}
	return m.v[i], nil
}

func (m *StringValue) SetAt(i int, b byte) error {
	if err := m.checkIndex(i); err != nil {
		return err
	}
	v := bytes.Clone(m.v)
	v[i] = b
	m.v = v
	return nil
}

// All iterates the bytes front to back.
func (m StringValue) All() (iter.Seq2[int, byte], error) {
	if err := m.null(); err != nil {
		return nil, err
	}
	return func(yield func(int, byte) bool) {
		for i, c := range m.v {
			if !yield(i, c) {
				return
			}
		}
	}, nil
}

// Backward iterates the bytes back to front, indexes count from the start.
func (m StringValue) Backward() (iter.Seq2[int, byte], error) {
	if err := m.null(); err != nil {
		return nil, err
	}
	return func(yield func(int, byte) bool) {
		for i := len(m.v) - 1; i >= 0; i-- {
			if !yield(i, m.v[i]) {
				return
			}
		}
	}, nil
}

// Transform replaces every byte with fn's result, in order.
func (m *StringValue) Transform(fn func(i int, c byte) byte) error {
	if err := m.null(); err != nil {
		return err
	}
	v := make([]byte, len(m.v))
	for i, c := range m.v {
		v[i] = fn(i, c)
	}
	m.v = v
	return nil
}

// Equal is true for two nulls or two equal byte strings.
func (m StringValue) Equal(rhs StringValue) bool {
	return m.ok == rhs.ok && bytes.Equal(m.v, rhs.v)
}

// Compare orders null first, then bytewise.
func (m StringValue) Compare(rhs StringValue) int {
	switch {
	case !m.ok && !rhs.ok:
		return 0
	case !m.ok:
		return -1
	case !rhs.ok:
		return 1
	}
	return bytes.Compare(m.v, rhs.v)
}

func (m StringValue) Less(rhs StringValue) bool { return m.Compare(rhs) < 0 }
