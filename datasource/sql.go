// Package datasource bridges the scalar values to database/sql, a mutable
// scalar handle scans a column and any scalar can be bound as an argument.
// SQL NULL maps to the null of the destination kind.
package datasource

import (
	"database/sql"
	"database/sql/driver"
	"math"
	"strconv"
	"time"

	u "github.com/araddon/gou"

	"github.com/lytics/kon/value"
)

var (
	_ = u.EMPTY

	_ sql.Scanner   = (*scanner)(nil)
	_ driver.Valuer = valuer{}
)

type scanner struct {
	dst value.Value
}

// Scan returns a sql.Scanner writing into dst, which must be a non-nil
// *BoolValue, *SignedValue, *UnsignedValue, *FloatValue or *StringValue.
//
//	var name value.StringValue
//	var age value.SignedValue
//	err := row.Scan(datasource.Scan(&name), datasource.Scan(&age))
func Scan(dst value.Value) sql.Scanner {
	return &scanner{dst: dst}
}

func (m *scanner) Scan(src any) error {
	switch dst := m.dst.(type) {
	case *value.BoolValue:
		if dst != nil {
			return scanBool(dst, src)
		}
	case *value.SignedValue:
		if dst != nil {
			return scanInt(dst, src)
		}
	case *value.UnsignedValue:
		if dst != nil {
			return scanInt(dst, src)
		}
	case *value.FloatValue:
		if dst != nil {
			return scanFloat(dst, src)
		}
	case *value.StringValue:
		if dst != nil {
			return scanString(dst, src)
		}
	}
	return value.NewError(value.ErrCast, "cannot scan into %s handle %T", value.KindName(m.dst), m.dst)
}

func scanError(src any, dst value.Value) error {
	u.Debugf("cannot scan %T into %s", src, value.KindName(dst))
	return value.NewError(value.ErrCast, "cannot scan %T into %s", src, value.KindName(dst))
}

func scanBool(dst *value.BoolValue, src any) error {
	switch v := src.(type) {
	case nil:
		*dst = value.NewBoolNil()
	case bool:
		dst.Set(v)
	case int64:
		*dst = value.NewBoolTruthy(v)
	case string:
		b, err := strconv.ParseBool(v)
		if err != nil {
			return value.NewError(value.ErrBoolean, "%q is not a boolean", v)
		}
		dst.Set(b)
	case []byte:
		return scanBool(dst, string(v))
	default:
		return scanError(src, dst)
	}
	return nil
}

// scanInt applies the same overflow-to-null rule as construction, a
// value the representation cannot hold scans as null.
func scanInt[R value.Repr](dst *value.IntValue[R], src any) error {
	switch v := src.(type) {
	case nil:
		*dst = value.NewIntNil[R]()
	case int64:
		value.AssignInt(dst, v)
	case bool:
		if v {
			value.AssignInt(dst, 1)
		} else {
			value.AssignInt(dst, 0)
		}
	case string:
		i, err := value.ParseInt[R](v)
		if err != nil {
			return err
		}
		*dst = i
	case []byte:
		return scanInt(dst, string(v))
	default:
		return scanError(src, dst)
	}
	return nil
}

func scanFloat(dst *value.FloatValue, src any) error {
	switch v := src.(type) {
	case nil:
		*dst = value.NewFloatNil()
	case float64:
		dst.Set(v)
	case int64:
		dst.Set(float64(v))
	case string:
		f, err := value.ParseFloat(v)
		if err != nil {
			return err
		}
		*dst = f
	case []byte:
		return scanFloat(dst, string(v))
	default:
		return scanError(src, dst)
	}
	return nil
}

func scanString(dst *value.StringValue, src any) error {
	switch v := src.(type) {
	case nil:
		*dst = value.NewStringNil()
	case string:
		dst.Set(v)
	case []byte:
		// drivers may reuse the buffer, SetBytes copies it
		return dst.SetBytes(v)
	case int64:
		dst.Set(strconv.FormatInt(v, 10))
	case float64:
		dst.Set(strconv.FormatFloat(v, 'g', -1, 64))
	case bool:
		dst.Set(strconv.FormatBool(v))
	case time.Time:
		dst.Set(v.Format(time.RFC3339Nano))
	default:
		return scanError(src, dst)
	}
	return nil
}

type valuer struct {
	v value.Value
}

// Arg wraps a scalar to be bound as a query argument, null binds as
// SQL NULL.
func Arg(v value.Value) driver.Valuer {
	return valuer{v: v}
}

func (m valuer) Value() (driver.Value, error) {
	if value.KindName(m.v) == "<nil>" || m.v.Nil() {
		return nil, nil
	}
	switch v := m.v.(type) {
	case value.BoolValue, *value.BoolValue:
		b, err := value.Cast[value.BoolValue](v)
		if err != nil {
			return nil, err
		}
		return b.Bool(), nil
	case value.SignedValue, *value.SignedValue:
		i, err := value.Cast[value.SignedValue](v)
		if err != nil {
			return nil, err
		}
		return i.Val()
	case value.UnsignedValue, *value.UnsignedValue:
		i, err := value.Cast[value.UnsignedValue](v)
		if err != nil {
			return nil, err
		}
		n, err := i.Val()
		if err != nil {
			return nil, err
		}
		if n > math.MaxInt64 {
			return nil, value.NewError(value.ErrInteger, "%d does not fit a driver int64", n)
		}
		return int64(n), nil
	case value.FloatValue, *value.FloatValue:
		f, err := value.Cast[value.FloatValue](v)
		if err != nil {
			return nil, err
		}
		return f.Float64()
	case value.StringValue, *value.StringValue:
		s, err := value.Cast[value.StringValue](v)
		if err != nil {
			return nil, err
		}
		str, _ := s.Get()
		return str, nil
	}
	u.Warnf("unsupported argument %T", m.v)
	return nil, value.NewError(value.ErrCast, "cannot bind %s", value.KindName(m.v))
}
