package datasource_test

import (
	"math"
	"testing"

	u "github.com/araddon/gou"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lytics/kon/datasource"
	"github.com/lytics/kon/value"
)

var _ = u.EMPTY

func init() {
	u.SetupLogging("debug")
	u.SetColorOutput()
}

func openDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	// each connection gets its own in memory database
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	db.MustExec(`CREATE TABLE scalars (
		id INTEGER PRIMARY KEY,
		b  BOOLEAN,
		i  INTEGER,
		n  INTEGER,
		f  REAL,
		s  TEXT
	)`)
	return db
}

type row struct {
	b value.BoolValue
	i value.SignedValue
	n value.UnsignedValue
	f value.FloatValue
	s value.StringValue
}

func (r *row) dest() []any {
	return []any{
		datasource.Scan(&r.b),
		datasource.Scan(&r.i),
		datasource.Scan(&r.n),
		datasource.Scan(&r.f),
		datasource.Scan(&r.s),
	}
}

func TestRoundTrip(t *testing.T) {
	db := openDB(t)

	db.MustExec(`INSERT INTO scalars (id, b, i, n, f, s) VALUES (?, ?, ?, ?, ?, ?)`,
		1,
		datasource.Arg(value.BoolValueTrue),
		datasource.Arg(value.NewSignedValue(math.MinInt64)),
		datasource.Arg(value.NewUnsignedValue(42)),
		datasource.Arg(value.NewFloatValue(1.5)),
		datasource.Arg(value.NewStringValue("abc")),
	)
	_, err := db.NamedExec(`INSERT INTO scalars (id, b, i, n, f, s) VALUES (:id, :b, :i, :n, :f, :s)`,
		map[string]any{
			"id": 2,
			"b":  datasource.Arg(value.BoolValue{}),
			"i":  datasource.Arg(value.SignedValue{}),
			"n":  datasource.Arg(value.UnsignedValue{}),
			"f":  datasource.Arg(value.FloatValue{}),
			"s":  datasource.Arg(value.StringValue{}),
		})
	require.NoError(t, err)

	var r row
	require.NoError(t, db.QueryRowx(`SELECT b, i, n, f, s FROM scalars WHERE id = 1`).Scan(r.dest()...))
	assert.Equal(t, value.BoolValueTrue, r.b)
	assert.Equal(t, value.NewSignedValue(math.MinInt64), r.i)
	assert.Equal(t, value.NewUnsignedValue(42), r.n)
	assert.True(t, r.f.Equal(value.NewFloatValue(1.5)))
	assert.Equal(t, "abc", r.s.ToString())

	require.NoError(t, db.QueryRowx(`SELECT b, i, n, f, s FROM scalars WHERE id = 2`).Scan(r.dest()...))
	assert.True(t, r.b.Nil())
	assert.True(t, r.i.Nil())
	assert.True(t, r.n.Nil())
	assert.True(t, r.f.Nil())
	assert.True(t, r.s.Nil())

	rows, err := db.Queryx(`SELECT s FROM scalars ORDER BY id`)
	require.NoError(t, err)
	defer rows.Close()
	var got []value.StringValue
	for rows.Next() {
		var s value.StringValue
		require.NoError(t, rows.Scan(datasource.Scan(&s)))
		got = append(got, s)
	}
	require.NoError(t, rows.Err())
	require.Len(t, got, 2)
	assert.True(t, got[0].Equal(value.NewStringValue("abc")))
	assert.True(t, got[1].Nil())
}

func TestScanOverflow(t *testing.T) {
	db := openDB(t)
	db.MustExec(`INSERT INTO scalars (id, i) VALUES (1, -1)`)

	var n value.UnsignedValue
	require.NoError(t, db.QueryRowx(`SELECT i FROM scalars WHERE id = 1`).Scan(datasource.Scan(&n)))
	assert.True(t, n.Nil())

	var i value.SignedValue
	require.NoError(t, db.QueryRowx(`SELECT i FROM scalars WHERE id = 1`).Scan(datasource.Scan(&i)))
	assert.Equal(t, value.NewSignedValue(-1), i)

	// an integer column read as a float and a string
	var f value.FloatValue
	var s value.StringValue
	require.NoError(t, db.QueryRowx(`SELECT i, i FROM scalars WHERE id = 1`).Scan(datasource.Scan(&f), datasource.Scan(&s)))
	assert.True(t, f.Equal(value.NewFloatValue(-1)))
	assert.Equal(t, "-1", s.ToString())
}

func TestScanSources(t *testing.T) {
	var b value.BoolValue
	require.NoError(t, datasource.Scan(&b).Scan(int64(2)))
	assert.Equal(t, value.BoolValueTrue, b)
	require.NoError(t, datasource.Scan(&b).Scan([]byte("false")))
	assert.Equal(t, value.BoolValueFalse, b)
	assert.ErrorIs(t, datasource.Scan(&b).Scan("maybe"), value.ErrBoolean)
	assert.ErrorIs(t, datasource.Scan(&b).Scan(1.5), value.ErrCast)

	var i value.SignedValue
	require.NoError(t, datasource.Scan(&i).Scan("123"))
	assert.Equal(t, value.NewSignedValue(123), i)
	require.NoError(t, datasource.Scan(&i).Scan("99999999999999999999"))
	assert.True(t, i.Nil())
	require.NoError(t, datasource.Scan(&i).Scan(true))
	assert.Equal(t, value.NewSignedValue(1), i)
	assert.ErrorIs(t, datasource.Scan(&i).Scan("x"), value.ErrInteger)
	assert.ErrorIs(t, datasource.Scan(&i).Scan(2.5), value.ErrCast)

	var n value.UnsignedValue
	require.NoError(t, datasource.Scan(&n).Scan([]byte("18446744073709551615")))
	assert.Equal(t, value.NewUnsignedValue(uint64(math.MaxUint64)), n)

	var f value.FloatValue
	require.NoError(t, datasource.Scan(&f).Scan("2.5"))
	assert.True(t, f.Equal(value.NewFloatValue(2.5)))
	assert.ErrorIs(t, datasource.Scan(&f).Scan("abc"), value.ErrFloat)

	var s value.StringValue
	buf := []byte("buf")
	require.NoError(t, datasource.Scan(&s).Scan(buf))
	buf[0] = 'x'
	assert.Equal(t, "buf", s.ToString())
	require.NoError(t, datasource.Scan(&s).Scan(0.25))
	assert.Equal(t, "0.25", s.ToString())
	require.NoError(t, datasource.Scan(&s).Scan(false))
	assert.Equal(t, "false", s.ToString())

	// destinations must be non nil references
	var nilRef *value.FloatValue
	assert.ErrorIs(t, datasource.Scan(nilRef).Scan(1.0), value.ErrCast)
	assert.ErrorIs(t, datasource.Scan(value.NewFloatValue(1)).Scan(1.0), value.ErrCast)
	assert.ErrorIs(t, datasource.Scan(nil).Scan(1.0), value.ErrCast)
}

func TestArg(t *testing.T) {
	tests := []struct {
		in   value.Value
		want any
	}{
		{value.BoolValueFalse, false},
		{value.NewSignedValue(-3), int64(-3)},
		{value.NewUnsignedValue(uint64(math.MaxInt64)), int64(math.MaxInt64)},
		{value.NewFloatValue(0.5), 0.5},
		{value.NewStringValue("s"), "s"},
		{value.StringValue{}, nil},
		{value.SignedValue{}, nil},
		{value.NilValueVal, nil},
		{nil, nil},
	}
	for _, tt := range tests {
		got, err := datasource.Arg(tt.in).Value()
		require.NoError(t, err, "%v", tt.in)
		assert.Equal(t, tt.want, got, "%v", tt.in)
	}

	iv := value.NewSignedValue(7)
	got, err := datasource.Arg(&iv).Value()
	require.NoError(t, err)
	assert.Equal(t, int64(7), got)

	var nilRef *value.SignedValue
	got, err = datasource.Arg(nilRef).Value()
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = datasource.Arg(value.NewUnsignedValue(uint64(math.MaxUint64))).Value()
	assert.ErrorIs(t, err, value.ErrInteger)
	var verr *value.Error
	assert.ErrorAs(t, err, &verr)
	assert.ErrorAs(t, datasource.Scan(&iv).Scan(1.5), &verr)
}
