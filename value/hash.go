package value

import (
	"encoding/binary"
	"math"

	"github.com/dchest/siphash"
)

// HashKey is the SipHash key used by Hash.
var HashKey = [2]uint64{0x6b6f6e2d76616c75, 0x652d686173682d31}

// Hash is a SipHash-2-4 of the kind and payload of v. Scalars that are
// Equal hash equally, nulls of one kind all share a hash.
func Hash(v Value) uint64 {
	if KindName(v) == "<nil>" {
		return siphash.Hash(HashKey[0], HashKey[1], nil)
	}
	buf := make([]byte, 0, 16)
	buf = append(buf, byte(v.Type()))
	if v.Nil() {
		return siphash.Hash(HashKey[0], HashKey[1], append(buf, 0))
	}
	buf = append(buf, 1)
	switch v.Type() {
	case BooleanType:
		bv, _ := Cast[BoolValue](v)
		if bv.Bool() {
			buf = append(buf, 1)
		} else {
			buf = append(buf, 0)
		}
	case IntegerType:
		if iv, err := Cast[SignedValue](v); err == nil {
			n, _ := iv.Get()
			buf = binary.BigEndian.AppendUint64(append(buf, 's'), uint64(n))
		} else {
			uv, _ := Cast[UnsignedValue](v)
			n, _ := uv.Get()
			buf = binary.BigEndian.AppendUint64(append(buf, 'u'), n)
		}
	case FloatType:
		fv, _ := Cast[FloatValue](v)
		f, _ := fv.Get()
		if f == 0 {
			// -0 equals 0
			f = 0
		}
		buf = binary.BigEndian.AppendUint64(buf, math.Float64bits(f))
	case StringType:
		sv, _ := Cast[StringValue](v)
		buf = append(buf, sv.v...)
	}
	return siphash.Hash(HashKey[0], HashKey[1], buf)
}
