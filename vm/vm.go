// Package vm applies operators to scalar values held behind value.Value
// handles, recovering the concrete scalars with value.Cast.
package vm

import (
	"errors"

	u "github.com/araddon/gou"

	"github.com/lytics/kon/value"
)

var _ = u.EMPTY

var (
	// ErrUnsupported is returned when an operator does not apply to the
	// kind of its operands.
	ErrUnsupported = errors.New("unsupported operation")
)

func unsupported(op Op, vals ...value.Value) error {
	kinds := make([]string, len(vals))
	for i, v := range vals {
		kinds[i] = value.KindName(v)
	}
	u.Debugf("unsupported op %q for %v", op, kinds)
	return value.NewError(ErrUnsupported, "%s on %v", op, kinds)
}

func wrap[T value.Value](v T, err error) (value.Value, error) {
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Eval parses the operator and applies it to one or two operands, a
// single operand with "-" is a negation.
func Eval(opText string, args ...value.Value) (value.Value, error) {
	op := OpFromString(opText)
	switch len(args) {
	case 1:
		if op == OpSub {
			op = OpNeg
		}
		return EvalUnary(op, args[0])
	case 2:
		return EvalBinary(op, args[0], args[1])
	}
	return nil, value.NewError(ErrUnsupported, "%s takes 1 or 2 operands, got %d", opText, len(args))
}

// EvalUnary applies Neg, Not or Complement.
func EvalUnary(op Op, v value.Value) (value.Value, error) {
	switch v.(type) {
	case value.BoolValue, *value.BoolValue:
		b, err := value.Cast[value.BoolValue](v)
		if err != nil {
			return nil, err
		}
		if op == OpNot {
			return value.NewBoolValue(b.Not()), nil
		}
	case value.SignedValue, *value.SignedValue:
		i, err := value.Cast[value.SignedValue](v)
		if err != nil {
			return nil, err
		}
		return unaryInt(op, i)
	case value.UnsignedValue, *value.UnsignedValue:
		i, err := value.Cast[value.UnsignedValue](v)
		if err != nil {
			return nil, err
		}
		return unaryInt(op, i)
	case value.FloatValue, *value.FloatValue:
		f, err := value.Cast[value.FloatValue](v)
		if err != nil {
			return nil, err
		}
		if op == OpNeg {
			return wrap(f.Neg())
		}
	}
	return nil, unsupported(op, v)
}

func unaryInt[R value.Repr](op Op, v value.IntValue[R]) (value.Value, error) {
	switch op {
	case OpNeg:
		return wrap(v.Neg())
	case OpComplement:
		return wrap(v.Complement())
	case OpNot:
		return value.NewBoolValue(!v.Bool()), nil
	}
	return nil, unsupported(op, v)
}

// EvalBinary applies op to two operands of the same kind and integer
// representation, the shift count is the only operand allowed to use
// either representation. Comparisons yield a BoolValue and order null
// before any present value.
func EvalBinary(op Op, l, r value.Value) (value.Value, error) {
	switch l.(type) {
	case value.BoolValue, *value.BoolValue:
		a, b, err := castPair[value.BoolValue](l, r)
		if err != nil {
			return nil, err
		}
		return binaryBool(op, a, b)
	case value.SignedValue, *value.SignedValue:
		a, err := value.Cast[value.SignedValue](l)
		if err != nil {
			return nil, err
		}
		if op == OpShl || op == OpShr {
			return shift(op, a, r)
		}
		b, err := value.Cast[value.SignedValue](r)
		if err != nil {
			return nil, err
		}
		return binaryInt(op, a, b)
	case value.UnsignedValue, *value.UnsignedValue:
		a, err := value.Cast[value.UnsignedValue](l)
		if err != nil {
			return nil, err
		}
		if op == OpShl || op == OpShr {
			return shift(op, a, r)
		}
		b, err := value.Cast[value.UnsignedValue](r)
		if err != nil {
			return nil, err
		}
		return binaryInt(op, a, b)
	case value.FloatValue, *value.FloatValue:
		a, b, err := castPair[value.FloatValue](l, r)
		if err != nil {
			return nil, err
		}
		return binaryFloat(op, a, b)
	case value.StringValue, *value.StringValue:
		a, b, err := castPair[value.StringValue](l, r)
		if err != nil {
			return nil, err
		}
		return binaryString(op, a, b)
	}
	return nil, unsupported(op, l, r)
}

func castPair[T value.Scalar](l, r value.Value) (T, T, error) {
	a, err := value.Cast[T](l)
	if err != nil {
		return a, a, err
	}
	b, err := value.Cast[T](r)
	return a, b, err
}

func binaryBool(op Op, a, b value.BoolValue) (value.Value, error) {
	switch op {
	case OpLogicAnd:
		return a.And(b), nil
	case OpLogicOr:
		return a.Or(b), nil
	case OpEq:
		return value.NewBoolValue(a.Equal(b)), nil
	case OpNe:
		return value.NewBoolValue(!a.Equal(b)), nil
	}
	return nil, unsupported(op, a, b)
}

func binaryInt[R value.Repr](op Op, a, b value.IntValue[R]) (value.Value, error) {
	switch op {
	case OpAdd:
		return wrap(a.Add(b))
	case OpSub:
		return wrap(a.Sub(b))
	case OpMul:
		return wrap(a.Mul(b))
	case OpDiv:
		return wrap(a.Div(b))
	case OpMod:
		return wrap(a.Mod(b))
	case OpBitAnd:
		return wrap(a.And(b))
	case OpBitOr:
		return wrap(a.Or(b))
	case OpBitXor:
		return wrap(a.Xor(b))
	case OpEq:
		return value.NewBoolValue(a.Equal(b)), nil
	case OpNe:
		return value.NewBoolValue(!a.Equal(b)), nil
	case OpLt:
		return value.NewBoolValue(a.Less(b)), nil
	case OpLe:
		return value.NewBoolValue(a.LessEqual(b)), nil
	case OpGt:
		return value.NewBoolValue(a.Greater(b)), nil
	case OpGe:
		return value.NewBoolValue(a.GreaterEqual(b)), nil
	}
	return nil, unsupported(op, a, b)
}

func shift[R value.Repr](op Op, a value.IntValue[R], r value.Value) (value.Value, error) {
	n, err := shiftCount(r)
	if err != nil {
		return nil, err
	}
	if op == OpShl {
		return wrap(a.Shl(n))
	}
	return wrap(a.Shr(n))
}

// shiftCount accepts either integer representation, a negative signed
// count is an error.
func shiftCount(v value.Value) (uint, error) {
	switch v.(type) {
	case value.UnsignedValue, *value.UnsignedValue:
		c, err := value.Cast[value.UnsignedValue](v)
		if err != nil {
			return 0, err
		}
		n, err := c.Val()
		if err != nil {
			return 0, err
		}
		return uint(n), nil
	case value.SignedValue, *value.SignedValue:
		c, err := value.Cast[value.SignedValue](v)
		if err != nil {
			return 0, err
		}
		n, err := c.Val()
		if err != nil {
			return 0, err
		}
		if n < 0 {
			return 0, value.NewError(value.ErrInteger, "negative shift count %d", n)
		}
		return uint(n), nil
	}
	_, err := value.Cast[value.UnsignedValue](v)
	return 0, err
}

func binaryFloat(op Op, a, b value.FloatValue) (value.Value, error) {
	switch op {
	case OpAdd:
		return wrap(a.Add(b))
	case OpSub:
		return wrap(a.Sub(b))
	case OpMul:
		return wrap(a.Mul(b))
	case OpDiv:
		return wrap(a.Div(b))
	case OpEq:
		return value.NewBoolValue(a.Equal(b)), nil
	case OpNe:
		return value.NewBoolValue(!a.Equal(b)), nil
	case OpLt:
		return value.NewBoolValue(a.Less(b)), nil
	case OpLe:
		return value.NewBoolValue(a.LessEqual(b)), nil
	case OpGt:
		return value.NewBoolValue(a.Greater(b)), nil
	case OpGe:
		return value.NewBoolValue(a.GreaterEqual(b)), nil
	}
	return nil, unsupported(op, a, b)
}

func binaryString(op Op, a, b value.StringValue) (value.Value, error) {
	switch op {
	case OpEq:
		return value.NewBoolValue(a.Equal(b)), nil
	case OpNe:
		return value.NewBoolValue(!a.Equal(b)), nil
	case OpLt:
		return value.NewBoolValue(a.Compare(b) < 0), nil
	case OpLe:
		return value.NewBoolValue(a.Compare(b) <= 0), nil
	case OpGt:
		return value.NewBoolValue(a.Compare(b) > 0), nil
	case OpGe:
		return value.NewBoolValue(a.Compare(b) >= 0), nil
	}
	return nil, unsupported(op, a, b)
}
