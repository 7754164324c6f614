package vm

// Op is an operator the vm can apply to scalar values.
type Op uint8

const (
	// Enum values for operators, DO NOT CHANGE the numbers, do not use iota
	OpUnknown    Op = 0
	OpAdd        Op = 1
	OpSub        Op = 2
	OpMul        Op = 3
	OpDiv        Op = 4
	OpMod        Op = 5
	OpBitAnd     Op = 10
	OpBitOr      Op = 11
	OpBitXor     Op = 12
	OpShl        Op = 13
	OpShr        Op = 14
	OpLogicAnd   Op = 20
	OpLogicOr    Op = 21
	OpEq         Op = 30
	OpNe         Op = 31
	OpLt         Op = 32
	OpLe         Op = 33
	OpGt         Op = 34
	OpGe         Op = 35
	OpNeg        Op = 40
	OpNot        Op = 41
	OpComplement Op = 42
)

var (
	opToStr = map[Op]string{
		OpAdd:        "+",
		OpSub:        "-",
		OpMul:        "*",
		OpDiv:        "/",
		OpMod:        "%",
		OpBitAnd:     "&",
		OpBitOr:      "|",
		OpBitXor:     "^",
		OpShl:        "<<",
		OpShr:        ">>",
		OpLogicAnd:   "&&",
		OpLogicOr:    "||",
		OpEq:         "==",
		OpNe:         "!=",
		OpLt:         "<",
		OpLe:         "<=",
		OpGt:         ">",
		OpGe:         ">=",
		OpNeg:        "-",
		OpNot:        "!",
		OpComplement: "~",
	}
	strToOp = map[string]Op{
		"+":  OpAdd,
		"-":  OpSub,
		"*":  OpMul,
		"/":  OpDiv,
		"%":  OpMod,
		"&":  OpBitAnd,
		"|":  OpBitOr,
		"^":  OpBitXor,
		"<<": OpShl,
		">>": OpShr,
		"&&": OpLogicAnd,
		"||": OpLogicOr,
		"==": OpEq,
		"!=": OpNe,
		"<":  OpLt,
		"<=": OpLe,
		">":  OpGt,
		">=": OpGe,
		"!":  OpNot,
		"~":  OpComplement,
	}
	unaryOps = map[Op]bool{
		OpNeg:        true,
		OpNot:        true,
		OpComplement: true,
	}
	compareOps = map[Op]bool{
		OpEq: true,
		OpNe: true,
		OpLt: true,
		OpLe: true,
		OpGt: true,
		OpGe: true,
	}
)

// OpFromString parses the operator text, "-" is always the binary
// subtraction, use OpNeg for negation.
func OpFromString(s string) Op {
	if op, ok := strToOp[s]; ok {
		return op
	}
	return OpUnknown
}

func (o Op) String() string {
	if s, ok := opToStr[o]; ok {
		return s
	}
	return "unknown"
}

func (o Op) IsUnary() bool      { return unaryOps[o] }
func (o Op) IsComparison() bool { return compareOps[o] }
