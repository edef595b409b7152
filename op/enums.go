package op

import "strings"

// Operand selects the domain a light-control or discovery instruction
// targets. Null doubles as the "not found" result of discovery queries.
type Operand uint8

const (
	Null Operand = iota
	All
	Light
	Group
	Location
	MzLight
)

var operandNames = []string{
	Null:     "NULL",
	All:      "ALL",
	Light:    "LIGHT",
	Group:    "GROUP",
	Location: "LOCATION",
	MzLight:  "MZ_LIGHT",
}

// String returns the operand name, for example "GROUP".
func (o Operand) String() string {
	if int(o) < len(operandNames) {
		return operandNames[o]
	}
	return "INVALID"
}

// OperandFromString looks up an operand by name, ignoring case.
func OperandFromString(name string) (Operand, bool) {
	for i, n := range operandNames {
		if strings.EqualFold(n, name) {
			return Operand(i), true
		}
	}
	return Null, false
}

// JumpCondition describes when a JUMP instruction transfers control.
type JumpCondition uint8

const (
	Always JumpCondition = iota + 1
	IfFalse
	IfTrue
	Indirect
)

// String returns the condition name, for example "ALWAYS".
func (j JumpCondition) String() string {
	switch j {
	case Always:
		return "ALWAYS"
	case IfFalse:
		return "IF_FALSE"
	case IfTrue:
		return "IF_TRUE"
	case Indirect:
		return "INDIRECT"
	default:
		return ""
	}
}

// Operator is the operation applied by an OP instruction to values on the
// evaluation stack.
type Operator uint8

const (
	Add Operator = iota + 1
	Sub
	Mul
	Div
	Mod
	Pow
	And
	Or
	Not
	Eq
	NotEq
	Lt
	LtEq
	Gt
	GtEq
	UAdd
	USub
)

// String returns a string representation of the operator.
// For example "+" for addition.
func (o Operator) String() string {
	switch o {
	case Add, UAdd:
		return "+"
	case Sub, USub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	case Mod:
		return "%"
	case Pow:
		return "^"
	case And:
		return "and"
	case Or:
		return "or"
	case Not:
		return "not"
	case Eq:
		return "=="
	case NotEq:
		return "!="
	case Lt:
		return "<"
	case LtEq:
		return "<="
	case Gt:
		return ">"
	case GtEq:
		return ">="
	default:
		return ""
	}
}

// IsUnary reports whether the operator takes a single operand.
func (o Operator) IsUnary() bool {
	return o == Not || o == UAdd || o == USub
}

// LoopVar names the bookkeeping values a LOOP keeps on the stack.
type LoopVar uint8

const (
	LoopFirst LoopVar = iota + 1
	LoopLast
	LoopIncr
	LoopCounter
)

// String returns the loop variable name, for example "FIRST".
func (l LoopVar) String() string {
	switch l {
	case LoopFirst:
		return "FIRST"
	case LoopLast:
		return "LAST"
	case LoopIncr:
		return "INCR"
	case LoopCounter:
		return "COUNTER"
	default:
		return ""
	}
}

// IoOp is the kind of output performed by an OUT instruction.
type IoOp uint8

const (
	Print IoOp = iota + 1
	Println
	Printf
)

// String returns the IO operation name, for example "PRINTLN".
func (i IoOp) String() string {
	switch i {
	case Print:
		return "PRINT"
	case Println:
		return "PRINTLN"
	case Printf:
		return "PRINTF"
	default:
		return ""
	}
}

// SetOp says how a TIME_PATTERN instruction combines its pattern with the
// pattern already in effect.
type SetOp uint8

const (
	SetInit SetOp = iota + 1
	SetUnion
)

// String returns the set operation name, for example "UNION".
func (s SetOp) String() string {
	switch s {
	case SetInit:
		return "INIT"
	case SetUnion:
		return "UNION"
	default:
		return ""
	}
}
