package bytecode

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/lumascript/lumavm/errz"
	"github.com/lumascript/lumavm/op"
)

// VarRef is an instruction parameter naming a variable in the current call
// frame. It is resolved when the instruction executes.
type VarRef string

// Instruction is one unit of a program: an opcode and up to two
// parameters. A nil parameter is unset.
type Instruction struct {
	Op     op.Code
	Param0 any
	Param1 any
}

// NewInstruction creates an instruction with at most two parameters.
func NewInstruction(code op.Code, params ...any) Instruction {
	inst := Instruction{Op: code}
	switch len(params) {
	case 0:
	case 1:
		inst.Param0 = params[0]
	case 2:
		inst.Param0, inst.Param1 = params[0], params[1]
	default:
		panic(fmt.Sprintf("bytecode: %s given %d params, at most 2 allowed", code, len(params)))
	}
	return inst
}

// Equal compares the opcode and both parameters of two instructions.
// Comparing against anything other than an Instruction or *Instruction is
// a MalformedEquality error.
func (i Instruction) Equal(other any) (bool, error) {
	var o Instruction
	switch v := other.(type) {
	case Instruction:
		o = v
	case *Instruction:
		if v == nil {
			return false, errz.Errorf(errz.MalformedEquality, "%s compared with nil instruction", i.Op)
		}
		o = *v
	default:
		return false, errz.Errorf(errz.MalformedEquality, "%s compared with %T", i.Op, other)
	}
	return i.Op == o.Op &&
		reflect.DeepEqual(i.Param0, o.Param0) &&
		reflect.DeepEqual(i.Param1, o.Param1), nil
}

// Neutralize turns the instruction into a NOP in place. The parameters are
// left untouched, and so is the instruction's address in any image.
func (i *Instruction) Neutralize() {
	i.Op = op.Nop
}

// String renders the instruction as "OPCODE", "OPCODE, p0" or
// "OPCODE, p0, p1".
func (i Instruction) String() string {
	if i.Param0 == nil && i.Param1 == nil {
		return i.Op.String()
	}
	var sb strings.Builder
	sb.WriteString(i.Op.String())
	sb.WriteString(", ")
	sb.WriteString(formatParam(i.Param0))
	if i.Param1 == nil {
		return sb.String()
	}
	sb.WriteString(", ")
	if i.Op == op.TimePattern {
		if p, ok := i.Param1.(fmt.Stringer); ok {
			sb.WriteString(p.String())
			return sb.String()
		}
	}
	sb.WriteString(formatParam(i.Param1))
	return sb.String()
}

func formatParam(p any) string {
	switch v := p.(type) {
	case nil:
		return "nil"
	case string:
		return strconv.Quote(v)
	case VarRef:
		return string(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
