package vm

import (
	"github.com/lumascript/lumavm/bytecode"
	"github.com/lumascript/lumavm/errz"
	"github.com/lumascript/lumavm/op"
)

// VariableSource looks up variables by name, normally in the current call
// frame.
type VariableSource interface {
	GetVariable(name string) (any, bool)
}

// Resolve turns a raw instruction parameter into the value it denotes:
// names, operands and other literals are returned unchanged, a register is
// replaced by its current contents and a VarRef by the variable's value.
func Resolve(param any, regs *Registers, vars VariableSource) (any, error) {
	switch p := param.(type) {
	case string, op.Operand:
		return p, nil
	case op.Register:
		return regs.Get(p), nil
	case bytecode.VarRef:
		v, ok := vars.GetVariable(string(p))
		if !ok {
			return nil, errz.Errorf(errz.Name, "undefined variable %q", string(p))
		}
		return v, nil
	default:
		return param, nil
	}
}
