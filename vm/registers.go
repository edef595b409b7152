package vm

import (
	"github.com/lumascript/lumavm/op"
)

// Registers is the machine's register file.
type Registers struct {
	values [op.RegUnitMode + 1]any
}

// NewRegisters returns a register file holding the power-on defaults.
func NewRegisters() *Registers {
	r := &Registers{}
	r.Reset()
	return r
}

// Reset restores the power-on defaults: numeric registers are zero, the
// operand is NULL, discovery runs forward and the result is NULL.
func (r *Registers) Reset() {
	for _, reg := range op.Registers() {
		r.values[reg] = 0.0
	}
	r.values[op.RegName] = ""
	r.values[op.RegOperand] = op.Null
	r.values[op.RegPC] = 0
	r.values[op.RegPower] = false
	r.values[op.RegResult] = op.Null
	r.values[op.RegDiscForward] = true
	r.values[op.RegFirstZone] = 0
	r.values[op.RegLastZone] = 0
	r.values[op.RegUnitMode] = 0
}

// Get returns the value of a register. Unknown registers read as nil.
func (r *Registers) Get(reg op.Register) any {
	if int(reg) >= len(r.values) {
		return nil
	}
	return r.values[reg]
}

// Set stores a value in a register. Setting an unknown register does
// nothing.
func (r *Registers) Set(reg op.Register, value any) {
	if reg == 0 || int(reg) >= len(r.values) {
		return
	}
	r.values[reg] = value
}

// Operand returns the operand register, or NULL if it holds anything other
// than an operand.
func (r *Registers) Operand() op.Operand {
	if o, ok := r.values[op.RegOperand].(op.Operand); ok {
		return o
	}
	return op.Null
}

// DiscForward reports whether discovery traverses names in ascending order.
func (r *Registers) DiscForward() bool {
	forward, ok := r.values[op.RegDiscForward].(bool)
	return !ok || forward
}

// Result returns the result register.
func (r *Registers) Result() any {
	return r.values[op.RegResult]
}

// SetResult stores a value in the result register.
func (r *Registers) SetResult(value any) {
	r.values[op.RegResult] = value
}
