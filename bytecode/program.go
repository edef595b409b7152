package bytecode

import (
	"github.com/gofrs/uuid"
)

// Program is a linked instruction image and its routine table. Addresses
// into the image are fixed once the program is created: instructions can be
// neutralized in place, but are never inserted, removed or reordered.
type Program struct {
	id           uuid.UUID
	instructions []Instruction
	routines     *RoutineTable
}

// NewProgram creates a program from a linked image. The instruction slice is
// copied. A nil routine table is treated as empty.
func NewProgram(instructions []Instruction, routines *RoutineTable) *Program {
	if routines == nil {
		routines = NewRoutineTable()
	}
	code := make([]Instruction, len(instructions))
	copy(code, instructions)
	return &Program{
		id:           uuid.Must(uuid.NewV4()),
		instructions: code,
		routines:     routines,
	}
}

// ID returns the unique identifier assigned when the program was linked.
func (p *Program) ID() uuid.UUID {
	return p.id
}

// Len returns the number of instructions in the image.
func (p *Program) Len() int {
	return len(p.instructions)
}

// At returns the instruction slot at the given address. The pointer stays
// valid for the lifetime of the program.
func (p *Program) At(address int) *Instruction {
	return &p.instructions[address]
}

// Neutralize replaces the instruction at the given address with a NOP
// without moving any other instruction.
func (p *Program) Neutralize(address int) {
	p.instructions[address].Neutralize()
}

// Instructions returns a copy of the image.
func (p *Program) Instructions() []Instruction {
	code := make([]Instruction, len(p.instructions))
	copy(code, p.instructions)
	return code
}

// Routines returns the routine table.
func (p *Program) Routines() *RoutineTable {
	return p.routines
}

// RoutineAddress returns the entry address of the named routine.
func (p *Program) RoutineAddress(name string) (int, bool) {
	return p.routines.Address(name)
}
