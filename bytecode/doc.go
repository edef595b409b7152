// Package bytecode provides the instruction format executed by the light
// control VM.
//
// # Key Types
//
//   - [Instruction]: an opcode with up to two parameters
//   - [VarRef]: a parameter naming a call-frame variable
//   - [TimePattern]: a compiled "hh:mm" wildcard pattern used by TIME_PATTERN
//   - [RoutineTable]: routine name to entry address
//   - [Program]: a linked, address-stable image plus its routine table
//
// # Address Stability
//
// Instructions and tables refer to each other by absolute integer address.
// Once a [Program] is built its image never changes length or order;
// disabling an instruction is done in place:
//
//	prog.Neutralize(addr) // the slot becomes NOP, every address stays valid
//
// Programs are produced by the loader package from the flat instruction
// stream emitted by the compiler front end.
package bytecode
