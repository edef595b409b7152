// Package op defines the opcodes and operand enumerations shared by the
// loader, the discovery engine and the interpreter.
package op

import "strings"

// Code is an integer opcode that indicates an operation to execute.
type Code uint16

const (
	Invalid Code = 0

	// Execution
	Nop        Code = 1
	Stop       Code = 2
	Breakpoint Code = 3
	Pause      Code = 4
	Wait       Code = 5

	// Flow
	Jump    Code = 10
	Jsr     Code = 11
	Routine Code = 12
	End     Code = 13
	Loop    Code = 14
	EndLoop Code = 15

	// Data
	Constant Code = 20
	Move     Code = 21
	MoveQ    Code = 22
	Push     Code = 23
	PushQ    Code = 24
	Pop      Code = 25
	Op       Code = 26
	Param    Code = 27

	// Lights
	Color    Code = 30
	GetColor Code = 31
	Power    Code = 32
	Snapshot Code = 33

	// Discovery
	Disc   Code = 40
	Discm  Code = 41
	Dnext  Code = 42
	Dnextm Code = 43

	// Time
	TimePattern Code = 50

	// IO
	Out Code = 60
)

// Info contains information about an opcode.
type Info struct {
	Code         Code
	Name         string
	OperandCount int
}

var (
	infos  = make([]Info, 64)
	byName = map[string]Code{}
)

func init() {
	type opInfo struct {
		op    Code
		name  string
		count int
	}
	ops := []opInfo{
		{Breakpoint, "BREAKPOINT", 0},
		{Color, "COLOR", 0},
		{Constant, "CONSTANT", 2},
		{Disc, "DISC", 0},
		{Discm, "DISCM", 1},
		{Dnext, "DNEXT", 1},
		{Dnextm, "DNEXTM", 2},
		{End, "END", 1},
		{EndLoop, "END_LOOP", 0},
		{GetColor, "GET_COLOR", 0},
		{Jsr, "JSR", 1},
		{Jump, "JUMP", 2},
		{Loop, "LOOP", 0},
		{Move, "MOVE", 2},
		{MoveQ, "MOVEQ", 2},
		{Nop, "NOP", 0},
		{Op, "OP", 1},
		{Out, "OUT", 1},
		{Param, "PARAM", 2},
		{Pause, "PAUSE", 0},
		{Pop, "POP", 1},
		{Power, "POWER", 0},
		{Push, "PUSH", 1},
		{PushQ, "PUSHQ", 1},
		{Routine, "ROUTINE", 1},
		{Snapshot, "SNAPSHOT", 0},
		{Stop, "STOP", 0},
		{TimePattern, "TIME_PATTERN", 2},
		{Wait, "WAIT", 0},
	}
	for _, o := range ops {
		infos[o.op] = Info{
			Name:         o.name,
			Code:         o.op,
			OperandCount: o.count,
		}
		byName[strings.ToLower(o.name)] = o.op
	}
}

// GetInfo returns information about the given opcode.
func GetInfo(op Code) Info {
	if int(op) >= len(infos) {
		return Info{}
	}
	return infos[op]
}

// String returns the opcode name, for example "JUMP".
func (c Code) String() string {
	if name := GetInfo(c).Name; name != "" {
		return name
	}
	return "INVALID"
}

// CodeFromString looks up an opcode by name, ignoring case.
func CodeFromString(name string) (Code, bool) {
	c, ok := byName[strings.ToLower(name)]
	return c, ok
}
