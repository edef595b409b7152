package bytecode

import (
	"testing"

	"github.com/gofrs/uuid"
	"github.com/lumascript/lumavm/op"
	"github.com/stretchr/testify/require"
)

func TestRoutineTableLastWriteWins(t *testing.T) {
	table := NewRoutineTable()
	require.False(t, table.Add("foo", 2))
	require.False(t, table.Add("bar", 6))
	require.True(t, table.Add("foo", 9))

	addr, ok := table.Address("foo")
	require.True(t, ok)
	require.Equal(t, 9, addr)
	require.Equal(t, 2, table.Len())
	require.Equal(t, []Routine{{"foo", 9}, {"bar", 6}}, table.Routines())
	require.Equal(t, map[string]int{"foo": 9, "bar": 6}, table.Map())

	_, ok = table.Address("baz")
	require.False(t, ok)
}

func TestProgramCopiesInput(t *testing.T) {
	code := []Instruction{NewInstruction(op.Push, 1), NewInstruction(op.Pop, op.RegHue)}
	prog := NewProgram(code, nil)

	code[0] = NewInstruction(op.Stop)
	require.Equal(t, op.Push, prog.At(0).Op)
	require.Equal(t, 2, prog.Len())
	require.Equal(t, 0, prog.Routines().Len())
	require.NotEqual(t, uuid.Nil, prog.ID())
}

func TestProgramNeutralizeKeepsAddresses(t *testing.T) {
	table := NewRoutineTable()
	table.Add("foo", 2)
	prog := NewProgram([]Instruction{
		NewInstruction(op.Jump, op.Always, 4),
		NewInstruction(op.Routine, "foo"),
		NewInstruction(op.Push, 1),
		NewInstruction(op.End, "foo"),
		NewInstruction(op.Jsr, "foo"),
	}, table)

	slot := prog.At(2)
	prog.Neutralize(2)
	require.Equal(t, op.Nop, slot.Op)
	require.Equal(t, 1, slot.Param0)
	require.Equal(t, 5, prog.Len())
	require.Equal(t, op.End, prog.At(3).Op)

	addr, ok := prog.RoutineAddress("foo")
	require.True(t, ok)
	require.Equal(t, 2, addr)
}

func TestProgramIDsAreUnique(t *testing.T) {
	a := NewProgram(nil, nil)
	b := NewProgram(nil, nil)
	require.NotEqual(t, a.ID(), b.ID())
}

func TestProgramInstructionsIsCopy(t *testing.T) {
	prog := NewProgram([]Instruction{NewInstruction(op.Wait)}, nil)
	code := prog.Instructions()
	code[0].Neutralize()
	require.Equal(t, op.Wait, prog.At(0).Op)
}
