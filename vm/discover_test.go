package vm

import (
	"bytes"
	"testing"

	"github.com/lumascript/lumavm/bytecode"
	"github.com/lumascript/lumavm/errz"
	"github.com/lumascript/lumavm/lightset"
	"github.com/lumascript/lumavm/op"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// fakeLights serves fixed collections.
type fakeLights struct {
	lights    []string
	groups    []string
	locations []string
	members   map[string][]string
}

func (f *fakeLights) LightNames() *lightset.NameSet { return lightset.NewNameSet(f.lights...) }
func (f *fakeLights) GroupNames() *lightset.NameSet { return lightset.NewNameSet(f.groups...) }
func (f *fakeLights) LocationNames() *lightset.NameSet { return lightset.NewNameSet(f.locations...) }

func (f *fakeLights) Group(name string) (*lightset.NameSet, bool) {
	m, ok := f.members["group:"+name]
	if !ok {
		return nil, false
	}
	return lightset.NewNameSet(m...), true
}

func (f *fakeLights) Location(name string) (*lightset.NameSet, bool) {
	m, ok := f.members["location:"+name]
	if !ok {
		return nil, false
	}
	return lightset.NewNameSet(m...), true
}

func newTestDiscover(lights LightSet, operand op.Operand, forward bool) (*Discover, *Registers, *CallStack) {
	regs := NewRegisters()
	regs.Set(op.RegOperand, operand)
	regs.Set(op.RegDiscForward, forward)
	calls := NewCallStack()
	return NewDiscover(lights, regs, calls), regs, calls
}

func TestDisc(t *testing.T) {
	lights := &fakeLights{groups: []string{"a", "b", "c"}}

	d, regs, _ := newTestDiscover(lights, op.Group, true)
	require.Nil(t, d.Disc())
	require.Equal(t, "a", regs.Result())

	regs.Set(op.RegDiscForward, false)
	require.Nil(t, d.Disc())
	require.Equal(t, "c", regs.Result())
}

func TestDiscEmpty(t *testing.T) {
	for _, forward := range []bool{true, false} {
		d, regs, _ := newTestDiscover(&fakeLights{}, op.Group, forward)
		regs.SetResult("stale")
		require.Nil(t, d.Disc())
		require.Equal(t, op.Null, regs.Result())
	}
}

func TestDiscEachDomain(t *testing.T) {
	lights := &fakeLights{
		lights:    []string{"Top", "Bottom"},
		groups:    []string{"Pole"},
		locations: []string{"Den", "Attic"},
	}
	tests := []struct {
		operand op.Operand
		first   string
		last    string
	}{
		{op.Light, "Bottom", "Top"},
		{op.Group, "Pole", "Pole"},
		{op.Location, "Attic", "Den"},
	}
	for _, tt := range tests {
		t.Run(tt.operand.String(), func(t *testing.T) {
			d, regs, _ := newTestDiscover(lights, tt.operand, true)
			require.Nil(t, d.Disc())
			require.Equal(t, tt.first, regs.Result())
			regs.Set(op.RegDiscForward, false)
			require.Nil(t, d.Disc())
			require.Equal(t, tt.last, regs.Result())
		})
	}
}

func TestDiscUnknownDomain(t *testing.T) {
	for _, operand := range []op.Operand{op.All, op.MzLight, op.Null} {
		d, _, _ := newTestDiscover(&fakeLights{lights: []string{"a"}}, operand, true)
		require.ErrorIs(t, d.Disc(), errz.ErrUnknownOperandDomain)
		require.ErrorIs(t, d.Dnext("a"), errz.ErrUnknownOperandDomain)
	}
}

func TestDnext(t *testing.T) {
	lights := &fakeLights{locations: []string{"a", "b", "c"}}
	d, regs, _ := newTestDiscover(lights, op.Location, true)

	require.Nil(t, d.Dnext("b"))
	require.Equal(t, "c", regs.Result())
	require.Nil(t, d.Dnext("c"))
	require.Equal(t, op.Null, regs.Result())

	regs.Set(op.RegDiscForward, false)
	require.Nil(t, d.Dnext("b"))
	require.Equal(t, "a", regs.Result())
	require.Nil(t, d.Dnext("a"))
	require.Equal(t, op.Null, regs.Result())
}

func TestDnextAbsent(t *testing.T) {
	d, regs, _ := newTestDiscover(&fakeLights{locations: []string{"a", "c"}}, op.Location, true)
	require.Nil(t, d.Dnext("b"))
	require.Equal(t, op.Null, regs.Result())
	require.Nil(t, d.Dnext(op.Null))
	require.Equal(t, op.Null, regs.Result())
}

func TestDnextResolvesOperands(t *testing.T) {
	d, regs, calls := newTestDiscover(&fakeLights{lights: []string{"a", "b", "c"}}, op.Light, true)

	require.Nil(t, d.Disc())
	require.Nil(t, d.Dnext(op.RegResult))
	require.Equal(t, "b", regs.Result())

	calls.Globals().Set("light", "b")
	require.Nil(t, d.Dnext(bytecode.VarRef("light")))
	require.Equal(t, "c", regs.Result())

	require.ErrorIs(t, d.Dnext(bytecode.VarRef("missing")), errz.ErrName)
}

func TestDiscm(t *testing.T) {
	lights := &fakeLights{members: map[string][]string{
		"group:Pole":   {"Top", "Middle", "Bottom"},
		"group:Empty":  {},
		"location:Den": {"Lamp"},
	}}

	d, regs, _ := newTestDiscover(lights, op.Group, true)
	require.Nil(t, d.Discm("Pole"))
	require.Equal(t, "Bottom", regs.Result())

	regs.Set(op.RegDiscForward, false)
	require.Nil(t, d.Discm("Pole"))
	require.Equal(t, "Top", regs.Result())

	require.Nil(t, d.Discm("Empty"))
	require.Equal(t, op.Null, regs.Result())

	require.Nil(t, d.Discm("Kitchen"))
	require.Equal(t, op.Null, regs.Result())

	regs.Set(op.RegOperand, op.Location)
	require.Nil(t, d.Discm("Den"))
	require.Equal(t, "Lamp", regs.Result())
}

func TestDnextm(t *testing.T) {
	lights := &fakeLights{members: map[string][]string{
		"location:Den": {"a", "b", "c"},
	}}
	d, regs, calls := newTestDiscover(lights, op.Location, true)
	calls.Globals().Set("room", "Den")

	require.Nil(t, d.Dnextm(bytecode.VarRef("room"), "a"))
	require.Equal(t, "b", regs.Result())
	require.Nil(t, d.Dnextm("Den", "c"))
	require.Equal(t, op.Null, regs.Result())

	regs.Set(op.RegDiscForward, false)
	require.Nil(t, d.Dnextm("Den", "c"))
	require.Equal(t, "b", regs.Result())
	require.Nil(t, d.Dnextm("Den", "a"))
	require.Equal(t, op.Null, regs.Result())

	require.Nil(t, d.Dnextm("Attic", "a"))
	require.Equal(t, op.Null, regs.Result())
}

func TestMemberQueriesWithoutSubCollections(t *testing.T) {
	lights := &fakeLights{
		lights:  []string{"a", "b"},
		members: map[string][]string{"group:a": {"x"}, "location:a": {"x"}},
	}
	for _, operand := range []op.Operand{op.Light, op.MzLight, op.All, op.Null} {
		t.Run(operand.String(), func(t *testing.T) {
			d, regs, _ := newTestDiscover(lights, operand, true)
			regs.SetResult("stale")
			require.Nil(t, d.Discm("a"))
			require.Equal(t, op.Null, regs.Result())

			regs.SetResult("stale")
			require.Nil(t, d.Dnextm("a", "x"))
			require.Equal(t, op.Null, regs.Result())
		})
	}
}

func TestDiscoverExecute(t *testing.T) {
	lights := &fakeLights{
		groups:  []string{"g1", "g2"},
		members: map[string][]string{"group:g1": {"x", "y"}},
	}
	d, regs, _ := newTestDiscover(lights, op.Group, true)

	require.Nil(t, d.Execute(bytecode.NewInstruction(op.Disc)))
	require.Equal(t, "g1", regs.Result())
	require.Nil(t, d.Execute(bytecode.NewInstruction(op.Dnext, op.RegResult)))
	require.Equal(t, "g2", regs.Result())
	require.Nil(t, d.Execute(bytecode.NewInstruction(op.Discm, "g1")))
	require.Equal(t, "x", regs.Result())
	require.Nil(t, d.Execute(bytecode.NewInstruction(op.Dnextm, "g1", op.RegResult)))
	require.Equal(t, "y", regs.Result())

	for _, code := range []op.Code{op.Wait, op.Push, op.Jump} {
		err := d.Execute(bytecode.NewInstruction(code))
		require.ErrorIs(t, err, errz.ErrInvalidInstruction)
		require.Equal(t, errz.InvalidInstruction, errz.KindOf(err))
	}
}

func TestDiscoverSeesRegistryChanges(t *testing.T) {
	reg := lightset.NewRegistry()
	reg.AddLight(lightset.Light{Name: "b", Group: "Pole"})
	reg.AddLight(lightset.Light{Name: "d", Group: "Pole"})
	d, regs, _ := newTestDiscover(reg, op.Light, true)

	require.Nil(t, d.Disc())
	require.Equal(t, "b", regs.Result())

	reg.AddLight(lightset.Light{Name: "c", Group: "Pole"})
	require.Nil(t, d.Dnext("b"))
	require.Equal(t, "c", regs.Result())

	reg.AddLight(lightset.Light{Name: "a"})
	require.Nil(t, d.Disc())
	require.Equal(t, "a", regs.Result())

	regs.Set(op.RegOperand, op.Group)
	reg.RemoveLight("b")
	require.Nil(t, d.Discm("Pole"))
	require.Equal(t, "c", regs.Result())
}

func TestDiscoverWalksWholeDomain(t *testing.T) {
	reg := lightset.NewRegistry()
	for _, name := range []string{"Top", "Bottom", "Middle", "Strip"} {
		reg.AddLight(lightset.Light{Name: name})
	}
	d, regs, _ := newTestDiscover(reg, op.Light, false)

	var seen []string
	require.Nil(t, d.Disc())
	for regs.Result() != op.Null {
		seen = append(seen, regs.Result().(string))
		require.Nil(t, d.Dnext(op.RegResult))
	}
	require.Equal(t, []string{"Top", "Strip", "Middle", "Bottom"}, seen)
}

func TestDiscoverLogger(t *testing.T) {
	var buf bytes.Buffer
	regs := NewRegisters()
	regs.Set(op.RegOperand, op.Light)
	d := NewDiscover(&fakeLights{lights: []string{"a"}}, regs, NewCallStack(),
		WithDiscoverLogger(zerolog.New(&buf).Level(zerolog.DebugLevel)))

	require.Nil(t, d.Disc())
	out := buf.String()
	require.Contains(t, out, `"op":"DISC"`)
	require.Contains(t, out, `"operand":"LIGHT"`)
	require.Contains(t, out, `"result":"a"`)
	require.Contains(t, out, `"component":"discover"`)
}
