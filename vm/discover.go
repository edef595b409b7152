package vm

import (
	"github.com/lumascript/lumavm/bytecode"
	"github.com/lumascript/lumavm/errz"
	"github.com/lumascript/lumavm/lightset"
	"github.com/lumascript/lumavm/op"
	"github.com/rs/zerolog"
)

// LightSet is the registry of named lights that discovery walks. Each call
// returns the collection as it is at that moment.
type LightSet interface {
	LightNames() *lightset.NameSet
	GroupNames() *lightset.NameSet
	LocationNames() *lightset.NameSet
	Group(name string) (*lightset.NameSet, bool)
	Location(name string) (*lightset.NameSet, bool)
}

// Discover executes the DISC, DISCM, DNEXT and DNEXTM instructions. The
// domain searched is taken from the operand register and the direction from
// the disc_forward register. Each query writes its answer, or NULL, to the
// result register.
type Discover struct {
	lights LightSet
	regs   *Registers
	vars   VariableSource
	logger zerolog.Logger
}

// NewDiscover returns a discovery engine bound to a registry, a register
// file and a variable source.
func NewDiscover(lights LightSet, regs *Registers, vars VariableSource, opts ...DiscoverOption) *Discover {
	d := &Discover{
		lights: lights,
		regs:   regs,
		vars:   vars,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Disc sets the result to the first name in the current domain, or the
// last one when discovery runs backward. Only LIGHT, GROUP and LOCATION
// are valid domains here.
func (d *Discover) Disc() error {
	names, err := d.domainNames()
	if err != nil {
		return err
	}
	d.setResult(op.Disc, d.endOf(names))
	return nil
}

// Discm sets the result to the first (or last) member of the named group or
// location. Domains without members yield NULL.
func (d *Discover) Discm(name any) error {
	set, err := d.memberNames(name)
	if err != nil {
		return err
	}
	if set == nil {
		d.setResult(op.Discm, op.Null)
		return nil
	}
	d.setResult(op.Discm, d.endOf(set))
	return nil
}

// Dnext sets the result to the name after current in the current domain,
// or before it when discovery runs backward.
func (d *Discover) Dnext(current any) error {
	names, err := d.domainNames()
	if err != nil {
		return err
	}
	cur, err := d.resolve(current)
	if err != nil {
		return err
	}
	d.setResult(op.Dnext, d.neighbor(names, cur))
	return nil
}

// Dnextm is Dnext scoped to the members of the named group or location.
func (d *Discover) Dnextm(name, current any) error {
	set, err := d.memberNames(name)
	if err != nil {
		return err
	}
	cur, err := d.resolve(current)
	if err != nil {
		return err
	}
	if set == nil {
		d.setResult(op.Dnextm, op.Null)
		return nil
	}
	d.setResult(op.Dnextm, d.neighbor(set, cur))
	return nil
}

// Execute runs a discovery instruction.
func (d *Discover) Execute(inst bytecode.Instruction) error {
	switch inst.Op {
	case op.Disc:
		return d.Disc()
	case op.Discm:
		return d.Discm(inst.Param0)
	case op.Dnext:
		return d.Dnext(inst.Param0)
	case op.Dnextm:
		return d.Dnextm(inst.Param0, inst.Param1)
	default:
		return errz.Errorf(errz.InvalidInstruction, "%s is not a discovery instruction", inst.Op)
	}
}

func (d *Discover) resolve(param any) (any, error) {
	return Resolve(param, d.regs, d.vars)
}

func (d *Discover) domainNames() (*lightset.NameSet, error) {
	switch operand := d.regs.Operand(); operand {
	case op.Light:
		return d.lights.LightNames(), nil
	case op.Group:
		return d.lights.GroupNames(), nil
	case op.Location:
		return d.lights.LocationNames(), nil
	default:
		return nil, errz.Errorf(errz.UnknownOperandDomain, "discovery over %s", operand)
	}
}

// memberNames returns nil without an error when the domain has no
// sub-collections or the named one doesn't exist.
func (d *Discover) memberNames(name any) (*lightset.NameSet, error) {
	v, err := d.resolve(name)
	if err != nil {
		return nil, err
	}
	key, ok := v.(string)
	if !ok {
		return nil, nil
	}
	var set *lightset.NameSet
	switch d.regs.Operand() {
	case op.Group:
		set, ok = d.lights.Group(key)
	case op.Location:
		set, ok = d.lights.Location(key)
	default:
		ok = false
	}
	if !ok {
		return nil, nil
	}
	return set, nil
}

func (d *Discover) endOf(names *lightset.NameSet) any {
	var name string
	var ok bool
	if d.regs.DiscForward() {
		name, ok = names.First()
	} else {
		name, ok = names.Last()
	}
	if !ok {
		return op.Null
	}
	return name
}

func (d *Discover) neighbor(names *lightset.NameSet, current any) any {
	cur, ok := current.(string)
	if !ok {
		return op.Null
	}
	var name string
	if d.regs.DiscForward() {
		name, ok = names.Next(cur)
	} else {
		name, ok = names.Prev(cur)
	}
	if !ok {
		return op.Null
	}
	return name
}

func (d *Discover) setResult(code op.Code, result any) {
	d.regs.SetResult(result)
	d.logger.Debug().
		Stringer("op", code).
		Stringer("operand", d.regs.Operand()).
		Bool("forward", d.regs.DiscForward()).
		Interface("result", result).
		Msg("discovery")
}
