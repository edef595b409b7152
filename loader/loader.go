// Package loader links the flat instruction stream produced by the compiler
// into an address-stable program image.
//
// Routine definitions may appear anywhere in the stream. Each one starts
// with a ROUTINE instruction and runs up to and including the next END. The
// loader gathers every routine body into one contiguous routine segment and
// every other instruction into the main segment, preserving relative order
// within each. When at least one routine is present the image is
//
//	JUMP ALWAYS, <main start> | routine segment | main segment
//
// so that execution begins in the main segment. Without routines the image
// is the main segment alone.
package loader

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/lumascript/lumavm/bytecode"
	"github.com/lumascript/lumavm/errz"
	"github.com/lumascript/lumavm/op"
	"github.com/rs/zerolog"
)

// Loader merges routine definitions out of an instruction stream. A Loader
// may be reused, but not concurrently: every call to Load resets its state.
type Loader struct {
	logger zerolog.Logger
	strict bool

	main     []bytecode.Instruction
	routines []bytecode.Instruction
	table    *bytecode.RoutineTable
}

// New returns a Loader configured with the given options.
func New(opts ...Option) *Loader {
	l := &Loader{
		logger: zerolog.Nop(),
		table:  bytecode.NewRoutineTable(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load links the given instruction stream. Outside strict mode it never
// fails: a routine without END absorbs the rest of the stream, and a
// repeated routine name takes the address of its last definition.
func (l *Loader) Load(code []bytecode.Instruction) (*bytecode.Program, error) {
	l.reset()
	var errs *multierror.Error

	for i := 0; i < len(code); i++ {
		if code[i].Op != op.Routine {
			l.main = append(l.main, code[i])
			continue
		}
		i = l.loadRoutine(code, i, &errs)
	}

	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}

	prog := bytecode.NewProgram(l.link(), l.table)
	l.logger.Debug().
		Str("image_id", prog.ID().String()).
		Int("size", prog.Len()).
		Int("main", len(l.main)).
		Int("routines", l.table.Len()).
		Msg("linked program")
	return prog, nil
}

// loadRoutine consumes the routine starting at code[start] and returns the
// index of the last instruction it consumed.
func (l *Loader) loadRoutine(code []bytecode.Instruction, start int, errs **multierror.Error) int {
	marker := code[start]
	name, ok := marker.Param0.(string)
	if !ok {
		name = fmt.Sprint(marker.Param0)
		if l.strict {
			*errs = multierror.Append(*errs, errz.Errorf(errz.Linkage,
				"routine at %d has non-string name %v", start, marker.Param0))
		}
	}

	l.routines = append(l.routines, marker)
	// The synthetic jump occupies address 0, so the first body instruction
	// lands one past the current routine segment length.
	address := len(l.routines) + 1

	i := start + 1
	terminated := false
	for ; i < len(code); i++ {
		l.routines = append(l.routines, code[i])
		if code[i].Op == op.End {
			terminated = true
			break
		}
		if code[i].Op == op.Routine && l.strict {
			*errs = multierror.Append(*errs, errz.Errorf(errz.Linkage,
				"routine %q contains nested routine at %d", name, i))
		}
	}
	if !terminated && l.strict {
		*errs = multierror.Append(*errs, errz.Errorf(errz.Linkage,
			"routine %q at %d has no END", name, start))
	}

	if replaced := l.table.Add(name, address); replaced {
		if l.strict {
			*errs = multierror.Append(*errs, errz.Errorf(errz.Linkage,
				"routine %q defined more than once", name))
		}
		l.logger.Warn().Str("routine", name).Int("address", address).
			Msg("routine redefined, using last definition")
	} else {
		l.logger.Debug().Str("routine", name).Int("address", address).Msg("linked routine")
	}
	return i
}

func (l *Loader) link() []bytecode.Instruction {
	if len(l.routines) == 0 {
		image := make([]bytecode.Instruction, len(l.main))
		copy(image, l.main)
		return image
	}
	image := make([]bytecode.Instruction, 0, 1+len(l.routines)+len(l.main))
	image = append(image, bytecode.NewInstruction(op.Jump, op.Always, len(l.routines)+1))
	image = append(image, l.routines...)
	image = append(image, l.main...)
	return image
}

func (l *Loader) reset() {
	l.main = nil
	l.routines = nil
	l.table = bytecode.NewRoutineTable()
}

// MainSegment returns a copy of the top-level instructions gathered by the
// last call to Load.
func (l *Loader) MainSegment() []bytecode.Instruction {
	return append([]bytecode.Instruction(nil), l.main...)
}

// RoutineSegment returns a copy of the routine bodies gathered by the last
// call to Load, without the leading jump.
func (l *Loader) RoutineSegment() []bytecode.Instruction {
	return append([]bytecode.Instruction(nil), l.routines...)
}

// Load links code with a default Loader.
func Load(code []bytecode.Instruction) (*bytecode.Program, error) {
	return New().Load(code)
}
