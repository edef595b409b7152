// Package dis renders instruction sequences as numbered listings for
// logging and debugging. The listing is a one-way projection; there is no
// parser for it.
package dis

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/lumascript/lumavm/bytecode"
)

var (
	offsetColor  = color.New(color.FgYellow)
	opcodeColor  = color.New(color.Bold)
	routineColor = color.New(color.FgCyan)
)

// Lines returns one "index: instruction" line per instruction.
func Lines(code []bytecode.Instruction) []string {
	lines := make([]string, len(code))
	for i, inst := range code {
		lines[i] = fmt.Sprintf("%d: %s", i, inst.String())
	}
	return lines
}

// Listing returns the numbered listing as a single newline-terminated
// string.
func Listing(code []bytecode.Instruction) string {
	if len(code) == 0 {
		return ""
	}
	return strings.Join(Lines(code), "\n") + "\n"
}

// Print writes a colorized listing of the given instructions. Colors follow
// color.NoColor, so output to a non-terminal is plain.
func Print(w io.Writer, code []bytecode.Instruction) error {
	width := len(fmt.Sprint(len(code) - 1))
	for i, inst := range code {
		text := inst.String()
		name := inst.Op.String()
		rest := strings.TrimPrefix(text, name)
		_, err := fmt.Fprintf(w, "%s: %s%s\n",
			offsetColor.Sprintf("%*d", width, i),
			opcodeColor.Sprint(name),
			rest)
		if err != nil {
			return err
		}
	}
	return nil
}

// PrintProgram writes the program's listing followed by its routine table
// in the order routines were defined.
func PrintProgram(w io.Writer, prog *bytecode.Program) error {
	if err := Print(w, prog.Instructions()); err != nil {
		return err
	}
	routines := prog.Routines().Routines()
	if len(routines) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, "routines:"); err != nil {
		return err
	}
	for _, r := range routines {
		if _, err := fmt.Fprintf(w, "  %s: %d\n", routineColor.Sprint(r.Name), r.Address); err != nil {
			return err
		}
	}
	return nil
}
