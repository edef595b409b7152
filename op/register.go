package op

import "strings"

// Register identifies one slot in the machine's register file.
type Register uint8

const (
	RegRed Register = iota + 1
	RegGreen
	RegBlue
	RegHue
	RegSaturation
	RegBrightness
	RegKelvin
	RegDuration
	RegTime
	RegName
	RegOperand
	RegPC
	RegPower
	RegResult
	RegDiscForward
	RegFirstZone
	RegLastZone
	RegUnitMode
)

var registerNames = map[Register]string{
	RegRed:         "red",
	RegGreen:       "green",
	RegBlue:        "blue",
	RegHue:         "hue",
	RegSaturation:  "saturation",
	RegBrightness:  "brightness",
	RegKelvin:      "kelvin",
	RegDuration:    "duration",
	RegTime:        "time",
	RegName:        "name",
	RegOperand:     "operand",
	RegPC:          "pc",
	RegPower:       "power",
	RegResult:      "result",
	RegDiscForward: "disc_forward",
	RegFirstZone:   "first_zone",
	RegLastZone:    "last_zone",
	RegUnitMode:    "unit_mode",
}

var registersByName = func() map[string]Register {
	m := make(map[string]Register, len(registerNames))
	for reg, name := range registerNames {
		m[name] = reg
	}
	return m
}()

// String returns the register name in upper case, for example "HUE".
func (r Register) String() string {
	if name, ok := registerNames[r]; ok {
		return strings.ToUpper(name)
	}
	return "INVALID"
}

// RegisterFromString looks up a register by name, ignoring case. The second
// return value is false if no register has that name.
func RegisterFromString(name string) (Register, bool) {
	reg, ok := registersByName[strings.ToLower(name)]
	return reg, ok
}

// Registers returns every defined register in declaration order.
func Registers() []Register {
	regs := make([]Register, 0, len(registerNames))
	for r := RegRed; r <= RegUnitMode; r++ {
		regs = append(regs, r)
	}
	return regs
}
