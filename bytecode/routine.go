package bytecode

// Routine is a named subroutine and the address of its first body
// instruction in a linked image.
type Routine struct {
	Name    string
	Address int
}

// RoutineTable maps routine names to addresses. It remembers the order in
// which names were first added so that listings are stable.
type RoutineTable struct {
	order     []string
	addresses map[string]int
}

// NewRoutineTable returns an empty routine table.
func NewRoutineTable() *RoutineTable {
	return &RoutineTable{addresses: map[string]int{}}
}

// Add records the address of a routine. A name that is already present
// keeps its position but takes the new address; replaced is true in that
// case.
func (t *RoutineTable) Add(name string, address int) (replaced bool) {
	if _, ok := t.addresses[name]; ok {
		replaced = true
	} else {
		t.order = append(t.order, name)
	}
	t.addresses[name] = address
	return replaced
}

// Address returns the address of the named routine.
func (t *RoutineTable) Address(name string) (int, bool) {
	addr, ok := t.addresses[name]
	return addr, ok
}

// Len returns the number of routines in the table.
func (t *RoutineTable) Len() int {
	return len(t.order)
}

// Routines returns the entries in the order their names were first added.
func (t *RoutineTable) Routines() []Routine {
	routines := make([]Routine, 0, len(t.order))
	for _, name := range t.order {
		routines = append(routines, Routine{Name: name, Address: t.addresses[name]})
	}
	return routines
}

// Map returns a copy of the table as a plain map.
func (t *RoutineTable) Map() map[string]int {
	m := make(map[string]int, len(t.addresses))
	for name, addr := range t.addresses {
		m[name] = addr
	}
	return m
}
