package vm

// Frame holds the variables of one routine activation.
type Frame struct {
	vars map[string]any
}

// NewFrame returns a frame with no variables.
func NewFrame() *Frame {
	return &Frame{vars: map[string]any{}}
}

// Set assigns a variable in this frame.
func (f *Frame) Set(name string, value any) {
	f.vars[name] = value
}

// Get returns a variable defined in this frame.
func (f *Frame) Get(name string) (any, bool) {
	v, ok := f.vars[name]
	return v, ok
}

// CallStack is the stack of routine frames. The bottom frame holds the
// program's global variables and is never popped.
type CallStack struct {
	frames []*Frame
}

// NewCallStack returns a call stack holding only the global frame.
func NewCallStack() *CallStack {
	return &CallStack{frames: []*Frame{NewFrame()}}
}

// Globals returns the bottom frame.
func (c *CallStack) Globals() *Frame {
	return c.frames[0]
}

// Current returns the innermost frame.
func (c *CallStack) Current() *Frame {
	return c.frames[len(c.frames)-1]
}

// Enter pushes a frame for a routine call.
func (c *CallStack) Enter(f *Frame) {
	c.frames = append(c.frames, f)
}

// Exit pops the innermost routine frame. It returns false when only the
// global frame is left.
func (c *CallStack) Exit() bool {
	if len(c.frames) == 1 {
		return false
	}
	c.frames[len(c.frames)-1] = nil
	c.frames = c.frames[:len(c.frames)-1]
	return true
}

// Depth returns the number of routine frames above the global frame.
func (c *CallStack) Depth() int {
	return len(c.frames) - 1
}

// GetVariable looks a name up in the current frame, then in the globals.
func (c *CallStack) GetVariable(name string) (any, bool) {
	if v, ok := c.Current().Get(name); ok {
		return v, true
	}
	return c.Globals().Get(name)
}
