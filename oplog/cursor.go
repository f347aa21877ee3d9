package oplog

// Cursor - Walks the steps of a trace back and forth, used for step by step playback
type Cursor struct {
	trace    *Trace
	position int
}

// NewCursor - Returns a pointer to a new Cursor positioned before the first step
func NewCursor(trace *Trace) *Cursor {
	return &Cursor{trace: trace, position: -1}
}

// Next - Moves to the next step, returns false if already at the last step
func (C *Cursor) Next() bool {
	if C.position+1 >= len(C.trace.Steps) {
		return false
	}
	C.position++
	return true
}

// Prev - Moves to the previous step, returns false if already at the first step
func (C *Cursor) Prev() bool {
	if C.position <= 0 {
		return false
	}
	C.position--
	return true
}

// Current - Returns the step the cursor is on, ok is false before the first call to Next
func (C *Cursor) Current() (step Step, ok bool) {
	if C.position < 0 || C.position >= len(C.trace.Steps) {
		return
	}
	step, ok = C.trace.Steps[C.position], true
	return
}

// Position - Returns the zero based position, -1 before the first step
func (C *Cursor) Position() int {
	return C.position
}

// Reset - Moves the cursor back before the first step
func (C *Cursor) Reset() {
	C.position = -1
}
