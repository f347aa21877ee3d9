package oplog

import (
	"fmt"
	"strings"
)

// Kind - Classifies a step in a trace
type Kind int

// KindHash - The initial hash of the key was computed
const KindHash Kind = 0

// KindProbe - A slot or bucket was inspected
const KindProbe Kind = 1

// KindCollision - An inspected slot was occupied by another key
const KindCollision Kind = 2

// KindWarning - Something noteworthy that did not stop the operation, e.g. a custom hash fallback
const KindWarning Kind = 3

// KindOutcome - The final step of every trace
const KindOutcome Kind = 4

var kindNames = [...]string{"hash", "probe", "collision", "warning", "outcome"}

// String - Returns the name of the kind
func (K Kind) String() string {
	if K >= 0 && int(K) < len(kindNames) {
		return kindNames[K]
	}
	return fmt.Sprintf("kind(%d)", int(K))
}

// NoIndex - Index of steps that do not point at a slot
const NoIndex int64 = -1

// Step - One human-readable entry of a trace
//   - Kind classifies the step
//   - Iteration is the probe iteration the step belongs to, 0 for steps outside probing
//   - Index is the slot or bucket the step refers to, or NoIndex
//   - Message is the text shown to the user
type Step struct {
	Kind      Kind
	Iteration int64
	Index     int64
	Message   string
}

// Trace - The ordered steps of one operation, the last step is always of KindOutcome once Finish is called
type Trace struct {
	Operation string
	Key       int64
	Steps     []Step
}

// New - Returns a new empty trace for an operation on a key
func New(operation string, key int64) *Trace {
	return &Trace{Operation: operation, Key: key}
}

// Hashf - Appends a KindHash step
func (T *Trace) Hashf(index int64, format string, a ...any) {
	T.add(KindHash, 0, index, format, a...)
}

// Probef - Appends a KindProbe step
func (T *Trace) Probef(iteration, index int64, format string, a ...any) {
	T.add(KindProbe, iteration, index, format, a...)
}

// Collisionf - Appends a KindCollision step
func (T *Trace) Collisionf(iteration, index int64, format string, a ...any) {
	T.add(KindCollision, iteration, index, format, a...)
}

// Warnf - Appends a KindWarning step
func (T *Trace) Warnf(format string, a ...any) {
	T.add(KindWarning, 0, NoIndex, format, a...)
}

// Finishf - Appends the KindOutcome step that terminates the trace
func (T *Trace) Finishf(index int64, format string, a ...any) {
	T.add(KindOutcome, 0, index, format, a...)
}

// Outcome - Returns the final step, or an empty step if the trace was never finished
func (T *Trace) Outcome() (step Step) {
	if n := len(T.Steps); n > 0 && T.Steps[n-1].Kind == KindOutcome {
		step = T.Steps[n-1]
	}
	return
}

// Messages - Returns the messages of all steps in order
func (T *Trace) Messages() []string {
	messages := make([]string, len(T.Steps))
	for i, s := range T.Steps {
		messages[i] = s.Message
	}
	return messages
}

// Warnings - Returns the number of KindWarning steps
func (T *Trace) Warnings() (n int) {
	for _, s := range T.Steps {
		if s.Kind == KindWarning {
			n++
		}
	}
	return
}

// String - Renders the trace one step per line
func (T *Trace) String() string {
	var sb strings.Builder
	_, _ = fmt.Fprintf(&sb, "%s(%d)\n", T.Operation, T.Key)
	for i, s := range T.Steps {
		_, _ = fmt.Fprintf(&sb, "  %2d. [%s] %s\n", i+1, s.Kind, s.Message)
	}
	return sb.String()
}

func (T *Trace) add(kind Kind, iteration, index int64, format string, a ...any) {
	T.Steps = append(T.Steps, Step{
		Kind:      kind,
		Iteration: iteration,
		Index:     index,
		Message:   fmt.Sprintf(format, a...),
	})
}
