package services

import "fmt"

// opPhase tags the lifecycle of one optimistic mutation:
// idle -> pending -> committed | rolled back. Transitions are explicit
// functions; a transition from the wrong phase is a programming error.
type opPhase int

const (
	opIdle opPhase = iota
	opPending
	opCommitted
	opRolledBack
)

func (p opPhase) String() string {
	switch p {
	case opIdle:
		return "idle"
	case opPending:
		return "pending"
	case opCommitted:
		return "committed"
	case opRolledBack:
		return "rolled back"
	default:
		return fmt.Sprintf("opPhase(%d)", int(p))
	}
}

// operation tracks a single mutation. Each call site creates its own
// tracker, so concurrent operations on the same collection never share a
// state machine.
type operation struct {
	name  string
	phase opPhase
}

func beginOp(name string) *operation {
	return &operation{name: name, phase: opPending}
}

func (o *operation) commit() {
	if o.phase != opPending {
		panic(fmt.Sprintf("%s: commit from %s state", o.name, o.phase))
	}
	o.phase = opCommitted
}

func (o *operation) rollback() {
	if o.phase != opPending {
		panic(fmt.Sprintf("%s: rollback from %s state", o.name, o.phase))
	}
	o.phase = opRolledBack
}
