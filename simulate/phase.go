// SPDX-License-Identifier: MIT

package simulate

import (
	"errors"
	"fmt"
)

// ErrPhase indicates an illegal phase transition.
var ErrPhase = errors.New("simulate: illegal phase transition")

// Phase is the lifecycle state of one run.
type Phase int

const (
	Uninitialized Phase = iota
	Equilibrating
	Running
	Done
	Failed
)

var phaseNames = [...]string{"uninitialized", "equilibrating", "running", "done", "failed"}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return fmt.Sprintf("phase(%d)", int(p))
	}

	return phaseNames[p]
}

// transitions lists the legal successors of each phase.
var transitions = map[Phase][]Phase{
	Uninitialized: {Equilibrating, Running, Failed},
	Equilibrating: {Running, Failed},
	Running:       {Done, Failed},
}

// CanTransition reports whether from → to is legal.
func CanTransition(from, to Phase) bool {
	for _, p := range transitions[from] {
		if p == to {
			return true
		}
	}

	return false
}

// machine tracks the phase of one run.
type machine struct {
	phase Phase
}

func (m *machine) to(next Phase) error {
	if !CanTransition(m.phase, next) {
		return fmt.Errorf("%s → %s: %w", m.phase, next, ErrPhase)
	}
	m.phase = next

	return nil
}
