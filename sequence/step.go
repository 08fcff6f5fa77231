package sequence

import "fmt"

// Step is one atomic move of a reading head through the lattice.
type Step uint8

const (
	// StepAB consumes a[posA] == b[posB].
	StepAB Step = iota
	// StepAC consumes a[posA] == c[posC].
	StepAC
	// StepCD copies c[posC] into d.
	StepCD
	// StepBD copies b[posB] into d.
	StepBD
)

// TrialOrder is the fixed order in which the search tries steps.
var TrialOrder = [...]Step{StepAB, StepAC, StepCD, StepBD}

// String returns "AB", "AC", "CD" or "BD".
func (s Step) String() string {
	switch s {
	case StepAB:
		return "AB"
	case StepAC:
		return "AC"
	case StepCD:
		return "CD"
	case StepBD:
		return "BD"
	default:
		return fmt.Sprintf("Step(%d)", uint8(s))
	}
}

// insertion reports whether s copies an item into d without consuming a.
func (s Step) insertion() bool { return s == StepCD || s == StepBD }

// rival returns the alignment step whose availability halts a
// fast-forward run of s. The second result is false for AB and AC.
func (s Step) rival() (Step, bool) {
	switch s {
	case StepCD:
		return StepAC, true
	case StepBD:
		return StepAB, true
	default:
		return 0, false
	}
}

// factor returns the source list and orientation of the factor s appends.
func (s Step) factor() (List, bool) {
	switch s {
	case StepAB:
		return ListB, false
	case StepAC:
		return ListC, true
	case StepCD:
		return ListC, false
	default:
		return ListB, true
	}
}
