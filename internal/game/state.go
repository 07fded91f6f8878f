// Package game implements the number-guessing session: target ownership,
// guess parsing, comparison, and the two-state session machine.
package game

import "github.com/ShayCichocki/guess/pkg/models"

// State is a position in the session state machine.
type State string

const (
	// StateAwaitingInput is the initial and re-entrant state.
	StateAwaitingInput State = "awaiting_input"
	// StateWon is terminal; it is reached only via an equal guess.
	StateWon State = "won"
)

// transitions maps every (state, outcome) pair to the next state.
// Won has no entries: nothing leaves a terminal state.
var transitions = map[State]map[models.Outcome]State{
	StateAwaitingInput: {
		models.OutcomeInvalid: StateAwaitingInput,
		models.OutcomeLess:    StateAwaitingInput,
		models.OutcomeGreater: StateAwaitingInput,
		models.OutcomeEqual:   StateWon,
	},
	StateWon: {},
}

// Next returns the state reached from 'from' on outcome o.
// The boolean is false when no transition exists.
func Next(from State, o models.Outcome) (State, bool) {
	targets, ok := transitions[from]
	if !ok {
		return from, false
	}
	to, ok := targets[o]
	if !ok {
		return from, false
	}
	return to, true
}

// Terminal reports whether s accepts no further guesses.
func (s State) Terminal() bool {
	return len(transitions[s]) == 0
}
