package models

// Outcome is the result of comparing one submitted guess against the target.
type Outcome string

const (
	// OutcomeLess indicates the guess was below the target.
	OutcomeLess Outcome = "less"
	// OutcomeGreater indicates the guess was above the target.
	OutcomeGreater Outcome = "greater"
	// OutcomeEqual indicates the guess matched the target.
	OutcomeEqual Outcome = "equal"
	// OutcomeInvalid indicates the input did not parse as a guess.
	OutcomeInvalid Outcome = "invalid"
)

// Valid returns true if the outcome is a known value.
func (o Outcome) Valid() bool {
	switch o {
	case OutcomeLess, OutcomeGreater, OutcomeEqual, OutcomeInvalid:
		return true
	default:
		return false
	}
}

// Feedback returns the line shown to the player for this outcome.
// Invalid input produces no feedback.
func (o Outcome) Feedback() string {
	switch o {
	case OutcomeLess:
		return "Too small!"
	case OutcomeGreater:
		return "Too big!"
	case OutcomeEqual:
		return "You win!"
	default:
		return ""
	}
}
