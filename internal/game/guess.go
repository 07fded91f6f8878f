package game

import (
	"cmp"
	"strconv"
	"strings"

	"github.com/ShayCichocki/guess/pkg/models"
)

// Result describes how one line of input was evaluated.
type Result struct {
	// Raw is the input line without its line terminator.
	Raw string
	// Value is the parsed guess. Zero when Outcome is OutcomeInvalid.
	Value uint32
	// Outcome is the comparison result, or OutcomeInvalid if Raw did not parse.
	Outcome models.Outcome
	// Attempt is the 1-based count of valid guesses so far, including this one.
	Attempt int
}

// ParseGuess parses a trimmed line as an unsigned 32-bit integer.
// Empty input, a sign prefix, non-digits and values above MaxUint32 all fail.
func ParseGuess(line string) (uint32, bool) {
	s := strings.TrimSpace(line)
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(n), true
}

// Compare orders guess against target.
func Compare(guess, target uint32) models.Outcome {
	switch cmp.Compare(guess, target) {
	case -1:
		return models.OutcomeLess
	case 1:
		return models.OutcomeGreater
	default:
		return models.OutcomeEqual
	}
}
