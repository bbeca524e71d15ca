package piece

import (
	"errors"
	"fmt"
)

var (
	ErrBadPieceCount    = errors.New("set must contain exactly 7 pieces")
	ErrBadMarking       = errors.New("marking must be between 1-6")
	ErrDuplicateMarking = errors.New("marking appears more than once on a piece")
)

// Validate reports whether the set is playable: exactly seven pieces, each
// carrying the markings 1-6 exactly once. The once-per-piece rule is what
// makes alignment against the center both unique and always possible.
func (s Set) Validate() error {
	if len(s) != NumPieces {
		return fmt.Errorf("%w: got %d", ErrBadPieceCount, len(s))
	}

	for i, p := range s {
		var seen [NumSides + 1]bool
		for _, m := range p {
			if m < 1 || m > NumSides {
				return fmt.Errorf("%w: piece %d has marking %d", ErrBadMarking, i, m)
			}
			if seen[m] {
				return fmt.Errorf("%w: piece %d repeats %d", ErrDuplicateMarking, i, m)
			}
			seen[m] = true
		}
	}

	return nil
}
