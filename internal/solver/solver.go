package solver

import (
	"context"
	"errors"
	"fmt"

	"github.com/painterjd/driveyanutssolver/internal/board"
	"github.com/painterjd/driveyanutssolver/internal/generator"
	"github.com/painterjd/driveyanutssolver/internal/piece"
)

var (
	ErrInvalidPieceSet = errors.New("piece set fails validation")
	ErrTimeout         = errors.New("solver timeout exceeded")
)

// Solution is one passing configuration. Candidate is the arrangement's
// index in generation order, Rotation the ring-rotation pass (0-5) it
// passed on, and Board a snapshot of the aligned board at that moment.
type Solution struct {
	Candidate int
	Rotation  int
	Board     *board.Board
}

// String returns the solution line: the rotated marking sequences of
// positions 0 through 6, concatenated.
func (s Solution) String() string {
	return s.Board.String()
}

// Solver runs the exhaustive search over all arrangements and ring rotations.
type Solver struct {
	set     piece.Set
	options *Options
	stats   Stats
}

// New creates a solver for the given piece set.
func New(set piece.Set, options *Options) *Solver {
	if options == nil {
		options = DefaultOptions()
	}
	return &Solver{
		set:     set,
		options: options,
	}
}

// Solve enumerates the arrangements and, for each, walks the six ring
// rotations, aligning and checking. Every passing pass is collected; the
// loop never stops at the first hit, since one candidate can pass at more
// than one rotation and all of them are reported.
//
// A failing candidate is not an error — it is the expected outcome for
// almost the entire search space and is silently skipped.
func (s *Solver) Solve() ([]Solution, error) {
	if err := s.set.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPieceSet, err)
	}
	s.stats = Stats{}

	ctx, cancel := s.makeContext()
	defer cancel()

	if s.options.Workers > 1 {
		return s.searchParallel(ctx)
	}
	return s.search(ctx)
}

// makeContext derives the search context from the configured timeout.
func (s *Solver) makeContext() (context.Context, context.CancelFunc) {
	if s.options.Timeout > 0 {
		return context.WithTimeout(context.Background(), s.options.Timeout)
	}
	return context.WithCancel(context.Background())
}

// search is the plain sequential loop; solutions come out in
// generation order.
func (s *Solver) search(ctx context.Context) ([]Solution, error) {
	gen := generator.New(s.set, &generator.Options{Limit: s.options.Limit})

	var solutions []Solution
	for candidate := 0; ; candidate++ {
		arrangement, ok := gen.Next()
		if !ok {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ErrTimeout
		default:
		}

		found, err := checkCandidate(candidate, arrangement)
		if err != nil {
			return nil, err
		}
		solutions = append(solutions, found...)
		s.stats.Candidates++
		s.stats.Passes += piece.NumSides
	}

	s.stats.Solutions = len(solutions)
	return solutions, nil
}

// checkCandidate walks one candidate through its six passes:
// align, check, rotate the center, repeat. Rotating the center and
// re-aligning advances the whole outer ring one step relative to the
// center, so six passes cover every ring rotation.
func checkCandidate(candidate int, arrangement [piece.NumPieces]piece.Piece) ([]Solution, error) {
	b := board.New(arrangement)

	var found []Solution
	for rotation := 0; rotation < piece.NumSides; rotation++ {
		if err := b.Align(); err != nil {
			// Unreachable on a validated set; surfaced rather than swallowed.
			return nil, err
		}
		if b.Check() {
			found = append(found, Solution{
				Candidate: candidate,
				Rotation:  rotation,
				Board:     b.Clone(),
			})
		}
		b.RotateCenter()
	}

	return found, nil
}
