package solver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/painterjd/driveyanutssolver/internal/generator"
	"github.com/painterjd/driveyanutssolver/internal/piece"
	"github.com/painterjd/driveyanutssolver/internal/solver"
)

// knownSolution is the only line the built-in set produces, confirmed
// against the physical puzzle.
const knownSolution = "[1 3 5 4 2 6][1 5 3 2 6 4][3 4 5 6 1 2][5 2 4 6 1 3][4 3 2 1 6 5][2 5 6 3 4 1][6 1 4 2 3 5]"

// sameMarkings builds the degenerate set of seven identical pieces. Every
// piece passes validation, but no pair of neighbors can ever match: around
// the ring each aligned piece's right flat is one step behind its inward
// marking while its neighbor's left flat is one step ahead.
func sameMarkings() piece.Set {
	set := make(piece.Set, piece.NumPieces)
	for i := range set {
		set[i] = piece.Piece{1, 2, 3, 4, 5, 6}
	}
	return set
}

// summary reduces solutions to comparable values, dropping board pointers.
func summary(solutions []solver.Solution) []string {
	out := make([]string, 0, len(solutions))
	for _, sol := range solutions {
		out = append(out, sol.String())
	}
	return out
}

func TestSolveStandardSet(t *testing.T) {
	s := solver.New(piece.Standard(), nil)
	solutions, err := s.Solve()
	require.NoError(t, err)

	require.Len(t, solutions, 1)
	assert.Equal(t, knownSolution, solutions[0].String())

	stats := s.Stats()
	assert.Equal(t, generator.NumArrangements, stats.Candidates)
	assert.Equal(t, generator.NumArrangements*piece.NumSides, stats.Passes)
	assert.Equal(t, 1, stats.Solutions)
}

func TestSolveIsDeterministic(t *testing.T) {
	first, err := solver.New(piece.Standard(), nil).Solve()
	require.NoError(t, err)

	second, err := solver.New(piece.Standard(), nil).Solve()
	require.NoError(t, err)

	require.Equal(t, summary(first), summary(second))
	for i := range first {
		assert.Equal(t, first[i].Candidate, second[i].Candidate)
		assert.Equal(t, first[i].Rotation, second[i].Rotation)
	}
}

func TestParallelMatchesSequential(t *testing.T) {
	sequential, err := solver.New(piece.Standard(), nil).Solve()
	require.NoError(t, err)

	for _, workers := range []int{2, 4, 8} {
		s := solver.New(piece.Standard(), &solver.Options{Workers: workers})
		parallel, err := s.Solve()
		require.NoError(t, err)

		assert.Equal(t, summary(sequential), summary(parallel), "workers=%d", workers)
		assert.Equal(t, generator.NumArrangements, s.Stats().Candidates)
	}
}

func TestSolveUnsolvableSet(t *testing.T) {
	solutions, err := solver.New(sameMarkings(), nil).Solve()
	require.NoError(t, err)
	assert.Empty(t, solutions)
}

func TestSolveInvalidSet(t *testing.T) {
	set := piece.Standard()
	set[3] = piece.Piece{1, 1, 2, 3, 4, 5}

	_, err := solver.New(set, nil).Solve()
	assert.ErrorIs(t, err, solver.ErrInvalidPieceSet)
}

func TestSolveLimit(t *testing.T) {
	s := solver.New(piece.Standard(), &solver.Options{Limit: 10})
	_, err := s.Solve()
	require.NoError(t, err)
	assert.Equal(t, 10, s.Stats().Candidates)
}

func TestSolutionReportsRotatedViews(t *testing.T) {
	solutions, err := solver.New(piece.Standard(), nil).Solve()
	require.NoError(t, err)
	require.Len(t, solutions, 1)

	sol := solutions[0]
	b := sol.Board

	// The snapshot must be aligned and passing, exactly as checked.
	assert.True(t, b.Check())
	center := b.Piece(0)
	for i := 1; i < piece.NumPieces; i++ {
		assert.Equal(t, center[i-1], b.Piece(i).Inward())
	}
}
