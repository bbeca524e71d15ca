package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/painterjd/driveyanutssolver/internal/board"
	"github.com/painterjd/driveyanutssolver/internal/piece"
)

// solvedViews is the one solved configuration of the built-in set, every
// piece already rotated into place (center first, outer ring 1-6).
var solvedViews = [board.NumSlots]piece.Piece{
	{1, 3, 5, 4, 2, 6},
	{1, 5, 3, 2, 6, 4},
	{3, 4, 5, 6, 1, 2},
	{5, 2, 4, 6, 1, 3},
	{4, 3, 2, 1, 6, 5},
	{2, 5, 6, 3, 4, 1},
	{6, 1, 4, 2, 3, 5},
}

func standardArrangement() [board.NumSlots]piece.Piece {
	var arrangement [board.NumSlots]piece.Piece
	copy(arrangement[:], piece.Standard())
	return arrangement
}

func TestAlignEstablishesInwardFaces(t *testing.T) {
	b := board.New(standardArrangement())
	require.NoError(t, b.Align())

	center := b.Piece(board.CenterPos)
	for i := 1; i < board.NumSlots; i++ {
		assert.Equal(t, center[i-1], b.Piece(i).Inward(),
			"outer position %d must face the center's side %d", i, i-1)
	}
}

func TestAlignIsStableOnAlignedBoard(t *testing.T) {
	b := board.New(solvedViews)
	require.NoError(t, b.Align())

	for pos := 0; pos < board.NumSlots; pos++ {
		assert.Equal(t, solvedViews[pos], b.Piece(pos))
	}
}

func TestAlignFailsWithoutMatchingMarking(t *testing.T) {
	arrangement := standardArrangement()
	// Outer position 1 must show the center's side 0, a 1 — deny it one.
	arrangement[1] = piece.Piece{2, 2, 3, 4, 5, 6}

	b := board.New(arrangement)
	assert.ErrorIs(t, b.Align(), board.ErrUnalignable)
}

func TestRotateCenter(t *testing.T) {
	b := board.New(standardArrangement())
	before := b.Piece(board.CenterPos)

	b.RotateCenter()
	assert.Equal(t, before.Rotate(1), b.Piece(board.CenterPos))

	// Only the center moves.
	for i := 1; i < board.NumSlots; i++ {
		assert.Equal(t, standardArrangement()[i], b.Piece(i))
	}
}

func TestCheckAcceptsSolvedRing(t *testing.T) {
	b := board.New(solvedViews)
	assert.True(t, b.Check())
}

func TestCheckRejectsMismatch(t *testing.T) {
	views := solvedViews
	// Swap two outer pieces; their flats no longer line up.
	views[2], views[5] = views[5], views[2]

	b := board.New(views)
	assert.False(t, b.Check())
}

func TestCheckIsDeterministic(t *testing.T) {
	b := board.New(solvedViews)
	first := b.Check()
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, b.Check())
	}
}

func TestString(t *testing.T) {
	b := board.New(solvedViews)
	assert.Equal(t,
		"[1 3 5 4 2 6][1 5 3 2 6 4][3 4 5 6 1 2][5 2 4 6 1 3][4 3 2 1 6 5][2 5 6 3 4 1][6 1 4 2 3 5]",
		b.String())
}

func TestClone(t *testing.T) {
	b := board.New(solvedViews)
	clone := b.Clone()

	b.RotateCenter()
	assert.Equal(t, solvedViews[board.CenterPos], clone.Piece(board.CenterPos))
}

func TestFormatListsEveryPosition(t *testing.T) {
	out := board.New(solvedViews).Format()
	assert.Contains(t, out, "0 (center): [1 3 5 4 2 6]")
	assert.Contains(t, out, "6         : [6 1 4 2 3 5]")
}
