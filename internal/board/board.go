package board

import (
	"errors"
	"fmt"
	"strings"

	"github.com/painterjd/driveyanutssolver/internal/piece"
)

// Position constants
const (
	CenterPos = 0
	NumOuter  = piece.NumSides
	NumSlots  = piece.NumPieces
)

var ErrUnalignable = errors.New("outer piece cannot face the center")

// Board holds one candidate assignment of pieces to the seven positions,
// each slot storing the piece in its current rotation. A Board is built
// fresh for every candidate, mutated through the align/rotate loop, and
// discarded afterward; it is never shared between goroutines.
type Board struct {
	slots [NumSlots]piece.Piece
}

// New creates a Board from an arrangement, position 0 being the center.
func New(arrangement [NumSlots]piece.Piece) *Board {
	return &Board{slots: arrangement}
}

// Clone creates an independent copy of the Board.
func (b *Board) Clone() *Board {
	if b == nil {
		return nil
	}
	clone := *b
	return &clone
}

// Piece returns the piece at the given position in its current rotation.
func (b *Board) Piece(pos int) piece.Piece {
	return b.slots[pos]
}

// Align rotates every outer piece until its inward side shows the marking
// on the center side facing it. Each piece carries each marking once, so
// the rotation is unique; on a validated set Align cannot fail.
func (b *Board) Align() error {
	center := b.slots[CenterPos]

	for i := 1; i < NumSlots; i++ {
		want := center[centerSide(i)]
		aligned, ok := b.slots[i].AlignTo(want)
		if !ok {
			return fmt.Errorf("%w: position %d has no marking %d", ErrUnalignable, i, want)
		}
		b.slots[i] = aligned
	}

	return nil
}

// RotateCenter turns the center piece one step. Combined with a re-Align
// this advances the whole outer ring one position relative to the center,
// which is how the solver walks through the six ring rotations.
func (b *Board) RotateCenter() {
	b.slots[CenterPos] = b.slots[CenterPos].Rotate(1)
}

// Check reports whether every pair of neighboring outer pieces matches:
// the right flat of each outer position must equal the left flat of the
// next position around the ring. The center relationship is not re-checked
// here — Align establishes it by construction.
func (b *Board) Check() bool {
	for i := 1; i < NumSlots; i++ {
		if b.slots[i].Right() != b.slots[nextOuter(i)].Left() {
			return false
		}
	}
	return true
}

// String returns the board as one line: the current marking sequence of
// positions 0 through 6, concatenated.
func (b *Board) String() string {
	var sb strings.Builder
	for _, p := range b.slots {
		sb.WriteString(p.String())
	}
	return sb.String()
}

// Format returns a human-readable board representation: the position
// diagram with each slot's current marking sequence.
func (b *Board) Format() string {
	var sb strings.Builder
	sb.WriteString("      4\n   5     3\n      0\n   6     2\n      1\n\n")

	for pos, p := range b.slots {
		if pos == CenterPos {
			fmt.Fprintf(&sb, "%d (center): %s\n", pos, p)
		} else {
			fmt.Fprintf(&sb, "%d         : %s\n", pos, p)
		}
	}

	return sb.String()
}
