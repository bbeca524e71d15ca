package piece

import (
	"fmt"
	"strings"
)

// Geometry constants
const (
	NumSides  = 6
	NumPieces = 7
)

// Marking is one of the symbols printed on a piece's edges. The solver only
// ever compares markings for equality, so any small integer works; the
// standard puzzle uses 1-6.
type Marking int

// Piece is one hexagonal tile: six markings listed counter-clockwise.
// Side 0 is the face pointing at the center (or, for the center piece
// itself, the face pointing down in the printed diagram).
//
// Piece has value semantics: rotation returns a new Piece and never mutates
// the receiver, so pieces can be shared freely across concurrent searches.
type Piece [NumSides]Marking

// Rotate returns the piece after n cyclic right shifts: one shift moves the
// last marking to the front. n is taken modulo 6; negative counts rotate the
// opposite way.
func (p Piece) Rotate(n int) Piece {
	n = ((n % NumSides) + NumSides) % NumSides
	var out Piece
	for i, m := range p {
		out[(i+n)%NumSides] = m
	}
	return out
}

// AlignTo returns the rotation of p whose side 0 shows m.
// The second return value is false when p does not carry m at all; for any
// piece that passes Set validation this cannot happen.
func (p Piece) AlignTo(m Marking) (Piece, bool) {
	for i, got := range p {
		if got == m {
			return p.Rotate(NumSides - i), true
		}
	}
	return p, false
}

// Inward returns the marking on side 0, the face touching the center.
func (p Piece) Inward() Marking {
	return p[0]
}

// Left returns the marking on side 1, the flat shared with the previous
// piece around the ring.
func (p Piece) Left() Marking {
	return p[1]
}

// Right returns the marking on side 5, the flat shared with the next piece
// around the ring.
func (p Piece) Right() Marking {
	return p[NumSides-1]
}

// String returns the marking sequence as a bracketed list, e.g. "[1 5 3 2 6 4]".
func (p Piece) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, m := range p {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d", m)
	}
	sb.WriteByte(']')
	return sb.String()
}

// Set is a full complement of seven pieces, indexed in no particular order;
// the arrangement generator decides which piece sits where.
type Set []Piece

// standardSet is the piece data of the original 1970 Milton Bradley puzzle.
// Shared read-only; Standard returns copies.
var standardSet = Set{
	{1, 5, 3, 2, 6, 4},
	{1, 4, 2, 3, 5, 6},
	{1, 3, 5, 4, 2, 6},
	{1, 3, 5, 2, 4, 6},
	{1, 2, 3, 4, 5, 6},
	{1, 2, 5, 6, 3, 4},
	{1, 6, 5, 4, 3, 2},
}

// Standard returns the built-in seven-piece set.
// The returned slice is a fresh copy; callers may reorder it.
func Standard() Set {
	out := make(Set, len(standardSet))
	copy(out, standardSet)
	return out
}

// Parse creates a Piece from a 6-character digit string such as "153264".
func Parse(s string) (Piece, error) {
	var p Piece
	if len(s) != NumSides {
		return p, fmt.Errorf("piece must be exactly %d characters, got %d", NumSides, len(s))
	}
	for i := 0; i < NumSides; i++ {
		ch := s[i]
		if ch < '1' || ch > '6' {
			return p, fmt.Errorf("%w: invalid character '%c' at side %d", ErrBadMarking, ch, i)
		}
		p[i] = Marking(ch - '0')
	}
	return p, nil
}

// ParseSet creates a Set from seven comma-separated piece strings, e.g.
// "153264,142356,135426,135246,123456,125634,165432".
func ParseSet(s string) (Set, error) {
	parts := strings.Split(s, ",")
	set := make(Set, 0, len(parts))
	for i, part := range parts {
		p, err := Parse(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("piece %d: %w", i, err)
		}
		set = append(set, p)
	}
	if err := set.Validate(); err != nil {
		return nil, err
	}
	return set, nil
}
