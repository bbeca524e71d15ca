package generator

import (
	"github.com/painterjd/driveyanutssolver/internal/piece"
)

// NumArrangements is how many candidates a full enumeration yields:
// 7 choices of center × 5! orderings of the unpinned outer pieces.
const NumArrangements = 840

// Generator lazily enumerates every assignment of the seven pieces to the
// seven board positions that is distinct under the ring's rotational
// symmetry.
//
// Contract invariant (symmetry breaking): for each choice of center, the
// first remaining piece is pinned at outer position 1 and only the other
// five are permuted across positions 2-6. Rotating the finished ring maps
// any arrangement onto one with the pinned piece at position 1, so the
// 7 × 5! = 840 candidates cover all physically distinct arrangements.
// Enumerating all 6! outer orderings instead would be correct but 6× the
// work, finding only rotated duplicates of the same solutions.
//
// Enumeration is deterministic: the center advances through the set in
// order and the trailing pieces step through lexicographic permutations, so
// a Reset replays the identical sequence.
type Generator struct {
	set     piece.Set
	options *Options

	// center indexes the piece currently assigned to the middle slot;
	// pool holds the six others with pool[0] pinned at outer position 1,
	// and perm walks lexicographic permutations over pool[1:].
	center int
	pool   [piece.NumSides]piece.Piece
	perm   [5]int
	count  int
	done   bool
}

// New creates a Generator over the given set.
// The set must hold exactly seven pieces; anything else enumerates nothing.
func New(set piece.Set, options *Options) *Generator {
	if options == nil {
		options = DefaultOptions()
	}
	g := &Generator{set: set, options: options}
	g.Reset()
	return g
}

// Reset rewinds the generator to the first arrangement.
func (g *Generator) Reset() {
	g.center = 0
	g.perm = [5]int{0, 1, 2, 3, 4}
	g.count = 0
	g.done = len(g.set) != piece.NumPieces
	if !g.done {
		g.loadPool()
	}
}

// Count returns how many arrangements have been produced since the last Reset.
func (g *Generator) Count() int {
	return g.count
}

// Next produces the next arrangement, position 0 being the center.
// The second return value is false once the enumeration is exhausted.
func (g *Generator) Next() ([piece.NumPieces]piece.Piece, bool) {
	var out [piece.NumPieces]piece.Piece
	if g.done || (g.options.Limit > 0 && g.count >= g.options.Limit) {
		return out, false
	}

	out[0] = g.set[g.center]
	out[1] = g.pool[0]
	for i, idx := range g.perm {
		out[i+2] = g.pool[idx+1]
	}

	g.count++
	g.advance()
	return out, true
}

// loadPool copies the six non-center pieces, preserving set order.
func (g *Generator) loadPool() {
	k := 0
	for i, p := range g.set {
		if i == g.center {
			continue
		}
		g.pool[k] = p
		k++
	}
}

// advance steps to the next permutation, moving to the next center once the
// current center's permutations are exhausted.
func (g *Generator) advance() {
	if nextPermutation(&g.perm) {
		return
	}

	g.perm = [5]int{0, 1, 2, 3, 4}
	g.center++
	if g.center >= len(g.set) {
		g.done = true
		return
	}
	g.loadPool()
}

// nextPermutation advances p to its lexicographic successor in place.
// Returns false when p is already the final permutation.
func nextPermutation(p *[5]int) bool {
	i := len(p) - 2
	for i >= 0 && p[i] >= p[i+1] {
		i--
	}
	if i < 0 {
		return false
	}

	j := len(p) - 1
	for p[j] <= p[i] {
		j--
	}
	p[i], p[j] = p[j], p[i]

	for l, r := i+1, len(p)-1; l < r; l, r = l+1, r-1 {
		p[l], p[r] = p[r], p[l]
	}
	return true
}
