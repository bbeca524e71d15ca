package board

// Ring geometry. Positions are indexed as in the printed diagram below:
// 0 is the center, 1-6 run counter-clockwise around it starting at the
// bottom. The first side of the center faces down, toward position 1; the
// first side of each outer piece faces inward.
//
//	   4
//	5     3
//	   0
//	6     2
//	   1
//
// The tables are fixed for every puzzle instance — unlike a sudoku region
// map there is no variable geometry here.

// centerSide returns which side of the center piece faces outer position i.
// Position 1 reads the center's side 0 and the mapping continues
// counter-clockwise.
func centerSide(i int) int {
	return i - 1
}

// nextOuter returns the outer position whose left flat touches i's right
// flat. Position 6 wraps around to position 1.
func nextOuter(i int) int {
	if i == NumSlots-1 {
		return 1
	}
	return i + 1
}
