package solver

// Stats summarizes a completed search.
type Stats struct {
	Candidates int // arrangements enumerated
	Passes     int // align/check passes, six per candidate
	Solutions  int // passes that satisfied all six adjacencies
}

// Stats returns counters from the most recent Solve call.
func (s *Solver) Stats() Stats {
	return s.stats
}
