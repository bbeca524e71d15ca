package solver

import "time"

// Options configures search behavior.
type Options struct {
	// Workers sets the number of goroutines checking candidates. Values
	// below 2 select the plain sequential loop; candidates share no
	// state, so any worker count produces the same solutions.
	Workers int

	// Timeout limits total search time. 0 means no limit — the full space
	// is only 840 × 6 checks.
	Timeout time.Duration

	// Limit caps how many arrangements are enumerated (0 = all).
	Limit int
}

// DefaultOptions returns standard solver options: the sequential,
// exhaustive, untimed search.
func DefaultOptions() *Options {
	return &Options{
		Workers: 1,
		Timeout: 0,
		Limit:   0,
	}
}
