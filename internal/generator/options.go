package generator

// Options configures arrangement enumeration behavior.
type Options struct {
	// Limit caps how many arrangements Next will produce. 0 means the full
	// enumeration of 840.
	Limit int
}

// DefaultOptions returns standard enumeration options.
func DefaultOptions() *Options {
	return &Options{
		Limit: 0,
	}
}
