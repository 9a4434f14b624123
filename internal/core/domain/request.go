package domain

// HashRequest is everything one hash subcommand needs, assembled once per invocation.
type HashRequest struct {
	Algorithm Algorithm
	// Format applies to the plain digests only.
	Format OutputFormat
	// Rounds applies to bcrypt only.
	Rounds int
	Input  InputSpec
}

// RandomRequest describes one invocation of the random number command.
type RandomRequest struct {
	// Min and Max are the optional range bounds as given on the command line.
	// With only Min set it is treated as the maximum.
	Min *float64
	Max *float64
	// Integer restricts the output to whole numbers.
	Integer bool
	// Repeat is the number of values to generate.
	Repeat int
	Base   NumberBase
}

// Bounds resolves the requested range into an ordered [low, high] pair.
// Without bounds the range is [0, 1]; a single bound is the maximum.
func (r RandomRequest) Bounds() (low, high float64) {
	low, high = 0, 1
	switch {
	case r.Min != nil && r.Max != nil:
		low, high = *r.Min, *r.Max
	case r.Min != nil:
		high = *r.Min
	}
	if low > high {
		low, high = high, low
	}
	return low, high
}
