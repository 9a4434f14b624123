package ports

// RandomSource defines the interface for pseudo-random numbers.
//
//go:generate go run go.uber.org/mock/mockgen -source=random.go -destination=mocks/mock_random.go -package=mocks
type RandomSource interface {
	// Float64 returns a pseudo-random number in the half-open interval [0.0, 1.0).
	Float64() float64
}
