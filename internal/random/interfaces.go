package random

//go:generate mockgen -source=interfaces.go -destination=../mock/random_source_mock.go -package=mock

// Source supplies uniformly distributed random integers from a
// cryptographically secure generator.
//
// Every call consumes exactly one fresh random value. The engine relies on
// this when reasoning about how many draws a given configuration performs,
// so implementations must not batch, cache, or skip draws.
type Source interface {
	// NextInt returns a uniformly distributed integer in the half-open
	// range [min, max). It fails with [ErrInvalidRange] when min >= max;
	// it never silently returns an out-of-range value.
	NextInt(min, max int) (int, error)
}
