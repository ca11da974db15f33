package service

import (
	"github.com/MKhiriev/go-xkpasswd/internal/random"
)

// floorSource is a deterministic [random.Source] that always returns the
// lower bound of the requested range.
type floorSource struct {
	draws int
}

func (s *floorSource) NextInt(min, max int) (int, error) {
	if min >= max {
		return 0, random.ErrInvalidRange
	}

	s.draws++
	return min, nil
}

// scriptedSource replays a fixed sequence of values, folding each into the
// requested range so scripted tests stay valid for any bounds.
type scriptedSource struct {
	values []int
	idx    int
}

func (s *scriptedSource) NextInt(min, max int) (int, error) {
	if min >= max {
		return 0, random.ErrInvalidRange
	}

	value := 0
	if s.idx < len(s.values) {
		value = s.values[s.idx]
		s.idx++
	}

	return min + value%(max-min), nil
}
