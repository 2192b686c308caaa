package tet

import "errors"

var (
	// ErrEmptyCorpus is returned when a distribution is requested over zero
	// symbols: a frequency table with nothing recorded, or an empty
	// probability set.
	ErrEmptyCorpus = errors.New("tet: empty corpus")

	// ErrInvalidDistribution is returned when explicit probabilities do not
	// form a distribution: a non-positive or non-finite value, or a sum
	// that strays from one beyond tolerance.
	ErrInvalidDistribution = errors.New("tet: invalid distribution")

	// ErrInvalidDuration is returned when a throughput is requested over a
	// zero or negative elapsed time.
	ErrInvalidDuration = errors.New("tet: invalid duration")
)
