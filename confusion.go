package tet

import "math"

// mutualInformation computes how many bits each presented symbol survives
// transcription, under a confusion model built from the error rates of one
// optimal alignment.
//
// The model assumes errors are independent of the symbol: any presented
// symbol i is transcribed correctly with probability Correct, omitted with
// probability Omission, and substituted uniformly across the other alphabet
// symbols with total probability Substitution. The joint probability of
// presenting i and transcribing j is then p(i) scaled by the chance the
// position was not an insertion, times the per-class rate. Conditioning the
// joint on the transcribed symbol gives the equivocation H_Y(X), the bits of
// the presented symbol still unknown after seeing the transcription.
//
// Formula: I(X,Y) = H(X) - H_Y(X)
// Formula: H_Y(X) = -sum_j sum_i p(i,j) * log2(p(i,j) / sum_i' p(i',j))
//
// The transcribed side j ranges over the alphabet plus the omission outcome.
// Conventionally 0*log2(0) = 0, so impossible cells contribute nothing.
// Rounding can push the difference a hair below zero on degenerate inputs;
// the result is floored at zero since a transmission rate cannot be
// negative.
func (c *Calculator) mutualInformation(er ErrorRates) float64 {
	symbols := c.dist.symbols

	// Probability mass available to non-insertion outcomes. When every
	// position is an insertion no presented symbol was transmitted at all.
	scale := 1 - er.Insertion
	if scale == 0 {
		return 0
	}

	// Substitutions spread uniformly over the other symbols. A one-symbol
	// alphabet has nowhere to substitute to.
	sub := 0.0
	if len(symbols) > 1 {
		sub = er.Substitution / float64(len(symbols)-1)
	}

	joint := func(i, j rune) float64 {
		rate := sub
		if i == j {
			rate = er.Correct
		}
		return c.dist.probs[i] * scale * rate
	}

	hyx := 0.0

	// One column per transcribable symbol.
	for _, j := range symbols {
		denom := 0.0
		for _, i := range symbols {
			denom += joint(i, j)
		}
		if denom == 0 {
			continue
		}
		for _, i := range symbols {
			pij := joint(i, j)
			if pij == 0 {
				continue
			}
			hyx -= pij * math.Log2(pij/denom)
		}
	}

	// The omission column: presented symbols that produced no output.
	denom := 0.0
	for _, i := range symbols {
		denom += c.dist.probs[i] * scale * er.Omission
	}
	if denom > 0 {
		for _, i := range symbols {
			pij := c.dist.probs[i] * scale * er.Omission
			if pij == 0 {
				continue
			}
			hyx -= pij * math.Log2(pij/denom)
		}
	}

	ixy := c.dist.entropy - hyx
	if ixy < 0 {
		return 0
	}
	return ixy
}
