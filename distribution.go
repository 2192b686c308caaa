package tet

import (
	"fmt"
	"math"
	"sort"
)

// probTolerance bounds how far the sum of explicit probabilities may stray
// from one before the set is rejected.
const probTolerance = 1e-9

// Distribution is an immutable probability model over a symbol alphabet,
// derived from corpus counts or supplied directly. It answers per-symbol
// probability and information content and carries the alphabet entropy.
//
// A Distribution is safe for concurrent use once built.
type Distribution struct {
	probs   map[rune]float64
	symbols []rune // sorted ascending, fixes summation and iteration order

	// fallback is the information content charged for symbols the model has
	// never seen: the self-information of the least likely known symbol, a
	// floor on how surprising any known symbol can be.
	fallback float64

	entropy float64
}

// NewDistribution derives a probability model from recorded counts. Every
// recorded symbol receives probability count/total. Returns ErrEmptyCorpus
// when no symbols have been recorded.
func NewDistribution(f *Frequencies) (*Distribution, error) {
	if f == nil || f.total == 0 {
		return nil, ErrEmptyCorpus
	}
	probs := make(map[rune]float64, len(f.counts))
	n := float64(f.total)
	for r, c := range f.counts {
		probs[r] = float64(c) / n
	}
	return newDistribution(probs), nil
}

// NewDistributionFromProbabilities builds a model from explicit
// probabilities, for callers with a published letter-frequency table rather
// than a corpus. An empty set is ErrEmptyCorpus. Every probability must be
// positive and finite and the set must sum to one within tolerance;
// otherwise ErrInvalidDistribution is returned. The map is copied.
func NewDistributionFromProbabilities(probs map[rune]float64) (*Distribution, error) {
	if len(probs) == 0 {
		return nil, ErrEmptyCorpus
	}
	sum := 0.0
	copied := make(map[rune]float64, len(probs))
	for r, p := range probs {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return nil, fmt.Errorf("%w: probability of %q is not finite", ErrInvalidDistribution, r)
		}
		if p <= 0 {
			return nil, fmt.Errorf("%w: probability of %q is %v, want > 0", ErrInvalidDistribution, r, p)
		}
		copied[r] = p
		sum += p
	}
	if math.Abs(sum-1) > probTolerance {
		return nil, fmt.Errorf("%w: probabilities sum to %v, want 1", ErrInvalidDistribution, sum)
	}
	return newDistribution(copied), nil
}

// newDistribution finalizes a validated probability map: fixes the symbol
// order, picks the fallback and computes the alphabet entropy.
func newDistribution(probs map[rune]float64) *Distribution {
	symbols := make([]rune, 0, len(probs))
	for r := range probs {
		symbols = append(symbols, r)
	}
	sort.Slice(symbols, func(i, j int) bool { return symbols[i] < symbols[j] })

	minP := math.Inf(1)
	entropy := 0.0
	for _, r := range symbols {
		p := probs[r]
		if p < minP {
			minP = p
		}
		entropy -= p * math.Log2(p)
	}

	return &Distribution{
		probs:    probs,
		symbols:  symbols,
		fallback: -math.Log2(minP),
		entropy:  entropy,
	}
}

// Probability returns the modeled probability of the symbol and whether the
// symbol is part of the alphabet.
func (d *Distribution) Probability(r rune) (float64, bool) {
	p, ok := d.probs[r]
	return p, ok
}

// Information returns the self-information of the symbol in bits,
// -log2(p(r)). Symbols outside the alphabet are charged the information of
// the least likely known symbol, so rare typos in transcribed text cost as
// much as the rarest symbol the model knows rather than derailing the
// calculation with an infinity.
func (d *Distribution) Information(r rune) float64 {
	p, ok := d.probs[r]
	if !ok {
		return d.fallback
	}
	return -math.Log2(p)
}

// Entropy returns the Shannon entropy of the alphabet in bits per symbol.
//
// Formula: H(X) = -sum_i p(i) * log2(p(i))
func (d *Distribution) Entropy() float64 {
	return d.entropy
}

// Symbols returns the alphabet in ascending symbol order. The slice is a
// copy.
func (d *Distribution) Symbols() []rune {
	out := make([]rune, len(d.symbols))
	copy(out, d.symbols)
	return out
}

// Len returns the alphabet size.
func (d *Distribution) Len() int {
	return len(d.symbols)
}
