package tet

import (
	"log/slog"
	"time"

	"tet/internal/alignment"
)

// Calculator computes text entry throughput against a fixed symbol
// distribution. Construct once per distribution and reuse; a Calculator is
// safe for concurrent use.
type Calculator struct {
	dist   *Distribution
	logger *slog.Logger
}

// Option adjusts a Calculator at construction time.
type Option func(*Calculator)

// WithLogger routes the calculator's debug output to l. By default the
// calculator is silent.
func WithLogger(l *slog.Logger) Option {
	return func(c *Calculator) {
		if l != nil {
			c.logger = l.With("component", "calculator")
		}
	}
}

// NewCalculator returns a calculator over the given distribution.
func NewCalculator(dist *Distribution, opts ...Option) *Calculator {
	c := &Calculator{
		dist:   dist,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ErrorRates holds the classified error probabilities of one presented and
// transcribed pair, estimated from an optimal alignment. The four rates are
// the parameters of the confusion model behind Calc.
type ErrorRates struct {
	// Insertion is the probability that a transcribed symbol corresponds to
	// no presented symbol, estimated over all alignment positions.
	Insertion float64

	// Omission is the probability that a presented symbol produces no
	// transcribed symbol.
	Omission float64

	// Substitution is the probability that a presented symbol produces a
	// different symbol.
	Substitution float64

	// Correct is the probability that a presented symbol produces itself.
	Correct float64
}

// Calc computes the text entry throughput in bits per second: the mutual
// information between presented and transcribed symbols, times the rate at
// which symbols were transcribed
// (https://dl.acm.org/doi/10.1145/3290605.3300866).
//
// The mutual information I(X,Y) = H(X) - H_Y(X) comes from a confusion model
// parameterized by the error rates of one optimal alignment, so error-free
// transcription transmits the full entropy of the alphabet and noisy
// transcription proportionally less. Returns ErrInvalidDuration when elapsed
// is not positive.
func (c *Calculator) Calc(presented, transcribed string, elapsed time.Duration) (float64, error) {
	if elapsed <= 0 {
		return 0, ErrInvalidDuration
	}

	p := []rune(presented)
	t := []rune(transcribed)

	al := alignment.Align(p, t)
	rates := errorRatesOf(al)
	ixy := c.mutualInformation(rates)
	cps := float64(len(t)) / elapsed.Seconds()
	throughput := ixy * cps

	c.logger.Debug("throughput computed",
		"presented_len", len(p),
		"transcribed_len", len(t),
		"mutual_information_bits", ixy,
		"chars_per_second", cps,
		"bits_per_second", throughput,
	)

	return throughput, nil
}

// ErrorCost computes the information-weighted edit distance in bits between
// the presented and transcribed text: the cheapest way to explain the
// transcription as insertions, omissions and substitutions, where touching a
// symbol costs its self-information under the distribution. Identical
// strings cost zero; errors on common symbols cost less than errors on rare
// ones.
func (c *Calculator) ErrorCost(presented, transcribed string) float64 {
	return alignment.WeightedCost([]rune(presented), []rune(transcribed), c.dist.Information)
}

// ErrorThroughput computes the information-weighted error rate in bits per
// second: ErrorCost over the elapsed time. Zero for perfect transcription,
// growing with both the number and the unlikeliness of the errors. Returns
// ErrInvalidDuration when elapsed is not positive.
func (c *Calculator) ErrorThroughput(presented, transcribed string, elapsed time.Duration) (float64, error) {
	if elapsed <= 0 {
		return 0, ErrInvalidDuration
	}
	return c.ErrorCost(presented, transcribed) / elapsed.Seconds(), nil
}

// ErrorRates classifies the differences between presented and transcribed
// text by aligning them optimally and tallying the alignment.
func (c *Calculator) ErrorRates(presented, transcribed string) ErrorRates {
	return errorRatesOf(alignment.Align([]rune(presented), []rune(transcribed)))
}

// errorRatesOf estimates the confusion-model parameters from one alignment.
// Insertions are counted over every alignment position. The remaining three
// classes are counted over positions holding a presented symbol, then scaled
// by the probability that no insertion happened, so the four rates describe
// one generative story: each position either inserts, or consumes a
// presented symbol correctly, wrongly, or not at all.
func errorRatesOf(al alignment.Alignment) ErrorRates {
	var er ErrorRates

	n := al.Len()
	if n == 0 {
		return er
	}

	counts := al.Count()
	er.Insertion = float64(counts.Insertions) / float64(n)

	presented := float64(n - counts.Insertions)
	if presented == 0 {
		return er
	}

	scale := 1 - er.Insertion
	er.Omission = float64(counts.Omissions) / presented * scale
	er.Substitution = float64(counts.Substitutions) / presented * scale
	er.Correct = float64(counts.Correct) / presented * scale
	return er
}
