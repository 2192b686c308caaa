// Package tet measures text entry throughput: the rate, in bits per second,
// at which a transcription task transmits information
// (https://dl.acm.org/doi/10.1145/3290605.3300866).
//
// Unlike words per minute, throughput accounts for both speed and accuracy
// in one number. The presented and transcribed strings are aligned by
// minimum string distance (https://dl.acm.org/doi/10.1145/572020.572056),
// the alignment's error rates parameterize a confusion model over a symbol
// distribution, and the mutual information of that model times the entry
// rate gives the throughput. A perfect transcription transmits the full
// entropy of the alphabet per symbol; every insertion, omission or
// substitution lowers the transmitted share.
//
// Basic use with the built-in English model:
//
//	calc := tet.NewCalculator(tet.EnglishLettersSpace())
//	bps, err := calc.Calc("my watch fell in the water", "my wacch fell in water", 9*time.Second)
//
// Custom alphabets are derived from corpus text:
//
//	freq := tet.NewFrequencies()
//	freq.RecordString(corpus)
//	dist, err := tet.NewDistribution(freq)
//	calc := tet.NewCalculator(dist)
//
// The package also measures the cost of the errors alone: ErrorCost charges
// each edit the self-information of the symbol it touches, and
// ErrorThroughput spreads that cost over the trial duration. This rate is
// zero exactly when the transcription is perfect, which makes it the better
// signal for error-focused comparisons, while Calc is the better signal for
// overall performance.
package tet
