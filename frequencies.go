package tet

// Frequencies accumulates symbol occurrence counts from corpus text. It is
// the mutable staging area for building a Distribution: record text with
// Record and RecordString, optionally prune with Retain, then derive the
// probability model with NewDistribution.
//
// The zero Frequencies is not usable; construct with NewFrequencies.
// Frequencies is not safe for concurrent mutation.
type Frequencies struct {
	counts map[rune]uint64
	total  uint64
}

// NewFrequencies returns an empty frequency table.
func NewFrequencies() *Frequencies {
	return &Frequencies{counts: make(map[rune]uint64)}
}

// Record adds one occurrence of the symbol. Any symbol is accepted,
// whitespace and punctuation included; filtering is the caller's business,
// before recording or later via Retain.
func (f *Frequencies) Record(r rune) {
	f.counts[r]++
	f.total++
}

// RecordString adds one occurrence per symbol of s.
func (f *Frequencies) RecordString(s string) {
	for _, r := range s {
		f.counts[r]++
		f.total++
	}
}

// Merge adds every count of other into f. The receiver absorbs the counts;
// other is left unchanged.
func (f *Frequencies) Merge(other *Frequencies) {
	if other == nil {
		return
	}
	for r, n := range other.counts {
		f.counts[r] += n
		f.total += n
	}
}

// Retain drops every symbol for which keep returns false, adjusting the
// total. Useful for stripping punctuation or casefolding leftovers from a
// raw corpus before deriving a distribution.
func (f *Frequencies) Retain(keep func(rune) bool) {
	for r, n := range f.counts {
		if !keep(r) {
			delete(f.counts, r)
			f.total -= n
		}
	}
}

// Count returns the recorded occurrences of the symbol.
func (f *Frequencies) Count(r rune) uint64 {
	return f.counts[r]
}

// N returns the total number of recorded occurrences.
func (f *Frequencies) N() uint64 {
	return f.total
}

// Len returns the number of distinct symbols recorded.
func (f *Frequencies) Len() int {
	return len(f.counts)
}
