package tet

import (
	"bytes"
	"log/slog"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Phrase pair used throughout: seven symbols omitted, two substituted, none
// inserted.
const (
	presentedPhrase   = "my watch fell in the waterprevailing wind from the east"
	transcribedPhrase = "my wacch fell in waterpreviling wind on the east"
)

// Test helpers

func corpusDistribution(t *testing.T, corpus string) *Distribution {
	t.Helper()
	f := NewFrequencies()
	f.RecordString(corpus)
	d, err := NewDistribution(f)
	require.NoError(t, err)
	return d
}

// =============================================================================
// Throughput Tests
// =============================================================================

func TestCalculator_Calc(t *testing.T) {
	tests := []struct {
		name        string
		dist        *Distribution // nil means EnglishLettersSpace
		presented   string
		transcribed string
		elapsed     time.Duration
		want        float64
		delta       float64
	}{
		{
			name:        "phrase with omissions and substitutions",
			presented:   presentedPhrase,
			transcribed: transcribedPhrase,
			elapsed:     12 * time.Second,
			want:        12.954965333409255,
			delta:       1e-9,
		},
		{
			name:        "error-free transcription transmits full entropy",
			presented:   presentedPhrase,
			transcribed: presentedPhrase,
			elapsed:     10 * time.Second,
			want:        22.496699762845235, // H(X) * 5.5 symbols per second
			delta:       1e-9,
		},
		{
			name:        "uniform two-symbol alphabet error-free",
			dist:        mustDistribution(map[rune]float64{'a': 0.5, 'b': 0.5}),
			presented:   "ab",
			transcribed: "ab",
			elapsed:     time.Second,
			want:        2.0, // one bit per symbol, two symbols per second
			delta:       1e-12,
		},
		{
			name:        "uniform two-symbol alphabet transposed",
			dist:        mustDistribution(map[rune]float64{'a': 0.5, 'b': 0.5}),
			presented:   "ab",
			transcribed: "ba",
			elapsed:     time.Second,
			want:        1.5555555555555554,
			delta:       1e-9,
		},
		{
			name:        "both empty",
			presented:   "",
			transcribed: "",
			elapsed:     time.Second,
			want:        0,
			delta:       1e-15,
		},
		{
			name:        "nothing transcribed",
			presented:   "abc",
			transcribed: "",
			elapsed:     time.Second,
			want:        0,
			delta:       1e-15,
		},
		{
			name:        "nothing presented",
			presented:   "",
			transcribed: "abc",
			elapsed:     time.Second,
			want:        0,
			delta:       1e-15,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dist := tt.dist
			if dist == nil {
				dist = EnglishLettersSpace()
			}
			calc := NewCalculator(dist)

			got, err := calc.Calc(tt.presented, tt.transcribed, tt.elapsed)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, tt.delta)
		})
	}
}

func TestCalculator_Calc_SingleSymbolAlphabet(t *testing.T) {
	// A one-symbol alphabet carries no information, so the throughput is
	// zero no matter how fast or accurately it is typed.
	calc := NewCalculator(corpusDistribution(t, "aaaa"))

	got, err := calc.Calc("aa", "aa", time.Second)
	require.NoError(t, err)
	assert.Zero(t, got)

	got, err = calc.Calc("aa", "a", time.Second)
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestCalculator_Calc_InvalidDuration(t *testing.T) {
	calc := NewCalculator(EnglishLettersSpace())

	for _, elapsed := range []time.Duration{0, -time.Second} {
		got, err := calc.Calc("abc", "abc", elapsed)
		assert.ErrorIs(t, err, ErrInvalidDuration)
		assert.Zero(t, got)
	}
}

func TestCalculator_Calc_ScalesWithDuration(t *testing.T) {
	calc := NewCalculator(EnglishLettersSpace())

	slow, err := calc.Calc(presentedPhrase, transcribedPhrase, 12*time.Second)
	require.NoError(t, err)
	fast, err := calc.Calc(presentedPhrase, transcribedPhrase, 6*time.Second)
	require.NoError(t, err)

	assert.InDelta(t, 2*slow, fast, 1e-12)
}

func TestCalculator_Calc_NonNegative(t *testing.T) {
	tests := []struct {
		name        string
		presented   string
		transcribed string
	}{
		{"reversed phrase", presentedPhrase, "tsae eht no dniw gniliverp retaw ni llef hccaw ym"},
		{"disjoint symbols", "aaaa", "bbbb"},
		{"scrambled", "the quick brown fox", "xof nworb kciuq eht"},
		{"garbage", "abcdefg", "zzzzzzz"},
		{"unknown symbols", "hello", "h3ll0!"},
	}

	calc := NewCalculator(EnglishLettersSpace())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := calc.Calc(tt.presented, tt.transcribed, time.Second)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.False(t, math.IsNaN(got))
			assert.False(t, math.IsInf(got, 0))
		})
	}
}

// =============================================================================
// Error Cost Tests
// =============================================================================

func TestCalculator_ErrorCost(t *testing.T) {
	tests := []struct {
		name        string
		presented   string
		transcribed string
		want        float64
	}{
		{
			name:        "identity costs nothing",
			presented:   presentedPhrase,
			transcribed: presentedPhrase,
			want:        0,
		},
		{
			name:        "phrase with omissions and substitutions",
			presented:   presentedPhrase,
			transcribed: transcribedPhrase,
			want:        36.545538975198895,
		},
		{
			name:        "omitting everything charges each symbol",
			presented:   "abc",
			transcribed: "",
			want:        15.723672814226457,
		},
		{
			name:        "inserting everything charges the same",
			presented:   "",
			transcribed: "abc",
			want:        15.723672814226457,
		},
		{
			name:        "typing rare for common is expensive",
			presented:   "e",
			transcribed: "z",
			want:        10.926259993021612,
		},
		{
			name:        "typing common for rare is cheap",
			presented:   "z",
			transcribed: "e",
			want:        3.281038351082514,
		},
		{
			name:        "unknown symbol falls back to rarest",
			presented:   "abc",
			transcribed: "ab!",
			want:        10.926259993021612,
		},
	}

	calc := NewCalculator(EnglishLettersSpace())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calc.ErrorCost(tt.presented, tt.transcribed)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestCalculator_ErrorCost_Asymmetric(t *testing.T) {
	// Swapping presented and transcribed changes which symbol each edit
	// touches, so the costs differ: wader->water charges the common t,
	// water->wader the rarer d.
	calc := NewCalculator(EnglishLettersSpace())

	forward := calc.ErrorCost("water", "wader")
	backward := calc.ErrorCost("wader", "water")

	assert.InDelta(t, 4.925951049860509, forward, 1e-9)
	assert.InDelta(t, 3.7307753343165335, backward, 1e-9)
	assert.Greater(t, forward, backward)
}

func TestCalculator_ErrorThroughput(t *testing.T) {
	calc := NewCalculator(EnglishLettersSpace())

	got, err := calc.ErrorThroughput(presentedPhrase, transcribedPhrase, 12*time.Second)
	require.NoError(t, err)
	assert.InDelta(t, 3.0454615812665744, got, 1e-9)

	// Same errors over half the time leak bits twice as fast.
	fast, err := calc.ErrorThroughput(presentedPhrase, transcribedPhrase, 6*time.Second)
	require.NoError(t, err)
	assert.InDelta(t, 2*got, fast, 1e-12)
}

func TestCalculator_ErrorThroughput_Identity(t *testing.T) {
	calc := NewCalculator(EnglishLettersSpace())

	got, err := calc.ErrorThroughput(presentedPhrase, presentedPhrase, 12*time.Second)
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestCalculator_ErrorThroughput_InvalidDuration(t *testing.T) {
	calc := NewCalculator(EnglishLettersSpace())

	for _, elapsed := range []time.Duration{0, -5 * time.Second} {
		got, err := calc.ErrorThroughput("abc", "abc", elapsed)
		assert.ErrorIs(t, err, ErrInvalidDuration)
		assert.Zero(t, got)
	}
}

// =============================================================================
// Error Rate Tests
// =============================================================================

func TestCalculator_ErrorRates(t *testing.T) {
	tests := []struct {
		name        string
		presented   string
		transcribed string
		want        ErrorRates
	}{
		{
			name:        "phrase with omissions and substitutions",
			presented:   presentedPhrase,
			transcribed: transcribedPhrase,
			want: ErrorRates{
				Insertion:    0,
				Omission:     0.12727272727272726, // 7 of 55
				Substitution: 0.03636363636363636, // 2 of 55
				Correct:      0.8363636363636363,  // 46 of 55
			},
		},
		{
			name:        "error-free",
			presented:   "abc",
			transcribed: "abc",
			want:        ErrorRates{Correct: 1},
		},
		{
			name:        "all insertions",
			presented:   "",
			transcribed: "ab",
			want:        ErrorRates{Insertion: 1},
		},
		{
			name:        "all omissions",
			presented:   "ab",
			transcribed: "",
			want:        ErrorRates{Omission: 1},
		},
		{
			name:        "both empty",
			presented:   "",
			transcribed: "",
			want:        ErrorRates{},
		},
	}

	calc := NewCalculator(EnglishLettersSpace())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calc.ErrorRates(tt.presented, tt.transcribed)

			assert.InDelta(t, tt.want.Insertion, got.Insertion, 1e-15)
			assert.InDelta(t, tt.want.Omission, got.Omission, 1e-15)
			assert.InDelta(t, tt.want.Substitution, got.Substitution, 1e-15)
			assert.InDelta(t, tt.want.Correct, got.Correct, 1e-15)

			if tt.presented != "" || tt.transcribed != "" {
				sum := got.Insertion + got.Omission + got.Substitution + got.Correct
				assert.InDelta(t, 1.0, sum, 1e-12)
			}
		})
	}
}

// =============================================================================
// Corpus-Derived Model Tests
// =============================================================================

func TestCalculator_CorpusDerived(t *testing.T) {
	const corpus = "うまぴょい うまぴょい すごいうまうまうますごい ぴょいぴょい うまうまだいすき とくいなこと はしること"

	f := NewFrequencies()
	f.RecordString(corpus)
	require.Equal(t, uint64(53), f.N())
	require.Equal(t, 17, f.Len())

	d, err := NewDistribution(f)
	require.NoError(t, err)
	assert.InDelta(t, 3.6840993429130036, d.Entropy(), 1e-9)

	calc := NewCalculator(d)

	got, err := calc.Calc("うまぴょい", "うまぽい", 2*time.Second)
	require.NoError(t, err)
	assert.InDelta(t, 3.2982989656415613, got, 1e-9)

	// ぽ never occurs in the corpus; the substitution falls back to the
	// rarest corpus symbol's cost.
	assert.InDelta(t, 9.4558409091264, calc.ErrorCost("うまぴょい", "うまぽい"), 1e-9)
}

// =============================================================================
// Construction and Concurrency Tests
// =============================================================================

func TestCalculator_WithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	calc := NewCalculator(EnglishLettersSpace(), WithLogger(logger))
	_, err := calc.Calc("abc", "abc", time.Second)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "throughput computed")
	assert.Contains(t, out, "component=calculator")
	assert.Contains(t, out, "transcribed_len=3")
}

func TestCalculator_WithLogger_Nil(t *testing.T) {
	calc := NewCalculator(EnglishLettersSpace(), WithLogger(nil))

	_, err := calc.Calc("abc", "abc", time.Second)
	assert.NoError(t, err)
}

func TestCalculator_ConcurrentUse(t *testing.T) {
	calc := NewCalculator(EnglishLettersSpace())

	want, err := calc.Calc(presentedPhrase, transcribedPhrase, 12*time.Second)
	require.NoError(t, err)

	const goroutines = 8
	results := make([]float64, goroutines)

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				got, err := calc.Calc(presentedPhrase, transcribedPhrase, 12*time.Second)
				if err != nil {
					results[i] = math.NaN()
					return
				}
				results[i] = got
			}
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		assert.Equal(t, want, got, "goroutine %d", i)
	}
}
