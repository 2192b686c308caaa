package tet

// englishFrequency holds relative frequencies of the lowercase English
// letters and the space, measured over a large contemporary English corpus.
// Space is by far the most common symbol at roughly 18%.
var englishFrequency = map[rune]float64{
	'a': 0.06545420428810268,
	'b': 0.012614349400134882,
	'c': 0.022382079660795914,
	'd': 0.032895839710101495,
	'e': 0.10287480840814522,
	'f': 0.019870906945619955,
	'g': 0.01628201251975626,
	'h': 0.0498866519336527,
	'i': 0.05679944220647908,
	'j': 0.0009771967640664421,
	'k': 0.005621008826086285,
	'l': 0.03324279082953061,
	'm': 0.020306796250368523,
	'n': 0.057236004874678816,
	'o': 0.061720746945911634,
	'p': 0.015073764715016882,
	'q': 0.0008384527300266635,
	'r': 0.049980287430261394,
	's': 0.05327793252372975,
	't': 0.07532249847431097,
	'u': 0.022804128240333354,
	'v': 0.007977317166161044,
	'w': 0.017073508770571122,
	'x': 0.0014120607927983009,
	'y': 0.014305632773116854,
	'z': 0.0005138874382474097,
	' ': 0.18325568938199557,
}

var (
	englishLettersSpace = mustDistribution(englishFrequency)
	englishLetters      = mustDistribution(renormalizeWithout(englishFrequency, ' '))
)

// EnglishLettersSpace returns the built-in model over the 27 symbols a-z and
// space. This is the model most transcription studies assume, since typed
// phrases carry word boundaries.
func EnglishLettersSpace() *Distribution {
	return englishLettersSpace
}

// EnglishLetters returns the built-in model over the 26 letters a-z, with the
// space's share of probability mass redistributed proportionally. Suited to
// single-word entry tasks.
func EnglishLetters() *Distribution {
	return englishLetters
}

// renormalizeWithout removes one symbol and rescales the rest to sum to one.
func renormalizeWithout(probs map[rune]float64, drop rune) map[rune]float64 {
	out := make(map[rune]float64, len(probs)-1)
	scale := 1 / (1 - probs[drop])
	for r, p := range probs {
		if r == drop {
			continue
		}
		out[r] = p * scale
	}
	return out
}

// mustDistribution backs the package presets; a validation failure here is a
// typo in the tables above.
func mustDistribution(probs map[rune]float64) *Distribution {
	d, err := NewDistributionFromProbabilities(probs)
	if err != nil {
		panic(err)
	}
	return d
}
