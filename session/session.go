// Package session evaluates transcription trials and aggregates them into
// per-session statistics. A study typically presents a participant with a
// sequence of phrases; each presented/transcribed/elapsed triple is a Trial,
// Evaluate scores one trial against a calculator, and Summarize condenses a
// session's results into distribution summaries per metric.
package session

import (
	"fmt"
	"time"

	"tet"
	"tet/internal/alignment"
)

// Trial is one transcription task: the phrase shown to the participant, the
// text they produced, and how long they took.
type Trial struct {
	Presented   string
	Transcribed string
	Elapsed     time.Duration
}

// Result holds the metrics of one evaluated trial.
type Result struct {
	// Throughput is the information transmission rate in bits per second.
	Throughput float64

	// ErrorThroughput is the information-weighted error rate in bits per
	// second, zero for a perfect transcription.
	ErrorThroughput float64

	// MSD is the minimum string distance between presented and transcribed
	// text: the fewest insertions, omissions and substitutions separating
	// them.
	MSD int

	// ErrorRate is MSD normalized by the longer of the two strings, the
	// conventional error rate of transcription studies.
	ErrorRate float64

	// CPS is transcribed symbols per second.
	CPS float64

	// WPM is the words-per-minute equivalent of CPS, at the conventional
	// five symbols per word.
	WPM float64

	// Rates classifies the trial's errors from an optimal alignment.
	Rates tet.ErrorRates
}

// Evaluate scores one trial. Returns the calculator's error when the trial
// duration is not positive.
func Evaluate(c *tet.Calculator, tr Trial) (Result, error) {
	throughput, err := c.Calc(tr.Presented, tr.Transcribed, tr.Elapsed)
	if err != nil {
		return Result{}, err
	}
	errorThroughput, err := c.ErrorThroughput(tr.Presented, tr.Transcribed, tr.Elapsed)
	if err != nil {
		return Result{}, err
	}

	p := []rune(tr.Presented)
	t := []rune(tr.Transcribed)

	res := Result{
		Throughput:      throughput,
		ErrorThroughput: errorThroughput,
		MSD:             alignment.Distance(p, t),
		CPS:             float64(len(t)) / tr.Elapsed.Seconds(),
		Rates:           c.ErrorRates(tr.Presented, tr.Transcribed),
	}
	res.WPM = res.CPS * 12
	if longer := max(len(p), len(t)); longer > 0 {
		res.ErrorRate = float64(res.MSD) / float64(longer)
	}
	return res, nil
}

// Run evaluates every trial in order and summarizes the session.
func Run(c *tet.Calculator, trials []Trial) (Summary, error) {
	results := make([]Result, len(trials))
	for i, tr := range trials {
		res, err := Evaluate(c, tr)
		if err != nil {
			return Summary{}, fmt.Errorf("trial %d: %w", i, err)
		}
		results[i] = res
	}
	return Summarize(results)
}
