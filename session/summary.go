package session

import (
	"errors"

	"github.com/montanaflynn/stats"
)

// ErrEmptySession is returned when a summary is requested over zero results.
var ErrEmptySession = errors.New("session: no trials to summarize")

// Aggregate describes one metric's distribution across a session.
type Aggregate struct {
	Mean   float64
	Median float64
	StdDev float64
	Min    float64
	Max    float64
}

// Summary holds per-metric aggregates over a session's trials.
type Summary struct {
	Trials int

	Throughput      Aggregate
	ErrorThroughput Aggregate
	CPS             Aggregate
	WPM             Aggregate
	ErrorRate       Aggregate
}

// Summarize aggregates evaluated trials into a session summary. Returns
// ErrEmptySession when results is empty.
func Summarize(results []Result) (Summary, error) {
	if len(results) == 0 {
		return Summary{}, ErrEmptySession
	}

	s := Summary{Trials: len(results)}
	metrics := []struct {
		dst *Aggregate
		get func(Result) float64
	}{
		{&s.Throughput, func(r Result) float64 { return r.Throughput }},
		{&s.ErrorThroughput, func(r Result) float64 { return r.ErrorThroughput }},
		{&s.CPS, func(r Result) float64 { return r.CPS }},
		{&s.WPM, func(r Result) float64 { return r.WPM }},
		{&s.ErrorRate, func(r Result) float64 { return r.ErrorRate }},
	}

	for _, m := range metrics {
		xs := make([]float64, len(results))
		for i, r := range results {
			xs[i] = m.get(r)
		}
		agg, err := aggregate(xs)
		if err != nil {
			return Summary{}, err
		}
		*m.dst = agg
	}

	return s, nil
}

func aggregate(xs []float64) (Aggregate, error) {
	var agg Aggregate
	var err error
	if agg.Mean, err = stats.Mean(xs); err != nil {
		return Aggregate{}, err
	}
	if agg.Median, err = stats.Median(xs); err != nil {
		return Aggregate{}, err
	}
	if agg.StdDev, err = stats.StandardDeviation(xs); err != nil {
		return Aggregate{}, err
	}
	if agg.Min, err = stats.Min(xs); err != nil {
		return Aggregate{}, err
	}
	if agg.Max, err = stats.Max(xs); err != nil {
		return Aggregate{}, err
	}
	return agg, nil
}
