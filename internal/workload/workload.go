// Package workload drives delete-then-query runs against ordered sets and
// summarizes their timings.
package workload

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"time"
)

// Params of a run.
type Params struct {
	N     int
	Steps int
	Seed  uint64
	Log   *slog.Logger
}

// Result of one subject over every step.
type Result struct {
	Subject string
	// Ops counts the timed deletes and queries over all steps.
	Ops    int
	Avg    time.Duration // per step
	Stddev time.Duration
	// Size and Height are observed right before the last step's deletes.
	Size   int
	Height int

	samples []time.Duration
}

// PerOp is the average time of one timed operation.
func (r Result) PerOp() time.Duration {
	if r.Ops == 0 {
		return 0
	}
	return time.Duration(float64(r.Avg) * float64(r.Steps()) / float64(r.Ops))
}

// Steps measured.
func (r Result) Steps() int {
	return len(r.samples)
}

// Run measures every subject. Step i inserts p.N keys, deletes the first
// p.N/p.Steps*i of them, then queries the deleted keys and as many
// random ones. Only the deletes and queries are timed.
func Run(p Params, subjects []string) ([]Result, error) {
	if p.Log == nil {
		p.Log = slog.Default()
	}
	out := make([]Result, 0, len(subjects))
	for _, name := range subjects {
		r, err := measure(p, name)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func measure(p Params, name string) (Result, error) {
	r := Result{Subject: name}
	rg := rand.New(rand.NewPCG(p.Seed, p.Seed+1))
	keys := make([]int, p.N)
	for i := 1; i < p.Steps; i++ {
		s, err := NewSubject(name, p.N, p.Seed, p.Log)
		if err != nil {
			return r, err
		}
		for j := range keys {
			keys[j] = rg.Int()
			s.Insert(keys[j])
		}
		r.Size, r.Height = s.Len(), s.Height()
		rmv := p.N / p.Steps * i

		start := time.Now()
		for _, k := range keys[:rmv] {
			s.Delete(k)
		}
		for _, k := range keys[:rmv] {
			if s.Contains(k) {
				return r, fmt.Errorf("%s: deleted key %d is still present", name, k)
			}
		}
		for range rmv {
			s.Contains(rg.Int())
		}
		r.samples = append(r.samples, time.Since(start))
		r.Ops += 3 * rmv

		if err := s.Close(); err != nil {
			return r, fmt.Errorf("%s: %w", name, err)
		}
	}
	r.Avg, r.Stddev = summarize(r.samples)
	p.Log.Debug("subject measured", slog.String("subject", name), slog.Duration("avg", r.Avg), slog.Int("ops", r.Ops))
	return r, nil
}

// summarize returns the mean and population standard deviation.
func summarize(samples []time.Duration) (avg, stddev time.Duration) {
	if len(samples) == 0 {
		return 0, 0
	}
	var sum float64
	for _, v := range samples {
		sum += float64(v)
	}
	mean := sum / float64(len(samples))
	sum = 0
	for _, v := range samples {
		a := float64(v) - mean
		sum += a * a
	}
	return time.Duration(mean), time.Duration(math.Sqrt(sum / float64(len(samples))))
}
