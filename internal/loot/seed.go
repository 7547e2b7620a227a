package loot

import (
	"math"
	"strconv"
)

// seededUnit hashes a string into [0,1). It is a pure function: the same
// input always yields the same output, which is what makes seeded
// generation reproducible across processes.
//
// The hash is the classic multiply-by-31 accumulator over the raw bytes,
// wrapped at 32 bits signed, then normalized by absolute value. It is
// intentionally simple and non-cryptographic; it must never be used where
// an attacker-resistant RNG is required.
func seededUnit(s string) float64 {
	var h int32
	for _, b := range []byte(s) {
		h = h*31 + int32(b)
	}
	if h == math.MinInt32 {
		// abs would overflow
		return 0
	}
	if h < 0 {
		h = -h
	}
	return float64(h) / (math.MaxInt32 + 1)
}

// drawSource is the per-call stream of uniform draws in [0,1).
//
// With a seed every draw is derived from "{seed}|{label}|{n}" where n is
// the 1-based position of the draw within the call, so identical seed and
// registered state reproduce an identical item. Without a seed it
// delegates to the service's injected uniform source.
type drawSource struct {
	rnd  func() float64
	seed string
	n    int
}

func newDrawSource(rnd func() float64, seed string) *drawSource {
	return &drawSource{rnd: rnd, seed: seed}
}

func (d *drawSource) next(label string) float64 {
	d.n++
	if d.seed == "" {
		return d.rnd()
	}
	return seededUnit(d.seed + "|" + label + "|" + strconv.Itoa(d.n))
}
