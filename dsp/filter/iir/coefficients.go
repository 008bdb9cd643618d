package iir

import (
	"math"

	"github.com/cwbudde/algo-dsptk/dsp/core"
)

// referenceGain is the linear gain equalizers apply far from their band (0 dB).
const referenceGain = 1.0

// Coefficients holds the derived filter coefficients. Their meaning depends
// on the kind's structure.
//
// Recursive kinds (low-pass, high-pass, DC blocker, band-pass, band-reject)
// use A as feedforward and B1, B2 as feedback added to the output:
//
//	y[n] = A0·x[n] + A1·x[n-1] + A2·x[n-2] + B1·y[n-1] + B2·y[n-2]
//
// Equalizer kinds (parametric, shelves) use direct form II with B as
// feedforward and A1, A2 as feedback subtracted from the input:
//
//	w[n] = x[n] - A1·w[n-1] - A2·w[n-2]
//	y[n] = B0·w[n] + B1·w[n-1] + B2·w[n-2]
//
// A0 is unused by equalizer kinds and B0 is unused by recursive kinds.
type Coefficients struct {
	A0, A1, A2 float64
	B0, B1, B2 float64
}

func design(kind Kind, p Params) Coefficients {
	switch kind {
	case KindLowPass:
		return designLowPass(p)
	case KindHighPass:
		return designHighPass(p)
	case KindDCBlocker:
		return designDCBlocker(p)
	case KindBandPass:
		return designBandPass(p)
	case KindBandReject:
		return designBandReject(p)
	case KindParametric:
		return designParametric(p)
	case KindLowShelf:
		return designLowShelf(p)
	case KindHighShelf:
		return designHighShelf(p)
	default:
		return Coefficients{}
	}
}

func onePolePole(p Params) float64 {
	return math.Exp(-core.DoublePi * p.Frequency / p.SampleRate)
}

func designLowPass(p Params) Coefficients {
	b1 := onePolePole(p)

	return Coefficients{A0: 1 - b1, B1: b1}
}

func designHighPass(p Params) Coefficients {
	b1 := onePolePole(p)
	a0 := (1 + b1) / 2

	return Coefficients{A0: a0, A1: -a0, B1: b1}
}

// designDCBlocker places the pole at R = 1 - 2π·f/fs instead of using the
// exponential mapping of the single-pole filters.
func designDCBlocker(p Params) Coefficients {
	r := 1 - core.DoublePi*p.Frequency/p.SampleRate

	return Coefficients{A0: 1, A1: -1, B1: r}
}

// resonator holds the pole placement shared by band-pass and band-reject.
type resonator struct {
	cosFactor, r, rr, b1, b2, k float64
}

func designResonator(p Params) resonator {
	cosFactor := math.Cos(core.DoublePi * p.Frequency / p.SampleRate)
	r := 1 - 3*p.Bandwidth/p.SampleRate
	rr := r * r
	b1 := 2 * r * cosFactor

	return resonator{
		cosFactor: cosFactor,
		r:         r,
		rr:        rr,
		b1:        b1,
		b2:        -rr,
		k:         (1 - b1 + rr) / (2 - 2*cosFactor),
	}
}

func designBandPass(p Params) Coefficients {
	res := designResonator(p)

	return Coefficients{
		A0: 1 - res.k,
		A1: 2 * (res.k - res.r) * res.cosFactor,
		A2: res.rr - res.k,
		B1: res.b1,
		B2: res.b2,
	}
}

func designBandReject(p Params) Coefficients {
	res := designResonator(p)

	return Coefficients{
		A0: res.k,
		A1: -res.k * res.cosFactor * 2,
		A2: res.k,
		B1: res.b1,
		B2: res.b2,
	}
}

// betaScale maps the nominal bandwidth to the gain reached at the band edge.
// Boosts whose squared gain exceeds 2 (about 3.01 dB) put the edge 3 dB below
// the peak, and cuts whose squared gain is below 1/2 put it 3 dB above the notch.
// Smaller gains use the arithmetic mean of the squared gains, for which the
// scale is exactly 1. Switching at exactly 3 dB would leave a negative radicand.
func betaScale(g float64) float64 {
	const g0Sq = referenceGain * referenceGain

	gSq := g * g

	switch {
	case gSq > 2*g0Sq:
		edgeSq := gSq / 2
		return math.Sqrt((edgeSq - g0Sq) / (gSq - edgeSq))
	case gSq < g0Sq/2:
		edgeSq := gSq * 2
		return math.Sqrt((edgeSq - g0Sq) / (gSq - edgeSq))
	default:
		return 1
	}
}

func designParametric(p Params) Coefficients {
	const g0 = referenceGain

	bw := core.DoublePi * p.Bandwidth / p.SampleRate
	fc := core.DoublePi * p.Frequency / p.SampleRate
	g := p.Gain.LinearGain()

	beta := betaScale(g) * math.Tan(bw/2)
	norm := 1 + beta
	a1 := -2 * math.Cos(fc) / norm

	return Coefficients{
		A1: a1,
		A2: (1 - beta) / norm,
		B0: (g0 + g*beta) / norm,
		B1: g0 * a1,
		B2: (g0 - g*beta) / norm,
	}
}

func designLowShelf(p Params) Coefficients {
	const g0 = referenceGain

	fc := core.DoublePi * p.Frequency / p.SampleRate
	g := p.Gain.LinearGain()

	beta := betaScale(g) * math.Tan(fc/2)
	norm := 1 + beta

	return Coefficients{
		A1: -(1 - beta) / norm,
		B0: (g0 + g*beta) / norm,
		B1: -(g0 - g*beta) / norm,
	}
}

// designHighShelf mirrors the low shelf around fs/4: tan becomes its
// reciprocal and z^-1 changes sign, so DC keeps the reference gain and
// Nyquist receives the shelf gain.
func designHighShelf(p Params) Coefficients {
	const g0 = referenceGain

	fc := core.DoublePi * p.Frequency / p.SampleRate
	g := p.Gain.LinearGain()

	beta := betaScale(g) / math.Tan(fc/2)
	norm := 1 + beta

	return Coefficients{
		A1: (1 - beta) / norm,
		B0: (g0 + g*beta) / norm,
		B1: (g0 - g*beta) / norm,
	}
}
