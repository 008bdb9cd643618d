package iir

import "github.com/cwbudde/algo-dsptk/dsp/core"

// state is the per-sample history. Recursive kinds use the x/y histories,
// equalizer kinds use the direct form II w registers.
type state struct {
	x1, x2 float64
	y1, y2 float64
	w1, w2 float64
}

// Filter is a single recursive filter of a fixed Kind.
//
// The zero value is not usable; create filters with the New* constructors.
type Filter struct {
	kind   Kind
	params Params
	coeffs Coefficients
	state  state
}

func newFilter(kind Kind, p Params) *Filter {
	return &Filter{
		kind:   kind,
		params: p,
		coeffs: design(kind, p),
	}
}

// New creates a filter of the given kind after validating p.
func New(kind Kind, p Params) (*Filter, error) {
	if err := Validate(kind, p); err != nil {
		return nil, err
	}

	return newFilter(kind, p), nil
}

// NewLowPass creates a single-pole low-pass filter with cutoff frequency in Hz.
func NewLowPass(frequency, sampleRate float64) *Filter {
	return newFilter(KindLowPass, Params{Frequency: frequency, SampleRate: sampleRate})
}

// NewHighPass creates a single-pole high-pass filter with cutoff frequency in Hz.
func NewHighPass(frequency, sampleRate float64) *Filter {
	return newFilter(KindHighPass, Params{Frequency: frequency, SampleRate: sampleRate})
}

// NewDCBlocker creates a DC blocking filter. Lower frequencies give a slower,
// gentler removal of the DC offset.
func NewDCBlocker(frequency, sampleRate float64) *Filter {
	return newFilter(KindDCBlocker, Params{Frequency: frequency, SampleRate: sampleRate})
}

// NewBandPass creates a two-pole band-pass resonator.
func NewBandPass(frequency, bandwidth, sampleRate float64) *Filter {
	return newFilter(KindBandPass, Params{Frequency: frequency, SampleRate: sampleRate, Bandwidth: bandwidth})
}

// NewBandReject creates a two-pole band-reject (notch) resonator.
func NewBandReject(frequency, bandwidth, sampleRate float64) *Filter {
	return newFilter(KindBandReject, Params{Frequency: frequency, SampleRate: sampleRate, Bandwidth: bandwidth})
}

// NewParametric creates a peak/notch equalizer. The gain is reached at the
// center frequency; the bandwidth edges sit 3 dB from the peak for gains
// beyond ±3 dB.
func NewParametric(frequency, bandwidth float64, gain core.DB, sampleRate float64) *Filter {
	return newFilter(KindParametric, Params{
		Frequency:  frequency,
		SampleRate: sampleRate,
		Bandwidth:  bandwidth,
		Gain:       gain,
	})
}

// NewLowShelf creates a first-order low shelving equalizer.
func NewLowShelf(frequency float64, gain core.DB, sampleRate float64) *Filter {
	return newFilter(KindLowShelf, Params{Frequency: frequency, SampleRate: sampleRate, Gain: gain})
}

// NewHighShelf creates a first-order high shelving equalizer.
func NewHighShelf(frequency float64, gain core.DB, sampleRate float64) *Filter {
	return newFilter(KindHighShelf, Params{Frequency: frequency, SampleRate: sampleRate, Gain: gain})
}

// Kind returns the filter kind.
func (f *Filter) Kind() Kind { return f.kind }

// Params returns the current parameters.
func (f *Filter) Params() Params { return f.params }

// Coefficients returns the coefficients derived from the current parameters.
func (f *Filter) Coefficients() Coefficients { return f.coeffs }

// Frequency returns the cutoff or center frequency in Hz.
func (f *Filter) Frequency() float64 { return f.params.Frequency }

// SampleRate returns the sample rate in Hz.
func (f *Filter) SampleRate() float64 { return f.params.SampleRate }

// Bandwidth returns the bandwidth in Hz.
func (f *Filter) Bandwidth() float64 { return f.params.Bandwidth }

// Gain returns the equalizer gain.
func (f *Filter) Gain() core.DB { return f.params.Gain }

// Validate checks the current parameters. See the package-level Validate.
func (f *Filter) Validate() error {
	return Validate(f.kind, f.params)
}

// UpdateFrequency sets the cutoff or center frequency and recomputes the
// coefficients. Passing the current value leaves the filter untouched.
func (f *Filter) UpdateFrequency(frequency float64) {
	if frequency == f.params.Frequency {
		return
	}

	f.params.Frequency = frequency
	f.recalculate()
}

// UpdateSampleRate sets the sample rate and recomputes the coefficients.
// Passing the current value leaves the filter untouched.
func (f *Filter) UpdateSampleRate(sampleRate float64) {
	if sampleRate == f.params.SampleRate {
		return
	}

	f.params.SampleRate = sampleRate
	f.recalculate()
}

// UpdateBandwidth sets the bandwidth and recomputes the coefficients.
// Passing the current value leaves the filter untouched. Kinds without a
// bandwidth store the value but their response does not change.
func (f *Filter) UpdateBandwidth(bandwidth float64) {
	if bandwidth == f.params.Bandwidth {
		return
	}

	f.params.Bandwidth = bandwidth
	f.recalculate()
}

// UpdateGain sets the equalizer gain and recomputes the coefficients.
// Passing the current dB value leaves the filter untouched.
func (f *Filter) UpdateGain(gain core.DB) {
	if gain.DB() == f.params.Gain.DB() {
		return
	}

	f.params.Gain = gain
	f.recalculate()
}

func (f *Filter) recalculate() {
	f.coeffs = design(f.kind, f.params)
}

// Reset clears the sample history. Coefficients are kept.
func (f *Filter) Reset() {
	f.state = state{}
}

// ProcessSample filters one input sample and returns the output.
func (f *Filter) ProcessSample(x float64) float64 {
	c := &f.coeffs
	s := &f.state

	switch f.kind {
	case KindLowPass:
		y := c.A0*x + c.B1*s.y1
		s.y1 = y

		return y

	case KindHighPass, KindDCBlocker:
		y := c.A0*x + c.A1*s.x1 + c.B1*s.y1
		s.x1 = x
		s.y1 = y

		return y

	case KindBandPass, KindBandReject:
		y := c.A0*x + c.A1*s.x1 + c.A2*s.x2 + c.B1*s.y1 + c.B2*s.y2
		s.x2 = s.x1
		s.x1 = x
		s.y2 = s.y1
		s.y1 = y

		return y

	case KindParametric:
		w0 := x - c.A1*s.w1 - c.A2*s.w2
		y := c.B0*w0 + c.B1*s.w1 + c.B2*s.w2
		s.w2 = s.w1
		s.w1 = w0

		return y

	case KindLowShelf, KindHighShelf:
		w0 := x - c.A1*s.w1
		y := c.B0*w0 + c.B1*s.w1
		s.w1 = w0

		return y

	default:
		return x
	}
}

// ProcessBlock filters buf in place.
func (f *Filter) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = f.ProcessSample(x)
	}
}
