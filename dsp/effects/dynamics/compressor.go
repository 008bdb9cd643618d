package dynamics

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-dsptk/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by the compressor block APIs and Validate.
var (
	ErrLengthMismatch = errors.New("dynamics: buffer length mismatch")
	ErrInvalidParams  = errors.New("dynamics: invalid compressor parameters")
)

// CompressorMetrics holds metering information for visualization and analysis.
type CompressorMetrics struct {
	InputPeak     float64 // Maximum input level since last reset
	OutputPeak    float64 // Maximum output level since last reset
	GainReduction float64 // Minimum gain (maximum reduction) since last reset
}

// CompressorOption configures a Compressor.
type CompressorOption func(*Compressor)

// WithBlockSize pre-sizes the internal control buffer so blocks up to n
// samples are processed without allocating.
func WithBlockSize(n int) CompressorOption {
	return func(c *Compressor) {
		if n > 0 {
			c.control = make([]float64, n)
		}
	}
}

// Compressor is a feed-forward compressor. The control signal (sidechain or
// input) is converted to dB and mapped through the gain curve. The detector
// then smooths the reduction in the linear domain, and the resulting gain is
// applied to the input.
//
// Attack and release times are in seconds. The compressor is mono and not
// safe for concurrent use.
type Compressor struct {
	detector *Detector
	computer *GainReductionComputer

	control []float64
	metrics CompressorMetrics
}

// NewCompressor creates a compressor. Threshold and knee width are in dB,
// attack and release in seconds, the sample rate in Hz. Parameters are not
// validated; see Validate.
func NewCompressor(threshold, ratio, kneeWidth, sampleRate, attackTime, releaseTime float64, opts ...CompressorOption) *Compressor {
	c := &Compressor{
		detector: NewDetector(sampleRate, attackTime, releaseTime),
		computer: NewGainReductionComputer(threshold, ratio, kneeWidth),
	}
	c.ResetMetrics()

	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	return c
}

// Validate reports whether the current parameters describe a usable
// compressor: positive finite sample rate and times, ratio of at least 1,
// non-negative knee and finite threshold.
func (c *Compressor) Validate() error {
	d, g := c.detector, c.computer

	switch {
	case !core.IsFinite(d.sampleRate) || d.sampleRate <= 0:
		return fmt.Errorf("%w: sample rate must be positive and finite: %f", ErrInvalidParams, d.sampleRate)
	case !core.IsFinite(d.attackTime) || d.attackTime <= 0:
		return fmt.Errorf("%w: attack time must be positive and finite: %f", ErrInvalidParams, d.attackTime)
	case !core.IsFinite(d.releaseTime) || d.releaseTime <= 0:
		return fmt.Errorf("%w: release time must be positive and finite: %f", ErrInvalidParams, d.releaseTime)
	case !core.IsFinite(g.threshold):
		return fmt.Errorf("%w: threshold must be finite: %f", ErrInvalidParams, g.threshold)
	case !core.IsFinite(g.ratio) || g.ratio < 1:
		return fmt.Errorf("%w: ratio must be >= 1: %f", ErrInvalidParams, g.ratio)
	case !core.IsFinite(g.kneeWidth) || g.kneeWidth < 0:
		return fmt.Errorf("%w: knee width must be >= 0: %f", ErrInvalidParams, g.kneeWidth)
	}

	return nil
}

// SetSampleRate updates the detector sample rate.
func (c *Compressor) SetSampleRate(sampleRate float64) { c.detector.SetSampleRate(sampleRate) }

// SetAttackTime updates the attack time in seconds.
func (c *Compressor) SetAttackTime(attackTime float64) { c.detector.SetAttackTime(attackTime) }

// SetReleaseTime updates the release time in seconds.
func (c *Compressor) SetReleaseTime(releaseTime float64) { c.detector.SetReleaseTime(releaseTime) }

// SetThreshold updates the threshold in dB.
func (c *Compressor) SetThreshold(threshold float64) { c.computer.SetThreshold(threshold) }

// SetRatio updates the compression ratio.
func (c *Compressor) SetRatio(ratio float64) { c.computer.SetRatio(ratio) }

// SetKneeWidth updates the knee width in dB.
func (c *Compressor) SetKneeWidth(kneeWidth float64) { c.computer.SetKneeWidth(kneeWidth) }

// SampleRate returns the sample rate in Hz.
func (c *Compressor) SampleRate() float64 { return c.detector.SampleRate() }

// AttackTime returns the attack time in seconds.
func (c *Compressor) AttackTime() float64 { return c.detector.AttackTime() }

// ReleaseTime returns the release time in seconds.
func (c *Compressor) ReleaseTime() float64 { return c.detector.ReleaseTime() }

// Threshold returns the threshold in dB.
func (c *Compressor) Threshold() float64 { return c.computer.Threshold() }

// Ratio returns the compression ratio.
func (c *Compressor) Ratio() float64 { return c.computer.Ratio() }

// KneeWidth returns the knee width in dB.
func (c *Compressor) KneeWidth() float64 { return c.computer.KneeWidth() }

// ProcessBlock compresses input into output. When sidechain is non-nil it
// drives the gain computation instead of input. When meter is non-nil it
// receives the linear gain applied to each sample. All non-nil buffers must
// have the length of input; output may alias input.
func (c *Compressor) ProcessBlock(input, sidechain, output, meter []float64) error {
	n := len(input)

	if len(output) != n {
		return fmt.Errorf("%w: output %d, input %d", ErrLengthMismatch, len(output), n)
	}

	if sidechain != nil && len(sidechain) != n {
		return fmt.Errorf("%w: sidechain %d, input %d", ErrLengthMismatch, len(sidechain), n)
	}

	if meter != nil && len(meter) != n {
		return fmt.Errorf("%w: meter %d, input %d", ErrLengthMismatch, len(meter), n)
	}

	if n == 0 {
		return nil
	}

	controlSignal := input
	if sidechain != nil {
		controlSignal = sidechain
	}

	c.control = core.EnsureLen(c.control, n)
	gain := c.control[:n]

	// Log of the control signal.
	for i, x := range controlSignal {
		gain[i] = ampToDB(x)
	}

	// Gain curve in dB, then back to linear.
	for i, level := range gain {
		gain[i] = dbToAmp(c.computer.Compute(level))
	}

	// The detector tracks the reduction 1-g, which rises on attack.
	for i, g := range gain {
		gain[i] = 1 - c.detector.ProcessSample(1-g)
	}

	c.updateInputPeak(input)
	vecmath.MulBlock(output, input, gain)
	c.updateOutputMetrics(output, gain)

	if meter != nil {
		copy(meter, gain)
	}

	return nil
}

// ProcessInPlace compresses buf in place using buf as the control signal.
func (c *Compressor) ProcessInPlace(buf []float64) {
	// Lengths always match, so ProcessBlock cannot fail here.
	_ = c.ProcessBlock(buf, nil, buf, nil)
}

// ProcessSample compresses one sample using it as its own control signal.
func (c *Compressor) ProcessSample(input float64) float64 {
	g := dbToAmp(c.computer.Compute(ampToDB(input)))
	g = 1 - c.detector.ProcessSample(1-g)
	output := input * g

	c.updateMetrics(math.Abs(input), math.Abs(output), g)

	return output
}

// CalculateOutputLevel computes the steady-state output level for a given
// input magnitude. This allows visualizing the compression curve.
func (c *Compressor) CalculateOutputLevel(inputMagnitude float64) float64 {
	inputMagnitude = math.Abs(inputMagnitude)
	return inputMagnitude * dbToAmp(c.computer.Compute(ampToDB(inputMagnitude)))
}

// Reset clears the detector and the metrics. Parameters are kept.
func (c *Compressor) Reset() {
	c.detector.Reset()
	c.ResetMetrics()
}

// Metrics returns current metering values.
func (c *Compressor) Metrics() CompressorMetrics {
	return c.metrics
}

// ResetMetrics clears metering state.
func (c *Compressor) ResetMetrics() {
	c.metrics = CompressorMetrics{
		GainReduction: 1.0, // Initialize to no reduction
	}
}

func (c *Compressor) updateInputPeak(input []float64) {
	for _, x := range input {
		if a := math.Abs(x); a > c.metrics.InputPeak {
			c.metrics.InputPeak = a
		}
	}
}

func (c *Compressor) updateOutputMetrics(output, gain []float64) {
	for i, y := range output {
		if a := math.Abs(y); a > c.metrics.OutputPeak {
			c.metrics.OutputPeak = a
		}

		if gain[i] < c.metrics.GainReduction {
			c.metrics.GainReduction = gain[i]
		}
	}
}

// updateMetrics tracks peak levels and gain reduction for a single sample.
func (c *Compressor) updateMetrics(inputLevel, outputLevel, gain float64) {
	if inputLevel > c.metrics.InputPeak {
		c.metrics.InputPeak = inputLevel
	}

	if outputLevel > c.metrics.OutputPeak {
		c.metrics.OutputPeak = outputLevel
	}

	if gain < c.metrics.GainReduction {
		c.metrics.GainReduction = gain
	}
}
