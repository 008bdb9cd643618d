package dynamics

import "math"

// riseTimeConstant maps a time constant to the 10 %-90 % rise time of a
// one-pole smoother: ln(0.9/0.1) ≈ 2.2.
const riseTimeConstant = 2.2

// Detector is a decoupled peak detector. The rectified input pulls the
// envelope up with the attack factor and lets it fall with the release factor.
type Detector struct {
	sampleRate  float64
	attackTime  float64 // seconds
	releaseTime float64 // seconds

	attackFactor  float64
	releaseFactor float64

	envelope float64
}

// NewDetector creates a peak detector. Attack and release times are in
// seconds, the sample rate in Hz. The envelope starts at zero.
func NewDetector(sampleRate, attackTime, releaseTime float64) *Detector {
	d := &Detector{
		sampleRate:  sampleRate,
		attackTime:  attackTime,
		releaseTime: releaseTime,
	}
	d.calculateFactors()

	return d
}

// smoothingFactor returns 1 - exp(-2.2 / (time·sampleRate)).
func smoothingFactor(time, sampleRate float64) float64 {
	return 1 - math.Exp(-riseTimeConstant/(time*sampleRate))
}

func (d *Detector) calculateFactors() {
	d.attackFactor = smoothingFactor(d.attackTime, d.sampleRate)
	d.releaseFactor = smoothingFactor(d.releaseTime, d.sampleRate)
}

// SetSampleRate updates the sample rate. Equal values are ignored.
func (d *Detector) SetSampleRate(sampleRate float64) {
	if sampleRate == d.sampleRate {
		return
	}

	d.sampleRate = sampleRate
	d.calculateFactors()
}

// SetAttackTime updates the attack time in seconds. Equal values are ignored.
func (d *Detector) SetAttackTime(attackTime float64) {
	if attackTime == d.attackTime {
		return
	}

	d.attackTime = attackTime
	d.calculateFactors()
}

// SetReleaseTime updates the release time in seconds. Equal values are ignored.
func (d *Detector) SetReleaseTime(releaseTime float64) {
	if releaseTime == d.releaseTime {
		return
	}

	d.releaseTime = releaseTime
	d.calculateFactors()
}

// SampleRate returns the sample rate in Hz.
func (d *Detector) SampleRate() float64 { return d.sampleRate }

// AttackTime returns the attack time in seconds.
func (d *Detector) AttackTime() float64 { return d.attackTime }

// ReleaseTime returns the release time in seconds.
func (d *Detector) ReleaseTime() float64 { return d.releaseTime }

// Envelope returns the last detector output.
func (d *Detector) Envelope() float64 { return d.envelope }

// Reset sets the envelope back to zero.
func (d *Detector) Reset() { d.envelope = 0 }

// ProcessSample feeds one sample and returns the new envelope. A NaN
// envelope is replaced by zero so a single bad sample cannot latch the
// detector.
func (d *Detector) ProcessSample(input float64) float64 {
	x := math.Abs(input)

	k := d.releaseFactor
	if x > d.envelope {
		k = d.attackFactor
	}

	d.envelope += k * (x - d.envelope)

	if math.IsNaN(d.envelope) {
		d.envelope = 0
	}

	return d.envelope
}

// ProcessBlock replaces every sample of buf with the detector envelope.
func (d *Detector) ProcessBlock(buf []float64) {
	for i, x := range buf {
		buf[i] = d.ProcessSample(x)
	}
}
