package dynamics

// GainReductionComputer maps a level in dB to a gain reduction in dB (zero
// or negative for ratios above 1). Below the knee nothing is reduced, above
// it the reduction follows the ratio, and inside the knee a quadratic blend
// joins both segments.
type GainReductionComputer struct {
	threshold float64 // dB
	ratio     float64
	kneeWidth float64 // dB

	kneeStart       float64
	kneeEnd         float64
	reductionFactor float64
}

// NewGainReductionComputer creates a gain curve with threshold and knee width
// in dB. A ratio of 4 means 4 dB of input above threshold yield 1 dB of output.
func NewGainReductionComputer(threshold, ratio, kneeWidth float64) *GainReductionComputer {
	g := &GainReductionComputer{
		threshold: threshold,
		ratio:     ratio,
		kneeWidth: kneeWidth,
	}
	g.calculateKneeLimits()
	g.calculateReductionFactor()

	return g
}

func (g *GainReductionComputer) calculateKneeLimits() {
	g.kneeStart = g.threshold - g.kneeWidth/2
	g.kneeEnd = g.threshold + g.kneeWidth/2
}

func (g *GainReductionComputer) calculateReductionFactor() {
	g.reductionFactor = (1 - g.ratio) / g.ratio
}

// Compute returns the gain reduction in dB for a level in dB.
// With a zero knee width the knee branch is never taken.
func (g *GainReductionComputer) Compute(level float64) float64 {
	switch {
	case level <= g.kneeStart:
		return 0
	case level < g.kneeEnd:
		delta := level - g.kneeStart
		factor := delta / g.kneeWidth

		return factor * factor * delta * g.reductionFactor
	default:
		return (level - g.threshold) * g.reductionFactor
	}
}

// SetThreshold updates the threshold in dB. Equal values are ignored.
func (g *GainReductionComputer) SetThreshold(threshold float64) {
	if threshold == g.threshold {
		return
	}

	g.threshold = threshold
	g.calculateKneeLimits()
}

// SetRatio updates the compression ratio. Equal values are ignored.
func (g *GainReductionComputer) SetRatio(ratio float64) {
	if ratio == g.ratio {
		return
	}

	g.ratio = ratio
	g.calculateReductionFactor()
}

// SetKneeWidth updates the knee width in dB. Equal values are ignored.
func (g *GainReductionComputer) SetKneeWidth(kneeWidth float64) {
	if kneeWidth == g.kneeWidth {
		return
	}

	g.kneeWidth = kneeWidth
	g.calculateKneeLimits()
}

// Threshold returns the threshold in dB.
func (g *GainReductionComputer) Threshold() float64 { return g.threshold }

// Ratio returns the compression ratio.
func (g *GainReductionComputer) Ratio() float64 { return g.ratio }

// KneeWidth returns the knee width in dB.
func (g *GainReductionComputer) KneeWidth() float64 { return g.kneeWidth }
