package iir

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-dsptk/dsp/core"
)

// Errors returned by the checked constructor, Validate and the adapters.
var (
	ErrUnknownKind        = errors.New("iir: unknown filter kind")
	ErrInvalidParams      = errors.New("iir: invalid filter parameters")
	ErrIndexOutOfRange    = errors.New("iir: bank index out of range")
	ErrNotMono            = errors.New("iir: buffer must have exactly one channel")
	ErrSampleRateMismatch = errors.New("iir: buffer sample rate does not match filter")
)

// Params is the configuration shared by every filter kind. Kinds ignore the
// fields they do not use (see Kind.UsesBandwidth and Kind.UsesGain).
type Params struct {
	Frequency  float64 // cutoff or center frequency in Hz
	SampleRate float64 // sample rate in Hz
	Bandwidth  float64 // bandwidth in Hz
	Gain       core.DB // boost (positive) or cut (negative)
}

// Validate checks p against the numeric range in which kind produces a
// stable, meaningful response. Filters never call it on their own.
func Validate(kind Kind, p Params) error {
	if !kind.valid() {
		return fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}

	if !core.IsFinite(p.SampleRate) || p.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be positive and finite: %f", ErrInvalidParams, p.SampleRate)
	}

	nyquist := p.SampleRate / 2
	if !core.IsFinite(p.Frequency) || p.Frequency <= 0 || p.Frequency >= nyquist {
		return fmt.Errorf("%w: %s frequency must be in (0, %f): %f", ErrInvalidParams, kind, nyquist, p.Frequency)
	}

	if kind.UsesBandwidth() {
		limit := nyquist
		if kind == KindBandPass || kind == KindBandReject {
			// The resonator pole radius 1 - 3·bw/fs must stay inside (0, 1).
			limit = p.SampleRate / 3
		}

		if !core.IsFinite(p.Bandwidth) || p.Bandwidth <= 0 || p.Bandwidth >= limit {
			return fmt.Errorf("%w: %s bandwidth must be in (0, %f): %f", ErrInvalidParams, kind, limit, p.Bandwidth)
		}
	}

	if kind.UsesGain() && !core.IsFinite(p.Gain.DB()) {
		return fmt.Errorf("%w: %s gain must be finite: %v", ErrInvalidParams, kind, p.Gain)
	}

	return nil
}
