package iir

import (
	"fmt"

	"github.com/go-audio/audio"
)

// ProcessFloatBuffer filters the samples of a mono go-audio buffer in place.
// A buffer without Format is accepted as mono at the filter's sample rate.
func (f *Filter) ProcessFloatBuffer(buf *audio.FloatBuffer) error {
	if err := checkFloatBuffer(buf, f.params.SampleRate); err != nil {
		return err
	}

	if buf != nil {
		f.ProcessBlock(buf.Data)
	}

	return nil
}

// ProcessFloatBuffer runs a mono go-audio buffer through the chain in place.
func (b *Bank) ProcessFloatBuffer(buf *audio.FloatBuffer) error {
	for _, f := range b.filters {
		if err := checkFloatBuffer(buf, f.params.SampleRate); err != nil {
			return err
		}
	}

	if buf != nil {
		b.ProcessBlock(buf.Data)
	}

	return nil
}

func checkFloatBuffer(buf *audio.FloatBuffer, sampleRate float64) error {
	if buf == nil || buf.Format == nil {
		return nil
	}

	if buf.Format.NumChannels > 1 {
		return fmt.Errorf("%w: got %d channels", ErrNotMono, buf.Format.NumChannels)
	}

	if buf.Format.SampleRate > 0 && float64(buf.Format.SampleRate) != sampleRate {
		return fmt.Errorf("%w: buffer %d Hz, filter %g Hz", ErrSampleRateMismatch, buf.Format.SampleRate, sampleRate)
	}

	return nil
}
