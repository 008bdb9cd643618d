package iir

import (
	"testing"

	"github.com/cwbudde/algo-dsptk/dsp/core"
	"github.com/cwbudde/algo-dsptk/internal/testutil"
)

func BenchmarkFilterProcessBlock(b *testing.B) {
	buf := testutil.DeterministicNoise(1, 1, 1024)
	p := Params{Frequency: 1000, SampleRate: 48000, Bandwidth: 200, Gain: core.NewDB(6)}

	for _, kind := range Kinds() {
		b.Run(kind.String(), func(b *testing.B) {
			f := newFilter(kind, p)

			b.SetBytes(int64(len(buf) * 8))
			b.ResetTimer()

			for range b.N {
				f.ProcessBlock(buf)
			}
		})
	}
}

func BenchmarkBankProcessBlock(b *testing.B) {
	buf := testutil.DeterministicNoise(1, 1, 1024)
	bank := NewBank(
		NewDCBlocker(10, 48000),
		NewLowShelf(120, core.NewDB(3), 48000),
		NewParametric(1000, 200, core.NewDB(-4), 48000),
		NewHighShelf(8000, core.NewDB(2), 48000),
	)

	b.SetBytes(int64(len(buf) * 8))
	b.ResetTimer()

	for range b.N {
		bank.ProcessBlock(buf)
	}
}
