package iir

import (
	"fmt"
	"strings"
)

// Kind selects the filter topology and coefficient design.
type Kind int

const (
	// KindLowPass is a single-pole low-pass filter.
	KindLowPass Kind = iota
	// KindHighPass is a single-pole high-pass filter.
	KindHighPass
	// KindDCBlocker removes DC with a fixed pole close to z = 1.
	KindDCBlocker
	// KindBandPass is a two-pole resonator passing a band around the center frequency.
	KindBandPass
	// KindBandReject is the complementary notch of KindBandPass.
	KindBandReject
	// KindParametric boosts or cuts a band around the center frequency.
	KindParametric
	// KindLowShelf boosts or cuts everything below the cutoff frequency.
	KindLowShelf
	// KindHighShelf boosts or cuts everything above the cutoff frequency.
	KindHighShelf
)

var kindNames = [...]string{
	KindLowPass:    "lowpass",
	KindHighPass:   "highpass",
	KindDCBlocker:  "dcblocker",
	KindBandPass:   "bandpass",
	KindBandReject: "bandreject",
	KindParametric: "parametric",
	KindLowShelf:   "lowshelf",
	KindHighShelf:  "highshelf",
}

// Kinds returns all filter kinds in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, len(kindNames))
	for i := range kindNames {
		kinds[i] = Kind(i)
	}

	return kinds
}

func (k Kind) valid() bool {
	return k >= KindLowPass && k <= KindHighShelf
}

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	if !k.valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindNames[k]
}

// UsesBandwidth reports whether the coefficients depend on Params.Bandwidth.
func (k Kind) UsesBandwidth() bool {
	return k == KindBandPass || k == KindBandReject || k == KindParametric
}

// UsesGain reports whether the coefficients depend on Params.Gain.
func (k Kind) UsesGain() bool {
	return k == KindParametric || k == KindLowShelf || k == KindHighShelf
}

// ParseKind returns the Kind whose String matches name, ignoring case.
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}
