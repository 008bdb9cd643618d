package core

import (
	"math"
	"testing"
)

func TestDBConstruction(t *testing.T) {
	if got := NewDB(12.3).DB(); got != 12.3 {
		t.Fatalf("NewDB(12.3).DB() = %v", got)
	}

	if got := NewDB(-34.55).DB(); got != -34.55 {
		t.Fatalf("NewDB(-34.55).DB() = %v", got)
	}

	var zero DB
	if got := zero.DB(); got != 0 {
		t.Fatalf("zero value DB() = %v, want 0", got)
	}
}

func TestDBFromLinearGain(t *testing.T) {
	tests := []struct {
		name string
		gain float64
		want float64
	}{
		{name: "20 dB down", gain: 0.1, want: -20},
		{name: "3 dB down", gain: math.Sqrt(0.5), want: -3.01},
		{name: "20 dB up", gain: 10, want: 20},
		{name: "3 dB up", gain: math.Sqrt2, want: 3.01},
		{name: "negative gain rectified", gain: -10, want: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DBFromLinearGain(tt.gain).DB()
			if math.Abs(got-tt.want) > 0.001 {
				t.Fatalf("DBFromLinearGain(%v) = %v, want %v", tt.gain, got, tt.want)
			}
		})
	}

	if got := DBFromLinearGain(1).DB(); got != 0 {
		t.Fatalf("DBFromLinearGain(1) = %v, want exactly 0", got)
	}
}

func TestDBFromPowerGain(t *testing.T) {
	tests := []struct {
		name string
		gain float64
		want float64
	}{
		{name: "20 dB down", gain: 0.01, want: -20},
		{name: "3 dB down", gain: 0.5, want: -3.01},
		{name: "20 dB up", gain: 100, want: 20},
		{name: "3 dB up", gain: 2, want: 3.01},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DBFromPowerGain(tt.gain).DB()
			if math.Abs(got-tt.want) > 0.001 {
				t.Fatalf("DBFromPowerGain(%v) = %v, want %v", tt.gain, got, tt.want)
			}
		})
	}

	if got := DBFromPowerGain(1).DB(); got != 0 {
		t.Fatalf("DBFromPowerGain(1) = %v, want exactly 0", got)
	}
}

func TestDBAsGain(t *testing.T) {
	tests := []struct {
		dB     float64
		linear float64
		power  float64
	}{
		{dB: -3.01, linear: math.Sqrt(0.5), power: 0.5},
		{dB: -20, linear: 0.1, power: 0.01},
		{dB: 3.01, linear: math.Sqrt2, power: 2},
		{dB: 20, linear: 10, power: 100},
	}

	for _, tt := range tests {
		d := NewDB(tt.dB)
		if got := d.LinearGain(); math.Abs(got-tt.linear) > 0.001 {
			t.Fatalf("NewDB(%v).LinearGain() = %v, want %v", tt.dB, got, tt.linear)
		}

		if got := d.PowerGain(); math.Abs(got-tt.power) > 0.001 {
			t.Fatalf("NewDB(%v).PowerGain() = %v, want %v", tt.dB, got, tt.power)
		}
	}

	if NewDB(0).LinearGain() != 1 || NewDB(0).PowerGain() != 1 {
		t.Fatal("0 dB must map to exactly unity gain")
	}
}

func TestDBLinearRoundTrip(t *testing.T) {
	for _, v := range []float64{-96, -12.5, -0.1, 0, 0.7, 9, 48} {
		got := DBFromLinearGain(NewDB(v).LinearGain()).DB()
		if math.Abs(got-v) > 1e-9 {
			t.Fatalf("round trip of %v dB = %v", v, got)
		}
	}
}

func TestDBNeg(t *testing.T) {
	d := NewDB(9)
	if got := d.Neg().DB(); got != -9 {
		t.Fatalf("Neg() = %v, want -9", got)
	}

	if d.Neg().Neg() != d {
		t.Fatal("double negation must restore the value")
	}

	if d.DB() != 9 {
		t.Fatal("Neg must not mutate the receiver")
	}
}

func TestDBString(t *testing.T) {
	if got := NewDB(-6).String(); got != "-6 dB" {
		t.Fatalf("String() = %q, want %q", got, "-6 dB")
	}
}
