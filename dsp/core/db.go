package core

import (
	"math"
	"strconv"
)

// DB is an immutable decibel quantity. The zero value is 0 dB (unity gain).
type DB struct {
	value float64
}

// NewDB returns a DB holding the given decibel value.
func NewDB(dB float64) DB {
	return DB{value: dB}
}

// DBFromLinearGain converts an amplitude ratio to decibels (20*log10|g|).
func DBFromLinearGain(linearGain float64) DB {
	return DB{value: 20 * math.Log10(math.Abs(linearGain))}
}

// DBFromPowerGain converts a power ratio to decibels (10*log10|g|).
func DBFromPowerGain(powerGain float64) DB {
	return DB{value: 10 * math.Log10(math.Abs(powerGain))}
}

// DB returns the raw decibel value.
func (d DB) DB() float64 { return d.value }

// LinearGain returns the amplitude ratio 10^(dB/20).
func (d DB) LinearGain() float64 {
	return math.Pow(10, d.value/20)
}

// PowerGain returns the power ratio 10^(dB/10).
func (d DB) PowerGain() float64 {
	return math.Pow(10, d.value/10)
}

// Neg flips the sign, turning a boost into the matching cut.
func (d DB) Neg() DB {
	return DB{value: -d.value}
}

// String formats the value with a " dB" suffix.
func (d DB) String() string {
	return strconv.FormatFloat(d.value, 'g', -1, 64) + " dB"
}
