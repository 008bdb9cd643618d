// Package dynamics provides the building blocks of a feed-forward compressor.
//
// Included processors:
//   - Detector: decoupled peak detector with independent attack and release
//     times, measured as 10 % to 90 % rise and fall times.
//   - GainReductionComputer: static gain curve in the dB domain with a
//     quadratic soft knee.
//   - Compressor: log-domain control path (gain curve, detector smoothing of
//     the reduction) driving a linear VCA stage, with an optional sidechain.
//
// Processors are mono and not safe for concurrent use. Parameter setters do
// not clear the running state.
package dynamics
