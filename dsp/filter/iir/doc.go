// Package iir provides low-order recursive audio filters that process one
// scalar stream sample by sample.
//
// Every filter is a [Filter] value tagged with a [Kind]:
//
//   - KindLowPass, KindHighPass: single-pole filters with b1 = exp(-2π·f/fs).
//   - KindDCBlocker: fixed-pole DC removal, R = 1 - 2π·f/fs.
//   - KindBandPass, KindBandReject: two-pole resonators parameterized by
//     center frequency and bandwidth.
//   - KindParametric: second-order peak/notch equalizer (direct form II).
//   - KindLowShelf, KindHighShelf: first-order shelving equalizers.
//
// Coefficients are computed at construction and recomputed immediately by the
// Update methods whenever a parameter actually changes. Updating a parameter to
// its current value is a no-op. Filter state is never cleared by an update, so
// changing parameters mid-stream can produce a short transient; call
// [Filter.Reset] to start from silence.
//
// Constructors and ProcessSample perform no validation. Use [Validate] or the
// checked constructor [New] when parameters come from untrusted input.
//
// A Filter is not safe for concurrent use. Use one instance per stream.
//
// [Bank] chains filters in series.
package iir
