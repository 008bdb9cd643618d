// Package signal generates deterministic test signals and measures their
// energy. It is used by the filter and dynamics tests and by the dsptkinfo
// command to drive processors with sines and steps and compare levels.
package signal
