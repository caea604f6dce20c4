// Package analysis summarizes per-frame metric series from captures.
//
//   - [PowerSpectrum]: magnitude spectrum of a mean-removed series
//   - [DominantPeriod]: strongest repeat interval, in frames
//   - [Summarize]: mean, spread and range
//
// Deterministic patterns repeat: arcs coverage cycles every ring step and
// the checker scrolls with a fixed period, so the dominant period of a
// coverage capture recovers those intervals.
package analysis
