// Package surface defines the binary pixel target the pattern library draws
// into.
//
// The display is fixed at [Width] x [Height] pixels. A pixel is either on or
// off; there is no color or intensity.
//
//   - [Surface]: the drawing contract consumed by every pattern
//   - [Bitmap]: in-memory implementation used by all hosts and exporters
//
// Writes outside [0,Width) x [0,Height) are ignored, so patterns may attempt
// marginal out-of-range draws without checking bounds themselves.
package surface
