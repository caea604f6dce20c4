// Package patterns implements the seven procedural pixel patterns.
//
// Each pattern implements [Pattern]: it clears the surface and redraws a
// full frame from the frame counter and the density parameter.
//
//   - [Star]: rotating spokes (index 0)
//   - [Arcs]: concentric ring fragments shifting outward (index 1)
//   - [Noise]: random dots fading from the center (index 2)
//   - [Mirror]: horizontally mirrored random dots (index 3)
//   - [Spiral]: trigonometric swirl (index 4)
//   - [Checker]: scrolling checkered wave (index 5)
//   - [Sunburst]: pulsing rays and rings (index 6)
//
// # Randomness
//
// [Mirror] and [Noise] draw from a shared [Source]. Mirror reads the
// persistent stream, so its output changes between frames only because the
// stream advances. Noise rekeys the generator from the clock and frame on
// every call.
//
// # Numerics
//
// Trigonometry is evaluated in float64 and narrowed to float32 at the same
// points a single-precision implementation would round. Arcs round half up;
// every other pattern truncates toward zero. Changing either rule changes the
// rendered pixels at small radii.
package patterns
