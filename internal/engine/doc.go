// Package engine holds the animation state machine.
//
//   - [State]: pattern index, density, frame counter and running flag
//     behind a single mutex
//   - [Controller]: maps input events to state changes and redraw requests
//   - [Dispatcher]: advances the frame counter and renders the selected
//     pattern
//   - [Engine]: the three wired together for a host
//
// # Thread Safety
//
// Hosts deliver ticks and input from independent sources. Controller and
// Dispatcher may be called from different goroutines; every read and write
// of the state goes through the State lock. Rendering itself runs outside
// that lock and is serialized by the Dispatcher.
//
// # Example
//
//	eng := engine.New(engine.Options{})
//	canvas := surface.NewBitmap()
//	for eng.State.Running() {
//	    eng.Dispatcher.Render(canvas)
//	    // present canvas, feed input to eng.Controller.Handle
//	}
package engine
