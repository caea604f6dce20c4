// Package viz is the terminal host for the kaleidoscope engine.
//
// The live view runs the engine inside a Bubble Tea program:
//
//   - [Model]: tick loop, key input and redraw requests
//   - [Canvas]: braille canvas, 2x4 display pixels per character
//   - Theme selection with 5 built-in tints
//
// # Key Bindings
//
// Engine keys come from the config keymap (defaults below). The remaining
// keys are handled by the view itself.
//
//	←/→   - Previous/next pattern
//	↑/↓   - Density up/down by 10
//	Q/Esc - Quit
//	T     - Cycle color themes
//	S     - Toggle the sidebar
//	?     - Show help overlay
package viz
