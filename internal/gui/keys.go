package gui

import rl "github.com/gen2brain/raylib-go/raylib"

// keyNames maps raylib keys to the terminal-style names used by the keymap.
var keyNames = []struct {
	key  int32
	name string
}{
	{rl.KeyEscape, "esc"},
	{rl.KeyBackspace, "backspace"},
	{rl.KeyEnter, "enter"},
	{rl.KeySpace, " "},
	{rl.KeyTab, "tab"},
	{rl.KeyRight, "right"},
	{rl.KeyLeft, "left"},
	{rl.KeyUp, "up"},
	{rl.KeyDown, "down"},
	{rl.KeyEqual, "+"},
	{rl.KeyKpAdd, "+"},
	{rl.KeyMinus, "-"},
	{rl.KeyKpSubtract, "-"},
}

// pressedKeys returns the names of keys pressed this frame. Letters are
// reported lowercase.
func pressedKeys(isPressed func(key int32) bool) []string {
	var names []string
	for _, k := range keyNames {
		if isPressed(k.key) {
			names = append(names, k.name)
		}
	}
	for key := int32(rl.KeyA); key <= rl.KeyZ; key++ {
		if isPressed(key) {
			names = append(names, string(rune('a'+key-rl.KeyA)))
		}
	}
	return names
}
