// Package keymap normalizes native SDL2 key codes and modifier masks into
// the portable key names and modifier bits carried on the wire.
package keymap

import "fmt"

var (
	canonicalNames map[Keycode]string
	nativeNames    map[Keycode]string
	nativeCodes    map[string]Keycode
)

func init() {
	canonicalNames = make(map[Keycode]string, len(keyTable))
	nativeNames = make(map[Keycode]string, len(keyTable))
	nativeCodes = make(map[string]Keycode, len(keyTable))
	for _, e := range keyTable {
		if _, dup := canonicalNames[e.code]; dup {
			panic(fmt.Sprintf("keymap: duplicate keycode %#x (%s)", uint32(e.code), e.native))
		}
		canonicalNames[e.code] = e.canonical
		nativeNames[e.code] = e.native
		nativeCodes[e.native] = e.code
	}
}

// Translate returns the canonical key name for a native keycode, e.g.
// "Key_Enter" for SDLK_RETURN. Keys with no canonical equivalent, including
// codes SDL does not define, yield "".
func Translate(code Keycode) string {
	return canonicalNames[code]
}

// KeyName returns the SDL symbolic name of a keycode ("SDLK_RETURN"), or a
// hex form for codes outside the enumeration.
func KeyName(code Keycode) string {
	if name, ok := nativeNames[code]; ok {
		return name
	}
	return fmt.Sprintf("SDLK_%#x", uint32(code))
}

// Lookup returns the keycode for an SDL symbolic name such as "SDLK_RETURN".
func Lookup(name string) (Keycode, bool) {
	code, ok := nativeCodes[name]
	return code, ok
}

// Keycodes returns every SDL2 keycode in enumeration order.
func Keycodes() []Keycode {
	out := make([]Keycode, len(keyTable))
	for i, e := range keyTable {
		out[i] = e.code
	}
	return out
}
