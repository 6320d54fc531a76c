package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslateCoversEnumeration(t *testing.T) {
	codes := Keycodes()
	require.Len(t, codes, len(keyTable))

	seen := make(map[Keycode]bool, len(codes))
	for _, code := range codes {
		require.False(t, seen[code], "keycode %s listed twice", KeyName(code))
		seen[code] = true
		assert.True(t, known(code), "keycode %s missing from table", KeyName(code))
	}
}

func TestTranslateNames(t *testing.T) {
	cases := map[Keycode]string{
		SDLK_RETURN:      "Key_Enter",
		SDLK_ESCAPE:      "Key_Escape",
		SDLK_a:           "Key_A",
		SDLK_z:           "Key_Z",
		SDLK_0:           "Key_0",
		SDLK_F1:          "Key_F1",
		SDLK_F12:         "Key_F12",
		SDLK_F24:         "Key_F24",
		SDLK_LCTRL:       "Key_LeftCtrl",
		SDLK_RGUI:        "Key_RightSuper",
		SDLK_KP_PERIOD:   "Key_KeypadDecimal",
		SDLK_KP_EQUALS:   "Key_KeypadEqual",
		SDLK_UP:          "Key_UpArrow",
		SDLK_AC_BACK:     "Key_AppBack",
		SDLK_MENU:        "Key_Menu",
		SDLK_EXCLAIM:     "",
		SDLK_PRINTSCREEN: "",
		SDLK_SCROLLLOCK:  "",
		SDLK_AUDIOPLAY:   "",
		SDLK_PERCENT:     "",
	}
	for code, want := range cases {
		assert.Equal(t, want, Translate(code), KeyName(code))
	}
}

func TestTranslateUnknownCode(t *testing.T) {
	code := Keycode(0xDEAD)
	assert.False(t, known(code))
	assert.Equal(t, "", Translate(code))
	assert.Equal(t, "SDLK_0xdead", KeyName(code))
}

func TestScancodeDerivedKeycodes(t *testing.T) {
	assert.Equal(t, Keycode(0x40000039), SDLK_CAPSLOCK)
	assert.Equal(t, Keycode(0x400000E0), SDLK_LCTRL)
	assert.Equal(t, Keycode(0x40000122), SDLK_ENDCALL)
}

func TestPackModifiersZero(t *testing.T) {
	assert.Equal(t, Modifiers(0), PackModifiers(KMOD_NONE))
	assert.Equal(t, "None", PackModifiers(KMOD_NONE).String())
}

func TestPackModifiersSingleBits(t *testing.T) {
	cases := []struct {
		native Keymod
		bit    uint
	}{
		{KMOD_LSHIFT, 0},
		{KMOD_RSHIFT, 1},
		{KMOD_LCTRL, 2},
		{KMOD_RCTRL, 3},
		{KMOD_LALT, 4},
		{KMOD_RALT, 5},
		{KMOD_LGUI, 6},
		{KMOD_RGUI, 7},
		{KMOD_NUM, 8},
		{KMOD_CAPS, 9},
		{KMOD_MODE, 10},
		{KMOD_SCROLL, 11},
	}
	for _, tc := range cases {
		got := PackModifiers(tc.native)
		assert.Equal(t, Modifiers(1)<<tc.bit, got, "native %#04x", uint16(tc.native))
	}
}

func TestPackModifiersAllFlags(t *testing.T) {
	got := PackModifiers(Keymod(0xFFFF))
	assert.Equal(t, ModifierMask, got)
	assert.Zero(t, got&^ModifierMask, "bits 12..15 must stay clear")
}

func TestPackModifiersCombined(t *testing.T) {
	got := PackModifiers(KMOD_LSHIFT | KMOD_RCTRL | KMOD_CAPS)
	assert.True(t, got.Has(LeftShift|RightCtrl|CapsLock))
	assert.False(t, got.Has(RightAlt))
	assert.Equal(t, "LeftShift|RightCtrl|CapsLock", got.String())
}

func TestLookupByName(t *testing.T) {
	code, ok := Lookup("SDLK_KP_ENTER")
	require.True(t, ok)
	assert.Equal(t, SDLK_KP_ENTER, code)
	assert.Equal(t, "Key_KeypadEnter", Translate(code))

	_, ok = Lookup("SDLK_NOPE")
	assert.False(t, ok)
}

// known reports whether code is part of the SDL2 keycode enumeration.
func known(code Keycode) bool {
	_, ok := canonicalNames[code]
	return ok
}
