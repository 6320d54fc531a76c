package keymap

import "strings"

// Modifiers is the portable 12-bit modifier mask. Bits 12..15 are unused.
type Modifiers uint16

// Modifier bit positions.
const (
	LeftShift Modifiers = 1 << iota
	RightShift
	LeftCtrl
	RightCtrl
	LeftAlt
	RightAlt
	LeftSuper
	RightSuper
	NumLock
	CapsLock
	Mode
	ScrollLock
)

// ModifierMask covers every defined modifier bit.
const ModifierMask Modifiers = 0x0FFF

type modifierBit struct {
	native Keymod
	bit    Modifiers
	name   string
}

// modifierBits is folded in order over the native mask. Left and right
// variants stay independent.
var modifierBits = []modifierBit{
	{KMOD_LSHIFT, LeftShift, "LeftShift"},
	{KMOD_RSHIFT, RightShift, "RightShift"},
	{KMOD_LCTRL, LeftCtrl, "LeftCtrl"},
	{KMOD_RCTRL, RightCtrl, "RightCtrl"},
	{KMOD_LALT, LeftAlt, "LeftAlt"},
	{KMOD_RALT, RightAlt, "RightAlt"},
	{KMOD_LGUI, LeftSuper, "LeftSuper"},
	{KMOD_RGUI, RightSuper, "RightSuper"},
	{KMOD_NUM, NumLock, "NumLock"},
	{KMOD_CAPS, CapsLock, "CapsLock"},
	{KMOD_MODE, Mode, "Mode"},
	{KMOD_SCROLL, ScrollLock, "ScrollLock"},
}

// PackModifiers repacks a native SDL modifier mask into the portable layout.
func PackModifiers(mod Keymod) Modifiers {
	var out Modifiers
	for _, m := range modifierBits {
		if mod&m.native != 0 {
			out |= m.bit
		}
	}
	return out
}

// Has reports whether every bit of m is set.
func (mods Modifiers) Has(m Modifiers) bool {
	return mods&m == m
}

func (mods Modifiers) String() string {
	if mods == 0 {
		return "None"
	}
	var names []string
	for _, m := range modifierBits {
		if mods&m.bit != 0 {
			names = append(names, m.name)
		}
	}
	return strings.Join(names, "|")
}
