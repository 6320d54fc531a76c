package keymap

type keyEntry struct {
	code      Keycode
	native    string
	canonical string
}

// keyTable lists every SDL2 keycode in enumeration order. Keys without a
// canonical equivalent carry an empty name.
var keyTable = []keyEntry{
	{SDLK_UNKNOWN, "SDLK_UNKNOWN", ""},
	{SDLK_RETURN, "SDLK_RETURN", "Key_Enter"},
	{SDLK_ESCAPE, "SDLK_ESCAPE", "Key_Escape"},
	{SDLK_BACKSPACE, "SDLK_BACKSPACE", "Key_Backspace"},
	{SDLK_TAB, "SDLK_TAB", "Key_Tab"},
	{SDLK_SPACE, "SDLK_SPACE", "Key_Space"},
	{SDLK_EXCLAIM, "SDLK_EXCLAIM", ""},
	{SDLK_QUOTEDBL, "SDLK_QUOTEDBL", ""},
	{SDLK_HASH, "SDLK_HASH", ""},
	{SDLK_PERCENT, "SDLK_PERCENT", ""},
	{SDLK_DOLLAR, "SDLK_DOLLAR", ""},
	{SDLK_AMPERSAND, "SDLK_AMPERSAND", ""},
	{SDLK_QUOTE, "SDLK_QUOTE", ""},
	{SDLK_LEFTPAREN, "SDLK_LEFTPAREN", ""},
	{SDLK_RIGHTPAREN, "SDLK_RIGHTPAREN", ""},
	{SDLK_ASTERISK, "SDLK_ASTERISK", ""},
	{SDLK_PLUS, "SDLK_PLUS", ""},
	{SDLK_COMMA, "SDLK_COMMA", "Key_Comma"},
	{SDLK_MINUS, "SDLK_MINUS", "Key_Minus"},
	{SDLK_PERIOD, "SDLK_PERIOD", "Key_Period"},
	{SDLK_SLASH, "SDLK_SLASH", "Key_Slash"},
	{SDLK_0, "SDLK_0", "Key_0"},
	{SDLK_1, "SDLK_1", "Key_1"},
	{SDLK_2, "SDLK_2", "Key_2"},
	{SDLK_3, "SDLK_3", "Key_3"},
	{SDLK_4, "SDLK_4", "Key_4"},
	{SDLK_5, "SDLK_5", "Key_5"},
	{SDLK_6, "SDLK_6", "Key_6"},
	{SDLK_7, "SDLK_7", "Key_7"},
	{SDLK_8, "SDLK_8", "Key_8"},
	{SDLK_9, "SDLK_9", "Key_9"},
	{SDLK_COLON, "SDLK_COLON", ""},
	{SDLK_SEMICOLON, "SDLK_SEMICOLON", "Key_Semicolon"},
	{SDLK_LESS, "SDLK_LESS", ""},
	{SDLK_EQUALS, "SDLK_EQUALS", ""},
	{SDLK_GREATER, "SDLK_GREATER", ""},
	{SDLK_QUESTION, "SDLK_QUESTION", ""},
	{SDLK_AT, "SDLK_AT", ""},
	{SDLK_LEFTBRACKET, "SDLK_LEFTBRACKET", ""},
	{SDLK_BACKSLASH, "SDLK_BACKSLASH", ""},
	{SDLK_RIGHTBRACKET, "SDLK_RIGHTBRACKET", ""},
	{SDLK_CARET, "SDLK_CARET", ""},
	{SDLK_UNDERSCORE, "SDLK_UNDERSCORE", ""},
	{SDLK_BACKQUOTE, "SDLK_BACKQUOTE", ""},
	{SDLK_a, "SDLK_a", "Key_A"},
	{SDLK_b, "SDLK_b", "Key_B"},
	{SDLK_c, "SDLK_c", "Key_C"},
	{SDLK_d, "SDLK_d", "Key_D"},
	{SDLK_e, "SDLK_e", "Key_E"},
	{SDLK_f, "SDLK_f", "Key_F"},
	{SDLK_g, "SDLK_g", "Key_G"},
	{SDLK_h, "SDLK_h", "Key_H"},
	{SDLK_i, "SDLK_i", "Key_I"},
	{SDLK_j, "SDLK_j", "Key_J"},
	{SDLK_k, "SDLK_k", "Key_K"},
	{SDLK_l, "SDLK_l", "Key_L"},
	{SDLK_m, "SDLK_m", "Key_M"},
	{SDLK_n, "SDLK_n", "Key_N"},
	{SDLK_o, "SDLK_o", "Key_O"},
	{SDLK_p, "SDLK_p", "Key_P"},
	{SDLK_q, "SDLK_q", "Key_Q"},
	{SDLK_r, "SDLK_r", "Key_R"},
	{SDLK_s, "SDLK_s", "Key_S"},
	{SDLK_t, "SDLK_t", "Key_T"},
	{SDLK_u, "SDLK_u", "Key_U"},
	{SDLK_v, "SDLK_v", "Key_V"},
	{SDLK_w, "SDLK_w", "Key_W"},
	{SDLK_x, "SDLK_x", "Key_X"},
	{SDLK_y, "SDLK_y", "Key_Y"},
	{SDLK_z, "SDLK_z", "Key_Z"},
	{SDLK_DELETE, "SDLK_DELETE", "Key_Delete"},
	{SDLK_CAPSLOCK, "SDLK_CAPSLOCK", "Key_CapsLock"},
	{SDLK_F1, "SDLK_F1", "Key_F1"},
	{SDLK_F2, "SDLK_F2", "Key_F2"},
	{SDLK_F3, "SDLK_F3", "Key_F3"},
	{SDLK_F4, "SDLK_F4", "Key_F4"},
	{SDLK_F5, "SDLK_F5", "Key_F5"},
	{SDLK_F6, "SDLK_F6", "Key_F6"},
	{SDLK_F7, "SDLK_F7", "Key_F7"},
	{SDLK_F8, "SDLK_F8", "Key_F8"},
	{SDLK_F9, "SDLK_F9", "Key_F9"},
	{SDLK_F10, "SDLK_F10", "Key_F10"},
	{SDLK_F11, "SDLK_F11", "Key_F11"},
	{SDLK_F12, "SDLK_F12", "Key_F12"},
	{SDLK_PRINTSCREEN, "SDLK_PRINTSCREEN", ""},
	{SDLK_SCROLLLOCK, "SDLK_SCROLLLOCK", ""},
	{SDLK_PAUSE, "SDLK_PAUSE", "Key_Pause"},
	{SDLK_INSERT, "SDLK_INSERT", "Key_Insert"},
	{SDLK_HOME, "SDLK_HOME", "Key_Home"},
	{SDLK_PAGEUP, "SDLK_PAGEUP", "Key_PageUp"},
	{SDLK_END, "SDLK_END", "Key_End"},
	{SDLK_PAGEDOWN, "SDLK_PAGEDOWN", "Key_PageDown"},
	{SDLK_RIGHT, "SDLK_RIGHT", "Key_RightArrow"},
	{SDLK_LEFT, "SDLK_LEFT", "Key_LeftArrow"},
	{SDLK_DOWN, "SDLK_DOWN", "Key_DownArrow"},
	{SDLK_UP, "SDLK_UP", "Key_UpArrow"},
	{SDLK_NUMLOCKCLEAR, "SDLK_NUMLOCKCLEAR", ""},
	{SDLK_KP_DIVIDE, "SDLK_KP_DIVIDE", "Key_KeypadDivide"},
	{SDLK_KP_MULTIPLY, "SDLK_KP_MULTIPLY", "Key_KeypadMultiply"},
	{SDLK_KP_MINUS, "SDLK_KP_MINUS", "Key_KeypadSubtract"},
	{SDLK_KP_PLUS, "SDLK_KP_PLUS", "Key_KeypadAdd"},
	{SDLK_KP_ENTER, "SDLK_KP_ENTER", "Key_KeypadEnter"},
	{SDLK_KP_1, "SDLK_KP_1", "Key_Keypad1"},
	{SDLK_KP_2, "SDLK_KP_2", "Key_Keypad2"},
	{SDLK_KP_3, "SDLK_KP_3", "Key_Keypad3"},
	{SDLK_KP_4, "SDLK_KP_4", "Key_Keypad4"},
	{SDLK_KP_5, "SDLK_KP_5", "Key_Keypad5"},
	{SDLK_KP_6, "SDLK_KP_6", "Key_Keypad6"},
	{SDLK_KP_7, "SDLK_KP_7", "Key_Keypad7"},
	{SDLK_KP_8, "SDLK_KP_8", "Key_Keypad8"},
	{SDLK_KP_9, "SDLK_KP_9", "Key_Keypad9"},
	{SDLK_KP_0, "SDLK_KP_0", "Key_Keypad0"},
	{SDLK_KP_PERIOD, "SDLK_KP_PERIOD", "Key_KeypadDecimal"},
	{SDLK_APPLICATION, "SDLK_APPLICATION", ""},
	{SDLK_POWER, "SDLK_POWER", ""},
	{SDLK_KP_EQUALS, "SDLK_KP_EQUALS", "Key_KeypadEqual"},
	{SDLK_F13, "SDLK_F13", "Key_F13"},
	{SDLK_F14, "SDLK_F14", "Key_F14"},
	{SDLK_F15, "SDLK_F15", "Key_F15"},
	{SDLK_F16, "SDLK_F16", "Key_F16"},
	{SDLK_F17, "SDLK_F17", "Key_F17"},
	{SDLK_F18, "SDLK_F18", "Key_F18"},
	{SDLK_F19, "SDLK_F19", "Key_F19"},
	{SDLK_F20, "SDLK_F20", "Key_F20"},
	{SDLK_F21, "SDLK_F21", "Key_F21"},
	{SDLK_F22, "SDLK_F22", "Key_F22"},
	{SDLK_F23, "SDLK_F23", "Key_F23"},
	{SDLK_F24, "SDLK_F24", "Key_F24"},
	{SDLK_EXECUTE, "SDLK_EXECUTE", ""},
	{SDLK_HELP, "SDLK_HELP", ""},
	{SDLK_MENU, "SDLK_MENU", "Key_Menu"},
	{SDLK_SELECT, "SDLK_SELECT", ""},
	{SDLK_STOP, "SDLK_STOP", ""},
	{SDLK_AGAIN, "SDLK_AGAIN", ""},
	{SDLK_UNDO, "SDLK_UNDO", ""},
	{SDLK_CUT, "SDLK_CUT", ""},
	{SDLK_COPY, "SDLK_COPY", ""},
	{SDLK_PASTE, "SDLK_PASTE", ""},
	{SDLK_FIND, "SDLK_FIND", ""},
	{SDLK_MUTE, "SDLK_MUTE", ""},
	{SDLK_VOLUMEUP, "SDLK_VOLUMEUP", ""},
	{SDLK_VOLUMEDOWN, "SDLK_VOLUMEDOWN", ""},
	{SDLK_KP_COMMA, "SDLK_KP_COMMA", ""},
	{SDLK_KP_EQUALSAS400, "SDLK_KP_EQUALSAS400", ""},
	{SDLK_ALTERASE, "SDLK_ALTERASE", ""},
	{SDLK_SYSREQ, "SDLK_SYSREQ", ""},
	{SDLK_CANCEL, "SDLK_CANCEL", ""},
	{SDLK_CLEAR, "SDLK_CLEAR", ""},
	{SDLK_PRIOR, "SDLK_PRIOR", ""},
	{SDLK_RETURN2, "SDLK_RETURN2", ""},
	{SDLK_SEPARATOR, "SDLK_SEPARATOR", ""},
	{SDLK_OUT, "SDLK_OUT", ""},
	{SDLK_OPER, "SDLK_OPER", ""},
	{SDLK_CLEARAGAIN, "SDLK_CLEARAGAIN", ""},
	{SDLK_CRSEL, "SDLK_CRSEL", ""},
	{SDLK_EXSEL, "SDLK_EXSEL", ""},
	{SDLK_KP_00, "SDLK_KP_00", ""},
	{SDLK_KP_000, "SDLK_KP_000", ""},
	{SDLK_THOUSANDSSEPARATOR, "SDLK_THOUSANDSSEPARATOR", ""},
	{SDLK_DECIMALSEPARATOR, "SDLK_DECIMALSEPARATOR", ""},
	{SDLK_CURRENCYUNIT, "SDLK_CURRENCYUNIT", ""},
	{SDLK_CURRENCYSUBUNIT, "SDLK_CURRENCYSUBUNIT", ""},
	{SDLK_KP_LEFTPAREN, "SDLK_KP_LEFTPAREN", ""},
	{SDLK_KP_RIGHTPAREN, "SDLK_KP_RIGHTPAREN", ""},
	{SDLK_KP_LEFTBRACE, "SDLK_KP_LEFTBRACE", ""},
	{SDLK_KP_RIGHTBRACE, "SDLK_KP_RIGHTBRACE", ""},
	{SDLK_KP_TAB, "SDLK_KP_TAB", ""},
	{SDLK_KP_BACKSPACE, "SDLK_KP_BACKSPACE", ""},
	{SDLK_KP_A, "SDLK_KP_A", ""},
	{SDLK_KP_B, "SDLK_KP_B", ""},
	{SDLK_KP_C, "SDLK_KP_C", ""},
	{SDLK_KP_D, "SDLK_KP_D", ""},
	{SDLK_KP_E, "SDLK_KP_E", ""},
	{SDLK_KP_F, "SDLK_KP_F", ""},
	{SDLK_KP_XOR, "SDLK_KP_XOR", ""},
	{SDLK_KP_POWER, "SDLK_KP_POWER", ""},
	{SDLK_KP_PERCENT, "SDLK_KP_PERCENT", ""},
	{SDLK_KP_LESS, "SDLK_KP_LESS", ""},
	{SDLK_KP_GREATER, "SDLK_KP_GREATER", ""},
	{SDLK_KP_AMPERSAND, "SDLK_KP_AMPERSAND", ""},
	{SDLK_KP_DBLAMPERSAND, "SDLK_KP_DBLAMPERSAND", ""},
	{SDLK_KP_VERTICALBAR, "SDLK_KP_VERTICALBAR", ""},
	{SDLK_KP_DBLVERTICALBAR, "SDLK_KP_DBLVERTICALBAR", ""},
	{SDLK_KP_COLON, "SDLK_KP_COLON", ""},
	{SDLK_KP_HASH, "SDLK_KP_HASH", ""},
	{SDLK_KP_SPACE, "SDLK_KP_SPACE", ""},
	{SDLK_KP_AT, "SDLK_KP_AT", ""},
	{SDLK_KP_EXCLAM, "SDLK_KP_EXCLAM", ""},
	{SDLK_KP_MEMSTORE, "SDLK_KP_MEMSTORE", ""},
	{SDLK_KP_MEMRECALL, "SDLK_KP_MEMRECALL", ""},
	{SDLK_KP_MEMCLEAR, "SDLK_KP_MEMCLEAR", ""},
	{SDLK_KP_MEMADD, "SDLK_KP_MEMADD", ""},
	{SDLK_KP_MEMSUBTRACT, "SDLK_KP_MEMSUBTRACT", ""},
	{SDLK_KP_MEMMULTIPLY, "SDLK_KP_MEMMULTIPLY", ""},
	{SDLK_KP_MEMDIVIDE, "SDLK_KP_MEMDIVIDE", ""},
	{SDLK_KP_PLUSMINUS, "SDLK_KP_PLUSMINUS", ""},
	{SDLK_KP_CLEAR, "SDLK_KP_CLEAR", ""},
	{SDLK_KP_CLEARENTRY, "SDLK_KP_CLEARENTRY", ""},
	{SDLK_KP_BINARY, "SDLK_KP_BINARY", ""},
	{SDLK_KP_OCTAL, "SDLK_KP_OCTAL", ""},
	{SDLK_KP_DECIMAL, "SDLK_KP_DECIMAL", ""},
	{SDLK_KP_HEXADECIMAL, "SDLK_KP_HEXADECIMAL", ""},
	{SDLK_LCTRL, "SDLK_LCTRL", "Key_LeftCtrl"},
	{SDLK_LSHIFT, "SDLK_LSHIFT", "Key_LeftShift"},
	{SDLK_LALT, "SDLK_LALT", "Key_LeftAlt"},
	{SDLK_LGUI, "SDLK_LGUI", "Key_LeftSuper"},
	{SDLK_RCTRL, "SDLK_RCTRL", "Key_RightCtrl"},
	{SDLK_RSHIFT, "SDLK_RSHIFT", "Key_RightShift"},
	{SDLK_RALT, "SDLK_RALT", "Key_RightAlt"},
	{SDLK_RGUI, "SDLK_RGUI", "Key_RightSuper"},
	{SDLK_MODE, "SDLK_MODE", ""},
	{SDLK_AUDIONEXT, "SDLK_AUDIONEXT", ""},
	{SDLK_AUDIOPREV, "SDLK_AUDIOPREV", ""},
	{SDLK_AUDIOSTOP, "SDLK_AUDIOSTOP", ""},
	{SDLK_AUDIOPLAY, "SDLK_AUDIOPLAY", ""},
	{SDLK_AUDIOMUTE, "SDLK_AUDIOMUTE", ""},
	{SDLK_MEDIASELECT, "SDLK_MEDIASELECT", ""},
	{SDLK_WWW, "SDLK_WWW", ""},
	{SDLK_MAIL, "SDLK_MAIL", ""},
	{SDLK_CALCULATOR, "SDLK_CALCULATOR", ""},
	{SDLK_COMPUTER, "SDLK_COMPUTER", ""},
	{SDLK_AC_SEARCH, "SDLK_AC_SEARCH", ""},
	{SDLK_AC_HOME, "SDLK_AC_HOME", ""},
	{SDLK_AC_BACK, "SDLK_AC_BACK", "Key_AppBack"},
	{SDLK_AC_FORWARD, "SDLK_AC_FORWARD", "Key_AppForward"},
	{SDLK_AC_STOP, "SDLK_AC_STOP", ""},
	{SDLK_AC_REFRESH, "SDLK_AC_REFRESH", ""},
	{SDLK_AC_BOOKMARKS, "SDLK_AC_BOOKMARKS", ""},
	{SDLK_BRIGHTNESSDOWN, "SDLK_BRIGHTNESSDOWN", ""},
	{SDLK_BRIGHTNESSUP, "SDLK_BRIGHTNESSUP", ""},
	{SDLK_DISPLAYSWITCH, "SDLK_DISPLAYSWITCH", ""},
	{SDLK_KBDILLUMTOGGLE, "SDLK_KBDILLUMTOGGLE", ""},
	{SDLK_KBDILLUMDOWN, "SDLK_KBDILLUMDOWN", ""},
	{SDLK_KBDILLUMUP, "SDLK_KBDILLUMUP", ""},
	{SDLK_EJECT, "SDLK_EJECT", ""},
	{SDLK_SLEEP, "SDLK_SLEEP", ""},
	{SDLK_APP1, "SDLK_APP1", ""},
	{SDLK_APP2, "SDLK_APP2", ""},
	{SDLK_AUDIOREWIND, "SDLK_AUDIOREWIND", ""},
	{SDLK_AUDIOFASTFORWARD, "SDLK_AUDIOFASTFORWARD", ""},
	{SDLK_SOFTLEFT, "SDLK_SOFTLEFT", ""},
	{SDLK_SOFTRIGHT, "SDLK_SOFTRIGHT", ""},
	{SDLK_CALL, "SDLK_CALL", ""},
	{SDLK_ENDCALL, "SDLK_ENDCALL", ""},
}
