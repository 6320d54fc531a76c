package keymap

// Keycode is a native SDL2 virtual key code (SDL_Keycode).
type Keycode uint32

// Keymod is a native SDL2 modifier bitmask (SDL_Keymod).
type Keymod uint16

// scancodeMask marks keycodes that have no character and are derived from
// the physical scancode.
const scancodeMask = 1 << 30

// SDL2 keycodes, values from SDL_keycode.h.
const (
	SDLK_UNKNOWN Keycode = 0

	SDLK_RETURN     Keycode = '\r'
	SDLK_ESCAPE     Keycode = 0x1B
	SDLK_BACKSPACE  Keycode = '\b'
	SDLK_TAB        Keycode = '\t'
	SDLK_SPACE      Keycode = ' '
	SDLK_EXCLAIM    Keycode = '!'
	SDLK_QUOTEDBL   Keycode = '"'
	SDLK_HASH       Keycode = '#'
	SDLK_PERCENT    Keycode = '%'
	SDLK_DOLLAR     Keycode = '$'
	SDLK_AMPERSAND  Keycode = '&'
	SDLK_QUOTE      Keycode = '\''
	SDLK_LEFTPAREN  Keycode = '('
	SDLK_RIGHTPAREN Keycode = ')'
	SDLK_ASTERISK   Keycode = '*'
	SDLK_PLUS       Keycode = '+'
	SDLK_COMMA      Keycode = ','
	SDLK_MINUS      Keycode = '-'
	SDLK_PERIOD     Keycode = '.'
	SDLK_SLASH      Keycode = '/'
	SDLK_0          Keycode = '0'
	SDLK_1          Keycode = '1'
	SDLK_2          Keycode = '2'
	SDLK_3          Keycode = '3'
	SDLK_4          Keycode = '4'
	SDLK_5          Keycode = '5'
	SDLK_6          Keycode = '6'
	SDLK_7          Keycode = '7'
	SDLK_8          Keycode = '8'
	SDLK_9          Keycode = '9'
	SDLK_COLON      Keycode = ':'
	SDLK_SEMICOLON  Keycode = ';'
	SDLK_LESS       Keycode = '<'
	SDLK_EQUALS     Keycode = '='
	SDLK_GREATER    Keycode = '>'
	SDLK_QUESTION   Keycode = '?'
	SDLK_AT         Keycode = '@'

	SDLK_LEFTBRACKET  Keycode = '['
	SDLK_BACKSLASH    Keycode = '\\'
	SDLK_RIGHTBRACKET Keycode = ']'
	SDLK_CARET        Keycode = '^'
	SDLK_UNDERSCORE   Keycode = '_'
	SDLK_BACKQUOTE    Keycode = '`'
	SDLK_a            Keycode = 'a'
	SDLK_b            Keycode = 'b'
	SDLK_c            Keycode = 'c'
	SDLK_d            Keycode = 'd'
	SDLK_e            Keycode = 'e'
	SDLK_f            Keycode = 'f'
	SDLK_g            Keycode = 'g'
	SDLK_h            Keycode = 'h'
	SDLK_i            Keycode = 'i'
	SDLK_j            Keycode = 'j'
	SDLK_k            Keycode = 'k'
	SDLK_l            Keycode = 'l'
	SDLK_m            Keycode = 'm'
	SDLK_n            Keycode = 'n'
	SDLK_o            Keycode = 'o'
	SDLK_p            Keycode = 'p'
	SDLK_q            Keycode = 'q'
	SDLK_r            Keycode = 'r'
	SDLK_s            Keycode = 's'
	SDLK_t            Keycode = 't'
	SDLK_u            Keycode = 'u'
	SDLK_v            Keycode = 'v'
	SDLK_w            Keycode = 'w'
	SDLK_x            Keycode = 'x'
	SDLK_y            Keycode = 'y'
	SDLK_z            Keycode = 'z'
	SDLK_DELETE       Keycode = 0x7F
)

// Keycodes without a character representation.
const (
	SDLK_CAPSLOCK Keycode = 57 | scancodeMask

	SDLK_F1  Keycode = 58 | scancodeMask
	SDLK_F2  Keycode = 59 | scancodeMask
	SDLK_F3  Keycode = 60 | scancodeMask
	SDLK_F4  Keycode = 61 | scancodeMask
	SDLK_F5  Keycode = 62 | scancodeMask
	SDLK_F6  Keycode = 63 | scancodeMask
	SDLK_F7  Keycode = 64 | scancodeMask
	SDLK_F8  Keycode = 65 | scancodeMask
	SDLK_F9  Keycode = 66 | scancodeMask
	SDLK_F10 Keycode = 67 | scancodeMask
	SDLK_F11 Keycode = 68 | scancodeMask
	SDLK_F12 Keycode = 69 | scancodeMask

	SDLK_PRINTSCREEN Keycode = 70 | scancodeMask
	SDLK_SCROLLLOCK  Keycode = 71 | scancodeMask
	SDLK_PAUSE       Keycode = 72 | scancodeMask
	SDLK_INSERT      Keycode = 73 | scancodeMask
	SDLK_HOME        Keycode = 74 | scancodeMask
	SDLK_PAGEUP      Keycode = 75 | scancodeMask
	SDLK_END         Keycode = 77 | scancodeMask
	SDLK_PAGEDOWN    Keycode = 78 | scancodeMask
	SDLK_RIGHT       Keycode = 79 | scancodeMask
	SDLK_LEFT        Keycode = 80 | scancodeMask
	SDLK_DOWN        Keycode = 81 | scancodeMask
	SDLK_UP          Keycode = 82 | scancodeMask

	SDLK_NUMLOCKCLEAR Keycode = 83 | scancodeMask
	SDLK_KP_DIVIDE    Keycode = 84 | scancodeMask
	SDLK_KP_MULTIPLY  Keycode = 85 | scancodeMask
	SDLK_KP_MINUS     Keycode = 86 | scancodeMask
	SDLK_KP_PLUS      Keycode = 87 | scancodeMask
	SDLK_KP_ENTER     Keycode = 88 | scancodeMask
	SDLK_KP_1         Keycode = 89 | scancodeMask
	SDLK_KP_2         Keycode = 90 | scancodeMask
	SDLK_KP_3         Keycode = 91 | scancodeMask
	SDLK_KP_4         Keycode = 92 | scancodeMask
	SDLK_KP_5         Keycode = 93 | scancodeMask
	SDLK_KP_6         Keycode = 94 | scancodeMask
	SDLK_KP_7         Keycode = 95 | scancodeMask
	SDLK_KP_8         Keycode = 96 | scancodeMask
	SDLK_KP_9         Keycode = 97 | scancodeMask
	SDLK_KP_0         Keycode = 98 | scancodeMask
	SDLK_KP_PERIOD    Keycode = 99 | scancodeMask

	SDLK_APPLICATION Keycode = 101 | scancodeMask
	SDLK_POWER       Keycode = 102 | scancodeMask
	SDLK_KP_EQUALS   Keycode = 103 | scancodeMask
	SDLK_F13         Keycode = 104 | scancodeMask
	SDLK_F14         Keycode = 105 | scancodeMask
	SDLK_F15         Keycode = 106 | scancodeMask
	SDLK_F16         Keycode = 107 | scancodeMask
	SDLK_F17         Keycode = 108 | scancodeMask
	SDLK_F18         Keycode = 109 | scancodeMask
	SDLK_F19         Keycode = 110 | scancodeMask
	SDLK_F20         Keycode = 111 | scancodeMask
	SDLK_F21         Keycode = 112 | scancodeMask
	SDLK_F22         Keycode = 113 | scancodeMask
	SDLK_F23         Keycode = 114 | scancodeMask
	SDLK_F24         Keycode = 115 | scancodeMask
	SDLK_EXECUTE     Keycode = 116 | scancodeMask
	SDLK_HELP        Keycode = 117 | scancodeMask
	SDLK_MENU        Keycode = 118 | scancodeMask
	SDLK_SELECT      Keycode = 119 | scancodeMask
	SDLK_STOP        Keycode = 120 | scancodeMask
	SDLK_AGAIN       Keycode = 121 | scancodeMask
	SDLK_UNDO        Keycode = 122 | scancodeMask
	SDLK_CUT         Keycode = 123 | scancodeMask
	SDLK_COPY        Keycode = 124 | scancodeMask
	SDLK_PASTE       Keycode = 125 | scancodeMask
	SDLK_FIND        Keycode = 126 | scancodeMask
	SDLK_MUTE        Keycode = 127 | scancodeMask
	SDLK_VOLUMEUP    Keycode = 128 | scancodeMask
	SDLK_VOLUMEDOWN  Keycode = 129 | scancodeMask

	SDLK_KP_COMMA       Keycode = 133 | scancodeMask
	SDLK_KP_EQUALSAS400 Keycode = 134 | scancodeMask

	SDLK_ALTERASE   Keycode = 153 | scancodeMask
	SDLK_SYSREQ     Keycode = 154 | scancodeMask
	SDLK_CANCEL     Keycode = 155 | scancodeMask
	SDLK_CLEAR      Keycode = 156 | scancodeMask
	SDLK_PRIOR      Keycode = 157 | scancodeMask
	SDLK_RETURN2    Keycode = 158 | scancodeMask
	SDLK_SEPARATOR  Keycode = 159 | scancodeMask
	SDLK_OUT        Keycode = 160 | scancodeMask
	SDLK_OPER       Keycode = 161 | scancodeMask
	SDLK_CLEARAGAIN Keycode = 162 | scancodeMask
	SDLK_CRSEL      Keycode = 163 | scancodeMask
	SDLK_EXSEL      Keycode = 164 | scancodeMask

	SDLK_KP_00              Keycode = 176 | scancodeMask
	SDLK_KP_000             Keycode = 177 | scancodeMask
	SDLK_THOUSANDSSEPARATOR Keycode = 178 | scancodeMask
	SDLK_DECIMALSEPARATOR   Keycode = 179 | scancodeMask
	SDLK_CURRENCYUNIT       Keycode = 180 | scancodeMask
	SDLK_CURRENCYSUBUNIT    Keycode = 181 | scancodeMask
	SDLK_KP_LEFTPAREN       Keycode = 182 | scancodeMask
	SDLK_KP_RIGHTPAREN      Keycode = 183 | scancodeMask
	SDLK_KP_LEFTBRACE       Keycode = 184 | scancodeMask
	SDLK_KP_RIGHTBRACE      Keycode = 185 | scancodeMask
	SDLK_KP_TAB             Keycode = 186 | scancodeMask
	SDLK_KP_BACKSPACE       Keycode = 187 | scancodeMask
	SDLK_KP_A               Keycode = 188 | scancodeMask
	SDLK_KP_B               Keycode = 189 | scancodeMask
	SDLK_KP_C               Keycode = 190 | scancodeMask
	SDLK_KP_D               Keycode = 191 | scancodeMask
	SDLK_KP_E               Keycode = 192 | scancodeMask
	SDLK_KP_F               Keycode = 193 | scancodeMask
	SDLK_KP_XOR             Keycode = 194 | scancodeMask
	SDLK_KP_POWER           Keycode = 195 | scancodeMask
	SDLK_KP_PERCENT         Keycode = 196 | scancodeMask
	SDLK_KP_LESS            Keycode = 197 | scancodeMask
	SDLK_KP_GREATER         Keycode = 198 | scancodeMask
	SDLK_KP_AMPERSAND       Keycode = 199 | scancodeMask
	SDLK_KP_DBLAMPERSAND    Keycode = 200 | scancodeMask
	SDLK_KP_VERTICALBAR     Keycode = 201 | scancodeMask
	SDLK_KP_DBLVERTICALBAR  Keycode = 202 | scancodeMask
	SDLK_KP_COLON           Keycode = 203 | scancodeMask
	SDLK_KP_HASH            Keycode = 204 | scancodeMask
	SDLK_KP_SPACE           Keycode = 205 | scancodeMask
	SDLK_KP_AT              Keycode = 206 | scancodeMask
	SDLK_KP_EXCLAM          Keycode = 207 | scancodeMask
	SDLK_KP_MEMSTORE        Keycode = 208 | scancodeMask
	SDLK_KP_MEMRECALL       Keycode = 209 | scancodeMask
	SDLK_KP_MEMCLEAR        Keycode = 210 | scancodeMask
	SDLK_KP_MEMADD          Keycode = 211 | scancodeMask
	SDLK_KP_MEMSUBTRACT     Keycode = 212 | scancodeMask
	SDLK_KP_MEMMULTIPLY     Keycode = 213 | scancodeMask
	SDLK_KP_MEMDIVIDE       Keycode = 214 | scancodeMask
	SDLK_KP_PLUSMINUS       Keycode = 215 | scancodeMask
	SDLK_KP_CLEAR           Keycode = 216 | scancodeMask
	SDLK_KP_CLEARENTRY      Keycode = 217 | scancodeMask
	SDLK_KP_BINARY          Keycode = 218 | scancodeMask
	SDLK_KP_OCTAL           Keycode = 219 | scancodeMask
	SDLK_KP_DECIMAL         Keycode = 220 | scancodeMask
	SDLK_KP_HEXADECIMAL     Keycode = 221 | scancodeMask

	SDLK_LCTRL  Keycode = 224 | scancodeMask
	SDLK_LSHIFT Keycode = 225 | scancodeMask
	SDLK_LALT   Keycode = 226 | scancodeMask
	SDLK_LGUI   Keycode = 227 | scancodeMask
	SDLK_RCTRL  Keycode = 228 | scancodeMask
	SDLK_RSHIFT Keycode = 229 | scancodeMask
	SDLK_RALT   Keycode = 230 | scancodeMask
	SDLK_RGUI   Keycode = 231 | scancodeMask

	SDLK_MODE Keycode = 257 | scancodeMask

	SDLK_AUDIONEXT      Keycode = 258 | scancodeMask
	SDLK_AUDIOPREV      Keycode = 259 | scancodeMask
	SDLK_AUDIOSTOP      Keycode = 260 | scancodeMask
	SDLK_AUDIOPLAY      Keycode = 261 | scancodeMask
	SDLK_AUDIOMUTE      Keycode = 262 | scancodeMask
	SDLK_MEDIASELECT    Keycode = 263 | scancodeMask
	SDLK_WWW            Keycode = 264 | scancodeMask
	SDLK_MAIL           Keycode = 265 | scancodeMask
	SDLK_CALCULATOR     Keycode = 266 | scancodeMask
	SDLK_COMPUTER       Keycode = 267 | scancodeMask
	SDLK_AC_SEARCH      Keycode = 268 | scancodeMask
	SDLK_AC_HOME        Keycode = 269 | scancodeMask
	SDLK_AC_BACK        Keycode = 270 | scancodeMask
	SDLK_AC_FORWARD     Keycode = 271 | scancodeMask
	SDLK_AC_STOP        Keycode = 272 | scancodeMask
	SDLK_AC_REFRESH     Keycode = 273 | scancodeMask
	SDLK_AC_BOOKMARKS   Keycode = 274 | scancodeMask
	SDLK_BRIGHTNESSDOWN Keycode = 275 | scancodeMask
	SDLK_BRIGHTNESSUP   Keycode = 276 | scancodeMask
	SDLK_DISPLAYSWITCH  Keycode = 277 | scancodeMask
	SDLK_KBDILLUMTOGGLE Keycode = 278 | scancodeMask
	SDLK_KBDILLUMDOWN   Keycode = 279 | scancodeMask
	SDLK_KBDILLUMUP     Keycode = 280 | scancodeMask
	SDLK_EJECT          Keycode = 281 | scancodeMask
	SDLK_SLEEP          Keycode = 282 | scancodeMask
	SDLK_APP1           Keycode = 283 | scancodeMask
	SDLK_APP2           Keycode = 284 | scancodeMask

	SDLK_AUDIOREWIND      Keycode = 285 | scancodeMask
	SDLK_AUDIOFASTFORWARD Keycode = 286 | scancodeMask

	SDLK_SOFTLEFT  Keycode = 287 | scancodeMask
	SDLK_SOFTRIGHT Keycode = 288 | scancodeMask
	SDLK_CALL      Keycode = 289 | scancodeMask
	SDLK_ENDCALL   Keycode = 290 | scancodeMask
)

// SDL2 modifier flags, values from SDL_keycode.h.
const (
	KMOD_NONE   Keymod = 0x0000
	KMOD_LSHIFT Keymod = 0x0001
	KMOD_RSHIFT Keymod = 0x0002
	KMOD_LCTRL  Keymod = 0x0040
	KMOD_RCTRL  Keymod = 0x0080
	KMOD_LALT   Keymod = 0x0100
	KMOD_RALT   Keymod = 0x0200
	KMOD_LGUI   Keymod = 0x0400
	KMOD_RGUI   Keymod = 0x0800
	KMOD_NUM    Keymod = 0x1000
	KMOD_CAPS   Keymod = 0x2000
	KMOD_MODE   Keymod = 0x4000
	KMOD_SCROLL Keymod = 0x8000
)
