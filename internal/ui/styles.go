package ui

// StyleName is a symbolic identifier for a text style, foreground color or
// background color. Names outside the table are valid values that simply emit
// no escape code.
type StyleName string

// Text styles.
const (
	Reset      StyleName = "reset"
	Bright     StyleName = "bright"
	Dim        StyleName = "dim"
	Underscore StyleName = "underscore"
	Blink      StyleName = "blink"
	Reverse    StyleName = "reverse"
	Hidden     StyleName = "hidden"
)

// Foreground colors.
const (
	Black   StyleName = "black"
	Red     StyleName = "red"
	Green   StyleName = "green"
	Yellow  StyleName = "yellow"
	Blue    StyleName = "blue"
	Magenta StyleName = "magenta"
	Cyan    StyleName = "cyan"
	White   StyleName = "white"
	Gray    StyleName = "gray"
)

// Background colors.
const (
	BgBlack   StyleName = "bgBlack"
	BgRed     StyleName = "bgRed"
	BgGreen   StyleName = "bgGreen"
	BgYellow  StyleName = "bgYellow"
	BgBlue    StyleName = "bgBlue"
	BgMagenta StyleName = "bgMagenta"
	BgCyan    StyleName = "bgCyan"
	BgWhite   StyleName = "bgWhite"
	BgGray    StyleName = "bgGray"
)

// Terminal control sequences used by line-redrawing widgets.
const (
	// ResetCode clears all formatting.
	ResetCode = "\x1b[0m"
	// ClearLine returns the cursor to column 0 and erases to end of line.
	ClearLine = "\r\x1b[K"
	// HideCursor makes the terminal cursor invisible.
	HideCursor = "\x1b[?25l"
	// ShowCursor restores cursor visibility.
	ShowCursor = "\x1b[?25h"
)

// styleTable maps every known StyleName to its escape code. It is never
// mutated after initialization.
var styleTable = map[StyleName]string{
	Reset:      ResetCode,
	Bright:     "\x1b[1m",
	Dim:        "\x1b[2m",
	Underscore: "\x1b[4m",
	Blink:      "\x1b[5m",
	Reverse:    "\x1b[7m",
	Hidden:     "\x1b[8m",

	Black:   "\x1b[30m",
	Red:     "\x1b[31m",
	Green:   "\x1b[32m",
	Yellow:  "\x1b[33m",
	Blue:    "\x1b[34m",
	Magenta: "\x1b[35m",
	Cyan:    "\x1b[36m",
	White:   "\x1b[37m",
	Gray:    "\x1b[90m",

	BgBlack:   "\x1b[40m",
	BgRed:     "\x1b[41m",
	BgGreen:   "\x1b[42m",
	BgYellow:  "\x1b[43m",
	BgBlue:    "\x1b[44m",
	BgMagenta: "\x1b[45m",
	BgCyan:    "\x1b[46m",
	BgWhite:   "\x1b[47m",
	BgGray:    "\x1b[100m",
}

// styleOrder lists the table in declaration order.
var styleOrder = []StyleName{
	Reset, Bright, Dim, Underscore, Blink, Reverse, Hidden,
	Black, Red, Green, Yellow, Blue, Magenta, Cyan, White, Gray,
	BgBlack, BgRed, BgGreen, BgYellow, BgBlue, BgMagenta, BgCyan, BgWhite, BgGray,
}

// Code returns the escape code for name. The boolean is false for the empty
// name and for names outside the table.
func Code(name StyleName) (string, bool) {
	code, ok := styleTable[name]
	return code, ok
}

// Valid reports whether the name is part of the style table.
func (n StyleName) Valid() bool {
	_, ok := styleTable[n]
	return ok
}

// StyleNames returns every known style name in table order.
func StyleNames() []StyleName {
	names := make([]StyleName, len(styleOrder))
	copy(names, styleOrder)
	return names
}
