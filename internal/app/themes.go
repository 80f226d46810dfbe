package app

import "github.com/agbru/colorize/internal/ui"

// Custom themes registered by the application on top of the built-ins.
const (
	OceanThemeName  = "ocean"
	SunsetThemeName = "sunset"
)

// OceanTheme is registered at startup and selectable with --theme ocean.
func OceanTheme() ui.Theme {
	return ui.Theme{
		ui.CategorySuccess: {Color: ui.Cyan, Style: ui.Bright},
		ui.CategoryError:   {Color: ui.Magenta, Style: ui.Bright},
		ui.CategoryWarning: {Color: ui.Yellow},
		ui.CategoryInfo:    {Color: ui.Blue},
		ui.CategoryDebug:   {Color: ui.Gray, Style: ui.Dim},
		ui.CategoryPrompt:  {Color: ui.White, BgColor: ui.BgBlue, Style: ui.Bright},
	}
}

// SunsetTheme is registered at runtime by the themes demo.
func SunsetTheme() ui.Theme {
	return ui.Theme{
		ui.CategorySuccess: {Color: ui.Yellow, Style: ui.Bright},
		ui.CategoryError:   {Color: ui.Red, BgColor: ui.BgBlack, Style: ui.Bright},
		ui.CategoryWarning: {Color: ui.Magenta},
		ui.CategoryInfo:    {Color: ui.Red, Style: ui.Dim},
		ui.CategoryDebug:   {Color: ui.Gray},
		ui.CategoryPrompt:  {Color: ui.Black, BgColor: ui.BgYellow},
	}
}

// inlineTheme is used directly by the themes demo, without registration.
func inlineTheme() ui.Theme {
	return ui.Theme{
		ui.CategorySuccess: {Color: ui.Green, Style: ui.Underscore},
		ui.CategoryError:   {Color: ui.Red, Style: ui.Reverse},
		ui.CategoryWarning: {Color: ui.Yellow, Style: ui.Underscore},
		ui.CategoryInfo:    {Color: ui.Cyan, Style: ui.Underscore},
		ui.CategoryDebug:   {Color: ui.Gray, Style: ui.Underscore},
		ui.CategoryPrompt:  {Color: ui.White, Style: ui.Reverse},
	}
}
