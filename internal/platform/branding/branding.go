// Package branding holds the product identity baked into generated assets.
package branding

import "image/color"

// AppName is the product name shown to users.
const AppName = "ZeroTrace"

// LauncherLabel is the monogram drawn on launcher icons.
const LauncherLabel = "ZT"

var (
	// AccentColor fills the launcher badge.
	AccentColor = color.RGBA{R: 33, G: 150, B: 243, A: 255}
	// LabelColor is used for the monogram.
	LabelColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)
