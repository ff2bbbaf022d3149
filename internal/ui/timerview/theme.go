package timerview

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// variantTheme pins the default theme to one variant.
type variantTheme struct {
	fyne.Theme
	variant fyne.ThemeVariant
}

func (t variantTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	return t.Theme.Color(name, t.variant)
}

// ApplyTheme switches app between the light and dark default theme.
func ApplyTheme(app fyne.App, dark bool) {
	app.Settings().SetTheme(themeFor(dark))
}

func themeFor(dark bool) fyne.Theme {
	variant := theme.VariantLight
	if dark {
		variant = theme.VariantDark
	}
	return variantTheme{Theme: theme.DefaultTheme(), variant: variant}
}
