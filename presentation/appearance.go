package presentation

import (
	"image/color"

	"catdog-go/infrastructure/config"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// appearanceTheme pins the default theme to one colour variant regardless
// of the OS preference.
type appearanceTheme struct {
	fyne.Theme
	variant fyne.ThemeVariant
}

func newAppearanceTheme(a config.Appearance) *appearanceTheme {
	v := theme.VariantDark
	if a == config.AppearanceLight {
		v = theme.VariantLight
	}
	return &appearanceTheme{Theme: theme.DefaultTheme(), variant: v}
}

func (t *appearanceTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	return t.Theme.Color(name, t.variant)
}

// SetAppearance switches the whole application to the light or dark variant.
func SetAppearance(app fyne.App, a config.Appearance) {
	app.Settings().SetTheme(newAppearanceTheme(a))
}
