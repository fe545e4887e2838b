package theme

import (
	"image/color"
	"log"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"dialogkit/internal/config"
	apperrors "dialogkit/internal/errors"
)

// DialogTheme implements fyne.Theme with a fixed light or dark variant and
// configurable font settings
type DialogTheme struct {
	config     config.ThemeConfig
	customFont fyne.Resource
}

// NewDialogTheme creates a new theme from the given settings. A font that
// cannot be loaded is logged and the default font is used.
func NewDialogTheme(cfg config.ThemeConfig) *DialogTheme {
	t := &DialogTheme{config: cfg}

	if cfg.FontPath != "" {
		font, err := loadFont(cfg.FontPath)
		if err != nil {
			log.Printf("%v", err)
		} else {
			t.customFont = font
			log.Printf("Loaded custom font: %s", cfg.FontPath)
		}
	}

	return t
}

// loadFont reads a font file into a static resource
func loadFont(fontPath string) (fyne.Resource, error) {
	fontData, err := os.ReadFile(fontPath)
	if err != nil {
		return nil, apperrors.NewThemeError("load_font", fontPath, "custom font could not be loaded", err)
	}
	return fyne.NewStaticResource(filepath.Base(fontPath), fontData), nil
}

func (t *DialogTheme) variant() fyne.ThemeVariant {
	if t.config.Dark {
		return theme.VariantDark
	}
	return theme.VariantLight
}

// Color returns the default theme color for the configured variant
func (t *DialogTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	return theme.DefaultTheme().Color(name, t.variant())
}

// Icon returns the default theme icon
func (t *DialogTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Font returns the custom font when one was loaded
func (t *DialogTheme) Font(style fyne.TextStyle) fyne.Resource {
	if t.customFont != nil {
		return t.customFont
	}
	return theme.DefaultTheme().Font(style)
}

// Size returns the configured text size; everything else is the default
func (t *DialogTheme) Size(name fyne.ThemeSizeName) float32 {
	if name == theme.SizeNameText && t.config.FontSize > 0 {
		return float32(t.config.FontSize)
	}
	return theme.DefaultTheme().Size(name)
}
