package theme

import (
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dialogkit/internal/config"
	apperrors "dialogkit/internal/errors"
)

func TestDialogThemeVariant(t *testing.T) {
	test.NewTempApp(t)

	dark := NewDialogTheme(config.ThemeConfig{Dark: true})
	light := NewDialogTheme(config.ThemeConfig{Dark: false})

	// the requested variant is ignored in favour of the configured one
	assert.Equal(t,
		theme.DefaultTheme().Color(theme.ColorNameBackground, theme.VariantDark),
		dark.Color(theme.ColorNameBackground, theme.VariantLight))
	assert.Equal(t,
		theme.DefaultTheme().Color(theme.ColorNameBackground, theme.VariantLight),
		light.Color(theme.ColorNameBackground, theme.VariantDark))
}

func TestDialogThemeSize(t *testing.T) {
	test.NewTempApp(t)

	th := NewDialogTheme(config.ThemeConfig{FontSize: 18})
	assert.Equal(t, float32(18), th.Size(theme.SizeNameText))
	assert.Equal(t, theme.DefaultTheme().Size(theme.SizeNamePadding), th.Size(theme.SizeNamePadding))

	th = NewDialogTheme(config.ThemeConfig{})
	assert.Equal(t, theme.DefaultTheme().Size(theme.SizeNameText), th.Size(theme.SizeNameText))
}

func TestDialogThemeFont(t *testing.T) {
	test.NewTempApp(t)

	path := filepath.Join(t.TempDir(), "custom.ttf")
	require.NoError(t, os.WriteFile(path, []byte("not really a font"), 0644))

	th := NewDialogTheme(config.ThemeConfig{FontPath: path})
	font := th.Font(fyne.TextStyle{})
	require.NotNil(t, font)
	assert.Equal(t, "custom.ttf", font.Name())

	// missing font falls back to the default
	th = NewDialogTheme(config.ThemeConfig{FontPath: filepath.Join(t.TempDir(), "missing.ttf")})
	assert.Nil(t, th.customFont)
}

func TestLoadFontError(t *testing.T) {
	_, err := loadFont(filepath.Join(t.TempDir(), "missing.ttf"))

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorTypeTheme, appErr.Type)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
