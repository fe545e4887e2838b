// Package i18n provides dialog button captions from go-i18n message
// catalogs. English, German, French and Japanese catalogs are built in;
// further catalogs can be loaded from TOML or JSON files at runtime.
package i18n

import (
	"embed"
	"os"
	"path"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"dialogkit/dialog"
	"dialogkit/internal/constants"
	apperrors "dialogkit/internal/errors"
)

//go:embed locales/*.toml
var locales embed.FS

var (
	messageOK  = &goi18n.Message{ID: constants.MessageIDOK, Other: constants.DefaultOKText}
	messageYes = &goi18n.Message{ID: constants.MessageIDYes, Other: constants.DefaultYesText}
	messageNo  = &goi18n.Message{ID: constants.MessageIDNo, Other: constants.DefaultNoText}
)

// Provider is a dialog.LabelProvider backed by a message bundle. It is safe
// for concurrent use.
type Provider struct {
	mutex      sync.RWMutex
	bundle     *goi18n.Bundle
	localizer  *goi18n.Localizer
	languages  []string
	debugPrint func(format string, args ...interface{})
}

var _ dialog.LabelProvider = (*Provider)(nil)

// NewProvider creates a provider with the built-in catalogs that localizes
// for the given languages in order of preference. With no languages the
// environment is consulted.
func NewProvider(debugPrint func(format string, args ...interface{}), languages ...string) (*Provider, error) {
	if debugPrint == nil {
		debugPrint = func(string, ...interface{}) {}
	}
	bundle := goi18n.NewBundle(language.MustParse(constants.DefaultLocale))
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := locales.ReadDir("locales")
	if err != nil {
		return nil, apperrors.NewLocaleError("load_builtin", "locales", "cannot list built-in catalogs", err)
	}
	for _, entry := range entries {
		name := path.Join("locales", entry.Name())
		buf, err := locales.ReadFile(name)
		if err != nil {
			return nil, apperrors.NewLocaleError("load_builtin", name, "cannot read catalog", err)
		}
		if _, err := bundle.ParseMessageFileBytes(buf, name); err != nil {
			return nil, apperrors.NewLocaleError("load_builtin", name, "cannot parse catalog", err)
		}
	}

	p := &Provider{bundle: bundle, debugPrint: debugPrint}
	if len(languages) == 0 {
		languages = EnvironmentLanguages()
	}
	p.SetLanguages(languages...)
	return p, nil
}

// LoadMessageFile adds the messages of a catalog file. The language is taken
// from the file name, e.g. "active.es.toml".
func (p *Provider) LoadMessageFile(filePath string) error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if _, err := p.bundle.LoadMessageFile(filePath); err != nil {
		return apperrors.NewLocaleError("load_message_file", filePath, "cannot load catalog", err)
	}
	p.debugPrint("i18n: loaded %s", filePath)
	// The localizer caches the bundle's language matcher.
	p.localizer = goi18n.NewLocalizer(p.bundle, p.languages...)
	return nil
}

// SetLanguages changes the preferred languages. Dialogs built afterwards use
// the new captions.
func (p *Provider) SetLanguages(languages ...string) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	p.languages = append([]string(nil), languages...)
	p.localizer = goi18n.NewLocalizer(p.bundle, p.languages...)
	p.debugPrint("i18n: languages set to %v", p.languages)
}

// Languages returns the tags of every loaded catalog.
func (p *Provider) Languages() []language.Tag {
	p.mutex.RLock()
	defer p.mutex.RUnlock()

	return p.bundle.LanguageTags()
}

// Labels implements dialog.LabelProvider.
func (p *Provider) Labels() dialog.Labels {
	p.mutex.RLock()
	defer p.mutex.RUnlock()

	return dialog.Labels{
		OK:  p.localize(messageOK),
		Yes: p.localize(messageYes),
		No:  p.localize(messageNo),
	}
}

func (p *Provider) localize(msg *goi18n.Message) string {
	text, err := p.localizer.Localize(&goi18n.LocalizeConfig{DefaultMessage: msg})
	if err != nil {
		// go-i18n returns its best effort alongside a missing-translation error
		p.debugPrint("i18n: %s: %v", msg.ID, err)
	}
	if text == "" {
		return msg.Other
	}
	return text
}

// EnvironmentLanguages returns the user's preferred languages from the POSIX
// locale variables, most preferred first. "de_DE.UTF-8" becomes "de-DE".
// As with gettext, the LANGUAGE list comes first unless the locale itself
// is "C" or "POSIX", and the locale (LC_ALL, LC_MESSAGES or LANG, first set
// wins) follows it.
func EnvironmentLanguages() []string {
	locale := ""
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if locale = os.Getenv(key); locale != "" {
			break
		}
	}

	localeTag, ok := posixToTag(locale)
	if !ok {
		return nil
	}

	var languages []string
	for _, item := range strings.Split(os.Getenv("LANGUAGE"), ":") {
		if tag, ok := posixToTag(item); ok {
			languages = append(languages, tag)
		}
	}
	return append(languages, localeTag)
}

func posixToTag(value string) (string, bool) {
	if i := strings.IndexAny(value, ".@"); i >= 0 {
		value = value[:i]
	}
	if value == "" || value == "C" || value == "POSIX" {
		return "", false
	}
	tag, err := language.Parse(strings.ReplaceAll(value, "_", "-"))
	if err != nil {
		return "", false
	}
	return tag.String(), true
}
