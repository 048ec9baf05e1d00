package app

import (
	"embed"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/jeandeaual/go-locale"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFS embed.FS

var localeFiles = []string{"locales/active.en.toml", "locales/active.ja.toml"}

// messages localizes UI strings. Missing translations fall back to English
// and then to the message ID.
type messages struct {
	loc *i18n.Localizer
}

func newBundle() (*i18n.Bundle, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	for _, name := range localeFiles {
		if _, err := bundle.LoadMessageFileFS(localeFS, name); err != nil {
			return nil, err
		}
	}
	return bundle, nil
}

func newMessages(bundle *i18n.Bundle, langs ...string) *messages {
	return &messages{loc: i18n.NewLocalizer(bundle, langs...)}
}

func (m *messages) T(id string) string {
	return m.localize(&i18n.LocalizeConfig{MessageID: id})
}

// N localizes a message with a plural count and template data.
func (m *messages) N(id string, count int, data map[string]any) string {
	return m.localize(&i18n.LocalizeConfig{MessageID: id, PluralCount: count, TemplateData: data})
}

func (m *messages) localize(cfg *i18n.LocalizeConfig) string {
	if m == nil || m.loc == nil {
		return cfg.MessageID
	}
	s, err := m.loc.Localize(cfg)
	if err != nil || s == "" {
		return cfg.MessageID
	}
	return s
}

// preferredLanguages returns the configured language when set, otherwise
// the system locales.
func preferredLanguages(configured string, system func() ([]string, error)) []string {
	configured = strings.TrimSpace(configured)
	if configured != "" && !strings.EqualFold(configured, "auto") {
		return []string{configured}
	}
	if system == nil {
		system = locale.GetLocales
	}
	locales, err := system()
	if err != nil {
		return nil
	}
	return locales
}
