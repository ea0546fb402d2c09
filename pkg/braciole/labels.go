package braciole

import (
	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Labels holds the default texts for the choice page buttons.
type Labels struct {
	Prev      string
	Next      string
	Select    string
	Leftmost  string
	Rightmost string
}

var (
	labelBundle    *i18n.Bundle
	labelLocalizer *i18n.Localizer
)

func init() {
	labelBundle = i18n.NewBundle(language.English)
	labelBundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	labelLocalizer = i18n.NewLocalizer(labelBundle, language.English.String())
}

// LoadTranslations loads a TOML message file with translated button labels.
// Call before Pick; the file's language is taken from its name
// (e.g. active.de.toml).
func LoadTranslations(path string) error {
	if _, err := labelBundle.LoadMessageFile(path); err != nil {
		return NewInfrastructureError("load_translations", err)
	}
	return nil
}

// SetLocale selects the languages used for default button labels, in
// preference order.
func SetLocale(langs ...string) {
	labelLocalizer = i18n.NewLocalizer(labelBundle, langs...)
}

func localize(id, fallback string) string {
	msg, err := labelLocalizer.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{ID: id, Other: fallback},
	})
	if err != nil || msg == "" {
		return fallback
	}
	return msg
}

// DefaultLabels returns the localized default button labels. The stock
// texts match the uppercase register a narrow monospaced button row wants.
func DefaultLabels() Labels {
	return Labels{
		Prev:      localize("button.prev", "BACK"),
		Next:      localize("button.next", "NEXT"),
		Select:    localize("button.select", "SELECT"),
		Leftmost:  localize("button.leftmost", "LEFT"),
		Rightmost: localize("button.rightmost", "RIGHT"),
	}
}
