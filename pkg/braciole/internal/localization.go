package internal

import (
	"embed"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFS embed.FS

var (
	localizerOnce sync.Once
	localizer     *i18n.Localizer
	userLangs     []string
)

// SetLanguages sets the preferred languages for built-in framework strings
// (accessibility labels). Call before the first Localize to take effect.
func SetLanguages(langs ...string) {
	userLangs = langs
}

func getLocalizer() *i18n.Localizer {
	localizerOnce.Do(func() {
		bundle := i18n.NewBundle(language.English)
		bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

		entries, err := localeFS.ReadDir("locales")
		if err != nil {
			GetInternalLogger().Error("Failed to read embedded locales", "error", err)
		}
		for _, entry := range entries {
			data, err := localeFS.ReadFile("locales/" + entry.Name())
			if err != nil {
				continue
			}
			if _, err := bundle.ParseMessageFileBytes(data, entry.Name()); err != nil {
				GetInternalLogger().Warn("Skipping locale file", "file", entry.Name(), "error", err)
			}
		}

		localizer = i18n.NewLocalizer(bundle, userLangs...)
	})
	return localizer
}

// Localize returns the translation for a built-in framework message ID.
// Falls back to the ID itself when no translation exists.
func Localize(messageID string) string {
	msg, err := getLocalizer().Localize(&i18n.LocalizeConfig{MessageID: messageID})
	if err != nil {
		return messageID
	}
	return msg
}
