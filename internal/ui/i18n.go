package ui

import (
	"embed"
	"encoding/json"
	"io/fs"
	"log/slog"
	"path"
	"strings"

	"github.com/contactmanager/contact-manager/internal/config"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

const (
	localeDir    = "locales"
	localePrefix = "active."
	localeSuffix = ".json"
)

//go:embed locales/*.json
var localeFS embed.FS

// SetupI18n loads the embedded translations and selects the preferred language.
func (app *ContactManagerApp) SetupI18n() {
	bundle, langs := loadBundle(localeFS)
	if len(langs) > 0 {
		app.SupportedLanguages = langs
	}
	app.I18nBundle = bundle
	app.UpdateLocalizer()
}

// loadBundle reads every locales/active.<lang>.json file of fsys.
// It returns the bundle and the language codes that loaded.
func loadBundle(fsys fs.FS) (*i18n.Bundle, []string) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := fs.ReadDir(fsys, localeDir)
	if err != nil {
		slog.Error(config.ErrLocalesAccess,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyError, err,
		)
		return bundle, nil
	}

	var langs []string
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, localePrefix) || !strings.HasSuffix(name, localeSuffix) {
			slog.Debug(config.MsgLocaleSkip, config.LogKeyComponent, config.CompI18n, config.LogKeyFile, name)
			continue
		}

		code := strings.TrimSuffix(strings.TrimPrefix(name, localePrefix), localeSuffix)
		if code == "" {
			slog.Warn(config.MsgLocaleBadName, config.LogKeyComponent, config.CompI18n, config.LogKeyFile, name)
			continue
		}

		if _, err := bundle.LoadMessageFileFS(fsys, path.Join(localeDir, name)); err != nil {
			slog.Error(config.ErrLocaleLoad,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
				config.LogKeyError, err,
			)
			continue
		}

		slog.Debug(config.MsgLocaleLoaded, config.LogKeyComponent, config.CompI18n, config.LogKeyLang, code)
		langs = append(langs, code)
	}
	return bundle, langs
}

// UpdateLocalizer refreshes the translator based on the user's language preference.
func (app *ContactManagerApp) UpdateLocalizer() {
	if app.I18nBundle == nil {
		return
	}
	lang := app.Preferences.StringWithFallback(config.PrefLanguage, config.DefaultLanguage)
	app.Localizer = i18n.NewLocalizer(app.I18nBundle, lang)
}

// GetMsg translates a key, falling back to the key itself.
func (app *ContactManagerApp) GetMsg(key string) string {
	if app.Localizer == nil {
		return key
	}
	msg, err := app.Localizer.Localize(&i18n.LocalizeConfig{MessageID: key})
	if err != nil {
		slog.Debug(config.MsgTransMissing,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyKey, key,
			config.LogKeyError, err,
		)
		return key
	}
	return msg
}
