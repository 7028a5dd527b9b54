package ui

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/contactmanager/contact-manager/internal/config"
)

// baseURLSetter is implemented by remotes whose endpoint can change at runtime.
type baseURLSetter interface {
	SetBaseURL(raw string) error
}

// settingsWidgets holds references to UI elements to simplify data retrieval during save.
type settingsWidgets struct {
	langSelect *widget.Select
	urlEntry   *widget.Entry
	portEntry  *PortEntry
}

// ShowSettingsWindow displays the preferences dialog.
func (app *ContactManagerApp) ShowSettingsWindow() {
	if app.settingsWindow != nil {
		slog.Debug(config.MsgSettingsFocus, config.LogKeyComponent, config.CompUISet)
		app.settingsWindow.RequestFocus()
		return
	}

	slog.Info(config.MsgSettingsOpen, config.LogKeyComponent, config.CompUISet)
	w := app.App.NewWindow(app.GetMsg(config.TKeyWinSettings))
	app.settingsWindow = w

	sw := app.newSettingsWidgets()

	itemLang := widget.NewFormItem(app.GetMsg(config.TKeyLblLanguage), sw.langSelect)
	itemLang.HintText = app.GetMsg(config.TKeyHelpLanguage)

	itemURL := widget.NewFormItem(app.GetMsg(config.TKeyLblAPIURL), sw.urlEntry)
	itemURL.HintText = app.GetMsg(config.TKeyHelpAPIURL)

	itemPort := widget.NewFormItem(app.GetMsg(config.TKeyLblPort), sw.portEntry)
	itemPort.HintText = app.GetMsg(config.TKeyHelpPort)

	generalCard := widget.NewCard(app.GetMsg(config.TKeyLblGeneral), "", widget.NewForm(itemLang, itemURL, itemPort))

	saveAction := func() {
		// Both the URL and the port block saving when invalid.
		if err := errors.Join(sw.urlEntry.Validate(), sw.portEntry.Validate()); err != nil {
			dialog.ShowError(err, w)
			return
		}
		app.saveSettings(sw)
		w.Close()
	}

	btnSave := newIconButton(app.GetMsg(config.TKeyBtnSave), theme.DocumentSaveIcon(), widget.HighImportance, saveAction)
	btnCancel := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnCancel), theme.CancelIcon(), func() { w.Close() })

	footer := widget.NewLabel(fmt.Sprintf(app.GetMsg(config.TKeyLblFooter), config.Version))
	footer.Alignment = fyne.TextAlignCenter
	footer.TextStyle = fyne.TextStyle{Italic: true}

	content := container.NewPadded(container.NewVBox(
		generalCard,
		container.NewGridWithColumns(config.LayoutColumnsDouble, btnCancel, btnSave),
		footer,
	))

	w.SetContent(content)
	w.Resize(fyne.NewSize(config.SettingsWindowWidth, content.MinSize().Height))
	w.SetFixedSize(true)
	w.SetOnClosed(func() { app.settingsWindow = nil })
	w.Show()
}

// newSettingsWidgets creates the inputs pre-filled from preferences.
func (app *ContactManagerApp) newSettingsWidgets() *settingsWidgets {
	sw := &settingsWidgets{}

	sw.langSelect = widget.NewSelect(app.SupportedLanguages, nil)
	sw.langSelect.SetSelected(app.Preferences.StringWithFallback(config.PrefLanguage, config.DefaultLanguage))

	sw.urlEntry = widget.NewEntry()
	sw.urlEntry.PlaceHolder = config.PlaceholderURL
	sw.urlEntry.SetText(app.Preferences.StringWithFallback(config.PrefAPIURL, config.DefaultAPIURL))
	sw.urlEntry.Validator = func(s string) error {
		u, err := url.Parse(s)
		if err != nil || u.Host == "" || (u.Scheme != config.SchemeHTTP && u.Scheme != config.SchemeHTTPS) {
			return errors.New(app.GetMsg(config.TKeyErrURL))
		}
		return nil
	}

	sw.portEntry = NewPortEntry(app.GetMsg)
	sw.portEntry.SetText(app.Preferences.StringWithFallback(config.PrefFeedPort, config.DefaultPort))

	return sw
}

// saveSettings persists the preferences and applies what can change live.
// A new feed port takes effect on the next start.
func (app *ContactManagerApp) saveSettings(sw *settingsWidgets) {
	slog.Info(config.MsgSettingsSave, config.LogKeyComponent, config.CompUISet)

	app.Preferences.SetString(config.PrefLanguage, sw.langSelect.Selected)
	app.Preferences.SetString(config.PrefAPIURL, sw.urlEntry.Text)
	app.Preferences.SetString(config.PrefFeedPort, sw.portEntry.Text)

	if app.Manager != nil {
		if setter, ok := app.Manager.Remote.(baseURLSetter); ok {
			if err := setter.SetBaseURL(sw.urlEntry.Text); err != nil {
				slog.Error(config.ErrApplyURL,
					config.LogKeyComponent, config.CompUISet,
					config.LogKeyError, err)
			}
		} else {
			slog.Warn(config.ErrClientNoSettings, config.LogKeyComponent, config.CompUISet)
		}
	}

	app.UpdateLocalizer()
	app.relabel()
}
