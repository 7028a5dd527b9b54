package ui

import (
	"context"
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/contactmanager/contact-manager/internal/config"
	"github.com/contactmanager/contact-manager/internal/contact"
	"github.com/contactmanager/contact-manager/internal/engine"
	"github.com/contactmanager/contact-manager/internal/server"
	"github.com/contactmanager/contact-manager/internal/state"
	"github.com/nicksnyder/go-i18n/v2/i18n"
)

// ContactManagerApp encapsulates the UI state, preferences, and wiring to the engine.
type ContactManagerApp struct {
	App         fyne.App
	Window      fyne.Window
	Preferences fyne.Preferences
	I18nBundle  *i18n.Bundle
	Localizer   *i18n.Localizer
	Ctx         context.Context

	Store   *state.Store
	Manager *engine.Manager
	Server  *server.FeedServer

	// Async runs a remote operation off the UI goroutine. Tests swap it for a
	// synchronous call.
	Async func(func())

	SupportedLanguages []string

	form           *contactForm
	list           *contactList
	settingsWindow fyne.Window
	feedPublished  bool
}

// NewContactManagerApp constructs the application and wires dependencies.
func NewContactManagerApp(a fyne.App, ctx context.Context, store *state.Store, manager *engine.Manager, srv *server.FeedServer) *ContactManagerApp {
	a.SetIcon(theme.AccountIcon())

	return &ContactManagerApp{
		App:                a,
		Preferences:        a.Preferences(),
		Ctx:                ctx,
		Store:              store,
		Manager:            manager,
		Server:             srv,
		Async:              func(f func()) { go f() },
		SupportedLanguages: config.SupportedLanguages,
	}
}

// Run starts the feed server, loads the contacts and enters the UI loop.
func (app *ContactManagerApp) Run() {
	app.SetupI18n()

	if app.Server != nil {
		go func() {
			if err := app.Server.Start(app.Ctx); err != nil {
				slog.Error(config.ErrServerStartup,
					config.LogKeyError, err,
					config.LogKeyComponent, config.CompUI)

				app.App.SendNotification(fyne.NewNotification(
					config.TitleStartupError,
					fmt.Sprintf(config.MsgPortBusy, app.Server.Port)))
			}
		}()
	}

	app.ShowMainWindow()
	app.Load()
	app.App.Run()
}

// ShowMainWindow builds the form and the list and subscribes them to the store.
func (app *ContactManagerApp) ShowMainWindow() {
	if app.Window != nil {
		app.Window.RequestFocus()
		return
	}

	w := app.App.NewWindow(app.GetMsg(config.TKeyWinTitle))
	app.Window = w
	w.SetMaster()
	w.Resize(fyne.NewSize(config.MainWindowWidth, config.MainWindowHeight))

	app.form = newContactForm(app)
	app.list = newContactList(app)

	w.SetMainMenu(app.buildMainMenu())
	w.SetContent(app.buildLayout())

	app.Store.Subscribe(func() {
		fyne.Do(app.render)
	})
	app.render()

	w.Show()
}

// render maps the store onto the widgets. It must run on the UI goroutine.
func (app *ContactManagerApp) render() {
	if app.form == nil || app.list == nil {
		return
	}
	app.form.render(app.Store.Draft())
	changed := app.list.render(app.Store.Contacts())

	// The feed stays at 503 until the remote list has arrived.
	if app.Store.Loaded() && (changed || !app.feedPublished) {
		app.publishFeed()
	}
}

// relabel re-applies every translated string after a language change.
func (app *ContactManagerApp) relabel() {
	if app.Window == nil {
		return
	}
	app.Window.SetTitle(app.GetMsg(config.TKeyWinTitle))
	app.Window.SetMainMenu(app.buildMainMenu())
	app.form.relabel()
	app.list.relabel()
	app.render()
}

// buildMainMenu exposes export and settings.
func (app *ContactManagerApp) buildMainMenu() *fyne.MainMenu {
	export := fyne.NewMenuItem(app.GetMsg(config.TKeyMenuExport), app.ShowExportDialog)
	export.Icon = theme.DocumentSaveIcon()

	settings := fyne.NewMenuItem(app.GetMsg(config.TKeyMenuSettings), app.ShowSettingsWindow)
	settings.Icon = theme.SettingsIcon()

	return fyne.NewMainMenu(fyne.NewMenu(app.GetMsg(config.TKeyMenuFile), export, settings))
}

// Load fetches the initial sequence. It is the only fetch of the session.
func (app *ContactManagerApp) Load() {
	app.Async(func() { _ = app.Manager.Load(app.Ctx) })
}

// AddContact posts the draft.
func (app *ContactManagerApp) AddContact() {
	app.Async(func() { _ = app.Manager.Add(app.Ctx) })
}

// UpdateContact re-sends the listed entry for id.
func (app *ContactManagerApp) UpdateContact(id contact.ID) {
	app.Async(func() { _ = app.Manager.Update(app.Ctx, id) })
}

// DeleteContact removes the entry for id.
func (app *ContactManagerApp) DeleteContact(id contact.ID) {
	app.Async(func() { _ = app.Manager.Delete(app.Ctx, id) })
}

// publishFeed pushes the current sequence to the local vCard feed.
func (app *ContactManagerApp) publishFeed() {
	if app.Server == nil {
		return
	}
	if err := app.Server.Publish(app.Store.Contacts()); err != nil {
		slog.Error(config.ErrVCardEncode,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyError, err)
		return
	}
	app.feedPublished = true
}

// newIconButton builds a button with an importance level.
func newIconButton(label string, icon fyne.Resource, importance widget.Importance, tapped func()) *widget.Button {
	btn := widget.NewButtonWithIcon(label, icon, tapped)
	btn.Importance = importance
	return btn
}
