package ui

import (
	"fmt"
	"io"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"github.com/contactmanager/contact-manager/internal/config"
	"github.com/contactmanager/contact-manager/internal/contact"
)

// ShowExportDialog asks for a destination and writes the list there as vCards.
func (app *ContactManagerApp) ShowExportDialog() {
	d := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil {
			slog.Error(config.ErrExport, config.LogKeyComponent, config.CompUI, config.LogKeyError, err)
			return
		}
		if wc == nil {
			return // cancelled
		}
		defer func() { _ = wc.Close() }()

		if err := app.ExportTo(wc); err != nil {
			dialog.ShowError(err, app.Window)
			return
		}
		slog.Info(config.MsgExported,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyFile, wc.URI().Path())
	}, app.Window)

	d.SetFileName(config.ExportFileName)
	d.SetFilter(storage.NewExtensionFileFilter([]string{config.ExtVCF}))
	d.Show()
}

// ExportTo writes the current sequence as vCards.
func (app *ContactManagerApp) ExportTo(w io.Writer) error {
	contacts := app.Store.Contacts()
	if err := contact.EncodeVCards(w, contacts); err != nil {
		slog.Error(config.ErrExport, config.LogKeyComponent, config.CompUI, config.LogKeyError, err)
		return fmt.Errorf("%s: %w", config.ErrExport, err)
	}
	return nil
}
