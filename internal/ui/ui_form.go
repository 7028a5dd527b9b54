package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/contactmanager/contact-manager/internal/config"
	"github.com/contactmanager/contact-manager/internal/contact"
)

// contactForm is the "new contact" card: one entry per field and an add button.
type contactForm struct {
	app     *ContactManagerApp
	card    *widget.Card
	entries map[contact.Field]*widget.Entry
	addBtn  *widget.Button
}

func newContactForm(app *ContactManagerApp) *contactForm {
	f := &contactForm{
		app:     app,
		entries: make(map[contact.Field]*widget.Entry, len(contact.Fields)),
	}

	rows := make([]fyne.CanvasObject, 0, len(contact.Fields)+1)
	for _, field := range contact.Fields {
		entry := widget.NewEntry()
		entry.SetText(app.Store.Draft().Value(field))

		// Bind after the initial SetText so it does not echo into the store.
		entry.OnChanged = f.bind(field)

		f.entries[field] = entry
		rows = append(rows, entry)
	}

	f.addBtn = newIconButton(app.GetMsg(config.TKeyBtnAdd), theme.ContentAddIcon(), widget.HighImportance, app.AddContact)
	rows = append(rows, f.addBtn)

	f.card = widget.NewCard(app.GetMsg(config.TKeyFormTitle), "", container.NewVBox(rows...))
	f.relabel()
	return f
}

// bind returns the change handler of one entry: the draft is replaced by a
// copy where only that field differs.
func (f *contactForm) bind(field contact.Field) func(string) {
	return func(text string) {
		draft := f.app.Store.Draft()
		if draft.Value(field) == text {
			return
		}
		f.app.Store.SetDraft(draft.With(field, text))
	}
}

// render copies the draft into the entries that disagree with it.
func (f *contactForm) render(draft contact.Contact) {
	for field, entry := range f.entries {
		if v := draft.Value(field); entry.Text != v {
			entry.SetText(v)
		}
	}
}

func (f *contactForm) relabel() {
	for field, entry := range f.entries {
		entry.SetPlaceHolder(f.app.GetMsg(field.TranslationKey()))
	}
	f.addBtn.SetText(f.app.GetMsg(config.TKeyBtnAdd))
	f.card.SetTitle(f.app.GetMsg(config.TKeyFormTitle))
}
