package ui

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/contactmanager/contact-manager/internal/config"
	"github.com/contactmanager/contact-manager/internal/contact"
)

// contactCard is the read-only view of one contact with its two actions.
type contactCard struct {
	id        contact.ID
	card      *widget.Card
	details   *widget.Label
	updateBtn *widget.Button
	deleteBtn *widget.Button
	root      fyne.CanvasObject
}

// contactList renders the sequence as a grid of cards keyed by id.
type contactList struct {
	app      *ContactManagerApp
	title    *widget.Label
	grid     *fyne.Container
	cards    map[contact.ID]*contactCard
	rendered []contact.Contact
}

func newContactList(app *ContactManagerApp) *contactList {
	title := widget.NewLabel(app.GetMsg(config.TKeyListTitle))
	title.TextStyle = fyne.TextStyle{Bold: true}

	return &contactList{
		app:   app,
		title: title,
		grid:  container.NewGridWithColumns(config.ListColumns),
		cards: make(map[contact.ID]*contactCard),
	}
}

// render rebuilds the grid when the sequence differs from the last render.
// Cards are reused by id. It reports whether anything changed.
func (l *contactList) render(contacts []contact.Contact) bool {
	if l.rendered != nil && slices.Equal(l.rendered, contacts) {
		return false
	}
	l.rendered = contacts

	slog.Debug(config.MsgRender,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyCount, len(contacts))

	next := make(map[contact.ID]*contactCard, len(contacts))
	objects := make([]fyne.CanvasObject, 0, len(contacts))

	for _, c := range contacts {
		cc, ok := l.cards[c.ID]
		if _, dup := next[c.ID]; dup || !ok {
			// Duplicate ids are possible; each gets its own card.
			cc = l.newCard(c.ID)
		}
		if _, dup := next[c.ID]; !dup {
			next[c.ID] = cc
		}
		l.fill(cc, c)
		objects = append(objects, cc.root)
	}

	l.cards = next
	l.grid.Objects = objects
	l.grid.Refresh()
	return true
}

func (l *contactList) newCard(id contact.ID) *contactCard {
	cc := &contactCard{id: id}

	cc.details = widget.NewLabel("")
	cc.details.Wrapping = fyne.TextWrapWord

	cc.updateBtn = newIconButton(l.app.GetMsg(config.TKeyBtnUpdate), theme.ViewRefreshIcon(), widget.WarningImportance,
		func() { l.app.UpdateContact(cc.id) })
	cc.deleteBtn = newIconButton(l.app.GetMsg(config.TKeyBtnDelete), theme.DeleteIcon(), widget.DangerImportance,
		func() { l.app.DeleteContact(cc.id) })

	actions := container.NewHBox(cc.updateBtn, cc.deleteBtn)
	cc.card = widget.NewCard("", "", container.NewVBox(cc.details, actions))
	cc.root = cc.card
	return cc
}

// fill writes one contact into its card.
func (l *contactList) fill(cc *contactCard, c contact.Contact) {
	cc.id = c.ID
	cc.card.SetTitle(c.Title())
	cc.details.SetText(l.detailText(c))
	cc.updateBtn.SetText(l.app.GetMsg(config.TKeyBtnUpdate))
	cc.deleteBtn.SetText(l.app.GetMsg(config.TKeyBtnDelete))
}

// detailText composes the email, address and geo lines of a card.
func (l *contactList) detailText(c contact.Contact) string {
	lines := []string{
		fmt.Sprintf(config.FormatCardLine, l.app.GetMsg(config.TKeyLblEmail), c.Email),
		fmt.Sprintf(config.FormatCardLine, l.app.GetMsg(config.TKeyLblAddress), c.AddressLine()),
		fmt.Sprintf(config.FormatCardLine, l.app.GetMsg(config.TKeyLblGeo), c.GeoLine()),
	}
	return strings.Join(lines, "\n")
}

func (l *contactList) relabel() {
	l.title.SetText(l.app.GetMsg(config.TKeyListTitle))
	// Force the next render to refill every card.
	l.rendered = nil
}

// buildLayout stacks the form above the list inside one scroll container.
func (app *ContactManagerApp) buildLayout() fyne.CanvasObject {
	body := container.NewVBox(
		app.form.card,
		app.list.title,
		app.list.grid,
	)
	return container.NewVScroll(container.NewPadded(body))
}
