package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/contactmanager/contact-manager/internal/config"
	"github.com/contactmanager/contact-manager/internal/contact"
)

// ErrUnknownContact is returned by Update when the id is not in the sequence.
var ErrUnknownContact = errors.New(config.ErrUnknownContact)

// Store is the part of the state holder the Manager mutates.
type Store interface {
	Contacts() []contact.Contact
	Draft() contact.Contact
	Find(id contact.ID) (contact.Contact, bool)
	SetContacts(contacts []contact.Contact)
	ResetDraft()
	Append(c contact.Contact)
	Replace(id contact.ID, c contact.Contact) bool
	Remove(id contact.ID) bool
}

// Manager runs the four contact operations.
// Each call blocks until the remote answers, then applies its result to the
// store. A failed call is logged and leaves the store untouched. Nothing is
// retried, and concurrent calls on the same id are not ordered: whichever
// completes last wins.
type Manager struct {
	Remote Remote
	Store  Store
}

// NewManager wires a remote and a store.
func NewManager(remote Remote, store Store) *Manager {
	return &Manager{Remote: remote, Store: store}
}

// Load replaces the sequence with the remote list.
func (m *Manager) Load(ctx context.Context) error {
	start := time.Now()
	log := m.logger(config.OpList)

	contacts, err := m.Remote.List(ctx)
	if err != nil {
		log.ErrorContext(ctx, config.ErrListContacts, config.LogKeyError, err)
		return fmt.Errorf("%s: %w", config.ErrListContacts, err)
	}

	m.Store.SetContacts(contacts)
	log.InfoContext(ctx, config.MsgContactsLoaded,
		config.LogKeyCount, len(contacts),
		config.LogKeyDuration, time.Since(start).Milliseconds())
	return nil
}

// Add posts the draft, appends the created contact and resets the draft.
func (m *Manager) Add(ctx context.Context) error {
	log := m.logger(config.OpCreate)

	created, err := m.Remote.Create(ctx, m.Store.Draft())
	if err != nil {
		log.ErrorContext(ctx, config.ErrAddContact, config.LogKeyError, err)
		return fmt.Errorf("%s: %w", config.ErrAddContact, err)
	}

	m.Store.Append(created)
	m.Store.ResetDraft()
	log.InfoContext(ctx, config.MsgContactAdded, config.LogKeyID, created.ID.String())
	return nil
}

// Update sends the current entry for id and stores the server's answer in its place.
func (m *Manager) Update(ctx context.Context, id contact.ID) error {
	log := m.logger(config.OpUpdate).With(config.LogKeyID, id.String())

	existing, ok := m.Store.Find(id)
	if !ok {
		log.ErrorContext(ctx, config.ErrUpdateContact, config.LogKeyError, ErrUnknownContact)
		return fmt.Errorf("%s: %w", config.ErrUpdateContact, ErrUnknownContact)
	}

	updated, err := m.Remote.Update(ctx, id, existing)
	if err != nil {
		log.ErrorContext(ctx, config.ErrUpdateContact, config.LogKeyError, err)
		return fmt.Errorf("%s: %w", config.ErrUpdateContact, err)
	}

	if !m.Store.Replace(id, updated) {
		// Deleted while the request was in flight.
		log.WarnContext(ctx, config.MsgNoMatchOnUpdate)
		return nil
	}
	log.InfoContext(ctx, config.MsgContactUpdated)
	return nil
}

// Delete removes id remotely, then from the sequence.
func (m *Manager) Delete(ctx context.Context, id contact.ID) error {
	log := m.logger(config.OpDelete).With(config.LogKeyID, id.String())

	if err := m.Remote.Delete(ctx, id); err != nil {
		log.ErrorContext(ctx, config.ErrDeleteContact, config.LogKeyError, err)
		return fmt.Errorf("%s: %w", config.ErrDeleteContact, err)
	}

	m.Store.Remove(id)
	log.InfoContext(ctx, config.MsgContactDeleted)
	return nil
}

func (m *Manager) logger(op string) *slog.Logger {
	return slog.With(
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyOp, op,
	)
}
