// Package state holds the contact sequence and the draft of the creation form.
package state

import (
	"log/slog"
	"slices"
	"sync"

	"github.com/contactmanager/contact-manager/internal/config"
	"github.com/contactmanager/contact-manager/internal/contact"
)

// Store owns the in-memory contact sequence and the draft.
// It is safe for concurrent use: UI callbacks and network completions
// run on different goroutines.
type Store struct {
	mu       sync.RWMutex
	contacts []contact.Contact
	draft    contact.Contact
	loaded   bool

	listenersMu sync.Mutex
	listeners   []func()
}

// New returns a store with an empty sequence and an empty draft.
func New() *Store {
	return &Store{
		contacts: make([]contact.Contact, 0),
		draft:    contact.Empty(),
	}
}

// Subscribe registers fn to run after every mutation.
// Listeners run on the mutating goroutine, outside the store lock.
func (s *Store) Subscribe(fn func()) {
	s.listenersMu.Lock()
	s.listeners = append(s.listeners, fn)
	s.listenersMu.Unlock()
}

func (s *Store) notify() {
	s.listenersMu.Lock()
	listeners := slices.Clone(s.listeners)
	s.listenersMu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}

// Contacts returns a copy of the sequence.
func (s *Store) Contacts() []contact.Contact {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.contacts)
}

// Draft returns the current draft.
func (s *Store) Draft() contact.Contact {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.draft
}

// Find returns the first entry with the given id.
func (s *Store) Find(id contact.ID) (contact.Contact, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := slices.IndexFunc(s.contacts, func(c contact.Contact) bool { return c.ID == id })
	if i < 0 {
		return contact.Contact{}, false
	}
	return s.contacts[i], true
}

// Loaded reports whether SetContacts has run, i.e. the remote list arrived.
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// SetContacts replaces the sequence wholesale.
func (s *Store) SetContacts(contacts []contact.Contact) {
	s.mu.Lock()
	s.contacts = slices.Clone(contacts)
	if s.contacts == nil {
		s.contacts = make([]contact.Contact, 0)
	}
	s.loaded = true
	n := len(s.contacts)
	s.mu.Unlock()

	slog.Debug(config.MsgContactsSet,
		config.LogKeyComponent, config.CompStore,
		config.LogKeyCount, n)
	s.notify()
}

// SetDraft replaces the draft wholesale.
func (s *Store) SetDraft(d contact.Contact) {
	s.mu.Lock()
	s.draft = d
	s.mu.Unlock()
	s.notify()
}

// ResetDraft puts the empty draft back.
func (s *Store) ResetDraft() {
	s.SetDraft(contact.Empty())
	slog.Debug(config.MsgDraftReset, config.LogKeyComponent, config.CompStore)
}

// Append adds c at the end of the sequence.
func (s *Store) Append(c contact.Contact) {
	s.mu.Lock()
	s.contacts = append(s.contacts, c)
	s.mu.Unlock()
	s.notify()
}

// Replace swaps every entry whose id matches for c, in place.
// It reports whether an entry matched; when none does the sequence is unchanged.
func (s *Store) Replace(id contact.ID, c contact.Contact) bool {
	s.mu.Lock()
	replaced := false
	next := make([]contact.Contact, len(s.contacts))
	for i, existing := range s.contacts {
		if existing.ID == id {
			next[i] = c
			replaced = true
			continue
		}
		next[i] = existing
	}
	if replaced {
		s.contacts = next
	}
	s.mu.Unlock()

	if replaced {
		s.notify()
	}
	return replaced
}

// Remove drops every entry whose id matches and keeps the others in order.
// It reports whether anything was removed.
func (s *Store) Remove(id contact.ID) bool {
	s.mu.Lock()
	before := len(s.contacts)
	s.contacts = slices.DeleteFunc(slices.Clone(s.contacts), func(c contact.Contact) bool {
		return c.ID == id
	})
	removed := len(s.contacts) != before
	s.mu.Unlock()

	if removed {
		s.notify()
	}
	return removed
}
