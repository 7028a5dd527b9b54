package engine_test

import (
	"context"
	"errors"
	"testing"

	"github.com/contactmanager/contact-manager/internal/contact"
	"github.com/contactmanager/contact-manager/internal/engine"
	"github.com/contactmanager/contact-manager/internal/state"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// -----------------------------------------------------------------------------
// Mocks
// -----------------------------------------------------------------------------

// MockRemote simulates the contacts resource using `testify/mock`.
type MockRemote struct {
	mock.Mock
}

func (m *MockRemote) List(ctx context.Context) ([]contact.Contact, error) {
	args := m.Called(ctx)
	if r := args.Get(0); r != nil {
		return r.([]contact.Contact), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRemote) Create(ctx context.Context, c contact.Contact) (contact.Contact, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(contact.Contact), args.Error(1)
}

func (m *MockRemote) Update(ctx context.Context, id contact.ID, c contact.Contact) (contact.Contact, error) {
	args := m.Called(ctx, id, c)
	return args.Get(0).(contact.Contact), args.Error(1)
}

func (m *MockRemote) Delete(ctx context.Context, id contact.ID) error {
	return m.Called(ctx, id).Error(0)
}

// -----------------------------------------------------------------------------
// Fixtures
// -----------------------------------------------------------------------------

var errOffline = errors.New("connection refused")

func sampleContacts() []contact.Contact {
	return []contact.Contact{
		{ID: "1", Name: "Leanne Graham", Username: "Bret", Email: "Sincere@april.biz"},
		{ID: "5", Name: "Chelsey Dietrich", Username: "Kamren", Email: "Lucio_Hettinger@annie.ca",
			Address: contact.Address{City: "Roscoeview", Geo: contact.Geo{Lat: "-31.8129", Lng: "62.5342"}}},
		{ID: "9", Name: "Glenna Reichert", Username: "Delphine", Email: "Chaim_McDermott@dana.io"},
	}
}

func anaDraft() contact.Contact {
	return contact.Contact{
		Name: "Ana", Username: "ana1", Email: "a@x.com",
		Address: contact.Address{
			Street: "Main", Suite: "1", City: "NYC", Zipcode: "10001",
			Geo: contact.Geo{Lat: "0", Lng: "0"},
		},
	}
}

func setup(t *testing.T) (*engine.Manager, *MockRemote, *state.Store) {
	t.Helper()
	remote := new(MockRemote)
	store := state.New()
	t.Cleanup(func() { remote.AssertExpectations(t) })
	return engine.NewManager(remote, store), remote, store
}

// snapshot captures everything a failed call must leave untouched.
type snapshot struct {
	Contacts []contact.Contact
	Draft    contact.Contact
}

func take(s *state.Store) snapshot {
	return snapshot{Contacts: s.Contacts(), Draft: s.Draft()}
}

// -----------------------------------------------------------------------------
// Test Cases
// -----------------------------------------------------------------------------

func TestManager_Load(t *testing.T) {
	m, remote, store := setup(t)
	remote.On("List", mock.Anything).Return(sampleContacts(), nil)

	require.NoError(t, m.Load(context.Background()))

	if diff := cmp.Diff(sampleContacts(), store.Contacts()); diff != "" {
		t.Errorf("loaded sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestManager_Add(t *testing.T) {
	m, remote, store := setup(t)
	store.SetContacts(sampleContacts())
	store.SetDraft(anaDraft())

	created := anaDraft()
	created.ID = "1748779200000"
	remote.On("Create", mock.Anything, anaDraft()).Return(created, nil)

	require.NoError(t, m.Add(context.Background()))

	got := store.Contacts()
	require.Len(t, got, len(sampleContacts())+1)

	last := got[len(got)-1]
	assert.Equal(t, "Ana", last.Name)
	for _, existing := range got[:len(got)-1] {
		assert.NotEqual(t, existing.ID, last.ID, "new id must be unique")
	}
	assert.Equal(t, contact.Empty(), store.Draft(), "draft resets after a successful create")
}

func TestManager_Update(t *testing.T) {
	m, remote, store := setup(t)
	store.SetContacts(sampleContacts())

	current := sampleContacts()[1]
	fromServer := current
	fromServer.Email = "new@annie.ca"

	// The body is the entry currently in the list, not the draft.
	remote.On("Update", mock.Anything, contact.ID("5"), current).Return(fromServer, nil)

	require.NoError(t, m.Update(context.Background(), "5"))

	want := sampleContacts()
	want[1] = fromServer
	if diff := cmp.Diff(want, store.Contacts()); diff != "" {
		t.Errorf("only entry 5 should change (-want +got):\n%s", diff)
	}
}

func TestManager_UpdateUnknownID(t *testing.T) {
	m, _, store := setup(t)
	store.SetContacts(sampleContacts())

	err := m.Update(context.Background(), "42")
	require.Error(t, err)
	assert.ErrorIs(t, err, engine.ErrUnknownContact)
}

// TestManager_UpdateAfterDelete covers an update resolving after its entry is gone.
func TestManager_UpdateAfterDelete(t *testing.T) {
	m, remote, store := setup(t)
	store.SetContacts(sampleContacts())

	remote.On("Update", mock.Anything, contact.ID("5"), sampleContacts()[1]).
		Run(func(mock.Arguments) { store.Remove("5") }).
		Return(sampleContacts()[1], nil)

	require.NoError(t, m.Update(context.Background(), "5"))

	_, found := store.Find("5")
	assert.False(t, found, "a late update does not bring a deleted entry back")
	assert.Len(t, store.Contacts(), 2)
}

func TestManager_Delete(t *testing.T) {
	m, remote, store := setup(t)
	store.SetContacts(sampleContacts())
	remote.On("Delete", mock.Anything, contact.ID("5")).Return(nil)

	require.NoError(t, m.Delete(context.Background(), "5"))

	want := []contact.Contact{sampleContacts()[0], sampleContacts()[2]}
	if diff := cmp.Diff(want, store.Contacts()); diff != "" {
		t.Errorf("sequence mismatch (-want +got):\n%s", diff)
	}
}

// TestManager_FailureLeavesStateUntouched runs every operation against a failing remote.
func TestManager_FailureLeavesStateUntouched(t *testing.T) {
	tests := []struct {
		name string
		arm  func(r *MockRemote)
		run  func(m *engine.Manager) error
	}{
		{
			name: "List",
			arm:  func(r *MockRemote) { r.On("List", mock.Anything).Return(nil, errOffline) },
			run:  func(m *engine.Manager) error { return m.Load(context.Background()) },
		},
		{
			name: "Create",
			arm: func(r *MockRemote) {
				r.On("Create", mock.Anything, mock.Anything).Return(contact.Contact{}, errOffline)
			},
			run: func(m *engine.Manager) error { return m.Add(context.Background()) },
		},
		{
			name: "Update",
			arm: func(r *MockRemote) {
				r.On("Update", mock.Anything, contact.ID("5"), mock.Anything).Return(contact.Contact{}, errOffline)
			},
			run: func(m *engine.Manager) error { return m.Update(context.Background(), "5") },
		},
		{
			name: "Delete",
			arm:  func(r *MockRemote) { r.On("Delete", mock.Anything, contact.ID("5")).Return(errOffline) },
			run:  func(m *engine.Manager) error { return m.Delete(context.Background(), "5") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, remote, store := setup(t)
			store.SetContacts(sampleContacts())
			store.SetDraft(anaDraft())
			tt.arm(remote)

			before := take(store)
			err := tt.run(m)

			require.Error(t, err)
			assert.ErrorIs(t, err, errOffline)
			if diff := cmp.Diff(before, take(store)); diff != "" {
				t.Errorf("state changed on failure (-before +after):\n%s", diff)
			}
		})
	}
}
