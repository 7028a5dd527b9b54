package contact_test

import (
	"encoding/json"
	"testing"

	"github.com/contactmanager/contact-manager/internal/contact"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleUser is a trimmed record as served by the users resource.
const sampleUser = `{
  "id": 5,
  "name": "Chelsey Dietrich",
  "username": "Kamren",
  "email": "Lucio_Hettinger@annie.ca",
  "address": {
    "street": "Skiles Walks",
    "suite": "Suite 351",
    "city": "Roscoeview",
    "zipcode": "33263",
    "geo": {"lat": "-31.8129", "lng": "62.5342"}
  },
  "phone": "(254)954-1289",
  "website": "demarco.info"
}`

func TestContact_DecodeAPIRecord(t *testing.T) {
	var c contact.Contact
	require.NoError(t, json.Unmarshal([]byte(sampleUser), &c))

	assert.Equal(t, contact.ID("5"), c.ID)
	assert.Equal(t, "Chelsey Dietrich", c.Name)
	assert.Equal(t, "Kamren", c.Username)
	assert.Equal(t, "Roscoeview", c.Address.City)
	// Coordinates stay text, sign and precision included.
	assert.Equal(t, "-31.8129", c.Address.Geo.Lat)
	assert.Equal(t, "62.5342", c.Address.Geo.Lng)
}

func TestID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    contact.ID
		wantErr bool
	}{
		{"Number", `7`, "7", false},
		{"LargeTimestamp", `1718000000000`, "1718000000000", false},
		{"String", `"abc-1"`, contact.TextID("abc-1"), false},
		{"NumericString", `"42"`, contact.TextID("42"), false},
		{"LeadingZeros", `"007"`, contact.TextID("007"), false},
		{"EscapedString", `"\u0061b"`, contact.TextID("ab"), false},
		{"Null", `null`, "", false},
		{"Bool", `true`, "", true},
		{"Object", `{}`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id contact.ID
			err := json.Unmarshal([]byte(tt.input), &id)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}

func TestID_MarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		id   contact.ID
		want string
	}{
		{"Number", contact.ID("12"), `12`},
		{"Timestamp", contact.ID("1748779200000"), `1748779200000`},
		{"Text", contact.TextID("x-1"), `"x-1"`},
		{"NumericText", contact.TextID("42"), `"42"`},
		{"LeadingZeros", contact.TextID("007"), `"007"`},
		{"Signed", contact.TextID("+5"), `"+5"`},
		{"PlainNonNumber", contact.ID("+5"), `"+5"`},
		{"Zero", contact.ID(""), `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(b))
		})
	}
}

func TestID_KeepsJSONKind(t *testing.T) {
	var got []struct {
		ID contact.ID `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(`[{"id":"007"},{"id":"42"},{"id":42},{"id":"+5"}]`), &got))
	require.Len(t, got, 4)

	assert.NotEqual(t, got[1].ID, got[2].ID, `"42" and 42 are different ids`)
	assert.Equal(t, "42", got[1].ID.String())
	assert.Equal(t, "42", got[2].ID.String())
	assert.False(t, got[1].ID.IsNumeric())
	assert.True(t, got[2].ID.IsNumeric())

	b, err := json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"007"},{"id":"42"},{"id":42},{"id":"+5"}]`, string(b))
}

func TestContact_DraftBodyOmitsID(t *testing.T) {
	b, err := json.Marshal(contact.Empty())
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(b, &raw))

	assert.NotContains(t, raw, "id")
	// The nested shape is always present, even when empty.
	addr, ok := raw["address"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, addr, "geo")
	assert.Equal(t, "", addr["city"])
}

func TestContact_DisplayLines(t *testing.T) {
	c := contact.Contact{
		Name:     "Ana",
		Username: "ana1",
		Address: contact.Address{
			Street: "Main", Suite: "1", City: "NYC", Zipcode: "10001",
			Geo: contact.Geo{Lat: "0", Lng: "0"},
		},
	}

	assert.Equal(t, "Ana (ana1)", c.Title())
	assert.Equal(t, "Main, 1, NYC, 10001", c.AddressLine())
	assert.Equal(t, "0, 0", c.GeoLine())
}

func TestContact_WithChangesOneField(t *testing.T) {
	base := contact.Contact{
		ID:       "3",
		Name:     "Ana",
		Username: "ana1",
		Email:    "a@x.com",
		Address: contact.Address{
			Street: "Main", Suite: "1", City: "NYC", Zipcode: "10001",
			Geo: contact.Geo{Lat: "1", Lng: "2"},
		},
	}

	for _, f := range contact.Fields {
		changed := base.With(f, "changed")
		assert.Equal(t, "changed", changed.Value(f))

		// Every other field is untouched.
		for _, other := range contact.Fields {
			if other != f {
				assert.Equal(t, base.Value(other), changed.Value(other))
			}
		}
		assert.Equal(t, base.ID, changed.ID)
	}

	// The receiver is a copy.
	assert.Equal(t, "NYC", base.Address.City)
}

func TestFields_HaveTranslationKeys(t *testing.T) {
	assert.Len(t, contact.Fields, 9)
	seen := map[string]bool{}
	for _, f := range contact.Fields {
		key := f.TranslationKey()
		assert.NotEmpty(t, key)
		assert.False(t, seen[key], "duplicate key %s", key)
		seen[key] = true
	}
}
