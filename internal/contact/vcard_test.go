package contact_test

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/contactmanager/contact-manager/internal/contact"
	"github.com/emersion/go-vcard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeVCards_RoundTrip(t *testing.T) {
	contacts := []contact.Contact{
		{
			ID: "1", Name: "Leanne Graham", Username: "Bret", Email: "Sincere@april.biz",
			Address: contact.Address{
				Street: "Kulas Light", Suite: "Apt. 556", City: "Gwenborough", Zipcode: "92998-3874",
				Geo: contact.Geo{Lat: "-37.3159", Lng: "81.1496"},
			},
		},
		{ID: "1718000000000", Name: "Ana"},
	}

	var buf bytes.Buffer
	require.NoError(t, contact.EncodeVCards(&buf, contacts))

	dec := vcard.NewDecoder(&buf)
	var cards []vcard.Card
	for {
		card, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		cards = append(cards, card)
	}
	require.Len(t, cards, 2)

	first := cards[0]
	assert.Equal(t, "4.0", first.Value(vcard.FieldVersion))
	assert.Equal(t, "Leanne Graham", first.PreferredValue(vcard.FieldFormattedName))
	assert.Equal(t, "Bret", first.Value(vcard.FieldNickname))
	assert.Equal(t, "Sincere@april.biz", first.Value(vcard.FieldEmail))
	assert.Equal(t, "1", first.Value(vcard.FieldUID))
	assert.Equal(t, "geo:-37.3159,81.1496", first.Value(vcard.FieldGeolocation))

	addr := first.Address()
	require.NotNil(t, addr)
	assert.Equal(t, "Kulas Light", addr.StreetAddress)
	assert.Equal(t, "Apt. 556", addr.ExtendedAddress)
	assert.Equal(t, "Gwenborough", addr.Locality)
	assert.Equal(t, "92998-3874", addr.PostalCode)

	second := cards[1]
	assert.Equal(t, "Ana", second.PreferredValue(vcard.FieldFormattedName))
	assert.Nil(t, second.Get(vcard.FieldEmail), "empty email is not written")
	assert.Nil(t, second.Get(vcard.FieldGeolocation))
	assert.Nil(t, second.Address())
}

func TestEncodeVCards_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, contact.EncodeVCards(&buf, nil))
	assert.Zero(t, buf.Len())
}
