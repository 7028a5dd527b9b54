package contact

import (
	"fmt"
	"io"

	"github.com/contactmanager/contact-manager/internal/config"
	"github.com/emersion/go-vcard"
)

// ToCard converts a contact to a vCard 4.0 card.
// Empty optional properties (UID, EMAIL, GEO) are left out.
func (c Contact) ToCard() vcard.Card {
	card := make(vcard.Card)
	card.SetValue(vcard.FieldFormattedName, c.Name)

	if c.Username != "" {
		card.SetValue(vcard.FieldNickname, c.Username)
	}
	if c.Email != "" {
		card.SetValue(vcard.FieldEmail, c.Email)
	}
	if !c.ID.IsZero() {
		card.SetValue(vcard.FieldUID, c.ID.String())
	}

	a := c.Address
	if a != (Address{}) {
		card.SetAddress(&vcard.Address{
			StreetAddress:   a.Street,
			ExtendedAddress: a.Suite,
			Locality:        a.City,
			PostalCode:      a.Zipcode,
		})
	}
	if a.Geo.Lat != "" || a.Geo.Lng != "" {
		card.SetValue(vcard.FieldGeolocation, fmt.Sprintf(config.GeoURIFormat, a.Geo.Lat, a.Geo.Lng))
	}

	vcard.ToV4(card)
	return card
}

// EncodeVCards writes the sequence as a stream of vCards, preserving order.
func EncodeVCards(w io.Writer, contacts []Contact) error {
	enc := vcard.NewEncoder(w)
	for _, c := range contacts {
		if err := enc.Encode(c.ToCard()); err != nil {
			return fmt.Errorf("%s: %w", config.ErrVCardEncode, err)
		}
	}
	return nil
}
