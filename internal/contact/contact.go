package contact

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/contactmanager/contact-manager/internal/config"
)

// ErrInvalidID is returned when a JSON id is neither a number nor a string.
var ErrInvalidID = errors.New(config.ErrInvalidID)

// ID identifies a contact within the in-memory sequence.
//
// It holds the id as the JSON token the API sent: a number keeps its digits
// (ID("5")), a string keeps its quotes (TextID("007") is `"007"`). Marshalling
// writes the token back unchanged, so a PUT echoes the id in its original
// kind, and two ids are equal exactly when they are the same JSON value.
// Locally generated ids are numbers.
type ID string

// TextID returns the id of a JSON string value.
func TextID(s string) ID {
	b, _ := json.Marshal(s)
	return ID(b)
}

// IsZero reports whether the id is unset.
func (id ID) IsZero() bool {
	return id == ""
}

// IsNumeric reports whether the id is a JSON number.
func (id ID) IsNumeric() bool {
	if id == "" || (id[0] != '-' && (id[0] < '0' || id[0] > '9')) {
		return false
	}
	return json.Valid([]byte(id))
}

// String returns the plain text of the id, used in URLs, logs and vCards.
func (id ID) String() string {
	if len(id) > 0 && id[0] == '"' {
		var s string
		if err := json.Unmarshal([]byte(id), &s); err == nil {
			return s
		}
	}
	return string(id)
}

// MarshalJSON writes the id back in the kind it was read.
func (id ID) MarshalJSON() ([]byte, error) {
	switch {
	case id == "":
		return []byte("null"), nil
	case id.IsNumeric():
		return []byte(id), nil
	case id[0] == '"' && json.Valid([]byte(id)):
		return []byte(id), nil
	}
	// Built from plain text rather than decoded: send it as a string.
	return json.Marshal(string(id))
}

// UnmarshalJSON accepts a JSON number, a JSON string or null.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*id = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidID, err)
		}
		// Re-encoded so that equal strings give equal ids whatever their escaping.
		*id = TextID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidID, data)
	}
	*id = ID(n.String())
	return nil
}

// Geo holds coordinates exactly as the API sends them.
// They are never parsed as numbers.
type Geo struct {
	Lat string `json:"lat"`
	Lng string `json:"lng"`
}

// Address is the postal address of a contact.
type Address struct {
	Street  string `json:"street"`
	Suite   string `json:"suite"`
	City    string `json:"city"`
	Zipcode string `json:"zipcode"`
	Geo     Geo    `json:"geo"`
}

// Contact is one person record of the users resource.
type Contact struct {
	ID       ID      `json:"id,omitempty"`
	Name     string  `json:"name"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Address  Address `json:"address"`
}

// Empty returns the blank draft. Every nested field is present and empty.
func Empty() Contact {
	return Contact{}
}

// Title is the card heading: "name (username)".
func (c Contact) Title() string {
	return fmt.Sprintf(config.FormatTitle, c.Name, c.Username)
}

// AddressLine composes "street, suite, city, zipcode".
func (c Contact) AddressLine() string {
	a := c.Address
	return fmt.Sprintf(config.FormatAddressLine, a.Street, a.Suite, a.City, a.Zipcode)
}

// GeoLine composes "lat, lng".
func (c Contact) GeoLine() string {
	return fmt.Sprintf(config.FormatGeoLine, c.Address.Geo.Lat, c.Address.Geo.Lng)
}
