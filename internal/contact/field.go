package contact

import "github.com/contactmanager/contact-manager/internal/config"

// Field names one editable text field of a Contact, in form order.
type Field int

const (
	FieldName Field = iota
	FieldUsername
	FieldEmail
	FieldStreet
	FieldSuite
	FieldCity
	FieldZipcode
	FieldLat
	FieldLng
)

// Fields lists every form field in display order.
var Fields = []Field{
	FieldName,
	FieldUsername,
	FieldEmail,
	FieldStreet,
	FieldSuite,
	FieldCity,
	FieldZipcode,
	FieldLat,
	FieldLng,
}

// TranslationKey returns the i18n key of the field's placeholder.
func (f Field) TranslationKey() string {
	switch f {
	case FieldName:
		return config.TKeyFieldName
	case FieldUsername:
		return config.TKeyFieldUsername
	case FieldEmail:
		return config.TKeyFieldEmail
	case FieldStreet:
		return config.TKeyFieldStreet
	case FieldSuite:
		return config.TKeyFieldSuite
	case FieldCity:
		return config.TKeyFieldCity
	case FieldZipcode:
		return config.TKeyFieldZipcode
	case FieldLat:
		return config.TKeyFieldLat
	case FieldLng:
		return config.TKeyFieldLng
	}
	return ""
}

// Value reads a single field.
func (c Contact) Value(f Field) string {
	switch f {
	case FieldName:
		return c.Name
	case FieldUsername:
		return c.Username
	case FieldEmail:
		return c.Email
	case FieldStreet:
		return c.Address.Street
	case FieldSuite:
		return c.Address.Suite
	case FieldCity:
		return c.Address.City
	case FieldZipcode:
		return c.Address.Zipcode
	case FieldLat:
		return c.Address.Geo.Lat
	case FieldLng:
		return c.Address.Geo.Lng
	}
	return ""
}

// With returns a copy of c where only field f holds value.
// c is passed by value, so nested siblings are carried over untouched.
func (c Contact) With(f Field, value string) Contact {
	switch f {
	case FieldName:
		c.Name = value
	case FieldUsername:
		c.Username = value
	case FieldEmail:
		c.Email = value
	case FieldStreet:
		c.Address.Street = value
	case FieldSuite:
		c.Address.Suite = value
	case FieldCity:
		c.Address.City = value
	case FieldZipcode:
		c.Address.Zipcode = value
	case FieldLat:
		c.Address.Geo.Lat = value
	case FieldLng:
		c.Address.Geo.Lng = value
	}
	return c
}
