package ui

import (
	"errors"
	"strconv"

	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
	"github.com/contactmanager/contact-manager/internal/config"
)

// PortEntry is an Entry for TCP port numbers.
// Keystrokes other than digits are dropped; pasted text is caught by Validator.
type PortEntry struct {
	widget.Entry
}

// NewPortEntry creates a port entry whose validation messages come from msg.
func NewPortEntry(msg func(key string) string) *PortEntry {
	e := &PortEntry{}
	e.ExtendBaseWidget(e)
	e.Validator = func(s string) error {
		return validatePort(s, msg)
	}
	return e
}

// TypedRune accepts 0-9 only.
func (e *PortEntry) TypedRune(r rune) {
	if r >= '0' && r <= '9' {
		e.Entry.TypedRune(r)
	}
}

// Keyboard requests the numeric keypad on mobile.
func (e *PortEntry) Keyboard() mobile.KeyboardType {
	return mobile.NumberKeyboard
}

func validatePort(s string, msg func(string) string) error {
	if s == "" {
		return errors.New(msg(config.TKeyErrPortReq))
	}
	port, err := strconv.Atoi(s)
	if err != nil {
		return errors.New(msg(config.TKeyErrPortNum))
	}
	if port < config.MinPort || port > config.MaxPort {
		return errors.New(msg(config.TKeyErrPortRange))
	}
	return nil
}
