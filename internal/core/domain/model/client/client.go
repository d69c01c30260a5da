package client

import (
	"errors"
	"net/mail"
	"strings"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

// LastSeenToday is the display hint given to clients who just registered.
const LastSeenToday = "Aujourd'hui"

var (
	ErrNameIsRequired         = errs.NewValueIsRequiredError("name")
	ErrPhoneIsRequired        = errs.NewValueIsRequiredError("phone")
	ErrClientIsNotConstructed = errors.New("Client must be created via NewClient or RestoreClient")
)

// Client is a customer of the shop.
type Client struct {
	id           kernel.UUID
	name         string
	phone        string
	email        string
	measurements Measurements
	lastSeen     string
	guard        guard.ConstructorGuard
}

// NewClient registers a walk-in or catalog client, with no measurements yet.
func NewClient(id kernel.UUID, name, phone, email string) (*Client, error) {
	return RestoreClient(id, name, phone, email, Measurements{}, LastSeenToday)
}

// RestoreClient rebuilds a client from storage or seed data.
func RestoreClient(id kernel.UUID, name, phone, email string, m Measurements, lastSeen string) (*Client, error) {
	name, phone, email = strings.TrimSpace(name), strings.TrimSpace(phone), strings.TrimSpace(email)

	errList := []error{id.Validate()}
	if name == "" {
		errList = append(errList, ErrNameIsRequired)
	}
	if phone == "" {
		errList = append(errList, ErrPhoneIsRequired)
	}
	if email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause("email", err))
		}
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	return &Client{
		id:           id,
		name:         name,
		phone:        phone,
		email:        email,
		measurements: m,
		lastSeen:     lastSeen,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c *Client) Validate() error {
	if c == nil {
		return ErrClientIsNotConstructed
	}
	return c.guard.Validate(ErrClientIsNotConstructed)
}

func (c *Client) ID() kernel.UUID            { return c.id }
func (c *Client) Name() string               { return c.name }
func (c *Client) Phone() string              { return c.phone }
func (c *Client) Email() string              { return c.email }
func (c *Client) Measurements() Measurements { return c.measurements }
func (c *Client) LastSeen() string           { return c.lastSeen }

// UpdateMeasurements replaces the recorded measurements.
func (c *Client) UpdateMeasurements(m Measurements) {
	c.measurements = m
}
