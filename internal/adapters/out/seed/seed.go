// Package seed loads the reference clients, catalog, workstations and orders
// the shop starts with.
package seed

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"time"

	"atelier/internal/core/domain/model/catalog"
	"atelier/internal/core/domain/model/client"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/domain/model/workstation"
	"atelier/internal/core/ports"
	"atelier/internal/pkg/errs"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultData []byte

type Data struct {
	Clients      []Client      `yaml:"clients"`
	Models       []Model       `yaml:"models"`
	Workstations []Workstation `yaml:"workstations"`
	Orders       []Order       `yaml:"orders"`
}

type Client struct {
	ID           string       `yaml:"id"`
	Name         string       `yaml:"name"`
	Phone        string       `yaml:"phone"`
	Email        string       `yaml:"email"`
	LastSeen     string       `yaml:"last_seen"`
	Measurements Measurements `yaml:"measurements"`
}

type Measurements struct {
	Height float64 `yaml:"height"`
	Chest  float64 `yaml:"chest"`
	Waist  float64 `yaml:"waist"`
	Hips   float64 `yaml:"hips"`
	Inseam float64 `yaml:"inseam"`
}

type Model struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Genre       string   `yaml:"genre"`
	Event       string   `yaml:"event"`
	Difficulty  string   `yaml:"difficulty"`
	Fabric      string   `yaml:"fabric"`
	Description string   `yaml:"description"`
	ImageURLs   []string `yaml:"image_urls"`
	PatternLink string   `yaml:"pattern_link"`
}

type Workstation struct {
	ID         string `yaml:"id"`
	Name       string `yaml:"name"`
	AccessCode string `yaml:"access_code"`
}

// Order dates default to the load time when PlacedAt is omitted.
type Order struct {
	ID            string     `yaml:"id"`
	TicketID      string     `yaml:"ticket_id"`
	ClientID      string     `yaml:"client_id"`
	ModelID       string     `yaml:"model_id"`
	PlacedAt      *time.Time `yaml:"placed_at"`
	Status        string     `yaml:"status"`
	Price         *int64     `yaml:"price"`
	Notes         string     `yaml:"notes"`
	WorkstationID string     `yaml:"workstation_id"`
}

// Default returns the embedded data set.
func Default() (Data, error) {
	return Parse(defaultData)
}

func Parse(raw []byte) (Data, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return Data{}, fmt.Errorf("seed: payload is empty")
	}
	var data Data
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return Data{}, fmt.Errorf("seed: decode: %w", err)
	}
	return data, nil
}

// Apply writes every record that is not stored yet, in one transaction.
// Existing records are left untouched, so running it twice is harmless.
func Apply(ctx context.Context, factory ports.UnitOfWorkFactory, data Data, now time.Time) (int, error) {
	uow := factory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	added := 0
	for _, c := range data.Clients {
		entity, err := c.toDomain()
		if err != nil {
			return 0, fmt.Errorf("seed: client %s: %w", c.ID, err)
		}
		ok, err := addMissing(ctx, entity.ID(), uow.ClientRepository().Get, uow.ClientRepository().Add, entity)
		if err != nil {
			return 0, fmt.Errorf("seed: client %s: %w", c.ID, err)
		}
		added += ok
	}

	for _, m := range data.Models {
		entity, err := m.toDomain()
		if err != nil {
			return 0, fmt.Errorf("seed: model %s: %w", m.ID, err)
		}
		ok, err := addMissing(ctx, entity.ID(), uow.CatalogRepository().Get, uow.CatalogRepository().Add, entity)
		if err != nil {
			return 0, fmt.Errorf("seed: model %s: %w", m.ID, err)
		}
		added += ok
	}

	for _, w := range data.Workstations {
		entity, err := w.toDomain()
		if err != nil {
			return 0, fmt.Errorf("seed: workstation %s: %w", w.ID, err)
		}
		ok, err := addMissing(ctx, entity.ID(), uow.WorkstationRepository().Get, uow.WorkstationRepository().Add, entity)
		if err != nil {
			return 0, fmt.Errorf("seed: workstation %s: %w", w.ID, err)
		}
		added += ok
	}

	for _, o := range data.Orders {
		entity, err := o.toDomain(now)
		if err != nil {
			return 0, fmt.Errorf("seed: order %s: %w", o.ID, err)
		}
		ok, err := addMissing(ctx, entity.ID(), uow.OrderRepository().Get, uow.OrderRepository().Add, entity)
		if err != nil {
			return 0, fmt.Errorf("seed: order %s: %w", o.ID, err)
		}
		added += ok
	}

	if err := uow.Commit(ctx); err != nil {
		return 0, err
	}
	return added, nil
}

func addMissing[T any](
	ctx context.Context,
	id kernel.UUID,
	get func(context.Context, kernel.UUID) (T, error),
	add func(context.Context, T) error,
	entity T,
) (int, error) {
	_, err := get(ctx, id)
	switch {
	case err == nil:
		return 0, nil
	case !errors.Is(err, errs.ErrObjectNotFound):
		return 0, err
	}
	if err = add(ctx, entity); err != nil {
		return 0, err
	}
	return 1, nil
}

func (c Client) toDomain() (*client.Client, error) {
	id, err := kernel.UUIDFromString(c.ID)
	if err != nil {
		return nil, err
	}
	m, err := client.NewMeasurements(
		c.Measurements.Height,
		c.Measurements.Chest,
		c.Measurements.Waist,
		c.Measurements.Hips,
		c.Measurements.Inseam,
	)
	if err != nil {
		return nil, err
	}
	lastSeen := c.LastSeen
	if lastSeen == "" {
		lastSeen = client.LastSeenToday
	}
	return client.RestoreClient(id, c.Name, c.Phone, c.Email, m, lastSeen)
}

func (m Model) toDomain() (*catalog.Model, error) {
	id, err := kernel.UUIDFromString(m.ID)
	if err != nil {
		return nil, err
	}
	return catalog.NewModel(id, catalog.ModelParams{
		Title:       m.Title,
		Genre:       catalog.Genre(m.Genre),
		Event:       catalog.Event(m.Event),
		Difficulty:  catalog.Difficulty(m.Difficulty),
		Fabric:      m.Fabric,
		Description: m.Description,
		ImageURLs:   m.ImageURLs,
		PatternLink: m.PatternLink,
	})
}

func (w Workstation) toDomain() (*workstation.Workstation, error) {
	id, err := kernel.UUIDFromString(w.ID)
	if err != nil {
		return nil, err
	}
	code, err := workstation.AccessCodeFromString(w.AccessCode)
	if err != nil {
		return nil, err
	}
	return workstation.NewWorkstation(id, w.Name, code)
}

func (o Order) toDomain(now time.Time) (*order.Order, error) {
	id, err := kernel.UUIDFromString(o.ID)
	if err != nil {
		return nil, err
	}
	ticket, err := kernel.TicketIDFromString(o.TicketID)
	if err != nil {
		return nil, err
	}
	clientID, err := kernel.UUIDFromString(o.ClientID)
	if err != nil {
		return nil, err
	}
	modelID, err := kernel.UUIDFromString(o.ModelID)
	if err != nil {
		return nil, err
	}
	status, err := order.StatusFromString(o.Status)
	if err != nil {
		return nil, err
	}

	var workstationID *kernel.UUID
	if o.WorkstationID != "" {
		wsID, wsErr := kernel.UUIDFromString(o.WorkstationID)
		if wsErr != nil {
			return nil, wsErr
		}
		workstationID = &wsID
	}

	placedAt := now
	if o.PlacedAt != nil {
		placedAt = *o.PlacedAt
	}

	return order.RestoreOrder(id, ticket, clientID, modelID, placedAt, status, o.Price, o.Notes, workstationID)
}
