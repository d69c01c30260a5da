package ports

import (
	"context"

	"atelier/internal/core/domain/model/client"
	"atelier/internal/core/domain/model/kernel"
)

type ClientRepository interface {
	Add(ctx context.Context, c *client.Client) error
	Update(ctx context.Context, c *client.Client) error
	Get(ctx context.Context, id kernel.UUID) (*client.Client, error)
}
