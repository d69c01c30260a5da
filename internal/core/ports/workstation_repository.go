package ports

import (
	"context"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/workstation"
)

type WorkstationRepository interface {
	Add(ctx context.Context, ws *workstation.Workstation) error
	Get(ctx context.Context, id kernel.UUID) (*workstation.Workstation, error)

	// GetAll returns every workstation. Login compares the submitted code
	// against each of them in constant time instead of querying by code.
	GetAll(ctx context.Context) ([]*workstation.Workstation, error)

	AccessCodeExists(ctx context.Context, code workstation.AccessCode) (bool, error)
}
