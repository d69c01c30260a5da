// Package queries holds the read side: query objects and handlers that scan
// rows into flat views without loading aggregates.
package queries

import (
	"atelier/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

func toKernelUUID(id uuid.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func toOptionalKernelUUID(id uuid.NullUUID) (*kernel.UUID, error) {
	if !id.Valid {
		return nil, nil
	}
	k, err := toKernelUUID(id.UUID)
	if err != nil {
		return nil, err
	}
	return &k, nil
}
