package commands

import (
	"context"
	"fmt"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/workstation"
	"atelier/internal/core/ports"
	"atelier/internal/pkg/errs"
)

// maxIssueAttempts bounds the redraws of random human-facing identifiers.
// With 32^6 tickets and 16^4 access codes a shop never gets close.
const maxIssueAttempts = 8

func issueTicketID(ctx context.Context, repo ports.OrderRepository) (kernel.TicketID, error) {
	var candidate kernel.TicketID
	for range maxIssueAttempts {
		candidate = kernel.NewTicketID()
		exists, err := repo.TicketExists(ctx, candidate)
		if err != nil {
			return kernel.TicketID{}, err
		}
		if !exists {
			return candidate, nil
		}
	}
	return kernel.TicketID{}, errs.NewObjectAlreadyExistsError("ticket id", candidate)
}

func issueAccessCode(ctx context.Context, repo ports.WorkstationRepository) (workstation.AccessCode, error) {
	for range maxIssueAttempts {
		candidate := workstation.NewAccessCode()
		exists, err := repo.AccessCodeExists(ctx, candidate)
		if err != nil {
			return workstation.AccessCode{}, err
		}
		if !exists {
			return candidate, nil
		}
	}
	// The code is a credential; keep it out of the error.
	return workstation.AccessCode{}, errs.NewObjectAlreadyExistsError("access code", fmt.Sprintf("taken %d times", maxIssueAttempts))
}
