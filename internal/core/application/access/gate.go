// Package access authenticates the two staff roles. Managers share one static
// secret; each workstation has its own access code. Both are bearer codes
// compared in constant time.
package access

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"

	"atelier/internal/core/domain/model/workstation"
	"atelier/internal/pkg/errs"
)

// DefaultManagerCode is used when no secret is configured.
const DefaultManagerCode = "ADL2024"

var ErrInvalidCredential = errors.New("invalid access code")

// WorkstationDirectory lists the workstations a code may belong to.
type WorkstationDirectory interface {
	GetAll(ctx context.Context) ([]*workstation.Workstation, error)
}

type Gate struct {
	managerCode  []byte
	workstations WorkstationDirectory
}

func NewGate(managerCode string, workstations WorkstationDirectory) (*Gate, error) {
	if strings.TrimSpace(managerCode) == "" {
		return nil, errs.NewValueIsRequiredError("manager code")
	}
	if workstations == nil {
		return nil, errs.NewValueIsRequiredError("workstations")
	}
	return &Gate{
		managerCode:  []byte(managerCode),
		workstations: workstations,
	}, nil
}

// IsManager reports whether code is the manager secret.
func (g *Gate) IsManager(code string) bool {
	return subtle.ConstantTimeCompare([]byte(code), g.managerCode) == 1
}

// FindWorkstation returns the workstation owning code, or ErrInvalidCredential.
// Every workstation is compared so the time taken does not depend on which
// one matched.
func (g *Gate) FindWorkstation(ctx context.Context, code string) (*workstation.Workstation, error) {
	all, err := g.workstations.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	var found *workstation.Workstation
	for _, ws := range all {
		if ws.AccessCode().Matches(code) && found == nil {
			found = ws
		}
	}
	if found == nil {
		return nil, ErrInvalidCredential
	}
	return found, nil
}
