package workstation

import (
	"errors"
	"strings"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

var (
	// ErrNameIsRequired is returned for a blank workstation name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrWorkstationIsNotConstructed is returned when using a zero-value Workstation.
	ErrWorkstationIsNotConstructed = errors.New("Workstation must be created via NewWorkstation constructor")
)

// Workstation is a post of the shop orders get routed to. Its access code opens
// the post's dashboard.
type Workstation struct {
	id         kernel.UUID
	name       string
	accessCode AccessCode
	guard      guard.ConstructorGuard
}

// NewWorkstation builds a workstation. The name is trimmed.
//
//	ws, err := workstation.NewWorkstation(kernel.NewUUID(), "Atelier Broderie", workstation.NewAccessCode())
func NewWorkstation(id kernel.UUID, name string, accessCode AccessCode) (*Workstation, error) {
	name = strings.TrimSpace(name)

	var nameErr error
	if name == "" {
		nameErr = ErrNameIsRequired
	}
	if err := errors.Join(id.Validate(), nameErr, accessCode.Validate()); err != nil {
		return nil, err
	}

	return &Workstation{
		id:         id,
		name:       name,
		accessCode: accessCode,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (w *Workstation) Validate() error {
	if w == nil {
		return ErrWorkstationIsNotConstructed
	}
	return w.guard.Validate(ErrWorkstationIsNotConstructed)
}

func (w *Workstation) ID() kernel.UUID {
	return w.id
}

func (w *Workstation) Name() string {
	return w.name
}

func (w *Workstation) AccessCode() AccessCode {
	return w.accessCode
}

func (w *Workstation) IsEqual(other *Workstation) bool {
	return other != nil && w.id.IsEqual(other.id)
}
