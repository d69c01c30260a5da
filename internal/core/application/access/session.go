package access

import (
	"context"
	"errors"
	"sync"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/workstation"
)

// Mode is the role a session currently acts in.
type Mode int

const (
	// ModeClient is the anonymous default: catalog browsing and placements.
	ModeClient Mode = iota
	ModeManager
	ModeWorkstation
)

func (m Mode) String() string {
	switch m {
	case ModeManager:
		return "manager"
	case ModeWorkstation:
		return "workstation"
	default:
		return "client"
	}
}

// Session holds who is logged in on one terminal. A workstation session is
// bound to exactly one workstation until Logout.
type Session struct {
	id   kernel.UUID
	gate *Gate

	mu          sync.RWMutex
	mode        Mode
	workstation *workstation.Workstation
}

func NewSession(gate *Gate) *Session {
	return &Session{
		id:   kernel.NewUUID(),
		gate: gate,
		mode: ModeClient,
	}
}

func (s *Session) ID() kernel.UUID {
	return s.id
}

// LoginManager switches to manager mode when code is the manager secret.
// A wrong code leaves the session unchanged.
func (s *Session) LoginManager(code string) bool {
	if !s.gate.IsManager(code) {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = ModeManager
	s.workstation = nil
	return true
}

// LoginWorkstation binds the session to the workstation owning code. An
// unknown code returns false with a nil error; the error is reserved for
// lookup failures.
func (s *Session) LoginWorkstation(ctx context.Context, code string) (bool, error) {
	ws, err := s.gate.FindWorkstation(ctx, code)
	if errors.Is(err, ErrInvalidCredential) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = ModeWorkstation
	s.workstation = ws
	return true, nil
}

// Logout returns the session to client mode.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = ModeClient
	s.workstation = nil
}

func (s *Session) Mode() Mode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

// Workstation is nil unless the session is in workstation mode.
func (s *Session) Workstation() *workstation.Workstation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.workstation
}
