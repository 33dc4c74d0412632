// internal/domain/member/service.go
package member

import (
	"context"
	"sync"

	"github.com/your-org/storefront-backend/internal/pkg/apperrors"
	"golang.org/x/crypto/bcrypt"
)

// Service handles member accounts. Accounts live for the lifetime of the
// process; durable persistence is out of scope for this core.
type Service struct {
	mu     sync.RWMutex
	byID   map[uint]*Member
	byName map[string]*Member
	nextID uint
}

// NewService creates a member service seeded with the given accounts.
func NewService(seed []Member) *Service {
	s := &Service{
		byID:   make(map[uint]*Member),
		byName: make(map[string]*Member),
		nextID: 1,
	}
	for i := range seed {
		m := seed[i]
		if m.ID == 0 {
			m.ID = s.nextID
		}
		if m.ID >= s.nextID {
			s.nextID = m.ID + 1
		}
		s.byID[m.ID] = &m
		s.byName[m.Username] = &m
	}
	return s
}

// Authenticate verifies the username/password pair and returns the member.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*Member, error) {
	s.mu.RLock()
	m, ok := s.byName[username]
	s.mu.RUnlock()
	if !ok {
		return nil, apperrors.NotFound("member %q not found", username)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(m.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.BadRequest("invalid credentials")
	}
	return s.snapshot(m), nil
}

// GetInformation returns the member's current rank information.
func (s *Service) GetInformation(ctx context.Context, memberID uint) (Information, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.byID[memberID]
	if !ok {
		return Information{}, apperrors.NotFound("member %d not found", memberID)
	}
	return m.Information(), nil
}

// RecordPurchase adds a completed order's total to the member's cumulative
// purchase amount. Amounts only ever grow, so the resolved rank never drops.
func (s *Service) RecordPurchase(ctx context.Context, memberID uint, amount int64) (Information, error) {
	if amount < 0 {
		return Information{}, apperrors.Validation("purchase amount must not be negative")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.byID[memberID]
	if !ok {
		return Information{}, apperrors.NotFound("member %d not found", memberID)
	}
	m.CumulativePurchaseAmount += amount
	return m.Information(), nil
}

func (s *Service) snapshot(m *Member) *Member {
	copied := *m
	return &copied
}

// HashPassword hashes a plaintext password for account seeding.
func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
