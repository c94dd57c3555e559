package service

import (
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/tahmidr/pharmatrack/internal/domain"
	"github.com/tahmidr/pharmatrack/pkg/metrics"
)

// AuthService checks the single shared manager credential. The plaintext
// secret from configuration is hashed once at construction; only the
// hash is retained. There are no sessions or tokens: the caller gates
// access on the boolean outcome alone.
type AuthService struct {
	manager      domain.Manager
	passwordHash []byte
	metrics      *metrics.Collector
	log          *zap.Logger
}

func NewAuthService(manager domain.Manager, password string, collector *metrics.Collector, log *zap.Logger) (*AuthService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing manager credential: %w", err)
	}

	return &AuthService{
		manager:      manager,
		passwordHash: hash,
		metrics:      collector,
		log:          log,
	}, nil
}

// Authenticate compares the supplied secret against the stored hash.
// Returns ErrInvalidCredentials on mismatch.
func (s *AuthService) Authenticate(suppliedSecret string) error {
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(suppliedSecret)); err != nil {
		s.metrics.AuthFailuresTotal.Inc()
		s.log.Warn("failed manager login attempt")
		return ErrInvalidCredentials
	}
	return nil
}

// Manager returns the configured manager identity.
func (s *AuthService) Manager() domain.Manager {
	return s.manager
}
