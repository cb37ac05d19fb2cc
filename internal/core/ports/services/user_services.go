package services

import (
	"context"

	"github.com/fincaops/fincaops/internal/core/domain"
	"github.com/fincaops/fincaops/internal/dto"
)

// UserSvcFacade defines the minimal account operations the hosted backend
// needs: registration, credential checks and tier lookups for the quota
// guard. Anything beyond that is out of scope.
type UserSvcFacade interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)
	Authenticate(ctx context.Context, req dto.LoginRequest) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	TierFor(ctx context.Context, userID string) (domain.AccountTier, error)
}
