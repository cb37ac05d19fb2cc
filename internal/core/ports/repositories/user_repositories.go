package repositories

import (
	"context"

	"github.com/fincaops/fincaops/internal/core/domain"
)

// UserRepositoryFacade defines persistence operations for hosted accounts.
type UserRepositoryFacade interface {
	SaveUser(ctx context.Context, user domain.User) error
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
}
