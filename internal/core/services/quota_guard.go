package services

import (
	"context"
	"fmt"

	"github.com/fincaops/fincaops/internal/apperrors"
	"github.com/fincaops/fincaops/internal/core/domain"
	portsrepo "github.com/fincaops/fincaops/internal/core/ports/repositories"
	portssvc "github.com/fincaops/fincaops/internal/core/ports/services"
)

// freeTierLimits are the fixed creation ceilings for free accounts. Premium
// accounts are unmetered.
var freeTierLimits = map[portssvc.Feature]int64{
	portssvc.FeatureLots:     3,
	portssvc.FeatureStaff:    5,
	portssvc.FeatureSupplies: 10,
	portssvc.FeatureTasks:    20,
}

// tierQuotaGuard enforces free-tier ceilings by resolving the owner's tier
// from the user repository on every check.
type tierQuotaGuard struct {
	users portsrepo.UserRepositoryFacade
}

// NewQuotaGuard creates the guard used by the hosted backend.
func NewQuotaGuard(users portsrepo.UserRepositoryFacade) portssvc.QuotaGuard {
	return &tierQuotaGuard{users: users}
}

var _ portssvc.QuotaGuard = (*tierQuotaGuard)(nil)

func (g *tierQuotaGuard) Check(ctx context.Context, ownerID string, feature portssvc.Feature, currentCount int64) error {
	user, err := g.users.FindUserByID(ctx, ownerID)
	if err != nil {
		return fmt.Errorf("failed to resolve tier for quota check: %w", err)
	}
	if user.Tier == domain.TierPremium {
		return nil
	}
	limit, metered := freeTierLimits[feature]
	if !metered {
		return nil
	}
	if currentCount >= limit {
		return &apperrors.QuotaExceededError{Feature: string(feature), Limit: limit}
	}
	return nil
}

// unmeteredGuard allows everything. The offline/local backend uses it: the
// local store exists so an unauthenticated user can try the product before
// any tier applies.
type unmeteredGuard struct{}

// NewUnmeteredQuotaGuard creates the guard used by the offline backend.
func NewUnmeteredQuotaGuard() portssvc.QuotaGuard {
	return unmeteredGuard{}
}

func (unmeteredGuard) Check(context.Context, string, portssvc.Feature, int64) error {
	return nil
}
