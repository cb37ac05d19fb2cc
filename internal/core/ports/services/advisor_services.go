package services

import (
	"context"

	"github.com/fincaops/fincaops/internal/dto"
	"github.com/fincaops/fincaops/pkg/clients/advisor"
)

// AdvisorSvcFacade produces structured proposals from the advisor
// collaborator and applies individually approved ones through the regular
// entity services. Proposals are never executed automatically.
type AdvisorSvcFacade interface {
	Suggest(ctx context.Context, ownerID string) ([]advisor.Suggestion, error)
	Apply(ctx context.Context, ownerID string, req dto.ApplySuggestionRequest) error
}
