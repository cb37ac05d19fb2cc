package services

import "context"

// Feature names the quota-limited entity types.
type Feature string

const (
	FeatureLots     Feature = "lots"
	FeatureStaff    Feature = "staff"
	FeatureSupplies Feature = "supplies"
	FeatureTasks    Feature = "tasks"
)

// QuotaGuard decides whether a create may proceed for the owner's tier.
// A nil return means allowed; a denial comes back as
// *apperrors.QuotaExceededError carrying feature and limit, with nothing
// written. The offline backend is built with an unmetered guard: it exists
// so an unauthenticated user can try the product before any tier applies.
type QuotaGuard interface {
	Check(ctx context.Context, ownerID string, feature Feature, currentCount int64) error
}
