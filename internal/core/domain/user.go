package domain

// AccountTier classifies an account for quota purposes. The free tier has
// fixed per-entity creation ceilings; premium is unmetered.
type AccountTier string

const (
	TierFree    AccountTier = "FREE"
	TierPremium AccountTier = "PREMIUM"
)

// User is an authenticated account owning farm data in the hosted backend.
// The local (offline) backend has no user; its records are adopted by the
// signing-in account during migration.
type User struct {
	UserID       string      `json:"userID"` // Primary Key (UUID)
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	PasswordHash string      `json:"-"`
	Tier         AccountTier `json:"tier"`
	AuditFields
}
