package domain

import (
	"strings"
	"time"
)

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID Reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID Reference
}

// LocalIDPrefix marks identifiers issued by the device-local backend.
// The migration engine relies on it to tell local records from hosted ones.
const LocalIDPrefix = "local_"

// IsLocalID reports whether the identifier was issued by the local backend.
func IsLocalID(id string) bool {
	return strings.HasPrefix(id, LocalIDPrefix)
}
