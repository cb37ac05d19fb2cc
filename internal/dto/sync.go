package dto

// MigrateResponse reports the outcome of a local-to-hosted migration run,
// shown to the user as a one-time confirmation notice.
type MigrateResponse struct {
	MigratedRecords int `json:"migratedRecords"`
}
