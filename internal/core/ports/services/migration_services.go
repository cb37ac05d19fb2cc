package services

import "context"

// MigrationSvcFacade runs the one-shot local-to-hosted migration for the
// signing-in owner. Returns the total number of migrated records. Safe to
// re-run: already-migrated types read back empty and are skipped.
type MigrationSvcFacade interface {
	Run(ctx context.Context, ownerID string) (int, error)
}
