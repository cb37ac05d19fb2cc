package repositories

import (
	"context"

	"github.com/fincaops/fincaops/internal/core/domain"
)

// LedgerRepositoryFacade exposes the multi-document atomic writes the supply
// stock ledger needs. Each method persists the given post-state documents in
// a single all-or-nothing commit; callers compute the new field values, the
// repository only guarantees they land together or not at all.
//
// Only the hosted (PostgreSQL) backend implements this; the device-local
// store has no batch primitive, so the container leaves it nil offline.
type LedgerRepositoryFacade interface {
	// ApplyUsage inserts the usage record and writes the updated task cost
	// fields and supply stock in one commit.
	ApplyUsage(ctx context.Context, usage domain.SupplyUsage, task domain.Task, supply domain.Supply) error

	// ReverseUsage deletes the usage record and writes the updated task cost
	// fields and restored supply stock in one commit.
	ReverseUsage(ctx context.Context, usageID string, task domain.Task, supply domain.Supply) error

	// DeleteTaskCascade deletes every usage record of the task, writes the
	// restored stock for each affected supply, and deletes the task itself,
	// all in one commit.
	DeleteTaskCascade(ctx context.Context, task domain.Task, usageIDs []string, supplies []domain.Supply) error
}
