package ports

import (
	"context"

	"tableservice/internal/core/domain/model/kernel"
	"tableservice/internal/core/domain/model/table"
)

// TableRepository is the table registry: the single source of truth for
// table status, mutated only by order operations and the administrative
// update path.
//
// The conditional status updates return matched=false (not an error) when no
// table carries the given number or id, mirroring the store's update-one
// matched-count semantics. Each mutation is a single conditional update:
// concurrent order operations on the same table may interleave and the
// registry accepts last-write-wins for table status. A table also flips back
// to available the moment any one order against it resolves, even if other
// active orders remain; a stronger design would track a per-table
// active-order count instead of a status flag.
type TableRepository interface {
	// Add persists a new table. Number uniqueness is the caller's check;
	// the storage schema backs it with a unique index.
	Add(ctx context.Context, aggregate *table.Table) error

	// GetByNumber retrieves a table by its human-facing number.
	GetByNumber(ctx context.Context, number int) (*table.Table, error)

	// UpdateStatusByNumber conditionally sets the status of the table with
	// the given number. Returns false if no table matched.
	UpdateStatusByNumber(ctx context.Context, number int, status table.Status) (bool, error)

	// UpdateStatusByID conditionally sets the status of the table with the
	// given opaque id. Returns false if no table matched.
	UpdateStatusByID(ctx context.Context, id kernel.UUID, status table.Status) (bool, error)

	// Count returns the number of tables. Used by the idempotent seed path.
	Count(ctx context.Context) (int64, error)
}
