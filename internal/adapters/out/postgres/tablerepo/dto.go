// Package tablerepo persists the table registry.
package tablerepo

import (
	"tableservice/internal/core/domain/model/kernel"
	"tableservice/internal/core/domain/model/table"

	"github.com/google/uuid"
)

// TableDTO represents the database structure for persisting tables. The
// unique index on the number backs the uniqueness check done at creation.
type TableDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number   int       `gorm:"uniqueIndex"`
	Status   int
	Capacity int
	Guests   int
}

// TableName overrides GORM's naming convention to use "tables".
func (TableDTO) TableName() string {
	return "tables"
}

func fromDomain(aggregate *table.Table) TableDTO {
	return TableDTO{
		ID:       aggregate.ID().Bytes(),
		Number:   aggregate.Number(),
		Status:   int(aggregate.Status()),
		Capacity: aggregate.Capacity(),
		Guests:   aggregate.Guests(),
	}
}

func toDomain(dto TableDTO) (*table.Table, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return table.RestoreTable(id, dto.Number, table.Status(dto.Status), dto.Capacity, dto.Guests)
}
