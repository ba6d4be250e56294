// Package orderrepo persists order aggregates. Line items are stored as a
// JSONB document on the order row: they are immutable after creation and
// are never queried individually, so a child table would buy nothing.
package orderrepo

import (
	"encoding/json"
	"time"

	"tableservice/internal/core/domain/model/kernel"
	"tableservice/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	TableNumber int       `gorm:"index"`
	Items       string    `gorm:"type:jsonb"`
	Status      int       `gorm:"index"`
	TotalAmount float64
	WaiterName  string
	Note        *string
	CreatedAt   time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime:false"`
}

// TableName overrides GORM's naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// itemDocument is the JSONB shape of one line item. The field names are the
// wire names, so the read side can hand the stored document straight to API
// clients.
type itemDocument struct {
	MenuItemID      string  `json:"menu_item_id"`
	MenuItemName    string  `json:"menu_item_name"`
	Quantity        int     `json:"quantity"`
	Price           float64 `json:"price"`
	SpecialRequests *string `json:"special_requests,omitempty"`
}

func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	docs := make([]itemDocument, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		doc := itemDocument{
			MenuItemID:   item.MenuItemID().String(),
			MenuItemName: item.MenuItemName(),
			Quantity:     item.Quantity(),
			Price:        item.Price(),
		}
		if note := item.Note(); note != "" {
			doc.SpecialRequests = &note
		}
		docs = append(docs, doc)
	}

	raw, err := json.Marshal(docs)
	if err != nil {
		return OrderDTO{}, err
	}

	var note *string
	if n := aggregate.Note(); n != "" {
		note = &n
	}

	return OrderDTO{
		ID:          aggregate.ID().Bytes(),
		TableNumber: aggregate.TableNumber(),
		Items:       string(raw),
		Status:      int(aggregate.Status()),
		TotalAmount: aggregate.Total(),
		WaiterName:  aggregate.WaiterName(),
		Note:        note,
		CreatedAt:   aggregate.CreatedAt(),
		UpdatedAt:   aggregate.UpdatedAt(),
	}, nil
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var docs []itemDocument
	if err = json.Unmarshal([]byte(dto.Items), &docs); err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(docs))
	for _, doc := range docs {
		menuItemID, idErr := kernel.UUIDFromString(doc.MenuItemID)
		if idErr != nil {
			return nil, idErr
		}

		note := ""
		if doc.SpecialRequests != nil {
			note = *doc.SpecialRequests
		}

		item, itemErr := order.NewItem(menuItemID, doc.MenuItemName, doc.Quantity, doc.Price, note)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	note := ""
	if dto.Note != nil {
		note = *dto.Note
	}

	return order.RestoreOrder(
		id,
		dto.TableNumber,
		items,
		order.Status(dto.Status),
		dto.TotalAmount,
		dto.WaiterName,
		note,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
