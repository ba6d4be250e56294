package order

import (
	"errors"
	"fmt"

	"tableservice/internal/core/domain/model/kernel"
	"tableservice/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item was not created through
// the NewItem factory method.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is one ordered line: a menu item reference, a quantity, and the unit
// price snapshotted at order time. Items are immutable once the order is
// created, which is what allows the order total to be frozen.
type Item struct {
	menuItemID   kernel.UUID
	menuItemName string
	quantity     int
	price        float64
	note         string

	isConstructed bool
}

// NewItem creates a validated line item. Quantity must be at least 1 and the
// price snapshot must not be negative. The note is optional free text.
func NewItem(menuItemID kernel.UUID, menuItemName string, quantity int, price float64, note string) (Item, error) {
	item := Item{
		note:          note,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setMenuItemID(menuItemID),
		item.setMenuItemName(menuItemName),
		item.setQuantity(quantity),
		item.setPrice(price),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the Item was created via NewItem.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// MenuItemID returns the referenced menu item's identifier.
func (i Item) MenuItemID() kernel.UUID {
	return i.menuItemID
}

// MenuItemName returns the menu item name captured at order time.
func (i Item) MenuItemName() string {
	return i.menuItemName
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// Price returns the unit price snapshotted at order time.
func (i Item) Price() float64 {
	return i.price
}

// Note returns the optional free-text note; empty means none.
func (i Item) Note() string {
	return i.note
}

// Subtotal returns price × quantity for this line.
func (i Item) Subtotal() float64 {
	return i.price * float64(i.quantity)
}

func (i *Item) setMenuItemID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.menuItemID = id
	return nil
}

func (i *Item) setMenuItemName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("menuItemName")
	}
	i.menuItemName = name
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not at least 1", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%v is negative", price))
	}
	i.price = price
	return nil
}
