// Package menu contains the menu item entity. Menu items have no state
// machine; they exist as a priced read model that order lines reference and
// snapshot at order time.
package menu

import (
	"errors"
	"fmt"
	"time"

	"tableservice/internal/core/domain/model/kernel"
	"tableservice/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item was not created through
// NewItem or RestoreItem.
var ErrItemIsNotConstructed = errors.New("menu Item must be created via NewItem constructor")

// Item is a single entry on the menu.
type Item struct {
	id          kernel.UUID
	name        string
	description string
	price       float64
	category    string
	image       string
	available   bool
	createdAt   time.Time

	isConstructed bool
}

// NewItem creates an available menu item. The image URL is optional.
func NewItem(id kernel.UUID, name, description string, price float64, category, image string) (*Item, error) {
	item := &Item{
		description:   description,
		image:         image,
		available:     true,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
		item.setPrice(price),
		item.setCategory(category),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem reconstructs a menu item from persistence.
func RestoreItem(id kernel.UUID, name, description string, price float64, category, image string, available bool, createdAt time.Time) (*Item, error) {
	item := &Item{
		description:   description,
		image:         image,
		available:     available,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
		item.setPrice(price),
		item.setCategory(category),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate ensures the Item was created through a constructor.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the item's identifier.
func (i *Item) ID() kernel.UUID { return i.id }

// Name returns the item's display name.
func (i *Item) Name() string { return i.name }

// Description returns the item's description.
func (i *Item) Description() string { return i.description }

// Price returns the current menu price.
func (i *Item) Price() float64 { return i.price }

// Category returns the menu category.
func (i *Item) Category() string { return i.category }

// Image returns the optional image URL; empty means none.
func (i *Item) Image() string { return i.image }

// Available reports whether the item can currently be ordered.
func (i *Item) Available() bool { return i.available }

// CreatedAt returns the creation timestamp (UTC).
func (i *Item) CreatedAt() time.Time { return i.createdAt }

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = name
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

func (i *Item) setCategory(category string) error {
	if category == "" {
		return errs.NewValueIsRequiredError("category")
	}
	i.category = category
	return nil
}
