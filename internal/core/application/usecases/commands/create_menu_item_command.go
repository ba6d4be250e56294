package commands

import (
	"errors"

	"tableservice/internal/core/domain/model/kernel"
	"tableservice/internal/pkg/guard"
)

var (
	ErrCreateMenuItemCommandIsNotConstructed = errors.New(
		"CreateMenuItemCommand must be created via NewCreateMenuItemCommand constructor",
	)
	ErrNameIsRequired     = errors.New("name is required")
	ErrCategoryIsRequired = errors.New("category is required")
	ErrPriceIsInvalid     = errors.New("price must not be negative")
)

// CreateMenuItemCommand adds a dish or drink to the venue's menu.
type CreateMenuItemCommand struct {
	itemID      kernel.UUID
	name        string
	description string
	price       float64
	category    string
	image       string

	guard guard.ConstructorGuard
}

func NewCreateMenuItemCommand(itemID kernel.UUID, name string, description string,
	price float64, category string, image string) (CreateMenuItemCommand, error) {
	cmd := CreateMenuItemCommand{
		description: description,
		image:       image,

		guard: guard.NewConstructorGuard(),
	}

	err := errors.Join(
		cmd.setItemID(itemID),
		cmd.setName(name),
		cmd.setPrice(price),
		cmd.setCategory(category),
	)
	if err != nil {
		return CreateMenuItemCommand{}, err
	}

	return cmd, nil
}

func (c *CreateMenuItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}
	c.itemID = itemID
	return nil
}

func (c *CreateMenuItemCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *CreateMenuItemCommand) setPrice(price float64) error {
	if price < 0 {
		return ErrPriceIsInvalid
	}
	c.price = price
	return nil
}

func (c *CreateMenuItemCommand) setCategory(category string) error {
	if category == "" {
		return ErrCategoryIsRequired
	}
	c.category = category
	return nil
}

func (c *CreateMenuItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c *CreateMenuItemCommand) Name() string {
	return c.name
}

func (c *CreateMenuItemCommand) Description() string {
	return c.description
}

func (c *CreateMenuItemCommand) Price() float64 {
	return c.price
}

func (c *CreateMenuItemCommand) Category() string {
	return c.category
}

func (c *CreateMenuItemCommand) Image() string {
	return c.image
}

func (c *CreateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateMenuItemCommandIsNotConstructed)
}
