package commands

import (
	"context"

	"tableservice/internal/core/domain/model/kernel"
	"tableservice/internal/core/domain/model/menu"
	"tableservice/internal/core/domain/model/table"
)

const (
	defaultTableCount    = 10
	defaultTableCapacity = 4
)

type seedMenuItem struct {
	name        string
	description string
	price       float64
	category    string
}

var defaultMenu = []seedMenuItem{
	{"Café Expresso", "Café forte e encorpado", 3.50, "Bebidas Quentes"},
	{"Cappuccino", "Café com leite vaporizado e espuma", 5.00, "Bebidas Quentes"},
	{"Latte", "Café com muito leite vaporizado", 5.50, "Bebidas Quentes"},
	{"Mocha", "Café com chocolate e chantilly", 6.00, "Bebidas Quentes"},
	{"Suco de Laranja", "Suco natural de laranja", 4.00, "Bebidas Frias"},
	{"Smoothie de Frutas", "Smoothie com frutas da estação", 7.00, "Bebidas Frias"},
	{"Pão na Chapa", "Pão francês na chapa com manteiga", 4.50, "Lanches"},
	{"Sanduíche Natural", "Sanduíche com peito de peru e salada", 8.00, "Lanches"},
	{"Croissant", "Croissant fresco com geleia", 5.50, "Lanches"},
	{"Bolo de Chocolate", "Fatia de bolo de chocolate caseiro", 6.50, "Sobremesas"},
	{"Cheesecake", "Cheesecake de frutas vermelhas", 7.50, "Sobremesas"},
	{"Pudim", "Pudim de leite condensado", 5.00, "Sobremesas"},
}

// SeedDataCommandHandler populates the default menu and table layout on an
// empty database. The operation is skipped only when both the menu and the
// tables already hold data, so a partially seeded database is topped up
// rather than left incomplete.
type SeedDataCommandHandler struct {
	uowFactory SeedUoWFactory
}

func NewSeedDataCommandHandler(uowFactory SeedUoWFactory) SeedDataCommandHandler {
	return SeedDataCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle seeds the defaults. The returned bool reports whether seeding ran;
// false means the data was already in place.
func (h *SeedDataCommandHandler) Handle(ctx context.Context, cmd SeedDataCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	menuCount, err := uow.MenuItemRepository().Count(ctx)
	if err != nil {
		return false, err
	}

	tableCount, err := uow.TableRepository().Count(ctx)
	if err != nil {
		return false, err
	}

	if menuCount > 0 && tableCount > 0 {
		return false, nil
	}

	for _, seed := range defaultMenu {
		item, err := menu.NewItem(kernel.NewUUID(), seed.name, seed.description, seed.price, seed.category, "")
		if err != nil {
			return false, err
		}
		if err = uow.MenuItemRepository().Add(ctx, item); err != nil {
			return false, err
		}
	}

	for number := 1; number <= defaultTableCount; number++ {
		aggregate, err := table.NewTable(kernel.NewUUID(), number, defaultTableCapacity)
		if err != nil {
			return false, err
		}
		if err = uow.TableRepository().Add(ctx, aggregate); err != nil {
			return false, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return true, nil
}
