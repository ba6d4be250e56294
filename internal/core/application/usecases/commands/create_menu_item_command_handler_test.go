package commands_test

import (
	"testing"

	"tableservice/internal/core/application/usecases/commands"
	"tableservice/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateMenuItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewCreateMenuItemCommand(id,
		"Café com Leite Especial", "Café especial da casa com leite cremoso", 4.75, "Bebidas Quentes", "")
	require.NoError(t, err)

	menuRepo := new(MockMenuItemRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MenuItemRepository").Return(menuRepo).Once(),
		menuRepo.On("Add", mock.Anything, mock.AnythingOfType("*menu.Item")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMenuUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateMenuItemCommandHandler(factory)
	item, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, item)
	require.Equal(t, "Café com Leite Especial", item.Name())
	require.InDelta(t, 4.75, item.Price(), 0.001)
	require.True(t, item.Available())

	menuRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestNewCreateMenuItemCommand_Errors(t *testing.T) {
	tests := []struct {
		name     string
		itemName string
		price    float64
		category string
		target   error
	}{
		{"empty name", "", 3.50, "Bebidas Quentes", commands.ErrNameIsRequired},
		{"negative price", "Café", -1, "Bebidas Quentes", commands.ErrPriceIsInvalid},
		{"empty category", "Café", 3.50, "", commands.ErrCategoryIsRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := commands.NewCreateMenuItemCommand(kernel.NewUUID(), tt.itemName, "", tt.price, tt.category, "")
			require.ErrorIs(t, err, tt.target)
		})
	}
}

func TestCreateMenuItemCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.CreateMenuItemCommand{}
	require.ErrorIs(t, cmd.Validate(), commands.ErrCreateMenuItemCommandIsNotConstructed)
}
