package commands

import (
	"errors"

	"tableservice/internal/pkg/guard"
)

var ErrSeedDataCommandIsNotConstructed = errors.New(
	"SeedDataCommand must be created via NewSeedDataCommand constructor",
)

// SeedDataCommand requests one-time population of the default menu and
// table layout. It carries no parameters but still goes through the
// constructor so a zero value is rejected.
type SeedDataCommand struct {
	guard guard.ConstructorGuard
}

// NewSeedDataCommand creates a new seed command.
func NewSeedDataCommand() SeedDataCommand {
	return SeedDataCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *SeedDataCommand) Validate() error {
	return c.guard.Validate(ErrSeedDataCommandIsNotConstructed)
}
