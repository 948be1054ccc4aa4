package commands_test

import (
	"testing"

	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(id, "Alice", "Bob", "Berlin", "Hamburg")
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, "Alice", cmd.SenderName())
	assert.Equal(t, "Bob", cmd.RecipientName())
	assert.Equal(t, "Berlin", cmd.Origin())
	assert.Equal(t, "Hamburg", cmd.Destination())
}

func TestNewCreateOrderCommand_InvalidOrderID(t *testing.T) {
	invalidID := kernel.UUID{} // zero value, should trigger validation error
	_, err := commands.NewCreateOrderCommand(invalidID, "Alice", "Bob", "Berlin", "Hamburg")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateOrderCommand_EmptySenderName(t *testing.T) {
	id := kernel.NewUUID()
	_, err := commands.NewCreateOrderCommand(id, "", "Bob", "Berlin", "Hamburg")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrSenderNameIsRequired)
}

func TestNewCreateOrderCommand_EmptyRecipientName(t *testing.T) {
	id := kernel.NewUUID()
	_, err := commands.NewCreateOrderCommand(id, "Alice", "", "Berlin", "Hamburg")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrRecipientNameIsRequired)
}

func TestNewCreateOrderCommand_EmptyOrigin(t *testing.T) {
	id := kernel.NewUUID()
	_, err := commands.NewCreateOrderCommand(id, "Alice", "Bob", "", "Hamburg")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrOriginIsRequired)
}

func TestNewCreateOrderCommand_EmptyDestination(t *testing.T) {
	id := kernel.NewUUID()
	_, err := commands.NewCreateOrderCommand(id, "Alice", "Bob", "Berlin", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrDestinationIsRequired)
}

func TestNewCreateOrderCommand_CollectsAllErrors(t *testing.T) {
	id := kernel.NewUUID()
	_, err := commands.NewCreateOrderCommand(id, "", "", "", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrSenderNameIsRequired)
	assert.ErrorIs(t, err, commands.ErrRecipientNameIsRequired)
	assert.ErrorIs(t, err, commands.ErrOriginIsRequired)
	assert.ErrorIs(t, err, commands.ErrDestinationIsRequired)
}
