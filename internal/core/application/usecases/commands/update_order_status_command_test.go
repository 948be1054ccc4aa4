package commands_test

import (
	"strings"
	"testing"

	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/order"
	"tracking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateOrderStatusCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewUpdateOrderStatusCommand(id, order.InTransit, "picked up")
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, order.InTransit, cmd.NewStatus())
	assert.Equal(t, "picked up", cmd.Notes())
}

func TestNewUpdateOrderStatusCommand_EmptyNotes(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewUpdateOrderStatusCommand(id, order.Delivered, "")
	require.NoError(t, err)
	assert.Empty(t, cmd.Notes())
}

func TestNewUpdateOrderStatusCommand_NotesTooLong(t *testing.T) {
	id := kernel.NewUUID()
	_, err := commands.NewUpdateOrderStatusCommand(id, order.InTransit, strings.Repeat("x", 1001))
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestNewUpdateOrderStatusCommand_InvalidOrderID(t *testing.T) {
	invalidID := kernel.UUID{}
	_, err := commands.NewUpdateOrderStatusCommand(invalidID, order.InTransit, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewUpdateOrderStatusCommand_InvalidStatus(t *testing.T) {
	id := kernel.NewUUID()
	_, err := commands.NewUpdateOrderStatusCommand(id, order.Unknown, "")
	require.Error(t, err)
}

func TestUpdateOrderStatusCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.UpdateOrderStatusCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrUpdateOrderStatusCommandIsNotConstructed)
}
