package command_test

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/sghaida/gof"
	"github.com/sghaida/gof/command"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPressButton_ExactlyOneReceiverCall verifies the held command triggers one receiver method.
func TestPressButton_ExactlyOneReceiverCall(t *testing.T) {
	t.Parallel()

	light := command.NewLight(nil)
	remote := command.NewRemoteControl()
	remote.SetCommand(command.LightOn{Light: light})

	require.NoError(t, remote.PressButton())
	assert.Equal(t, []string{"TurnOn"}, light.Calls())
	assert.True(t, light.IsOn())
}

func TestSetCommand_Replaces(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	light := command.NewLight(&buf)
	remote := command.NewRemoteControl()

	remote.SetCommand(command.LightOn{Light: light})
	require.NoError(t, remote.PressButton())
	remote.SetCommand(command.LightOff{Light: light})
	require.NoError(t, remote.PressButton())

	assert.Equal(t, "Light is ON\nLight is OFF\n", buf.String())
	assert.Equal(t, []string{"TurnOn", "TurnOff"}, light.Calls())
	assert.False(t, light.IsOn())

	hist := remote.History()
	require.Len(t, hist, 2)
	assert.Equal(t, "light-on", hist[0].Command)
	assert.Equal(t, "light-off", hist[1].Command)
	assert.NotEqual(t, uuid.Nil, hist[0].ID)
	assert.NotEqual(t, hist[0].ID, hist[1].ID)
}

func TestPressButton_NoCommand(t *testing.T) {
	t.Parallel()

	remote := command.NewRemoteControl()
	err := remote.PressButton()

	require.Error(t, err)
	assert.ErrorIs(t, err, gof.ErrInvalidOperation)
	assert.True(t, command.IsNoCommand(err))
	assert.Empty(t, remote.History())
}

func TestCalls_ReturnsCopy(t *testing.T) {
	t.Parallel()

	light := command.NewLight(nil)
	light.TurnOn()
	calls := light.Calls()
	calls[0] = "mutated"

	assert.Equal(t, []string{"TurnOn"}, light.Calls())
}
