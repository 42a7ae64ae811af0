package gate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventtix/eventtix/pkg/gate"
)

func TestMachineStartsIdle(t *testing.T) {
	m := gate.NewMachine()

	assert.Equal(t, gate.StateIdle, m.State())
	_, ok := m.Pending()
	assert.False(t, ok)
}

func TestRequestParksAction(t *testing.T) {
	m := gate.NewMachine()
	m.Request(gate.Action{Kind: gate.KindPurchase, EventID: 3})

	assert.Equal(t, gate.StateAwaitingAuth, m.State())
	pending, ok := m.Pending()
	require.True(t, ok)
	assert.Equal(t, gate.KindPurchase, pending.Kind)
	assert.Equal(t, int64(3), pending.EventID)
}

func TestRequestReplacesPending(t *testing.T) {
	m := gate.NewMachine()
	m.Request(gate.Action{Kind: gate.KindPurchase, EventID: 3})
	m.Request(gate.Action{Kind: gate.KindFavorite, EventID: 5})

	pending, ok := m.Pending()
	require.True(t, ok)
	assert.Equal(t, gate.KindFavorite, pending.Kind)
	assert.Equal(t, int64(5), pending.EventID)
}

func TestCompleteReplaysExactlyOnce(t *testing.T) {
	m := gate.NewMachine()
	m.Request(gate.Action{Kind: gate.KindPurchase, EventID: 3})

	action, ok := m.Complete()
	require.True(t, ok)
	assert.Equal(t, int64(3), action.EventID)
	assert.Equal(t, gate.StateIdle, m.State())

	_, ok = m.Complete()
	assert.False(t, ok)
}

func TestCompleteWhileIdle(t *testing.T) {
	m := gate.NewMachine()

	_, ok := m.Complete()
	assert.False(t, ok)
	assert.Equal(t, gate.StateIdle, m.State())
}

func TestDismissDiscards(t *testing.T) {
	m := gate.NewMachine()
	m.Request(gate.Action{Kind: gate.KindFavorite, EventID: 9})
	m.Dismiss()

	assert.Equal(t, gate.StateIdle, m.State())
	_, ok := m.Complete()
	assert.False(t, ok)
}
