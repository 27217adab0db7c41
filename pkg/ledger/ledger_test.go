package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveCompositeKey(t *testing.T) {
	assert.Equal(t, "regnet.user:alice:1234", DeriveCompositeKey("regnet.user", "alice", "1234"))
	assert.Equal(t, "regnet.prop:plot-7", DeriveCompositeKey("regnet.prop", "plot-7"))
}

func TestMemoryAbsentKeyIsNil(t *testing.T) {
	m := NewMemory()
	val, err := m.GetState("missing")
	require.NoError(t, err)
	assert.Nil(t, val)
}

func TestMemoryRoundTrip(t *testing.T) {
	m := NewMemory()
	require.NoError(t, m.PutState("k", []byte("v")))

	val, err := m.GetState("k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), val)

	// returned slice is a copy; mutating it must not touch stored state
	val[0] = 'x'
	again, err := m.GetState("k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), again)
}

func TestMemoryTxIdentity(t *testing.T) {
	m := NewMemory()
	ts := time.Unix(1800000000, 0).UTC()
	m.SetTx("tx-42", ts)

	assert.Equal(t, "tx-42", m.TxID())
	got, err := m.TxTimestamp()
	require.NoError(t, err)
	assert.Equal(t, ts, got)
}

func TestMemoryEvents(t *testing.T) {
	m := NewMemory()
	require.NoError(t, m.SetEvent("PurchaseEvent", []byte(`{}`)))
	require.Len(t, m.Events(), 1)
	assert.Equal(t, "PurchaseEvent", m.Events()[0].Name)
}

func TestMemoryInjectedFaults(t *testing.T) {
	m := NewMemory()
	m.FailGets = true
	_, err := m.GetState("k")
	assert.Error(t, err)

	m.FailGets = false
	m.FailPuts = true
	assert.Error(t, m.PutState("k", []byte("v")))
	assert.Zero(t, m.Keys())
}
