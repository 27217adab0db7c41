package ledger

import (
	"fmt"
	"time"
)

// Event is an event recorded by a Memory ledger.
type Event struct {
	Name    string
	Payload []byte
}

// Memory is a map-backed Ledger for tests. It applies writes immediately;
// tests assert atomicity by checking that failed operations issued no writes
// at all.
type Memory struct {
	state     map[string][]byte
	events    []Event
	txID      string
	timestamp time.Time

	// FailGets makes every GetState return an error, simulating a ledger
	// read fault.
	FailGets bool
	// FailPuts makes every PutState return an error.
	FailPuts bool
}

// NewMemory returns an empty in-memory ledger with a fixed tx identity.
func NewMemory() *Memory {
	return &Memory{
		state:     make(map[string][]byte),
		txID:      "tx-0",
		timestamp: time.Unix(1700000000, 0).UTC(),
	}
}

// SetTx sets the identity reported for the current invocation.
func (m *Memory) SetTx(id string, ts time.Time) {
	m.txID = id
	m.timestamp = ts
}

func (m *Memory) GetState(key string) ([]byte, error) {
	if m.FailGets {
		return nil, fmt.Errorf("ledger read failed for key %q", key)
	}
	val, ok := m.state[key]
	if !ok {
		return nil, nil
	}
	cp := make([]byte, len(val))
	copy(cp, val)
	return cp, nil
}

func (m *Memory) PutState(key string, value []byte) error {
	if m.FailPuts {
		return fmt.Errorf("ledger write failed for key %q", key)
	}
	cp := make([]byte, len(value))
	copy(cp, value)
	m.state[key] = cp
	return nil
}

func (m *Memory) TxID() string {
	return m.txID
}

func (m *Memory) TxTimestamp() (time.Time, error) {
	return m.timestamp, nil
}

func (m *Memory) SetEvent(name string, payload []byte) error {
	m.events = append(m.events, Event{Name: name, Payload: payload})
	return nil
}

// Events returns the events recorded so far.
func (m *Memory) Events() []Event {
	return m.events
}

// Keys returns the number of keys currently stored.
func (m *Memory) Keys() int {
	return len(m.state)
}

// Raw returns the stored bytes for a key, or nil when absent. Tests use it
// to plant corrupt buffers.
func (m *Memory) Raw(key string) []byte {
	return m.state[key]
}

// PutRaw stores bytes directly, bypassing any codec.
func (m *Memory) PutRaw(key string, value []byte) {
	m.state[key] = value
}
