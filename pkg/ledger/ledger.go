// Package ledger is the boundary to the underlying key-value ledger. The
// only guarantee the core relies on is that every read and write issued
// within one invocation commits atomically, or not at all.
package ledger

import (
	"strings"
	"time"
)

// Separator joins the namespace and identifying parts of a composite key.
const Separator = ":"

// Ledger is the per-invocation view of the world state. GetState returns a
// nil slice for an absent key; callers must treat nil as "not found", never
// as an empty record.
type Ledger interface {
	GetState(key string) ([]byte, error)
	PutState(key string, value []byte) error

	// TxID identifies the current invocation.
	TxID() string

	// TxTimestamp is the invocation's timestamp as agreed by endorsers.
	// Operations must use it instead of the wall clock so that every peer
	// computes identical state.
	TxTimestamp() (time.Time, error)

	// SetEvent attaches a named event payload to the invocation's commit.
	SetEvent(name string, payload []byte) error
}

// DeriveCompositeKey builds the canonical ledger key for a record:
// the namespace and the identifying parts joined by Separator. Every key in
// the registry, including owner references stored inside records, is
// produced by this function.
func DeriveCompositeKey(namespace string, parts ...string) string {
	return namespace + Separator + strings.Join(parts, Separator)
}
