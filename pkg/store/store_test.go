package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brahmareddy-ala/property-registration/pkg/entity"
	"github.com/brahmareddy-ala/property-registration/pkg/errdefs"
	"github.com/brahmareddy-ala/property-registration/pkg/ledger"
)

func TestKeys(t *testing.T) {
	assert.Equal(t, "regnet.user:alice:1234", UserKey("alice", "1234"))
	assert.Equal(t, "regnet.prop:plot-7", PropertyKey("plot-7"))
	assert.Equal(t, "regnet.trade:tx-1", TradeKey("tx-1"))
}

func TestUserStoreRoundTrip(t *testing.T) {
	led := ledger.NewMemory()
	users := NewUserStore(led)

	u := &entity.User{
		Name:      "alice",
		Email:     "alice@example.com",
		Phone:     "9876543210",
		Aadhar:    "1234",
		CreatedAt: 1700000000,
		Status:    entity.UserRequested,
	}
	require.NoError(t, users.Put(u))

	got, err := users.Get("alice", "1234")
	require.NoError(t, err)
	assert.Equal(t, u, got)

	byKey, err := users.GetByKey(UserKey("alice", "1234"))
	require.NoError(t, err)
	assert.Equal(t, u, byKey)
}

func TestUserStoreAbsent(t *testing.T) {
	users := NewUserStore(ledger.NewMemory())
	_, err := users.Get("ghost", "0000")
	assert.ErrorIs(t, err, errdefs.ErrNotFound)
}

func TestUserStoreCorrupt(t *testing.T) {
	led := ledger.NewMemory()
	led.PutRaw(UserKey("alice", "1234"), []byte("not json"))

	_, err := NewUserStore(led).Get("alice", "1234")
	assert.ErrorIs(t, err, errdefs.ErrCorruptRecord)
	assert.NotErrorIs(t, err, errdefs.ErrNotFound)
}

func TestUserStoreReadFault(t *testing.T) {
	led := ledger.NewMemory()
	led.FailGets = true

	_, err := NewUserStore(led).Get("alice", "1234")
	require.Error(t, err)
	assert.NotErrorIs(t, err, errdefs.ErrNotFound)
}

func TestPropertyStoreRoundTrip(t *testing.T) {
	led := ledger.NewMemory()
	props := NewPropertyStore(led)

	p := &entity.Property{
		PropertyID: "plot-7",
		Owner:      UserKey("alice", "1234"),
		Price:      300,
		Status:     entity.PropertyPending,
	}
	require.NoError(t, props.Put(p))

	got, err := props.Get("plot-7")
	require.NoError(t, err)
	assert.Equal(t, p, got)

	p.Status = entity.PropertyRegistered
	require.NoError(t, props.Update(p))
	got, err = props.Get("plot-7")
	require.NoError(t, err)
	assert.Equal(t, entity.PropertyRegistered, got.Status)
}

func TestPropertyStoreAbsent(t *testing.T) {
	_, err := NewPropertyStore(ledger.NewMemory()).Get("ghost")
	assert.ErrorIs(t, err, errdefs.ErrNotFound)
}

func TestTradeStoreRoundTrip(t *testing.T) {
	led := ledger.NewMemory()
	trades := NewTradeStore(led)

	tr := &entity.Trade{
		TradeID:    "tx-1",
		PropertyID: "plot-7",
		Seller:     UserKey("alice", "1234"),
		Buyer:      UserKey("bob", "5678"),
		Price:      300,
		Timestamp:  1700000000,
	}
	require.NoError(t, trades.Put(tr))

	got, err := trades.Get("tx-1")
	require.NoError(t, err)
	assert.Equal(t, tr, got)
}

func TestStoresShareOneLedgerNamespacedApart(t *testing.T) {
	led := ledger.NewMemory()
	require.NoError(t, NewUserStore(led).Put(&entity.User{
		Name: "plot-7", Aadhar: "x", Status: entity.UserRequested,
	}))

	// a user record never shadows a property record
	_, err := NewPropertyStore(led).Get("plot-7")
	assert.ErrorIs(t, err, errdefs.ErrNotFound)
}
