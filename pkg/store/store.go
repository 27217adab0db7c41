// Package store provides namespaced, typed access to registry records in the
// ledger. Stores perform no uniqueness or business checks; existence rules
// belong to the registry service.
package store

import (
	"fmt"

	"github.com/brahmareddy-ala/property-registration/pkg/entity"
	"github.com/brahmareddy-ala/property-registration/pkg/ledger"
)

// Per-record-type namespaces. The prefixes isolate registry records from any
// other record types sharing the ledger.
const (
	UserNamespace     = "regnet.user"
	PropertyNamespace = "regnet.prop"
	TradeNamespace    = "regnet.trade"
)

// UserKey derives the canonical ledger key for a user. Every owner reference
// stored in a property record and every ownership comparison goes through
// this function, so the stored string can never drift from the lookup key.
func UserKey(name, aadhar string) string {
	return ledger.DeriveCompositeKey(UserNamespace, name, aadhar)
}

// PropertyKey derives the canonical ledger key for a property.
func PropertyKey(propertyID string) string {
	return ledger.DeriveCompositeKey(PropertyNamespace, propertyID)
}

// TradeKey derives the canonical ledger key for a trade audit record.
func TradeKey(txID string) string {
	return ledger.DeriveCompositeKey(TradeNamespace, txID)
}

// UserStore reads and writes user records.
type UserStore struct {
	led ledger.Ledger
}

// NewUserStore binds a user store to the invocation's ledger view.
func NewUserStore(led ledger.Ledger) *UserStore {
	return &UserStore{led: led}
}

// Get fetches the user stored under the given identity. Absence surfaces as
// an ErrNotFound, a present but undecodable buffer as ErrCorruptRecord.
func (s *UserStore) Get(name, aadhar string) (*entity.User, error) {
	key := UserKey(name, aadhar)
	buf, err := s.led.GetState(key)
	if err != nil {
		return nil, fmt.Errorf("failed to read user %q: %w", key, err)
	}
	return entity.DecodeUser(key, buf)
}

// GetByKey fetches the user stored under a previously derived key, such as a
// property's owner reference.
func (s *UserStore) GetByKey(key string) (*entity.User, error) {
	buf, err := s.led.GetState(key)
	if err != nil {
		return nil, fmt.Errorf("failed to read user %q: %w", key, err)
	}
	return entity.DecodeUser(key, buf)
}

// Put creates or overwrites the user record.
func (s *UserStore) Put(u *entity.User) error {
	buf, err := entity.EncodeUser(u)
	if err != nil {
		return fmt.Errorf("failed to encode user: %w", err)
	}
	return s.led.PutState(UserKey(u.Name, u.Aadhar), buf)
}

// Update overwrites an existing user record. At this layer it is identical
// to Put; the distinct name records the caller's intent.
func (s *UserStore) Update(u *entity.User) error {
	return s.Put(u)
}

// PropertyStore reads and writes property records.
type PropertyStore struct {
	led ledger.Ledger
}

// NewPropertyStore binds a property store to the invocation's ledger view.
func NewPropertyStore(led ledger.Ledger) *PropertyStore {
	return &PropertyStore{led: led}
}

// Get fetches the property stored under propertyID.
func (s *PropertyStore) Get(propertyID string) (*entity.Property, error) {
	key := PropertyKey(propertyID)
	buf, err := s.led.GetState(key)
	if err != nil {
		return nil, fmt.Errorf("failed to read property %q: %w", key, err)
	}
	return entity.DecodeProperty(key, buf)
}

// Put creates or overwrites the property record.
func (s *PropertyStore) Put(p *entity.Property) error {
	buf, err := entity.EncodeProperty(p)
	if err != nil {
		return fmt.Errorf("failed to encode property: %w", err)
	}
	return s.led.PutState(PropertyKey(p.PropertyID), buf)
}

// Update overwrites an existing property record.
func (s *PropertyStore) Update(p *entity.Property) error {
	return s.Put(p)
}

// TradeStore reads and writes trade audit records.
type TradeStore struct {
	led ledger.Ledger
}

// NewTradeStore binds a trade store to the invocation's ledger view.
func NewTradeStore(led ledger.Ledger) *TradeStore {
	return &TradeStore{led: led}
}

// Get fetches the trade recorded under the given transaction ID.
func (s *TradeStore) Get(txID string) (*entity.Trade, error) {
	key := TradeKey(txID)
	buf, err := s.led.GetState(key)
	if err != nil {
		return nil, fmt.Errorf("failed to read trade %q: %w", key, err)
	}
	return entity.DecodeTrade(key, buf)
}

// Put records a trade.
func (s *TradeStore) Put(tr *entity.Trade) error {
	buf, err := entity.EncodeTrade(tr)
	if err != nil {
		return fmt.Errorf("failed to encode trade: %w", err)
	}
	return s.led.PutState(TradeKey(tr.TradeID), buf)
}
