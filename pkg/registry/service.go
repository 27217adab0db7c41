// Package registry implements the property registration network's
// transaction logic. Every operation runs start to finish against one
// invocation's ledger view: the authorization gate fires before any state is
// touched, all validation happens before the first write, and the ledger
// commits the whole read/write set atomically or rejects it.
package registry

import (
	"github.com/brahmareddy-ala/property-registration/pkg/config"
	"github.com/brahmareddy-ala/property-registration/pkg/ledger"
	"github.com/brahmareddy-ala/property-registration/pkg/store"
)

// PurchaseEvent is the event name attached to a successful purchase commit.
const PurchaseEvent = "PurchaseEvent"

// Service executes registry operations for a single invocation.
type Service struct {
	led      ledger.Ledger
	users    *store.UserStore
	props    *store.PropertyStore
	trades   *store.TradeStore
	schedule config.RechargeSchedule
}

// New binds a service to an invocation's ledger view. The recharge schedule
// must have been validated by the caller at construction time.
func New(led ledger.Ledger, schedule config.RechargeSchedule) *Service {
	return &Service{
		led:      led,
		users:    store.NewUserStore(led),
		props:    store.NewPropertyStore(led),
		trades:   store.NewTradeStore(led),
		schedule: schedule,
	}
}
