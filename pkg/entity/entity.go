// Package entity defines the registry's ledger records and their codec.
package entity

// UserStatus is the lifecycle state of a User record. It is always
// serialized, so a requested user and a zero-balance approved user are never
// ambiguous.
type UserStatus string

const (
	// UserRequested is a registration request awaiting registrar approval.
	UserRequested UserStatus = "requested"
	// UserApproved is a user admitted to the network with a coin balance.
	UserApproved UserStatus = "approved"
)

// PropertyStatus is the lifecycle state of a Property record.
type PropertyStatus string

const (
	// PropertyPending is a registration request awaiting registrar approval.
	PropertyPending PropertyStatus = "pending"
	// PropertyRegistered is an approved property not listed for sale.
	PropertyRegistered PropertyStatus = "registered"
	// PropertyOnSale is a registered property listed for purchase.
	PropertyOnSale PropertyStatus = "onSale"
)

// User represents a participant of the registration network.
type User struct {
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	Aadhar    string     `json:"aadhar"`
	CreatedAt int64      `json:"created_at"`
	Status    UserStatus `json:"status"`
	// UpgradCoins is the user's balance. It is zeroed on approval and only
	// mutated by recharge and purchase. Never negative.
	UpgradCoins int64 `json:"upgrad_coins"`
}

// Approved reports whether the user has been admitted by a registrar.
func (u *User) Approved() bool {
	return u.Status == UserApproved
}

// Property represents a plot in the registration network.
type Property struct {
	PropertyID string `json:"property_id"`
	// Owner is the composite ledger key of the owning user.
	Owner  string         `json:"owner"`
	Price  int64          `json:"price"`
	Status PropertyStatus `json:"status"`
}

// Trade is the audit record written by a successful purchase, keyed by the
// invocation's transaction ID.
type Trade struct {
	TradeID    string `json:"trade_id"`
	PropertyID string `json:"property_id"`
	Seller     string `json:"seller"`
	Buyer      string `json:"buyer"`
	Price      int64  `json:"price"`
	Timestamp  int64  `json:"timestamp"`
}

// ValidUpdateStatus reports whether s is a status an owner may set through
// updateProperty. Only the registered/onSale toggle is allowed; pending is a
// registrar-controlled state.
func ValidUpdateStatus(s PropertyStatus) bool {
	return s == PropertyRegistered || s == PropertyOnSale
}

func validUserStatus(s UserStatus) bool {
	return s == UserRequested || s == UserApproved
}

func validPropertyStatus(s PropertyStatus) bool {
	return s == PropertyPending || s == PropertyRegistered || s == PropertyOnSale
}
