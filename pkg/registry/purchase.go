package registry

import (
	"fmt"

	"github.com/brahmareddy-ala/property-registration/pkg/authz"
	"github.com/brahmareddy-ala/property-registration/pkg/entity"
	"github.com/brahmareddy-ala/property-registration/pkg/errdefs"
	"github.com/brahmareddy-ala/property-registration/pkg/store"
)

// PurchaseProperty transfers a listed property to the buyer and its price
// from the buyer's balance to the seller's. The three records are read,
// validated, and rewritten inside this single invocation; the ledger commits
// the whole write set or none of it, so the total coin supply is conserved
// and the property never stays onSale after a successful purchase.
func (s *Service) PurchaseProperty(p authz.Principal, propertyID, buyerName, buyerAadhar string) (*entity.Property, error) {
	if err := authz.Require(p, authz.OpPurchaseProperty); err != nil {
		return nil, err
	}

	prop, err := s.props.Get(propertyID)
	if err != nil {
		return nil, err
	}
	if prop.Status != entity.PropertyOnSale {
		return nil, errdefs.NewValidationError("property", fmt.Sprintf("property %q is not onSale", propertyID))
	}

	buyerKey := store.UserKey(buyerName, buyerAadhar)
	if prop.Owner == buyerKey {
		// Buyer and seller would resolve to the same record; applying both
		// staged copies would lose one balance mutation.
		return nil, errdefs.NewValidationError("buyer", fmt.Sprintf("user %q already owns property %q", buyerKey, propertyID))
	}

	buyer, err := s.users.Get(buyerName, buyerAadhar)
	if err != nil {
		return nil, err
	}
	if !buyer.Approved() {
		return nil, errdefs.NewValidationError("buyer", fmt.Sprintf("user %q is not approved", buyerKey))
	}

	seller, err := s.users.GetByKey(prop.Owner)
	if err != nil {
		if errdefs.IsNotFound(err) {
			return nil, errdefs.NewInvariantError(fmt.Sprintf("property %q references missing owner %q", propertyID, prop.Owner))
		}
		return nil, err
	}
	if !seller.Approved() {
		return nil, errdefs.NewInvariantError(fmt.Sprintf("property %q references unapproved owner %q", propertyID, prop.Owner))
	}

	if buyer.UpgradCoins < prop.Price {
		return nil, errdefs.NewValidationError("balance",
			fmt.Sprintf("insufficient funds: user %q holds %d, property %q costs %d", buyerKey, buyer.UpgradCoins, propertyID, prop.Price))
	}

	ts, err := s.led.TxTimestamp()
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction timestamp: %w", err)
	}

	// All checks passed; stage the full write set.
	buyer.UpgradCoins -= prop.Price
	seller.UpgradCoins += prop.Price
	prop.Owner = buyerKey
	prop.Status = entity.PropertyRegistered

	if err := s.users.Update(buyer); err != nil {
		return nil, err
	}
	if err := s.users.Update(seller); err != nil {
		return nil, err
	}
	if err := s.props.Update(prop); err != nil {
		return nil, err
	}

	trade := &entity.Trade{
		TradeID:    s.led.TxID(),
		PropertyID: propertyID,
		Seller:     store.UserKey(seller.Name, seller.Aadhar),
		Buyer:      buyerKey,
		Price:      prop.Price,
		Timestamp:  ts.Unix(),
	}
	if err := s.trades.Put(trade); err != nil {
		return nil, err
	}

	payload, err := entity.EncodeTrade(trade)
	if err != nil {
		return nil, fmt.Errorf("failed to encode trade event: %w", err)
	}
	if err := s.led.SetEvent(PurchaseEvent, payload); err != nil {
		return nil, fmt.Errorf("failed to set purchase event: %w", err)
	}

	return prop, nil
}
