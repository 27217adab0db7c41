package registry

import (
	"fmt"

	"github.com/brahmareddy-ala/property-registration/pkg/authz"
	"github.com/brahmareddy-ala/property-registration/pkg/entity"
	"github.com/brahmareddy-ala/property-registration/pkg/errdefs"
	"github.com/brahmareddy-ala/property-registration/pkg/store"
)

// PropertyRegistrationRequest records a registration request for a property
// owned by an already approved user.
func (s *Service) PropertyRegistrationRequest(p authz.Principal, propertyID, ownerName, ownerAadhar string, price int64) (*entity.Property, error) {
	if err := authz.Require(p, authz.OpPropertyRegistrationRequest); err != nil {
		return nil, err
	}
	if propertyID == "" {
		return nil, errdefs.NewValidationError("property id", "must not be empty")
	}
	if price <= 0 {
		return nil, errdefs.NewValidationError("price", fmt.Sprintf("must be positive, got %d", price))
	}

	owner, err := s.users.Get(ownerName, ownerAadhar)
	if err != nil {
		return nil, err
	}
	if !owner.Approved() {
		return nil, errdefs.NewInvariantError(fmt.Sprintf("owner %q is not an approved user", store.UserKey(ownerName, ownerAadhar)))
	}

	existing, err := s.props.Get(propertyID)
	if err == nil {
		detail := "the property is already registered"
		if existing.Status == entity.PropertyPending {
			detail = "a registration request is already pending approval"
		}
		return nil, errdefs.NewAlreadyExistsError("property", store.PropertyKey(propertyID), detail)
	}
	if !errdefs.IsNotFound(err) {
		return nil, err
	}

	prop := &entity.Property{
		PropertyID: propertyID,
		Owner:      store.UserKey(ownerName, ownerAadhar),
		Price:      price,
		Status:     entity.PropertyPending,
	}
	if err := s.props.Put(prop); err != nil {
		return nil, err
	}
	return prop, nil
}

// ApprovePropertyRegistrationRequest promotes a pending property to
// registered.
func (s *Service) ApprovePropertyRegistrationRequest(p authz.Principal, propertyID string) (*entity.Property, error) {
	if err := authz.Require(p, authz.OpApprovePropertyRegistrationRequest); err != nil {
		return nil, err
	}

	prop, err := s.props.Get(propertyID)
	if err != nil {
		return nil, err
	}
	if prop.Status != entity.PropertyPending {
		return nil, errdefs.NewValidationError("property", fmt.Sprintf("property %q is already registered", propertyID))
	}

	prop.Status = entity.PropertyRegistered
	if err := s.props.Update(prop); err != nil {
		return nil, err
	}
	return prop, nil
}

// UpdateProperty lets the property's current owner toggle its status between
// registered and onSale.
func (s *Service) UpdateProperty(p authz.Principal, propertyID, callerName, callerAadhar string, status entity.PropertyStatus) (*entity.Property, error) {
	if err := authz.Require(p, authz.OpUpdateProperty); err != nil {
		return nil, err
	}
	if !entity.ValidUpdateStatus(status) {
		return nil, errdefs.NewValidationError("status", fmt.Sprintf("must be %q or %q, got %q", entity.PropertyRegistered, entity.PropertyOnSale, status))
	}

	prop, err := s.props.Get(propertyID)
	if err != nil {
		return nil, err
	}

	callerKey := store.UserKey(callerName, callerAadhar)
	if prop.Owner != callerKey {
		return nil, fmt.Errorf("caller %q is not the owner of property %q: %w", callerKey, propertyID, errdefs.ErrUnauthorized)
	}
	if prop.Status == entity.PropertyPending {
		return nil, errdefs.NewValidationError("property", fmt.Sprintf("property %q is not yet registered", propertyID))
	}

	prop.Status = status
	if err := s.props.Update(prop); err != nil {
		return nil, err
	}
	return prop, nil
}

// ViewProperty returns the stored property record. Reads require no role.
func (s *Service) ViewProperty(propertyID string) (*entity.Property, error) {
	return s.props.Get(propertyID)
}

// ViewTrade returns the trade record written by a past purchase, keyed by
// that purchase's transaction ID.
func (s *Service) ViewTrade(txID string) (*entity.Trade, error) {
	return s.trades.Get(txID)
}
