package registry

import (
	"fmt"

	"github.com/brahmareddy-ala/property-registration/pkg/authz"
	"github.com/brahmareddy-ala/property-registration/pkg/entity"
	"github.com/brahmareddy-ala/property-registration/pkg/errdefs"
	"github.com/brahmareddy-ala/property-registration/pkg/store"
)

// RequestNewUser records a registration request for a new user. The request
// carries no balance; a registrar must approve it before the user can hold
// coins.
func (s *Service) RequestNewUser(p authz.Principal, name, email, phone, aadhar string) (*entity.User, error) {
	if err := authz.Require(p, authz.OpRequestNewUser); err != nil {
		return nil, err
	}
	if name == "" || aadhar == "" {
		return nil, errdefs.NewValidationError("identity", "name and aadhar are required")
	}

	existing, err := s.users.Get(name, aadhar)
	if err == nil {
		detail := "a registration request is already pending approval"
		if existing.Approved() {
			detail = "the user is already approved"
		}
		return nil, errdefs.NewAlreadyExistsError("user", store.UserKey(name, aadhar), detail)
	}
	if !errdefs.IsNotFound(err) {
		return nil, err
	}

	ts, err := s.led.TxTimestamp()
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction timestamp: %w", err)
	}

	user := &entity.User{
		Name:      name,
		Email:     email,
		Phone:     phone,
		Aadhar:    aadhar,
		CreatedAt: ts.Unix(),
		Status:    entity.UserRequested,
	}
	if err := s.users.Put(user); err != nil {
		return nil, err
	}
	return user, nil
}

// ApproveNewUserRequest promotes a pending registration request to an
// approved user with a zero coin balance.
func (s *Service) ApproveNewUserRequest(p authz.Principal, name, aadhar string) (*entity.User, error) {
	if err := authz.Require(p, authz.OpApproveNewUserRequest); err != nil {
		return nil, err
	}

	user, err := s.users.Get(name, aadhar)
	if err != nil {
		return nil, err
	}
	if user.Approved() {
		return nil, errdefs.NewValidationError("user", fmt.Sprintf("user %q is already approved", store.UserKey(name, aadhar)))
	}

	user.Status = entity.UserApproved
	user.UpgradCoins = 0
	if err := s.users.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// RechargeAccount credits an approved user's balance with the coin amount
// mapped from the bank transaction code. Unknown codes fail before any state
// is read.
func (s *Service) RechargeAccount(p authz.Principal, name, aadhar, bankTxID string) (*entity.User, error) {
	if err := authz.Require(p, authz.OpRechargeAccount); err != nil {
		return nil, err
	}

	amount, err := s.schedule.Amount(bankTxID)
	if err != nil {
		return nil, err
	}

	user, err := s.users.Get(name, aadhar)
	if err != nil {
		return nil, err
	}
	if !user.Approved() {
		return nil, errdefs.NewValidationError("user", fmt.Sprintf("user %q is not approved", store.UserKey(name, aadhar)))
	}

	user.UpgradCoins += amount
	if err := s.users.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// ViewUser returns the stored user record. Reads require no role.
func (s *Service) ViewUser(name, aadhar string) (*entity.User, error) {
	return s.users.Get(name, aadhar)
}
