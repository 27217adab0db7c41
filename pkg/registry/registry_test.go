package registry

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brahmareddy-ala/property-registration/pkg/authz"
	"github.com/brahmareddy-ala/property-registration/pkg/config"
	"github.com/brahmareddy-ala/property-registration/pkg/entity"
	"github.com/brahmareddy-ala/property-registration/pkg/ledger"
)

var (
	asUser      = authz.Principal{MSPID: authz.UsersMSP, Role: authz.RoleUser}
	asRegistrar = authz.Principal{MSPID: authz.RegistrarMSP, Role: authz.RoleRegistrar}
)

func newService(t *testing.T) (*Service, *ledger.Memory) {
	t.Helper()
	led := ledger.NewMemory()
	schedule := config.DefaultRechargeSchedule()
	require.NoError(t, schedule.Validate())
	return New(led, schedule), led
}

// approvedUser walks a user through request and approval.
func approvedUser(t *testing.T, s *Service, name, aadhar string) *entity.User {
	t.Helper()
	_, err := s.RequestNewUser(asUser, name, name+"@example.com", "9876543210", aadhar)
	require.NoError(t, err)
	u, err := s.ApproveNewUserRequest(asRegistrar, name, aadhar)
	require.NoError(t, err)
	return u
}

// fundedUser is an approved user recharged with the given codes.
func fundedUser(t *testing.T, s *Service, name, aadhar string, codes ...string) *entity.User {
	t.Helper()
	u := approvedUser(t, s, name, aadhar)
	for _, code := range codes {
		var err error
		u, err = s.RechargeAccount(asUser, name, aadhar, code)
		require.NoError(t, err)
	}
	return u
}

// registeredProperty walks a property through request and approval.
func registeredProperty(t *testing.T, s *Service, id, ownerName, ownerAadhar string, price int64) *entity.Property {
	t.Helper()
	_, err := s.PropertyRegistrationRequest(asUser, id, ownerName, ownerAadhar, price)
	require.NoError(t, err)
	p, err := s.ApprovePropertyRegistrationRequest(asRegistrar, id)
	require.NoError(t, err)
	return p
}

// listedProperty is a registered property its owner has put on sale.
func listedProperty(t *testing.T, s *Service, id, ownerName, ownerAadhar string, price int64) *entity.Property {
	t.Helper()
	registeredProperty(t, s, id, ownerName, ownerAadhar, price)
	p, err := s.UpdateProperty(asUser, id, ownerName, ownerAadhar, entity.PropertyOnSale)
	require.NoError(t, err)
	return p
}
