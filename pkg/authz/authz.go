// Package authz gates registry operations on the calling principal's role.
// The check runs before any ledger read or write, so a rejected call leaves
// no trace in the invocation's write set.
package authz

import (
	"github.com/brahmareddy-ala/property-registration/pkg/errdefs"
)

// Role is the coarse permission class of a principal.
type Role string

const (
	// RoleUser may submit requests, recharge, list and purchase properties.
	RoleUser Role = "user"
	// RoleRegistrar may approve user and property registration requests.
	RoleRegistrar Role = "registrar"
)

// MSP IDs of the network's two organizations.
const (
	UsersMSP     = "UsersMSP"
	RegistrarMSP = "RegistrarMSP"
)

// Principal is the already-authenticated identity an operation runs as. The
// surrounding platform verifies the certificate; this core only consumes the
// resulting organization identifier.
type Principal struct {
	MSPID string
	Role  Role
}

// FromMSPID maps an organization MSP ID to a Principal. An MSP outside the
// network's two organizations is rejected outright.
func FromMSPID(mspID string) (Principal, error) {
	switch mspID {
	case UsersMSP:
		return Principal{MSPID: mspID, Role: RoleUser}, nil
	case RegistrarMSP:
		return Principal{MSPID: mspID, Role: RoleRegistrar}, nil
	default:
		return Principal{}, errdefs.NewUnauthorizedError(mspID, "any registry operation")
	}
}

// Operation names the mutating registry operations.
type Operation string

const (
	OpRequestNewUser                     Operation = "requestNewUser"
	OpApproveNewUserRequest              Operation = "approveNewUserRequest"
	OpRechargeAccount                    Operation = "rechargeAccount"
	OpPropertyRegistrationRequest        Operation = "propertyRegistrationRequest"
	OpApprovePropertyRegistrationRequest Operation = "approvePropertyRegistrationRequest"
	OpUpdateProperty                     Operation = "updateProperty"
	OpPurchaseProperty                   Operation = "purchaseProperty"
)

// requiredRole maps every mutating operation to the role that may invoke it.
// Viewing operations are absent: reads are open to both organizations.
var requiredRole = map[Operation]Role{
	OpRequestNewUser:                     RoleUser,
	OpApproveNewUserRequest:              RoleRegistrar,
	OpRechargeAccount:                    RoleUser,
	OpPropertyRegistrationRequest:        RoleUser,
	OpApprovePropertyRegistrationRequest: RoleRegistrar,
	OpUpdateProperty:                     RoleUser,
	OpPurchaseProperty:                   RoleUser,
}

// Require rejects the call unless the principal's role matches the
// operation's required role.
func Require(p Principal, op Operation) error {
	role, ok := requiredRole[op]
	if !ok {
		return errdefs.NewUnauthorizedError(string(p.Role), string(op))
	}
	if p.Role != role {
		return errdefs.NewUnauthorizedError(string(p.Role), string(op))
	}
	return nil
}
