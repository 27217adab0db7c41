// Package chaincode exposes the registry service as a Fabric smart contract.
// Each transaction function extracts the calling organization's identity,
// binds a registry service to the invocation's stub, and delegates; the peer
// commits the invocation's full read/write set atomically.
package chaincode

import (
	"fmt"

	"github.com/hyperledger/fabric-contract-api-go/contractapi"

	"github.com/brahmareddy-ala/property-registration/pkg/authz"
	"github.com/brahmareddy-ala/property-registration/pkg/config"
	"github.com/brahmareddy-ala/property-registration/pkg/entity"
	"github.com/brahmareddy-ala/property-registration/pkg/ledger"
	"github.com/brahmareddy-ala/property-registration/pkg/registry"
)

// RegistrationContract manages users and properties of the registration
// network.
type RegistrationContract struct {
	contractapi.Contract
	schedule config.RechargeSchedule
}

// NewRegistrationContract builds the contract with an injected recharge
// schedule, rejecting invalid schedules before the chaincode ever starts.
func NewRegistrationContract(schedule config.RechargeSchedule) (*RegistrationContract, error) {
	if err := schedule.Validate(); err != nil {
		return nil, fmt.Errorf("invalid recharge schedule: %w", err)
	}
	return &RegistrationContract{schedule: schedule}, nil
}

// Instantiate is invoked once when the chaincode is deployed.
func (c *RegistrationContract) Instantiate(ctx contractapi.TransactionContextInterface) error {
	return nil
}

// RequestNewUser submits a registration request for a new user.
func (c *RegistrationContract) RequestNewUser(ctx contractapi.TransactionContextInterface, name, email, phone, aadhar string) (*entity.User, error) {
	svc, p, err := c.invocation(ctx)
	if err != nil {
		return nil, err
	}
	return svc.RequestNewUser(p, name, email, phone, aadhar)
}

// ApproveNewUserRequest admits a requested user to the network.
func (c *RegistrationContract) ApproveNewUserRequest(ctx contractapi.TransactionContextInterface, name, aadhar string) (*entity.User, error) {
	svc, p, err := c.invocation(ctx)
	if err != nil {
		return nil, err
	}
	return svc.ApproveNewUserRequest(p, name, aadhar)
}

// RechargeAccount credits a user's balance from a bank transaction code.
func (c *RegistrationContract) RechargeAccount(ctx contractapi.TransactionContextInterface, name, aadhar, bankTxID string) (*entity.User, error) {
	svc, p, err := c.invocation(ctx)
	if err != nil {
		return nil, err
	}
	return svc.RechargeAccount(p, name, aadhar, bankTxID)
}

// ViewUser returns the stored user record.
func (c *RegistrationContract) ViewUser(ctx contractapi.TransactionContextInterface, name, aadhar string) (*entity.User, error) {
	return c.service(ctx).ViewUser(name, aadhar)
}

// PropertyRegistrationRequest submits a registration request for a property.
func (c *RegistrationContract) PropertyRegistrationRequest(ctx contractapi.TransactionContextInterface, propertyID, ownerName, ownerAadhar string, price int64) (*entity.Property, error) {
	svc, p, err := c.invocation(ctx)
	if err != nil {
		return nil, err
	}
	return svc.PropertyRegistrationRequest(p, propertyID, ownerName, ownerAadhar, price)
}

// ApprovePropertyRegistrationRequest registers a pending property.
func (c *RegistrationContract) ApprovePropertyRegistrationRequest(ctx contractapi.TransactionContextInterface, propertyID string) (*entity.Property, error) {
	svc, p, err := c.invocation(ctx)
	if err != nil {
		return nil, err
	}
	return svc.ApprovePropertyRegistrationRequest(p, propertyID)
}

// UpdateProperty lets the owner toggle a property between registered and
// onSale.
func (c *RegistrationContract) UpdateProperty(ctx contractapi.TransactionContextInterface, propertyID, ownerName, ownerAadhar, status string) (*entity.Property, error) {
	svc, p, err := c.invocation(ctx)
	if err != nil {
		return nil, err
	}
	return svc.UpdateProperty(p, propertyID, ownerName, ownerAadhar, entity.PropertyStatus(status))
}

// PurchaseProperty buys a listed property for the named user.
func (c *RegistrationContract) PurchaseProperty(ctx contractapi.TransactionContextInterface, propertyID, buyerName, buyerAadhar string) (*entity.Property, error) {
	svc, p, err := c.invocation(ctx)
	if err != nil {
		return nil, err
	}
	return svc.PurchaseProperty(p, propertyID, buyerName, buyerAadhar)
}

// ViewProperty returns the stored property record.
func (c *RegistrationContract) ViewProperty(ctx contractapi.TransactionContextInterface, propertyID string) (*entity.Property, error) {
	return c.service(ctx).ViewProperty(propertyID)
}

// ViewTrade returns the trade record written by a past purchase.
func (c *RegistrationContract) ViewTrade(ctx contractapi.TransactionContextInterface, txID string) (*entity.Trade, error) {
	return c.service(ctx).ViewTrade(txID)
}

// invocation resolves the calling principal and binds a service to the
// current transaction. Mutating operations go through here so the role gate
// runs before any state access.
func (c *RegistrationContract) invocation(ctx contractapi.TransactionContextInterface) (*registry.Service, authz.Principal, error) {
	mspID, err := ctx.GetClientIdentity().GetMSPID()
	if err != nil {
		return nil, authz.Principal{}, fmt.Errorf("failed to get MSP ID: %w", err)
	}
	p, err := authz.FromMSPID(mspID)
	if err != nil {
		return nil, authz.Principal{}, err
	}
	return c.service(ctx), p, nil
}

// service binds a registry service to the invocation's stub. Views skip the
// principal lookup; reads are open to every network organization.
func (c *RegistrationContract) service(ctx contractapi.TransactionContextInterface) *registry.Service {
	return registry.New(ledger.FromStub(ctx.GetStub()), c.schedule)
}
