package main

import (
	"log"

	"github.com/hyperledger/fabric-contract-api-go/contractapi"

	"github.com/brahmareddy-ala/property-registration/chaincode"
	"github.com/brahmareddy-ala/property-registration/pkg/config"
)

func main() {
	schedule, err := config.Load()
	if err != nil {
		log.Panicf("Error loading recharge schedule: %v", err)
	}

	contract, err := chaincode.NewRegistrationContract(schedule)
	if err != nil {
		log.Panicf("Error creating registration contract: %v", err)
	}

	registrationChaincode, err := contractapi.NewChaincode(contract)
	if err != nil {
		log.Panicf("Error creating property registration chaincode: %v", err)
	}

	if err := registrationChaincode.Start(); err != nil {
		log.Panicf("Error starting property registration chaincode: %v", err)
	}
}
