package ledger

import (
	"time"

	"github.com/hyperledger/fabric-chaincode-go/shim"
)

// stubLedger adapts the chaincode stub to the Ledger interface. The stub
// stages writes until the transaction commits, which is what gives every
// operation its all-or-nothing effect.
type stubLedger struct {
	stub shim.ChaincodeStubInterface
}

// FromStub wraps a chaincode stub for the duration of one invocation.
func FromStub(stub shim.ChaincodeStubInterface) Ledger {
	return &stubLedger{stub: stub}
}

func (l *stubLedger) GetState(key string) ([]byte, error) {
	return l.stub.GetState(key)
}

func (l *stubLedger) PutState(key string, value []byte) error {
	return l.stub.PutState(key, value)
}

func (l *stubLedger) TxID() string {
	return l.stub.GetTxID()
}

func (l *stubLedger) TxTimestamp() (time.Time, error) {
	ts, err := l.stub.GetTxTimestamp()
	if err != nil {
		return time.Time{}, err
	}
	return ts.AsTime(), nil
}

func (l *stubLedger) SetEvent(name string, payload []byte) error {
	return l.stub.SetEvent(name, payload)
}
