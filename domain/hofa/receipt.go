package hofa

import (
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/x-xyz/hofa/domain"
)

// Event is a decoded log of the contract, Args follow the event declaration.
type Event struct {
	Name     string
	Args     []interface{}
	LogIndex uint
}

// Receipt is a transaction receipt with the contract's events decoded, in the
// order the chain emitted them.
type Receipt struct {
	TxHash      domain.TxHash
	BlockNumber domain.BlockNumber
	// Pending is set when the transaction was only acknowledged, without
	// waiting for it to be mined. Raw is nil and Events empty then.
	Pending bool
	Events  []Event
	Raw     *types.Receipt
}

// EventArg returns the argument at index of the first event named name.
func (r *Receipt) EventArg(name string, index int) (interface{}, bool) {
	for _, e := range r.Events {
		if e.Name != name {
			continue
		}
		if index < 0 || index >= len(e.Args) {
			return nil, false
		}
		return e.Args[index], true
	}
	return nil, false
}

// HasEvent tells whether at least one event is named name.
func (r *Receipt) HasEvent(name string) bool {
	for _, e := range r.Events {
		if e.Name == name {
			return true
		}
	}
	return false
}
