package chain

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// Backend is the subset of go-ethereum/ethclient a contract client talks to.
type Backend interface {
	bind.ContractBackend
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	BlockNumber(ctx context.Context) (uint64, error)
	ChainID(ctx context.Context) (*big.Int, error)
}

// Conn is a connection context. A plain Conn can only query the chain, a
// Conn that also implements Signer can submit transactions.
type Conn interface {
	Backend() Backend
}

// Signer is a Conn able to produce signed transactions on behalf of an account.
type Signer interface {
	Conn
	// Address of the signing account.
	Address(ctx context.Context) (common.Address, error)
	// ChainID is the synchronous chain accessor, nil when the signer wasn't
	// bound to a chain.
	ChainID() *big.Int
	// TransactOpts returns fresh options, safe to mutate.
	TransactOpts(ctx context.Context) (*bind.TransactOpts, error)
}
