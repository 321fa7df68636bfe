package hofa

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/x-xyz/hofa/base/ctx"
	"github.com/x-xyz/hofa/domain"
)

const (
	EventTransfer    = "Transfer"
	EventRoleGranted = "RoleGranted"
	EventRoleRevoked = "RoleRevoked"

	// TransferTokenIdArg is the position of tokenId in Transfer(from, to, tokenId)
	TransferTokenIdArg = 2

	DefaultConfirmations = uint64(1)
)

// Contract is the HofaNFT client. Every state changing call waits for the
// configured confirmations before reading its result out of the receipt.
type Contract interface {
	Address() common.Address

	Mint(c ctx.Ctx, uri string, contentHash string, opts ...TxOption) (*big.Int, error)
	Approve(c ctx.Ctx, to domain.Address, tokenId *big.Int, opts ...TxOption) (bool, error)

	GrantRole(c ctx.Ctx, role common.Hash, account domain.Address, opts ...TxOption) (bool, error)
	RevokeRole(c ctx.Ctx, role common.Hash, account domain.Address, opts ...TxOption) (bool, error)
	HasRole(c ctx.Ctx, role common.Hash, account domain.Address) (bool, error)

	GrantArtist(c ctx.Ctx, account domain.Address, opts ...TxOption) (bool, error)
	RevokeArtist(c ctx.Ctx, account domain.Address, opts ...TxOption) (bool, error)
	// IsArtist checks account, or the signer itself when account is empty.
	IsArtist(c ctx.Ctx, account domain.Address) (bool, error)

	GrantAdmin(c ctx.Ctx, account domain.Address, opts ...TxOption) (bool, error)
	RevokeAdmin(c ctx.Ctx, account domain.Address, opts ...TxOption) (bool, error)
	// IsAdmin checks account, or the signer itself when account is empty.
	IsAdmin(c ctx.Ctx, account domain.Address) (bool, error)

	Metadata(c ctx.Ctx, title, description, uri, contentHash string) (*Metadata, error)
}

// TxOptions tunes a single state changing call.
type TxOptions struct {
	// Confirmations to wait for, 0 only acknowledges the submission
	Confirmations uint64
	// Royalties in basis points, only read by Mint
	Royalties *big.Int
}

type TxOption func(*TxOptions) error

func GetTxOptions(opts ...TxOption) (*TxOptions, error) {
	res := &TxOptions{
		Confirmations: DefaultConfirmations,
		Royalties:     new(big.Int),
	}
	for _, opt := range opts {
		if err := opt(res); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func WithConfirmations(n uint64) TxOption {
	return func(o *TxOptions) error {
		o.Confirmations = n
		return nil
	}
}

func WithRoyalties(basisPoints uint64) TxOption {
	return func(o *TxOptions) error {
		o.Royalties = new(big.Int).SetUint64(basisPoints)
		return nil
	}
}
