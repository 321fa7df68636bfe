package chain

import (
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	bCtx "github.com/x-xyz/hofa/base/ctx"
	"github.com/x-xyz/hofa/base/ethereum"
	"github.com/x-xyz/hofa/domain"
	"github.com/x-xyz/hofa/domain/chain/mocks"
)

func TestChainID(t *testing.T) {
	ctx := bCtx.Background()

	t.Run("signer bound to a chain never queries the network", func(t *testing.T) {
		req := require.New(t)
		backend := new(mocks.Backend)
		backend.On("ChainID", mock.Anything).Return(big.NewInt(1), nil)
		signer := new(mocks.Signer)
		signer.On("ChainID").Return(big.NewInt(137))
		signer.On("Backend").Return(backend)

		id, err := ChainID(ctx, signer)
		req.NoError(err)
		req.Equal(domain.ChainId(137), id)
		signer.AssertNumberOfCalls(t, "ChainID", 1)
		backend.AssertNotCalled(t, "ChainID", mock.Anything)
	})

	t.Run("signer without chain falls back to the network", func(t *testing.T) {
		req := require.New(t)
		backend := new(mocks.Backend)
		backend.On("ChainID", mock.Anything).Return(big.NewInt(80001), nil).Once()
		signer := new(mocks.Signer)
		signer.On("ChainID").Return(nil)
		signer.On("Backend").Return(backend)

		id, err := ChainID(ctx, signer)
		req.NoError(err)
		req.Equal(domain.ChainId(80001), id)
		backend.AssertNumberOfCalls(t, "ChainID", 1)
	})

	t.Run("read-only connection queries the network", func(t *testing.T) {
		req := require.New(t)
		backend := new(mocks.Backend)
		backend.On("ChainID", mock.Anything).Return(big.NewInt(31337), nil).Once()

		id, err := ChainID(ctx, NewProvider(backend))
		req.NoError(err)
		req.Equal(domain.ChainId(31337), id)
		backend.AssertExpectations(t)
	})

	t.Run("network error", func(t *testing.T) {
		req := require.New(t)
		backend := new(mocks.Backend)
		rpcErr := errors.New("connection refused")
		backend.On("ChainID", mock.Anything).Return(nil, rpcErr)

		_, err := ChainID(ctx, NewProvider(backend))
		req.ErrorIs(err, rpcErr)
	})
}

func TestKeyedSigner(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()
	key, pub, err := ethereum.GenerateKey()
	req.NoError(err)
	backend := new(mocks.Backend)

	signer := NewKeyedSigner(backend, key, big.NewInt(137))
	addr, err := signer.Address(ctx)
	req.NoError(err)
	req.Equal(crypto.PubkeyToAddress(*pub), addr)
	req.Equal(int64(137), signer.ChainID().Int64())
	req.Equal(backend, signer.Backend())

	opts, err := signer.TransactOpts(ctx)
	req.NoError(err)
	req.Equal(addr, opts.From)
	req.Equal(ctx, opts.Context)

	tx := types.NewTransaction(0, addr, big.NewInt(0), 21000, big.NewInt(1), nil)
	signed, err := opts.Signer(addr, tx)
	req.NoError(err)
	sender, err := types.Sender(types.NewEIP155Signer(big.NewInt(137)), signed)
	req.NoError(err)
	req.Equal(addr, sender)
	backend.AssertNotCalled(t, "ChainID", mock.Anything)
}

func TestKeyedSignerWithoutChain(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()
	key, _, err := ethereum.GenerateKey()
	req.NoError(err)
	backend := new(mocks.Backend)
	backend.On("ChainID", mock.Anything).Return(big.NewInt(5), nil).Once()

	signer, err := NewKeyedSignerFromHex(backend, hexutil.Encode(crypto.FromECDSA(key)), nil)
	req.NoError(err)
	req.Nil(signer.ChainID())

	_, err = signer.TransactOpts(ctx)
	req.NoError(err)
	backend.AssertExpectations(t)
}

func TestNewKeyedSignerFromHexInvalid(t *testing.T) {
	_, err := NewKeyedSignerFromHex(new(mocks.Backend), "0xnotakey", nil)
	require.ErrorIs(t, err, domain.ErrBadParamInput)
}
