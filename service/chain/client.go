package chain

import (
	"context"
	"crypto/ecdsa"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"golang.org/x/xerrors"

	bCtx "github.com/x-xyz/hofa/base/ctx"
	"github.com/x-xyz/hofa/base/ethereum"
	"github.com/x-xyz/hofa/base/log"
	"github.com/x-xyz/hofa/domain"
	"github.com/x-xyz/hofa/domain/chain"
)

// Dial connects to a json-rpc endpoint.
func Dial(ctx bCtx.Ctx, url string) (*ethclient.Client, error) {
	client, err := ethclient.DialContext(ctx, url)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"url": url,
		}).Error("ethclient.DialContext failed")
		return nil, err
	}
	return client, nil
}

// ChainID resolves the network of conn. A signer bound to a chain answers
// synchronously and the network is never queried, otherwise the backend is
// asked.
func ChainID(ctx bCtx.Ctx, conn chain.Conn) (domain.ChainId, error) {
	if signer, ok := conn.(chain.Signer); ok {
		if id := signer.ChainID(); id != nil {
			return domain.ChainId(id.Int64()), nil
		}
	}
	id, err := conn.Backend().ChainID(ctx)
	if err != nil {
		ctx.WithError(err).Error("backend.ChainID failed")
		return 0, err
	}
	return domain.ChainId(id.Int64()), nil
}

type provider struct {
	backend chain.Backend
}

// NewProvider returns a read-only connection.
func NewProvider(backend chain.Backend) chain.Conn {
	return &provider{backend: backend}
}

func (p *provider) Backend() chain.Backend {
	return p.backend
}

type keyedSigner struct {
	backend chain.Backend
	key     *ecdsa.PrivateKey
	address common.Address
	chainId *big.Int
}

// NewKeyedSigner returns a connection signing with key. chainId may be nil,
// it's then queried from the backend when a transaction is built.
func NewKeyedSigner(backend chain.Backend, key *ecdsa.PrivateKey, chainId *big.Int) chain.Signer {
	return &keyedSigner{
		backend: backend,
		key:     key,
		address: ethereum.KeyAddress(key),
		chainId: chainId,
	}
}

// NewKeyedSignerFromHex parses a hex private key, with or without 0x.
func NewKeyedSignerFromHex(backend chain.Backend, hexKey string, chainId *big.Int) (chain.Signer, error) {
	if len(hexKey) > 1 && hexKey[:2] == "0x" {
		hexKey = hexKey[2:]
	}
	key, err := crypto.HexToECDSA(hexKey)
	if err != nil {
		return nil, xerrors.Errorf("%w: private key: %v", domain.ErrBadParamInput, err)
	}
	return NewKeyedSigner(backend, key, chainId), nil
}

func (s *keyedSigner) Backend() chain.Backend {
	return s.backend
}

func (s *keyedSigner) Address(_ context.Context) (common.Address, error) {
	return s.address, nil
}

func (s *keyedSigner) ChainID() *big.Int {
	if s.chainId == nil {
		return nil
	}
	return new(big.Int).Set(s.chainId)
}

func (s *keyedSigner) TransactOpts(ctx context.Context) (*bind.TransactOpts, error) {
	chainId := s.chainId
	if chainId == nil {
		id, err := s.backend.ChainID(ctx)
		if err != nil {
			return nil, err
		}
		chainId = id
	}
	opts, err := bind.NewKeyedTransactorWithChainID(s.key, chainId)
	if err != nil {
		return nil, err
	}
	opts.Context = ctx
	return opts, nil
}
