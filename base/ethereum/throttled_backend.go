package ethereum

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/x-xyz/hofa/base/log"
	"github.com/x-xyz/hofa/domain/chain"
)

// ThrottledBackend bounds the number of in-flight rpc calls to its backend.
type ThrottledBackend struct {
	chain.Backend
	tokens chan int
}

func NewThrottledBackend(backend chain.Backend, n int) *ThrottledBackend {
	if n < 1 {
		n = 1
	}
	tokens := make(chan int, n)
	for i := 0; i < n; i++ {
		tokens <- i + 1
	}
	return &ThrottledBackend{
		Backend: backend,
		tokens:  tokens,
	}
}

func (c *ThrottledBackend) BlockNumber(ctx context.Context) (uint64, error) {
	token, err := c.before(ctx)
	if err != nil {
		return 0, err
	}
	defer c.after(token)
	return c.Backend.BlockNumber(ctx)
}

func (c *ThrottledBackend) ChainID(ctx context.Context) (*big.Int, error) {
	token, err := c.before(ctx)
	if err != nil {
		return nil, err
	}
	defer c.after(token)
	return c.Backend.ChainID(ctx)
}

func (c *ThrottledBackend) HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error) {
	token, err := c.before(ctx)
	if err != nil {
		return nil, err
	}
	defer c.after(token)
	return c.Backend.HeaderByNumber(ctx, number)
}

func (c *ThrottledBackend) FilterLogs(ctx context.Context, filter ethereum.FilterQuery) ([]types.Log, error) {
	token, err := c.before(ctx)
	if err != nil {
		return nil, err
	}
	defer c.after(token)
	return c.Backend.FilterLogs(ctx, filter)
}

func (c *ThrottledBackend) CodeAt(ctx context.Context, address common.Address, number *big.Int) ([]byte, error) {
	token, err := c.before(ctx)
	if err != nil {
		return nil, err
	}
	defer c.after(token)
	return c.Backend.CodeAt(ctx, address, number)
}

func (c *ThrottledBackend) CallContract(ctx context.Context, msg ethereum.CallMsg, number *big.Int) ([]byte, error) {
	token, err := c.before(ctx)
	if err != nil {
		return nil, err
	}
	defer c.after(token)
	return c.Backend.CallContract(ctx, msg, number)
}

func (c *ThrottledBackend) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	token, err := c.before(ctx)
	if err != nil {
		return 0, err
	}
	defer c.after(token)
	return c.Backend.PendingNonceAt(ctx, account)
}

func (c *ThrottledBackend) EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error) {
	token, err := c.before(ctx)
	if err != nil {
		return 0, err
	}
	defer c.after(token)
	return c.Backend.EstimateGas(ctx, msg)
}

func (c *ThrottledBackend) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	token, err := c.before(ctx)
	if err != nil {
		return err
	}
	defer c.after(token)
	return c.Backend.SendTransaction(ctx, tx)
}

func (c *ThrottledBackend) TransactionReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	token, err := c.before(ctx)
	if err != nil {
		return nil, err
	}
	defer c.after(token)
	return c.Backend.TransactionReceipt(ctx, hash)
}

func (c *ThrottledBackend) before(ctx context.Context) (int, error) {
	now := time.Now()
	select {
	case <-ctx.Done():
		log.Log().WithField("waited", time.Since(now)).Debug("throttle ctx done")
		return 0, ctx.Err()
	case token := <-c.tokens:
		log.Log().WithFields(log.Fields{
			"token":  token,
			"free":   len(c.tokens),
			"waited": time.Since(now),
		}).Debug("throttle acquired")
		return token, nil
	}
}

func (c *ThrottledBackend) after(token int) {
	if token != 0 {
		c.tokens <- token
	}
}
