package contract

import (
	"errors"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"golang.org/x/xerrors"

	baseabi "github.com/x-xyz/hofa/base/abi"
	"github.com/x-xyz/hofa/base/backoff"
	bCtx "github.com/x-xyz/hofa/base/ctx"
	"github.com/x-xyz/hofa/base/log"
	"github.com/x-xyz/hofa/base/metrics"
	"github.com/x-xyz/hofa/domain"
	"github.com/x-xyz/hofa/domain/chain"
	"github.com/x-xyz/hofa/domain/hofa"
	chainsvc "github.com/x-xyz/hofa/service/chain"
)

const (
	defaultPollInterval = time.Second
	defaultPollLimit    = 15 * time.Second
)

type Hofa struct {
	conn     chain.Conn
	address  common.Address
	abi      ethabi.ABI
	contract *bind.BoundContract

	table          hofa.AddressTable
	metrics        metrics.Service
	pollInterval   time.Duration
	pollLimit      time.Duration
	confirmTimeout time.Duration
}

var _ hofa.Contract = (*Hofa)(nil)

type HofaOption func(*Hofa)

// WithAddressTable replaces the embedded network table used by NewHofaOnChain.
func WithAddressTable(table hofa.AddressTable) HofaOption {
	return func(h *Hofa) {
		h.table = table
	}
}

func WithMetrics(m metrics.Service) HofaOption {
	return func(h *Hofa) {
		h.metrics = m
	}
}

// WithPollInterval sets the first and the longest wait between two receipt polls.
func WithPollInterval(start, limit time.Duration) HofaOption {
	return func(h *Hofa) {
		h.pollInterval = start
		h.pollLimit = limit
	}
}

// WithConfirmTimeout bounds the wait for confirmations, 0 waits as long as
// the caller's context allows.
func WithConfirmTimeout(d time.Duration) HofaOption {
	return func(h *Hofa) {
		h.confirmTimeout = d
	}
}

// NewHofaAt binds the contract deployed at address. Nothing is checked on chain.
func NewHofaAt(conn chain.Conn, address domain.Address, opts ...HofaOption) *Hofa {
	h := &Hofa{
		conn:         conn,
		address:      common.HexToAddress(string(address)),
		abi:          baseabi.HofaNFTABI,
		table:        hofa.DefaultAddresses,
		pollInterval: defaultPollInterval,
		pollLimit:    defaultPollLimit,
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.metrics == nil {
		h.metrics = metrics.New("hofa")
	}
	backend := conn.Backend()
	h.contract = bind.NewBoundContract(h.address, h.abi, backend, backend, backend)
	return h
}

// NewHofaOnChain binds the contract the address table lists for chainId.
func NewHofaOnChain(conn chain.Conn, chainId domain.ChainId, opts ...HofaOption) (*Hofa, error) {
	probe := &Hofa{table: hofa.DefaultAddresses}
	for _, opt := range opts {
		opt(probe)
	}
	address, err := probe.table.Lookup(chainId)
	if err != nil {
		return nil, err
	}
	return NewHofaAt(conn, address, opts...), nil
}

// NewHofa resolves the network of conn then binds its contract.
func NewHofa(ctx bCtx.Ctx, conn chain.Conn, opts ...HofaOption) (*Hofa, error) {
	chainId, err := chainsvc.ChainID(ctx, conn)
	if err != nil {
		return nil, err
	}
	h, err := NewHofaOnChain(conn, chainId, opts...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"chainId": chainId,
			"err":     err,
		}).Error("NewHofaOnChain failed")
		return nil, err
	}
	return h, nil
}

func (h *Hofa) Address() common.Address {
	return h.address
}

func (h *Hofa) Mint(ctx bCtx.Ctx, uri string, contentHash string, opts ...hofa.TxOption) (*big.Int, error) {
	options, err := hofa.GetTxOptions(opts...)
	if err != nil {
		return nil, err
	}
	hash, err := parseContentHash(contentHash)
	if err != nil {
		return nil, err
	}
	receipt, err := h.Submit(ctx, "mint", options.Confirmations, uri, hash, options.Royalties)
	if err != nil {
		return nil, err
	}
	arg, ok := receipt.EventArg(hofa.EventTransfer, hofa.TransferTokenIdArg)
	if !ok {
		ctx.WithField("tx", receipt.TxHash).Warn("mint receipt has no Transfer event")
		return nil, xerrors.Errorf("%w: %s in %s", domain.ErrExpectedEventMissing, hofa.EventTransfer, receipt.TxHash)
	}
	tokenId, ok := arg.(*big.Int)
	if !ok {
		return nil, xerrors.Errorf("%w: %s tokenId is %T", domain.ErrExpectedEventMissing, hofa.EventTransfer, arg)
	}
	return tokenId, nil
}

func (h *Hofa) Approve(ctx bCtx.Ctx, to domain.Address, tokenId *big.Int, opts ...hofa.TxOption) (bool, error) {
	options, err := hofa.GetTxOptions(opts...)
	if err != nil {
		return false, err
	}
	toAddr, err := parseAddress(to)
	if err != nil {
		return false, err
	}
	if _, err := h.Submit(ctx, "approve", options.Confirmations, toAddr, tokenId); err != nil {
		return false, err
	}
	return true, nil
}

func (h *Hofa) GrantRole(ctx bCtx.Ctx, role common.Hash, account domain.Address, opts ...hofa.TxOption) (bool, error) {
	return h.changeRole(ctx, "grantRole", hofa.EventRoleGranted, role, account, opts...)
}

func (h *Hofa) RevokeRole(ctx bCtx.Ctx, role common.Hash, account domain.Address, opts ...hofa.TxOption) (bool, error) {
	return h.changeRole(ctx, "revokeRole", hofa.EventRoleRevoked, role, account, opts...)
}

// changeRole reports whether the receipt carries event, a missing event is
// not an error.
func (h *Hofa) changeRole(ctx bCtx.Ctx, method, event string, role common.Hash, account domain.Address, opts ...hofa.TxOption) (bool, error) {
	options, err := hofa.GetTxOptions(opts...)
	if err != nil {
		return false, err
	}
	accountAddr, err := parseAddress(account)
	if err != nil {
		return false, err
	}
	receipt, err := h.Submit(ctx, method, options.Confirmations, [32]byte(role), accountAddr)
	if err != nil {
		return false, err
	}
	return receipt.HasEvent(event), nil
}

func (h *Hofa) HasRole(ctx bCtx.Ctx, role common.Hash, account domain.Address) (bool, error) {
	accountAddr, err := parseAddress(account)
	if err != nil {
		return false, err
	}
	var out []interface{}
	if err := h.contract.Call(&bind.CallOpts{Context: ctx}, &out, "hasRole", [32]byte(role), accountAddr); err != nil {
		ctx.WithFields(log.Fields{
			"role":    role.Hex(),
			"account": accountAddr.Hex(),
			"err":     err,
		}).Error("contract.Call hasRole failed")
		return false, err
	}
	return out[0].(bool), nil
}

func (h *Hofa) GrantArtist(ctx bCtx.Ctx, account domain.Address, opts ...hofa.TxOption) (bool, error) {
	return h.GrantRole(ctx, hofa.MustRoleId(hofa.RoleMinter), account, opts...)
}

func (h *Hofa) RevokeArtist(ctx bCtx.Ctx, account domain.Address, opts ...hofa.TxOption) (bool, error) {
	return h.RevokeRole(ctx, hofa.MustRoleId(hofa.RoleMinter), account, opts...)
}

func (h *Hofa) IsArtist(ctx bCtx.Ctx, account domain.Address) (bool, error) {
	return h.isRole(ctx, hofa.RoleMinter, account)
}

func (h *Hofa) GrantAdmin(ctx bCtx.Ctx, account domain.Address, opts ...hofa.TxOption) (bool, error) {
	return h.GrantRole(ctx, hofa.MustRoleId(hofa.RoleAdmin), account, opts...)
}

func (h *Hofa) RevokeAdmin(ctx bCtx.Ctx, account domain.Address, opts ...hofa.TxOption) (bool, error) {
	return h.RevokeRole(ctx, hofa.MustRoleId(hofa.RoleAdmin), account, opts...)
}

func (h *Hofa) IsAdmin(ctx bCtx.Ctx, account domain.Address) (bool, error) {
	return h.isRole(ctx, hofa.RoleAdmin, account)
}

func (h *Hofa) isRole(ctx bCtx.Ctx, role hofa.Role, account domain.Address) (bool, error) {
	account, err := h.resolveAccount(ctx, account)
	if err != nil {
		return false, err
	}
	return h.HasRole(ctx, hofa.MustRoleId(role), account)
}

// Metadata builds the token metadata of an artwork, the signer is its creator.
func (h *Hofa) Metadata(ctx bCtx.Ctx, title, description, uri, contentHash string) (*hofa.Metadata, error) {
	creator, err := h.resolveAccount(ctx, "")
	if err != nil {
		return nil, err
	}
	return &hofa.Metadata{
		Name:        title,
		Description: description,
		Image:       uri,
		Properties: hofa.MetadataProperties{
			Creator: creator,
			Sha256:  contentHash,
		},
	}, nil
}

// resolveAccount falls back to the signer's address when account is empty.
func (h *Hofa) resolveAccount(ctx bCtx.Ctx, account domain.Address) (domain.Address, error) {
	if !account.IsEmpty() {
		return account, nil
	}
	signer, ok := h.conn.(chain.Signer)
	if !ok {
		return "", domain.ErrNoAddressAvailable
	}
	address, err := signer.Address(ctx)
	if err != nil {
		ctx.WithError(err).Error("signer.Address failed")
		return "", xerrors.Errorf("%w: %v", domain.ErrNoAddressAvailable, err)
	}
	return domain.Address(address.Hex()), nil
}

// Submit sends method with params and waits until the including block is
// confirmations-1 blocks deep, so 1 means mined. With 0 confirmations the
// receipt is looked up once and a pending receipt is returned when the
// transaction isn't mined yet.
func (h *Hofa) Submit(ctx bCtx.Ctx, method string, confirmations uint64, params ...interface{}) (*hofa.Receipt, error) {
	ctx = bCtx.WithFields(ctx, log.Fields{
		"contract": h.address.Hex(),
		"method":   method,
	})
	defer h.metrics.BumpTime("submit.time", "method", method).End()

	receipt, err := h.submit(ctx, method, confirmations, params...)
	if err != nil {
		h.metrics.BumpSum("submit.err", 1, "method", method)
		ctx.WithError(err).Error("submit failed")
		return nil, err
	}
	return receipt, nil
}

func (h *Hofa) submit(ctx bCtx.Ctx, method string, confirmations uint64, params ...interface{}) (*hofa.Receipt, error) {
	signer, ok := h.conn.(chain.Signer)
	if !ok {
		return nil, &domain.TransactionError{Method: method, Err: domain.ErrSignerRequired}
	}
	opts, err := signer.TransactOpts(ctx)
	if err != nil {
		return nil, &domain.TransactionError{Method: method, Err: err}
	}
	opts.Context = ctx

	tx, err := h.contract.Transact(opts, method, params...)
	if err != nil {
		return nil, &domain.TransactionError{Method: method, Err: err}
	}
	txHash := domain.TxHash(tx.Hash().Hex())
	ctx = bCtx.WithFields(ctx, log.Fields{"tx": txHash})
	ctx.Info("transaction sent")

	raw, err := h.waitConfirmed(ctx, tx.Hash(), confirmations)
	if err != nil {
		return nil, &domain.TransactionError{Method: method, TxHash: txHash, Err: err}
	}
	if raw == nil {
		return &hofa.Receipt{TxHash: txHash, Pending: true}, nil
	}
	if raw.Status != types.ReceiptStatusSuccessful {
		return nil, &domain.TransactionError{Method: method, TxHash: txHash, Err: domain.ErrTransactionReverted}
	}
	return h.toReceipt(ctx, raw), nil
}

// waitConfirmed returns a nil receipt only when confirmations is 0 and the
// transaction isn't mined yet.
func (h *Hofa) waitConfirmed(ctx bCtx.Ctx, hash common.Hash, confirmations uint64) (*types.Receipt, error) {
	backend := h.conn.Backend()
	if confirmations == 0 {
		receipt, err := backend.TransactionReceipt(ctx, hash)
		if errors.Is(err, ethereum.NotFound) {
			return nil, nil
		} else if err != nil {
			return nil, err
		}
		return receipt, nil
	}

	if h.confirmTimeout > 0 {
		var cancel func()
		ctx, cancel = bCtx.WithTimeout(ctx, h.confirmTimeout)
		defer cancel()
	}
	defer h.metrics.BumpTime("confirm.time").End()

	b := backoff.NewExponential(h.pollInterval, h.pollLimit)
	var receipt *types.Receipt
	for {
		r, err := backend.TransactionReceipt(ctx, hash)
		if err == nil {
			receipt = r
			break
		} else if !errors.Is(err, ethereum.NotFound) {
			return nil, err
		}
		if err := b.Backoff(ctx); err != nil {
			return nil, err
		}
	}
	ctx.WithFields(log.Fields{
		"tx":    hash.Hex(),
		"polls": b.Count(),
	}).Debug("transaction mined")
	if receipt.Status != types.ReceiptStatusSuccessful || receipt.BlockNumber == nil {
		return receipt, nil
	}

	target := receipt.BlockNumber.Uint64() + confirmations - 1
	b.Reset()
	for {
		head, err := backend.BlockNumber(ctx)
		if err != nil {
			return nil, err
		}
		if head >= target {
			break
		}
		ctx.WithFields(log.Fields{
			"head":   head,
			"target": target,
		}).Debug("waiting confirmations")
		if err := b.Backoff(ctx); err != nil {
			return nil, err
		}
	}
	return receipt, nil
}

// toReceipt decodes the logs emitted by the bound contract. Logs of other
// contracts and logs the abi doesn't know are skipped.
func (h *Hofa) toReceipt(ctx bCtx.Ctx, raw *types.Receipt) *hofa.Receipt {
	receipt := &hofa.Receipt{
		TxHash: domain.TxHash(raw.TxHash.Hex()),
		Raw:    raw,
	}
	if raw.BlockNumber != nil {
		receipt.BlockNumber = domain.BlockNumber(raw.BlockNumber.Uint64())
	}
	for _, l := range raw.Logs {
		if l == nil || l.Address != h.address {
			continue
		}
		event, args, err := baseabi.UnpackLog(h.abi, l)
		if err != nil {
			ctx.WithFields(log.Fields{
				"logIndex": l.Index,
				"err":      err,
			}).Debug("skip undecodable log")
			continue
		}
		receipt.Events = append(receipt.Events, hofa.Event{
			Name:     event.Name,
			Args:     args,
			LogIndex: l.Index,
		})
	}
	return receipt
}

func parseAddress(address domain.Address) (common.Address, error) {
	if !common.IsHexAddress(string(address)) {
		return common.Address{}, xerrors.Errorf("%w: %q", domain.ErrInvalidAddress, address)
	}
	return common.HexToAddress(string(address)), nil
}

func parseContentHash(contentHash string) ([32]byte, error) {
	var res [32]byte
	b, err := hexutil.Decode(contentHash)
	if err != nil || len(b) != len(res) {
		return res, xerrors.Errorf("%w: content hash %q", domain.ErrBadParamInput, contentHash)
	}
	copy(res[:], b)
	return res, nil
}
