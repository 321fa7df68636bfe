package main

import (
	"math/big"
	"os"

	"github.com/spf13/pflag"
	"golang.org/x/xerrors"

	bCtx "github.com/x-xyz/hofa/base/ctx"
	"github.com/x-xyz/hofa/base/ethereum"
	"github.com/x-xyz/hofa/domain"
	"github.com/x-xyz/hofa/domain/artwork"
	"github.com/x-xyz/hofa/domain/chain"
	"github.com/x-xyz/hofa/domain/hofa"
	chainsvc "github.com/x-xyz/hofa/service/chain"
	"github.com/x-xyz/hofa/service/chain/contract"
	"github.com/x-xyz/hofa/service/ens"
	"github.com/x-xyz/hofa/service/ipfs"
	"github.com/x-xyz/hofa/service/pinata"
	artworkUsecase "github.com/x-xyz/hofa/stores/artwork/usecase"
)

type need int

const (
	needNothing need = iota
	needConn
	needContract
	needPinner
)

type app struct {
	cfg   *Config
	flags *pflag.FlagSet

	conn     chain.Conn
	ens      ens.ENS
	contract hofa.Contract
	artwork  artwork.Usecase
	txOpts   []hofa.TxOption
}

func newApp(ctx bCtx.Ctx, cfg *Config, flags *pflag.FlagSet, needs need) (*app, error) {
	a := &app{
		cfg:    cfg,
		flags:  flags,
		txOpts: []hofa.TxOption{hofa.WithConfirmations(cfg.Confirmations)},
	}
	if needs == needNothing {
		return a, nil
	}

	if cfg.Rpc == "" {
		return nil, xerrors.Errorf("%w: rpc is required", domain.ErrBadParamInput)
	}
	client, err := chainsvc.Dial(ctx, cfg.Rpc)
	if err != nil {
		return nil, err
	}
	backend := ethereum.NewThrottledBackend(client, cfg.RpcConcurrency)
	a.ens = ens.New(backend)

	if cfg.PrivateKey != "" {
		var chainId *big.Int
		if cfg.ChainId > 0 {
			chainId = big.NewInt(cfg.ChainId)
		}
		signer, err := chainsvc.NewKeyedSignerFromHex(backend, cfg.PrivateKey, chainId)
		if err != nil {
			return nil, err
		}
		a.conn = signer
	} else {
		a.conn = chainsvc.NewProvider(backend)
	}
	if needs == needConn {
		return a, nil
	}

	contractOpts := []contract.HofaOption{contract.WithConfirmTimeout(cfg.ConfirmTimeout)}
	if cfg.Contract != "" {
		a.contract = contract.NewHofaAt(a.conn, domain.Address(cfg.Contract), contractOpts...)
	} else {
		if cfg.AddressTable != "" {
			table, err := readAddressTable(cfg.AddressTable)
			if err != nil {
				return nil, err
			}
			contractOpts = append(contractOpts, contract.WithAddressTable(hofa.DefaultAddresses.Merge(table)))
		}
		h, err := contract.NewHofa(ctx, a.conn, contractOpts...)
		if err != nil {
			return nil, err
		}
		a.contract = h
	}

	var pinner hofa.Pinner
	if needs == needPinner {
		if pinner, err = newPinner(cfg); err != nil {
			return nil, err
		}
	}
	a.artwork = artworkUsecase.New(&artworkUsecase.ArtworkUseCaseCfg{
		Contract:    a.contract,
		Pinner:      pinner,
		RoleWorkers: cfg.RpcConcurrency,
	})
	return a, nil
}

func readAddressTable(path string) (hofa.AddressTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return hofa.ReadAddressTable(f)
}

func newPinner(cfg *Config) (hofa.Pinner, error) {
	if cfg.Pinata.ApiKey != "" {
		var opts []pinata.Option
		if cfg.Pinata.Endpoint != "" {
			opts = append(opts, pinata.WithEndpoint(cfg.Pinata.Endpoint))
		}
		return pinata.New(cfg.Pinata.ApiKey, cfg.Pinata.ApiSecret, opts...)
	}
	if cfg.IpfsApi != "" {
		return ipfs.New(cfg.IpfsApi, 1), nil
	}
	return nil, xerrors.Errorf("%w: publishing needs pinata credentials or an ipfs api", domain.ErrBadParamInput)
}

// account resolves an ens name or checks a hex address, empty stays empty.
func (a *app) account(ctx bCtx.Ctx, account string) (domain.Address, error) {
	return a.ens.ResolveAccount(ctx, account)
}
