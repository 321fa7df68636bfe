package ens

import (
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	goens "github.com/wealdtech/go-ens/v3"
	"golang.org/x/xerrors"

	"github.com/x-xyz/hofa/base/ctx"
	"github.com/x-xyz/hofa/base/log"
	"github.com/x-xyz/hofa/domain"
	"github.com/x-xyz/hofa/service/cache"
)

type impl struct {
	backend bind.ContractBackend
	cache   cache.Service

	resolve        func(bind.ContractBackend, string) (common.Address, error)
	reverseResolve func(bind.ContractBackend, common.Address) (string, error)
}

func New(backend bind.ContractBackend) ENS {
	return &impl{
		backend: backend,
		cache: cache.NewMemory(cache.ServiceConfig{
			Ttl:    10 * time.Minute,
			Pfx:    "ens",
			SizeMB: 4,
		}),
		resolve:        goens.Resolve,
		reverseResolve: goens.ReverseResolve,
	}
}

func (im *impl) Resolve(ctx ctx.Ctx, name string) (domain.Address, error) {
	res := domain.Address("")
	key := "resolve:" + strings.ToLower(name)
	err := im.cache.GetByFunc(ctx, key, &res, func() (interface{}, error) {
		addr, err := im.resolve(im.backend, name)
		if fmt.Sprint(err) == "unregistered name" {
			val := domain.Address("")
			return &val, nil
		}
		if err != nil {
			ctx.WithFields(log.Fields{
				"name": name,
				"err":  err,
			}).Error("failed to goens.Resolve")
			return nil, err
		}
		val := domain.Address(addr.String())
		return &val, nil
	})
	if err != nil {
		return "", err
	}
	return res, nil
}

func (im *impl) ReverseResolve(ctx ctx.Ctx, address domain.Address) (string, error) {
	res := ""
	key := "reverse-resolve:" + address.ToLowerStr()
	err := im.cache.GetByFunc(ctx, key, &res, func() (interface{}, error) {
		name, err := im.reverseResolve(im.backend, common.HexToAddress(string(address)))
		if fmt.Sprint(err) == "not a resolver" || fmt.Sprint(err) == "no resolution" {
			val := ""
			return &val, nil
		}
		if err != nil {
			ctx.WithFields(log.Fields{
				"address": address,
				"err":     err,
			}).Error("failed to goens.ReverseResolve")
			return nil, err
		}
		return &name, nil
	})
	if err != nil {
		return "", err
	}
	return res, nil
}

func (im *impl) ResolveAccount(ctx ctx.Ctx, account string) (domain.Address, error) {
	if account == "" {
		return "", nil
	}
	if common.IsHexAddress(account) {
		return domain.Address(common.HexToAddress(account).Hex()), nil
	}
	if !strings.Contains(account, ".") {
		return "", xerrors.Errorf("%w: %q is neither an address nor an ens name", domain.ErrInvalidAddress, account)
	}
	addr, err := im.Resolve(ctx, account)
	if err != nil {
		return "", err
	}
	if addr.IsEmpty() {
		return "", xerrors.Errorf("%w: ens name %s", domain.ErrNotFound, account)
	}
	return addr, nil
}
