package ens

import (
	"github.com/x-xyz/hofa/base/ctx"
	"github.com/x-xyz/hofa/domain"
)

type ENS interface {
	Resolve(ctx ctx.Ctx, name string) (domain.Address, error)
	ReverseResolve(ctx ctx.Ctx, address domain.Address) (string, error)
	// ResolveAccount passes hex addresses through and resolves anything
	// else as an ens name.
	ResolveAccount(ctx ctx.Ctx, account string) (domain.Address, error)
}
