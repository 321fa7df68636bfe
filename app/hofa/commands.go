package main

import (
	"math/big"
	"os"

	"golang.org/x/xerrors"

	bCtx "github.com/x-xyz/hofa/base/ctx"
	"github.com/x-xyz/hofa/domain"
	"github.com/x-xyz/hofa/domain/artwork"
	"github.com/x-xyz/hofa/domain/chain"
	"github.com/x-xyz/hofa/domain/hofa"
	chainsvc "github.com/x-xyz/hofa/service/chain"
)

type command struct {
	usage   string
	minArgs int
	// maxArgs < 0 takes any number of arguments
	maxArgs int
	needs   need
	run     func(ctx bCtx.Ctx, a *app, args []string) (interface{}, error)
}

var commands = map[string]command{
	"chain-id": {
		usage: "network id of the connection",
		needs: needConn,
		run: func(ctx bCtx.Ctx, a *app, _ []string) (interface{}, error) {
			chainId, err := chainsvc.ChainID(ctx, a.conn)
			if err != nil {
				return nil, err
			}
			name, _ := chain.GetChainDisplayName(chainId)
			return struct {
				ChainId domain.ChainId `json:"chainId"`
				Name    string         `json:"name,omitempty"`
			}{chainId, name}, nil
		},
	},
	"hash": {
		usage:   "<file>: content hash stored on-chain",
		minArgs: 1,
		maxArgs: 1,
		run: func(_ bCtx.Ctx, _ *app, args []string) (interface{}, error) {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return nil, err
			}
			return hofa.Hash(data), nil
		},
	},
	"roles": {
		usage:   "<account>...: artist and admin roles of accounts",
		minArgs: 1,
		maxArgs: -1,
		needs:   needContract,
		run:     runRoles,
	},
	"mint": {
		usage:   "<uri> <content-hash> [--royalties]: mint a token, prints its id",
		minArgs: 2,
		maxArgs: 2,
		needs:   needContract,
		run: func(ctx bCtx.Ctx, a *app, args []string) (interface{}, error) {
			royalties, err := a.flags.GetUint64("royalties")
			if err != nil {
				return nil, err
			}
			opts := append([]hofa.TxOption{hofa.WithRoyalties(royalties)}, a.txOpts...)
			tokenId, err := a.contract.Mint(ctx, args[0], args[1], opts...)
			if err != nil {
				return nil, err
			}
			return tokenId.String(), nil
		},
	},
	"publish": {
		usage:   "<file> --title [--description] [--royalties]: pin an artwork and mint it",
		minArgs: 1,
		maxArgs: 1,
		needs:   needPinner,
		run:     runPublish,
	},
	"approve": {
		usage:   "<to> <token-id>: approve an account to transfer a token",
		minArgs: 2,
		maxArgs: 2,
		needs:   needContract,
		run: func(ctx bCtx.Ctx, a *app, args []string) (interface{}, error) {
			to, err := a.account(ctx, args[0])
			if err != nil {
				return nil, err
			}
			tokenId, ok := new(big.Int).SetString(args[1], 10)
			if !ok || tokenId.Sign() < 0 {
				return nil, xerrors.Errorf("%w: token id %q", domain.ErrBadParamInput, args[1])
			}
			return a.contract.Approve(ctx, to, tokenId, a.txOpts...)
		},
	},
	"grant-artist":  roleCommand("grant the minter role", hofa.Contract.GrantArtist),
	"revoke-artist": roleCommand("revoke the minter role", hofa.Contract.RevokeArtist),
	"grant-admin":   roleCommand("grant the admin role", hofa.Contract.GrantAdmin),
	"revoke-admin":  roleCommand("revoke the admin role", hofa.Contract.RevokeAdmin),
	"is-artist":     isRoleCommand("minter", hofa.Contract.IsArtist),
	"is-admin":      isRoleCommand("admin", hofa.Contract.IsAdmin),
	"metadata": {
		usage:   "<title> <description> <uri> <content-hash>: token metadata json",
		minArgs: 4,
		maxArgs: 4,
		needs:   needContract,
		run: func(ctx bCtx.Ctx, a *app, args []string) (interface{}, error) {
			return a.contract.Metadata(ctx, args[0], args[1], args[2], args[3])
		},
	},
}

type roleChange func(hofa.Contract, bCtx.Ctx, domain.Address, ...hofa.TxOption) (bool, error)

func roleCommand(usage string, change roleChange) command {
	return command{
		usage:   "<account>: " + usage + ", false when nothing changed",
		minArgs: 1,
		maxArgs: 1,
		needs:   needContract,
		run: func(ctx bCtx.Ctx, a *app, args []string) (interface{}, error) {
			account, err := a.account(ctx, args[0])
			if err != nil {
				return nil, err
			}
			return change(a.contract, ctx, account, a.txOpts...)
		},
	}
}

type roleCheck func(hofa.Contract, bCtx.Ctx, domain.Address) (bool, error)

func isRoleCommand(role string, check roleCheck) command {
	return command{
		usage:   "[account]: whether account, or the signer, has the " + role + " role",
		maxArgs: 1,
		needs:   needContract,
		run: func(ctx bCtx.Ctx, a *app, args []string) (interface{}, error) {
			var account domain.Address
			if len(args) == 1 {
				var err error
				if account, err = a.account(ctx, args[0]); err != nil {
					return nil, err
				}
			}
			return check(a.contract, ctx, account)
		},
	}
}

func runRoles(ctx bCtx.Ctx, a *app, args []string) (interface{}, error) {
	accounts := make([]domain.Address, 0, len(args))
	for _, arg := range args {
		account, err := a.account(ctx, arg)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}
	return a.artwork.Roles(ctx, accounts)
}

func runPublish(ctx bCtx.Ctx, a *app, args []string) (interface{}, error) {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return nil, err
	}
	title, _ := a.flags.GetString("title")
	description, _ := a.flags.GetString("description")
	royalties, err := a.flags.GetUint64("royalties")
	if err != nil {
		return nil, err
	}
	published, err := a.artwork.Publish(ctx, artwork.PublishRequest{
		Title:       title,
		Description: description,
		Content:     content,
		Royalties:   royalties,
	}, a.txOpts...)
	if err != nil {
		return nil, err
	}
	return struct {
		TokenId     string         `json:"tokenId"`
		ContentHash string         `json:"contentHash"`
		MimeType    string         `json:"mimeType"`
		ImageURI    string         `json:"image"`
		MetadataURI string         `json:"uri"`
		Metadata    *hofa.Metadata `json:"metadata"`
	}{
		TokenId:     published.TokenId.String(),
		ContentHash: published.ContentHash,
		MimeType:    published.MimeType,
		ImageURI:    published.ImageURI,
		MetadataURI: published.MetadataURI,
		Metadata:    published.Metadata,
	}, nil
}
