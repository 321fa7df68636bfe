package main

import (
	"bytes"
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	bCtx "github.com/x-xyz/hofa/base/ctx"
	"github.com/x-xyz/hofa/domain"
	chainmocks "github.com/x-xyz/hofa/domain/chain/mocks"
	"github.com/x-xyz/hofa/domain/hofa"
	"github.com/x-xyz/hofa/domain/hofa/mocks"
)

type fakeENS struct {
	names map[string]domain.Address
}

func (f *fakeENS) Resolve(_ bCtx.Ctx, name string) (domain.Address, error) {
	return f.names[name], nil
}

func (f *fakeENS) ReverseResolve(_ bCtx.Ctx, _ domain.Address) (string, error) {
	return "", nil
}

func (f *fakeENS) ResolveAccount(_ bCtx.Ctx, account string) (domain.Address, error) {
	if addr, ok := f.names[account]; ok {
		return addr, nil
	}
	return domain.Address(account), nil
}

const artist = domain.Address("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")

func newTestApp(t *testing.T, args ...string) (*app, *mocks.Contract) {
	fs := newFlagSet()
	require.NoError(t, fs.Parse(args))
	contract := new(mocks.Contract)
	return &app{
		flags:    fs,
		ens:      &fakeENS{names: map[string]domain.Address{"artist.eth": artist}},
		contract: contract,
		txOpts:   []hofa.TxOption{hofa.WithConfirmations(1)},
	}, contract
}

func TestRoleCommands(t *testing.T) {
	ctx := bCtx.Background()
	tests := []struct {
		name   string
		method string
	}{
		{"grant-artist", "GrantArtist"},
		{"revoke-artist", "RevokeArtist"},
		{"grant-admin", "GrantAdmin"},
		{"revoke-admin", "RevokeAdmin"},
	}
	for _, tt := range tests {
		a, contract := newTestApp(t)
		contract.On(tt.method, mock.Anything, artist, mock.Anything).Return(true, nil).Once()
		res, err := commands[tt.name].run(ctx, a, []string{"artist.eth"})
		require.NoError(t, err, tt.name)
		require.Equal(t, true, res, tt.name)
		contract.AssertExpectations(t)
	}
}

func TestIsRoleCommands(t *testing.T) {
	ctx := bCtx.Background()

	a, contract := newTestApp(t)
	contract.On("IsArtist", mock.Anything, domain.Address("")).Return(false, domain.ErrNoAddressAvailable).Once()
	_, err := commands["is-artist"].run(ctx, a, nil)
	require.ErrorIs(t, err, domain.ErrNoAddressAvailable)

	contract.On("IsAdmin", mock.Anything, artist).Return(true, nil).Once()
	res, err := commands["is-admin"].run(ctx, a, []string{"artist.eth"})
	require.NoError(t, err)
	require.Equal(t, true, res)
}

func TestMintCommand(t *testing.T) {
	a, contract := newTestApp(t, "--royalties", "250")
	hash := hofa.Hash([]byte("artwork"))
	contract.On("Mint", mock.Anything, "ipfs://meta", hash, mock.Anything, mock.Anything).Return(big.NewInt(42), nil).Once()

	res, err := commands["mint"].run(bCtx.Background(), a, []string{"ipfs://meta", hash})
	require.NoError(t, err)
	require.Equal(t, "42", res)

	call := contract.Calls[0]
	options, err := hofa.GetTxOptions(call.Arguments[3].(hofa.TxOption), call.Arguments[4].(hofa.TxOption))
	require.NoError(t, err)
	require.Equal(t, int64(250), options.Royalties.Int64())
}

func TestApproveCommand(t *testing.T) {
	a, contract := newTestApp(t)
	contract.On("Approve", mock.Anything, artist, big.NewInt(7), mock.Anything).Return(true, nil).Once()

	res, err := commands["approve"].run(bCtx.Background(), a, []string{"artist.eth", "7"})
	require.NoError(t, err)
	require.Equal(t, true, res)

	_, err = commands["approve"].run(bCtx.Background(), a, []string{"artist.eth", "-1"})
	require.ErrorIs(t, err, domain.ErrBadParamInput)
}

func TestRunHash(t *testing.T) {
	req := require.New(t)
	file := filepath.Join(t.TempDir(), "artwork.png")
	req.NoError(os.WriteFile(file, []byte("artwork"), 0o600))

	var stdout, stderr bytes.Buffer
	req.Equal(0, run([]string{"hash", file}, &stdout, &stderr), stderr.String())
	req.Equal(hofa.Hash([]byte("artwork")), strings.TrimSpace(stdout.String()))
}

func TestRunUsage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.Equal(t, 2, run(nil, &stdout, &stderr))
	require.Contains(t, stderr.String(), "grant-artist")

	stderr.Reset()
	require.Equal(t, 2, run([]string{"burn"}, &stdout, &stderr))
	require.Contains(t, stderr.String(), `unknown command "burn"`)

	stderr.Reset()
	require.Equal(t, 2, run([]string{"mint", "ipfs://meta"}, &stdout, &stderr))
}

func TestRunNeedsRpc(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.Equal(t, 1, run([]string{"is-artist"}, &stdout, &stderr))
	require.Contains(t, stderr.String(), "rpc is required")
}

func TestChainIdCommand(t *testing.T) {
	req := require.New(t)
	signer := new(chainmocks.Signer)
	signer.On("ChainID").Return(big.NewInt(137))
	a, _ := newTestApp(t)
	a.conn = signer

	res, err := commands["chain-id"].run(bCtx.Background(), a, nil)
	req.NoError(err)
	var out bytes.Buffer
	req.NoError(printResult(&out, res))
	req.JSONEq(`{"chainId":137,"name":"polygon"}`, out.String())
}
