package usecase

import (
	"errors"
	"io"
	"math/big"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/hofa/base/ctx"
	"github.com/x-xyz/hofa/domain"
	"github.com/x-xyz/hofa/domain/artwork"
	"github.com/x-xyz/hofa/domain/hofa"
	"github.com/x-xyz/hofa/domain/hofa/mocks"
)

var (
	mockCtx = ctx.Background()
	// 1x1 png
	png = []byte{
		0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
		0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
		0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89,
	}
	creator = domain.Address("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
)

type testsuite struct {
	suite.Suite
	contract *mocks.Contract
	pinner   *mocks.Pinner
	im       artwork.Usecase
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) SetupTest() {
	ts.contract = new(mocks.Contract)
	ts.pinner = new(mocks.Pinner)
	ts.im = New(&ArtworkUseCaseCfg{
		Contract:    ts.contract,
		Pinner:      ts.pinner,
		RoleWorkers: 2,
	})
}

func (ts *testsuite) TestPublish() {
	contentHash := hofa.Hash(png)
	metadata := &hofa.Metadata{
		Name:        "Sunset",
		Description: "oil on canvas",
		Image:       "ipfs://bafyimage",
		Properties:  hofa.MetadataProperties{Creator: creator, Sha256: contentHash},
	}

	ts.pinner.On("Pin", mock.Anything, mock.MatchedBy(func(r io.Reader) bool {
		b, err := io.ReadAll(r)
		return err == nil && string(b) == string(png)
	}), "png").Return("bafyimage", nil).Once()
	ts.contract.On("Metadata", mock.Anything, "Sunset", "oil on canvas", "ipfs://bafyimage", contentHash).Return(metadata, nil).Once()
	ts.pinner.On("PinJson", mock.Anything, metadata).Return("bafymeta", nil).Once()
	// royalties and confirmations
	ts.contract.On("Mint", mock.Anything, "ipfs://bafymeta", contentHash, mock.Anything, mock.Anything).Return(big.NewInt(42), nil).Once()

	res, err := ts.im.Publish(mockCtx, artwork.PublishRequest{
		Title:       "Sunset",
		Description: "oil on canvas",
		Content:     png,
		Royalties:   500,
	}, hofa.WithConfirmations(2))
	ts.NoError(err)
	ts.Equal(&artwork.Published{
		TokenId:     big.NewInt(42),
		ContentHash: contentHash,
		MimeType:    "image/png",
		ImageURI:    "ipfs://bafyimage",
		MetadataURI: "ipfs://bafymeta",
		Metadata:    metadata,
	}, res)

	// the mint options carry the requested royalties and confirmations
	call := ts.contract.Calls[len(ts.contract.Calls)-1]
	var fns []hofa.TxOption
	for _, arg := range call.Arguments[3:] {
		fns = append(fns, arg.(hofa.TxOption))
	}
	options, err := hofa.GetTxOptions(fns...)
	ts.NoError(err)
	ts.Equal(int64(500), options.Royalties.Int64())
	ts.Equal(uint64(2), options.Confirmations)

	ts.pinner.AssertExpectations(ts.T())
	ts.contract.AssertExpectations(ts.T())
}

func (ts *testsuite) TestPublishInvalid() {
	_, err := ts.im.Publish(mockCtx, artwork.PublishRequest{Content: png})
	ts.ErrorIs(err, domain.ErrBadParamInput)

	_, err = ts.im.Publish(mockCtx, artwork.PublishRequest{Title: "Sunset", Content: png, Royalties: 10001})
	ts.ErrorIs(err, domain.ErrBadParamInput)

	ts.pinner.AssertNotCalled(ts.T(), "Pin", mock.Anything, mock.Anything, mock.Anything)
}

func (ts *testsuite) TestPublishReadOnly() {
	ts.pinner.On("Pin", mock.Anything, mock.Anything, mock.Anything).Return("bafyimage", nil).Once()
	ts.contract.On("Metadata", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, domain.ErrNoAddressAvailable).Once()

	_, err := ts.im.Publish(mockCtx, artwork.PublishRequest{Title: "Sunset", Content: png})
	ts.ErrorIs(err, domain.ErrNoAddressAvailable)
	ts.pinner.AssertNotCalled(ts.T(), "PinJson", mock.Anything, mock.Anything)
}

func (ts *testsuite) TestPublishMintFailed() {
	txErr := &domain.TransactionError{Method: "mint", Err: errors.New("execution reverted")}
	ts.pinner.On("Pin", mock.Anything, mock.Anything, mock.Anything).Return("bafyimage", nil).Once()
	ts.contract.On("Metadata", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(&hofa.Metadata{}, nil).Once()
	ts.pinner.On("PinJson", mock.Anything, mock.Anything).Return("bafymeta", nil).Once()
	ts.contract.On("Mint", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, txErr).Once()

	_, err := ts.im.Publish(mockCtx, artwork.PublishRequest{Title: "Sunset", Content: png})
	ts.ErrorIs(err, domain.ErrTransactionFailed)
}

func (ts *testsuite) TestRoles() {
	accounts := []domain.Address{
		"0x70997970C51812dc3A010C7d01b50e0d17dc79C8",
		"0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC",
		"0x90F79bf6EB2c4f870365E785982E1f101E93b906",
	}
	ts.contract.On("IsArtist", mock.Anything, accounts[0]).Return(true, nil)
	ts.contract.On("IsAdmin", mock.Anything, accounts[0]).Return(false, nil)
	ts.contract.On("IsArtist", mock.Anything, accounts[1]).Return(false, nil)
	ts.contract.On("IsAdmin", mock.Anything, accounts[1]).Return(true, nil)
	ts.contract.On("IsArtist", mock.Anything, accounts[2]).Return(false, nil)
	ts.contract.On("IsAdmin", mock.Anything, accounts[2]).Return(false, nil)

	res, err := ts.im.Roles(mockCtx, accounts)
	ts.NoError(err)
	ts.Equal([]*artwork.RoleStatus{
		{Account: accounts[0], Artist: true},
		{Account: accounts[1], Admin: true},
		{Account: accounts[2]},
	}, res)
}

func (ts *testsuite) TestRolesFailed() {
	rpcErr := errors.New("connection refused")
	ts.contract.On("IsArtist", mock.Anything, mock.Anything).Return(false, rpcErr)

	_, err := ts.im.Roles(mockCtx, []domain.Address{"0x70997970C51812dc3A010C7d01b50e0d17dc79C8"})
	ts.ErrorIs(err, rpcErr)
}

func (ts *testsuite) TestRolesEmpty() {
	res, err := ts.im.Roles(mockCtx, nil)
	ts.NoError(err)
	ts.Empty(res)
}
