package usecase

import (
	"bytes"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/viney-shih/goroutines"

	"github.com/x-xyz/hofa/base/ctx"
	"github.com/x-xyz/hofa/base/log"
	"github.com/x-xyz/hofa/base/validator"
	"github.com/x-xyz/hofa/domain"
	"github.com/x-xyz/hofa/domain/artwork"
	"github.com/x-xyz/hofa/domain/hofa"
)

const defaultRoleWorkers = 8

type ArtworkUseCaseCfg struct {
	Contract hofa.Contract
	Pinner   hofa.Pinner
	// RoleWorkers bounds the concurrent hasRole calls of Roles
	RoleWorkers int
}

type impl struct {
	contract    hofa.Contract
	pinner      hofa.Pinner
	validator   *validator.StructValidator
	roleWorkers int
}

func New(cfg *ArtworkUseCaseCfg) artwork.Usecase {
	workers := cfg.RoleWorkers
	if workers < 1 {
		workers = defaultRoleWorkers
	}
	return &impl{
		contract:    cfg.Contract,
		pinner:      cfg.Pinner,
		validator:   validator.NewStructValidator(validator.New()),
		roleWorkers: workers,
	}
}

func (im *impl) Publish(c ctx.Ctx, req artwork.PublishRequest, opts ...hofa.TxOption) (*artwork.Published, error) {
	if err := im.validator.Validate(&req); err != nil {
		return nil, err
	}

	contentHash := hofa.Hash(req.Content)
	mtype := mimetype.Detect(req.Content)
	c = ctx.WithFields(c, log.Fields{
		"sha256":   contentHash,
		"mimetype": mtype.String(),
	})

	cid, err := im.pinner.Pin(c, bytes.NewReader(req.Content), strings.TrimPrefix(mtype.Extension(), "."))
	if err != nil {
		c.WithError(err).Error("pinner.Pin failed")
		return nil, err
	}
	imageURI := hofa.IpfsURI(cid)

	metadata, err := im.contract.Metadata(c, req.Title, req.Description, imageURI, contentHash)
	if err != nil {
		c.WithError(err).Error("contract.Metadata failed")
		return nil, err
	}
	metadataCid, err := im.pinner.PinJson(c, metadata)
	if err != nil {
		c.WithError(err).Error("pinner.PinJson failed")
		return nil, err
	}
	metadataURI := hofa.IpfsURI(metadataCid)

	mintOpts := append([]hofa.TxOption{hofa.WithRoyalties(req.Royalties)}, opts...)
	tokenId, err := im.contract.Mint(c, metadataURI, contentHash, mintOpts...)
	if err != nil {
		c.WithFields(log.Fields{
			"uri": metadataURI,
			"err": err,
		}).Error("contract.Mint failed")
		return nil, err
	}
	c.WithField("tokenId", tokenId.String()).Info("artwork minted")

	return &artwork.Published{
		TokenId:     tokenId,
		ContentHash: contentHash,
		MimeType:    mtype.String(),
		ImageURI:    imageURI,
		MetadataURI: metadataURI,
		Metadata:    metadata,
	}, nil
}

type roleResult struct {
	idx    int
	status *artwork.RoleStatus
}

func (im *impl) Roles(c ctx.Ctx, accounts []domain.Address) ([]*artwork.RoleStatus, error) {
	if len(accounts) == 0 {
		return []*artwork.RoleStatus{}, nil
	}

	b := goroutines.NewBatch(im.roleWorkers, goroutines.WithBatchSize(len(accounts)))
	defer b.Close()
	for i := range accounts {
		idx := i
		b.Queue(func() (interface{}, error) {
			return im.roleStatus(c, idx, accounts[idx])
		})
	}
	b.QueueComplete()

	res := make([]*artwork.RoleStatus, len(accounts))
	var firstErr error
	for ret := range b.Results() {
		if ret.Error() != nil {
			if firstErr == nil {
				firstErr = ret.Error()
			}
			continue
		}
		r := ret.Value().(*roleResult)
		res[r.idx] = r.status
	}
	if firstErr != nil {
		c.WithError(firstErr).Error("role lookup failed")
		return nil, firstErr
	}
	return res, nil
}

func (im *impl) roleStatus(c ctx.Ctx, idx int, account domain.Address) (*roleResult, error) {
	isArtist, err := im.contract.IsArtist(c, account)
	if err != nil {
		return nil, err
	}
	isAdmin, err := im.contract.IsAdmin(c, account)
	if err != nil {
		return nil, err
	}
	return &roleResult{
		idx: idx,
		status: &artwork.RoleStatus{
			Account: account,
			Artist:  isArtist,
			Admin:   isAdmin,
		},
	}, nil
}
