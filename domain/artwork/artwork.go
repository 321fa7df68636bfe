package artwork

import (
	"math/big"

	"github.com/x-xyz/hofa/base/ctx"
	"github.com/x-xyz/hofa/domain"
	"github.com/x-xyz/hofa/domain/hofa"
)

type PublishRequest struct {
	Title       string `validate:"required"`
	Description string
	Content     []byte `validate:"required"`
	// Royalties in basis points
	Royalties uint64 `validate:"lte=10000"`
}

// Published is a minted artwork along with everything pinned for it.
type Published struct {
	TokenId     *big.Int
	ContentHash string
	MimeType    string
	ImageURI    string
	MetadataURI string
	Metadata    *hofa.Metadata
}

type RoleStatus struct {
	Account domain.Address `json:"account"`
	Artist  bool           `json:"artist"`
	Admin   bool           `json:"admin"`
}

type Usecase interface {
	// Publish pins content and its metadata then mints a token pointing to them.
	Publish(c ctx.Ctx, req PublishRequest, opts ...hofa.TxOption) (*Published, error)
	// Roles looks up the roles of every account, in the given order.
	Roles(c ctx.Ctx, accounts []domain.Address) ([]*RoleStatus, error)
}
