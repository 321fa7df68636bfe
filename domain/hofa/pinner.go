package hofa

import (
	"io"

	"github.com/x-xyz/hofa/base/ctx"
)

// Pinner stores artwork files and their metadata on ipfs and returns the cid.
type Pinner interface {
	Pin(c ctx.Ctx, file io.Reader, extension string) (string, error)
	PinJson(c ctx.Ctx, value interface{}) (string, error)
}

// IpfsURI is the uri a token points to for cid.
func IpfsURI(cid string) string {
	return "ipfs://" + cid
}
