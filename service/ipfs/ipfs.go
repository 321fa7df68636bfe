package ipfs

import (
	"bytes"
	"encoding/json"
	"io"

	ipfsapi "github.com/ipfs/go-ipfs-api"

	"github.com/x-xyz/hofa/base/ctx"
	"github.com/x-xyz/hofa/domain/hofa"
)

type nodeImpl struct {
	shell      *ipfsapi.Shell
	cidVersion int
}

// New pins through the http api of an ipfs node, e.g. localhost:5001.
func New(apiUrl string, cidVersion int) hofa.Pinner {
	return &nodeImpl{
		shell:      ipfsapi.NewShell(apiUrl),
		cidVersion: cidVersion,
	}
}

func (im *nodeImpl) Pin(c ctx.Ctx, file io.Reader, extension string) (string, error) {
	cid, err := im.shell.Add(file, ipfsapi.Pin(true), ipfsapi.CidVersion(im.cidVersion))
	if err != nil {
		c.WithError(err).WithField("extension", extension).Error("shell.Add failed")
		return "", err
	}
	return cid, nil
}

func (im *nodeImpl) PinJson(c ctx.Ctx, value interface{}) (string, error) {
	b, err := json.Marshal(value)
	if err != nil {
		c.WithError(err).Error("json.Marshal failed")
		return "", err
	}
	return im.Pin(c, bytes.NewReader(b), "json")
}
