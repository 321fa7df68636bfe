package hofa

import (
	"crypto/sha256"
	"encoding/json"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/x-xyz/hofa/domain"
)

type MetadataProperties struct {
	Creator domain.Address `json:"creator"`
	Sha256  string         `json:"sha256"`
}

// Metadata is the token metadata the uri of a minted token points to.
type Metadata struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Image       string             `json:"image"`
	Properties  MetadataProperties `json:"properties"`
}

func (m *Metadata) JSON() (string, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Hash is the content hash stored on-chain: 0x-prefixed hex sha256 of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hexutil.Encode(sum[:])
}
