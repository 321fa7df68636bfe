package chain

import (
	"github.com/x-xyz/hofa/domain"
)

var (
	chainIdToText = map[domain.ChainId]string{
		domain.ChainId(1):     "ethereum",
		domain.ChainId(4):     "rinkeby",
		domain.ChainId(5):     "goerli",
		domain.ChainId(137):   "polygon",
		domain.ChainId(31337): "hardhat",
		domain.ChainId(80001): "mumbai",
	}
)

func GetChainDisplayName(chainId domain.ChainId) (string, error) {
	if val, ok := chainIdToText[chainId]; !ok {
		return "", domain.ErrNotFound
	} else {
		return val, nil
	}
}
