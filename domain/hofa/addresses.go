package hofa

import (
	_ "embed"
	"encoding/json"
	"io"
	"strconv"

	"golang.org/x/xerrors"

	"github.com/x-xyz/hofa/domain"
)

// ContractName is the key of the NFT contract in every network entry.
const ContractName = "HofaNFT"

//go:embed addresses.json
var defaultAddresses []byte

// AddressTable maps a network id to its deployed contracts by name.
type AddressTable map[domain.ChainId]map[string]domain.Address

// DefaultAddresses is the table shipped with the package. It only knows the
// local hardhat deployment, public networks are merged in from a table file.
var DefaultAddresses AddressTable

func init() {
	table, err := ParseAddressTable(defaultAddresses)
	if err != nil {
		panic("Failed to parse hofa address table: " + err.Error())
	}
	DefaultAddresses = table
}

// ParseAddressTable parses the json form {"<chainId>": {"<name>": "<address>"}}.
// Every network must list the HofaNFT contract.
func ParseAddressTable(data []byte) (AddressTable, error) {
	var raw map[string]map[string]domain.Address
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, xerrors.Errorf("%w: %v", domain.ErrBadParamInput, err)
	}
	table := make(AddressTable, len(raw))
	for key, contracts := range raw {
		chainId, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			return nil, xerrors.Errorf("%w: network id %q", domain.ErrBadParamInput, key)
		}
		if contracts[ContractName].IsEmpty() {
			return nil, xerrors.Errorf("%w: network %d lists no %s", domain.ErrBadParamInput, chainId, ContractName)
		}
		table[domain.ChainId(chainId)] = contracts
	}
	return table, nil
}

// ReadAddressTable parses a table from r, see ParseAddressTable.
func ReadAddressTable(r io.Reader) (AddressTable, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseAddressTable(data)
}

// Lookup returns the HofaNFT address deployed on chainId.
func (t AddressTable) Lookup(chainId domain.ChainId) (domain.Address, error) {
	contracts, ok := t[chainId]
	if !ok || contracts[ContractName].IsEmpty() {
		return "", xerrors.Errorf("%w: chain id %d", domain.ErrUnknownNetwork, chainId)
	}
	return contracts[ContractName], nil
}

// Merge returns a new table with the entries of other overriding t's.
func (t AddressTable) Merge(other AddressTable) AddressTable {
	res := make(AddressTable, len(t)+len(other))
	for k, v := range t {
		res[k] = v
	}
	for k, v := range other {
		res[k] = v
	}
	return res
}
