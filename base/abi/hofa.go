package abi

import (
	"errors"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/core/types"
)

var (
	ErrNoTopics       = errors.New("log has no topics")
	ErrTopicsMismatch = errors.New("log topics don't match event inputs")
)

var HofaNFTABI abi.ABI

var hofaNFTABI = `[
{"type":"event","anonymous":false,"name":"Transfer","inputs":[{"type":"address","name":"from","indexed":true},{"type":"address","name":"to","indexed":true},{"type":"uint256","name":"tokenId","indexed":true}]},
{"type":"event","anonymous":false,"name":"Approval","inputs":[{"type":"address","name":"owner","indexed":true},{"type":"address","name":"approved","indexed":true},{"type":"uint256","name":"tokenId","indexed":true}]},
{"type":"event","anonymous":false,"name":"RoleGranted","inputs":[{"type":"bytes32","name":"role","indexed":true},{"type":"address","name":"account","indexed":true},{"type":"address","name":"sender","indexed":true}]},
{"type":"event","anonymous":false,"name":"RoleRevoked","inputs":[{"type":"bytes32","name":"role","indexed":true},{"type":"address","name":"account","indexed":true},{"type":"address","name":"sender","indexed":true}]},
{"type":"event","anonymous":false,"name":"RoleAdminChanged","inputs":[{"type":"bytes32","name":"role","indexed":true},{"type":"bytes32","name":"previousAdminRole","indexed":true},{"type":"bytes32","name":"newAdminRole","indexed":true}]},
{"type":"function","name":"mint","stateMutability":"nonpayable","inputs":[{"type":"string","name":"uri"},{"type":"bytes32","name":"hash"},{"type":"uint256","name":"royalties"}],"outputs":[{"type":"uint256","name":""}]},
{"type":"function","name":"approve","stateMutability":"nonpayable","inputs":[{"type":"address","name":"to"},{"type":"uint256","name":"tokenId"}],"outputs":[]},
{"type":"function","name":"grantRole","stateMutability":"nonpayable","inputs":[{"type":"bytes32","name":"role"},{"type":"address","name":"account"}],"outputs":[]},
{"type":"function","name":"revokeRole","stateMutability":"nonpayable","inputs":[{"type":"bytes32","name":"role"},{"type":"address","name":"account"}],"outputs":[]},
{"type":"function","name":"hasRole","stateMutability":"view","inputs":[{"type":"bytes32","name":"role"},{"type":"address","name":"account"}],"outputs":[{"type":"bool","name":""}]},
{"type":"function","name":"MINTER_ROLE","stateMutability":"view","inputs":[],"outputs":[{"type":"bytes32","name":""}]},
{"type":"function","name":"DEFAULT_ADMIN_ROLE","stateMutability":"view","inputs":[],"outputs":[{"type":"bytes32","name":""}]},
{"type":"function","name":"ownerOf","stateMutability":"view","inputs":[{"type":"uint256","name":"tokenId"}],"outputs":[{"type":"address","name":""}]},
{"type":"function","name":"tokenURI","stateMutability":"view","inputs":[{"type":"uint256","name":"tokenId"}],"outputs":[{"type":"string","name":""}]}
]`

func init() {
	_abi, err := abi.JSON(strings.NewReader(hofaNFTABI))
	if err != nil {
		panic("Failed to parse hofa nft abi")
	}
	HofaNFTABI = _abi
}

// UnpackLog decodes a log with the event of contractAbi matching its first
// topic. Arguments are returned in the order the event declares them,
// indexed ones read from the topics and the others from the data.
func UnpackLog(contractAbi abi.ABI, log *types.Log) (*abi.Event, []interface{}, error) {
	if len(log.Topics) == 0 {
		return nil, nil, ErrNoTopics
	}
	event, err := contractAbi.EventByID(log.Topics[0])
	if err != nil {
		return nil, nil, err
	}

	var indexed abi.Arguments
	for _, input := range event.Inputs {
		if input.Indexed {
			indexed = append(indexed, input)
		}
	}
	if len(indexed) != len(log.Topics)-1 {
		return nil, nil, ErrTopicsMismatch
	}

	values := make(map[string]interface{}, len(event.Inputs))
	if len(event.Inputs.NonIndexed()) > 0 {
		if err := event.Inputs.UnpackIntoMap(values, log.Data); err != nil {
			return nil, nil, err
		}
	}
	if err := abi.ParseTopicsIntoMap(values, indexed, log.Topics[1:]); err != nil {
		return nil, nil, err
	}

	args := make([]interface{}, len(event.Inputs))
	for i, input := range event.Inputs {
		args[i] = values[input.Name]
	}
	return event, args, nil
}
