package hofa

import (
	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/xerrors"

	"github.com/x-xyz/hofa/domain"
)

type Role string

const (
	// RoleMinter lets an artist mint
	RoleMinter Role = "MINTER_ROLE"
	// RoleAdmin grants and revokes every role
	RoleAdmin Role = "DEFAULT_ADMIN_ROLE"
)

// Roles are the on-chain role identifiers, keccak256 of the role name except
// for the admin role which is zero.
var Roles = map[Role]common.Hash{
	RoleMinter: common.HexToHash("0x9f2df0fed2c77648de5860a4cc508cd0818c85b8b8a1ab4ceeef8d981c8956a6"),
	RoleAdmin:  {},
}

func RoleId(role Role) (common.Hash, error) {
	id, ok := Roles[role]
	if !ok {
		return common.Hash{}, xerrors.Errorf("%w: role %s", domain.ErrNotFound, role)
	}
	return id, nil
}

// MustRoleId panics on roles missing from the table.
func MustRoleId(role Role) common.Hash {
	id, err := RoleId(role)
	if err != nil {
		panic(err)
	}
	return id
}
