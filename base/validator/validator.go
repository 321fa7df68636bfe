package validator

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
	"golang.org/x/xerrors"

	"github.com/x-xyz/hofa/domain"
)

// IsValidAddress returns is an address valid or not
func IsValidAddress(address string) bool {
	if !common.IsHexAddress(address) {
		return false
	}
	checksum := common.HexToAddress(address).Hex()
	return strings.ToLower(checksum) == strings.ToLower(address)
}

// New returns a validator knowing the hexaddr tag, satisfied by a 0x
// prefixed 20 bytes hex string.
func New() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("hexaddr", func(fl validator.FieldLevel) bool {
		return IsValidAddress(fl.Field().String())
	})
	return v
}

type StructValidator struct {
	validator *validator.Validate
}

func NewStructValidator(v *validator.Validate) *StructValidator {
	return &StructValidator{v}
}

// Validate wraps validation failures with domain.ErrBadParamInput.
func (v *StructValidator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		return xerrors.Errorf("%w: %v", domain.ErrBadParamInput, err)
	}
	return nil
}
