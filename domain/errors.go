package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput  = errors.New("Given Param is not valid")
	ErrInvalidAddress = errors.New("Invalid address")

	// ErrUnknownNetwork is returned when a chain id has no deployed contract
	ErrUnknownNetwork = errors.New("unknown network")
	// ErrTransactionFailed matches every *TransactionError
	ErrTransactionFailed = errors.New("transaction failed")
	// ErrExpectedEventMissing is returned when a confirmed receipt lacks the event carrying the result
	ErrExpectedEventMissing = errors.New("expected event missing")
	// ErrNoAddressAvailable is returned when an account is required but the connection can't sign
	ErrNoAddressAvailable = errors.New("no address available")
	// ErrSignerRequired is the cause of a transaction submitted on a read-only connection
	ErrSignerRequired = errors.New("sending a transaction requires a signer")
	// ErrTransactionReverted is the cause of a transaction mined with a failed status
	ErrTransactionReverted = errors.New("transaction reverted")
)

// TransactionError reports a submission or confirmation failure. errors.Is
// matches it against ErrTransactionFailed and against its cause.
type TransactionError struct {
	Method string
	TxHash TxHash
	Err    error
}

func (e *TransactionError) Error() string {
	if e.TxHash == "" {
		return fmt.Sprintf("%s: %s: %v", ErrTransactionFailed, e.Method, e.Err)
	}
	return fmt.Sprintf("%s: %s tx=%s: %v", ErrTransactionFailed, e.Method, e.TxHash, e.Err)
}

func (e *TransactionError) Unwrap() error {
	return e.Err
}

func (e *TransactionError) Is(target error) bool {
	return target == ErrTransactionFailed
}
