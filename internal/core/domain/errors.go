package domain

import "errors"

var (
	// ErrAssetMismatch is thrown when arithmetic or comparison is attempted
	// between amounts of two different asset types.
	ErrAssetMismatch = errors.New("asset types do not match")
	// ErrInvalidArgument is thrown when an identifier is constructed from a
	// structurally invalid value, like a negative or fractional number.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNegativeAmount is thrown when a subtraction would drive an asset
	// amount below zero.
	ErrNegativeAmount = errors.New("amount must not be negative")
	// ErrAmountOverflow is thrown when an addition would exceed the maximum
	// representable asset amount.
	ErrAmountOverflow = errors.New("amount overflow")
	// ErrMalformedBlock ...
	ErrMalformedBlock = errors.New("malformed ledger block")
	// ErrTransactionNotFound ...
	ErrTransactionNotFound = errors.New("transaction not found")
)
