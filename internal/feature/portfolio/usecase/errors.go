// Package usecase implements the reconciliation and portfolio business logic.
package usecase

import "errors"

var (
	// ErrDuplicateSymbol is returned when the (user, symbol) pair already
	// exists in the watchlist. The storage layer raises it too, as a second
	// line of defense behind the usecase pre-check.
	ErrDuplicateSymbol = errors.New("stock already in watchlist")

	// ErrEntryNotFound is returned when a watchlist entry is absent or owned
	// by another user.
	ErrEntryNotFound = errors.New("stock not found in watchlist")

	// ErrHoldingNotFound is returned when a holding is absent or owned by
	// another user.
	ErrHoldingNotFound = errors.New("holding not found")

	// ErrInvalidQuantity is returned when a sale exceeds the held quantity
	// or a purchase carries a non-positive quantity or price.
	ErrInvalidQuantity = errors.New("invalid quantity")
)
