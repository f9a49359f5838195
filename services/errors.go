package services

import "errors"

// Recoverable conditions surfaced to the UI; handlers map them to statuses.
var (
	ErrInvalidQuantity      = errors.New("quantity must be a positive integer")
	ErrPaymentFailed        = errors.New("payment failed")
	ErrUserNotAuthenticated = errors.New("user not authenticated")

	ErrAnotherRestaurant = errors.New("bag has items from another restaurant")
	ErrBagNotReady       = errors.New("bag is not ready for checkout")
	ErrNotReorderable    = errors.New("only completed orders can be reordered")
	ErrInvalidTransition = errors.New("invalid status transition")
)
