package medicine

import "errors"

var (
	ErrNotFound          = errors.New("medicine not found")
	ErrDuplicateID       = errors.New("medicine id already exists")
	ErrInvalidQuantity   = errors.New("quantity must be a non-negative number")
	ErrInsufficientStock = errors.New("insufficient quantity in stock")
	ErrInvalidID         = errors.New("medicine id is required")
	ErrInvalidName       = errors.New("medicine name is required")
	ErrInvalidPrice      = errors.New("unit price must be non-negative")
	ErrInvalidExpiryDate = errors.New("expiry date is required")
)
