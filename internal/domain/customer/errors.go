package customer

import "errors"

var (
	ErrNotFound    = errors.New("customer not found")
	ErrDuplicateID = errors.New("customer id already exists")
)
