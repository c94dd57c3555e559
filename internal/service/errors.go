package service

import "errors"

var ErrInvalidCredentials = errors.New("incorrect password, access denied")
