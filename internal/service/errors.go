package service

import "errors"

var (
	ErrMissingRegistryEntry = errors.New("registry has no entry for setting")
	ErrNilDependency        = errors.New("nil dependency")
)
