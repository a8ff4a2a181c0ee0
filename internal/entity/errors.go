package entity

import (
	"errors"
)

var (
	ErrNotFound             = errors.New("not found")
	ErrNoResult             = errors.New("no result from crm")
	ErrInvalidRecord        = errors.New("invalid contract record")
	ErrInvalidFee           = errors.New("invalid fee value")
	ErrUnknownContractModel = errors.New("unknown contract model")
	ErrRunInProgress        = errors.New("reconciliation run in progress")
	ErrUnauthenticated      = errors.New("unauthenticated")
)
