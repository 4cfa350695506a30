package client

import "errors"

var (
	ErrUnavailable  = errors.New("identity provider unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrBadResponse  = errors.New("malformed provider response")
)
