package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong email or password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrSessionRevoked          = errors.New("session revoked")

	ErrInvalidSignature = errors.New("invalid signature")

	ErrVersionIsNotSpecified = errors.New("version is not specified")
)

// ErrEmptyDestination is returned by the client when a download has no
// target directory.
var ErrEmptyDestination = errors.New("destination path is empty")
