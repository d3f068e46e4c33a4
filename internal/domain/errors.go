package domain

import "errors"

var (
	ErrSessionCreation    = errors.New("session creation failed")
	ErrAPICall            = errors.New("api call failed")
	ErrEmptyResult        = errors.New("empty result")
	ErrDataAnomaly        = errors.New("data anomaly")
	ErrNotInMatch         = errors.New("player is not in a live match")
	ErrCredentialsMissing = errors.New("credentials missing")
	ErrSecretNotFound     = errors.New("secret not found")
	ErrSessionNotFound    = errors.New("session not found")
)
