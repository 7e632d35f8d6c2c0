package usecase

import "errors"

var (
	ErrInvalidURL    = errors.New("invalid URL")
	ErrEmptyURL      = errors.New("empty URL")
	ErrEmptyCode     = errors.New("empty code")
	ErrInvalidLength = errors.New("code length must be a positive integer")
	ErrURLNotFound   = errors.New("URL not found")
	ErrAliasExists   = errors.New("alias already exists")
	ErrInvalidAlias  = errors.New("alias must not contain control characters")
)
