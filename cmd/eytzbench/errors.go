package main

import "errors"

var (
	ErrUnknownSuite     = errors.New("unknown suite")
	ErrUnknownCandidate = errors.New("unknown candidate")
	ErrInvalidFlag      = errors.New("invalid flag value")
	ErrChildFailed      = errors.New("memory child failed")
)
