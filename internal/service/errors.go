package service

import "errors"

var (
	// ErrNotFound: referenced task or domain does not exist.
	ErrNotFound = errors.New("not found")
	// ErrAuth: provider credential missing, invalid or unrefreshable.
	ErrAuth = errors.New("authorization failed")
	// ErrProvider: the external task provider call failed.
	ErrProvider = errors.New("task provider error")
)
