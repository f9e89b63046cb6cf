package repository

import "errors"

// Package repository contains data access layer abstractions.
// Implementations live in subpackages (e.g., postgres) inside this directory.

var (
	// ErrUsernameExists is returned by UserRepository.Create when the username
	// is already taken. Callers that re-assert seed accounts ignore it on purpose.
	ErrUsernameExists = errors.New("username already exists")

	// ErrUserNotFound is returned when no user row matches the lookup.
	ErrUserNotFound = errors.New("user not found")
)
