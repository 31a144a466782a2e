package storage

import "errors"

// Common storage errors
var (
	// ErrMetadataNotFound indicates that no sync metadata exists for the entity
	ErrMetadataNotFound = errors.New("sync metadata not found")

	// ErrItemNotFound indicates that sync queue item was not found
	ErrItemNotFound = errors.New("sync queue item not found")

	// ErrClientNotFound indicates that sync client was not found
	ErrClientNotFound = errors.New("sync client not found")

	// ErrClientAlreadyExists indicates that the device is already registered for the user
	ErrClientAlreadyExists = errors.New("sync client already exists")

	// ErrUserNotFound indicates that user was not found in storage
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists indicates that user with this username already exists
	ErrUserAlreadyExists = errors.New("user already exists")
)
