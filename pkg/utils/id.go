package utils

import "github.com/google/uuid"

// NewID returns a fresh uuid string for primary keys and upload file names.
func NewID() string { return uuid.NewString() }
