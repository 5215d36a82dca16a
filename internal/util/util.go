package util

import "github.com/google/uuid"

// NewRunID returns an id to tell the log records of one run apart.
func NewRunID() string {
	return uuid.NewString()
}
