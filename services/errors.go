package services

import (
	"errors"
	"fmt"
)

var (
	ErrTenantNotFound     = errors.New("tenant not found")
	ErrReminderNotFound   = errors.New("reminder not found")
	ErrConfigNotFound     = errors.New("config not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// ConfigError reports a stored configuration value that cannot be used.
type ConfigError struct {
	Key    string
	Value  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config %s=%q: %s", e.Key, e.Value, e.Reason)
}

// StorageError wraps a failure of the underlying store.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func storageErr(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}

// ValidationError rejects caller input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
