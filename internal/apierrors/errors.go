// Package apierrors provides shared error types for the Vault client.
package apierrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingHost is returned when no Vault host is provided.
	ErrMissingHost = errors.New("vault host is required")

	// ErrMissingCredentials is returned when username or password is empty.
	ErrMissingCredentials = errors.New("username and password are required")

	// ErrNotAuthenticated is returned when an operation is attempted
	// before a session has been established.
	ErrNotAuthenticated = errors.New("no active session")

	// ErrOperationFailed is returned when the service reports a
	// non-success status for an operation.
	ErrOperationFailed = errors.New("vault operation failed")
)

// OperationError represents a non-success response from the Vault API.
// Method and Args identify the originating call well enough to reproduce
// it manually.
type OperationError struct {
	Method  string
	Args    string
	Message string
}

func (e *OperationError) Error() string {
	if e.Args != "" {
		return fmt.Sprintf("%s(%s): %s", e.Method, e.Args, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Method, e.Message)
}

// Is implements errors.Is for sentinel error matching.
func (e *OperationError) Is(target error) bool {
	return target == ErrOperationFailed
}

// NetworkError represents a network-level failure: the request never
// produced a decodable Vault response.
type NetworkError struct {
	Method string
	URL    string
	Err    error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: network error: %v", e.Method, e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}
