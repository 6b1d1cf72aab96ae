package veevavault

import (
	"errors"
	"fmt"

	"github.com/veevavault/client-go/internal/apierrors"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingCredentials is returned when username or password is empty.
	ErrMissingCredentials = apierrors.ErrMissingCredentials

	// ErrMissingHost is returned when no Vault host is provided.
	ErrMissingHost = apierrors.ErrMissingHost

	// ErrAuthenticationFailed is returned when the auth call does not
	// establish a session.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrOperationFailed is returned when the service reports a
	// non-success status for any resource operation.
	ErrOperationFailed = errors.New("vault operation failed")
)

// VaultError is implemented by all SDK errors.
type VaultError interface {
	error
	VaultError() // marker method
}

// AuthError indicates that no session could be established. The client
// is not usable; the caller must authenticate again.
type AuthError struct {
	Host string
	Err  error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authenticate against %s: %v", e.Host, e.Err)
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *AuthError) Is(target error) bool {
	return target == ErrAuthenticationFailed
}

// VaultError implements the VaultError interface.
func (e *AuthError) VaultError() {}

// OperationError represents a non-success response from a resource
// operation. Method and Args identify the originating call well enough
// to reproduce it manually.
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

// VaultError implements the VaultError interface.
func (e *OperationError) VaultError() {}

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

// VaultError implements the VaultError interface.
func (e *NetworkError) VaultError() {}

// SequenceError reports a binder membership sequence that failed
// partway. Applied counts the items that were already applied before
// the failure; those mutations are not rolled back, so the binder holds
// the input's prefix of length Applied. FailedID identifies the item
// whose call failed (a document id for set, a node id for remove).
// Items after the failing one were never attempted.
type SequenceError struct {
	Op       string
	BinderID int
	Applied  int
	FailedID string
	Err      error
}

func (e *SequenceError) Error() string {
	return fmt.Sprintf("%s(binder_id=%d): failed at item %d (%s) after %d applied: %v",
		e.Op, e.BinderID, e.Applied+1, e.FailedID, e.Applied, e.Err)
}

// Unwrap returns the underlying error.
func (e *SequenceError) Unwrap() error {
	return e.Err
}

// VaultError implements the VaultError interface.
func (e *SequenceError) VaultError() {}

// Lock protocol stages, in execution order.
const (
	StageLock   = "lock"
	StageUpdate = "update"
	StageUnlock = "unlock"
)

// LockError reports a failure inside the lock/update/unlock protocol.
// Stage names the step that failed. Unlocked reports whether the
// document was left unlocked: when the update step fails the client
// still attempts a compensating unlock, and UnlockErr carries that
// attempt's failure if it also failed.
type LockError struct {
	DocumentID int
	Stage      string
	Unlocked   bool
	Err        error
	UnlockErr  error
}

func (e *LockError) Error() string {
	msg := fmt.Sprintf("document %d: %s step failed: %v", e.DocumentID, e.Stage, e.Err)
	if !e.Unlocked {
		msg += " (document left locked"
		if e.UnlockErr != nil {
			msg += fmt.Sprintf("; unlock failed: %v", e.UnlockErr)
		}
		msg += ")"
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *LockError) Unwrap() error {
	return e.Err
}

// VaultError implements the VaultError interface.
func (e *LockError) VaultError() {}

// wrapError converts internal API errors to public errors.
// This ensures that errors.Is() checks work with public sentinel errors.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var opErr *apierrors.OperationError
	if errors.As(err, &opErr) {
		return &OperationError{
			Method:  opErr.Method,
			Args:    opErr.Args,
			Message: opErr.Message,
		}
	}

	var netErr *apierrors.NetworkError
	if errors.As(err, &netErr) {
		return &NetworkError{
			Method: netErr.Method,
			URL:    netErr.URL,
			Err:    netErr.Err,
		}
	}

	return err
}
