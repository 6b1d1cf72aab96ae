package api

import (
	"fmt"

	"github.com/veevavault/client-go/internal/apierrors"
)

// StatusSuccess is the explicit success indicator in a Vault response.
// Anything else, including an absent status, is a failure.
const StatusSuccess = "SUCCESS"

// abortMessage is the generic failure message used when the service
// reports a failure without a usable message field.
const abortMessage = "Aborting"

// Envelope is the uniform response wrapper every Vault call returns.
// Typed response structs embed it so the transport can classify the
// outcome before the caller extracts payload fields.
type Envelope struct {
	ResponseStatus  string          `json:"responseStatus"`
	ResponseMessage string          `json:"responseMessage"`
	Errors          []ResponseError `json:"errors"`
}

// ResponseError is one entry of a structured multi-error response.
type ResponseError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func (e *Envelope) envelope() *Envelope { return e }

// enveloped is satisfied by any response struct embedding Envelope.
type enveloped interface {
	envelope() *Envelope
}

// Classification is the closed set of outcomes a Vault response can
// have. It is decided once per call, here; call sites never re-inspect
// the response body.
type Classification int

const (
	// Success means the response carried the explicit success status.
	Success Classification = iota
	// ErrorMessage means a failure with a human-readable message field.
	ErrorMessage
	// ErrorList means a failure with a structured multi-error list.
	ErrorList
	// UnknownFailure means a failure with neither message nor list,
	// including responses missing the status field entirely.
	UnknownFailure
)

// Classify maps a response envelope to its classification.
func Classify(env *Envelope) Classification {
	if env.ResponseStatus == StatusSuccess {
		return Success
	}
	if env.ResponseMessage != "" {
		return ErrorMessage
	}
	if len(env.Errors) > 0 {
		return ErrorList
	}
	return UnknownFailure
}

// classify turns a decoded envelope into nil or an *OperationError
// tagged with the originating method and arguments. Success traces are
// emitted at Debug level; multi-error detail is emitted at Error level
// so failures are never silent.
func (c *Client) classify(method, args string, env *Envelope) error {
	switch Classify(env) {
	case Success:
		c.logger.Debug(fmt.Sprintf("%s(%s): OK", method, args))
		return nil
	case ErrorMessage:
		return &apierrors.OperationError{Method: method, Args: args, Message: env.ResponseMessage}
	case ErrorList:
		for _, re := range env.Errors {
			c.logger.Error("vault call failed", "method", method, "args", args,
				"type", re.Type, "message", re.Message)
		}
		return &apierrors.OperationError{Method: method, Args: args, Message: abortMessage}
	default:
		return &apierrors.OperationError{Method: method, Args: args, Message: abortMessage}
	}
}
