package api

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/hashicorp/go-hclog"

	"github.com/veevavault/client-go/internal/apierrors"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		env  Envelope
		want Classification
	}{
		{"explicit success", Envelope{ResponseStatus: "SUCCESS"}, Success},
		{"failure with message", Envelope{ResponseStatus: "FAILURE", ResponseMessage: "Invalid session"}, ErrorMessage},
		{"failure with error list", Envelope{ResponseStatus: "FAILURE", Errors: []ResponseError{{Type: "OPERATION_NOT_ALLOWED", Message: "no"}}}, ErrorList},
		{"failure with neither", Envelope{ResponseStatus: "FAILURE"}, UnknownFailure},
		{"missing status is failure", Envelope{}, UnknownFailure},
		{"unknown status is failure", Envelope{ResponseStatus: "WARNING"}, UnknownFailure},
		{"lowercase success is failure", Envelope{ResponseStatus: "success"}, UnknownFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(&tt.env); got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClassify_MessageCarriesMethodAndArgs(t *testing.T) {
	c := &Client{logger: hclog.NewNullLogger()}

	err := c.classify("getDocument", "document_id=7", &Envelope{
		ResponseStatus:  "FAILURE",
		ResponseMessage: "Invalid session",
	})
	if err == nil {
		t.Fatal("expected error")
	}

	var opErr *apierrors.OperationError
	if !errors.As(err, &opErr) {
		t.Fatalf("expected OperationError, got %T", err)
	}
	if opErr.Method != "getDocument" || opErr.Args != "document_id=7" {
		t.Errorf("tag = %s(%s), want getDocument(document_id=7)", opErr.Method, opErr.Args)
	}
	if !strings.Contains(err.Error(), "Invalid session") {
		t.Errorf("Error() = %q, want it to contain the service message", err.Error())
	}
	if !strings.Contains(err.Error(), "getDocument") {
		t.Errorf("Error() = %q, want it to contain the method name", err.Error())
	}
}

func TestClassify_ErrorListAlwaysLogged(t *testing.T) {
	// Logger at the default Info level: Debug traces are suppressed but
	// Error output is not, so failure detail must appear even when
	// verbose success tracing is off.
	var buf syncBuffer
	c := &Client{logger: hclog.New(&hclog.LoggerOptions{
		Output: &buf,
		Level:  hclog.Info,
	})}

	err := c.classify("updateDocument", "document_id=9", &Envelope{
		ResponseStatus: "FAILURE",
		Errors: []ResponseError{
			{Type: "INVALID_DATA", Message: "name__v too long"},
			{Type: "INVALID_DATA", Message: "type__v unknown"},
		},
	})
	if err == nil {
		t.Fatal("expected error")
	}

	var opErr *apierrors.OperationError
	if !errors.As(err, &opErr) {
		t.Fatalf("expected OperationError, got %T", err)
	}
	if opErr.Message != "Aborting" {
		t.Errorf("Message = %q, want Aborting", opErr.Message)
	}

	logged := buf.String()
	for _, want := range []string{"name__v too long", "type__v unknown", "updateDocument"} {
		if !strings.Contains(logged, want) {
			t.Errorf("log output missing %q:\n%s", want, logged)
		}
	}
}

func TestClassify_SuccessTraceOnlyAtDebug(t *testing.T) {
	var buf syncBuffer
	c := &Client{logger: hclog.New(&hclog.LoggerOptions{
		Output: &buf,
		Level:  hclog.Info,
	})}

	if err := c.classify("getBinder", "binder_id=42", &Envelope{ResponseStatus: "SUCCESS"}); err != nil {
		t.Fatalf("classify() error = %v", err)
	}
	if strings.Contains(buf.String(), "OK") {
		t.Error("success trace emitted at Info level")
	}

	var verbose syncBuffer
	c.logger = hclog.New(&hclog.LoggerOptions{
		Output: &verbose,
		Level:  hclog.Debug,
	})
	if err := c.classify("getBinder", "binder_id=42", &Envelope{ResponseStatus: "SUCCESS"}); err != nil {
		t.Fatalf("classify() error = %v", err)
	}
	if !strings.Contains(verbose.String(), "getBinder(binder_id=42): OK") {
		t.Errorf("verbose trace missing, got:\n%s", verbose.String())
	}
}

// syncBuffer is a goroutine-safe strings.Builder for capturing log output.
type syncBuffer struct {
	mu sync.Mutex
	b  strings.Builder
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.String()
}
