package veevavault

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// newTestClient authenticates a client against a server that answers
// /auth itself and delegates everything else to handler.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth" {
			json.NewEncoder(w).Encode(map[string]any{"responseStatus": "SUCCESS", "sessionId": "sess-test"})
			return
		}
		if handler == nil {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			return
		}
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	client, err := Authenticate(context.Background(), Credentials{
		Host:     server.URL,
		Username: "u",
		Password: "p",
	})
	if err != nil {
		t.Fatalf("Authenticate() error = %v", err)
	}
	return client
}

func TestAuthenticate_NormalizesHost(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"responseStatus": "SUCCESS", "sessionId": "s"})
	}))
	defer server.Close()

	for _, host := range []string{
		server.URL,
		server.URL + "/",
		server.URL + "///",
		"  " + server.URL + "/  ",
	} {
		client, err := Authenticate(context.Background(), Credentials{Host: host, Username: "u", Password: "p"})
		if err != nil {
			t.Fatalf("Authenticate(%q) error = %v", host, err)
		}
		if client.Host() != server.URL+"/" {
			t.Errorf("Host() = %q for input %q, want %q", client.Host(), host, server.URL+"/")
		}
	}
}

func TestAuthenticate_RequiresCredentials(t *testing.T) {
	_, err := Authenticate(context.Background(), Credentials{Host: "https://example.com"})
	if !errors.Is(err, ErrMissingCredentials) {
		t.Errorf("error = %v, want ErrMissingCredentials", err)
	}

	_, err = Authenticate(context.Background(), Credentials{Username: "u", Password: "p"})
	if !errors.Is(err, ErrMissingHost) {
		t.Errorf("error = %v, want ErrMissingHost", err)
	}
}

func TestAuthenticate_Failure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"responseStatus":  "FAILURE",
			"responseMessage": "Authentication failed for user u",
		})
	}))
	defer server.Close()

	client, err := Authenticate(context.Background(), Credentials{Host: server.URL, Username: "u", Password: "bad"})
	if client != nil {
		t.Error("no client must be returned on auth failure")
	}
	if !errors.Is(err, ErrAuthenticationFailed) {
		t.Errorf("errors.Is(err, ErrAuthenticationFailed) = false for %v", err)
	}

	var authErr *AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("expected *AuthError, got %T", err)
	}
	if !strings.Contains(authErr.Error(), "Authentication failed for user u") {
		t.Errorf("Error() = %q, want service message included", authErr.Error())
	}
}

func TestClient_SessionID(t *testing.T) {
	client := newTestClient(t, nil)
	if client.SessionID() != "sess-test" {
		t.Errorf("SessionID() = %q, want sess-test", client.SessionID())
	}
}

func TestOperationError_SurfacesServiceMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"responseStatus":  "FAILURE",
			"responseMessage": "Invalid session",
		})
	})

	_, err := client.GetDocument(context.Background(), 7)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, ErrOperationFailed) {
		t.Errorf("errors.Is(err, ErrOperationFailed) = false for %v", err)
	}

	var opErr *OperationError
	if !errors.As(err, &opErr) {
		t.Fatalf("expected *OperationError, got %T", err)
	}
	if !strings.Contains(opErr.Error(), "Invalid session") {
		t.Errorf("Error() = %q, want literal service message", opErr.Error())
	}
	if opErr.Method != "getDocument" {
		t.Errorf("Method = %q, want getDocument", opErr.Method)
	}
	if opErr.Args != "document_id=7" {
		t.Errorf("Args = %q, want document_id=7", opErr.Args)
	}
}

func TestListObjects(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/objects/documents" {
			t.Errorf("path = %s, want /objects/documents", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"responseStatus": "SUCCESS",
			"data": []map[string]any{
				{"id": 1, "name__v": "First", "status__v": "active"},
				{"id": 2, "name__v": "Second"},
			},
		})
	})

	objects, err := client.ListObjects(context.Background(), "documents")
	if err != nil {
		t.Fatalf("ListObjects() error = %v", err)
	}
	if len(objects) != 2 {
		t.Fatalf("len(objects) = %d, want 2", len(objects))
	}
	if objects[0].ID != 1 || objects[0].Name != "First" {
		t.Errorf("objects[0] = %+v", objects[0])
	}
	if objects[0].Fields["status__v"] != "active" {
		t.Errorf("Fields[status__v] = %v, want active", objects[0].Fields["status__v"])
	}
}
