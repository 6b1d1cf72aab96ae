package veevavault

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"github.com/veevavault/client-go/internal/api"
)

// Document is a Vault document. Identity is the id; a specific version
// is addressed by (id, MajorVersion, MinorVersion). Fields holds every
// type-specific field the service returned beyond the ones modeled
// here.
type Document struct {
	ID           int            `mapstructure:"id"`
	MajorVersion int            `mapstructure:"major_version_number__v"`
	MinorVersion int            `mapstructure:"minor_version_number__v"`
	Binder       bool           `mapstructure:"binder__v"`
	Fields       map[string]any `mapstructure:",remain"`
}

// Name returns the document's name__v field, or "" when absent.
func (d *Document) Name() string {
	name, _ := d.Fields["name__v"].(string)
	return name
}

// File is file content attached to a create or content-update call.
type File struct {
	Name    string
	Content io.Reader
}

func (f *File) api() *api.File {
	if f == nil {
		return nil
	}
	return &api.File{Field: "file", Name: f.Name, Content: f.Content}
}

// GetDocument retrieves a document by id.
func (c *Client) GetDocument(ctx context.Context, id int) (*Document, error) {
	raw, err := c.apiClient.GetDocument(ctx, id)
	if err != nil {
		return nil, wrapError(err)
	}

	var doc Document
	if err := decodeFields(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode document %d: %w", id, err)
	}
	return &doc, nil
}

// CreateDocument creates a document from already-shaped form fields
// (see the records package) and optional file content, sent as a
// multipart body. Returns the new document id; the service does not
// return the full document, so callers needing fields refetch.
func (c *Client) CreateDocument(ctx context.Context, fields url.Values, file *File) (int, error) {
	id, err := c.apiClient.CreateDocument(ctx, fields, file.api())
	if err != nil {
		return 0, wrapError(err)
	}
	return id, nil
}

// UpdateDocument updates a document's metadata fields. File content on
// an existing document cannot be updated this way; use
// UpdateDocumentFile, which drives the lock protocol.
func (c *Client) UpdateDocument(ctx context.Context, id int, fields url.Values) (int, error) {
	updatedID, err := c.apiClient.UpdateDocument(ctx, id, fields)
	if err != nil {
		return 0, wrapError(err)
	}
	return updatedID, nil
}

// DeleteDocument deletes a document by id.
func (c *Client) DeleteDocument(ctx context.Context, id int) error {
	return wrapError(c.apiClient.DeleteDocument(ctx, id))
}

// LockDocument checks out a document for exclusive content mutation.
func (c *Client) LockDocument(ctx context.Context, id int) error {
	return wrapError(c.apiClient.LockDocument(ctx, id))
}

// UnlockDocument checks a document back in.
func (c *Client) UnlockDocument(ctx context.Context, id int) error {
	return wrapError(c.apiClient.UnlockDocument(ctx, id))
}

// UpdateDocumentFile replaces the file content of an existing document.
// The service forbids overwriting content on an unlocked document, so
// this drives the full lock protocol: lock, multipart content update,
// unlock. Any step failure surfaces as a *LockError naming the stage.
//
// When the content update fails, a compensating unlock is still
// attempted so the document is not left checked out; LockError.Unlocked
// reports whether that succeeded.
//
// Locking can fail on a just-created document the service has not
// finished initializing; callers should confirm document state before
// updating content immediately after create.
func (c *Client) UpdateDocumentFile(ctx context.Context, id int, file File) error {
	if err := c.apiClient.LockDocument(ctx, id); err != nil {
		return &LockError{
			DocumentID: id,
			Stage:      StageLock,
			Unlocked:   true, // lock never taken
			Err:        wrapError(err),
		}
	}

	if err := c.apiClient.UpdateDocumentContent(ctx, id, file.api()); err != nil {
		unlockErr := c.apiClient.UnlockDocument(ctx, id)
		return &LockError{
			DocumentID: id,
			Stage:      StageUpdate,
			Unlocked:   unlockErr == nil,
			Err:        wrapError(err),
			UnlockErr:  wrapError(unlockErr),
		}
	}

	if err := c.apiClient.UnlockDocument(ctx, id); err != nil {
		return &LockError{
			DocumentID: id,
			Stage:      StageUnlock,
			Unlocked:   false,
			Err:        wrapError(err),
		}
	}

	return nil
}
