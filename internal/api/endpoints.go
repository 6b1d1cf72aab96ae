package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// Authenticate exchanges credentials for a session id at <host>auth.
// On success the session id is stored on the client and sent as the
// Authorization header on every subsequent call.
func (c *Client) Authenticate(ctx context.Context, username, password string) error {
	form := url.Values{
		"username": {username},
		"password": {password},
	}

	var resp authResponse
	err := c.do(ctx, call{
		method: http.MethodPost,
		path:   "auth",
		form:   form,
		name:   "authenticate",
		args:   "username=" + username,
		noAuth: true,
	}, &resp)
	if err != nil {
		return err
	}

	c.sessionID = resp.SessionID
	return nil
}

// ListObjects lists all vault objects of the given type,
// e.g. "documents" or "binders".
func (c *Client) ListObjects(ctx context.Context, objectType string) ([]map[string]any, error) {
	var resp listResponse
	err := c.do(ctx, call{
		path: "objects/" + url.PathEscape(objectType),
		name: "listObjects",
		args: "type=" + objectType,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// GetDocument retrieves a document's fields by id.
func (c *Client) GetDocument(ctx context.Context, id int) (map[string]any, error) {
	var resp documentResponse
	err := c.do(ctx, call{
		path: "objects/documents/" + strconv.Itoa(id),
		name: "getDocument",
		args: docArgs(id),
	}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Document, nil
}

// CreateDocument creates a document from form fields, optionally
// carrying its file content as a multipart body. Returns the new id.
func (c *Client) CreateDocument(ctx context.Context, fields url.Values, file *File) (int, error) {
	var resp idResponse
	err := c.do(ctx, call{
		method: http.MethodPost,
		path:   "objects/documents",
		form:   fields,
		file:   file,
		name:   "createDocument",
		args:   "name=" + fields.Get("name__v"),
	}, &resp)
	if err != nil {
		return 0, err
	}
	return resp.ID, nil
}

// UpdateDocument updates a document's metadata fields.
func (c *Client) UpdateDocument(ctx context.Context, id int, fields url.Values) (int, error) {
	var resp idResponse
	err := c.do(ctx, call{
		method: http.MethodPut,
		path:   "objects/documents/" + strconv.Itoa(id),
		form:   fields,
		name:   "updateDocument",
		args:   docArgs(id),
	}, &resp)
	if err != nil {
		return 0, err
	}
	return resp.ID, nil
}

// DeleteDocument deletes a document by id.
func (c *Client) DeleteDocument(ctx context.Context, id int) error {
	return c.do(ctx, call{
		method: http.MethodDelete,
		path:   "objects/documents/" + strconv.Itoa(id),
		name:   "deleteDocument",
		args:   docArgs(id),
	}, nil)
}

// UpdateDocumentContent replaces the file content of an existing,
// locked document. The service rejects this call on an unlocked
// document; callers go through the lock protocol.
func (c *Client) UpdateDocumentContent(ctx context.Context, id int, file *File) error {
	return c.do(ctx, call{
		method: http.MethodPost,
		path:   "objects/documents/" + strconv.Itoa(id),
		form:   url.Values{"type": {"update"}},
		file:   file,
		name:   "updateDocumentContent",
		args:   docArgs(id),
	}, nil)
}

// LockDocument checks out a document for exclusive content mutation.
func (c *Client) LockDocument(ctx context.Context, id int) error {
	return c.do(ctx, call{
		method: http.MethodPost,
		path:   "objects/documents/" + strconv.Itoa(id) + "/lock",
		name:   "lockDocument",
		args:   docArgs(id),
	}, nil)
}

// UnlockDocument checks a document back in.
func (c *Client) UnlockDocument(ctx context.Context, id int) error {
	return c.do(ctx, call{
		method: http.MethodDelete,
		path:   "objects/documents/" + strconv.Itoa(id) + "/lock",
		name:   "unlockDocument",
		args:   docArgs(id),
	}, nil)
}

// GetBinder retrieves a binder's document fields and membership nodes.
func (c *Client) GetBinder(ctx context.Context, id int) (*BinderResult, error) {
	var resp binderResponse
	err := c.do(ctx, call{
		path: "objects/binders/" + strconv.Itoa(id),
		name: "getBinder",
		args: binderArgs(id),
	}, &resp)
	if err != nil {
		return nil, err
	}

	result := &BinderResult{
		Document: resp.Document,
		Nodes:    make([]BinderNode, 0, len(resp.Binder.Nodes)),
	}
	for _, n := range resp.Binder.Nodes {
		result.Nodes = append(result.Nodes, n.Properties)
	}
	return result, nil
}

// CreateBinder creates a binder from form fields. Returns the new id.
func (c *Client) CreateBinder(ctx context.Context, fields url.Values) (int, error) {
	var resp idResponse
	err := c.do(ctx, call{
		method: http.MethodPost,
		path:   "objects/binders",
		form:   fields,
		name:   "createBinder",
		args:   "name=" + fields.Get("name__v"),
	}, &resp)
	if err != nil {
		return 0, err
	}
	return resp.ID, nil
}

// UpdateBinder updates a binder's metadata fields.
func (c *Client) UpdateBinder(ctx context.Context, id int, fields url.Values) (int, error) {
	var resp idResponse
	err := c.do(ctx, call{
		method: http.MethodPut,
		path:   "objects/binders/" + strconv.Itoa(id),
		form:   fields,
		name:   "updateBinder",
		args:   binderArgs(id),
	}, &resp)
	if err != nil {
		return 0, err
	}
	return resp.ID, nil
}

// DeleteBinder deletes a binder by id.
func (c *Client) DeleteBinder(ctx context.Context, id int) error {
	return c.do(ctx, call{
		method: http.MethodDelete,
		path:   "objects/binders/" + strconv.Itoa(id),
		name:   "deleteBinder",
		args:   binderArgs(id),
	}, nil)
}

// AddBinderDocument adds one document to a binder at the given
// position. The service accepts a single membership mutation per call;
// ordering across documents is the caller's responsibility.
func (c *Client) AddBinderDocument(ctx context.Context, binderID, documentID, order int) error {
	form := url.Values{
		"document_id__v": {strconv.Itoa(documentID)},
		"order__v":       {strconv.Itoa(order)},
	}
	return c.do(ctx, call{
		method: http.MethodPost,
		path:   "objects/binders/" + strconv.Itoa(binderID) + "/documents",
		form:   form,
		name:   "addBinderDocument",
		args:   fmt.Sprintf("binder_id=%d document_id=%d order=%d", binderID, documentID, order),
	}, nil)
}

// RemoveBinderDocument removes one membership node from a binder. The
// node id, not the document id, addresses the membership.
func (c *Client) RemoveBinderDocument(ctx context.Context, binderID int, nodeID string) error {
	return c.do(ctx, call{
		method: http.MethodDelete,
		path:   "objects/binders/" + strconv.Itoa(binderID) + "/documents/" + url.PathEscape(nodeID),
		name:   "removeBinderDocument",
		args:   fmt.Sprintf("binder_id=%d node_id=%s", binderID, nodeID),
	}, nil)
}

// RelationshipsPath derives the versioned relationships sub-resource
// path for a document version. It performs no validation; an invalid
// version pair fails remotely and classifies like any other call.
func RelationshipsPath(documentID, versionMajor, versionMinor int) string {
	return fmt.Sprintf("objects/documents/%d/versions/%d/%d/relationships",
		documentID, versionMajor, versionMinor)
}

// GetDocumentRelationships lists the relationships of a document version.
func (c *Client) GetDocumentRelationships(ctx context.Context, documentID, versionMajor, versionMinor int) ([]map[string]any, error) {
	var resp relationshipsResponse
	err := c.do(ctx, call{
		path: RelationshipsPath(documentID, versionMajor, versionMinor),
		name: "getDocumentRelationships",
		args: versionArgs(documentID, versionMajor, versionMinor),
	}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Relationships, nil
}

// CreateDocumentRelationship creates a relationship from a document
// version to a target document. Returns the new relationship id.
func (c *Client) CreateDocumentRelationship(ctx context.Context, documentID, versionMajor, versionMinor, targetDocID int, relationshipType string) (int, error) {
	form := url.Values{
		"target_doc_id__v":     {strconv.Itoa(targetDocID)},
		"relationship_type__v": {relationshipType},
	}
	var resp idResponse
	err := c.do(ctx, call{
		method: http.MethodPost,
		path:   RelationshipsPath(documentID, versionMajor, versionMinor),
		form:   form,
		name:   "createDocumentRelationship",
		args: fmt.Sprintf("%s target_doc_id=%d type=%s",
			versionArgs(documentID, versionMajor, versionMinor), targetDocID, relationshipType),
	}, &resp)
	if err != nil {
		return 0, err
	}
	return resp.ID, nil
}

// DeleteDocumentRelationship removes a relationship by id.
func (c *Client) DeleteDocumentRelationship(ctx context.Context, documentID, versionMajor, versionMinor, relationshipID int) error {
	return c.do(ctx, call{
		method: http.MethodDelete,
		path:   RelationshipsPath(documentID, versionMajor, versionMinor) + "/" + strconv.Itoa(relationshipID),
		name:   "deleteDocumentRelationship",
		args: fmt.Sprintf("%s relationship_id=%d",
			versionArgs(documentID, versionMajor, versionMinor), relationshipID),
	}, nil)
}

func docArgs(id int) string {
	return fmt.Sprintf("document_id=%d", id)
}

func binderArgs(id int) string {
	return fmt.Sprintf("binder_id=%d", id)
}

func versionArgs(id, major, minor int) string {
	return fmt.Sprintf("document_id=%d version=%d.%d", id, major, minor)
}
