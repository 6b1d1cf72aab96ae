package veevavault

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// Binder is a document with binder__v set, plus its membership nodes in
// service order.
type Binder struct {
	Document
	Nodes []BinderNode
}

// BinderNode is one document's membership in a binder: its own node id
// (distinct from the document id, and what removal addresses) and its
// position.
type BinderNode struct {
	NodeID     string
	DocumentID int
	Order      int
	Name       string
}

// BinderNodeRef identifies a membership node for removal. DocumentID is
// optional context; only NodeID addresses the node on the service.
type BinderNodeRef struct {
	NodeID     string
	DocumentID int
}

// NodeIDs builds removal refs from bare node ids. Removal sequences
// built this way are identical to ones built from full refs with the
// same node ids.
func NodeIDs(ids ...string) []BinderNodeRef {
	refs := make([]BinderNodeRef, len(ids))
	for i, id := range ids {
		refs[i] = BinderNodeRef{NodeID: id}
	}
	return refs
}

// GetBinder retrieves a binder and its nodes by id.
func (c *Client) GetBinder(ctx context.Context, id int) (*Binder, error) {
	result, err := c.apiClient.GetBinder(ctx, id)
	if err != nil {
		return nil, wrapError(err)
	}

	binder := &Binder{Nodes: make([]BinderNode, 0, len(result.Nodes))}
	if err := decodeFields(result.Document, &binder.Document); err != nil {
		return nil, fmt.Errorf("decode binder %d: %w", id, err)
	}
	for _, n := range result.Nodes {
		binder.Nodes = append(binder.Nodes, BinderNode{
			NodeID:     n.NodeID,
			DocumentID: n.DocumentID,
			Order:      n.Order,
			Name:       n.Name,
		})
	}
	return binder, nil
}

// CreateBinder creates a binder from already-shaped form fields.
// Returns the new binder id.
func (c *Client) CreateBinder(ctx context.Context, fields url.Values) (int, error) {
	id, err := c.apiClient.CreateBinder(ctx, fields)
	if err != nil {
		return 0, wrapError(err)
	}
	return id, nil
}

// UpdateBinder updates a binder's metadata fields.
func (c *Client) UpdateBinder(ctx context.Context, id int, fields url.Values) (int, error) {
	updatedID, err := c.apiClient.UpdateBinder(ctx, id, fields)
	if err != nil {
		return 0, wrapError(err)
	}
	return updatedID, nil
}

// DeleteBinder deletes a binder by id.
func (c *Client) DeleteBinder(ctx context.Context, id int) error {
	return wrapError(c.apiClient.DeleteBinder(ctx, id))
}

// GetBinderDocuments returns the binder's membership nodes in service
// order. The read is a single call, so unlike the mutation paths it has
// no ordering hazard.
func (c *Client) GetBinderDocuments(ctx context.Context, binderID int) ([]BinderNode, error) {
	binder, err := c.GetBinder(ctx, binderID)
	if err != nil {
		return nil, err
	}
	return binder.Nodes, nil
}

// SetBinderDocuments adds documents to a binder in the exact order
// given, assigning positions 1..n. The service accepts one membership
// mutation per call and encodes position in an explicit field, so the
// calls are issued strictly sequentially; concurrent dispatch would
// race on position assignment and scramble the binder.
//
// The first failure stops the sequence and returns a *SequenceError;
// already-applied additions are not rolled back, so the binder then
// holds exactly the input's prefix of length SequenceError.Applied.
// An empty input makes no calls.
func (c *Client) SetBinderDocuments(ctx context.Context, binderID int, documentIDs []int) error {
	for i, docID := range documentIDs {
		if err := c.apiClient.AddBinderDocument(ctx, binderID, docID, i+1); err != nil {
			return &SequenceError{
				Op:       "setBinderDocuments",
				BinderID: binderID,
				Applied:  i,
				FailedID: "document_id=" + strconv.Itoa(docID),
				Err:      wrapError(err),
			}
		}
	}
	return nil
}

// RemoveBinderDocuments removes membership nodes from a binder, one
// DELETE per node in the order given, with the same strictly sequential
// execution and partial-failure semantics as SetBinderDocuments. Use
// NodeIDs to build refs from bare node ids.
func (c *Client) RemoveBinderDocuments(ctx context.Context, binderID int, refs []BinderNodeRef) error {
	for i, ref := range refs {
		if err := c.apiClient.RemoveBinderDocument(ctx, binderID, ref.NodeID); err != nil {
			return &SequenceError{
				Op:       "removeBinderDocuments",
				BinderID: binderID,
				Applied:  i,
				FailedID: "node_id=" + ref.NodeID,
				Err:      wrapError(err),
			}
		}
	}
	return nil
}
