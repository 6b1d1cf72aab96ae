package veevavault

import (
	"context"
	"fmt"

	"github.com/veevavault/client-go/internal/api"
)

// Relationship links a source document version to a target document.
type Relationship struct {
	ID          int            `mapstructure:"id"`
	SourceDocID int            `mapstructure:"source_doc_id__v"`
	TargetDocID int            `mapstructure:"target_doc_id__v"`
	Type        string         `mapstructure:"relationship_type__v"`
	Fields      map[string]any `mapstructure:",remain"`
}

// RelationshipsPath derives the versioned relationships sub-resource
// path for a document version. Pure: equal inputs always produce equal
// paths. Version values are not validated; a bad pair fails remotely
// like any other call.
func RelationshipsPath(documentID, versionMajor, versionMinor int) string {
	return api.RelationshipsPath(documentID, versionMajor, versionMinor)
}

// GetDocumentRelationships lists the relationships of a specific
// document version.
func (c *Client) GetDocumentRelationships(ctx context.Context, documentID, versionMajor, versionMinor int) ([]Relationship, error) {
	data, err := c.apiClient.GetDocumentRelationships(ctx, documentID, versionMajor, versionMinor)
	if err != nil {
		return nil, wrapError(err)
	}

	rels := make([]Relationship, 0, len(data))
	for _, raw := range data {
		var rel Relationship
		if err := decodeFields(raw, &rel); err != nil {
			return nil, fmt.Errorf("decode relationship of document %d: %w", documentID, err)
		}
		rels = append(rels, rel)
	}
	return rels, nil
}

// CreateDocumentRelationship creates a relationship from a document
// version to a target document. Returns the new relationship id.
func (c *Client) CreateDocumentRelationship(ctx context.Context, documentID, versionMajor, versionMinor, targetDocID int, relationshipType string) (int, error) {
	id, err := c.apiClient.CreateDocumentRelationship(ctx, documentID, versionMajor, versionMinor, targetDocID, relationshipType)
	if err != nil {
		return 0, wrapError(err)
	}
	return id, nil
}

// DeleteDocumentRelationship removes a relationship by id from a
// document version.
func (c *Client) DeleteDocumentRelationship(ctx context.Context, documentID, versionMajor, versionMinor, relationshipID int) error {
	return wrapError(c.apiClient.DeleteDocumentRelationship(ctx, documentID, versionMajor, versionMinor, relationshipID))
}
