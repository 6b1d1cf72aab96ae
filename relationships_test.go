package veevavault

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
)

func TestRelationshipsPath_Pure(t *testing.T) {
	got := RelationshipsPath(42, 1, 0)
	want := "objects/documents/42/versions/1/0/relationships"
	if got != want {
		t.Errorf("RelationshipsPath(42, 1, 0) = %q, want %q", got, want)
	}
	if RelationshipsPath(42, 1, 0) != got {
		t.Error("repeated call disagrees")
	}

	seen := map[string]bool{got: true}
	for _, other := range []string{
		RelationshipsPath(43, 1, 0),
		RelationshipsPath(42, 2, 0),
		RelationshipsPath(42, 1, 1),
	} {
		if seen[other] {
			t.Errorf("distinct version tuple produced duplicate path %q", other)
		}
		seen[other] = true
	}
}

func TestGetDocumentRelationships(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/objects/documents/42/versions/1/0/relationships" {
			t.Errorf("path = %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"responseStatus": "SUCCESS",
			"relationships": []map[string]any{
				{"id": 5, "source_doc_id__v": 42, "target_doc_id__v": 77, "relationship_type__v": "supporting_documents__vs"},
			},
		})
	})

	rels, err := client.GetDocumentRelationships(context.Background(), 42, 1, 0)
	if err != nil {
		t.Fatalf("GetDocumentRelationships() error = %v", err)
	}
	if len(rels) != 1 {
		t.Fatalf("len(rels) = %d, want 1", len(rels))
	}
	rel := rels[0]
	if rel.ID != 5 || rel.SourceDocID != 42 || rel.TargetDocID != 77 {
		t.Errorf("rel = %+v", rel)
	}
	if rel.Type != "supporting_documents__vs" {
		t.Errorf("Type = %q", rel.Type)
	}
}

func TestCreateDocumentRelationship(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if r.URL.Path != "/objects/documents/42/versions/1/0/relationships" {
			t.Errorf("path = %s", r.URL.Path)
		}
		r.ParseForm()
		if r.PostForm.Get("target_doc_id__v") != "77" {
			t.Errorf("target_doc_id__v = %s, want 77", r.PostForm.Get("target_doc_id__v"))
		}
		if r.PostForm.Get("relationship_type__v") != "supporting_documents__vs" {
			t.Errorf("relationship_type__v = %s", r.PostForm.Get("relationship_type__v"))
		}
		json.NewEncoder(w).Encode(map[string]any{"responseStatus": "SUCCESS", "id": 5})
	})

	id, err := client.CreateDocumentRelationship(context.Background(), 42, 1, 0, 77, "supporting_documents__vs")
	if err != nil {
		t.Fatalf("CreateDocumentRelationship() error = %v", err)
	}
	if id != 5 {
		t.Errorf("id = %d, want 5", id)
	}
}

func TestDeleteDocumentRelationship(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("method = %s, want DELETE", r.Method)
		}
		if r.URL.Path != "/objects/documents/42/versions/1/0/relationships/5" {
			t.Errorf("path = %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]any{"responseStatus": "SUCCESS"})
	})

	if err := client.DeleteDocumentRelationship(context.Background(), 42, 1, 0, 5); err != nil {
		t.Fatalf("DeleteDocumentRelationship() error = %v", err)
	}
}
