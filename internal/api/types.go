package api

// authResponse is the body of the auth endpoint.
type authResponse struct {
	Envelope
	SessionID string `json:"sessionId"`
}

// listResponse is the body of a list-by-type call.
type listResponse struct {
	Envelope
	Data []map[string]any `json:"data"`
}

// documentResponse is the body of a single-document read.
type documentResponse struct {
	Envelope
	Document map[string]any `json:"document"`
}

// idResponse is the body of create/update calls that return the
// affected object's id.
type idResponse struct {
	Envelope
	ID int `json:"id"`
}

// BinderNode is one membership record inside a binder: which document,
// at which position. Its id is distinct from the document id and is
// what the remove endpoint addresses.
type BinderNode struct {
	NodeID     string `json:"id"`
	DocumentID int    `json:"document_id__v"`
	Order      int    `json:"order__v"`
	Name       string `json:"name__v"`
	Type       string `json:"type__v"`
}

// binderResponse is the body of a binder read: the binder's own
// document fields plus its node list.
type binderResponse struct {
	Envelope
	Document map[string]any `json:"document"`
	Binder   struct {
		Nodes []struct {
			Properties BinderNode `json:"properties"`
		} `json:"nodes"`
	} `json:"binder"`
}

// BinderResult is the projected result of a binder read.
type BinderResult struct {
	Document map[string]any
	Nodes    []BinderNode
}

// relationshipsResponse is the body of a relationships read.
type relationshipsResponse struct {
	Envelope
	Relationships []map[string]any `json:"relationships"`
}
