// Package records shapes and validates the field sets sent to document
// and binder create/update calls. The client itself performs no
// field-level schema validation; callers build a record, validate it,
// and pass its form encoding to the resource operations.
package records

import (
	"net/url"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// DocumentRecord is the metadata field set for a document.
type DocumentRecord struct {
	// Name becomes name__v. Required.
	Name string
	// Type becomes type__v. Required.
	Type string
	// Subtype becomes subtype__v.
	Subtype string
	// Lifecycle becomes lifecycle__v. Required.
	Lifecycle string
	// Title becomes title__v.
	Title string
	// Extra fields are passed through verbatim, keyed by their wire
	// names. Values here do not override the named fields above.
	Extra map[string]string
}

// Validate checks the record's required fields.
func (r DocumentRecord) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Type, validation.Required),
		validation.Field(&r.Lifecycle, validation.Required),
	)
}

// Form returns the record as urlencoded form fields.
func (r DocumentRecord) Form() url.Values {
	form := url.Values{}
	for key, value := range r.Extra {
		form.Set(key, value)
	}
	form.Set("name__v", r.Name)
	form.Set("type__v", r.Type)
	form.Set("lifecycle__v", r.Lifecycle)
	if r.Subtype != "" {
		form.Set("subtype__v", r.Subtype)
	}
	if r.Title != "" {
		form.Set("title__v", r.Title)
	}
	return form
}

// BinderRecord is the metadata field set for a binder.
type BinderRecord struct {
	// Name becomes name__v. Required.
	Name string
	// Type becomes type__v. Required.
	Type string
	// Lifecycle becomes lifecycle__v. Required.
	Lifecycle string
	// Extra fields are passed through verbatim, keyed by their wire
	// names.
	Extra map[string]string
}

// Validate checks the record's required fields.
func (r BinderRecord) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Type, validation.Required),
		validation.Field(&r.Lifecycle, validation.Required),
	)
}

// Form returns the record as urlencoded form fields.
func (r BinderRecord) Form() url.Values {
	form := url.Values{}
	for key, value := range r.Extra {
		form.Set(key, value)
	}
	form.Set("name__v", r.Name)
	form.Set("type__v", r.Type)
	form.Set("lifecycle__v", r.Lifecycle)
	return form
}
