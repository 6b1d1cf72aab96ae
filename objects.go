package veevavault

import (
	"context"
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// VaultObject is a generic object returned by listing endpoints. Beyond
// the id and name the client treats its fields as opaque.
type VaultObject struct {
	ID     int            `mapstructure:"id"`
	Name   string         `mapstructure:"name__v"`
	Fields map[string]any `mapstructure:",remain"`
}

// ListObjects lists all vault objects of the given type,
// e.g. "documents" or "binders".
func (c *Client) ListObjects(ctx context.Context, objectType string) ([]VaultObject, error) {
	data, err := c.apiClient.ListObjects(ctx, objectType)
	if err != nil {
		return nil, wrapError(err)
	}

	objects := make([]VaultObject, 0, len(data))
	for _, raw := range data {
		var obj VaultObject
		if err := decodeFields(raw, &obj); err != nil {
			return nil, fmt.Errorf("decode %s object: %w", objectType, err)
		}
		objects = append(objects, obj)
	}
	return objects, nil
}

// decodeFields decodes a loosely-typed response map into a struct,
// collecting unrecognized fields into the struct's remain map. JSON
// numbers arrive as float64 and are coerced to the target types.
func decodeFields(raw map[string]any, target any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(raw)
}
