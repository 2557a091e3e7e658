package storage

import (
	"context"
	"io"
)

// ObjectStore persists uploaded documents. Put returns a durable reference
// that stays valid for the life of the stored object; ResolveURL turns that
// reference into a fetchable URL at read time, so any expiry lives on the
// link and never on the stored reference.
type ObjectStore interface {
	Put(ctx context.Context, key, contentType string, body io.Reader) (string, error)
	ResolveURL(ref string) (string, error)
}
