// Package storage is the key/value persistence behind the storefront,
// the server-side stand-in for browser local storage.
package storage

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("storage: key not found")

// Store is a string-keyed store of serialized values. A ttl of 0 means no expiry.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// LoadJSON decodes the value under key. ok is false when the key is absent.
func LoadJSON[T any](ctx context.Context, s Store, key string) (v T, ok bool, err error) {
	raw, err := s.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return v, false, nil
	}
	if err != nil {
		return v, false, errors.Wrapf(err, "load %s", key)
	}
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return v, false, errors.Wrapf(err, "decode %s", key)
	}
	return v, true, nil
}

// SaveJSON overwrites key with the JSON encoding of v.
func SaveJSON(ctx context.Context, s Store, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "encode %s", key)
	}
	return errors.Wrapf(s.Set(ctx, key, string(b), 0), "save %s", key)
}
