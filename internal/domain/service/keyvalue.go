package service

import "context"

// KeyValueStore is durable, device-scoped storage. It survives restarts
// and does not sync across devices.
type KeyValueStore interface {
	// Read returns the stored value, or (nil, nil) when the key is absent.
	Read(ctx context.Context, key string) ([]byte, error)

	// Write stores the value under key, replacing any previous value.
	Write(ctx context.Context, key string, value []byte) error
}

// KeyWatcher is an optional capability of a KeyValueStore: a store that
// can observe external writes to a key exposes them on the returned
// channel. Signals are edge-triggered and may coalesce; watchers re-read
// the key rather than rely on event payloads. The channel closes when ctx
// is done.
type KeyWatcher interface {
	Watch(ctx context.Context, key string) (<-chan struct{}, error)
}
