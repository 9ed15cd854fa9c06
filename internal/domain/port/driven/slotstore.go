package driven

import "context"

// SlotStore defines the driven port for durable named key-value slots. Each
// slot holds one opaque value that is always read and written as a whole.
type SlotStore interface {
	// Get returns the value stored under name.
	// Returns (nil, nil) if the slot has never been written.
	Get(ctx context.Context, name string) ([]byte, error)

	// Set stores value under name, replacing any previous value.
	Set(ctx context.Context, name string, value []byte) error

	// Delete removes the slot. Deleting a missing slot is not an error.
	Delete(ctx context.Context, name string) error
}
