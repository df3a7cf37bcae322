package domain

import "context"

// Store defines CRUD over one remote resource collection. Implementations
// hold no item state; the list cache is the only in-memory copy.
type Store[T Item] interface {
	// ListAll fetches the full collection.
	ListAll(ctx context.Context) ([]T, error)

	// Create adds a new item; the server assigns its id and creation time.
	Create(ctx context.Context, fields Fields) (T, error)

	// Update applies a shallow merge of fields onto an existing item.
	Update(ctx context.Context, id string, fields Fields) (T, error)

	// Delete removes an item. Implementations treat ErrNotFound as
	// success so the operation is idempotent from the caller's view.
	Delete(ctx context.Context, id string) error

	// SetActive is a restricted update touching only the active flag.
	SetActive(ctx context.Context, id string, active bool) error
}
