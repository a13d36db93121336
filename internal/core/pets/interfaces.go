package pets

import "context"

// Service is the pet registry boundary: identity lookups only.
type Service interface {
	// GetByID retrieves a pet by id, ErrPetNotFound if unknown
	GetByID(ctx context.Context, id int64) (*Pet, error)

	// ListByOwner retrieves all pets owned by the given user
	ListByOwner(ctx context.Context, ownerID int64) ([]*Pet, error)
}

// Repository is the data access interface for pets
type Repository interface {
	GetByID(ctx context.Context, id int64) (*Pet, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]*Pet, error)
}
