package pets

import "context"

type petService struct {
	repo Repository
}

// NewService creates a new pet registry service
func NewService(repo Repository) Service {
	return &petService{repo: repo}
}

func (s *petService) GetByID(ctx context.Context, id int64) (*Pet, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *petService) ListByOwner(ctx context.Context, ownerID int64) ([]*Pet, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}
