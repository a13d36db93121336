package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"Pawhub/internal/core/pets"
)

type postgresPetRepo struct {
	db *sql.DB
}

// NewPetRepository creates a new PostgreSQL pet repository
func NewPetRepository(db *sql.DB) pets.Repository {
	return &postgresPetRepo{db: db}
}

func (r *postgresPetRepo) GetByID(ctx context.Context, id int64) (*pets.Pet, error) {
	query := `
		SELECT id, name, species, breed, owner_id, created_at
		FROM pets
		WHERE id = $1
	`

	var pet pets.Pet
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&pet.ID, &pet.Name, &pet.Species, &pet.Breed, &pet.OwnerID, &pet.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, pets.ErrPetNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get pet by id: %w", err)
	}

	return &pet, nil
}

func (r *postgresPetRepo) ListByOwner(ctx context.Context, ownerID int64) ([]*pets.Pet, error) {
	query := `
		SELECT id, name, species, breed, owner_id, created_at
		FROM pets
		WHERE owner_id = $1
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pets by owner: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var result []*pets.Pet
	for rows.Next() {
		var pet pets.Pet
		if err := rows.Scan(
			&pet.ID, &pet.Name, &pet.Species, &pet.Breed, &pet.OwnerID, &pet.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan pet: %w", err)
		}
		result = append(result, &pet)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating pets: %w", err)
	}

	return result, nil
}
