package pets

import "time"

// Pet is a pet profile from the registry. Pawhub only reads pet identity;
// profile editing lives outside the core.
type Pet struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	Name      string    `json:"name" db:"name"`
	Species   string    `json:"species" db:"species"`
	Breed     string    `json:"breed,omitempty" db:"breed"`
	OwnerID   int64     `json:"ownerId" db:"owner_id"`
	ID        int64     `json:"id" db:"id"`
}
