package reminders

import "context"

// Service is the reminder scheduler: creation, recurrence-aware completion
// and listing. Successor spawning happens synchronously inside
// ToggleCompletion; there is no background timer.
type Service interface {
	// Create adds a reminder for an existing pet
	Create(ctx context.Context, req CreateRequest) (*Reminder, error)

	// ToggleCompletion flips the completed flag. Completing a recurring
	// reminder atomically spawns its successor instance. Un-completing never
	// retracts an already-spawned successor.
	ToggleCompletion(ctx context.Context, id int64) (*Reminder, error)

	// ListByPet returns all reminders for the pet, pending and done
	ListByPet(ctx context.Context, petID int64) ([]*Reminder, error)

	// Delete removes a reminder. Spawned successors are independent rows and
	// are not cascaded.
	Delete(ctx context.Context, id int64) error
}

// PetChecker validates that the owning pet exists before a reminder is
// created.
type PetChecker interface {
	// Exists reports whether a pet with the given id exists
	Exists(ctx context.Context, petID int64) (bool, error)
}

// Repository is the data access interface for reminders
type Repository interface {
	// Create inserts a new reminder, ErrPetNotFound when the pet foreign key
	// fails
	Create(ctx context.Context, reminder *Reminder) (*Reminder, error)

	// GetByID retrieves a reminder by id, ErrReminderNotFound if unknown
	GetByID(ctx context.Context, id int64) (*Reminder, error)

	// SetCompleted persists the completed flag
	SetCompleted(ctx context.Context, id int64, completed bool) (*Reminder, error)

	// CompleteAndSpawn marks the reminder completed and inserts its successor
	// in one transaction, so a crash can't complete without spawning or spawn
	// without completing. The completion is guarded on completed = false;
	// when a concurrent toggle already completed the reminder the call flips
	// it back uncompleted and spawns nothing, so the same instance can never
	// spawn twice. Returns the reminder as this call left it.
	CompleteAndSpawn(ctx context.Context, id int64, successor *Reminder) (*Reminder, error)

	// ListByPet returns all reminders for the pet in storage order
	ListByPet(ctx context.Context, petID int64) ([]*Reminder, error)

	// Delete removes a reminder, ErrReminderNotFound if unknown
	Delete(ctx context.Context, id int64) error
}
