package reminders

import "time"

// Recurrence is the calendar period by which a completed reminder's due date
// advances to produce its successor.
type Recurrence string

const (
	RecurrenceNone    Recurrence = "None"
	RecurrenceDaily   Recurrence = "Daily"
	RecurrenceWeekly  Recurrence = "Weekly"
	RecurrenceMonthly Recurrence = "Monthly"
)

// ValidRecurrence reports whether r is one of the enumerated values
func ValidRecurrence(r Recurrence) bool {
	switch r {
	case RecurrenceNone, RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly:
		return true
	}
	return false
}

// Reminder is one care task instance for a pet. Completing a recurring
// reminder spawns a fresh successor instance; the completed one stays behind
// as history.
type Reminder struct {
	DueAt      time.Time  `json:"date" db:"due_at"`
	CreatedAt  time.Time  `json:"createdAt" db:"created_at"`
	Title      string     `json:"title" db:"title"`
	Type       string     `json:"type" db:"type"`
	Recurrence Recurrence `json:"recurrence" db:"recurrence"`
	PetID      int64      `json:"petId" db:"pet_id"`
	ID         int64      `json:"id" db:"id"`
	Completed  bool       `json:"completed" db:"completed"`
}

// Successor builds the next instance of a recurring reminder: same pet, title,
// type and recurrence, not completed, due one recurrence unit after the
// original due date (not after the completion time).
func (r *Reminder) Successor() *Reminder {
	return &Reminder{
		PetID:      r.PetID,
		Title:      r.Title,
		Type:       r.Type,
		Recurrence: r.Recurrence,
		DueAt:      NextDue(r.DueAt, r.Recurrence),
		Completed:  false,
	}
}

// NextDue advances a due date by one recurrence unit. Monthly is
// calendar-aware: same day next month, with the day clamped for short months
// (Jan 31 -> Feb 28, or Feb 29 in leap years).
func NextDue(due time.Time, recurrence Recurrence) time.Time {
	switch recurrence {
	case RecurrenceDaily:
		return due.AddDate(0, 0, 1)
	case RecurrenceWeekly:
		return due.AddDate(0, 0, 7)
	case RecurrenceMonthly:
		return addMonthClamped(due)
	}
	return due
}

// addMonthClamped adds one calendar month, clamping the day-of-month instead
// of letting time.AddDate normalize Jan 31 into March.
func addMonthClamped(t time.Time) time.Time {
	year, month, day := t.Date()
	hour, min, sec := t.Clock()

	// Last day of the target month: day zero of the month after it
	lastDay := time.Date(year, month+2, 0, 0, 0, 0, 0, t.Location()).Day()
	if day > lastDay {
		day = lastDay
	}

	return time.Date(year, month+1, day, hour, min, sec, t.Nanosecond(), t.Location())
}

// CreateRequest is the input for creating a reminder
type CreateRequest struct {
	Title      string     `json:"title"`
	Type       string     `json:"type"`
	DueAt      time.Time  `json:"date"`
	Recurrence Recurrence `json:"recurrence"`
	PetID      int64      `json:"petId"`
}
