package booking

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusWaiting   Status = "WAITING"
	StatusApproved  Status = "APPROVED"
	StatusRejected  Status = "REJECTED"
	StatusCancelled Status = "CANCELLED"
)

// Booking is a reservation of one item by one user for the half-open
// interval [Start, End).
type Booking struct {
	ID     uuid.UUID `json:"id"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Status Status    `json:"status"`
	Item   ItemRef   `json:"item"`
	Booker UserRef   `json:"booker"`
}

// ItemRef is the booking's view of the booked item. OwnerID is carried for
// authorization checks and stays out of the JSON shape.
type ItemRef struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	OwnerID uuid.UUID `json:"-"`
}

type UserRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type CreateBookingRequest struct {
	ItemID uuid.UUID `json:"itemId" binding:"required"`
	Start  time.Time `json:"start" binding:"required"`
	End    time.Time `json:"end" binding:"required"`
}

// Approve resolves a WAITING booking to APPROVED or REJECTED. Any other
// starting status means the booking was already processed.
func (b *Booking) Approve(approved bool) error {
	if b.Status != StatusWaiting {
		return ErrAlreadyProcessed
	}

	if approved {
		b.Status = StatusApproved
	} else {
		b.Status = StatusRejected
	}

	return nil
}

// Cancel moves a WAITING or APPROVED booking to CANCELLED. REJECTED and
// CANCELLED are terminal with respect to cancellation.
func (b *Booking) Cancel() error {
	if b.Status != StatusWaiting && b.Status != StatusApproved {
		return ErrAlreadyProcessed
	}

	b.Status = StatusCancelled

	return nil
}

// Overlaps reports whether the half-open intervals [s1, e1) and [s2, e2)
// share at least one instant.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && s2.Before(e1)
}
