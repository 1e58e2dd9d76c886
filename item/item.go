package item

import (
	"time"

	"github.com/google/uuid"
)

type Item struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Available   bool       `json:"available"`
	OwnerID     uuid.UUID  `json:"ownerId"`
	RequestID   *uuid.UUID `json:"requestId,omitempty"`
}

type Comment struct {
	ID         uuid.UUID `json:"id"`
	Text       string    `json:"text"`
	ItemID     uuid.UUID `json:"-"`
	AuthorID   uuid.UUID `json:"-"`
	AuthorName string    `json:"authorName"`
	Created    time.Time `json:"created"`
}

// BookingStamp is the slice of a booking an item view exposes to the owner.
type BookingStamp struct {
	ID       uuid.UUID `json:"id"`
	BookerID uuid.UUID `json:"bookerId"`
}

// ItemView is an item as returned by the read endpoints: comments for
// everyone, the surrounding calendar only for the owner.
type ItemView struct {
	Item
	Comments    []Comment     `json:"comments"`
	LastBooking *BookingStamp `json:"lastBooking,omitempty"`
	NextBooking *BookingStamp `json:"nextBooking,omitempty"`
}

type CreateItemRequest struct {
	Name        string     `json:"name" binding:"required"`
	Description string     `json:"description" binding:"required"`
	Available   *bool      `json:"available" binding:"required"`
	RequestID   *uuid.UUID `json:"requestId"`
}

type UpdateItemRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
}

type CreateCommentRequest struct {
	Text string `json:"text" binding:"required"`
}
