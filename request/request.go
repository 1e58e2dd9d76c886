package request

import (
	"time"

	"github.com/google/uuid"
)

// ItemRequest is a free-text "looking for" post other users can answer by
// listing a matching item.
type ItemRequest struct {
	ID          uuid.UUID `json:"id"`
	Description string    `json:"description"`
	RequesterID uuid.UUID `json:"requesterId"`
	Created     time.Time `json:"created"`
}

// ItemReply is an item listed in answer to a request.
type ItemReply struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	OwnerID uuid.UUID `json:"ownerId"`
}

type ItemRequestView struct {
	ItemRequest
	Items []ItemReply `json:"items"`
}

type CreateItemRequest struct {
	Description string `json:"description" binding:"required"`
}
