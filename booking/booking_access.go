package booking

import "github.com/google/uuid"

// Action is something a caller wants to do to a booking.
type Action string

const (
	ActionApprove Action = "approve"
	ActionCancel  Action = "cancel"
	ActionView    Action = "view"
)

// Authorize decides whether callerID may perform action on b:
// approving takes the item owner, cancelling takes the booker, viewing
// takes either. Everyone else gets ErrAccessDenied, so an unrelated caller
// learns that the booking exists but not what is in it.
func Authorize(callerID uuid.UUID, b Booking, action Action) error {
	isBooker := callerID == b.Booker.ID
	isOwner := callerID == b.Item.OwnerID

	allowed := false

	switch action {
	case ActionApprove:
		allowed = isOwner
	case ActionCancel:
		allowed = isBooker
	case ActionView:
		allowed = isBooker || isOwner
	}

	if !allowed {
		return ErrAccessDenied
	}

	return nil
}
