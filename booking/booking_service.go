package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/gearshare/gearshare-backend/item"
	"github.com/gearshare/gearshare-backend/user"
)

type BookingRepository interface {
	InsertBooking(ctx context.Context, b Booking) (Booking, error)
	GetBookingByID(ctx context.Context, id uuid.UUID) (Booking, error)
	GetBookingsByBooker(ctx context.Context, bookerID uuid.UUID) ([]Booking, error)
	GetBookingsByOwner(ctx context.Context, ownerID uuid.UUID) ([]Booking, error)
	ConfirmBooking(ctx context.Context, b Booking) error
	SetBookingStatus(ctx context.Context, id uuid.UUID, status Status, from []Status) error
	ExistsApprovedOverlap(ctx context.Context, itemID uuid.UUID, start, end time.Time) (bool, error)
	HasFinishedBooking(ctx context.Context, itemID, bookerID uuid.UUID, now time.Time) (bool, error)
	GetLastBooking(ctx context.Context, itemID uuid.UUID, now time.Time) (*Booking, error)
	GetNextBooking(ctx context.Context, itemID uuid.UUID, now time.Time) (*Booking, error)
}

type UserDirectory interface {
	GetUserByID(ctx context.Context, id uuid.UUID) (user.User, error)
}

type ItemCatalog interface {
	GetItemByID(ctx context.Context, itemID uuid.UUID) (item.Item, error)
}

// Service owns the booking lifecycle: creation, approval, rejection,
// cancellation and the read paths. All status transitions go through here.
type Service struct {
	repo  BookingRepository
	users UserDirectory
	items ItemCatalog
}

func NewService(repo BookingRepository, users UserDirectory, items ItemCatalog) *Service {
	return &Service{repo: repo, users: users, items: items}
}

// CreateBooking validates the interval and the item, rejects intervals
// colliding with an approved booking and persists the booking as WAITING.
// Pending requests may overlap each other; the calendar is only blocked by
// approved bookings.
func (s *Service) CreateBooking(ctx context.Context, bookerID uuid.UUID, req CreateBookingRequest) (Booking, error) {
	if req.Start.IsZero() || req.End.IsZero() || !req.Start.Before(req.End) || req.Start.Before(time.Now()) {
		return Booking{}, ErrInvalidInterval
	}

	booker, err := s.users.GetUserByID(ctx, bookerID)

	if err != nil {
		return Booking{}, err
	}

	booked, err := s.items.GetItemByID(ctx, req.ItemID)

	if err != nil {
		return Booking{}, err
	}

	if !booked.Available {
		return Booking{}, ErrItemUnavailable
	}

	if booked.OwnerID == bookerID {
		return Booking{}, ErrOwnItem
	}

	taken, err := s.repo.ExistsApprovedOverlap(ctx, req.ItemID, req.Start, req.End)

	if err != nil {
		return Booking{}, err
	}

	if taken {
		return Booking{}, ErrIntervalTaken
	}

	b := Booking{
		ID:     uuid.New(),
		Start:  req.Start,
		End:    req.End,
		Status: StatusWaiting,
		Item:   ItemRef{ID: booked.ID, Name: booked.Name, OwnerID: booked.OwnerID},
		Booker: UserRef{ID: booker.ID, Name: booker.Name},
	}

	return s.repo.InsertBooking(ctx, b)
}

// ApproveBooking resolves a WAITING booking. Only the item owner may call
// it. An approval is checked against the approved calendar again, so the
// second of two overlapping pending requests cannot slip through.
func (s *Service) ApproveBooking(ctx context.Context, callerID, bookingID uuid.UUID, approved bool) (Booking, error) {
	b, err := s.repo.GetBookingByID(ctx, bookingID)

	if err != nil {
		return Booking{}, err
	}

	if err := Authorize(callerID, b, ActionApprove); err != nil {
		return Booking{}, err
	}

	if err := b.Approve(approved); err != nil {
		return Booking{}, err
	}

	if b.Status == StatusApproved {
		err = s.repo.ConfirmBooking(ctx, b)
	} else {
		err = s.repo.SetBookingStatus(ctx, b.ID, StatusRejected, []Status{StatusWaiting})
	}

	if err != nil {
		return Booking{}, err
	}

	return b, nil
}

// CancelBooking moves a WAITING or APPROVED booking to CANCELLED. Only the
// booker may cancel; the item owner is deliberately denied.
func (s *Service) CancelBooking(ctx context.Context, callerID, bookingID uuid.UUID) (Booking, error) {
	b, err := s.repo.GetBookingByID(ctx, bookingID)

	if err != nil {
		return Booking{}, err
	}

	if err := Authorize(callerID, b, ActionCancel); err != nil {
		return Booking{}, err
	}

	previous := b.Status

	if err := b.Cancel(); err != nil {
		return Booking{}, err
	}

	err = s.repo.SetBookingStatus(ctx, b.ID, StatusCancelled, []Status{previous})

	if err != nil {
		return Booking{}, err
	}

	return b, nil
}

// GetBookingByID returns the booking to its booker or the item owner and
// denies everyone else.
func (s *Service) GetBookingByID(ctx context.Context, callerID, bookingID uuid.UUID) (Booking, error) {
	b, err := s.repo.GetBookingByID(ctx, bookingID)

	if err != nil {
		return Booking{}, err
	}

	if err := Authorize(callerID, b, ActionView); err != nil {
		return Booking{}, err
	}

	return b, nil
}

func (s *Service) GetBookingsByBooker(ctx context.Context, bookerID uuid.UUID, state State) ([]Booking, error) {
	if _, err := s.users.GetUserByID(ctx, bookerID); err != nil {
		return nil, err
	}

	bookings, err := s.repo.GetBookingsByBooker(ctx, bookerID)

	if err != nil {
		return nil, err
	}

	return SelectByState(bookings, state, time.Now()), nil
}

func (s *Service) GetBookingsByOwner(ctx context.Context, ownerID uuid.UUID, state State) ([]Booking, error) {
	if _, err := s.users.GetUserByID(ctx, ownerID); err != nil {
		return nil, err
	}

	bookings, err := s.repo.GetBookingsByOwner(ctx, ownerID)

	if err != nil {
		return nil, err
	}

	return SelectByState(bookings, state, time.Now()), nil
}

// HasFinishedBooking reports whether bookerID had an approved booking of
// the item that already ended. The item catalog gates comments on it.
func (s *Service) HasFinishedBooking(ctx context.Context, itemID, bookerID uuid.UUID) (bool, error) {
	return s.repo.HasFinishedBooking(ctx, itemID, bookerID, time.Now())
}

func (s *Service) LastBooking(ctx context.Context, itemID uuid.UUID) (*item.BookingStamp, error) {
	b, err := s.repo.GetLastBooking(ctx, itemID, time.Now())

	if err != nil || b == nil {
		return nil, err
	}

	return &item.BookingStamp{ID: b.ID, BookerID: b.Booker.ID}, nil
}

func (s *Service) NextBooking(ctx context.Context, itemID uuid.UUID) (*item.BookingStamp, error) {
	b, err := s.repo.GetNextBooking(ctx, itemID, time.Now())

	if err != nil || b == nil {
		return nil, err
	}

	return &item.BookingStamp{ID: b.ID, BookerID: b.Booker.ID}, nil
}
