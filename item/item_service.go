package item

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gearshare/gearshare-backend/user"
)

type ItemRepository interface {
	InsertItem(ctx context.Context, i Item) (Item, error)
	GetItemByID(ctx context.Context, id uuid.UUID) (Item, error)
	GetItemsByOwner(ctx context.Context, ownerID uuid.UUID) ([]Item, error)
	SearchItems(ctx context.Context, text string) ([]Item, error)
	UpdateItem(ctx context.Context, i Item) error
	InsertComment(ctx context.Context, c Comment) (Comment, error)
	GetCommentsByItem(ctx context.Context, itemID uuid.UUID) ([]Comment, error)
}

type UserDirectory interface {
	GetUserByID(ctx context.Context, id uuid.UUID) (user.User, error)
}

// BookingLookup is the slice of the booking subsystem the catalog needs:
// comment gating and the owner's calendar decoration.
type BookingLookup interface {
	HasFinishedBooking(ctx context.Context, itemID, bookerID uuid.UUID) (bool, error)
	LastBooking(ctx context.Context, itemID uuid.UUID) (*BookingStamp, error)
	NextBooking(ctx context.Context, itemID uuid.UUID) (*BookingStamp, error)
}

type Service struct {
	repo     ItemRepository
	users    UserDirectory
	bookings BookingLookup
}

func NewService(repo ItemRepository, users UserDirectory, bookings BookingLookup) *Service {
	return &Service{repo: repo, users: users, bookings: bookings}
}

func (s *Service) CreateItem(ctx context.Context, ownerID uuid.UUID, req CreateItemRequest) (Item, error) {
	if _, err := s.users.GetUserByID(ctx, ownerID); err != nil {
		return Item{}, err
	}

	i := Item{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Available:   *req.Available,
		OwnerID:     ownerID,
		RequestID:   req.RequestID,
	}

	return s.repo.InsertItem(ctx, i)
}

func (s *Service) UpdateItem(ctx context.Context, callerID, itemID uuid.UUID, req UpdateItemRequest) (Item, error) {
	if _, err := s.users.GetUserByID(ctx, callerID); err != nil {
		return Item{}, err
	}

	i, err := s.repo.GetItemByID(ctx, itemID)

	if err != nil {
		return Item{}, err
	}

	if i.OwnerID != callerID {
		return Item{}, ErrNotOwner
	}

	if req.Name != nil {
		i.Name = *req.Name
	}

	if req.Description != nil {
		i.Description = *req.Description
	}

	if req.Available != nil {
		i.Available = *req.Available
	}

	if err := s.repo.UpdateItem(ctx, i); err != nil {
		return Item{}, err
	}

	return i, nil
}

// GetItemByID returns the item with its comments. The owner additionally
// sees the closest finished and upcoming approved bookings.
func (s *Service) GetItemByID(ctx context.Context, callerID, itemID uuid.UUID) (ItemView, error) {
	i, err := s.repo.GetItemByID(ctx, itemID)

	if err != nil {
		return ItemView{}, err
	}

	comments, err := s.repo.GetCommentsByItem(ctx, itemID)

	if err != nil {
		return ItemView{}, err
	}

	view := ItemView{Item: i, Comments: comments}

	if i.OwnerID == callerID {
		if view.LastBooking, err = s.bookings.LastBooking(ctx, itemID); err != nil {
			return ItemView{}, err
		}

		if view.NextBooking, err = s.bookings.NextBooking(ctx, itemID); err != nil {
			return ItemView{}, err
		}
	}

	return view, nil
}

func (s *Service) GetItemsByOwner(ctx context.Context, ownerID uuid.UUID) ([]Item, error) {
	if _, err := s.users.GetUserByID(ctx, ownerID); err != nil {
		return nil, err
	}

	return s.repo.GetItemsByOwner(ctx, ownerID)
}

// SearchItems matches available items by name or description. Blank text
// means an empty result, not an error.
func (s *Service) SearchItems(ctx context.Context, text string) ([]Item, error) {
	text = strings.TrimSpace(text)

	if text == "" {
		return []Item{}, nil
	}

	return s.repo.SearchItems(ctx, strings.ToLower(text))
}

func (s *Service) AddComment(ctx context.Context, authorID, itemID uuid.UUID, req CreateCommentRequest) (Comment, error) {
	author, err := s.users.GetUserByID(ctx, authorID)

	if err != nil {
		return Comment{}, err
	}

	if _, err := s.repo.GetItemByID(ctx, itemID); err != nil {
		return Comment{}, err
	}

	booked, err := s.bookings.HasFinishedBooking(ctx, itemID, authorID)

	if err != nil {
		return Comment{}, err
	}

	if !booked {
		return Comment{}, ErrNotBooked
	}

	c := Comment{
		ID:         uuid.New(),
		Text:       req.Text,
		ItemID:     itemID,
		AuthorID:   authorID,
		AuthorName: author.Name,
		Created:    time.Now(),
	}

	return s.repo.InsertComment(ctx, c)
}
