package request

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/gearshare/gearshare-backend/user"
)

type RequestRepository interface {
	InsertRequest(ctx context.Context, req ItemRequest) (ItemRequest, error)
	GetRequestByID(ctx context.Context, id uuid.UUID) (ItemRequest, error)
	GetRequestsByRequester(ctx context.Context, requesterID uuid.UUID) ([]ItemRequest, error)
	GetRequestsOfOthers(ctx context.Context, requesterID uuid.UUID) ([]ItemRequest, error)
	GetRepliesByRequest(ctx context.Context, requestID uuid.UUID) ([]ItemReply, error)
}

type UserDirectory interface {
	GetUserByID(ctx context.Context, id uuid.UUID) (user.User, error)
}

type Service struct {
	repo  RequestRepository
	users UserDirectory
}

func NewService(repo RequestRepository, users UserDirectory) *Service {
	return &Service{repo: repo, users: users}
}

func (s *Service) CreateRequest(ctx context.Context, requesterID uuid.UUID, req CreateItemRequest) (ItemRequest, error) {
	if _, err := s.users.GetUserByID(ctx, requesterID); err != nil {
		return ItemRequest{}, err
	}

	r := ItemRequest{
		ID:          uuid.New(),
		Description: req.Description,
		RequesterID: requesterID,
		Created:     time.Now(),
	}

	return s.repo.InsertRequest(ctx, r)
}

// GetOwnRequests returns the caller's requests, newest first, each with the
// items listed in answer to it.
func (s *Service) GetOwnRequests(ctx context.Context, requesterID uuid.UUID) ([]ItemRequestView, error) {
	if _, err := s.users.GetUserByID(ctx, requesterID); err != nil {
		return nil, err
	}

	requests, err := s.repo.GetRequestsByRequester(ctx, requesterID)

	if err != nil {
		return nil, err
	}

	return s.withReplies(ctx, requests)
}

func (s *Service) GetOtherRequests(ctx context.Context, callerID uuid.UUID) ([]ItemRequest, error) {
	if _, err := s.users.GetUserByID(ctx, callerID); err != nil {
		return nil, err
	}

	return s.repo.GetRequestsOfOthers(ctx, callerID)
}

func (s *Service) GetRequestByID(ctx context.Context, callerID, requestID uuid.UUID) (ItemRequestView, error) {
	if _, err := s.users.GetUserByID(ctx, callerID); err != nil {
		return ItemRequestView{}, err
	}

	r, err := s.repo.GetRequestByID(ctx, requestID)

	if err != nil {
		return ItemRequestView{}, err
	}

	views, err := s.withReplies(ctx, []ItemRequest{r})

	if err != nil {
		return ItemRequestView{}, err
	}

	return views[0], nil
}

func (s *Service) withReplies(ctx context.Context, requests []ItemRequest) ([]ItemRequestView, error) {
	views := make([]ItemRequestView, 0, len(requests))

	for _, r := range requests {
		items, err := s.repo.GetRepliesByRequest(ctx, r.ID)

		if err != nil {
			return nil, err
		}

		views = append(views, ItemRequestView{ItemRequest: r, Items: items})
	}

	return views, nil
}
