package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

type UserRepository interface {
	InsertUser(ctx context.Context, u User) (User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (User, error)
	GetUserByEmail(ctx context.Context, email string) (User, error)
	GetAllUsers(ctx context.Context) ([]User, error)
	UpdateUser(ctx context.Context, u User) error
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo UserRepository
}

func NewService(repo UserRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateUser(ctx context.Context, req CreateUserRequest) (User, error) {
	if err := s.checkEmailFree(ctx, req.Email, uuid.Nil); err != nil {
		return User{}, err
	}

	u := User{
		ID:    uuid.New(),
		Name:  req.Name,
		Email: req.Email,
	}

	return s.repo.InsertUser(ctx, u)
}

func (s *Service) UpdateUser(ctx context.Context, id uuid.UUID, req UpdateUserRequest) (User, error) {
	u, err := s.repo.GetUserByID(ctx, id)

	if err != nil {
		return User{}, err
	}

	if req.Email != nil && *req.Email != u.Email {
		if err := s.checkEmailFree(ctx, *req.Email, id); err != nil {
			return User{}, err
		}
		u.Email = *req.Email
	}

	if req.Name != nil {
		u.Name = *req.Name
	}

	if err := s.repo.UpdateUser(ctx, u); err != nil {
		return User{}, err
	}

	return u, nil
}

func (s *Service) GetUserByID(ctx context.Context, id uuid.UUID) (User, error) {
	return s.repo.GetUserByID(ctx, id)
}

func (s *Service) GetAllUsers(ctx context.Context) ([]User, error) {
	return s.repo.GetAllUsers(ctx)
}

func (s *Service) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetUserByID(ctx, id); err != nil {
		return err
	}

	return s.repo.DeleteUser(ctx, id)
}

func (s *Service) checkEmailFree(ctx context.Context, email string, selfID uuid.UUID) error {
	existing, err := s.repo.GetUserByEmail(ctx, email)

	if errors.Is(err, ErrUserNotFound) {
		return nil
	}

	if err != nil {
		return err
	}

	if existing.ID != selfID {
		return ErrEmailTaken
	}

	return nil
}
