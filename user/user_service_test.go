package user_test

import (
	"context"
	"errors"
	"testing"

	"github.com/gearshare/gearshare-backend/user"
	user_mocks "github.com/gearshare/gearshare-backend/user/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testDeps struct {
	repo    *user_mocks.MockUserRepository
	service *user.Service
	ctx     context.Context
}

func newTestDeps(t *testing.T) (*gomock.Controller, testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)

	repo := user_mocks.NewMockUserRepository(ctrl)
	svc := user.NewService(repo)

	return ctrl, testDeps{repo: repo, service: svc, ctx: context.Background()}
}

func TestCreateUser(t *testing.T) {
	req := user.CreateUserRequest{Name: "john", Email: "john@example.com"}

	t.Run("success", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.repo.EXPECT().GetUserByEmail(testDeps.ctx, req.Email).Return(user.User{}, user.ErrUserNotFound).Times(1)
		testDeps.repo.EXPECT().InsertUser(testDeps.ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, u user.User) (user.User, error) { return u, nil },
		).Times(1)

		got, err := testDeps.service.CreateUser(testDeps.ctx, req)

		require.Nil(t, err)
		require.NotEqual(t, uuid.Nil, got.ID)
		require.Equal(t, req.Name, got.Name)
		require.Equal(t, req.Email, got.Email)
	})

	t.Run("email taken", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		existing := user.User{ID: uuid.New(), Name: "other", Email: req.Email}

		testDeps.repo.EXPECT().GetUserByEmail(testDeps.ctx, req.Email).Return(existing, nil).Times(1)
		testDeps.repo.EXPECT().InsertUser(gomock.Any(), gomock.Any()).Times(0)

		_, err := testDeps.service.CreateUser(testDeps.ctx, req)

		require.ErrorIs(t, err, user.ErrEmailTaken)
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.repo.EXPECT().GetUserByEmail(testDeps.ctx, req.Email).Return(user.User{}, errors.New("repo error")).Times(1)
		testDeps.repo.EXPECT().InsertUser(gomock.Any(), gomock.Any()).Times(0)

		_, err := testDeps.service.CreateUser(testDeps.ctx, req)

		require.Error(t, err)
	})
}

func TestUpdateUser(t *testing.T) {
	existing := user.User{ID: uuid.New(), Name: "john", Email: "john@example.com"}

	t.Run("rename only", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		name := "johnny"
		updated := existing
		updated.Name = name

		testDeps.repo.EXPECT().GetUserByID(testDeps.ctx, existing.ID).Return(existing, nil).Times(1)
		testDeps.repo.EXPECT().UpdateUser(testDeps.ctx, updated).Return(nil).Times(1)

		got, err := testDeps.service.UpdateUser(testDeps.ctx, existing.ID, user.UpdateUserRequest{Name: &name})

		require.Nil(t, err)
		require.Equal(t, updated, got)
	})

	t.Run("new email", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		email := "johnny@example.com"
		updated := existing
		updated.Email = email

		testDeps.repo.EXPECT().GetUserByID(testDeps.ctx, existing.ID).Return(existing, nil).Times(1)
		testDeps.repo.EXPECT().GetUserByEmail(testDeps.ctx, email).Return(user.User{}, user.ErrUserNotFound).Times(1)
		testDeps.repo.EXPECT().UpdateUser(testDeps.ctx, updated).Return(nil).Times(1)

		got, err := testDeps.service.UpdateUser(testDeps.ctx, existing.ID, user.UpdateUserRequest{Email: &email})

		require.Nil(t, err)
		require.Equal(t, updated, got)
	})

	t.Run("email taken by someone else", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		email := "taken@example.com"
		other := user.User{ID: uuid.New(), Name: "other", Email: email}

		testDeps.repo.EXPECT().GetUserByID(testDeps.ctx, existing.ID).Return(existing, nil).Times(1)
		testDeps.repo.EXPECT().GetUserByEmail(testDeps.ctx, email).Return(other, nil).Times(1)
		testDeps.repo.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).Times(0)

		_, err := testDeps.service.UpdateUser(testDeps.ctx, existing.ID, user.UpdateUserRequest{Email: &email})

		require.ErrorIs(t, err, user.ErrEmailTaken)
	})

	t.Run("unchanged email skips the check", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		email := existing.Email

		testDeps.repo.EXPECT().GetUserByID(testDeps.ctx, existing.ID).Return(existing, nil).Times(1)
		testDeps.repo.EXPECT().GetUserByEmail(gomock.Any(), gomock.Any()).Times(0)
		testDeps.repo.EXPECT().UpdateUser(testDeps.ctx, existing).Return(nil).Times(1)

		got, err := testDeps.service.UpdateUser(testDeps.ctx, existing.ID, user.UpdateUserRequest{Email: &email})

		require.Nil(t, err)
		require.Equal(t, existing, got)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.repo.EXPECT().GetUserByID(testDeps.ctx, existing.ID).Return(user.User{}, user.ErrUserNotFound).Times(1)
		testDeps.repo.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).Times(0)

		_, err := testDeps.service.UpdateUser(testDeps.ctx, existing.ID, user.UpdateUserRequest{})

		require.ErrorIs(t, err, user.ErrUserNotFound)
	})
}

func TestDeleteUser(t *testing.T) {
	id := uuid.New()

	t.Run("success", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.repo.EXPECT().GetUserByID(testDeps.ctx, id).Return(user.User{ID: id}, nil).Times(1)
		testDeps.repo.EXPECT().DeleteUser(testDeps.ctx, id).Return(nil).Times(1)

		err := testDeps.service.DeleteUser(testDeps.ctx, id)

		require.Nil(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.repo.EXPECT().GetUserByID(testDeps.ctx, id).Return(user.User{}, user.ErrUserNotFound).Times(1)
		testDeps.repo.EXPECT().DeleteUser(gomock.Any(), gomock.Any()).Times(0)

		err := testDeps.service.DeleteUser(testDeps.ctx, id)

		require.ErrorIs(t, err, user.ErrUserNotFound)
	})
}
