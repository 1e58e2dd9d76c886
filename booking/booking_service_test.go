package booking_test

import (
	"context"
	"errors"
	"testing"
	"time"

	bk "github.com/gearshare/gearshare-backend/booking"
	bk_mocks "github.com/gearshare/gearshare-backend/booking/mocks"
	"github.com/gearshare/gearshare-backend/item"
	"github.com/gearshare/gearshare-backend/user"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testDeps struct {
	repo    *bk_mocks.MockBookingRepository
	users   *bk_mocks.MockUserDirectory
	items   *bk_mocks.MockItemCatalog
	service *bk.Service
	ctx     context.Context
}

func newTestDeps(t *testing.T) (*gomock.Controller, testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)

	repo := bk_mocks.NewMockBookingRepository(ctrl)
	users := bk_mocks.NewMockUserDirectory(ctrl)
	items := bk_mocks.NewMockItemCatalog(ctrl)
	svc := bk.NewService(repo, users, items)

	return ctrl, testDeps{
		repo: repo, users: users, items: items, service: svc, ctx: context.Background(),
	}
}

func TestCreateBooking(t *testing.T) {
	start := time.Now().Add(24 * time.Hour)
	end := start.Add(48 * time.Hour)

	booker := user.User{ID: uuid.New(), Name: "booker", Email: "booker@example.com"}
	owner := user.User{ID: uuid.New(), Name: "owner", Email: "owner@example.com"}
	drill := item.Item{ID: uuid.New(), Name: "drill", Description: "cordless", Available: true, OwnerID: owner.ID}

	req := bk.CreateBookingRequest{ItemID: drill.ID, Start: start, End: end}

	t.Run("success", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.users.EXPECT().GetUserByID(testDeps.ctx, booker.ID).Return(booker, nil).Times(1)
		testDeps.items.EXPECT().GetItemByID(testDeps.ctx, drill.ID).Return(drill, nil).Times(1)
		testDeps.repo.EXPECT().ExistsApprovedOverlap(testDeps.ctx, drill.ID, start, end).Return(false, nil).Times(1)
		testDeps.repo.EXPECT().InsertBooking(testDeps.ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, b bk.Booking) (bk.Booking, error) { return b, nil },
		).Times(1)

		got, err := testDeps.service.CreateBooking(testDeps.ctx, booker.ID, req)

		require.Nil(t, err)
		require.NotEqual(t, uuid.Nil, got.ID)
		require.Equal(t, bk.StatusWaiting, got.Status)
		require.Equal(t, start, got.Start)
		require.Equal(t, end, got.End)
		require.Equal(t, bk.ItemRef{ID: drill.ID, Name: drill.Name, OwnerID: owner.ID}, got.Item)
		require.Equal(t, bk.UserRef{ID: booker.ID, Name: booker.Name}, got.Booker)
	})

	t.Run("end before start", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		bad := bk.CreateBookingRequest{ItemID: drill.ID, Start: end, End: start}

		_, err := testDeps.service.CreateBooking(testDeps.ctx, booker.ID, bad)

		require.ErrorIs(t, err, bk.ErrInvalidInterval)
	})

	t.Run("zero-length interval", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		bad := bk.CreateBookingRequest{ItemID: drill.ID, Start: start, End: start}

		_, err := testDeps.service.CreateBooking(testDeps.ctx, booker.ID, bad)

		require.ErrorIs(t, err, bk.ErrInvalidInterval)
	})

	t.Run("start in the past", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		bad := bk.CreateBookingRequest{ItemID: drill.ID, Start: time.Now().Add(-time.Hour), End: end}

		_, err := testDeps.service.CreateBooking(testDeps.ctx, booker.ID, bad)

		require.ErrorIs(t, err, bk.ErrInvalidInterval)
	})

	t.Run("booker not found", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.users.EXPECT().GetUserByID(testDeps.ctx, booker.ID).Return(user.User{}, user.ErrUserNotFound).Times(1)
		testDeps.repo.EXPECT().InsertBooking(gomock.Any(), gomock.Any()).Times(0)

		_, err := testDeps.service.CreateBooking(testDeps.ctx, booker.ID, req)

		require.ErrorIs(t, err, user.ErrUserNotFound)
	})

	t.Run("item not found", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.users.EXPECT().GetUserByID(testDeps.ctx, booker.ID).Return(booker, nil).Times(1)
		testDeps.items.EXPECT().GetItemByID(testDeps.ctx, drill.ID).Return(item.Item{}, item.ErrItemNotFound).Times(1)
		testDeps.repo.EXPECT().InsertBooking(gomock.Any(), gomock.Any()).Times(0)

		_, err := testDeps.service.CreateBooking(testDeps.ctx, booker.ID, req)

		require.ErrorIs(t, err, item.ErrItemNotFound)
	})

	t.Run("item unavailable", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		parked := drill
		parked.Available = false

		testDeps.users.EXPECT().GetUserByID(testDeps.ctx, booker.ID).Return(booker, nil).Times(1)
		testDeps.items.EXPECT().GetItemByID(testDeps.ctx, drill.ID).Return(parked, nil).Times(1)
		testDeps.repo.EXPECT().InsertBooking(gomock.Any(), gomock.Any()).Times(0)

		_, err := testDeps.service.CreateBooking(testDeps.ctx, booker.ID, req)

		require.ErrorIs(t, err, bk.ErrItemUnavailable)
	})

	t.Run("own item", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.users.EXPECT().GetUserByID(testDeps.ctx, owner.ID).Return(owner, nil).Times(1)
		testDeps.items.EXPECT().GetItemByID(testDeps.ctx, drill.ID).Return(drill, nil).Times(1)
		testDeps.repo.EXPECT().InsertBooking(gomock.Any(), gomock.Any()).Times(0)

		_, err := testDeps.service.CreateBooking(testDeps.ctx, owner.ID, req)

		require.ErrorIs(t, err, bk.ErrOwnItem)
	})

	t.Run("interval taken", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.users.EXPECT().GetUserByID(testDeps.ctx, booker.ID).Return(booker, nil).Times(1)
		testDeps.items.EXPECT().GetItemByID(testDeps.ctx, drill.ID).Return(drill, nil).Times(1)
		testDeps.repo.EXPECT().ExistsApprovedOverlap(testDeps.ctx, drill.ID, start, end).Return(true, nil).Times(1)
		testDeps.repo.EXPECT().InsertBooking(gomock.Any(), gomock.Any()).Times(0)

		_, err := testDeps.service.CreateBooking(testDeps.ctx, booker.ID, req)

		require.ErrorIs(t, err, bk.ErrIntervalTaken)
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.users.EXPECT().GetUserByID(testDeps.ctx, booker.ID).Return(booker, nil).Times(1)
		testDeps.items.EXPECT().GetItemByID(testDeps.ctx, drill.ID).Return(drill, nil).Times(1)
		testDeps.repo.EXPECT().ExistsApprovedOverlap(testDeps.ctx, drill.ID, start, end).Return(false, nil).Times(1)
		testDeps.repo.EXPECT().InsertBooking(testDeps.ctx, gomock.Any()).Return(bk.Booking{}, errors.New("repo error")).Times(1)

		_, err := testDeps.service.CreateBooking(testDeps.ctx, booker.ID, req)

		require.Error(t, err)
	})
}

func TestApproveBooking(t *testing.T) {
	ownerID := uuid.New()
	bookerID := uuid.New()
	bookingID := uuid.New()

	waiting := bk.Booking{
		ID:     bookingID,
		Start:  time.Now().Add(24 * time.Hour),
		End:    time.Now().Add(48 * time.Hour),
		Status: bk.StatusWaiting,
		Item:   bk.ItemRef{ID: uuid.New(), Name: "drill", OwnerID: ownerID},
		Booker: bk.UserRef{ID: bookerID, Name: "booker"},
	}

	t.Run("approved", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		approved := waiting
		approved.Status = bk.StatusApproved

		testDeps.repo.EXPECT().GetBookingByID(testDeps.ctx, bookingID).Return(waiting, nil).Times(1)
		testDeps.repo.EXPECT().ConfirmBooking(testDeps.ctx, approved).Return(nil).Times(1)

		got, err := testDeps.service.ApproveBooking(testDeps.ctx, ownerID, bookingID, true)

		require.Nil(t, err)
		require.Equal(t, bk.StatusApproved, got.Status)
	})

	t.Run("rejected", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.repo.EXPECT().GetBookingByID(testDeps.ctx, bookingID).Return(waiting, nil).Times(1)
		testDeps.repo.EXPECT().SetBookingStatus(testDeps.ctx, bookingID, bk.StatusRejected, []bk.Status{bk.StatusWaiting}).Return(nil).Times(1)

		got, err := testDeps.service.ApproveBooking(testDeps.ctx, ownerID, bookingID, false)

		require.Nil(t, err)
		require.Equal(t, bk.StatusRejected, got.Status)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.repo.EXPECT().GetBookingByID(testDeps.ctx, bookingID).Return(bk.Booking{}, bk.ErrBookingNotFound).Times(1)

		_, err := testDeps.service.ApproveBooking(testDeps.ctx, ownerID, bookingID, true)

		require.ErrorIs(t, err, bk.ErrBookingNotFound)
	})

	t.Run("booker may not approve", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.repo.EXPECT().GetBookingByID(testDeps.ctx, bookingID).Return(waiting, nil).Times(1)
		testDeps.repo.EXPECT().ConfirmBooking(gomock.Any(), gomock.Any()).Times(0)

		_, err := testDeps.service.ApproveBooking(testDeps.ctx, bookerID, bookingID, true)

		require.ErrorIs(t, err, bk.ErrAccessDenied)
	})

	t.Run("already processed", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		done := waiting
		done.Status = bk.StatusApproved

		testDeps.repo.EXPECT().GetBookingByID(testDeps.ctx, bookingID).Return(done, nil).Times(1)
		testDeps.repo.EXPECT().ConfirmBooking(gomock.Any(), gomock.Any()).Times(0)

		_, err := testDeps.service.ApproveBooking(testDeps.ctx, ownerID, bookingID, true)

		require.ErrorIs(t, err, bk.ErrAlreadyProcessed)
	})

	t.Run("interval taken at confirmation", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		approved := waiting
		approved.Status = bk.StatusApproved

		testDeps.repo.EXPECT().GetBookingByID(testDeps.ctx, bookingID).Return(waiting, nil).Times(1)
		testDeps.repo.EXPECT().ConfirmBooking(testDeps.ctx, approved).Return(bk.ErrIntervalTaken).Times(1)

		_, err := testDeps.service.ApproveBooking(testDeps.ctx, ownerID, bookingID, true)

		require.ErrorIs(t, err, bk.ErrIntervalTaken)
	})
}

func TestCancelBooking(t *testing.T) {
	ownerID := uuid.New()
	bookerID := uuid.New()
	bookingID := uuid.New()

	booking := func(status bk.Status) bk.Booking {
		return bk.Booking{
			ID:     bookingID,
			Start:  time.Now().Add(24 * time.Hour),
			End:    time.Now().Add(48 * time.Hour),
			Status: status,
			Item:   bk.ItemRef{ID: uuid.New(), Name: "drill", OwnerID: ownerID},
			Booker: bk.UserRef{ID: bookerID, Name: "booker"},
		}
	}

	t.Run("cancel waiting", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.repo.EXPECT().GetBookingByID(testDeps.ctx, bookingID).Return(booking(bk.StatusWaiting), nil).Times(1)
		testDeps.repo.EXPECT().SetBookingStatus(testDeps.ctx, bookingID, bk.StatusCancelled, []bk.Status{bk.StatusWaiting}).Return(nil).Times(1)

		got, err := testDeps.service.CancelBooking(testDeps.ctx, bookerID, bookingID)

		require.Nil(t, err)
		require.Equal(t, bk.StatusCancelled, got.Status)
	})

	t.Run("cancel approved", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.repo.EXPECT().GetBookingByID(testDeps.ctx, bookingID).Return(booking(bk.StatusApproved), nil).Times(1)
		testDeps.repo.EXPECT().SetBookingStatus(testDeps.ctx, bookingID, bk.StatusCancelled, []bk.Status{bk.StatusApproved}).Return(nil).Times(1)

		got, err := testDeps.service.CancelBooking(testDeps.ctx, bookerID, bookingID)

		require.Nil(t, err)
		require.Equal(t, bk.StatusCancelled, got.Status)
	})

	t.Run("owner may not cancel", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.repo.EXPECT().GetBookingByID(testDeps.ctx, bookingID).Return(booking(bk.StatusWaiting), nil).Times(1)
		testDeps.repo.EXPECT().SetBookingStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := testDeps.service.CancelBooking(testDeps.ctx, ownerID, bookingID)

		require.ErrorIs(t, err, bk.ErrAccessDenied)
	})

	t.Run("rejected is terminal", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.repo.EXPECT().GetBookingByID(testDeps.ctx, bookingID).Return(booking(bk.StatusRejected), nil).Times(1)
		testDeps.repo.EXPECT().SetBookingStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := testDeps.service.CancelBooking(testDeps.ctx, bookerID, bookingID)

		require.ErrorIs(t, err, bk.ErrAlreadyProcessed)
	})

	t.Run("repo error SetBookingStatus", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.repo.EXPECT().GetBookingByID(testDeps.ctx, bookingID).Return(booking(bk.StatusWaiting), nil).Times(1)
		testDeps.repo.EXPECT().SetBookingStatus(testDeps.ctx, bookingID, bk.StatusCancelled, []bk.Status{bk.StatusWaiting}).Return(errors.New("repo error")).Times(1)

		_, err := testDeps.service.CancelBooking(testDeps.ctx, bookerID, bookingID)

		require.Error(t, err)
	})
}

func TestGetBookingByID(t *testing.T) {
	ownerID := uuid.New()
	bookerID := uuid.New()
	bookingID := uuid.New()

	b := bk.Booking{
		ID:     bookingID,
		Status: bk.StatusWaiting,
		Item:   bk.ItemRef{ID: uuid.New(), Name: "drill", OwnerID: ownerID},
		Booker: bk.UserRef{ID: bookerID, Name: "booker"},
	}

	t.Run("booker sees own booking", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.repo.EXPECT().GetBookingByID(testDeps.ctx, bookingID).Return(b, nil).Times(1)

		got, err := testDeps.service.GetBookingByID(testDeps.ctx, bookerID, bookingID)

		require.Nil(t, err)
		require.Equal(t, b, got)
	})

	t.Run("owner sees booking of their item", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.repo.EXPECT().GetBookingByID(testDeps.ctx, bookingID).Return(b, nil).Times(1)

		got, err := testDeps.service.GetBookingByID(testDeps.ctx, ownerID, bookingID)

		require.Nil(t, err)
		require.Equal(t, b, got)
	})

	t.Run("stranger denied", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.repo.EXPECT().GetBookingByID(testDeps.ctx, bookingID).Return(b, nil).Times(1)

		_, err := testDeps.service.GetBookingByID(testDeps.ctx, uuid.New(), bookingID)

		require.ErrorIs(t, err, bk.ErrAccessDenied)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.repo.EXPECT().GetBookingByID(testDeps.ctx, bookingID).Return(bk.Booking{}, bk.ErrBookingNotFound).Times(1)

		_, err := testDeps.service.GetBookingByID(testDeps.ctx, bookerID, bookingID)

		require.ErrorIs(t, err, bk.ErrBookingNotFound)
	})
}

func TestGetBookingsByBooker(t *testing.T) {
	booker := user.User{ID: uuid.New(), Name: "booker", Email: "booker@example.com"}

	waiting := bk.Booking{ID: uuid.New(), Start: time.Now().Add(24 * time.Hour), End: time.Now().Add(48 * time.Hour), Status: bk.StatusWaiting}
	rejected := bk.Booking{ID: uuid.New(), Start: time.Now().Add(72 * time.Hour), End: time.Now().Add(96 * time.Hour), Status: bk.StatusRejected}

	t.Run("filters by state", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.users.EXPECT().GetUserByID(testDeps.ctx, booker.ID).Return(booker, nil).Times(1)
		testDeps.repo.EXPECT().GetBookingsByBooker(testDeps.ctx, booker.ID).Return([]bk.Booking{waiting, rejected}, nil).Times(1)

		got, err := testDeps.service.GetBookingsByBooker(testDeps.ctx, booker.ID, bk.StateWaiting)

		require.Nil(t, err)
		require.Equal(t, []bk.Booking{waiting}, got)
	})

	t.Run("unknown booker", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.users.EXPECT().GetUserByID(testDeps.ctx, booker.ID).Return(user.User{}, user.ErrUserNotFound).Times(1)
		testDeps.repo.EXPECT().GetBookingsByBooker(gomock.Any(), gomock.Any()).Times(0)

		_, err := testDeps.service.GetBookingsByBooker(testDeps.ctx, booker.ID, bk.StateAll)

		require.ErrorIs(t, err, user.ErrUserNotFound)
	})
}

func TestGetBookingsByOwner(t *testing.T) {
	owner := user.User{ID: uuid.New(), Name: "owner", Email: "owner@example.com"}

	future := bk.Booking{ID: uuid.New(), Start: time.Now().Add(24 * time.Hour), End: time.Now().Add(48 * time.Hour), Status: bk.StatusApproved}
	past := bk.Booking{ID: uuid.New(), Start: time.Now().Add(-48 * time.Hour), End: time.Now().Add(-24 * time.Hour), Status: bk.StatusApproved}

	t.Run("filters by state", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.users.EXPECT().GetUserByID(testDeps.ctx, owner.ID).Return(owner, nil).Times(1)
		testDeps.repo.EXPECT().GetBookingsByOwner(testDeps.ctx, owner.ID).Return([]bk.Booking{future, past}, nil).Times(1)

		got, err := testDeps.service.GetBookingsByOwner(testDeps.ctx, owner.ID, bk.StateFuture)

		require.Nil(t, err)
		require.Equal(t, []bk.Booking{future}, got)
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.users.EXPECT().GetUserByID(testDeps.ctx, owner.ID).Return(owner, nil).Times(1)
		testDeps.repo.EXPECT().GetBookingsByOwner(testDeps.ctx, owner.ID).Return(nil, errors.New("repo error")).Times(1)

		_, err := testDeps.service.GetBookingsByOwner(testDeps.ctx, owner.ID, bk.StateAll)

		require.Error(t, err)
	})
}

func TestLastAndNextBooking(t *testing.T) {
	itemID := uuid.New()
	bookerID := uuid.New()

	t.Run("maps to stamps", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		last := &bk.Booking{ID: uuid.New(), Booker: bk.UserRef{ID: bookerID}}
		next := &bk.Booking{ID: uuid.New(), Booker: bk.UserRef{ID: bookerID}}

		testDeps.repo.EXPECT().GetLastBooking(testDeps.ctx, itemID, gomock.Any()).Return(last, nil).Times(1)
		testDeps.repo.EXPECT().GetNextBooking(testDeps.ctx, itemID, gomock.Any()).Return(next, nil).Times(1)

		gotLast, err := testDeps.service.LastBooking(testDeps.ctx, itemID)
		require.Nil(t, err)
		require.Equal(t, &item.BookingStamp{ID: last.ID, BookerID: bookerID}, gotLast)

		gotNext, err := testDeps.service.NextBooking(testDeps.ctx, itemID)
		require.Nil(t, err)
		require.Equal(t, &item.BookingStamp{ID: next.ID, BookerID: bookerID}, gotNext)
	})

	t.Run("no bookings", func(t *testing.T) {
		ctrl, testDeps := newTestDeps(t)
		defer ctrl.Finish()

		testDeps.repo.EXPECT().GetLastBooking(testDeps.ctx, itemID, gomock.Any()).Return(nil, nil).Times(1)

		got, err := testDeps.service.LastBooking(testDeps.ctx, itemID)

		require.Nil(t, err)
		require.Nil(t, got)
	})
}
