package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	bk "github.com/gearshare/gearshare-backend/booking"
	"github.com/gearshare/gearshare-backend/item"
	"github.com/gearshare/gearshare-backend/user"
)

type BookingService interface {
	CreateBooking(ctx context.Context, bookerID uuid.UUID, req bk.CreateBookingRequest) (bk.Booking, error)
	ApproveBooking(ctx context.Context, callerID, bookingID uuid.UUID, approved bool) (bk.Booking, error)
	CancelBooking(ctx context.Context, callerID, bookingID uuid.UUID) (bk.Booking, error)
	GetBookingByID(ctx context.Context, callerID, bookingID uuid.UUID) (bk.Booking, error)
	GetBookingsByBooker(ctx context.Context, bookerID uuid.UUID, state bk.State) ([]bk.Booking, error)
	GetBookingsByOwner(ctx context.Context, ownerID uuid.UUID, state bk.State) ([]bk.Booking, error)
}

type BookingHandler struct {
	service BookingService
}

func NewBookingHandler(service BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(rg *gin.RouterGroup) {
	rg.POST("", h.Create)
	rg.PATCH("/:bookingId", h.Approve)
	rg.PATCH("/:bookingId/cancel", h.Cancel)
	rg.GET("/:bookingId", h.GetByID)
	rg.GET("", h.ListByBooker)
	rg.GET("/owner", h.ListByOwner)
}

func (h *BookingHandler) Create(c *gin.Context) {
	var req bk.CreateBookingRequest

	if err := c.BindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	created, err := h.service.CreateBooking(c.Request.Context(), callerID(c), req)

	if err != nil {
		c.Error(err)

		switch {
		case errors.Is(err, user.ErrUserNotFound) || errors.Is(err, item.ErrItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, bk.ErrOwnItem):
			c.JSON(http.StatusForbidden, gin.H{"error": "cannot book own item"})
		case errors.Is(err, bk.ErrInvalidInterval):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid interval"})
		case errors.Is(err, bk.ErrItemUnavailable):
			c.JSON(http.StatusBadRequest, gin.H{"error": "item not available"})
		case errors.Is(err, bk.ErrIntervalTaken):
			c.JSON(http.StatusBadRequest, gin.H{"error": "interval unavailable"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create booking"})
		}

		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *BookingHandler) Approve(c *gin.Context) {
	bookingID, ok := bookingIDParam(c)

	if !ok {
		return
	}

	approved, err := strconv.ParseBool(c.Query("approved"))

	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse approved query parameter"})
		return
	}

	b, err := h.service.ApproveBooking(c.Request.Context(), callerID(c), bookingID, approved)

	if err != nil {
		h.statusChangeError(c, err)
		return
	}

	c.IndentedJSON(http.StatusOK, b)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	bookingID, ok := bookingIDParam(c)

	if !ok {
		return
	}

	b, err := h.service.CancelBooking(c.Request.Context(), callerID(c), bookingID)

	if err != nil {
		h.statusChangeError(c, err)
		return
	}

	c.IndentedJSON(http.StatusOK, b)
}

func (h *BookingHandler) GetByID(c *gin.Context) {
	bookingID, ok := bookingIDParam(c)

	if !ok {
		return
	}

	b, err := h.service.GetBookingByID(c.Request.Context(), callerID(c), bookingID)

	if err != nil {
		c.Error(err)

		switch {
		case errors.Is(err, bk.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		case errors.Is(err, bk.ErrAccessDenied):
			c.JSON(http.StatusForbidden, gin.H{"error": "access to booking denied"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch booking"})
		}

		return
	}

	c.IndentedJSON(http.StatusOK, b)
}

func (h *BookingHandler) ListByBooker(c *gin.Context) {
	h.list(c, h.service.GetBookingsByBooker)
}

func (h *BookingHandler) ListByOwner(c *gin.Context) {
	h.list(c, h.service.GetBookingsByOwner)
}

func (h *BookingHandler) list(c *gin.Context, query func(context.Context, uuid.UUID, bk.State) ([]bk.Booking, error)) {
	state, err := bk.ParseState(c.DefaultQuery("state", string(bk.StateAll)))

	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	bookings, err := query(c.Request.Context(), callerID(c), state)

	if err != nil {
		c.Error(err)

		if errors.Is(err, user.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch bookings"})
		return
	}

	c.IndentedJSON(http.StatusOK, bookings)
}

// statusChangeError maps the failures shared by approve and cancel:
// interval conflicts discovered at approval time are 409, not the 400 a
// create-time conflict gets, because the booking itself was valid when
// filed.
func (h *BookingHandler) statusChangeError(c *gin.Context, err error) {
	c.Error(err)

	switch {
	case errors.Is(err, bk.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
	case errors.Is(err, bk.ErrAccessDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": "access to booking denied"})
	case errors.Is(err, bk.ErrAlreadyProcessed):
		c.JSON(http.StatusConflict, gin.H{"error": "already processed"})
	case errors.Is(err, bk.ErrIntervalTaken):
		c.JSON(http.StatusConflict, gin.H{"error": "interval unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update booking"})
	}
}

func bookingIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("bookingId"))

	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking id"})
		return uuid.Nil, false
	}

	return id, true
}
