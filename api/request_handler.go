package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gearshare/gearshare-backend/request"
	"github.com/gearshare/gearshare-backend/user"
)

type RequestService interface {
	CreateRequest(ctx context.Context, requesterID uuid.UUID, req request.CreateItemRequest) (request.ItemRequest, error)
	GetOwnRequests(ctx context.Context, requesterID uuid.UUID) ([]request.ItemRequestView, error)
	GetOtherRequests(ctx context.Context, callerID uuid.UUID) ([]request.ItemRequest, error)
	GetRequestByID(ctx context.Context, callerID, requestID uuid.UUID) (request.ItemRequestView, error)
}

type RequestHandler struct {
	service RequestService
}

func NewRequestHandler(service RequestService) *RequestHandler {
	return &RequestHandler{service: service}
}

func (h *RequestHandler) Register(rg *gin.RouterGroup) {
	rg.POST("", h.Create)
	rg.GET("", h.ListOwn)
	rg.GET("/all", h.ListOthers)
	rg.GET("/:requestId", h.GetByID)
}

func (h *RequestHandler) Create(c *gin.Context) {
	var req request.CreateItemRequest

	if err := c.BindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	created, err := h.service.CreateRequest(c.Request.Context(), callerID(c), req)

	if err != nil {
		c.Error(err)

		if errors.Is(err, user.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create item request"})
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *RequestHandler) ListOwn(c *gin.Context) {
	requests, err := h.service.GetOwnRequests(c.Request.Context(), callerID(c))

	if err != nil {
		h.listError(c, err)
		return
	}

	c.IndentedJSON(http.StatusOK, requests)
}

func (h *RequestHandler) ListOthers(c *gin.Context) {
	requests, err := h.service.GetOtherRequests(c.Request.Context(), callerID(c))

	if err != nil {
		h.listError(c, err)
		return
	}

	c.IndentedJSON(http.StatusOK, requests)
}

func (h *RequestHandler) GetByID(c *gin.Context) {
	requestID, err := uuid.Parse(c.Param("requestId"))

	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request id"})
		return
	}

	view, err := h.service.GetRequestByID(c.Request.Context(), callerID(c), requestID)

	if err != nil {
		c.Error(err)

		switch {
		case errors.Is(err, user.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		case errors.Is(err, request.ErrRequestNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "item request not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch item request"})
		}

		return
	}

	c.IndentedJSON(http.StatusOK, view)
}

func (h *RequestHandler) listError(c *gin.Context, err error) {
	c.Error(err)

	if errors.Is(err, user.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch item requests"})
}
