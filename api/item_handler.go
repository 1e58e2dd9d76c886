package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gearshare/gearshare-backend/item"
	"github.com/gearshare/gearshare-backend/user"
)

type ItemService interface {
	CreateItem(ctx context.Context, ownerID uuid.UUID, req item.CreateItemRequest) (item.Item, error)
	UpdateItem(ctx context.Context, callerID, itemID uuid.UUID, req item.UpdateItemRequest) (item.Item, error)
	GetItemByID(ctx context.Context, callerID, itemID uuid.UUID) (item.ItemView, error)
	GetItemsByOwner(ctx context.Context, ownerID uuid.UUID) ([]item.Item, error)
	SearchItems(ctx context.Context, text string) ([]item.Item, error)
	AddComment(ctx context.Context, authorID, itemID uuid.UUID, req item.CreateCommentRequest) (item.Comment, error)
}

type ItemHandler struct {
	service ItemService
}

func NewItemHandler(service ItemService) *ItemHandler {
	return &ItemHandler{service: service}
}

func (h *ItemHandler) Register(rg *gin.RouterGroup) {
	rg.POST("", h.Create)
	rg.PATCH("/:itemId", h.Update)
	rg.GET("/:itemId", h.GetByID)
	rg.GET("", h.ListByOwner)
	rg.GET("/search", h.Search)
	rg.POST("/:itemId/comment", h.AddComment)
}

func (h *ItemHandler) Create(c *gin.Context) {
	var req item.CreateItemRequest

	if err := c.BindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	created, err := h.service.CreateItem(c.Request.Context(), callerID(c), req)

	if err != nil {
		c.Error(err)

		if errors.Is(err, user.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create item"})
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *ItemHandler) Update(c *gin.Context) {
	itemID, ok := itemIDParam(c)

	if !ok {
		return
	}

	var req item.UpdateItemRequest

	if err := c.BindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	updated, err := h.service.UpdateItem(c.Request.Context(), callerID(c), itemID, req)

	if err != nil {
		c.Error(err)

		switch {
		case errors.Is(err, user.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		case errors.Is(err, item.ErrItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
		case errors.Is(err, item.ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "item not owned by user"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update item"})
		}

		return
	}

	c.IndentedJSON(http.StatusOK, updated)
}

func (h *ItemHandler) GetByID(c *gin.Context) {
	itemID, ok := itemIDParam(c)

	if !ok {
		return
	}

	view, err := h.service.GetItemByID(c.Request.Context(), callerID(c), itemID)

	if err != nil {
		c.Error(err)

		if errors.Is(err, item.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch item"})
		return
	}

	c.IndentedJSON(http.StatusOK, view)
}

func (h *ItemHandler) ListByOwner(c *gin.Context) {
	items, err := h.service.GetItemsByOwner(c.Request.Context(), callerID(c))

	if err != nil {
		c.Error(err)

		if errors.Is(err, user.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch items"})
		return
	}

	c.IndentedJSON(http.StatusOK, items)
}

func (h *ItemHandler) Search(c *gin.Context) {
	items, err := h.service.SearchItems(c.Request.Context(), c.Query("text"))

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to search items"})
		return
	}

	c.IndentedJSON(http.StatusOK, items)
}

func (h *ItemHandler) AddComment(c *gin.Context) {
	itemID, ok := itemIDParam(c)

	if !ok {
		return
	}

	var req item.CreateCommentRequest

	if err := c.BindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	comment, err := h.service.AddComment(c.Request.Context(), callerID(c), itemID, req)

	if err != nil {
		c.Error(err)

		switch {
		case errors.Is(err, user.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		case errors.Is(err, item.ErrItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
		case errors.Is(err, item.ErrNotBooked):
			c.JSON(http.StatusBadRequest, gin.H{"error": "user has not booked this item"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add comment"})
		}

		return
	}

	c.JSON(http.StatusCreated, comment)
}

func itemIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("itemId"))

	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return uuid.Nil, false
	}

	return id, true
}
