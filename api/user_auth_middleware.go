package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/gearshare/gearshare-backend/user"
)

// UserIDHeader carries the caller's identity. There is no session layer;
// the deployment fronts this service with a gateway that authenticates and
// injects the header.
const UserIDHeader = "X-Sharer-User-Id"

// UserIdentity parses the identity header and verifies the user exists.
// Existence checks are memoized in known so hot callers do not hit the
// database on every request.
func UserIdentity(users UserService, known *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(UserIDHeader)

		if len(raw) == 0 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing " + UserIDHeader + " header"})
			c.Abort()
			return
		}

		id, err := uuid.Parse(raw)

		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + UserIDHeader + " header"})
			c.Abort()
			return
		}

		if _, cached := known.Get(raw); !cached {
			if _, err := users.GetUserByID(c.Request.Context(), id); err != nil {
				c.Error(err)

				if errors.Is(err, user.ErrUserNotFound) {
					c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
				} else {
					c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to verify user"})
				}

				c.Abort()
				return
			}

			known.SetDefault(raw, struct{}{})
		}

		c.Set("userID", id)
	}
}

func callerID(c *gin.Context) uuid.UUID {
	return c.MustGet("userID").(uuid.UUID)
}
