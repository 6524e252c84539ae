package middleware

import (
	"net/http"
	"strings"

	"github.com/BedirhanMehmetSoylu/KanMind-Backend/internal/app/token"
	"github.com/BedirhanMehmetSoylu/KanMind-Backend/pkg/apierrors"

	"github.com/gin-gonic/gin"
)

const userIDKey = "user_id"

// RequireAuth rejects requests without a valid bearer token and stores the
// authenticated user id on the context.
func RequireAuth(tokens *token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := GetLang(c)

		header := c.GetHeader("Authorization")
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || raw == "" {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, lang),
			)
			return
		}

		userID, err := tokens.Verify(raw)
		if err != nil {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, lang),
			)
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// GetUserID returns the authenticated user id set by RequireAuth. Zero means
// the request never passed authentication.
func GetUserID(c *gin.Context) uint64 {
	if v, exists := c.Get(userIDKey); exists {
		if id, ok := v.(uint64); ok {
			return id
		}
	}
	return 0
}
