//go:build unit

package api_test

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// asActor stands in for RequireAuth by putting the caller id on the context.
func asActor(id uuid.UUID, h gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", id)
		h(c)
	}
}
