package response

import (
	"log"
	"net/http"

	"github.com/fomoscore/backend/pkg/apperror"
	"github.com/gin-gonic/gin"
)

// GetPrivyID retrieves the authenticated user's privy ID from the context
func GetPrivyID(c *gin.Context) (string, error) {
	privyID, exists := c.Get("privy_id")
	if !exists {
		return "", apperror.ErrUnauthorized
	}

	id, ok := privyID.(string)
	if !ok || id == "" {
		return "", apperror.ErrUnauthorized
	}

	return id, nil
}

// ResponseError standardized error response
func ResponseError(c *gin.Context, err error) {
	code := apperror.MapErrorToStatus(err)

	// Log internal errors
	if code == http.StatusInternalServerError {
		log.Printf("[Internal Error]: %v", err)
	}

	c.JSON(code, gin.H{"error": err.Error()})
}
