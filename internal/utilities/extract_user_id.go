package utilities

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ExtractBearerUserID resolves the calling user's id from the request.
// The bearer token IS the user id in this deployment; there is no token
// issuance. A userId query param is accepted as a fallback.
func ExtractBearerUserID(c *gin.Context) (int, error) {
	const bearerSchema = "Bearer "

	authHeader := c.GetHeader("Authorization")
	if len(authHeader) > len(bearerSchema) && authHeader[:len(bearerSchema)] == bearerSchema {
		id, err := strconv.Atoi(authHeader[len(bearerSchema):])
		if err != nil {
			return 0, fmt.Errorf("invalid bearer token")
		}
		return id, nil
	}

	if raw := c.Query("userId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return 0, fmt.Errorf("invalid userId query param")
		}
		return id, nil
	}

	return 0, fmt.Errorf("valid user ID is required")
}
