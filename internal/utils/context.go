package utils

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/reqpilot/reqpilot/internal/middleware"
	"github.com/reqpilot/reqpilot/internal/types"
)

func GetCurrentUser(ctx *gin.Context) (middleware.AuthenticatedUser, error) {
	user, exists := ctx.Get(types.ContextUserKey)

	if !exists {
		return middleware.AuthenticatedUser{}, fmt.Errorf("User not authenticated")
	}

	authenticatedUser, ok := user.(middleware.AuthenticatedUser)

	if !ok {
		return middleware.AuthenticatedUser{}, fmt.Errorf("Invalid user type in context")
	}

	return authenticatedUser, nil
}

func GetCurrentUserID(ctx *gin.Context) (uint, error) {
	user, err := GetCurrentUser(ctx)

	if err != nil {
		return 0, err
	}

	return user.ID, nil
}

func GetProjectID(ctx *gin.Context) (uint, error) {
	raw := ctx.Param("project_id")

	projectID, err := strconv.ParseUint(raw, 10, 32)

	if err != nil {
		return 0, fmt.Errorf("invalid project ID: %s", raw)
	}

	return uint(projectID), nil
}
