package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/reqpilot/reqpilot/internal/models"
	"github.com/reqpilot/reqpilot/internal/services"
	"github.com/reqpilot/reqpilot/internal/store"
	"github.com/reqpilot/reqpilot/internal/utils"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

type SubmitRequirementRequest struct {
	Requirement string `json:"requirement"`
}

type RequirementResponse struct {
	ID        uint      `json:"id"`
	Text      string    `json:"text"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}

func SubmitRequirement(ctx *gin.Context) {
	projectID, err := utils.GetProjectID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if _, err := store.FindProjectOwned(projectID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		} else {
			log.Printf("Failed to fetch project: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve project"})
		}
		return
	}

	var body SubmitRequirementRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Requirement text is missing"})
		return
	}

	result, err := intake.Submit(projectID, body.Requirement)

	if err != nil {
		if errors.Is(err, services.ErrEmptyRequirement) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Requirement text is missing"})
			return
		}
		log.Printf("Failed to submit requirement: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save requirement"})
		return
	}

	ctx.JSON(http.StatusOK, result)
}

func ListRequirements(ctx *gin.Context) {
	projectID, err := utils.GetProjectID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if _, err := store.FindProjectOwned(projectID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		} else {
			log.Printf("Failed to fetch project: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve project"})
		}
		return
	}

	requirements, err := store.ListRequirementsByProject(projectID)

	if err != nil {
		log.Printf("Failed to list requirements: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve requirements"})
		return
	}

	response := lo.Map(requirements, func(requirement models.Requirement, _ int) RequirementResponse {
		return RequirementResponse{
			ID:        requirement.ID,
			Text:      requirement.Text,
			Category:  requirement.Category,
			CreatedAt: requirement.CreatedAt,
		}
	})

	ctx.JSON(http.StatusOK, response)
}
