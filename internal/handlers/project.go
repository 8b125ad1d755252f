package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/reqpilot/reqpilot/internal/models"
	"github.com/reqpilot/reqpilot/internal/store"
	"github.com/reqpilot/reqpilot/internal/utils"
	"github.com/samber/lo"
)

type CreateProjectRequest struct {
	Name string `json:"project_name" binding:"required"`
}

type ProjectResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func CreateProject(ctx *gin.Context) {
	var body CreateProjectRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Project name is required"})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	project := models.Project{
		Name:    body.Name,
		OwnerID: userID,
	}

	if err := store.CreateProject(&project); err != nil {
		log.Printf("Failed to create project: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
		return
	}

	ctx.JSON(http.StatusCreated, ProjectResponse{
		ID:   project.ID,
		Name: project.Name,
	})
}

func ListProjects(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	projects, err := store.ListProjectsByOwner(userID)

	if err != nil {
		log.Printf("Failed to list projects: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve projects"})
		return
	}

	response := lo.Map(projects, func(project models.Project, _ int) ProjectResponse {
		return ProjectResponse{
			ID:   project.ID,
			Name: project.Name,
		}
	})

	ctx.JSON(http.StatusOK, response)
}
