package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/reqpilot/reqpilot/internal/store"
	"github.com/reqpilot/reqpilot/internal/utils"
)

func AdminListProjects(ctx *gin.Context) {
	projects, err := store.ListAllProjectsWithOwner()

	if err != nil {
		log.Printf("Failed to list projects: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve projects"})
		return
	}

	ctx.JSON(http.StatusOK, projects)
}

// AdminListRequirements returns the full requirement rows of any project,
// regardless of owner.
func AdminListRequirements(ctx *gin.Context) {
	projectID, err := utils.GetProjectID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	requirements, err := store.ListRequirementsByProject(projectID)

	if err != nil {
		log.Printf("Failed to list requirements: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve requirements"})
		return
	}

	ctx.JSON(http.StatusOK, requirements)
}

// AdminDashboardData dumps the mirror log: every classification result ever
// recorded, across all projects.
func AdminDashboardData(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, mirrorLog.Entries())
}
