package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/reqpilot/reqpilot/internal/services"
	"github.com/reqpilot/reqpilot/internal/store"
	"github.com/reqpilot/reqpilot/internal/utils"
	"gorm.io/gorm"
)

type SendMessageRequest struct {
	ProjectID  uint   `json:"project_id" binding:"required"`
	ReceiverID uint   `json:"receiver_id" binding:"required"`
	Content    string `json:"content" binding:"required"`
	ParentID   *uint  `json:"parent_id"`
}

func SendMessage(ctx *gin.Context) {
	var body SendMessageRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Missing receiver_id or content"})
		return
	}

	senderID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	messageID, err := services.SendMessage(services.SendMessageInput{
		ProjectID:  body.ProjectID,
		SenderID:   senderID,
		ReceiverID: body.ReceiverID,
		Content:    body.Content,
		ParentID:   body.ParentID,
	})

	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingMessageFields):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Missing receiver_id or content"})
		case errors.Is(err, services.ErrInvalidParent):
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Parent message not found"})
		default:
			log.Printf("Failed to send message: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
		}
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"id":      messageID,
		"message": "Message sent successfully",
	})
}

func ListProjectMessages(ctx *gin.Context) {
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

	messages, err := services.ListMessagesForParticipant(projectID, userID)

	if err != nil {
		log.Printf("Failed to list messages: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve messages"})
		return
	}

	ctx.JSON(http.StatusOK, messages)
}

// GetAdminContact gives a user someone to message: the first registered
// admin, or an empty object when none exists.
func GetAdminContact(ctx *gin.Context) {
	admin, err := store.FindFirstAdmin()

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusOK, gin.H{})
			return
		}
		log.Printf("Failed to find admin: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"id":    admin.ID,
		"email": admin.Email,
	})
}
