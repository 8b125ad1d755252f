package services

import (
	"errors"

	"github.com/reqpilot/reqpilot/internal/models"
	"github.com/reqpilot/reqpilot/internal/store"
	"gorm.io/gorm"
)

var (
	ErrMissingMessageFields = errors.New("receiver_id and content are required")
	ErrInvalidParent        = errors.New("parent message not found in project")
)

type SendMessageInput struct {
	ProjectID  uint
	SenderID   uint
	ReceiverID uint
	Content    string
	ParentID   *uint
}

// SendMessage validates and persists one message, returning its id. A reply
// parent must already exist in the same project.
func SendMessage(input SendMessageInput) (uint, error) {
	if input.ReceiverID == 0 || input.Content == "" {
		return 0, ErrMissingMessageFields
	}

	if input.ParentID != nil {
		if _, err := store.FindProjectMessage(input.ProjectID, *input.ParentID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return 0, ErrInvalidParent
			}
			return 0, err
		}
	}

	message := models.Message{
		ProjectID:  input.ProjectID,
		SenderID:   input.SenderID,
		ReceiverID: input.ReceiverID,
		Content:    input.Content,
		ParentID:   input.ParentID,
	}

	if err := store.CreateMessage(&message); err != nil {
		return 0, err
	}

	return message.ID, nil
}

// ListMessagesForParticipant returns every message of the project where the
// user is sender or receiver, oldest first, annotated with the sender's email.
func ListMessagesForParticipant(projectID uint, userID uint) ([]store.MessageWithSender, error) {
	return store.ListMessagesForParticipant(projectID, userID)
}
