// Package store is the typed persistence facade over the four entity tables.
// Handlers and services never touch gorm queries directly.
package store

import (
	"errors"
	"time"

	"github.com/reqpilot/reqpilot/db"
	"github.com/reqpilot/reqpilot/internal/models"
	"github.com/reqpilot/reqpilot/internal/types"
	"gorm.io/gorm"
)

var ErrDuplicateEmail = errors.New("email already exists")

func CreateUser(user *models.User) error {
	var existing models.User

	err := db.DB.Where("email = ?", user.Email).First(&existing).Error

	if err == nil {
		return ErrDuplicateEmail
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return insertUser(user)
}

// insertUser writes the row and maps the unique-index violation, so a
// concurrent registration that slips past the pre-check still reports a
// duplicate instead of a generic store error.
func insertUser(user *models.User) error {
	if err := db.DB.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateEmail
		}
		return err
	}

	return nil
}

func FindUserByEmail(email string) (*models.User, error) {
	var user models.User

	if err := db.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

// FindFirstAdmin returns the oldest admin account, or gorm.ErrRecordNotFound
// when none has been registered yet.
func FindFirstAdmin() (*models.User, error) {
	var admin models.User

	if err := db.DB.Where("role = ?", types.RoleAdmin).Order("id ASC").First(&admin).Error; err != nil {
		return nil, err
	}

	return &admin, nil
}

func CreateProject(project *models.Project) error {
	return db.DB.Create(project).Error
}

func ListProjectsByOwner(ownerID uint) ([]models.Project, error) {
	projects := []models.Project{}

	if err := db.DB.Where("owner_id = ?", ownerID).Find(&projects).Error; err != nil {
		return nil, err
	}

	return projects, nil
}

// FindProjectOwned looks a project up by id scoped to its owner, so a user can
// never reach another user's project through a path parameter.
func FindProjectOwned(projectID uint, ownerID uint) (*models.Project, error) {
	var project models.Project

	if err := db.DB.Where("id = ? AND owner_id = ?", projectID, ownerID).First(&project).Error; err != nil {
		return nil, err
	}

	return &project, nil
}

type ProjectWithOwner struct {
	ID          uint   `json:"id"`
	ProjectName string `json:"project_name"`
	UserEmail   string `json:"user_email"`
}

func ListAllProjectsWithOwner() ([]ProjectWithOwner, error) {
	rows := []ProjectWithOwner{}

	err := db.DB.Model(&models.Project{}).
		Select("projects.id, projects.name AS project_name, users.email AS user_email").
		Joins("JOIN users ON users.id = projects.owner_id").
		Order("projects.id ASC").
		Scan(&rows).Error

	if err != nil {
		return nil, err
	}

	return rows, nil
}

func CreateRequirement(requirement *models.Requirement) error {
	return db.DB.Create(requirement).Error
}

func ListRequirementsByProject(projectID uint) ([]models.Requirement, error) {
	requirements := []models.Requirement{}

	err := db.DB.Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&requirements).Error

	if err != nil {
		return nil, err
	}

	return requirements, nil
}

func CreateMessage(message *models.Message) error {
	return db.DB.Create(message).Error
}

// FindProjectMessage fetches a message by id scoped to a project. Used to
// validate reply parents.
func FindProjectMessage(projectID uint, messageID uint) (*models.Message, error) {
	var message models.Message

	if err := db.DB.Where("id = ? AND project_id = ?", messageID, projectID).First(&message).Error; err != nil {
		return nil, err
	}

	return &message, nil
}

type MessageWithSender struct {
	ID          uint      `json:"id"`
	ProjectID   uint      `json:"project_id"`
	SenderID    uint      `json:"sender_id"`
	ReceiverID  uint      `json:"receiver_id"`
	Content     string    `json:"content"`
	ParentID    *uint     `json:"parent_id"`
	CreatedAt   time.Time `json:"created_at"`
	SenderEmail string    `json:"sender_email"`
}

func ListMessagesForParticipant(projectID uint, userID uint) ([]MessageWithSender, error) {
	rows := []MessageWithSender{}

	err := db.DB.Model(&models.Message{}).
		Select("messages.id, messages.project_id, messages.sender_id, messages.receiver_id, messages.content, messages.parent_id, messages.created_at, users.email AS sender_email").
		Joins("JOIN users ON users.id = messages.sender_id").
		Where("messages.project_id = ? AND (messages.sender_id = ? OR messages.receiver_id = ?)", projectID, userID, userID).
		Order("messages.created_at ASC").
		Scan(&rows).Error

	if err != nil {
		return nil, err
	}

	return rows, nil
}
