package store

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/reqpilot/reqpilot/db"
	"github.com/reqpilot/reqpilot/internal/models"
	"github.com/reqpilot/reqpilot/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))

	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, gdb.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.Requirement{},
		&models.Message{},
	))

	db.DB = gdb
}

func createTestUser(t *testing.T, email string, role string) *models.User {
	t.Helper()

	user := &models.User{Email: email, PasswordHash: "x", Role: role}
	require.NoError(t, CreateUser(user))

	return user
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	setupTestDB(t)

	createTestUser(t, "a@x.com", types.RoleUser)

	err := CreateUser(&models.User{Email: "a@x.com", PasswordHash: "y", Role: types.RoleUser})
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestInsertUserDuplicateEmail(t *testing.T) {
	setupTestDB(t)

	createTestUser(t, "a@x.com", types.RoleUser)

	// Insert directly, as a registration racing past the pre-check would,
	// and expect the unique-index violation mapped to the domain error.
	err := insertUser(&models.User{Email: "a@x.com", PasswordHash: "y", Role: types.RoleUser})
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestFindUserByEmail(t *testing.T) {
	setupTestDB(t)

	created := createTestUser(t, "a@x.com", types.RoleUser)

	found, err := FindUserByEmail("a@x.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = FindUserByEmail("missing@x.com")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestFindFirstAdmin(t *testing.T) {
	setupTestDB(t)

	createTestUser(t, "u@x.com", types.RoleUser)

	_, err := FindFirstAdmin()
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	first := createTestUser(t, "admin1@x.com", types.RoleAdmin)
	createTestUser(t, "admin2@x.com", types.RoleAdmin)

	admin, err := FindFirstAdmin()
	require.NoError(t, err)
	assert.Equal(t, first.ID, admin.ID)
}

func TestFindProjectOwned(t *testing.T) {
	setupTestDB(t)

	owner := createTestUser(t, "a@x.com", types.RoleUser)
	other := createTestUser(t, "b@x.com", types.RoleUser)

	project := &models.Project{Name: "P1", OwnerID: owner.ID}
	require.NoError(t, CreateProject(project))

	found, err := FindProjectOwned(project.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, "P1", found.Name)

	_, err = FindProjectOwned(project.ID, other.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestListProjectsByOwner(t *testing.T) {
	setupTestDB(t)

	owner := createTestUser(t, "a@x.com", types.RoleUser)
	other := createTestUser(t, "b@x.com", types.RoleUser)

	require.NoError(t, CreateProject(&models.Project{Name: "P1", OwnerID: owner.ID}))
	require.NoError(t, CreateProject(&models.Project{Name: "P2", OwnerID: owner.ID}))
	require.NoError(t, CreateProject(&models.Project{Name: "Q", OwnerID: other.ID}))

	projects, err := ListProjectsByOwner(owner.ID)
	require.NoError(t, err)
	assert.Len(t, projects, 2)
}

func TestListAllProjectsWithOwner(t *testing.T) {
	setupTestDB(t)

	owner := createTestUser(t, "a@x.com", types.RoleUser)
	require.NoError(t, CreateProject(&models.Project{Name: "P1", OwnerID: owner.ID}))

	rows, err := ListAllProjectsWithOwner()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "P1", rows[0].ProjectName)
	assert.Equal(t, "a@x.com", rows[0].UserEmail)
}

func TestListRequirementsByProjectNewestFirst(t *testing.T) {
	setupTestDB(t)

	owner := createTestUser(t, "a@x.com", types.RoleUser)
	project := &models.Project{Name: "P1", OwnerID: owner.ID}
	require.NoError(t, CreateProject(project))

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	older := &models.Requirement{ProjectID: project.ID, Text: "older", Category: "Uncertain"}
	older.CreatedAt = base
	require.NoError(t, CreateRequirement(older))

	newer := &models.Requirement{ProjectID: project.ID, Text: "newer", Category: "Uncertain"}
	newer.CreatedAt = base.Add(time.Minute)
	require.NoError(t, CreateRequirement(newer))

	requirements, err := ListRequirementsByProject(project.ID)
	require.NoError(t, err)
	require.Len(t, requirements, 2)
	assert.Equal(t, "newer", requirements[0].Text)
	assert.Equal(t, "older", requirements[1].Text)
}

func TestListMessagesForParticipant(t *testing.T) {
	setupTestDB(t)

	alice := createTestUser(t, "a@x.com", types.RoleUser)
	admin := createTestUser(t, "admin@x.com", types.RoleAdmin)
	stranger := createTestUser(t, "c@x.com", types.RoleUser)

	project := &models.Project{Name: "P1", OwnerID: alice.ID}
	require.NoError(t, CreateProject(project))

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	first := &models.Message{ProjectID: project.ID, SenderID: alice.ID, ReceiverID: admin.ID, Content: "please review"}
	first.CreatedAt = base
	require.NoError(t, CreateMessage(first))

	reply := &models.Message{ProjectID: project.ID, SenderID: admin.ID, ReceiverID: alice.ID, Content: "on it", ParentID: &first.ID}
	reply.CreatedAt = base.Add(time.Minute)
	require.NoError(t, CreateMessage(reply))

	unrelated := &models.Message{ProjectID: project.ID, SenderID: stranger.ID, ReceiverID: stranger.ID, Content: "noise"}
	unrelated.CreatedAt = base.Add(2 * time.Minute)
	require.NoError(t, CreateMessage(unrelated))

	messages, err := ListMessagesForParticipant(project.ID, alice.ID)
	require.NoError(t, err)
	require.Len(t, messages, 2)

	assert.Equal(t, "please review", messages[0].Content)
	assert.Equal(t, "a@x.com", messages[0].SenderEmail)
	assert.Nil(t, messages[0].ParentID)

	assert.Equal(t, "on it", messages[1].Content)
	assert.Equal(t, "admin@x.com", messages[1].SenderEmail)
	require.NotNil(t, messages[1].ParentID)
	assert.Equal(t, first.ID, *messages[1].ParentID)

	assert.True(t, !messages[1].CreatedAt.Before(messages[0].CreatedAt))
}
