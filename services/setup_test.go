package services

import (
	"testing"

	"techforum/config"
	"techforum/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("Passw0rd!"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		FirstName: "Test",
		LastName:  "User",
		Email:     email,
		Password:  string(hash),
		Role:      models.RoleUser,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestQuestion(t *testing.T, db *gorm.DB, userID uint) *models.Question {
	t.Helper()

	question := &models.Question{
		UserID:      userID,
		Question:    "How do goroutines get scheduled?",
		Description: "Looking for an overview of the runtime scheduler.",
		Tags:        []string{"go", "runtime"},
	}
	require.NoError(t, db.Create(question).Error)
	return question
}
