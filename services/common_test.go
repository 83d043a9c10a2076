package services

import (
	"testing"
	"yatube/db"
	"yatube/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB подменяет глобальный ORM на SQLite в памяти
func setupTestDB(t *testing.T) {
	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = database.AutoMigrate(
		&models.User{}, &models.UserToken{}, &models.Migration{},
		&models.Group{}, &models.Post{}, &models.Comment{}, &models.Follow{},
	)
	require.NoError(t, err)

	db.ORM = database
}

func createTestUser(t *testing.T) *models.User {
	user := &models.User{
		Username:  gofakeit.Username(),
		FirstName: gofakeit.FirstName(),
		LastName:  gofakeit.LastName(),
	}
	require.NoError(t, db.ORM.Create(user).Error)
	return user
}
