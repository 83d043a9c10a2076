package handlers_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"
	"yatube/api/routes"
	"yatube/config"
	"yatube/db"
	"yatube/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupRouter поднимает SQLite в памяти и регистрирует все маршруты
func setupRouter(t *testing.T) *gin.Engine {
	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	err = database.AutoMigrate(
		&models.User{}, &models.UserToken{}, &models.Migration{},
		&models.Group{}, &models.Post{}, &models.Comment{}, &models.Follow{},
	)
	require.NoError(t, err)
	db.ORM = database

	conf := &config.ConfigSchema{}
	conf.Media.Root = t.TempDir()
	conf.Cache.FeedTTL = 20
	config.AppConfig = conf

	gin.SetMode(gin.TestMode)
	r := gin.New()
	routes.PublicApi(r)
	return r
}

// createUserWithToken создает пользователя и валидный токен авторизации
func createUserWithToken(t *testing.T) (*models.User, string) {
	user := &models.User{
		Username:  gofakeit.Username(),
		FirstName: gofakeit.FirstName(),
		LastName:  gofakeit.LastName(),
	}
	require.NoError(t, db.ORM.Create(user).Error)

	token := fmt.Sprintf("test_token_%d", user.ID)
	require.NoError(t, db.ORM.Create(&models.UserToken{UserID: user.ID, Token: token}).Error)

	return user, token
}

func createPost(t *testing.T, author *models.User, text string) *models.Post {
	post := &models.Post{
		Text:     text,
		PubDate:  time.Now(),
		AuthorID: author.ID,
	}
	require.NoError(t, db.ORM.Create(post).Error)
	return post
}

func doGet(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doForm(r *gin.Engine, path, token string, form url.Values) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func postCount(t *testing.T) int64 {
	var count int64
	require.NoError(t, db.ORM.Model(&models.Post{}).Count(&count).Error)
	return count
}
