package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"
	"yatube/db"
	"yatube/models"

	"github.com/stretchr/testify/require"
)

func TestGroupPostsUnknownSlug404(t *testing.T) {
	r := setupRouter(t)

	w := doGet(r, "/group/no-such-slug/", "")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestGroupPostsScopedToGroup(t *testing.T) {
	r := setupRouter(t)
	author, _ := createUserWithToken(t)

	group := models.Group{Title: "Тестовая группа", Slug: "test-slug", Description: "Тестовое описание"}
	require.NoError(t, db.ORM.Create(&group).Error)
	other := models.Group{Title: "Другая", Slug: "other-slug"}
	require.NoError(t, db.ORM.Create(&other).Error)

	inGroup := models.Post{Text: "в группе", PubDate: time.Now(), AuthorID: author.ID, GroupID: &group.ID}
	require.NoError(t, db.ORM.Create(&inGroup).Error)
	outside := models.Post{Text: "вне группы", PubDate: time.Now(), AuthorID: author.ID, GroupID: &other.ID}
	require.NoError(t, db.ORM.Create(&outside).Error)
	createPost(t, author, "без группы")

	w := doGet(r, "/group/test-slug/", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	posts := body["posts"].([]interface{})
	require.Len(t, posts, 1)
	require.Equal(t, "в группе", posts[0].(map[string]interface{})["text"])

	groupBody := body["group"].(map[string]interface{})
	require.Equal(t, "test-slug", groupBody["slug"])
}

func TestGroupList(t *testing.T) {
	r := setupRouter(t)

	require.NoError(t, db.ORM.Create(&models.Group{Title: "A", Slug: "a"}).Error)
	require.NoError(t, db.ORM.Create(&models.Group{Title: "B", Slug: "b"}).Error)

	w := doGet(r, "/group/", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body["groups"].([]interface{}), 2)
}
