package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"
	"time"
	"yatube/config"
	"yatube/db"
	"yatube/models"

	"github.com/stretchr/testify/require"
)

var testImageGIF = []byte{
	0x47, 0x49, 0x46, 0x38, 0x39, 0x61, 0x02, 0x00,
	0x01, 0x00, 0x80, 0x00, 0x00, 0x00, 0x00, 0x00,
	0xFF, 0xFF, 0xFF, 0x21, 0xF9, 0x04, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x2C, 0x00, 0x00, 0x00, 0x00,
	0x02, 0x00, 0x01, 0x00, 0x00, 0x02, 0x02, 0x0C,
	0x0A, 0x00, 0x3B,
}

func TestNewPostRequiresAuth(t *testing.T) {
	r := setupRouter(t)

	w := doGet(r, "/new/", "")
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/auth/login/", w.Header().Get("Location"))
}

func TestNewPostCreatesAndRedirects(t *testing.T) {
	r := setupRouter(t)
	_, token := createUserWithToken(t)

	group := models.Group{Title: "Тестовая группа", Slug: "test-slug", Description: "Тестовое описание"}
	require.NoError(t, db.ORM.Create(&group).Error)

	before := postCount(t)

	form := url.Values{}
	form.Set("text", "Тестовый текст")
	form.Set("group", fmt.Sprintf("%d", group.ID))
	w := doForm(r, "/new/", token, form)

	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/", w.Header().Get("Location"))
	require.Equal(t, before+1, postCount(t))

	var post models.Post
	require.NoError(t, db.ORM.Order("id DESC").First(&post).Error)
	require.Equal(t, "Тестовый текст", post.Text)
	require.NotNil(t, post.GroupID)
	require.Equal(t, group.ID, *post.GroupID)
}

func TestNewPostInvalidFormRejected(t *testing.T) {
	r := setupRouter(t)
	_, token := createUserWithToken(t)

	before := postCount(t)

	form := url.Values{}
	form.Set("text", "   ")
	w := doForm(r, "/new/", token, form)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, before, postCount(t))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	errs, ok := body["errors"].(map[string]interface{})
	require.True(t, ok)
	require.Contains(t, errs, "text")
}

func TestNewPostWithImage(t *testing.T) {
	r := setupRouter(t)
	_, token := createUserWithToken(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("text", "запись с картинкой"))
	fw, err := mw.CreateFormFile("image", "small.gif")
	require.NoError(t, err)
	_, err = fw.Write(testImageGIF)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req, _ := http.NewRequest(http.MethodPost, "/new/", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusFound, w.Code)

	var post models.Post
	require.NoError(t, db.ORM.Order("id DESC").First(&post).Error)
	require.NotEmpty(t, post.Image)

	// Файл реально лежит под media root
	_, err = os.Stat(filepath.Join(config.AppConfig.Media.Root, filepath.FromSlash(post.Image)))
	require.NoError(t, err)
}

func TestNewPostRejectsBrokenImage(t *testing.T) {
	r := setupRouter(t)
	_, token := createUserWithToken(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("text", "текст"))
	fw, err := mw.CreateFormFile("image", "not_image.txt")
	require.NoError(t, err)
	_, err = fw.Write([]byte("plain text, not an image"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req, _ := http.NewRequest(http.MethodPost, "/new/", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, int64(0), postCount(t))
}

func TestPostViewShowsPostAndComments(t *testing.T) {
	r := setupRouter(t)
	author, _ := createUserWithToken(t)
	post := createPost(t, author, "Тестовый текст")

	commenter, _ := createUserWithToken(t)
	require.NoError(t, db.ORM.Create(&models.Comment{
		PostID: post.ID, AuthorID: commenter.ID, Text: "первый",
	}).Error)

	w := doGet(r, fmt.Sprintf("/%s/%d/", author.Username, post.ID), "")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, float64(1), body["post_count"])
	comments := body["comments"].([]interface{})
	require.Len(t, comments, 1)
}

func TestPostViewUnknownPost404(t *testing.T) {
	r := setupRouter(t)
	author, _ := createUserWithToken(t)

	w := doGet(r, fmt.Sprintf("/%s/9999/", author.Username), "")
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestPostEditByNonAuthorRedirectsWithoutChange(t *testing.T) {
	r := setupRouter(t)
	author, _ := createUserWithToken(t)
	_, strangerToken := createUserWithToken(t)
	post := createPost(t, author, "исходный текст")

	form := url.Values{}
	form.Set("text", "взломанный текст")
	w := doForm(r, fmt.Sprintf("/%s/%d/edit/", author.Username, post.ID), strangerToken, form)

	// Молчаливый редирект на просмотр, не 403
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, fmt.Sprintf("/%s/%d/", author.Username, post.ID), w.Header().Get("Location"))

	var reloaded models.Post
	require.NoError(t, db.ORM.First(&reloaded, post.ID).Error)
	require.Equal(t, "исходный текст", reloaded.Text)
}

func TestPostEditByAuthor(t *testing.T) {
	r := setupRouter(t)
	author, token := createUserWithToken(t)
	post := createPost(t, author, "до правки")

	form := url.Values{}
	form.Set("text", "после правки")
	w := doForm(r, fmt.Sprintf("/%s/%d/edit/", author.Username, post.ID), token, form)

	require.Equal(t, http.StatusFound, w.Code)

	var reloaded models.Post
	require.NoError(t, db.ORM.First(&reloaded, post.ID).Error)
	require.Equal(t, "после правки", reloaded.Text)
	// Дата публикации выставляется один раз и не меняется
	require.WithinDuration(t, post.PubDate, reloaded.PubDate, time.Second)
}

func TestPostEditInvalidForm(t *testing.T) {
	r := setupRouter(t)
	author, token := createUserWithToken(t)
	post := createPost(t, author, "оригинал")

	form := url.Values{}
	form.Set("text", "")
	w := doForm(r, fmt.Sprintf("/%s/%d/edit/", author.Username, post.ID), token, form)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, true, body["is_edit"])

	var reloaded models.Post
	require.NoError(t, db.ORM.First(&reloaded, post.ID).Error)
	require.Equal(t, "оригинал", reloaded.Text)
}
