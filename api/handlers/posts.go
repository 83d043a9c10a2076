package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"yatube/api/middleware"
	"yatube/db"
	"yatube/forms"
	"yatube/models"
	"yatube/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var (
	postService    = services.NewPostService()
	userService    = services.NewUserService()
	commentService = services.NewCommentService()
	followService  = services.NewFollowService()
	groupService   = services.NewGroupService()
)

func postURL(username string, postID int64) string {
	return fmt.Sprintf("/%s/%d/", username, postID)
}

// Index - главная лента, 10 записей на страницу.
// Ответ кешируется как блоб по номеру страницы: пока запись жива,
// новые посты в ленте не видны.
func Index(c *gin.Context) {
	pageNumber := services.ParsePageNumber(c.Query("page"))

	if services.IndexPageCache != nil {
		if blob, ok := services.IndexPageCache.Get(c.Request.Context(), pageNumber); ok {
			middleware.RecordFeedCache(true)
			c.Data(http.StatusOK, "application/json; charset=utf-8", blob)
			return
		}
		middleware.RecordFeedCache(false)
	}

	var posts []models.Post
	page, err := services.Paginate(postService.IndexPosts(c.Request.Context()), pageNumber, &posts)
	if err != nil {
		ServerError(c)
		return
	}

	body, err := json.Marshal(feedPage{Page: page, Posts: newPostViews(posts)})
	if err != nil {
		ServerError(c)
		return
	}

	if services.IndexPageCache != nil {
		services.IndexPageCache.Set(c.Request.Context(), pageNumber, body)
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

// bindPostForm собирает PostForm из multipart/urlencoded запроса
func bindPostForm(c *gin.Context) (*forms.PostForm, error) {
	form := &forms.PostForm{Text: c.PostForm("text")}

	if raw := c.PostForm("group"); raw != "" {
		groupID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid group id: %w", err)
		}
		form.GroupID = &groupID
	}

	if fileHeader, err := c.FormFile("image"); err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			return nil, err
		}
		defer file.Close()
		data, err := io.ReadAll(file)
		if err != nil {
			return nil, err
		}
		form.Image = data
		form.ImageName = fileHeader.Filename
	}

	return form, nil
}

// NewPost - создание записи. GET отдает пустую форму,
// валидный POST создает запись и уводит на главную.
func NewPost(c *gin.Context) {
	if c.Request.Method == http.MethodGet {
		c.JSON(http.StatusOK, gin.H{
			"form": gin.H{"text": "", "group": nil, "image": nil},
		})
		return
	}

	form, err := bindPostForm(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"form":   gin.H{"text": "", "group": nil, "image": nil},
			"errors": gin.H{"form": "некорректная форма"},
		})
		return
	}

	if errs := form.Validate(db.GetReadOnlyDB(c.Request.Context())); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"form":   gin.H{"text": form.Text, "group": form.GroupID, "image": nil},
			"errors": errs,
		})
		return
	}

	user, err := currentUser(c)
	if err != nil {
		ServerError(c)
		return
	}

	imagePath := ""
	if len(form.Image) > 0 {
		imagePath, err = services.SaveImage(form.Image, form.ImageName)
		if err != nil {
			ServerError(c)
			return
		}
	}

	if _, err := postService.CreatePost(c.Request.Context(), user, form.Text, form.GroupID, imagePath); err != nil {
		ServerError(c)
		return
	}

	c.Redirect(http.StatusFound, "/")
}

// PostView - страница одной записи со всеми комментариями
func PostView(c *gin.Context) {
	username := c.Param("username")
	postID, err := strconv.ParseInt(c.Param("post_id"), 10, 64)
	if err != nil {
		PageNotFound(c)
		return
	}

	post, err := postService.GetPost(c.Request.Context(), username, postID)
	if err != nil {
		PageNotFound(c)
		return
	}

	postCount, err := postService.CountByAuthor(c.Request.Context(), post.AuthorID)
	if err != nil {
		ServerError(c)
		return
	}

	comments, err := commentService.ListComments(c.Request.Context(), post.ID)
	if err != nil {
		ServerError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"author":     newAuthorView(post.Author),
		"post":       newPostView(post),
		"post_count": postCount,
		"comments":   newCommentViews(comments),
		"form":       gin.H{"text": ""},
	})
}

// PostEdit - редактирование записи. Не-автор молча уводится на просмотр
// записи, без 403.
func PostEdit(c *gin.Context) {
	username := c.Param("username")
	postID, err := strconv.ParseInt(c.Param("post_id"), 10, 64)
	if err != nil {
		PageNotFound(c)
		return
	}

	post, err := postService.GetPost(c.Request.Context(), username, postID)
	if err != nil {
		PageNotFound(c)
		return
	}

	if c.GetInt64("user_id") != post.AuthorID {
		c.Redirect(http.StatusFound, postURL(username, postID))
		return
	}

	if c.Request.Method == http.MethodGet {
		c.JSON(http.StatusOK, gin.H{
			"form":    gin.H{"text": post.Text, "group": post.GroupID, "image": post.Image},
			"is_edit": true,
			"post":    newPostView(post),
		})
		return
	}

	form, bindErr := bindPostForm(c)
	if bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"errors":  gin.H{"form": "некорректная форма"},
			"is_edit": true,
		})
		return
	}

	if errs := form.Validate(db.GetReadOnlyDB(c.Request.Context())); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"form":    gin.H{"text": form.Text, "group": form.GroupID, "image": post.Image},
			"errors":  errs,
			"is_edit": true,
		})
		return
	}

	imagePath := ""
	if len(form.Image) > 0 {
		imagePath, err = services.SaveImage(form.Image, form.ImageName)
		if err != nil {
			ServerError(c)
			return
		}
	}

	if err := postService.UpdatePost(c.Request.Context(), post, form.Text, form.GroupID, imagePath); err != nil {
		ServerError(c)
		return
	}

	c.Redirect(http.StatusFound, postURL(username, postID))
}

// currentUser достает авторизованного пользователя, положенного middleware
func currentUser(c *gin.Context) (*models.User, error) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	var user models.User
	if err := db.GetReadOnlyDB(c.Request.Context()).First(&user, userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
