package handlers

import (
	"fmt"
	"net/http"
	"yatube/models"
	"yatube/services"

	"github.com/gin-gonic/gin"
)

// FollowIndex - лента записей авторов, на которых подписан пользователь
func FollowIndex(c *gin.Context) {
	pageNumber := services.ParsePageNumber(c.Query("page"))

	var posts []models.Post
	page, err := services.Paginate(
		postService.FollowPosts(c.Request.Context(), c.GetInt64("user_id")),
		pageNumber, &posts,
	)
	if err != nil {
		ServerError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"page": page, "posts": newPostViews(posts)})
}

// ProfileFollow подписывает на автора. Повторная подписка и подписка
// на себя не создают ничего и не считаются ошибкой.
func ProfileFollow(c *gin.Context) {
	author, err := userService.UserByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		PageNotFound(c)
		return
	}

	if err := followService.Follow(c.Request.Context(), c.GetInt64("user_id"), author.ID); err != nil {
		ServerError(c)
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/%s/", author.Username))
}

// ProfileUnfollow отписывает от автора, отсутствие подписки - не ошибка
func ProfileUnfollow(c *gin.Context) {
	author, err := userService.UserByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		PageNotFound(c)
		return
	}

	if err := followService.Unfollow(c.Request.Context(), c.GetInt64("user_id"), author.ID); err != nil {
		ServerError(c)
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("/%s/", author.Username))
}
