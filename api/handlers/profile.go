package handlers

import (
	"net/http"
	"yatube/models"
	"yatube/services"

	"github.com/gin-gonic/gin"
)

// Profile - страница автора: его записи, счетчики и подписан ли
// на него текущий пользователь
func Profile(c *gin.Context) {
	author, err := userService.UserByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		PageNotFound(c)
		return
	}

	pageNumber := services.ParsePageNumber(c.Query("page"))

	var posts []models.Post
	page, err := services.Paginate(postService.AuthorPosts(c.Request.Context(), author.ID), pageNumber, &posts)
	if err != nil {
		ServerError(c)
		return
	}

	postCount, err := postService.CountByAuthor(c.Request.Context(), author.ID)
	if err != nil {
		ServerError(c)
		return
	}

	followerCount, err := followService.FollowerCount(c.Request.Context(), author.ID)
	if err != nil {
		ServerError(c)
		return
	}
	followingCount, err := followService.FollowingCount(c.Request.Context(), author.ID)
	if err != nil {
		ServerError(c)
		return
	}

	followCheck := false
	if viewerID := c.GetInt64("user_id"); viewerID != 0 {
		followCheck, err = followService.IsFollowing(c.Request.Context(), viewerID, author.ID)
		if err != nil {
			ServerError(c)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"author":          newAuthorView(author),
		"page":            page,
		"posts":           newPostViews(posts),
		"post_count":      postCount,
		"follower_count":  followerCount,
		"following_count": followingCount,
		"follow_check":    followCheck,
	})
}
