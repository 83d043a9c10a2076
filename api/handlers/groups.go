package handlers

import (
	"net/http"
	"yatube/models"
	"yatube/services"

	"github.com/gin-gonic/gin"
)

// GroupList - постраничный список всех групп
func GroupList(c *gin.Context) {
	pageNumber := services.ParsePageNumber(c.Query("page"))

	var groups []models.Group
	page, err := services.Paginate(groupService.All(c.Request.Context()), pageNumber, &groups)
	if err != nil {
		ServerError(c)
		return
	}

	views := make([]*groupView, 0, len(groups))
	for i := range groups {
		views = append(views, newGroupView(&groups[i]))
	}

	c.JSON(http.StatusOK, gin.H{"page": page, "groups": views})
}

// GroupPosts - лента записей одной группы, группа ищется по slug
func GroupPosts(c *gin.Context) {
	group, err := groupService.BySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		PageNotFound(c)
		return
	}

	pageNumber := services.ParsePageNumber(c.Query("page"))

	var posts []models.Post
	page, err := services.Paginate(postService.GroupPosts(c.Request.Context(), group.ID), pageNumber, &posts)
	if err != nil {
		ServerError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"group": newGroupView(group),
		"page":  page,
		"posts": newPostViews(posts),
	})
}
