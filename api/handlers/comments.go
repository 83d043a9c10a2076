package handlers

import (
	"net/http"
	"strconv"
	"yatube/forms"

	"github.com/gin-gonic/gin"
)

// AddComment создает комментарий к записи. Невалидная форма молча
// отбрасывается, ответ в любом случае - редирект на запись.
func AddComment(c *gin.Context) {
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

	form := forms.CommentForm{Text: c.PostForm("text")}
	if errs := form.Validate(); len(errs) == 0 {
		if _, err := commentService.AddComment(c.Request.Context(), post.ID, c.GetInt64("user_id"), form.Text); err != nil {
			ServerError(c)
			return
		}
	}

	c.Redirect(http.StatusFound, postURL(username, postID))
}
