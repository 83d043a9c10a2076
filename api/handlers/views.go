package handlers

import (
	"time"
	"yatube/models"
	"yatube/services"
)

// Вью-модели: то, что уходит клиенту вместо шаблонов

type authorView struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

type groupView struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
}

type postView struct {
	ID      int64       `json:"id"`
	Text    string      `json:"text"`
	PubDate time.Time   `json:"pub_date"`
	Author  *authorView `json:"author,omitempty"`
	Group   *groupView  `json:"group,omitempty"`
	Image   string      `json:"image,omitempty"`
}

type commentView struct {
	ID      int64       `json:"id"`
	Text    string      `json:"text"`
	Created time.Time   `json:"created"`
	Author  *authorView `json:"author,omitempty"`
}

type feedPage struct {
	Page  *services.Page `json:"page"`
	Posts []postView     `json:"posts"`
}

func newAuthorView(user *models.User) *authorView {
	if user == nil {
		return nil
	}
	return &authorView{
		ID:        user.ID,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}
}

func newGroupView(group *models.Group) *groupView {
	if group == nil {
		return nil
	}
	return &groupView{
		ID:          group.ID,
		Title:       group.Title,
		Slug:        group.Slug,
		Description: group.Description,
	}
}

func newPostView(post *models.Post) postView {
	return postView{
		ID:      post.ID,
		Text:    post.Text,
		PubDate: post.PubDate,
		Author:  newAuthorView(post.Author),
		Group:   newGroupView(post.Group),
		Image:   post.Image,
	}
}

func newPostViews(posts []models.Post) []postView {
	views := make([]postView, 0, len(posts))
	for i := range posts {
		views = append(views, newPostView(&posts[i]))
	}
	return views
}

func newCommentViews(comments []models.Comment) []commentView {
	views := make([]commentView, 0, len(comments))
	for i := range comments {
		views = append(views, commentView{
			ID:      comments[i].ID,
			Text:    comments[i].Text,
			Created: comments[i].Created,
			Author:  newAuthorView(comments[i].Author),
		})
	}
	return views
}
