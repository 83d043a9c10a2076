package services

import (
	"context"
	"fmt"
	"time"
	"yatube/db"
	"yatube/models"
)

type CommentService struct{}

func NewCommentService() *CommentService {
	return &CommentService{}
}

// AddComment привязывает комментарий к записи и автору
func (cs *CommentService) AddComment(ctx context.Context, postID, authorID int64, text string) (*models.Comment, error) {
	comment := &models.Comment{
		PostID:   postID,
		AuthorID: authorID,
		Text:     text,
		Created:  time.Now(),
	}
	if err := db.GetWriteDB(ctx).Create(comment).Error; err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	return comment, nil
}

// ListComments возвращает все комментарии записи, старые первыми
func (cs *CommentService) ListComments(ctx context.Context, postID int64) ([]models.Comment, error) {
	var comments []models.Comment
	err := db.GetReadOnlyDB(ctx).
		Where("post_id = ?", postID).
		Preload("Author").
		Order("created ASC, id ASC").
		Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}
