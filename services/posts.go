package services

import (
	"context"
	"fmt"
	"log"
	"time"
	"yatube/db"
	"yatube/models"

	"gorm.io/gorm"
)

type PostService struct{}

func NewPostService() *PostService {
	return &PostService{}
}

// postOrder - порядок любой ленты: новые записи первыми
func postOrder(query *gorm.DB) *gorm.DB {
	return query.Order("pub_date DESC, id DESC")
}

// IndexPosts - запрос всех записей для главной страницы
func (ps *PostService) IndexPosts(ctx context.Context) *gorm.DB {
	return postOrder(db.GetReadOnlyDB(ctx).Model(&models.Post{}).Preload("Author").Preload("Group"))
}

// GroupPosts - записи одной группы
func (ps *PostService) GroupPosts(ctx context.Context, groupID int64) *gorm.DB {
	return postOrder(db.GetReadOnlyDB(ctx).Model(&models.Post{}).
		Where("group_id = ?", groupID).
		Preload("Author").Preload("Group"))
}

// AuthorPosts - записи одного автора
func (ps *PostService) AuthorPosts(ctx context.Context, authorID int64) *gorm.DB {
	return postOrder(db.GetReadOnlyDB(ctx).Model(&models.Post{}).
		Where("author_id = ?", authorID).
		Preload("Author").Preload("Group"))
}

// FollowPosts - записи авторов, на которых подписан пользователь
func (ps *PostService) FollowPosts(ctx context.Context, userID int64) *gorm.DB {
	return postOrder(db.GetReadOnlyDB(ctx).Model(&models.Post{}).
		Where("author_id IN (?)",
			db.GetReadOnlyDB(ctx).Model(&models.Follow{}).
				Select("author_id").Where("user_id = ?", userID)).
		Preload("Author").Preload("Group"))
}

// GetPost находит запись по имени автора и идентификатору
func (ps *PostService) GetPost(ctx context.Context, username string, postID int64) (*models.Post, error) {
	var post models.Post
	err := db.GetReadOnlyDB(ctx).
		Joins("JOIN users ON users.id = posts.author_id").
		Where("users.username = ? AND posts.id = ?", username, postID).
		Preload("Author").Preload("Group").
		First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// CountByAuthor возвращает общее число записей автора
func (ps *PostService) CountByAuthor(ctx context.Context, authorID int64) (int64, error) {
	var count int64
	err := db.GetReadOnlyDB(ctx).Model(&models.Post{}).Where("author_id = ?", authorID).Count(&count).Error
	return count, err
}

// CreatePost создает запись и рассылает событие подписчикам автора.
// PubDate выставляется здесь и больше никогда не меняется.
func (ps *PostService) CreatePost(ctx context.Context, author *models.User, text string, groupID *int64, image string) (*models.Post, error) {
	post := &models.Post{
		Text:     text,
		PubDate:  time.Now(),
		AuthorID: author.ID,
		GroupID:  groupID,
		Image:    image,
	}
	if err := db.GetWriteDB(ctx).Create(post).Error; err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	go ps.notifyFollowers(context.Background(), author, post)

	return post, nil
}

// UpdatePost меняет редактируемые поля записи. Автор и дата публикации неизменны.
func (ps *PostService) UpdatePost(ctx context.Context, post *models.Post, text string, groupID *int64, image string) error {
	updates := map[string]interface{}{
		"text":     text,
		"group_id": groupID,
	}
	if image != "" {
		updates["image"] = image
	}
	if err := db.GetWriteDB(ctx).Model(post).Updates(updates).Error; err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}
	post.Text = text
	post.GroupID = groupID
	if image != "" {
		post.Image = image
	}
	return nil
}

// notifyFollowers публикует событие о новой записи для каждого подписчика.
// Если брокер недоступен, событие уходит напрямую в WebSocket.
func (ps *PostService) notifyFollowers(ctx context.Context, author *models.User, post *models.Post) {
	var followerIDs []int64
	err := db.GetReadOnlyDB(ctx).Model(&models.Follow{}).
		Where("author_id = ?", author.ID).
		Pluck("user_id", &followerIDs).Error
	if err != nil {
		log.Printf("ERROR: failed to get followers of user %d: %v", author.ID, err)
		return
	}

	for _, followerID := range followerIDs {
		event := FeedEvent{
			UserID:         followerID,
			PostID:         post.ID,
			AuthorID:       author.ID,
			AuthorUsername: author.Username,
			Text:           post.Text,
			PubDate:        post.PubDate,
		}
		if err := PublishFeedEvent(ctx, event); err != nil {
			sendDirectWSEvent(event)
		}
	}
}
