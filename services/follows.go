package services

import (
	"context"
	"fmt"
	"yatube/db"
	"yatube/models"

	"gorm.io/gorm/clause"
)

type FollowService struct{}

func NewFollowService() *FollowService {
	return &FollowService{}
}

// Follow подписывает пользователя на автора. Повторная подписка и
// подписка на себя молча игнорируются.
func (fs *FollowService) Follow(ctx context.Context, userID, authorID int64) error {
	if userID == authorID {
		return nil
	}
	follow := &models.Follow{UserID: userID, AuthorID: authorID}
	err := db.GetWriteDB(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(follow).Error
	if err != nil {
		return fmt.Errorf("failed to follow: %w", err)
	}
	return nil
}

// Unfollow отписывает пользователя от автора. Отсутствие подписки не ошибка.
func (fs *FollowService) Unfollow(ctx context.Context, userID, authorID int64) error {
	err := db.GetWriteDB(ctx).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Delete(&models.Follow{}).Error
	if err != nil {
		return fmt.Errorf("failed to unfollow: %w", err)
	}
	return nil
}

// IsFollowing проверяет наличие подписки
func (fs *FollowService) IsFollowing(ctx context.Context, userID, authorID int64) (bool, error) {
	var count int64
	err := db.GetReadOnlyDB(ctx).Model(&models.Follow{}).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// FollowerCount - сколько пользователей подписано на автора
func (fs *FollowService) FollowerCount(ctx context.Context, authorID int64) (int64, error) {
	var count int64
	err := db.GetReadOnlyDB(ctx).Model(&models.Follow{}).
		Where("author_id = ?", authorID).Count(&count).Error
	return count, err
}

// FollowingCount - на скольких авторов подписан пользователь
func (fs *FollowService) FollowingCount(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := db.GetReadOnlyDB(ctx).Model(&models.Follow{}).
		Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
