package services

import (
	"context"
	"yatube/db"
	"yatube/models"

	"gorm.io/gorm"
)

type GroupService struct{}

func NewGroupService() *GroupService {
	return &GroupService{}
}

// BySlug находит группу по slug
func (gs *GroupService) BySlug(ctx context.Context, slug string) (*models.Group, error) {
	var group models.Group
	err := db.GetReadOnlyDB(ctx).Where("slug = ?", slug).First(&group).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// All - запрос всех групп для постраничного списка
func (gs *GroupService) All(ctx context.Context) *gorm.DB {
	return db.GetReadOnlyDB(ctx).Model(&models.Group{}).Order("id ASC")
}
