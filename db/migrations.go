package db

import (
	"fmt"
	"yatube/models"

	"gorm.io/gorm"
)

// migrationStep - шаг, который AutoMigrate выразить не может.
// Шаги применяются строго по порядку и записываются в таблицу migrations.
type migrationStep struct {
	Name string
	Run  func(db *gorm.DB) error
}

var migrationSteps = []migrationStep{
	{
		// Запись переживает удаление группы: group_id сбрасывается в NULL
		Name: "0001_posts_group_set_null",
		Run: func(db *gorm.DB) error {
			return db.Exec(`
				DO $$
				BEGIN
					IF EXISTS (SELECT 1 FROM information_schema.table_constraints
						WHERE constraint_name = 'fk_posts_group') THEN
						ALTER TABLE posts DROP CONSTRAINT fk_posts_group;
					END IF;
					ALTER TABLE posts ADD CONSTRAINT fk_posts_group
						FOREIGN KEY (group_id) REFERENCES groups (id) ON DELETE SET NULL;
				END
				$$;
			`).Error
		},
	},
	{
		// Поле created появилось позже остальной схемы комментариев,
		// старые строки получают время применения миграции
		Name: "0002_comments_created_backfill",
		Run: func(db *gorm.DB) error {
			return db.Exec(`UPDATE comments SET created = now() WHERE created IS NULL`).Error
		},
	},
	{
		Name: "0003_follows_unique_pair",
		Run: func(db *gorm.DB) error {
			return db.Exec(`
				CREATE UNIQUE INDEX IF NOT EXISTS idx_follow_pair
					ON follows (user_id, author_id)
			`).Error
		},
	},
}

// RunMigrations применяет недостающие шаги
func RunMigrations(db *gorm.DB) error {
	for _, step := range migrationSteps {
		var applied int64
		err := db.Model(&models.Migration{}).Where("name = ?", step.Name).Count(&applied).Error
		if err != nil {
			return fmt.Errorf("failed to check migration %s: %w", step.Name, err)
		}
		if applied > 0 {
			continue
		}
		if err := step.Run(db); err != nil {
			return fmt.Errorf("migration %s failed: %w", step.Name, err)
		}
		if err := db.Create(&models.Migration{Name: step.Name}).Error; err != nil {
			return fmt.Errorf("failed to record migration %s: %w", step.Name, err)
		}
	}
	return nil
}
