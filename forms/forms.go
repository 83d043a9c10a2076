package forms

import (
	"net/http"
	"strings"
	"yatube/models"

	"gorm.io/gorm"
)

// PostForm - поля записи, доступные для редактирования
type PostForm struct {
	Text      string
	GroupID   *int64
	Image     []byte
	ImageName string
}

// Validate проверяет поля формы. Возвращает карту поле -> сообщение;
// пустая карта означает валидную форму, состояние БД не меняется.
func (f *PostForm) Validate(tx *gorm.DB) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(f.Text) == "" {
		errs["text"] = "обязательное поле"
	}

	if f.GroupID != nil {
		var count int64
		if err := tx.Model(&models.Group{}).Where("id = ?", *f.GroupID).Count(&count).Error; err != nil || count == 0 {
			errs["group"] = "выберите существующую группу"
		}
	}

	if len(f.Image) > 0 && !isImage(f.Image) {
		errs["image"] = "загрузите корректное изображение"
	}

	return errs
}

// CommentForm - поля комментария
type CommentForm struct {
	Text string
}

func (f *CommentForm) Validate() map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(f.Text) == "" {
		errs["text"] = "обязательное поле"
	}
	return errs
}

func isImage(data []byte) bool {
	return strings.HasPrefix(http.DetectContentType(data), "image/")
}
