package models

import "time"

// Post - запись пользователя. PubDate выставляется один раз при создании.
// При удалении группы запись остаётся без группы (SET NULL).
type Post struct {
	ID       int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Text     string    `gorm:"type:text;not null" json:"text"`
	PubDate  time.Time `gorm:"index" json:"pub_date"`
	AuthorID int64     `gorm:"index;not null" json:"author_id"`
	Author   *User     `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author,omitempty"`
	GroupID  *int64    `gorm:"index" json:"group_id,omitempty"`
	Group    *Group    `gorm:"foreignKey:GroupID;constraint:OnDelete:SET NULL" json:"group,omitempty"`
	Image    string    `gorm:"size:255" json:"image,omitempty"`
}

func (Post) TableName() string {
	return "posts"
}
