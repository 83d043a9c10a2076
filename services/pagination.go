package services

import (
	"strconv"

	"gorm.io/gorm"
)

// PostsPerPage - размер страницы любой ленты
const PostsPerPage = 10

// Page - страница выборки для отдачи наружу
type Page struct {
	Number     int   `json:"number"`
	TotalPages int   `json:"total_pages"`
	Count      int64 `json:"count"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

// ParsePageNumber разбирает номер страницы из query-параметра.
// Всё некорректное (пусто, не число, меньше 1) превращается в первую страницу.
func ParsePageNumber(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// Paginate выполняет запрос с фиксированным размером страницы.
// Номер страницы за пределами диапазона прижимается к последней странице.
func Paginate(query *gorm.DB, pageNumber int, dest interface{}) (*Page, error) {
	var count int64
	if err := query.Session(&gorm.Session{}).Count(&count).Error; err != nil {
		return nil, err
	}

	totalPages := int((count + PostsPerPage - 1) / PostsPerPage)
	if totalPages < 1 {
		totalPages = 1
	}
	if pageNumber < 1 {
		pageNumber = 1
	}
	if pageNumber > totalPages {
		pageNumber = totalPages
	}

	offset := (pageNumber - 1) * PostsPerPage
	if err := query.Offset(offset).Limit(PostsPerPage).Find(dest).Error; err != nil {
		return nil, err
	}

	return &Page{
		Number:     pageNumber,
		TotalPages: totalPages,
		Count:      count,
		HasNext:    pageNumber < totalPages,
		HasPrev:    pageNumber > 1,
	}, nil
}
