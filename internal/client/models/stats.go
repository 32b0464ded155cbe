package models

import "github.com/google/uuid"

// OwnerArticleCount is one bar of the per-author article statistic.
type OwnerArticleCount struct {
	OwnerId         uuid.UUID `json:"owner_id"`
	CountOfArticles int       `json:"count_of_articles"`
}

// ArticleStats is the payload of GET /stats/articles.
type ArticleStats struct {
	OwnerArticles []OwnerArticleCount `json:"owner_articles"`
}

// UserStats is the payload of GET /stats/users. ArrayOfAges holds user
// counts for the age buckets 0-18, 19-25, 26-45 and 46+ in that order.
type UserStats struct {
	ArrayOfAges []int `json:"array_of_ages"`
}
