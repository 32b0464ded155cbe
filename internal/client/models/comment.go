package models

import (
	"time"

	"github.com/google/uuid"
)

// Comment belongs to an article. Comments are always persisted server-side;
// the client never fabricates a local-only comment.
type Comment struct {
	Id        uuid.UUID `json:"id,omitempty"`
	ArticleId uuid.UUID `json:"article_id"`
	OwnerId   uuid.UUID `json:"owner_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
