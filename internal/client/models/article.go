// Package models defines the data structures exchanged with the RedHub
// gateway. JSON field names match the gateway wire format.
package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Article is a published (or moderation-pending) piece of content. Owned by
// the remote store; the client only holds per-view snapshots.
type Article struct {
	Id        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tag       string    `json:"tag,omitempty"`
	OwnerId   uuid.UUID `json:"owner_id"`
}

func (a Article) String() string {
	return fmt.Sprintf(
		"Article(ID: %s, CreatedAt: %s, Title: %s, OwnerId: %s)",
		a.Id.String(),
		a.CreatedAt.Format(time.RFC3339),
		a.Title,
		a.OwnerId.String(),
	)
}
