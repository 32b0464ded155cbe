package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/redhub-app/redhub-cli/internal/client/api"
	"github.com/redhub-app/redhub-cli/internal/client/models"
	"github.com/redhub-app/redhub-cli/internal/client/session"
	"github.com/redhub-app/redhub-cli/internal/common"
)

// CommentsService reads and writes article comments. A comment only exists
// once the server has stored it; Add returns the persisted record and the
// view renders that, never a locally fabricated one.
type CommentsService interface {
	List(ctx context.Context, articleID uuid.UUID) ([]models.Comment, error)
	Add(ctx context.Context, articleID uuid.UUID, content string) (*models.Comment, error)
}

type commentsService struct {
	gw      api.Gateway
	session *session.State
}

func NewCommentsService(gw api.Gateway, st *session.State) CommentsService {
	return &commentsService{gw: gw, session: st}
}

func (s *commentsService) List(ctx context.Context, articleID uuid.UUID) ([]models.Comment, error) {
	var comments []models.Comment
	if err := s.gw.Get(ctx, "/"+articleID.String()+"/comments", &comments); err != nil {
		return nil, fmt.Errorf("failed to fetch comments: %w", err)
	}
	return comments, nil
}

func (s *commentsService) Add(ctx context.Context, articleID uuid.UUID, content string) (*models.Comment, error) {
	sess := s.session.Current()
	if !sess.Authenticated {
		return nil, common.ErrNotLoggedIn
	}
	ownerID, err := uuid.Parse(sess.Claims.SubjectID)
	if err != nil {
		return nil, fmt.Errorf("credential subject is not a valid id: %w", err)
	}

	comment := models.Comment{
		ArticleId: articleID,
		OwnerId:   ownerID,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}

	var stored models.Comment
	if err := s.gw.Post(ctx, "/comments", comment, &stored); err != nil {
		return nil, fmt.Errorf("failed to add comment: %w", err)
	}
	return &stored, nil
}
