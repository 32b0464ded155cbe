package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/redhub-app/redhub-cli/internal/client/api"
	"github.com/redhub-app/redhub-cli/internal/client/models"
	"github.com/redhub-app/redhub-cli/internal/client/optimistic"
	"github.com/redhub-app/redhub-cli/internal/client/session"
	"github.com/redhub-app/redhub-cli/internal/common"
)

// ArticlesService manages the published article list. Reads go through a
// local read-through cache; destructive operations are optimistic.
type ArticlesService interface {
	// Refresh re-fetches the article list from the gateway.
	Refresh(ctx context.Context) error

	// List returns the cached article list.
	List() []models.Article

	// Get fetches a single article.
	Get(ctx context.Context, id uuid.UUID) (*models.Article, error)

	// Submit authors a new article. New articles enter the moderation queue,
	// not the published store.
	Submit(ctx context.Context, title, content, tag string) error

	// Update rewrites an article optimistically, adopting the server's
	// canonical value on success.
	Update(ctx context.Context, article models.Article) error

	// Delete removes an article optimistically.
	Delete(ctx context.Context, id uuid.UUID) error
}

type articlesService struct {
	gw      api.Gateway
	session *session.State
	list    *optimistic.List[models.Article]
}

func NewArticlesService(gw api.Gateway, st *session.State, notifier *optimistic.Notifier) ArticlesService {
	return &articlesService{
		gw:      gw,
		session: st,
		list:    optimistic.NewList(articleID, notifier),
	}
}

func articleID(a models.Article) string { return a.Id.String() }

func (s *articlesService) Refresh(ctx context.Context) error {
	var articles []models.Article
	if err := s.gw.Get(ctx, "/articles", &articles); err != nil {
		return fmt.Errorf("failed to fetch articles: %w", err)
	}
	s.list.Replace(articles)
	return nil
}

func (s *articlesService) List() []models.Article {
	return s.list.Items()
}

func (s *articlesService) Get(ctx context.Context, id uuid.UUID) (*models.Article, error) {
	var article models.Article
	if err := s.gw.Get(ctx, "/articles/"+id.String(), &article); err != nil {
		return nil, fmt.Errorf("failed to fetch article %s: %w", id, err)
	}
	return &article, nil
}

func (s *articlesService) Submit(ctx context.Context, title, content, tag string) error {
	sess := s.session.Current()
	if !sess.Authenticated {
		return common.ErrNotLoggedIn
	}
	ownerID, err := uuid.Parse(sess.Claims.SubjectID)
	if err != nil {
		return fmt.Errorf("credential subject is not a valid id: %w", err)
	}

	article := models.Article{
		Id:        uuid.New(),
		CreatedAt: time.Now().UTC(),
		Title:     title,
		Content:   content,
		Tag:       tag,
		OwnerId:   ownerID,
	}
	if err := s.gw.Post(ctx, "/moderation/add", article, nil); err != nil {
		return fmt.Errorf("failed to submit article: %w", err)
	}
	return nil
}

func (s *articlesService) Update(ctx context.Context, article models.Article) error {
	return s.list.Update(ctx, "update article", article.Id.String(), article,
		func(ctx context.Context) (*models.Article, error) {
			var canonical models.Article
			if err := s.gw.Put(ctx, "/articles/"+article.Id.String(), article, &canonical); err != nil {
				return nil, err
			}
			return &canonical, nil
		})
}

func (s *articlesService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.list.Remove(ctx, "delete article", id.String(),
		func(ctx context.Context) error {
			return s.gw.Delete(ctx, "/articles/"+id.String(), nil)
		})
}
