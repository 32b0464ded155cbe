package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/redhub-app/redhub-cli/internal/client/api"
	"github.com/redhub-app/redhub-cli/internal/client/models"
	"github.com/redhub-app/redhub-cli/internal/client/optimistic"
	"github.com/redhub-app/redhub-cli/internal/client/session"
	"github.com/redhub-app/redhub-cli/internal/common"
)

// FavoritesService manages the current user's favorites list. Membership is
// a boolean fact server-side; locally the list holds article snapshots for
// display. Add and Remove are optimistic.
type FavoritesService interface {
	Refresh(ctx context.Context) error
	List() []models.Article
	Add(ctx context.Context, article models.Article) error
	Remove(ctx context.Context, articleID uuid.UUID) error
}

type favoritesService struct {
	gw      api.Gateway
	session *session.State
	list    *optimistic.List[models.Article]
}

func NewFavoritesService(gw api.Gateway, st *session.State, notifier *optimistic.Notifier) FavoritesService {
	return &favoritesService{
		gw:      gw,
		session: st,
		list:    optimistic.NewList(articleID, notifier),
	}
}

// subjectID returns the logged-in user's id, or ErrNotLoggedIn.
func (s *favoritesService) subjectID() (string, error) {
	sess := s.session.Current()
	if !sess.Authenticated {
		return "", common.ErrNotLoggedIn
	}
	return sess.Claims.SubjectID, nil
}

func (s *favoritesService) Refresh(ctx context.Context) error {
	uid, err := s.subjectID()
	if err != nil {
		return err
	}

	var favorites []models.Article
	if err := s.gw.Get(ctx, "/favorites/get?id="+uid, &favorites); err != nil {
		return fmt.Errorf("failed to fetch favorites: %w", err)
	}
	s.list.Replace(favorites)
	return nil
}

func (s *favoritesService) List() []models.Article {
	return s.list.Items()
}

func (s *favoritesService) Add(ctx context.Context, article models.Article) error {
	if _, err := s.subjectID(); err != nil {
		return err
	}
	return s.list.Add(ctx, "add favorite", article,
		func(ctx context.Context) error {
			return s.gw.Post(ctx, "/favorites/add?id="+article.Id.String(), nil, nil)
		})
}

func (s *favoritesService) Remove(ctx context.Context, articleID uuid.UUID) error {
	uid, err := s.subjectID()
	if err != nil {
		return err
	}
	return s.list.Remove(ctx, "remove favorite", articleID.String(),
		func(ctx context.Context) error {
			body := map[string]string{
				"user_id":    uid,
				"article_id": articleID.String(),
			}
			return s.gw.Delete(ctx, "/favorites/delete", body)
		})
}
