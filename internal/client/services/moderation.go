package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/redhub-app/redhub-cli/internal/client/api"
	"github.com/redhub-app/redhub-cli/internal/client/models"
	"github.com/redhub-app/redhub-cli/internal/client/optimistic"
	"github.com/redhub-app/redhub-cli/internal/common"
)

// ModerationService manages the queue of articles pending approval.
// Approving removes the item from the queue and, as a separate non-atomic
// step, publishes it to the article store; rejecting only removes it.
type ModerationService interface {
	Refresh(ctx context.Context) error
	Queue() []models.Article
	Approve(ctx context.Context, id uuid.UUID) error
	Reject(ctx context.Context, id uuid.UUID) error
}

type moderationService struct {
	gw       api.Gateway
	queue    *optimistic.List[models.Article]
	notifier *optimistic.Notifier
}

func NewModerationService(gw api.Gateway, notifier *optimistic.Notifier) ModerationService {
	return &moderationService{
		gw:       gw,
		queue:    optimistic.NewList(articleID, notifier),
		notifier: notifier,
	}
}

func (s *moderationService) Refresh(ctx context.Context) error {
	var pending []models.Article
	if err := s.gw.Get(ctx, "/moderation/get", &pending); err != nil {
		return fmt.Errorf("failed to fetch moderation queue: %w", err)
	}
	s.queue.Replace(pending)
	return nil
}

func (s *moderationService) Queue() []models.Article {
	return s.queue.Items()
}

// Approve removes the item from the moderation queue (optimistically, with
// rollback on failure) and then publishes it. Publication is a separate
// step: when it fails the queue removal stands and the failure is surfaced
// as a notification.
func (s *moderationService) Approve(ctx context.Context, id uuid.UUID) error {
	article, ok := s.queue.Get(id.String())
	if !ok {
		return fmt.Errorf("approve article: entry %s: %w", id, common.ErrNotFound)
	}

	err := s.queue.Remove(ctx, "approve article", id.String(),
		func(ctx context.Context) error {
			return s.gw.Delete(ctx, "/moderation/remove?id="+id.String(), nil)
		})
	if err != nil {
		return err
	}

	if err := s.gw.Post(ctx, "/articles", article, nil); err != nil {
		s.notifier.Error(fmt.Sprintf("article %s left the queue but publishing failed: %s", id, err))
		return fmt.Errorf("failed to publish approved article: %w", err)
	}
	return nil
}

func (s *moderationService) Reject(ctx context.Context, id uuid.UUID) error {
	return s.queue.Remove(ctx, "reject article", id.String(),
		func(ctx context.Context) error {
			return s.gw.Delete(ctx, "/moderation/remove?id="+id.String(), nil)
		})
}
