package services

import (
	"context"
	"fmt"

	"github.com/redhub-app/redhub-cli/internal/client/api"
	"github.com/redhub-app/redhub-cli/internal/client/models"
)

// StatsService fetches the aggregated platform statistics for the analyst
// view. Plain reads, no local cache.
type StatsService interface {
	Articles(ctx context.Context) (*models.ArticleStats, error)
	Users(ctx context.Context) (*models.UserStats, error)
}

type statsService struct {
	gw api.Gateway
}

func NewStatsService(gw api.Gateway) StatsService {
	return &statsService{gw: gw}
}

func (s *statsService) Articles(ctx context.Context) (*models.ArticleStats, error) {
	var stats models.ArticleStats
	if err := s.gw.Get(ctx, "/stats/articles", &stats); err != nil {
		return nil, fmt.Errorf("failed to fetch article stats: %w", err)
	}
	return &stats, nil
}

func (s *statsService) Users(ctx context.Context) (*models.UserStats, error) {
	var stats models.UserStats
	if err := s.gw.Get(ctx, "/stats/users", &stats); err != nil {
		return nil, fmt.Errorf("failed to fetch user stats: %w", err)
	}
	return &stats, nil
}
