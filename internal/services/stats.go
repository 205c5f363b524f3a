package services

import (
	"context"
	"fmt"

	"galaticketing/internal/domain"
)

type statsService struct {
	repo domain.StatsRepository
}

func NewStatsService(repo domain.StatsRepository) domain.StatsService {
	return &statsService{repo: repo}
}

func (s *statsService) Get(ctx context.Context) (*domain.Stats, error) {
	stats, err := s.repo.Collect(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to collect stats: %w", err)
	}
	stats.TotalAttendees = stats.GraduateTickets + stats.GuestTickets
	stats.Revenue = float64(stats.RevenueCents) / 100
	return stats, nil
}
