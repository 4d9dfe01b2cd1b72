package service

import (
	"context"
	"fmt"

	"github.com/sojibulislamrana/social-events-vercel/internal/domain"
	"github.com/sojibulislamrana/social-events-vercel/internal/service/ports"
)

type StatsService struct {
	eventRepo ports.EventRepo
	joinRepo  ports.JoinRepo
}

func NewStatsService(eventRepo ports.EventRepo, joinRepo ports.JoinRepo) *StatsService {
	return &StatsService{eventRepo: eventRepo, joinRepo: joinRepo}
}

// Totals assembles the dashboard counters. Document counts are estimates;
// the user total is the exact cardinality of the union of creator emails
// and participant emails, compared case-sensitively as stored.
func (s *StatsService) Totals(ctx context.Context) (*domain.Stats, error) {
	events, err := s.eventRepo.CountEstimate(ctx)
	if err != nil {
		return nil, fmt.Errorf("count events: %w", err)
	}

	joins, err := s.joinRepo.CountEstimate(ctx)
	if err != nil {
		return nil, fmt.Errorf("count joins: %w", err)
	}

	creators, err := s.eventRepo.DistinctCreatorEmails(ctx)
	if err != nil {
		return nil, fmt.Errorf("distinct creators: %w", err)
	}
	participants, err := s.joinRepo.DistinctUserEmails(ctx)
	if err != nil {
		return nil, fmt.Errorf("distinct participants: %w", err)
	}

	union := make(map[string]struct{}, len(creators)+len(participants))
	for _, e := range creators {
		union[e] = struct{}{}
	}
	for _, e := range participants {
		union[e] = struct{}{}
	}

	return &domain.Stats{
		TotalEvents: events,
		TotalJoins:  joins,
		TotalUsers:  int64(len(union)),
	}, nil
}
