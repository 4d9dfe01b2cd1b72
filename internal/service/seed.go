package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sojibulislamrana/social-events-vercel/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const demoCreatorEmail = "demo@social-events.app"

// SeedDemo bulk-inserts a fixed set of future-dated demo events and
// returns their generated ids.
func (s *EventService) SeedDemo(ctx context.Context) ([]string, error) {
	now := time.Now().UTC()

	demos := []domain.Event{
		{
			Title:       "Community Cleanup Drive",
			Description: "Join neighbours for a morning of park cleanup and coffee.",
			EventType:   "Cleanup",
			Thumbnail:   "https://images.social-events.app/demo/cleanup.jpg",
			Location:    "Riverside Park",
			EventDate:   now.AddDate(0, 0, 7),
		},
		{
			Title:       "Neighbourhood Food Festival",
			Description: "Local vendors, live music and food stalls all afternoon.",
			EventType:   "Festival",
			Thumbnail:   "https://images.social-events.app/demo/food-festival.jpg",
			Location:    "Town Square",
			EventDate:   now.AddDate(0, 0, 14),
		},
		{
			Title:       "Intro to Urban Gardening",
			Description: "Hands-on workshop on balcony and rooftop gardening.",
			EventType:   "Workshop",
			Thumbnail:   "https://images.social-events.app/demo/gardening.jpg",
			Location:    "Community Center, Room 2",
			EventDate:   now.AddDate(0, 0, 21),
		},
		{
			Title:       "Charity Fun Run 5K",
			Description: "A casual 5K run raising funds for the local shelter.",
			EventType:   "Sports",
			Thumbnail:   "https://images.social-events.app/demo/fun-run.jpg",
			Location:    "Lakeside Trail",
			EventDate:   now.AddDate(0, 1, 0),
		},
	}

	ids := make([]string, 0, len(demos))
	for i := range demos {
		demos[i].CreatorEmail = demoCreatorEmail
		demos[i].CreatedAt = now

		id, err := s.repo.Create(ctx, &demos[i])
		if err != nil {
			return ids, fmt.Errorf("seed event %q: %w", demos[i].Title, err)
		}
		ids = append(ids, id)
	}

	s.logger.Info("demo events seeded", logger.Int("count", len(ids)))

	return ids, nil
}
