package main

import (
	"context"

	"github.com/rs/zerolog/log"

	"lodge/config"
	"lodge/di"
	"lodge/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	app := di.InitializeApplication()

	ctx := context.Background()

	if cfg.App.Seed {
		app.Seeder.Load(ctx)
	}

	stats, err := app.Dashboard.Stats(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to compute dashboard stats")
	}

	log.Info().
		Int("total_rooms", stats.TotalRooms).
		Int("occupied_rooms", stats.OccupiedRooms).
		Int("checkins_today", stats.CheckinsToday).
		Str("revenue_today", stats.RevenueToday).
		Msg("Storage layer ready")
}
