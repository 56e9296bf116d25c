package timezone

import (
	"time"

	"github.com/rs/zerolog/log"

	"lodge/config"
	"lodge/shared/constant"
)

var (
	appLocation *time.Location
)

func init() {
	cfg := config.Get()

	if cfg.App.Timezone == "" {
		log.Warn().Msg("No timezone configured, using UTC as default")
		cfg.App.Timezone = "UTC"
	}

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", cfg.App.Timezone).
			Msg("Failed to load timezone, falling back to UTC. Please use standard timezone names like 'Asia/Kolkata', 'UTC', 'America/New_York'")
		appLocation = time.UTC

		return
	}

	appLocation = loc
	log.Info().
		Str("timezone", cfg.App.Timezone).
		Str("location", loc.String()).
		Msg("Application timezone initialized")
}

// Now returns the current time in the application timezone.
func Now() time.Time {
	return time.Now().In(GetLocation())
}

// GetLocation returns the current application timezone location.
func GetLocation() *time.Location {
	if appLocation == nil {
		log.Warn().Msg("Timezone not initialized, using UTC")
		return time.UTC
	}

	return appLocation
}

// Today returns the current calendar date in the application timezone
// as a YYYY-MM-DD string.
func Today() string {
	return DateOf(Now())
}

// DateOf reduces a timestamp to its calendar date in the application timezone.
func DateOf(t time.Time) string {
	return t.In(GetLocation()).Format(constant.DateFormat)
}

// Parse parses a time string in the application timezone.
func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, GetLocation()) //nolint:wrapcheck
}

// Format formats a time in the application timezone.
func Format(t time.Time, layout string) string {
	return t.In(GetLocation()).Format(layout)
}
