package main

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strings"
	"time"

	ics "github.com/icskit/ics"
)

// startLayout is the format of ICSGEN_START, read in the ICSGEN_TZID zone.
const startLayout = "2006-01-02T15:04"

type Config struct {
	service   string
	output    string
	summary   string
	start     time.Time
	duration  time.Duration
	tzid      ics.TimeZoneIdentifier
	organizer *url.URL
	logLevel  slog.Level
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// LoadConfig reads the ICSGEN_* variables. now anchors the default start,
// the next full hour on the wall clock of the configured zone.
func LoadConfig(now time.Time) (*Config, error) {
	cfg := &Config{
		service: env("ICSGEN_PRODID", "icsgen"),
		output:  os.Getenv("ICSGEN_OUTPUT"),
		summary: env("ICSGEN_SUMMARY", "Meeting"),
	}

	if err := cfg.logLevel.UnmarshalText([]byte(env("ICSGEN_LOG_LEVEL", "INFO"))); err != nil {
		return nil, fmt.Errorf("ICSGEN_LOG_LEVEL: %w", err)
	}

	loc := time.UTC
	if name := os.Getenv("ICSGEN_TZID"); name != "" {
		tzid, err := ics.LoadTimeZoneIdentifier(name)
		if err != nil {
			return nil, fmt.Errorf("ICSGEN_TZID: %w", err)
		}
		cfg.tzid = tzid
		loc = tzid.Location
	}

	local := now.In(loc)
	cfg.start = time.Date(local.Year(), local.Month(), local.Day(), local.Hour()+1, 0, 0, 0, loc)
	if s := os.Getenv("ICSGEN_START"); s != "" {
		start, err := time.ParseInLocation(startLayout, s, loc)
		if err != nil {
			return nil, fmt.Errorf("ICSGEN_START: %w", err)
		}
		cfg.start = start
	}

	duration, err := time.ParseDuration(env("ICSGEN_DURATION", "1h"))
	if err != nil {
		return nil, fmt.Errorf("ICSGEN_DURATION: %w", err)
	}
	if duration <= 0 {
		return nil, fmt.Errorf("ICSGEN_DURATION: must be positive, got %s", duration)
	}
	cfg.duration = duration

	if organizer := os.Getenv("ICSGEN_ORGANIZER"); organizer != "" {
		if !strings.Contains(organizer, ":") {
			organizer = "mailto:" + organizer
		}
		u, err := url.Parse(organizer)
		if err != nil {
			return nil, fmt.Errorf("ICSGEN_ORGANIZER: %w", err)
		}
		cfg.organizer = u
	}
	return cfg, nil
}
