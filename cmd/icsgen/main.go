// Command icsgen writes a single-event iCalendar file configured through
// ICSGEN_* environment variables or a .env file.
package main

import (
	"log/slog"
	"os"
	"time"

	ics "github.com/icskit/ics"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
)

func setLogger(level slog.Level) {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.RFC1123Z,
		}),
	))
}

func init() {
	setLogger(slog.LevelInfo)
	if err := godotenv.Load(); err != nil {
		slog.Debug(err.Error())
	}
}

// BuildCalendar assembles the calendar described by cfg. stamp becomes the
// event's DTSTAMP.
func BuildCalendar(cfg *Config, stamp time.Time) (*ics.Calendar, error) {
	start, err := ics.NewDateTimeStartBuilder().WithTimeZoneIdentifier(cfg.tzid).Build(cfg.start)
	if err != nil {
		return nil, err
	}
	duration, err := ics.NewDurationPropertyBuilder().Build(ics.DurationOf(cfg.duration))
	if err != nil {
		return nil, err
	}
	trigger, err := ics.NewTriggerBuilder().BuildRelative(ics.DurationOf(-15 * time.Minute))
	if err != nil {
		return nil, err
	}
	alarm, err := ics.NewDisplayAlarmBuilder().
		WithTrigger(trigger).
		WithDescription(ics.NewDescriptionBuilder().Build(cfg.summary)).
		Build()
	if err != nil {
		return nil, err
	}

	b := ics.NewEventBuilder().
		WithDateTimeStamp(ics.NewDateTimeStampBuilder().Build(stamp)).
		WithUniqueIdentifier(ics.NewUniqueIdentifierBuilder().BuildRandom()).
		WithDateTimeStart(start).
		WithDuration(duration).
		WithSummary(ics.NewSummaryBuilder().Build(cfg.summary)).
		AddAlarms(alarm)
	if cfg.organizer != nil {
		organizer, err := ics.NewOrganiserBuilder().Build(cfg.organizer)
		if err != nil {
			return nil, err
		}
		b.WithOrganiser(organizer)
	}
	event, err := b.Build()
	if err != nil {
		return nil, err
	}

	cal, err := ics.NewCalendarFor(cfg.service)
	if err != nil {
		return nil, err
	}
	return cal.AddComponents(event).Build()
}

func write(cfg *Config, cal *ics.Calendar) error {
	if cfg.output == "" {
		return cal.SerializeTo(os.Stdout)
	}
	f, err := os.Create(cfg.output)
	if err != nil {
		return err
	}
	if err := cal.SerializeTo(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func main() {
	now := time.Now()
	cfg, err := LoadConfig(now)
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	setLogger(cfg.logLevel)
	slog.Debug("config",
		"prodid", cfg.service,
		"summary", cfg.summary,
		"start", cfg.start,
		"duration", cfg.duration,
		"tzid", cfg.tzid.Name(),
	)

	cal, err := BuildCalendar(cfg, now)
	if err != nil {
		slog.Error("can't build calendar", "error", err)
		os.Exit(1)
	}
	if err := write(cfg, cal); err != nil {
		slog.Error("can't write calendar", "output", cfg.output, "error", err)
		os.Exit(1)
	}
	if cfg.output != "" {
		slog.Info("calendar written", "output", cfg.output)
	}
}
