package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 5, 6, 8, 20, 0, 0, time.UTC)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"ICSGEN_PRODID", "ICSGEN_OUTPUT", "ICSGEN_SUMMARY", "ICSGEN_START", "ICSGEN_DURATION", "ICSGEN_TZID", "ICSGEN_ORGANIZER", "ICSGEN_LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig(now)
	require.NoError(t, err)
	assert.Equal(t, "icsgen", cfg.service)
	assert.Equal(t, "Meeting", cfg.summary)
	assert.Equal(t, time.Date(2024, 5, 6, 9, 0, 0, 0, time.UTC), cfg.start)
	assert.Equal(t, time.Hour, cfg.duration)
	assert.Equal(t, slog.LevelInfo, cfg.logLevel)
	assert.Nil(t, cfg.organizer)
	assert.Equal(t, "", cfg.tzid.Name())
}

func TestLoadConfigDefaultStartInHalfHourZone(t *testing.T) {
	t.Setenv("ICSGEN_START", "")
	t.Setenv("ICSGEN_TZID", "Asia/Kolkata")

	cfg, err := LoadConfig(now)
	require.NoError(t, err)
	// 08:20 UTC is 13:50 in Kolkata.
	assert.Equal(t, "2024-05-06 14:00:00 +0530 IST", cfg.start.String())
}

func TestWrite(t *testing.T) {
	t.Setenv("ICSGEN_TZID", "")
	t.Setenv("ICSGEN_START", "")
	cfg, err := LoadConfig(now)
	require.NoError(t, err)
	cal, err := BuildCalendar(cfg, now)
	require.NoError(t, err)

	cfg.output = filepath.Join(t.TempDir(), "out.ics")
	require.NoError(t, write(cfg, cal))
	written, err := os.ReadFile(cfg.output)
	require.NoError(t, err)
	assert.Equal(t, cal.Serialize(), string(written))

	cfg.output = filepath.Join(t.TempDir(), "missing", "out.ics")
	assert.Error(t, write(cfg, cal))
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("ICSGEN_PRODID", "Example Corp//Planner")
	t.Setenv("ICSGEN_SUMMARY", "Retro")
	t.Setenv("ICSGEN_TZID", "Europe/Berlin")
	t.Setenv("ICSGEN_START", "2024-06-01T14:30")
	t.Setenv("ICSGEN_DURATION", "45m")
	t.Setenv("ICSGEN_ORGANIZER", "lead@example.com")
	t.Setenv("ICSGEN_LOG_LEVEL", "debug")

	cfg, err := LoadConfig(now)
	require.NoError(t, err)
	assert.Equal(t, "Europe/Berlin", cfg.tzid.Name())
	assert.Equal(t, "2024-06-01 14:30:00 +0200 CEST", cfg.start.String())
	assert.Equal(t, 45*time.Minute, cfg.duration)
	assert.Equal(t, "mailto:lead@example.com", cfg.organizer.String())
	assert.Equal(t, slog.LevelDebug, cfg.logLevel)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := map[string]string{
		"ICSGEN_TZID":      "Not/AZone",
		"ICSGEN_START":     "tomorrow",
		"ICSGEN_DURATION":  "-1h",
		"ICSGEN_LOG_LEVEL": "loud",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			_, err := LoadConfig(now)
			require.Error(t, err)
			assert.True(t, strings.HasPrefix(err.Error(), key+": "), err.Error())
		})
	}
}

func TestBuildCalendar(t *testing.T) {
	t.Setenv("ICSGEN_PRODID", "Example Corp//Planner")
	t.Setenv("ICSGEN_SUMMARY", "Retro")
	t.Setenv("ICSGEN_TZID", "Europe/Berlin")
	t.Setenv("ICSGEN_START", "2024-06-01T14:30")
	t.Setenv("ICSGEN_DURATION", "90m")
	t.Setenv("ICSGEN_ORGANIZER", "lead@example.com")
	cfg, err := LoadConfig(now)
	require.NoError(t, err)

	cal, err := BuildCalendar(cfg, now)
	require.NoError(t, err)
	require.Len(t, cal.Events(), 1)

	text := cal.Serialize()
	for _, line := range []string{
		"PRODID:-//Example Corp//Planner//icskit ics//EN",
		"DTSTAMP:20240506T082000Z",
		"DTSTART;TZID=Europe/Berlin:20240601T143000",
		"DURATION:PT1H30M",
		"SUMMARY:Retro",
		"ORGANIZER:mailto:lead@example.com",
		"ACTION:DISPLAY",
		"TRIGGER:-PT15M",
	} {
		assert.Contains(t, text, "\r\n"+line+"\r\n")
	}
	assert.NotContains(t, text, "BEGIN:VTIMEZONE")
}
