package app_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exonian/articlebot/server/app"
)

func TestSlugify(t *testing.T) {
	for name, tc := range map[string]struct {
		in   string
		want string
	}{
		"simple":           {"Fall Sports Preview", "fall-sports-preview"},
		"punctuation":      {"Opinion: Homework?!", "opinion-homework"},
		"collapses-dashes": {"a  --  b", "a-b"},
		"trims-dashes":     {"--hello--", "hello"},
		"empty":            {"", "article"},
		"only-symbols":     {"???", "article"},
	} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, app.Slugify(tc.in))
		})
	}

	t.Run("caps-length", func(t *testing.T) {
		long := ""
		for i := 0; i < 30; i++ {
			long += "word "
		}
		assert.LessOrEqual(t, len(app.Slugify(long)), 90)
	})
}

func TestParseDeadline(t *testing.T) {
	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)

	t.Run("full-date-time", func(t *testing.T) {
		got, err := app.ParseDeadline("2026-09-07 23:00", now)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 9, 7, 23, 0, 0, 0, time.UTC), got)
	})

	t.Run("date-only", func(t *testing.T) {
		got, err := app.ParseDeadline("2026-09-07", now)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("month-day-with-year", func(t *testing.T) {
		got, err := app.ParseDeadline("Sep 7 2026 23:00", now)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 9, 7, 23, 0, 0, 0, time.UTC), got)
	})

	t.Run("month-day-assumes-current-year", func(t *testing.T) {
		got, err := app.ParseDeadline("Sep 7 23:00", now)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 9, 7, 23, 0, 0, 0, time.UTC), got)
	})

	t.Run("surrounding-space-tolerated", func(t *testing.T) {
		got, err := app.ParseDeadline("  2026-09-07  ", now)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("garbage-rejected", func(t *testing.T) {
		_, err := app.ParseDeadline("next tuesday-ish", now)
		assert.Error(t, err)
	})
}

func TestChecklist(t *testing.T) {
	deadline := time.Date(2026, 9, 7, 23, 0, 0, 0, time.UTC)

	body := app.Checklist("Fall Sports Preview", []string{"u1", "u2"}, deadline)
	assert.Contains(t, body, "**Article:** Fall Sports Preview")
	assert.Contains(t, body, "<@u1> <@u2>")
	assert.Contains(t, body, "- [ ] Final publish")

	noWriters := app.Checklist("Solo Piece", nil, deadline)
	assert.Contains(t, noWriters, "**Writers:** —")
}
