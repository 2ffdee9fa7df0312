package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maheshrc27/socialplanner/internal/models"
)

func scheduled(title, date string) models.ContentItem {
	return models.ContentItem{ID: title, Title: title, ScheduledDate: date}
}

func TestEventsForDate(t *testing.T) {
	contents := []models.ContentItem{
		scheduled("launch", "2024-06-01T10:00"),
		scheduled("recap", "2024-06-01T18:30"),
		scheduled("later", "2024-06-02T09:00"),
		{ID: "unscheduled", Title: "unscheduled"},
		scheduled("garbage", "not a date"),
	}

	t.Run("matches items on the calendar day", func(t *testing.T) {
		events := EventsForDate(contents, time.Date(2024, 6, 1, 0, 0, 0, 0, time.Local))
		require.Len(t, events, 2)
		assert.Equal(t, "launch", events[0].Title)
		assert.Equal(t, "recap", events[1].Title)
	})

	t.Run("does not match neighboring days", func(t *testing.T) {
		events := EventsForDate(contents, time.Date(2024, 6, 2, 0, 0, 0, 0, time.Local))
		require.Len(t, events, 1)
		assert.Equal(t, "later", events[0].Title)
	})

	t.Run("unscheduled and unparseable items never match", func(t *testing.T) {
		for day := 1; day <= 3; day++ {
			for _, e := range EventsForDate(contents, time.Date(2024, 6, day, 0, 0, 0, 0, time.Local)) {
				assert.NotEqual(t, "unscheduled", e.Title)
				assert.NotEqual(t, "garbage", e.Title)
			}
		}
	})

	t.Run("a day with no events returns an empty list", func(t *testing.T) {
		events := EventsForDate(contents, time.Date(2030, 1, 1, 0, 0, 0, 0, time.Local))
		assert.NotNil(t, events)
		assert.Empty(t, events)
	})
}

func TestUpcomingEvents(t *testing.T) {
	now := time.Date(2024, 6, 10, 8, 0, 0, 0, time.Local)
	contents := []models.ContentItem{
		scheduled("in-window-late", "2024-06-12T17:00"),
		scheduled("today", "2024-06-10T09:00"),
		scheduled("in-window-early", "2024-06-12T08:00"),
		scheduled("past", "2024-06-09T10:00"),
		scheduled("beyond", "2024-06-20T10:00"),
	}

	events := UpcomingEvents(contents, now, 7)
	require.Len(t, events, 3)
	assert.Equal(t, "today", events[0].Title)
	assert.Equal(t, "in-window-early", events[1].Title)
	assert.Equal(t, "in-window-late", events[2].Title)
}

func TestMonthGrid(t *testing.T) {
	contents := []models.ContentItem{scheduled("launch", "2024-06-01T10:00")}

	t.Run("always 42 cells", func(t *testing.T) {
		anchors := []time.Time{
			time.Date(2024, 2, 1, 0, 0, 0, 0, time.Local),  // leap February
			time.Date(2023, 2, 1, 0, 0, 0, 0, time.Local),  // 28-day February
			time.Date(2024, 9, 1, 0, 0, 0, 0, time.Local),  // month starting Sunday
			time.Date(2024, 12, 1, 0, 0, 0, 0, time.Local), // year boundary
			time.Date(2024, 6, 15, 0, 0, 0, 0, time.Local), // mid-month anchor
		}
		for _, anchor := range anchors {
			assert.Len(t, MonthGrid(contents, anchor, anchor, anchor), 42)
		}
	})

	t.Run("grid starts on the Sunday on or before the 1st", func(t *testing.T) {
		anchor := time.Date(2024, 6, 1, 0, 0, 0, 0, time.Local) // June 1 2024 is a Saturday
		grid := MonthGrid(contents, anchor, anchor, anchor)
		assert.Equal(t, time.Sunday, grid[0].Date.Weekday())
		assert.Equal(t, 26, grid[0].DayNumber) // May 26
		assert.False(t, grid[0].IsCurrentMonth)
	})

	t.Run("cells carry their events and flags", func(t *testing.T) {
		today := time.Date(2024, 6, 1, 15, 0, 0, 0, time.Local)
		selected := time.Date(2024, 6, 3, 0, 0, 0, 0, time.Local)
		grid := MonthGrid(contents, today, selected, today)

		var todayCell, selectedCell *Day
		for i := range grid {
			if grid[i].IsToday {
				todayCell = &grid[i]
			}
			if grid[i].IsSelected {
				selectedCell = &grid[i]
			}
		}

		require.NotNil(t, todayCell)
		assert.True(t, sameDay(todayCell.Date, today))
		assert.Equal(t, 1, todayCell.EventCount)
		assert.Equal(t, "launch", todayCell.Events[0].Title)

		require.NotNil(t, selectedCell)
		assert.Equal(t, 3, selectedCell.DayNumber)
		assert.Equal(t, 0, selectedCell.EventCount)
	})

	t.Run("no cell is marked today for a different month", func(t *testing.T) {
		anchor := time.Date(1999, 1, 1, 0, 0, 0, 0, time.Local)
		today := time.Date(2024, 6, 10, 0, 0, 0, 0, time.Local)
		for _, cell := range MonthGrid(contents, anchor, anchor, today) {
			assert.False(t, cell.IsToday)
		}
	})
}

func TestWeekGrid(t *testing.T) {
	contents := []models.ContentItem{scheduled("midweek", "2024-06-12T10:00")}
	anchor := time.Date(2024, 6, 12, 0, 0, 0, 0, time.Local) // a Wednesday

	grid := WeekGrid(contents, anchor, anchor, anchor, anchor)
	require.Len(t, grid, 7)
	assert.Equal(t, time.Sunday, grid[0].Date.Weekday())
	assert.Equal(t, 9, grid[0].DayNumber) // June 9

	assert.True(t, grid[3].IsSelected)
	assert.True(t, grid[3].IsToday)
	assert.Equal(t, 1, grid[3].EventCount)
}

func TestParseScheduledDate(t *testing.T) {
	cases := []struct {
		value string
		ok    bool
	}{
		{"2024-06-01T10:00", true},
		{"2024-06-01T10:00:30", true},
		{"2024-06-01", true},
		{"", false},
		{"tomorrow", false},
	}
	for _, tc := range cases {
		_, ok := ParseScheduledDate(tc.value)
		assert.Equal(t, tc.ok, ok, "value %q", tc.value)
	}
}
