// Package planner answers date-scoped questions over the content collection.
// All functions are pure readers: they take the current contents slice plus
// the relevant dates and never touch shared state.
package planner

import (
	"sort"
	"time"

	"github.com/maheshrc27/socialplanner/internal/models"
)

// Day is one calendar cell.
type Day struct {
	Date           time.Time            `json:"date"`
	DayNumber      int                  `json:"dayNumber"`
	IsCurrentMonth bool                 `json:"isCurrentMonth"`
	IsToday        bool                 `json:"isToday"`
	IsSelected     bool                 `json:"isSelected"`
	Events         []models.ContentItem `json:"events"`
	EventCount     int                  `json:"eventCount"`
}

var scheduledLayouts = []string{
	models.ScheduledDateLayout,
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02",
}

// ParseScheduledDate parses the scheduledDate field of a content item.
// Unscheduled items and unparseable values report ok=false.
func ParseScheduledDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range scheduledLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// EventsForDate returns the items scheduled on the calendar day of date.
func EventsForDate(contents []models.ContentItem, date time.Time) []models.ContentItem {
	events := []models.ContentItem{}
	for _, c := range contents {
		if t, ok := ParseScheduledDate(c.ScheduledDate); ok && sameDay(t, date) {
			events = append(events, c)
		}
	}
	return events
}

// UpcomingEvents collects the events of the next windowDays days, today
// included, sorted by scheduled date ascending.
func UpcomingEvents(contents []models.ContentItem, now time.Time, windowDays int) []models.ContentItem {
	upcoming := []models.ContentItem{}
	for i := 0; i < windowDays; i++ {
		day := now.AddDate(0, 0, i)
		upcoming = append(upcoming, EventsForDate(contents, day)...)
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		ti, _ := ParseScheduledDate(upcoming[i].ScheduledDate)
		tj, _ := ParseScheduledDate(upcoming[j].ScheduledDate)
		return ti.Before(tj)
	})
	return upcoming
}

// MonthGrid builds the fixed 6x7 grid for the month containing anchor,
// starting on the Sunday on or before the 1st. Always 42 cells so the grid
// keeps its height regardless of month length or starting weekday.
func MonthGrid(contents []models.ContentItem, anchor, selected, today time.Time) []Day {
	firstDay := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
	start := firstDay.AddDate(0, 0, -int(firstDay.Weekday()))

	days := make([]Day, 0, 42)
	for i := 0; i < 42; i++ {
		date := start.AddDate(0, 0, i)
		days = append(days, newDay(contents, date, anchor.Month(), selected, today))
	}
	return days
}

// WeekGrid builds the 7-cell grid for the week containing anchor, starting
// Sunday. monthAnchor decides which cells count as the current month.
func WeekGrid(contents []models.ContentItem, anchor, monthAnchor, selected, today time.Time) []Day {
	start := anchor.AddDate(0, 0, -int(anchor.Weekday()))

	days := make([]Day, 0, 7)
	for i := 0; i < 7; i++ {
		date := start.AddDate(0, 0, i)
		days = append(days, newDay(contents, date, monthAnchor.Month(), selected, today))
	}
	return days
}

func newDay(contents []models.ContentItem, date time.Time, month time.Month, selected, today time.Time) Day {
	events := EventsForDate(contents, date)
	return Day{
		Date:           date,
		DayNumber:      date.Day(),
		IsCurrentMonth: date.Month() == month,
		IsToday:        sameDay(date, today),
		IsSelected:     sameDay(date, selected),
		Events:         events,
		EventCount:     len(events),
	}
}
