package core

import (
	"fmt"
	"time"
)

// Date is a calendar date with no time or zone. Instants become Dates
// through DateOf with an explicit location.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func DateOf(t time.Time, loc *time.Location) Date {
	y, m, d := t.In(loc).Date()
	return Date{Year: y, Month: m, Day: d}
}

// midnightUTC anchors the date in UTC so day arithmetic never meets a DST
// transition.
func (d Date) midnightUTC() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) AddDays(n int) Date {
	return DateOf(d.midnightUTC().AddDate(0, 0, n), time.UTC)
}

func (d Date) Weekday() time.Weekday { return d.midnightUTC().Weekday() }

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// DateSet is the set of distinct dates that have at least one log.
type DateSet map[Date]struct{}

func NewDateSet(timestamps []time.Time, loc *time.Location) DateSet {
	set := make(DateSet, len(timestamps))
	for _, ts := range timestamps {
		set[DateOf(ts, loc)] = struct{}{}
	}
	return set
}

func (s DateSet) Has(d Date) bool {
	_, ok := s[d]
	return ok
}

type WeeklyDay struct {
	DayIndex int    `json:"dayIndex"`
	Date     string `json:"date"`
	DayName  string `json:"dayName"`
	HasLog   bool   `json:"hasLog"`
}

type TimelineResult struct {
	WeeklyData    []WeeklyDay `json:"weeklyData"`
	CurrentStreak int         `json:"currentStreak"`
}

// BuildWeek returns the Sunday-to-Saturday week containing today, marking
// the days present in logs. It always has seven entries.
func BuildWeek(logs DateSet, today Date) []WeeklyDay {
	weekStart := today.AddDays(-int(today.Weekday()))
	week := make([]WeeklyDay, 7)
	for i := range week {
		d := weekStart.AddDays(i)
		week[i] = WeeklyDay{
			DayIndex: i,
			Date:     d.String(),
			DayName:  d.Weekday().String()[:3],
			HasLog:   logs.Has(d),
		}
	}
	return week
}

// CurrentStreak counts consecutive logged days ending today, or ending
// yesterday when nothing has been logged today yet. A streak that ends
// yesterday is reported at its full length.
func CurrentStreak(logs DateSet, today Date) int {
	day := today
	if !logs.Has(day) {
		day = today.AddDays(-1)
		if !logs.Has(day) {
			return 0
		}
	}

	streak := 0
	for logs.Has(day) {
		streak++
		day = day.AddDays(-1)
	}
	return streak
}
