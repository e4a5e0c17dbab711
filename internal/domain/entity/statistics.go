package entity

import (
	"time"

	"github.com/diegoclair/channel-gatekeeper/internal/domain"
)

// Statistics aggregates per-day counters over a date range.
type Statistics struct {
	Approved int64
	Rejected int64
}

// StatsDayFormat is the layout used for the per-day statistics key.
const StatsDayFormat = "2006-01-02"

type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
	PeriodAll   Period = "all"
)

func ParsePeriod(value string) (Period, error) {
	switch p := Period(value); p {
	case PeriodDay, PeriodWeek, PeriodMonth, PeriodYear, PeriodAll:
		return p, nil
	case "":
		return PeriodAll, nil
	default:
		return "", domain.ErrInvalidPeriod
	}
}

// Range returns the inclusive day range of the period containing now.
// Both bounds are nil for PeriodAll.
func (p Period) Range(now time.Time) (from, to *time.Time) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var start, end time.Time
	switch p {
	case PeriodDay:
		start, end = today, today
	case PeriodWeek:
		start = today.AddDate(0, 0, -int(WeekdayOf(today)))
		end = start.AddDate(0, 0, 6)
	case PeriodMonth:
		start = time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		end = start.AddDate(0, 1, -1)
	case PeriodYear:
		start = time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, today.Location())
		end = time.Date(today.Year(), time.December, 31, 0, 0, 0, 0, today.Location())
	default:
		return nil, nil
	}
	return &start, &end
}

// PeakHours holds request counts by hour of creation (0-23).
type PeakHours map[int]int

func (h PeakHours) Total() int {
	total := 0
	for _, c := range h {
		total += c
	}
	return total
}
