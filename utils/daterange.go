// utils/daterange.go
package utils

import (
	"errors"
	"time"
)

// Date filters accepted by list and dashboard queries.
const (
	FilterToday     = "today"
	FilterYesterday = "yesterday"
	FilterLast7Days = "last7days"
	FilterLast30    = "last30days"
	FilterThisMonth = "thismonth"
	FilterLastMonth = "lastmonth"
	FilterCustom    = "custom"
)

var ErrCustomRangeBounds = errors.New("custom filter requires both startDate and endDate")

// ResolveDateRange turns a named filter into a [start, end) window relative
// to now. Custom ranges take both bounds as "2006-01-02" strings; the end
// date is inclusive, so the window extends to the following midnight.
func ResolveDateRange(filter, startDate, endDate string, now time.Time) (time.Time, time.Time, error) {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch filter {
	case FilterToday:
		return midnight, midnight.AddDate(0, 0, 1), nil
	case FilterYesterday:
		return midnight.AddDate(0, 0, -1), midnight, nil
	case FilterLast7Days:
		return midnight.AddDate(0, 0, -7), midnight.AddDate(0, 0, 1), nil
	case FilterLast30:
		return midnight.AddDate(0, 0, -30), midnight.AddDate(0, 0, 1), nil
	case FilterThisMonth:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return start, start.AddDate(0, 1, 0), nil
	case FilterLastMonth:
		thisMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return thisMonth.AddDate(0, -1, 0), thisMonth, nil
	case FilterCustom:
		if startDate == "" || endDate == "" {
			return time.Time{}, time.Time{}, ErrCustomRangeBounds
		}
		start, err := time.ParseInLocation("2006-01-02", startDate, now.Location())
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		end, err := time.ParseInLocation("2006-01-02", endDate, now.Location())
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		if end.Before(start) {
			return time.Time{}, time.Time{}, errors.New("endDate is before startDate")
		}
		return start, end.AddDate(0, 0, 1), nil
	default:
		return time.Time{}, time.Time{}, errors.New("unknown date filter: " + filter)
	}
}
