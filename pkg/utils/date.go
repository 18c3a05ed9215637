package utils

import "time"

const DateLayout = "2006-01-02"

// ParseDate interpreta YYYY-MM-DD no fuso informado; vazio devolve a data zero
func ParseDate(dateStr string, loc *time.Location) (time.Time, error) {
	if dateStr == "" {
		return time.Time{}, nil
	}
	if loc == nil {
		loc = time.UTC
	}

	return time.ParseInLocation(DateLayout, dateStr, loc)
}
