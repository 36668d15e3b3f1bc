package database

import (
	"context"
	"fmt"
	"strings"
)

const defaultSeriesDigits = 5

// ParseSeries splits a naming series such as "SO-WOO-.#####" into its
// prefix and the number of digits of the counter.
func ParseSeries(series string) (prefix string, digits int) {
	for _, part := range strings.Split(series, ".") {
		if part != "" && strings.Trim(part, "#") == "" {
			digits = len(part)
			continue
		}
		prefix += part
	}
	if digits == 0 {
		digits = defaultSeriesDigits
	}
	return prefix, digits
}

// NextName increments the series counter and returns the formatted document name.
func (q *Queries) NextName(ctx context.Context, series string) (string, error) {
	prefix, digits := ParseSeries(series)

	err := q.exec(ctx, `INSERT INTO Series (Prefix, Current) VALUES ($1, 1)
		ON CONFLICT(Prefix) DO UPDATE SET Current = Current + 1;`, prefix)
	if err != nil {
		return "", err
	}

	var current int
	if err := q.get(ctx, &current, "SELECT Current FROM Series WHERE Prefix=$1;", prefix); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%0*d", prefix, digits, current), nil
}
