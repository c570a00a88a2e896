package resume

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	yearOnly   = regexp.MustCompile(`^\d{4}$`)
	monthYear  = regexp.MustCompile(`\b(january|february|march|april|may|june|july|august|september|october|november|december|jan|feb|mar|apr|jun|jul|aug|sept|sep|oct|nov|dec)\.?\s+(\d{4})\b`)
	numericMDY = regexp.MustCompile(`\b(\d{1,2})[/-](\d{1,2})[/-](\d{4})\b`)
	numericYMD = regexp.MustCompile(`\b(\d{4})[/-](\d{1,2})[/-](\d{1,2})\b`)
)

var months = map[string]time.Month{
	"jan": time.January, "january": time.January,
	"feb": time.February, "february": time.February,
	"mar": time.March, "march": time.March,
	"apr": time.April, "april": time.April,
	"may": time.May,
	"jun": time.June, "june": time.June,
	"jul": time.July, "july": time.July,
	"aug": time.August, "august": time.August,
	"sep": time.September, "sept": time.September, "september": time.September,
	"oct": time.October, "october": time.October,
	"nov": time.November, "november": time.November,
	"dec": time.December, "december": time.December,
}

// DateRange is a span of employment recovered from a resume line.
type DateRange struct {
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	FullTime bool      `json:"full_time"`
	Line     string    `json:"line"`
}

// Days returns the whole days between Start and End, never negative.
func (r DateRange) Days() int {
	d := int(r.End.Sub(r.Start).Hours() / 24)
	return max(0, d)
}

// ParseDate converts a single date endpoint into a calendar date at UTC midnight.
// present, current and now resolve to the date of today.
func ParseDate(s string, today time.Time) (time.Time, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return time.Time{}, false
	}

	switch s {
	case "present", "current", "now":
		y, m, d := today.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), true
	}

	if yearOnly.MatchString(s) {
		year, _ := strconv.Atoi(s)
		return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC), true
	}

	if m := monthYear.FindStringSubmatch(s); m != nil {
		year, _ := strconv.Atoi(m[2])
		return time.Date(year, months[m[1]], 1, 0, 0, 0, 0, time.UTC), true
	}

	if m := numericMDY.FindStringSubmatch(s); m != nil {
		return calendarDate(m[3], m[1], m[2])
	}

	if m := numericYMD.FindStringSubmatch(s); m != nil {
		return calendarDate(m[1], m[2], m[3])
	}

	return time.Time{}, false
}

// calendarDate rejects out-of-range months and days instead of letting time.Date normalise them.
func calendarDate(year, month, day string) (time.Time, bool) {
	y, _ := strconv.Atoi(year)
	m, _ := strconv.Atoi(month)
	d, _ := strconv.Atoi(day)
	if m < 1 || m > 12 || d < 1 {
		return time.Time{}, false
	}
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	if t.Day() != d {
		return time.Time{}, false
	}
	return t, true
}

// Years sums the day spans of full-time ranges and converts them to years rounded to 2 decimals.
func Years(ranges []DateRange) float64 {
	total := 0
	for _, r := range ranges {
		if !r.FullTime {
			continue
		}
		total += r.Days()
	}
	if total == 0 {
		return 0
	}
	return math.Round(float64(total)/365.25*100) / 100
}
