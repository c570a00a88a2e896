package resume

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var fixedToday = date(2024, time.June, 1)

func fixedClock() time.Time { return fixedToday }

func TestParseDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want time.Time
		ok   bool
	}{
		{in: "2019", want: date(2019, time.January, 1), ok: true},
		{in: "Present", want: fixedToday, ok: true},
		{in: "current", want: fixedToday, ok: true},
		{in: "now", want: fixedToday, ok: true},
		{in: "jan 2020", want: date(2020, time.January, 1), ok: true},
		{in: "September 2018", want: date(2018, time.September, 1), ok: true},
		{in: "sept. 2018", want: date(2018, time.September, 1), ok: true},
		{in: "03/15/2021", want: date(2021, time.March, 15), ok: true},
		{in: "3-5-2021", want: date(2021, time.March, 5), ok: true},
		{in: "2021/03/15", want: date(2021, time.March, 15), ok: true},
		{in: "2021-12-01", want: date(2021, time.December, 1), ok: true},
		{in: "13/01/2021", ok: false},
		{in: "02/30/2021", ok: false},
		{in: "worked 2019", ok: false},
		{in: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, ok := ParseDate(tt.in, fixedToday)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
			}
		})
	}
}

func TestYears(t *testing.T) {
	t.Parallel()

	t.Run("two calendar years", func(t *testing.T) {
		got := Years([]DateRange{{Start: date(2020, time.January, 1), End: date(2022, time.January, 1), FullTime: true}})
		assert.InDelta(t, 2.0, got, 0.01)
	})

	t.Run("inverted range contributes zero", func(t *testing.T) {
		r := DateRange{Start: date(2022, time.January, 1), End: date(2020, time.January, 1), FullTime: true}
		assert.Equal(t, 0, r.Days())
		assert.Equal(t, 0.0, Years([]DateRange{r}))
	})

	t.Run("non full-time ignored", func(t *testing.T) {
		got := Years([]DateRange{
			{Start: date(2020, time.January, 1), End: date(2021, time.January, 1), FullTime: true},
			{Start: date(2015, time.January, 1), End: date(2019, time.January, 1), FullTime: false},
		})
		assert.Equal(t, 1.0, got)
	})

	t.Run("no ranges", func(t *testing.T) {
		assert.Equal(t, 0.0, Years(nil))
	})
}
