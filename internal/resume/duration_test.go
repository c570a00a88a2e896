package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYearsExperience(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want float64
	}{
		{
			name: "plain full-time range",
			text: "Experience\nSoftware Engineer | Acme Corp | 2020-2022",
			want: 2.0,
		},
		{
			name: "internship excluded",
			text: "Experience\nSoftware Engineering Internship | Acme Corp | 2020-2022",
			want: 0,
		},
		{
			name: "contract excluded",
			text: "Experience\nBackend Developer | Initech | 2018-2019\nContract role",
			want: 0,
		},
		{
			name: "explicit full-time wins over exclusion keyword",
			text: "Experience\nSenior Consultant | Initech | 2018-2020\nFull-time, permanent position",
			want: 2.0,
		},
		{
			name: "education section ignored",
			text: "Education\nBachelor of Science, MIT, 2015-2019",
			want: 0,
		},
		{
			name: "education keywords near the range",
			text: "Experience\nResearch Assistant | Lab | 2014-2016\nThesis on graph theory",
			want: 0,
		},
		{
			name: "inverted range contributes nothing",
			text: "Experience\nEngineer | Acme | 2022-2020",
			want: 0,
		},
		{
			name: "open ended range",
			text: "Experience\nEngineer | Acme | 2020 - present",
			want: 4.42,
		},
		{
			name: "month ranges",
			text: "Experience\nBackend Developer\nGlobex Corporation\nJan 2018 - Dec 2020",
			want: 2.92,
		},
		{
			name: "unparseable endpoint skipped",
			text: "Experience\nEngineer | Acme | Spring 2019 - Fall 2020",
			want: 0,
		},
		{
			name: "no ranges",
			text: "Experience\nDid things",
			want: 0,
		},
	}

	p := NewParser(WithClock(fixedClock))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, p.Parse(tt.text).YearsExperience)
		})
	}
}

func TestDateRangesFlagPartTime(t *testing.T) {
	t.Parallel()

	text := "Experience\n" +
		"Engineer | Acme | 2016-2018\n" +
		"\n" +
		"\n" +
		"\n" +
		"Summer intern | Globex | 2015-2015\n"

	ranges := NewParser(WithClock(fixedClock)).DateRanges(text)
	require.Len(t, ranges, 2)
	assert.True(t, ranges[0].FullTime)
	assert.Equal(t, "Engineer | Acme | 2016-2018", ranges[0].Line)
	assert.False(t, ranges[1].FullTime)
	assert.Equal(t, 0, ranges[1].Days())
}

func TestFullTimeKeywordsMatchWholeWords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		window string
		want   bool
	}{
		{window: "summer internship at acme", want: false},
		{window: "contract role, 6 months", want: false},
		{window: "full-time contract extended", want: true},
		{window: "built internal tools for the platform team", want: true},
		{window: "contracting agency work", want: true},
		{window: "staff engineer at globex", want: true},
		{window: "backend developer", want: true},
	}

	p := NewParser()
	for _, tt := range tests {
		assert.Equal(t, tt.want, p.fullTime(tt.window), tt.window)
	}
}
