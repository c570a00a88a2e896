package resume

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExperienceDirectShapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		want ExperienceEntry
	}{
		{
			name: "title company dates",
			line: "Senior Software Engineer | Acme Corp | 2019-2022",
			want: ExperienceEntry{Title: "Senior Software Engineer", Company: "Acme Corp", Dates: "2019-2022"},
		},
		{
			name: "title at company",
			line: "Data Analyst at Initech | Jan 2017 - Mar 2019",
			want: ExperienceEntry{Title: "Data Analyst", Company: "Initech", Dates: "Jan 2017 - Mar 2019"},
		},
		{
			name: "title comma company",
			line: "Product Manager, Hooli | 2015 to 2017",
			want: ExperienceEntry{Title: "Product Manager", Company: "Hooli", Dates: "2015 to 2017"},
		},
	}

	p := NewParser(WithClock(fixedClock))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			profile := p.Parse("Experience\n" + tt.line)
			require.Len(t, profile.Experience, 1)

			got := profile.Experience[0]
			assert.Equal(t, tt.want.Title, got.Title)
			assert.Equal(t, tt.want.Company, got.Company)
			assert.Equal(t, tt.want.Dates, got.Dates)
			assert.Equal(t, tt.line, got.SourceLine)
			assert.Equal(t, ConfidenceHigh, got.Confidence)
		})
	}
}

func TestExperienceDatesFromNeighbourLine(t *testing.T) {
	t.Parallel()

	text := "Experience\nLead Backend Developer | Umbrella\n2020 - Present\n"
	profile := NewParser(WithClock(fixedClock)).Parse(text)

	require.Len(t, profile.Experience, 1)
	assert.Equal(t, "Lead Backend Developer", profile.Experience[0].Title)
	assert.Equal(t, "Umbrella", profile.Experience[0].Company)
	assert.Equal(t, "2020 - Present", profile.Experience[0].Dates)
}

func TestExperienceInvalidTitleIsDiscarded(t *testing.T) {
	t.Parallel()

	profile := NewParser(WithClock(fixedClock)).Parse("Experience\nAcme | Globex | 2019-2020")
	assert.Empty(t, profile.Experience)
}

func TestExperienceTitleWordBounds(t *testing.T) {
	t.Parallel()

	catalog := DefaultCatalog()
	catalog.MinTitleWords = 5
	catalog.MaxTitleWords = 8

	p := NewParser(WithCatalog(catalog), WithClock(fixedClock))
	assert.False(t, p.ValidTitle("Senior Software Engineer"))
	assert.True(t, p.ValidTitle("Senior Staff Software Engineer Platform Team"))
	assert.False(t, p.ValidTitle("one two three four five six seven eight nine engineer"))

	profile := p.Parse("Experience\nSenior Software Engineer | Acme Corp | 2019-2022")
	assert.Empty(t, profile.Experience)
}

func TestValidTitle(t *testing.T) {
	t.Parallel()

	p := NewParser()
	tests := []struct {
		title string
		want  bool
	}{
		{title: "Software Engineer", want: true},
		{title: "CTO", want: true},
		{title: "Head of Data", want: true},
		{title: "Bachelor of Engineering", want: false},
		{title: "University Lead", want: false},
		{title: "Acme Corp", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, p.ValidTitle(tt.title))
		})
	}
}

func TestExperienceContextFallback(t *testing.T) {
	t.Parallel()

	text := "Experience\nBackend Developer\nGlobex Corporation\nJan 2018 - Dec 2020\n"
	profile := NewParser(WithClock(fixedClock)).Parse(text)

	require.Len(t, profile.Experience, 1)
	got := profile.Experience[0]
	assert.Equal(t, "Backend Developer", got.Title)
	assert.Equal(t, "Globex Corporation", got.Company)
	assert.Equal(t, "Jan 2018 - Dec 2020", got.Dates)
	assert.Equal(t, "Jan 2018 - Dec 2020", got.SourceLine)
	assert.Equal(t, ConfidenceMedium, got.Confidence)
}

func TestExperienceContextCompanyOnTitleLine(t *testing.T) {
	t.Parallel()

	text := "Experience\nSoftware Engineer at Initech Solutions\nJan 2018 - Dec 2020\n"
	profile := NewParser(WithClock(fixedClock)).Parse(text)

	require.Len(t, profile.Experience, 1)
	got := profile.Experience[0]
	assert.Equal(t, "Software Engineer", got.Title)
	assert.Equal(t, "Software Engineer at Initech Solutions", got.Company)
	assert.Equal(t, "Jan 2018 - Dec 2020", got.Dates)
	assert.Equal(t, ConfidenceMedium, got.Confidence)
}

func TestExperienceSkipsEducation(t *testing.T) {
	t.Parallel()

	text := "Education\nSenior Research Lead | State University | 2012-2014\n"
	profile := NewParser(WithClock(fixedClock)).Parse(text)
	assert.Empty(t, profile.Experience)
}

func TestExperienceDocumentOrder(t *testing.T) {
	t.Parallel()

	text := "Experience\n" +
		"Staff Engineer | Globex | 2021-2023\n" +
		"Software Engineer | Initech | 2017-2021\n"
	profile := NewParser(WithClock(fixedClock)).Parse(text)

	require.Len(t, profile.Experience, 2)
	assert.Equal(t, "Globex", profile.Experience[0].Company)
	assert.Equal(t, "Initech", profile.Experience[1].Company)
}
