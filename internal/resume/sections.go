package resume

import "strings"

// Section is the classifier's belief about which resume region a line belongs to.
type Section int

const (
	SectionUnknown Section = iota
	SectionExperience
	SectionEducation
)

func (s Section) String() string {
	switch s {
	case SectionExperience:
		return "experience"
	case SectionEducation:
		return "education"
	default:
		return "unknown"
	}
}

// LineTag is the classification of a single line.
// Header lines switch the state and are not content.
type LineTag struct {
	Section Section
	Header  bool
}

type transition struct {
	to       Section
	keywords []string
}

// classifier is a three-state machine driven by an ordered transition table.
// The first transition whose keywords match a line wins.
type classifier struct {
	transitions []transition
}

func newClassifier(c Catalog) classifier {
	return classifier{
		transitions: []transition{
			// education is checked first so it wins ties
			{to: SectionEducation, keywords: c.EducationHeaders},
			{to: SectionExperience, keywords: c.ExperienceHeaders},
		},
	}
}

func (c classifier) next(line string) (Section, bool) {
	lower := strings.ToLower(line)
	for _, t := range c.transitions {
		if containsAny(lower, t.keywords) {
			return t.to, true
		}
	}
	return SectionUnknown, false
}

// classify tags every line. Blank lines carry the current state.
func (c classifier) classify(lines []string) []LineTag {
	tags := make([]LineTag, len(lines))
	state := SectionUnknown
	for i, line := range lines {
		if isBlank(line) {
			tags[i] = LineTag{Section: state}
			continue
		}
		if to, ok := c.next(line); ok {
			state = to
			tags[i] = LineTag{Section: state, Header: true}
			continue
		}
		tags[i] = LineTag{Section: state}
	}
	return tags
}

// content reports whether line i should be read by extractors that ignore education.
func content(lines []string, tags []LineTag, i int) bool {
	return !isBlank(lines[i]) && !tags[i].Header && tags[i].Section != SectionEducation
}
