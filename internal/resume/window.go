package resume

import "strings"

// Window is a clamped range of lines around a centre line. End is exclusive.
type Window struct {
	Start  int
	End    int
	Center int
	Lines  []string
}

// ContextWindow returns lines[center-radius : center+radius+1], clamped to the slice bounds.
func ContextWindow(lines []string, center, radius int) Window {
	if radius < 0 {
		radius = 0
	}
	start := max(0, center-radius)
	end := min(len(lines), center+radius+1)
	if start > end {
		start = end
	}
	return Window{Start: start, End: end, Center: center, Lines: lines[start:end]}
}

// Text joins the non-blank trimmed lines of the window with single spaces.
func (w Window) Text() string {
	parts := make([]string, 0, len(w.Lines))
	for _, line := range w.Lines {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return strings.Join(parts, " ")
}

// Each calls fn with the absolute index of every line in the window, in order,
// until fn returns false.
func (w Window) Each(fn func(i int, line string) bool) {
	for off, line := range w.Lines {
		if !fn(w.Start+off, line) {
			return
		}
	}
}
