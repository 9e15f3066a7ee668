package schedule

import (
	"regexp"
	"strings"
)

// Days is the fixed vocabulary of meeting-day tokens in display order.
var Days = []string{"M", "T", "W", "Th", "F", "Sat"}

// Th and Sat are listed before T so "Th" never splits into "T"+"h".
var (
	dayPattern      = regexp.MustCompile(`Th|Sat|M|T|W|F`)
	dayQueryPattern = regexp.MustCompile(`^(TH|SAT|M|T|W|F)`)
)

// ExtractDays pulls the canonical day tokens out of a free-text schedule
// string, collapsing duplicates and preserving order of first appearance.
func ExtractDays(scheduleText string) []string {
	seen := make(map[string]struct{})
	var days []string
	for _, d := range dayPattern.FindAllString(scheduleText, -1) {
		if _, dup := seen[d]; dup {
			continue
		}
		seen[d] = struct{}{}
		days = append(days, d)
	}
	return days
}

// NormalizeDayQuery validates free-form day input ("th", "SAT", "Tuesday")
// against the day vocabulary and returns the canonical token.
func NormalizeDayQuery(userText string) (string, bool) {
	m := dayQueryPattern.FindString(strings.ToUpper(strings.TrimSpace(userText)))
	if m == "" {
		return "", false
	}
	return m[:1] + strings.ToLower(m[1:]), true
}
