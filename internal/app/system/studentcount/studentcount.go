// Package studentcount counts schedule records by the major and
// enrollment codes embedded in their student codes.
//
// A student code such as "SE15B042" carries the major ("SE") and the
// enrollment/batch ("15") as plain substrings. Matching is a
// case-insensitive substring test on both tokens; an empty token matches
// every code. No other normalization is applied, so tokens must follow
// the student code's own encoding.
package studentcount

import (
	"strings"

	"github.com/dalemusser/academicdash/internal/domain/models"
)

// Matcher holds the uppercased tokens a student code must contain.
type Matcher struct {
	major      string
	enrollment string
}

// NewMatcher builds a Matcher for the given major and enrollment tokens.
func NewMatcher(major, enrollment string) Matcher {
	return Matcher{
		major:      strings.ToUpper(major),
		enrollment: strings.ToUpper(enrollment),
	}
}

// Match reports whether code contains both tokens, ignoring case.
func (m Matcher) Match(code string) bool {
	code = strings.ToUpper(code)
	return strings.Contains(code, m.major) && strings.Contains(code, m.enrollment)
}

// Count returns the number of schedules whose student code matches both tokens.
func Count(schedules []models.Schedule, major, enrollment string) int {
	return NewMatcher(major, enrollment).Count(schedules)
}

// Count returns the number of schedules whose student code matches m.
func (m Matcher) Count(schedules []models.Schedule) int {
	n := 0
	for _, s := range schedules {
		if m.Match(s.StudentCode) {
			n++
		}
	}
	return n
}

// CountCourse returns the number of schedules matching m whose course
// contains the course token. The course test is case-sensitive.
func (m Matcher) CountCourse(schedules []models.Schedule, course string) int {
	n := 0
	for _, s := range schedules {
		if strings.Contains(s.Course, course) && m.Match(s.StudentCode) {
			n++
		}
	}
	return n
}
