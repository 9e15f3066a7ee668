package models

import "fmt"

// CourseSection is one scraped section row from the course catalog.
// The Time/Days/Location fields carry the raw catalog text; the schedule
// package owns turning them into meetings.
type CourseSection struct {
	CourseID     string `json:"course_id"`
	CourseName   string `json:"course_name"`
	Description  string `json:"description,omitempty"`
	Section      string `json:"section"`
	SectionType  string `json:"type,omitempty"`
	Units        string `json:"units,omitempty"`
	Registered   string `json:"registered,omitempty"`
	Time         string `json:"time"`
	Days         string `json:"days"`
	Location     string `json:"location"`
}

func (s *CourseSection) ToString() string {
	return fmt.Sprintf("CourseSection(course=%s, section=%s, time=%s, days=%s, location=%s)",
		s.CourseID, s.Section, s.Time, s.Days, s.Location)
}
