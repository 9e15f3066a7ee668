package webreg

import (
	"testing"
)

const samplePage = `
<html><body>
<div class="program-listing">
  <div class="course">
    <h3 class="course-id">CSCI-104</h3>
    <span class="course-title">Data Structures and Object Oriented Design</span>
    <p class="course-description">Linked lists, trees, graphs and hashing.</p>
    <table>
      <tr class="section-row">
        <td class="section">29903</td>
        <td class="type">Lecture</td>
        <td class="units">4.0</td>
        <td class="registered">92 of 120</td>
        <td class="time">10:00am-11:50am</td>
        <td class="days">MW</td>
        <td class="location">THH101</td>
      </tr>
      <tr class="section-row">
        <td class="section">29904</td>
        <td class="type">Lab</td>
        <td class="units">0.0</td>
        <td class="registered">30 of 30</td>
        <td class="time">TBA</td>
        <td class="days">TBA</td>
        <td class="location">TBA</td>
      </tr>
    </table>
  </div>
  <div class="course">
    <h3 class="course-id">CSCI-170</h3>
    <span class="course-title">Discrete Methods in Computer Science</span>
    <table>
      <tr class="section-row">
        <td class="section">29910</td>
        <td class="time">02:00pm-03:20pm</td>
        <td class="days">TTh</td>
        <td class="location">THH201</td>
      </tr>
    </table>
  </div>
</div>
</body></html>`

func TestParseCoursePage(t *testing.T) {
	sections, err := ParseCoursePage(samplePage)
	if err != nil {
		t.Fatal(err)
	}

	if len(sections) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(sections))
	}

	first := sections[0]
	if first.CourseID != "CSCI-104" {
		t.Errorf("CourseID = %q; want CSCI-104", first.CourseID)
	}
	if first.CourseName != "Data Structures and Object Oriented Design" {
		t.Errorf("CourseName = %q", first.CourseName)
	}
	if first.Section != "29903" || first.SectionType != "Lecture" {
		t.Errorf("section row = %+v", first)
	}
	if first.Time != "10:00am-11:50am" || first.Days != "MW" || first.Location != "THH101" {
		t.Errorf("schedule fields = %q / %q / %q", first.Time, first.Days, first.Location)
	}

	// TBA rows still parse; the schedule engine drops them later.
	if sections[1].Time != "TBA" {
		t.Errorf("sections[1].Time = %q; want TBA", sections[1].Time)
	}

	// Rows missing optional cells parse with empty strings.
	third := sections[2]
	if third.CourseID != "CSCI-170" {
		t.Errorf("sections[2].CourseID = %q; want CSCI-170", third.CourseID)
	}
	if third.SectionType != "" || third.Units != "" {
		t.Errorf("expected empty optional fields, got %+v", third)
	}
}

func TestParseCoursePage_NoCourses(t *testing.T) {
	sections, err := ParseCoursePage(`<html><body><div class="empty"></div></body></html>`)
	if err != nil {
		t.Fatal(err)
	}
	if len(sections) != 0 {
		t.Errorf("expected no sections, got %d", len(sections))
	}
}
