package webreg

import (
	"strings"

	"golang.org/x/net/html"

	"ecf-server/models"
)

// ParseCoursePage walks a rendered catalog page and extracts one
// CourseSection per section row. Each course block carries a course-id and
// course-title node; every section-row under it contributes a section with
// the raw time/days/location text untouched. Rows missing fields still parse,
// the schedule engine decides later what is schedulable.
func ParseCoursePage(page string) ([]models.CourseSection, error) {
	root, err := html.Parse(strings.NewReader(page))
	if err != nil {
		return nil, err
	}

	var sections []models.CourseSection
	for _, course := range findAllByClass(root, "course") {
		courseID := textOfClass(course, "course-id")
		courseName := textOfClass(course, "course-title")
		description := textOfClass(course, "course-description")

		for _, row := range findAllByClass(course, "section-row") {
			sections = append(sections, models.CourseSection{
				CourseID:    courseID,
				CourseName:  courseName,
				Description: description,
				Section:     textOfClass(row, "section"),
				SectionType: textOfClass(row, "type"),
				Units:       textOfClass(row, "units"),
				Registered:  textOfClass(row, "registered"),
				Time:        textOfClass(row, "time"),
				Days:        textOfClass(row, "days"),
				Location:    textOfClass(row, "location"),
			})
		}
	}
	return sections, nil
}

func hasClass(n *html.Node, class string) bool {
	if n.Type != html.ElementNode {
		return false
	}
	for _, attr := range n.Attr {
		if attr.Key != "class" {
			continue
		}
		for _, c := range strings.Fields(attr.Val) {
			if c == class {
				return true
			}
		}
	}
	return false
}

// findAllByClass collects every descendant carrying the class, without
// descending into matches (a course block never nests another course block).
func findAllByClass(n *html.Node, class string) []*html.Node {
	var found []*html.Node
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if hasClass(child, class) {
			found = append(found, child)
			continue
		}
		found = append(found, findAllByClass(child, class)...)
	}
	return found
}

// textOfClass returns the trimmed text content of the first descendant with
// the class, or "" when absent.
func textOfClass(n *html.Node, class string) string {
	nodes := findAllByClass(n, class)
	if len(nodes) == 0 {
		return ""
	}
	var b strings.Builder
	collectText(nodes[0], &b)
	return strings.TrimSpace(b.String())
}

func collectText(n *html.Node, b *strings.Builder) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		collectText(child, b)
	}
}
