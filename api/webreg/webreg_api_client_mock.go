package webreg

import (
	"fmt"
	"strings"

	"ecf-server/config"
	"ecf-server/models"
	"ecf-server/util"
)

// WebRegApiClientMock serves section feeds from a JSON fixture instead of
// scraping the live catalog.
type WebRegApiClientMock struct {
}

// NewWebRegApiClientMock creates a new instance of WebRegApiClientMock
func NewWebRegApiClientMock() *WebRegApiClientMock {
	return &WebRegApiClientMock{}
}

// FetchSections reads the fixture and filters it to the requested program.
// An empty program code returns the whole fixture.
func (c *WebRegApiClientMock) FetchSections(program string) ([]models.CourseSection, error) {
	sections, err := util.ReadCourseSectionsFromJSON(config.GetResourcePath(config.COURSE_SECTIONS_RESOURCE))
	if err != nil {
		fmt.Println("Could not read course sections from json")
		return nil, err
	}
	if program == "" {
		return sections, nil
	}

	var filtered []models.CourseSection
	for _, s := range sections {
		if strings.HasPrefix(s.CourseID, program) {
			filtered = append(filtered, s)
		}
	}
	return filtered, nil
}
