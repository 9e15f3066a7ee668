package webreg

import "ecf-server/models"

// CourseCatalogAPI defines the interface for fetching the scraped section
// feed for one program code.
type CourseCatalogAPI interface {
	FetchSections(program string) ([]models.CourseSection, error)
}
