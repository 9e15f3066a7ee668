package webreg

import (
	"path/filepath"
	"strings"
	"testing"

	"ecf-server/config"
	"ecf-server/util"

	"github.com/stretchr/testify/assert"
)

func TestFetchSections_Mock(t *testing.T) {
	// Arrange
	root, err := filepath.Abs("../..")
	if err != nil {
		t.Fatalf("failed to resolve project root: %v", err)
	}
	t.Setenv("PROJECT_ROOT", root)

	client := NewWebRegApiClientMock()

	expected_response, err := util.ReadCourseSectionsFromJSON(config.GetResourcePath(config.COURSE_SECTIONS_RESOURCE))
	if err != nil {
		t.Errorf("expected no error when reading expected response, got %v", err)
	}

	// Act
	response, err := client.FetchSections("")

	// Assert
	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}

	assert.Equal(t, expected_response, response, "Responses dont match")
}

func TestFetchSections_MockFiltersByProgram(t *testing.T) {
	// Arrange
	root, err := filepath.Abs("../..")
	if err != nil {
		t.Fatalf("failed to resolve project root: %v", err)
	}
	t.Setenv("PROJECT_ROOT", root)

	client := NewWebRegApiClientMock()

	// Act
	response, err := client.FetchSections("CSCI")

	// Assert
	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	if len(response) == 0 {
		t.Fatal("expected at least one CSCI section in the fixture")
	}
	for _, s := range response {
		if !strings.HasPrefix(s.CourseID, "CSCI") {
			t.Errorf("unexpected course in filtered response: %s", s.CourseID)
		}
	}
}
