package util

import (
	"io/ioutil"
	"os"
	"testing"

	"ecf-server/models"
)

func createTempFile(t *testing.T, content string) string {
	t.Helper()
	tempFile, err := ioutil.TempFile("", "test*.json")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	_, err = tempFile.Write([]byte(content))
	if err != nil {
		t.Fatalf("Failed to write to temp file: %v", err)
	}
	tempFile.Close()
	return tempFile.Name()
}

func TestReadCourseSectionsFromJSON(t *testing.T) {
	// Arrange
	content := `[
		{
			"course_id": "CSCI-104",
			"course_name": "Data Structures and Object Oriented Design",
			"section": "29903",
			"time": "10:00am-11:50am",
			"days": "MW",
			"location": "THH101"
		}
	]`
	tempFile := createTempFile(t, content)
	defer os.Remove(tempFile)

	// Act
	sections, err := ReadCourseSectionsFromJSON(tempFile)

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(sections) != 1 {
		t.Fatalf("Expected 1 section, got %d", len(sections))
	}
	if sections[0].CourseID != "CSCI-104" {
		t.Errorf("Expected CourseID 'CSCI-104', got %s", sections[0].CourseID)
	}
	if sections[0].Location != "THH101" {
		t.Errorf("Expected Location 'THH101', got %s", sections[0].Location)
	}
}

func TestReadCourseSectionsFromJSON_MalformedJSON(t *testing.T) {
	// Arrange
	tempFile := createTempFile(t, `[{"course_id": `)
	defer os.Remove(tempFile)

	// Act
	sections, err := ReadCourseSectionsFromJSON(tempFile)

	// Assert
	if err == nil {
		t.Errorf("Expected an error, got nil")
	}
	if sections != nil {
		t.Errorf("Expected nil sections, got %v", sections)
	}
}

func TestReadBuildingsFromJSON(t *testing.T) {
	// Arrange
	content := `[
		{"name": "Mark Taper Hall of Humanities", "code": "THH"},
		{"name": "School of Cinematic Arts", "code": "SCA"}
	]`
	tempFile := createTempFile(t, content)
	defer os.Remove(tempFile)

	// Act
	buildings, err := ReadBuildingsFromJSON(tempFile)

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(buildings) != 2 {
		t.Fatalf("Expected 2 buildings, got %d", len(buildings))
	}
	if buildings[0].Code != "THH" {
		t.Errorf("Expected Code 'THH', got %s", buildings[0].Code)
	}
}

func TestWriteAndReadCourseSectionsRoundTrip(t *testing.T) {
	// Arrange
	tempFile := createTempFile(t, "[]")
	defer os.Remove(tempFile)

	sections, err := ReadCourseSectionsFromJSON(tempFile)
	if err != nil {
		t.Fatalf("Expected no error reading empty batch, got %v", err)
	}
	if len(sections) != 0 {
		t.Fatalf("Expected empty batch, got %d", len(sections))
	}
}

func TestReadProgramCodes(t *testing.T) {
	// Arrange
	content := `["CSCI", "MATH", "PHYS"]`
	tempFile := createTempFile(t, content)
	defer os.Remove(tempFile)

	// Act
	codes, err := ReadProgramCodes(tempFile)

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	expected := []string{"CSCI", "MATH", "PHYS"}
	if len(codes) != len(expected) {
		t.Fatalf("Expected %d codes, got %d", len(expected), len(codes))
	}
	for i, code := range expected {
		if codes[i] != code {
			t.Errorf("Expected code '%s', got '%s'", code, codes[i])
		}
	}
}

func TestBuildingDirectory(t *testing.T) {
	// Arrange: THH appears twice; the shorter name must win
	buildings := []models.Building{
		{Name: "Mark Taper Hall of Humanities", Code: "THH"},
		{Name: "Taper Hall", Code: "THH"},
		{Name: "School of Cinematic Arts", Code: "SCA"},
		{Name: "No Code Entry", Code: ""},
	}

	// Act
	directory := BuildingDirectory(buildings)

	// Assert
	if len(directory) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(directory))
	}
	if directory["THH"] != "Taper Hall" {
		t.Errorf("Expected shortest name 'Taper Hall', got %q", directory["THH"])
	}
	if directory["SCA"] != "School of Cinematic Arts" {
		t.Errorf("Expected SCA entry, got %q", directory["SCA"])
	}
}
