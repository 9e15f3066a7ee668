package cli

import (
	"bytes"
	"strings"
	"testing"

	"ecf-server/models"
)

func TestTruncateName(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		maxLength int
		expected  string
	}{
		{
			name:      "Short name untouched",
			input:     "Taper Hall",
			maxLength: 34,
			expected:  "Taper Hall",
		},
		{
			name:      "Filler words dropped first",
			input:     "Center for the Study of Hall and Building Design Excellence",
			maxLength: 34,
			expected:  "Center Study Design Excellence",
		},
		{
			name:      "Trailing words dropped with ellipsis",
			input:     "Ronald Tutor Campus Center Annex Pavilion Extension",
			maxLength: 30,
			expected:  "Ronald Tutor Campus Center...",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := truncateName(test.input, test.maxLength)
			if got != test.expected {
				t.Errorf("truncateName(%q, %d) = %q, expected %q",
					test.input, test.maxLength, got, test.expected)
			}
			if len(got) > test.maxLength {
				t.Errorf("truncateName(%q, %d) returned %d chars",
					test.input, test.maxLength, len(got))
			}
		})
	}
}

func TestPrintBuildingsTable(t *testing.T) {
	buildings := []models.BuildingStats{
		{Code: "THH", Name: "Taper Hall", RoomCount: 12, SectionCount: 40},
		{Code: "SCA", Name: "School of Cinematic Arts", RoomCount: 8, SectionCount: 25},
		{Code: "KAP", Name: "Kaprielian Hall", RoomCount: 5, SectionCount: 10},
	}

	var buf bytes.Buffer
	printBuildingsTable(&buf, buildings)
	out := buf.String()

	if !strings.Contains(out, "Popular Buildings") {
		t.Errorf("Expected header in output, got:\n%s", out)
	}
	// Column-wise split: THH and SCA in the left column, KAP on the right.
	for _, want := range []string{"(THH)", "(SCA)", "(KAP)", "[12]", "[8]", "[5]"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in output, got:\n%s", want, out)
		}
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	var thhLine string
	for _, line := range lines {
		if strings.Contains(line, "(THH)") {
			thhLine = line
		}
	}
	if !strings.Contains(thhLine, "(KAP)") {
		t.Errorf("Expected KAP in the right column of the first row, got: %q", thhLine)
	}
}

func TestPrintBuildingsTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	printBuildingsTable(&buf, nil)

	if !strings.Contains(buf.String(), "No buildings meet the display criteria.") {
		t.Errorf("Expected empty-table message, got: %q", buf.String())
	}
}
