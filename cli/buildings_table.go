package cli

import (
	"fmt"
	"io"
	"strings"

	"ecf-server/config"
	"ecf-server/models"
)

// unneededWords are filler words dropped first when a building name is too
// wide for its column.
var unneededWords = map[string]struct{}{
	"hall": {}, "building": {}, "for": {}, "and": {}, "of": {}, "the": {},
}

// truncateName shortens a building name to maxLength by dropping filler
// words, then trailing words, appending "..." when it still fits.
func truncateName(name string, maxLength int) string {
	if len(name) <= maxLength {
		return name
	}

	var words []string
	for _, word := range strings.Fields(name) {
		if _, filler := unneededWords[strings.ToLower(word)]; filler {
			continue
		}
		words = append(words, word)
	}

	currLen := len(strings.Join(words, " "))
	if currLen <= maxLength {
		return strings.Join(words, " ")
	}

	ellipse := "..."
	for len(words) > 0 && currLen > maxLength {
		currLen -= len(words[len(words)-1]) + 1
		words = words[:len(words)-1]
	}
	if currLen+len(ellipse) > maxLength {
		ellipse = ""
	}
	return strings.Join(words, " ") + ellipse
}

// printBuildingsTable renders the ranked buildings in two columns, split
// column-wise, with the unique room count in brackets.
func printBuildingsTable(w io.Writer, buildings []models.BuildingStats) {
	if len(buildings) == 0 {
		fmt.Fprintln(w, "\nNo buildings meet the display criteria.")
		return
	}

	maxRoomDigits := 1
	for _, b := range buildings {
		if digits := len(fmt.Sprintf("%d", b.RoomCount)); digits > maxRoomDigits {
			maxRoomDigits = digits
		}
	}
	bracketWidth := maxRoomDigits + 3

	mid := (len(buildings) + 1) / 2
	leftColumn := buildings[:mid]
	rightColumn := buildings[mid:]

	fmt.Fprintln(w, "\nPopular Buildings ([n] = Number of rooms): ")
	fmt.Fprintln(w, strings.Repeat("=", config.SEPARATOR_LENGTH))

	for i := range leftColumn {
		leftText := columnText(leftColumn[i], config.FIRST_COL_WIDTH, bracketWidth)

		rightText := ""
		if i < len(rightColumn) {
			rightText = columnText(rightColumn[i], config.SECOND_COL_WIDTH, bracketWidth)
		}

		fmt.Fprintf(w, "%s  %s\n", leftText, rightText)
	}

	fmt.Fprintln(w, strings.Repeat("=", config.SEPARATOR_LENGTH))
}

func columnText(b models.BuildingStats, nameWidth, bracketWidth int) string {
	name := truncateName(b.Name, nameWidth)
	countStr := fmt.Sprintf("[%d]", b.RoomCount)
	return fmt.Sprintf("%-*s (%s) %-*s", nameWidth, name, b.Code, bracketWidth, countStr)
}
