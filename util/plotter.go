package util

import (
	"fmt"
	"log"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"ecf-server/models"
)

// PlotBuildingRanking generates an HTML file rendering the ranked buildings
// as a bar chart of section counts.
func PlotBuildingRanking(ranked []models.BuildingStats, outPath string) {
	codes := make([]string, 0, len(ranked))
	sections := make([]opts.BarData, 0, len(ranked))
	rooms := make([]opts.BarData, 0, len(ranked))
	for _, b := range ranked {
		codes = append(codes, b.Code)
		sections = append(sections, opts.BarData{Value: b.SectionCount})
		rooms = append(rooms, opts.BarData{Value: b.RoomCount})
	}

	// Create a new Bar chart.
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Popular Buildings",
			Width:     "900px",
			Height:    "600px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: "Sections and rooms per building",
		}),
	)

	bar.SetXAxis(codes).
		AddSeries("Sections", sections).
		AddSeries("Rooms", rooms)

	// Create an HTML file to render the chart.
	f, err := os.Create(outPath)
	if err != nil {
		log.Fatalf("Failed to create HTML file: %v", err)
	}
	defer f.Close()

	// Render the chart into the HTML file.
	if err := bar.Render(f); err != nil {
		log.Fatalf("Failed to render chart: %v", err)
	}

	fmt.Println("Building ranking chart generated: " + outPath)
}
