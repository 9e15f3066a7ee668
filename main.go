package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"ecf-server/cli"
	"ecf-server/config"
	"ecf-server/di"
	"ecf-server/util"
)

func main() {
	env := flag.String("env", "dev", "environment: dev or prod")
	interactive := flag.Bool("interactive", false, "run the terminal menu instead of the HTTP server")
	plot := flag.Bool("plot", false, "render the building ranking chart and exit")
	flag.Parse()

	container := di.NewContainer(*env)

	if err := container.ScheduleService.Rebuild(); err != nil {
		if *interactive {
			log.Fatalf("Could not build the schedule grid: %v", err)
		}
		// The server can come up cold; the refresher fills the cache later.
		log.Printf("Initial grid build failed: %v", err)
	}

	if *plot {
		ranked := container.ScheduleService.RankedBuildings(config.MIN_ROOMS_TO_DISPLAY, config.MIN_SECTIONS_TO_DISPLAY)
		util.PlotBuildingRanking(ranked, config.GetResourcePath("building_ranking.html"))
		return
	}

	if *interactive {
		menu := cli.NewMenu(container.ScheduleService, os.Stdin, os.Stdout)
		menu.Run()
		return
	}

	fmt.Println("starting periodic catalog refresher!")
	container.CatalogRefresherService.StartPeriodicJob(config.CATALOG_REFRESHER_SCHEDULE_MINUTES * time.Minute)

	fmt.Println("starting server!")
	container.ClassroomFinderHttpServer.Start()
}
