/*
Package main - Roster Preview TUI Entry Point

==============================================================================
FILE: cmd/roster-tui/main.go
==============================================================================

DESCRIPTION:
    Terminal viewer for a generated monthly roster. Loads the latest
    (or an explicitly named) RosterRun and renders it as a scrollable
    employee x day grid, adapted from the attendance-tui's card-swipe
    terminal program (dropping its NFC reader integration entirely).

USER PERSPECTIVE:
    - Run this on a planner's workstation to eyeball a generated roster
      without opening the web UI or exporting a file first
    - Scroll with the arrow keys, quit with q/Ctrl+C

==============================================================================
*/
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"dienstplan/cmd/roster-tui/ui"
	"dienstplan/internal/config"
	"dienstplan/internal/database"
	"dienstplan/internal/services"
)

func main() {
	var (
		year  = flag.Int("year", 0, "roster year (defaults to the latest run)")
		month = flag.Int("month", 0, "roster month, 1-12 (defaults to the latest run)")
		runID = flag.String("run", "", "specific roster run ID (overrides -year/-month)")
	)
	flag.Parse()

	cfg, err := config.LoadAppConfig("./configs")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	db, err := database.NewConnection(cfg.DatabaseURL, cfg.DBDriver)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect to database: %v\n", err)
		os.Exit(1)
	}

	reportService := services.NewReportService(db)
	rosterService := services.NewRosterService(db)

	var grid *services.RosterGrid
	switch {
	case *runID != "":
		id, err := uuid.Parse(*runID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid -run ID: %v\n", err)
			os.Exit(1)
		}
		grid, err = reportService.BuildGrid(id)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load roster run: %v\n", err)
			os.Exit(1)
		}
	case *year != 0 && *month != 0:
		run, err := rosterService.GetLatestForMonth(*year, *month)
		if err != nil {
			fmt.Fprintf(os.Stderr, "no roster run found for %04d-%02d: %v\n", *year, *month, err)
			os.Exit(1)
		}
		grid, err = reportService.BuildGrid(run.ID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load roster run: %v\n", err)
			os.Exit(1)
		}
	default:
		runs, err := rosterService.ListRuns(1)
		if err != nil || len(runs) == 0 {
			fmt.Fprintln(os.Stderr, "no roster runs found; generate one via the API first")
			os.Exit(1)
		}
		grid, err = reportService.BuildGrid(runs[0].ID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load roster run: %v\n", err)
			os.Exit(1)
		}
	}

	program := tea.NewProgram(ui.NewModel(grid))
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "roster-tui crashed: %v\n", err)
		os.Exit(1)
	}
}
