package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/log"

	"github.com/Loreweave/api/internal/mapgen"
)

// Interactive terrain preview. Every parameter edit issues a new generation
// request through the coordinator; the view only ever shows the layers
// correlated with the most recent request, however late older computations
// finish.
func main() {
	seed := flag.String("seed", "loreweave", "Initial generation seed")
	logLevel := flag.String("log", "warn", "Log level (debug, info, warn, error)")
	flag.Parse()

	switch *logLevel {
	case "debug":
		log.SetLevel(log.DebugLevel)
	case "info":
		log.SetLevel(log.InfoLevel)
	case "warn":
		log.SetLevel(log.WarnLevel)
	case "error":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.WarnLevel)
	}

	if len(os.Getenv("DEBUG")) > 0 {
		f, err := tea.LogToFile("debug.log", "debug")
		if err != nil {
			fmt.Println("fatal:", err)
			os.Exit(1)
		}
		defer f.Close()
	}

	coordinator := mapgen.NewCoordinator()
	defer coordinator.Close()

	program := tea.NewProgram(newModel(coordinator, *seed), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		log.Fatal("Preview exited with error", "error", err)
	}
}
